package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/mpsalisbury/bridge/internal/flags"
	"github.com/mpsalisbury/bridge/pkg/cards"
	"github.com/mpsalisbury/bridge/pkg/game/bridge"
	"github.com/mpsalisbury/bridge/pkg/game/bridge/player"
	"github.com/ratel-online/core/log"
)

var seed = flag.Int64("seed", flags.SeedFromEnv(time.Now().UnixNano()), "Random seed for shuffling (default $BRIDGE_SEED or the time)")

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func run() error {
	g, err := bridge.NewGame(bridge.North, cards.NewSeededDeck(*seed))
	if err != nil {
		return err
	}
	fmt.Printf("Deal %s\n", g.Id())
	for _, s := range bridge.Seats {
		h := g.Hand(s)
		fmt.Printf("%5s: %-40s %2d HCP\n", s, h, player.HighCardPoints(h.Cards()))
	}
	return nil
}
