package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/mpsalisbury/bridge/internal/flags"
	"github.com/mpsalisbury/bridge/pkg/game/bridge"
	"github.com/mpsalisbury/bridge/pkg/game/bridge/player"
	"github.com/ratel-online/core/log"
)

var (
	verbose    = flag.Bool("verbose", false, "Log each step of every deal")
	numDeals   = flag.Int("deals", 4, "Number of deals to play")
	seed       = flag.Int64("seed", flags.SeedFromEnv(time.Now().UnixNano()), "Random seed for shuffling (default $BRIDGE_SEED or the time)")
	playerType = "basic"
)

func init() {
	flags.EnumFlag(&playerType, "type", []string{"basic", "random"}, "Type of player logic to use")
}

func main() {
	flag.Parse()
	if err := runPlayers(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func runPlayers() error {
	var players [4]bridge.Player
	for _, s := range bridge.Seats {
		p, err := player.NewPlayerFromFlag(playerType, s, player.Options{Seed: *seed})
		if err != nil {
			return fmt.Errorf("couldn't create player: %w", err)
		}
		players[s] = p
	}
	var reporters []bridge.Reporter
	if *verbose {
		reporters = append(reporters, bridge.LogReporter{})
	}
	table := bridge.NewTable(players, bridge.North, *seed, reporters...)
	ctx := context.Background()
	for i := 0; i < *numDeals; i++ {
		record, err := table.PlayDeal(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Deal %d (%s deals): %s\n", i+1, record.Dealer, record)
	}
	ns, ew := table.Totals()
	fmt.Printf("Totals: N/S %d, E/W %d\n", ns, ew)
	return nil
}
