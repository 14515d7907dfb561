package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/mpsalisbury/bridge/internal/flags"
	"github.com/mpsalisbury/bridge/pkg/game/bridge"
	"github.com/mpsalisbury/bridge/pkg/game/bridge/player"
	"github.com/ratel-online/core/log"
)

var (
	verbose     = flag.Bool("verbose", false, "Log each step of every deal")
	hints       = flag.Bool("hints", true, "Suggest a call or card at each prompt")
	seed        = flag.Int64("seed", flags.SeedFromEnv(time.Now().UnixNano()), "Random seed for shuffling (default $BRIDGE_SEED or the time)")
	dealer      = bridge.North
	playerTypes = [4]string{"basic", "basic", "term", "basic"}
)

func init() {
	for _, s := range bridge.Seats {
		player.AddPlayerFlag(&playerTypes[s], strings.ToLower(s.String()))
	}
	flags.SeatFlag(&dealer, "dealer", "Seat that deals first")
}

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func run() error {
	in := bufio.NewReader(os.Stdin)
	out := color.Output
	opts := player.Options{Seed: *seed, Hints: *hints, In: in, Out: out}

	var players [4]bridge.Player
	var reporters []bridge.Reporter
	for _, s := range bridge.Seats {
		p, err := player.NewPlayerFromFlag(playerTypes[s], s, opts)
		if err != nil {
			return fmt.Errorf("couldn't create player for %s: %w", s, err)
		}
		players[s] = p
		if r, ok := p.(bridge.Reporter); ok && len(reporters) == 0 {
			reporters = append(reporters, r)
		}
	}
	if *verbose {
		reporters = append(reporters, bridge.LogReporter{})
	}
	table := bridge.NewTable(players, dealer, *seed, reporters...)

	ctx := context.Background()
	for {
		if _, err := table.PlayDeal(ctx); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		fmt.Fprint(out, scoreHistory(table))
		if !askContinue(in, out) {
			return nil
		}
	}
}

func askContinue(in *bufio.Reader, out io.Writer) bool {
	for {
		fmt.Fprint(out, "Continue [y/n]? ")
		line, err := in.ReadString('\n')
		if err != nil && line == "" {
			return false
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes", "":
			return true
		case "n", "no":
			return false
		}
	}
}

func scoreHistory(t *bridge.Table) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("\n%-4s %-6s %-22s %7s %7s\n", "#", "Dealer", "Result", "N/S", "E/W"))
	for i, r := range t.History() {
		sb.WriteString(fmt.Sprintf("%-4d %-6s %-22s %7d %7d\n", i+1, r.Dealer, r, r.NorthSouth, r.EastWest()))
	}
	ns, ew := t.Totals()
	sb.WriteString(fmt.Sprintf("%-4s %-6s %-22s %7d %7d\n\n", "", "", "Total", ns, ew))
	return sb.String()
}
