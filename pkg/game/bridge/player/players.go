package player

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/mpsalisbury/bridge/internal/flags"
	"github.com/mpsalisbury/bridge/pkg/game/bridge"
	"golang.org/x/exp/maps"
)

// Options used when building players from flags.
type Options struct {
	Seed  int64
	Hints bool
	In    io.Reader
	Out   io.Writer
}

var playerTypes = map[string]func(seat bridge.Seat, opts Options) bridge.Player{
	"basic": func(bridge.Seat, Options) bridge.Player {
		return newStrategyPlayer(NewBasicStrategy())
	},
	"random": func(seat bridge.Seat, opts Options) bridge.Player {
		return newStrategyPlayer(NewRandomStrategy(opts.Seed + int64(seat)))
	},
	"term": func(seat bridge.Seat, opts Options) bridge.Player {
		in, out := opts.In, opts.Out
		if in == nil {
			in = os.Stdin
		}
		if out == nil {
			out = color.Output
		}
		return NewTerminalPlayer(seat, in, out, opts.Hints)
	},
}

// PlayerTypes lists the valid player flag values.
func PlayerTypes() []string {
	types := maps.Keys(playerTypes)
	sort.Strings(types)
	return types
}

// Creates a flag for specifying the player type to use.
func AddPlayerFlag(target *string, name string) {
	flags.EnumFlag(target, name, PlayerTypes(), "Type of player logic to use")
}

// Constructs a player from a player flag value.
func NewPlayerFromFlag(playerType string, seat bridge.Seat, opts Options) (bridge.Player, error) {
	if playerType == "" {
		playerType = "basic"
	}
	newPlayer, ok := playerTypes[playerType]
	if !ok {
		return nil, fmt.Errorf("invalid player type %s", playerType)
	}
	return newPlayer(seat, opts), nil
}
