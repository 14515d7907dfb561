package flags

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/mpsalisbury/bridge/pkg/game/bridge"
)

// EnumFlag defines a string flag that only accepts the values in safelist.
func EnumFlag(target *string, name string, safelist []string, usage string) {
	usageWithValues := fmt.Sprintf("%s, must be one of %v", usage, safelist)
	flag.Func(name, usageWithValues, func(flagValue string) error {
		for _, allowedValue := range safelist {
			if flagValue == allowedValue {
				*target = flagValue
				return nil
			}
		}
		return fmt.Errorf("must be one of %v", safelist)
	})
}

// SeatFlag defines a flag naming a seat, e.g. "north" or "N".
func SeatFlag(target *bridge.Seat, name string, usage string) {
	flag.Func(name, fmt.Sprintf("%s (default %s)", usage, *target), func(flagValue string) error {
		seat, err := bridge.ParseSeat(flagValue)
		if err != nil {
			return err
		}
		*target = seat
		return nil
	})
}

// SeedFromEnv returns $BRIDGE_SEED if set and valid, else def.
func SeedFromEnv(def int64) int64 {
	if s, ok := os.LookupEnv("BRIDGE_SEED"); ok {
		if seed, err := strconv.ParseInt(s, 10, 64); err == nil {
			return seed
		}
	}
	return def
}
