package bridge

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

type CallKind int8

const (
	Pass CallKind = iota
	Bid
	Double
	Redouble
)

// Call is one utterance in the auction. Level and Strain are set only for bids.
type Call struct {
	Kind   CallKind
	Level  int
	Strain Strain
}

var (
	PassCall     = Call{Kind: Pass}
	DoubleCall   = Call{Kind: Double}
	RedoubleCall = Call{Kind: Redouble}
)

const (
	MinLevel = 1
	MaxLevel = 7
)

func NewBid(level int, strain Strain) (Call, error) {
	if level < MinLevel || level > MaxLevel {
		return Call{}, fmt.Errorf("%w: bid level %d out of range", ErrMalformedCall, level)
	}
	if strain < ClubsStrain || strain > NoTrump {
		return Call{}, fmt.Errorf("%w: unknown strain %d", ErrMalformedCall, strain)
	}
	return Call{Kind: Bid, Level: level, Strain: strain}, nil
}

// MustBid is NewBid for literals known to be valid.
func MustBid(level int, strain Strain) Call {
	c, err := NewBid(level, strain)
	if err != nil {
		panic(err)
	}
	return c
}

// AllBids returns every bid from 1C to 7NT in ascending order.
func AllBids() []Call {
	bids := make([]Call, 0, MaxLevel*len(Strains))
	for level := MinLevel; level <= MaxLevel; level++ {
		for _, s := range Strains {
			bids = append(bids, Call{Kind: Bid, Level: level, Strain: s})
		}
	}
	return bids
}

// Higher reports whether bid c outranks bid o: level first, then strain.
func (c Call) Higher(o Call) bool {
	if c.Level != o.Level {
		return c.Level > o.Level
	}
	return c.Strain > o.Strain
}

func (c Call) IsBid() bool {
	return c.Kind == Bid
}

func (c Call) String() string {
	switch c.Kind {
	case Pass:
		return "P"
	case Double:
		return "X"
	case Redouble:
		return "XX"
	case Bid:
		return strconv.Itoa(c.Level) + c.Strain.String()
	}
	panic("Unknown CallKind")
}

var callPattern = regexp.MustCompile(`^(?i)(p|x|xx|([1-7])(c|d|h|s|nt?))$`)

// ParseCall reads P, X, XX or a bid such as 1C, 3N, 7NT, case-insensitively.
func ParseCall(s string) (Call, error) {
	m := callPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Call{}, fmt.Errorf("%w: can't parse call '%s'", ErrMalformedCall, s)
	}
	switch strings.ToLower(m[1]) {
	case "p":
		return PassCall, nil
	case "x":
		return DoubleCall, nil
	case "xx":
		return RedoubleCall, nil
	}
	level, _ := strconv.Atoi(m[2])
	strain, err := parseStrain(m[3])
	if err != nil {
		return Call{}, fmt.Errorf("%w: %v", ErrMalformedCall, err)
	}
	return NewBid(level, strain)
}

func ParseCalls(ss []string) ([]Call, error) {
	var calls []Call
	for _, s := range ss {
		c, err := ParseCall(s)
		if err != nil {
			return nil, err
		}
		calls = append(calls, c)
	}
	return calls, nil
}
