package cards

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMalformedCard   = errors.New("malformed card")
	ErrInvalidArgument = errors.New("invalid argument")
)

// A card's suit, lowest first.
type Suit int8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

var Suits = []Suit{
	Clubs,
	Diamonds,
	Hearts,
	Spades,
}

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "C"
	case Diamonds:
		return "D"
	case Hearts:
		return "H"
	case Spades:
		return "S"
	}
	panic("Unknown Suit")
}

func (s Suit) Name() string {
	switch s {
	case Clubs:
		return "Clubs"
	case Diamonds:
		return "Diamonds"
	case Hearts:
		return "Hearts"
	case Spades:
		return "Spades"
	}
	panic("Unknown Suit")
}

func (s Suit) Symbol() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	}
	panic("Unknown Suit")
}

func parseSuit(s string) (Suit, error) {
	switch strings.ToLower(s) {
	case "c":
		return Clubs, nil
	case "d":
		return Diamonds, nil
	case "h":
		return Hearts, nil
	case "s":
		return Spades, nil
	}
	return Clubs, fmt.Errorf("no such suit '%s'", s)
}

// A card's value: 2-9,T,J,Q,K,A. The numeric value is the rank.
type Value int8

const (
	Two Value = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var Values = []Value{
	Two,
	Three,
	Four,
	Five,
	Six,
	Seven,
	Eight,
	Nine,
	Ten,
	Jack,
	Queen,
	King,
	Ace,
}

func (v Value) String() string {
	switch v {
	case Two:
		return "2"
	case Three:
		return "3"
	case Four:
		return "4"
	case Five:
		return "5"
	case Six:
		return "6"
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}
	panic("Unknown Value")
}

func (v Value) Rank() int {
	return int(v)
}

func parseValue(v string) (Value, error) {
	switch strings.ToLower(v) {
	case "2":
		return Two, nil
	case "3":
		return Three, nil
	case "4":
		return Four, nil
	case "5":
		return Five, nil
	case "6":
		return Six, nil
	case "7":
		return Seven, nil
	case "8":
		return Eight, nil
	case "9":
		return Nine, nil
	case "t", "10":
		return Ten, nil
	case "j":
		return Jack, nil
	case "q":
		return Queen, nil
	case "k":
		return King, nil
	case "a":
		return Ace, nil
	}
	return Two, fmt.Errorf("no such value '%s'", v)
}

type Card struct {
	Value
	Suit
}

func (c Card) String() string {
	return c.Value.String() + c.Suit.String()
}

// ParseCard reads <rank><suit>, e.g. "TS", "10s", "2c".
func ParseCard(c string) (Card, error) {
	if len(c) != 2 && len(c) != 3 {
		return Card{}, fmt.Errorf("%w: can't parse card '%s'", ErrMalformedCard, c)
	}
	split := len(c) - 1
	v, verr := parseValue(c[:split])
	s, serr := parseSuit(c[split:])
	if verr != nil || serr != nil {
		return Card{}, fmt.Errorf("%w: can't parse card '%s'", ErrMalformedCard, c)
	}
	return Card{v, s}, nil
}

// Compare orders by suit, then by rank. Zero iff the cards are equal.
func Compare(c1, c2 Card) int {
	if d := int(c1.Suit) - int(c2.Suit); d != 0 {
		return d
	}
	return int(c1.Value) - int(c2.Value)
}

func (c1 Card) LessThan(c2 Card) bool {
	return Compare(c1, c2) < 0
}
