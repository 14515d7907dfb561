package bridge

import (
	"fmt"
	"strings"

	"github.com/mpsalisbury/bridge/pkg/cards"
)

// Strain is a contract's trump suit or no-trump, lowest first.
type Strain int8

const (
	ClubsStrain Strain = iota
	DiamondsStrain
	HeartsStrain
	SpadesStrain
	NoTrump
)

var Strains = []Strain{
	ClubsStrain,
	DiamondsStrain,
	HeartsStrain,
	SpadesStrain,
	NoTrump,
}

func StrainOf(s cards.Suit) Strain {
	switch s {
	case cards.Clubs:
		return ClubsStrain
	case cards.Diamonds:
		return DiamondsStrain
	case cards.Hearts:
		return HeartsStrain
	case cards.Spades:
		return SpadesStrain
	}
	panic("Unknown Suit")
}

// Suit returns the trump suit. False for no-trump.
func (s Strain) Suit() (cards.Suit, bool) {
	switch s {
	case ClubsStrain:
		return cards.Clubs, true
	case DiamondsStrain:
		return cards.Diamonds, true
	case HeartsStrain:
		return cards.Hearts, true
	case SpadesStrain:
		return cards.Spades, true
	}
	return cards.Clubs, false
}

// IsTrump reports whether cards of suit are trumps in this strain.
func (s Strain) IsTrump(suit cards.Suit) bool {
	trump, ok := s.Suit()
	return ok && trump == suit
}

func (s Strain) IsMajor() bool {
	return s == HeartsStrain || s == SpadesStrain
}

func (s Strain) IsMinor() bool {
	return s == ClubsStrain || s == DiamondsStrain
}

func (s Strain) String() string {
	switch s {
	case ClubsStrain:
		return "C"
	case DiamondsStrain:
		return "D"
	case HeartsStrain:
		return "H"
	case SpadesStrain:
		return "S"
	case NoTrump:
		return "NT"
	}
	panic("Unknown Strain")
}

func parseStrain(s string) (Strain, error) {
	switch strings.ToLower(s) {
	case "c":
		return ClubsStrain, nil
	case "d":
		return DiamondsStrain, nil
	case "h":
		return HeartsStrain, nil
	case "s":
		return SpadesStrain, nil
	case "n", "nt":
		return NoTrump, nil
	}
	return ClubsStrain, fmt.Errorf("no such strain '%s'", s)
}
