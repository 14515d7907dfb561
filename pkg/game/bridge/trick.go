package bridge

import (
	"fmt"

	"github.com/mpsalisbury/bridge/pkg/cards"
)

type TrickState int8

const (
	AwaitingLead TrickState = iota
	AwaitingFollow
	Resolved
)

func (s TrickState) String() string {
	switch s {
	case AwaitingLead:
		return "AwaitingLead"
	case AwaitingFollow:
		return "AwaitingFollow"
	case Resolved:
		return "Resolved"
	}
	return "Unknown"
}

// Trick is one round of four cards, one per seat, starting with the leader.
type Trick struct {
	leader Seat
	strain Strain
	cards  cards.Cards
}

func NewTrick(leader Seat, strain Strain) *Trick {
	return &Trick{leader: leader, strain: strain}
}

func (t *Trick) Leader() Seat {
	return t.leader
}

func (t *Trick) Strain() Strain {
	return t.strain
}

func (t *Trick) State() TrickState {
	switch len(t.cards) {
	case 0:
		return AwaitingLead
	case 4:
		return Resolved
	}
	return AwaitingFollow
}

// Turn is the seat to play next. Undefined once resolved.
func (t *Trick) Turn() Seat {
	return (t.leader + Seat(len(t.cards))) % 4
}

func (t *Trick) Cards() cards.Cards {
	return t.cards.Copy()
}

// SeatOf returns the seat that played the i'th card.
func (t *Trick) SeatOf(i int) Seat {
	return (t.leader + Seat(i)) % 4
}

// LeadSuit returns false if no card has been led.
func (t *Trick) LeadSuit() (cards.Suit, bool) {
	if len(t.cards) > 0 {
		return t.cards[0].Suit, true
	}
	return cards.Clubs, false
}

// Play moves card from hand, which belongs to the seat on turn, into the trick.
// An illegal card leaves both hand and trick untouched.
func (t *Trick) Play(hand *cards.Hand, card cards.Card) error {
	if t.State() == Resolved {
		return fmt.Errorf("%w: trick is complete", ErrIllegalPlay)
	}
	if err := CheckPlay(card, hand, t.cards); err != nil {
		return err
	}
	if _, err := hand.PlayCard(hand.Find(card)); err != nil {
		return err
	}
	t.cards = append(t.cards, card)
	return nil
}

// Winner returns the seat that took the trick and its winning card.
func (t *Trick) Winner() (Seat, cards.Card, error) {
	if t.State() != Resolved {
		return North, cards.Card{}, fmt.Errorf("%w: %d of 4 cards played", ErrTrickNotResolved, len(t.cards))
	}
	i := WinningIndex(t.cards, t.strain)
	return t.SeatOf(i), t.cards[i], nil
}

func (t *Trick) String() string {
	return t.cards.String()
}
