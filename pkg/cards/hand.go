package cards

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// NotFound is returned by Find when a card is not in the hand.
const NotFound = -1

// Hand is one seat's remaining cards. Order only matters for display.
type Hand struct {
	cards Cards
}

func NewHand(cs Cards) *Hand {
	return &Hand{cards: cs.Copy()}
}

func (h *Hand) Len() int {
	return len(h.cards)
}

// Cards returns a copy of the remaining cards.
func (h *Hand) Cards() Cards {
	return h.cards.Copy()
}

func (h *Hand) Find(c Card) int {
	return h.cards.Index(c)
}

func (h *Hand) Contains(c Card) bool {
	return h.Find(c) != NotFound
}

func (h *Hand) HasSuit(s Suit) bool {
	return h.cards.ContainsSuit(s)
}

// PlayCard removes and returns the card at pos, keeping the rest in order.
func (h *Hand) PlayCard(pos int) (Card, error) {
	if pos < 0 || pos >= len(h.cards) {
		return Card{}, fmt.Errorf("%w: no card at position %d in hand of %d", ErrInvalidArgument, pos, len(h.cards))
	}
	c := h.cards[pos]
	h.cards = slices.Delete(h.cards, pos, pos+1)
	return c, nil
}

func (h *Hand) Sort() {
	h.cards.Sort()
}

func (h *Hand) String() string {
	return h.cards.HandString()
}
