package bridge

import (
	"fmt"

	"github.com/mpsalisbury/bridge/pkg/cards"
)

// FollowsSuit is true for a lead, or a card in the lead suit.
func FollowsSuit(card cards.Card, trick cards.Cards) bool {
	if len(trick) == 0 {
		return true
	}
	return card.Suit == trick[0].Suit
}

// Playable reports whether card may be played from hand to trick.
func Playable(card cards.Card, hand *cards.Hand, trick cards.Cards) bool {
	return CheckPlay(card, hand, trick) == nil
}

func CheckPlay(card cards.Card, hand *cards.Hand, trick cards.Cards) error {
	if !hand.Contains(card) {
		return fmt.Errorf("%w: %s is not in hand", ErrIllegalPlay, card)
	}
	if !FollowsSuit(card, trick) && hand.HasSuit(trick[0].Suit) {
		return fmt.Errorf("%w: must follow %s", ErrIllegalPlay, trick[0].Suit.Name())
	}
	return nil
}

// LegalPlays lists the cards in hand that may be played to trick.
func LegalPlays(hand *cards.Hand, trick cards.Cards) cards.Cards {
	return hand.Cards().Filter(func(c cards.Card) bool {
		return Playable(c, hand, trick)
	})
}

// Beats reports whether challenger supersedes best in a trick led in lead.
func Beats(challenger, best cards.Card, lead cards.Suit, strain Strain) bool {
	cTrump, bTrump := strain.IsTrump(challenger.Suit), strain.IsTrump(best.Suit)
	switch {
	case cTrump && !bTrump:
		return true
	case cTrump && bTrump:
		return challenger.Value > best.Value
	case challenger.Suit == lead && best.Suit == lead:
		return challenger.Value > best.Value
	}
	return false
}

// WinningIndex returns the position of the card that wins trick.
func WinningIndex(trick cards.Cards, strain Strain) int {
	if len(trick) == 0 {
		panic("can't find winner of empty trick")
	}
	lead := trick[0].Suit
	best := 0
	for i, c := range trick[1:] {
		if Beats(c, trick[best], lead, strain) {
			best = i + 1
		}
	}
	return best
}
