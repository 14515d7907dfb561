package cards

import (
	"fmt"
	"math/rand"
	"time"
)

// Deck holds the cards not yet dealt. Dealt cards leave the deck for good.
type Deck struct {
	cards Cards
	rng   *rand.Rand
}

// MakeDeck returns all 52 cards in canonical order: by suit, then by value.
func MakeDeck() Cards {
	d := make([]Card, 0, len(Suits)*len(Values))
	for _, s := range Suits {
		for _, v := range Values {
			d = append(d, Card{v, s})
		}
	}
	return d
}

func NewDeck() *Deck {
	return NewSeededDeck(time.Now().UnixNano())
}

// NewSeededDeck returns an unshuffled deck whose shuffles are reproducible.
func NewSeededDeck(seed int64) *Deck {
	return &Deck{
		cards: MakeDeck(),
		rng:   rand.New(rand.NewSource(seed)),
	}
}

func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns a copy of the remaining cards in deck order.
func (d *Deck) Cards() Cards {
	return d.cards.Copy()
}

func (d *Deck) Shuffle() {
	d.cards.Shuffle(d.rng)
}

// Deal removes and returns the first n cards.
func (d *Deck) Deal(n int) (Cards, error) {
	if n < 1 || n > len(d.cards) {
		return nil, fmt.Errorf("%w: can't deal %d cards from a deck of %d", ErrInvalidArgument, n, len(d.cards))
	}
	dealt := d.cards[:n].Copy()
	d.cards = d.cards[n:].Copy()
	return dealt, nil
}

// DealHands deals handSize cards to each of numHands new hands, one hand at a time.
func (d *Deck) DealHands(numHands, handSize int) ([]*Hand, error) {
	if numHands < 1 || numHands*handSize > len(d.cards) {
		return nil, fmt.Errorf("%w: can't deal %d hands of %d from a deck of %d", ErrInvalidArgument, numHands, handSize, len(d.cards))
	}
	hands := make([]*Hand, 0, numHands)
	for i := 0; i < numHands; i++ {
		cs, err := d.Deal(handSize)
		if err != nil {
			return nil, err
		}
		hands = append(hands, NewHand(cs))
	}
	return hands, nil
}
