package cards

import (
	"math/rand"
	"sort"
	"strings"

	"golang.org/x/exp/slices"
)

type Cards []Card

func (cs Cards) Copy() Cards {
	cardsCopy := make([]Card, len(cs))
	copy(cardsCopy, cs)
	return cardsCopy
}

func (cs Cards) Equals(other Cards) bool {
	sorted := cs.Copy()
	sorted.Sort()
	otherSorted := other.Copy()
	otherSorted.Sort()
	return slices.Equal(sorted, otherSorted)
}

func (cs Cards) Contains(match func(Card) bool) bool {
	for _, c := range cs {
		if match(c) {
			return true
		}
	}
	return false
}

func (cs Cards) ContainsCard(c Card) bool {
	return cs.Contains(func(oc Card) bool { return oc == c })
}

func (cs Cards) ContainsSuit(s Suit) bool {
	return cs.Contains(func(c Card) bool { return c.Suit == s })
}

func (cs Cards) Count(match func(Card) bool) int {
	count := 0
	for _, c := range cs {
		if match(c) {
			count++
		}
	}
	return count
}
func (cs Cards) CountSuit(s Suit) int {
	return cs.Count(func(c Card) bool { return c.Suit == s })
}

func (cs Cards) Sort() {
	sort.Slice(cs, func(i, j int) bool {
		return cs[i].LessThan(cs[j])
	})
}

// Shuffle permutes cs in place with Fisher-Yates, walking from the top index down.
func (cs Cards) Shuffle(rng *rand.Rand) {
	for i := len(cs) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		cs[i], cs[j] = cs[j], cs[i]
	}
}

// GetExtreme returns the card for which better(c, others) holds. Panics on no cards.
func (cs Cards) GetExtreme(better func(c1, c2 Card) bool) Card {
	if len(cs) == 0 {
		panic("can't get extreme for empty list of cards")
	}
	best := cs[0]
	for _, c := range cs {
		if better(c, best) {
			best = c
		}
	}
	return best
}

// Lowest returns the lowest valued card; among equals the first one.
func (cs Cards) Lowest() Card {
	return cs.GetExtreme(func(c1, c2 Card) bool { return c1.Value < c2.Value })
}

func (cs Cards) Filter(match func(c Card) bool) Cards {
	var filtered Cards
	for _, c := range cs {
		if match(c) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

func (cs Cards) FilterBySuit(suits ...Suit) Cards {
	return cs.Filter(func(c Card) bool {
		for _, s := range suits {
			if c.Suit == s {
				return true
			}
		}
		return false
	})
}

// Combine concatenates groups of cards in order.
func Combine(groups ...Cards) Cards {
	var cs Cards
	for _, g := range groups {
		cs = append(cs, g...)
	}
	return cs
}

func (cs Cards) SplitBySuit() map[Suit]Cards {
	cbs := make(map[Suit]Cards)
	for _, c := range cs {
		cbs[c.Suit] = append(cbs[c.Suit], c)
	}
	return cbs
}

func (cs Cards) Strings() []string {
	cardStrings := []string{}
	for _, c := range cs {
		cardStrings = append(cardStrings, c.String())
	}
	return cardStrings
}

func (cs Cards) String() string {
	cardStrings := cs.Strings()
	return strings.Join(cardStrings, " ")
}

// HandString groups cards by suit, spades first, the way bridge hands are written.
func (cs Cards) HandString() string {
	cbs := cs.SplitBySuit()
	suitStrings := []string{}
	for i := len(Suits) - 1; i >= 0; i-- {
		s := Suits[i]
		scs := cbs[s]
		if len(scs) > 0 {
			scs.Sort()
			suitStrings = append(suitStrings, s.Symbol()+" "+scs.ValuesString())
		}
	}
	return strings.Join(suitStrings, "   ")
}

// ValuesString lists values high to low without suits, e.g. "AKT3".
func (cs Cards) ValuesString() string {
	var sb strings.Builder
	for i := len(cs) - 1; i >= 0; i-- {
		sb.WriteString(cs[i].Value.String())
	}
	return sb.String()
}

func (cs Cards) Index(c Card) int {
	return slices.Index(cs, c)
}

func ParseCards(cs []string) (Cards, error) {
	var cards Cards
	for _, c := range cs {
		card, err := ParseCard(c)
		if err != nil {
			return Cards{}, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}
