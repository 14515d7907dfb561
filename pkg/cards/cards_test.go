package cards

import (
	"errors"
	"math/rand"
	"testing"
)

func TestShuffleKeepsCards(t *testing.T) {
	fullDeck := MakeDeck()
	for seed := int64(0); seed < 5; seed++ {
		cs := MakeDeck()
		cs.Shuffle(rand.New(rand.NewSource(seed)))
		if !cs.Equals(fullDeck) {
			t.Errorf("Shuffle(seed %d)='%s', expected full deck", seed, cs)
		}
	}
}

func TestHandString(t *testing.T) {
	tests := []struct {
		hand Cards
		want string
	}{
		{
			hand: Cards{C2c, Cas, Cth, C3s, Ckd},
			want: "♠ A3   ♥ T   ♦ K   ♣ 2",
		},
		{
			hand: Cards{Cqh, Cah, C4h},
			want: "♥ AQ4",
		},
		{
			hand: Cards{},
			want: "",
		},
	}
	for _, tc := range tests {
		got := tc.hand.HandString()
		if got != tc.want {
			t.Errorf("HandString(%s)=%q, want %q", tc.hand, got, tc.want)
		}
	}
}

func TestSplitBySuitOfDealtHand(t *testing.T) {
	hand, err := NewSeededDeck(3).Deal(13)
	if err != nil {
		t.Fatalf("Deal(13) error %v", err)
	}
	bySuit := hand.SplitBySuit()
	total := 0
	for _, s := range Suits {
		group := bySuit[s]
		total += len(group)
		if len(group) != hand.CountSuit(s) {
			t.Errorf("SplitBySuit(%s)[%s] has %d cards, CountSuit=%d", hand, s, len(group), hand.CountSuit(s))
		}
		for _, c := range group {
			if c.Suit != s {
				t.Errorf("SplitBySuit(%s)[%s] holds %s", hand, s, c)
			}
		}
		if got := hand.ContainsSuit(s); got != (len(group) > 0) {
			t.Errorf("ContainsSuit(%s, %s)=%t, want %t", hand, s, got, len(group) > 0)
		}
	}
	if total != 13 {
		t.Errorf("SplitBySuit(%s) holds %d cards, want 13", hand, total)
	}
}

func TestFilterBySuit(t *testing.T) {
	hand := Cards{Cas, Cks, C7h, C2h, Cqd, C9c, C4c}
	tests := []struct {
		name  string
		suits []Suit
		want  Cards
	}{
		{
			name:  "Major suits",
			suits: []Suit{Spades, Hearts},
			want:  Cards{Cas, Cks, C7h, C2h},
		},
		{
			name:  "Clubs",
			suits: []Suit{Clubs},
			want:  Cards{C9c, C4c},
		},
		{
			name:  "No suits",
			suits: []Suit{},
			want:  Cards{},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := hand.FilterBySuit(tc.suits...)
			if !got.Equals(tc.want) {
				t.Errorf("FilterBySuit(%s, %v)=%s, want %s", hand, tc.suits, got, tc.want)
			}
		})
	}
}

func TestLowest(t *testing.T) {
	tests := []struct {
		hand Cards
		want Card
	}{
		{
			hand: Cards{Cks, C5s, Cts},
			want: C5s,
		},
		{
			hand: Cards{Cah},
			want: Cah,
		},
		{
			// Equal values: the first one wins.
			hand: Cards{C3d, C3c, Cjs},
			want: C3d,
		},
	}
	for _, tc := range tests {
		got := tc.hand.Lowest()
		if got != tc.want {
			t.Errorf("Lowest(%s)=%s, want %s", tc.hand, got, tc.want)
		}
	}
}

func TestCombineKeepsOrder(t *testing.T) {
	got := Combine(Cards{Cas, C2h}, nil, Cards{Ckd})
	want := "AS 2H KD"
	if got.String() != want {
		t.Errorf("Combine()=%s, want %s", got, want)
	}
}

func TestParseCards(t *testing.T) {
	got, err := ParseCards([]string{"AS", "10h", "2c"})
	if err != nil {
		t.Fatalf("ParseCards() error %v", err)
	}
	if want := (Cards{Cas, Cth, C2c}); got.String() != want.String() {
		t.Errorf("ParseCards()=%s, want %s", got, want)
	}
	if _, err := ParseCards([]string{"AS", "1X"}); !errors.Is(err, ErrMalformedCard) {
		t.Errorf("ParseCards(1X) error %v, want ErrMalformedCard", err)
	}
}
