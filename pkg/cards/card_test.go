package cards

import (
	"errors"
	"testing"
)

func TestParseValidCard(t *testing.T) {
	tests := []struct {
		c    string
		want Card
	}{
		{"2c", Card{Two, Clubs}},
		{"3c", Card{Three, Clubs}},
		{"4c", Card{Four, Clubs}},
		{"5c", Card{Five, Clubs}},
		{"6c", Card{Six, Clubs}},
		{"7c", Card{Seven, Clubs}},
		{"8c", Card{Eight, Clubs}},
		{"9c", Card{Nine, Clubs}},
		{"tc", Card{Ten, Clubs}},
		{"10c", Card{Ten, Clubs}},
		{"jc", Card{Jack, Clubs}},
		{"qc", Card{Queen, Clubs}},
		{"kc", Card{King, Clubs}},
		{"ac", Card{Ace, Clubs}},
		{"TS", Card{Ten, Spades}},
		{"10D", Card{Ten, Diamonds}},
		{"jH", Card{Jack, Hearts}},
		{"ad", Card{Ace, Diamonds}},
	}
	for _, tc := range tests {
		got, err := ParseCard(tc.c)
		if err != nil {
			t.Errorf("ParseCard(%s)=error(%s), want %s", tc.c, err, tc.want)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseCard(%s)=%s, want %s", tc.c, got, tc.want)
		}
	}
}

func TestParseInvalidCard(t *testing.T) {
	tests := []string{"xc", "7x", "2cc", "22c", "", "5", "1c", "11c", "10", "c2", "ah "}
	for _, tc := range tests {
		got, err := ParseCard(tc)
		if err == nil {
			t.Errorf("ParseCard(%s)=%s, want err", tc, got)
			continue
		}
		if !errors.Is(err, ErrMalformedCard) {
			t.Errorf("ParseCard(%s) error %v, want ErrMalformedCard", tc, err)
		}
	}
}

func TestCardRoundTrip(t *testing.T) {
	for _, c := range MakeDeck() {
		got, err := ParseCard(c.String())
		if err != nil || got != c {
			t.Errorf("ParseCard(%s)=%s,%v, want %s", c, got, err, c)
		}
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		c1, c2 Card
		want   int
	}{
		{Cac, C2d, -1},
		{C2d, Cac, 1},
		{C3h, C9h, -1},
		{Cks, Cqs, 1},
		{Cts, Cts, 0},
	}
	sign := func(n int) int {
		switch {
		case n < 0:
			return -1
		case n > 0:
			return 1
		}
		return 0
	}
	for _, tc := range tests {
		got := sign(Compare(tc.c1, tc.c2))
		if got != tc.want {
			t.Errorf("Compare(%s,%s)=%d, want sign %d", tc.c1, tc.c2, got, tc.want)
		}
	}
}

func TestRank(t *testing.T) {
	if Two.Rank() != 2 || Jack.Rank() != 11 || Ace.Rank() != 14 {
		t.Errorf("Rank()=%d,%d,%d, want 2,11,14", Two.Rank(), Jack.Rank(), Ace.Rank())
	}
}
