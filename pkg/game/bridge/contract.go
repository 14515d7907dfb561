package bridge

import "fmt"

type Doubling int8

const (
	Undoubled Doubling = iota
	Doubled
	Redoubled
)

// Multiplier scales contract points: 1, 2 or 4.
func (d Doubling) Multiplier() int {
	switch d {
	case Doubled:
		return 2
	case Redoubled:
		return 4
	}
	return 1
}

func (d Doubling) String() string {
	switch d {
	case Undoubled:
		return ""
	case Doubled:
		return "X"
	case Redoubled:
		return "XX"
	}
	panic("Unknown Doubling")
}

// Contract is the outcome of a bid auction.
type Contract struct {
	Level    int
	Strain   Strain
	Doubling Doubling
	Declarer Seat
}

func (c Contract) TricksNeeded() int {
	return 6 + c.Level
}

func (c Contract) Side() Side {
	return c.Declarer.Side()
}

func (c Contract) Dummy() Seat {
	return c.Declarer.Partner()
}

// OpeningLeader is the declarer's left-hand opponent.
func (c Contract) OpeningLeader() Seat {
	return c.Declarer.Next()
}

// Controller returns the seat that picks the cards played from seat's hand.
func (c Contract) Controller(seat Seat) Seat {
	if seat == c.Dummy() {
		return c.Declarer
	}
	return seat
}

func (c Contract) String() string {
	return fmt.Sprintf("%d%s%s by %s", c.Level, c.Strain, c.Doubling, c.Declarer)
}
