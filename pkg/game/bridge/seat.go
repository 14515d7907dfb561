package bridge

import (
	"fmt"
	"strings"
)

// Seat at the table, in clockwise playing order.
type Seat int8

const (
	North Seat = iota
	East
	South
	West
)

var Seats = []Seat{
	North,
	East,
	South,
	West,
}

func (s Seat) String() string {
	switch s {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	}
	panic("Unknown Seat")
}

// Next is the seat to the left, who plays after s.
func (s Seat) Next() Seat {
	return (s + 1) % 4
}

func (s Seat) Partner() Seat {
	return (s + 2) % 4
}

func (s Seat) Side() Side {
	return Side(s % 2)
}

// Following returns the four seats in playing order starting at s.
func (s Seat) Following() []Seat {
	seats := make([]Seat, 0, 4)
	for i := 0; i < 4; i++ {
		seats = append(seats, (s+Seat(i))%4)
	}
	return seats
}

func ParseSeat(s string) (Seat, error) {
	switch strings.ToLower(s) {
	case "n", "north":
		return North, nil
	case "e", "east":
		return East, nil
	case "s", "south":
		return South, nil
	case "w", "west":
		return West, nil
	}
	return North, fmt.Errorf("no such seat '%s'", s)
}

// Side is a partnership. Its value is the trick result indicator.
type Side int8

const (
	NorthSouth Side = iota
	EastWest
)

func (s Side) Opponent() Side {
	return 1 - s
}

func (s Side) String() string {
	switch s {
	case NorthSouth:
		return "N/S"
	case EastWest:
		return "E/W"
	}
	panic("Unknown Side")
}
