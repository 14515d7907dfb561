package bridge

import (
	"fmt"

	"github.com/mpsalisbury/bridge/pkg/cards"
)

const NumTricks = 13

// Unplayed marks a trick slot not yet recorded.
const Unplayed = -1

// Results holds the winning side of each trick, in trick order.
type Results struct {
	slots [NumTricks]int
	n     int
}

func NewResults() *Results {
	r := &Results{}
	for i := range r.slots {
		r.slots[i] = Unplayed
	}
	return r
}

// ResultsOf builds results from trick winners, in order.
func ResultsOf(winners ...Side) (*Results, error) {
	r := NewResults()
	for _, s := range winners {
		if err := r.Record(s); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Record fills the next slot. Recorded slots are never overwritten.
func (r *Results) Record(winner Side) error {
	if r.n == NumTricks {
		return fmt.Errorf("%w: all %d tricks recorded", cards.ErrInvalidArgument, NumTricks)
	}
	r.slots[r.n] = int(winner)
	r.n++
	return nil
}

func (r *Results) Played() int {
	return r.n
}

// Slot returns the side indicator of trick i, or Unplayed. Out of range i is Unplayed too.
func (r *Results) Slot(i int) int {
	if i < 0 || i >= NumTricks {
		return Unplayed
	}
	return r.slots[i]
}

func (r *Results) Slots() [NumTricks]int {
	return r.slots
}

func (r *Results) TricksWon(side Side) int {
	won := 0
	for _, s := range r.slots[:r.n] {
		if s == int(side) {
			won++
		}
	}
	return won
}

func (r *Results) String() string {
	return fmt.Sprintf("N/S %d, E/W %d", r.TricksWon(NorthSouth), r.TricksWon(EastWest))
}
