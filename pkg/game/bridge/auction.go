package bridge

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Auction tracks the calls of one deal, starting with the dealer.
type Auction struct {
	dealer   Seat
	calls    []Call
	highest  Call
	bidder   Seat // seat that made the highest bid
	hasBid   bool
	doubling Doubling
}

func NewAuction(dealer Seat) *Auction {
	return &Auction{dealer: dealer}
}

func (a *Auction) Dealer() Seat {
	return a.dealer
}

// Turn is the seat to make the next call.
func (a *Auction) Turn() Seat {
	return a.SeatOf(len(a.calls))
}

func (a *Auction) Calls() []Call {
	return slices.Clone(a.calls)
}

// SeatOf returns the seat that made the i'th call.
func (a *Auction) SeatOf(i int) Seat {
	return (a.dealer + Seat(i%4)) % 4
}

// HighestBid returns the current highest bid, false if nobody has bid.
func (a *Auction) HighestBid() (Call, bool) {
	return a.highest, a.hasBid
}

func (a *Auction) Doubling() Doubling {
	return a.doubling
}

// Finished once there are at least four calls and the last three are passes.
func (a *Auction) Finished() bool {
	n := len(a.calls)
	if n < 4 {
		return false
	}
	for _, c := range a.calls[n-3:] {
		if c.Kind != Pass {
			return false
		}
	}
	return true
}

func (a *Auction) PassedOut() bool {
	return a.Finished() && !a.hasBid
}

// Check returns an error if call can't be made by the seat whose turn it is.
func (a *Auction) Check(call Call) error {
	if a.Finished() {
		return fmt.Errorf("%w: auction is over", ErrIllegalCall)
	}
	turn := a.Turn()
	switch call.Kind {
	case Pass:
		return nil
	case Bid:
		if call.Level < MinLevel || call.Level > MaxLevel {
			return fmt.Errorf("%w: bid level %d out of range", ErrIllegalCall, call.Level)
		}
		if call.Strain < ClubsStrain || call.Strain > NoTrump {
			return fmt.Errorf("%w: unknown strain %d", ErrIllegalCall, call.Strain)
		}
		if a.hasBid && !call.Higher(a.highest) {
			return fmt.Errorf("%w: %s is not higher than %s", ErrIllegalCall, call, a.highest)
		}
		return nil
	case Double:
		if !a.hasBid {
			return fmt.Errorf("%w: nothing to double", ErrIllegalCall)
		}
		if a.doubling != Undoubled {
			return fmt.Errorf("%w: %s is already doubled", ErrIllegalCall, a.highest)
		}
		if a.bidder.Side() == turn.Side() {
			return fmt.Errorf("%w: can't double your own side's bid", ErrIllegalCall)
		}
		return nil
	case Redouble:
		if a.doubling != Doubled {
			return fmt.Errorf("%w: nothing to redouble", ErrIllegalCall)
		}
		if a.bidder.Side() != turn.Side() {
			return fmt.Errorf("%w: can only redouble your own side's bid", ErrIllegalCall)
		}
		return nil
	}
	return fmt.Errorf("%w: unknown call kind %d", ErrIllegalCall, call.Kind)
}

// MakeCall records call for the seat whose turn it is. A rejected call changes nothing.
func (a *Auction) MakeCall(call Call) error {
	if err := a.Check(call); err != nil {
		return err
	}
	switch call.Kind {
	case Bid:
		a.highest = call
		a.bidder = a.Turn()
		a.hasBid = true
		a.doubling = Undoubled
	case Double:
		a.doubling = Doubled
	case Redouble:
		a.doubling = Redoubled
	}
	a.calls = append(a.calls, call)
	return nil
}

// LegalCalls lists every call the seat to act may make, pass first.
func (a *Auction) LegalCalls() []Call {
	if a.Finished() {
		return nil
	}
	calls := []Call{PassCall}
	for _, c := range []Call{DoubleCall, RedoubleCall} {
		if a.Check(c) == nil {
			calls = append(calls, c)
		}
	}
	for _, b := range AllBids() {
		if a.Check(b) == nil {
			calls = append(calls, b)
		}
	}
	return calls
}

// Contract returns the final contract, false while bidding or when passed out.
func (a *Auction) Contract() (Contract, bool) {
	if !a.Finished() || !a.hasBid {
		return Contract{}, false
	}
	return Contract{
		Level:    a.highest.Level,
		Strain:   a.highest.Strain,
		Doubling: a.doubling,
		Declarer: a.declarer(),
	}, true
}

// declarer is the first player of the winning side to bid the final strain.
func (a *Auction) declarer() Seat {
	side := a.bidder.Side()
	for i, c := range a.calls {
		seat := a.SeatOf(i)
		if c.Kind == Bid && c.Strain == a.highest.Strain && seat.Side() == side {
			return seat
		}
	}
	return a.bidder
}
