package bridge

import (
	"github.com/mpsalisbury/bridge/pkg/cards"
	"github.com/mpsalisbury/bridge/pkg/game"
)

// View is what the player holding Seat may see of a deal.
type View struct {
	GameId      string
	Seat        Seat
	Phase       game.GamePhase
	Dealer      Seat
	Hand        cards.Cards
	Calls       []Call
	Contract    Contract
	HasContract bool

	// DummyHand is set once the opening lead has been made.
	DummyHand   cards.Cards
	Trick       cards.Cards
	TrickLeader Seat
	PlayedCards cards.Cards
	TricksWon   [2]int

	// Legal moves, set only when it is Seat's turn.
	LegalCalls []Call
	LegalPlays cards.Cards
}

// ViewFor builds the view for seat. While playing, seat may be the dummy,
// in which case the view is meant for the declarer.
func (g *Game) ViewFor(seat Seat) View {
	v := View{
		GameId:      g.id,
		Seat:        seat,
		Phase:       g.phase,
		Dealer:      g.dealer,
		Hand:        g.hands[seat].Cards(),
		Calls:       g.auction.Calls(),
		Contract:    g.contract,
		HasContract: g.hasContract,
		PlayedCards: g.PlayedCards(),
		TricksWon:   [2]int{g.results.TricksWon(NorthSouth), g.results.TricksWon(EastWest)},
	}
	if g.dummyVisible() {
		v.DummyHand = g.hands[g.contract.Dummy()].Cards()
	}
	if g.trick != nil && g.trick.State() != Resolved {
		v.Trick = g.trick.Cards()
		v.TrickLeader = g.trick.Leader()
	} else {
		v.TrickLeader = g.leader
	}
	switch g.phase {
	case game.Bidding:
		if g.auction.Turn() == seat {
			v.LegalCalls = g.auction.LegalCalls()
		}
	case game.Playing:
		if g.turnToPlay() == seat {
			v.LegalPlays = LegalPlays(g.hands[seat], v.Trick)
		}
	}
	return v
}

func (g *Game) turnToPlay() Seat {
	if g.trick != nil && g.trick.State() != Resolved {
		return g.trick.Turn()
	}
	return g.leader
}

// Declarer reports whether the viewer is the declarer or playing the dummy.
func (v View) Declarer() bool {
	return v.HasContract && (v.Seat == v.Contract.Declarer || v.Seat == v.Contract.Dummy())
}

// TrickPosition is how many cards have been played to the current trick.
func (v View) TrickPosition() int {
	return len(v.Trick)
}

// SeatOf returns the seat that played trick card i.
func (v View) SeatOf(i int) Seat {
	return (v.TrickLeader + Seat(i)) % 4
}
