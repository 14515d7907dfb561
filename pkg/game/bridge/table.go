package bridge

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/mpsalisbury/bridge/pkg/cards"
)

// Player chooses calls and cards for one seat. While playing, the declarer's
// player is also asked to play for the dummy.
type Player interface {
	Call(ctx context.Context, v View) (Call, error)
	Play(ctx context.Context, v View) (cards.Card, error)
}

// DealRecord is the outcome of one deal at the table.
type DealRecord struct {
	GameId      string
	Dealer      Seat
	Contract    Contract
	PassedOut   bool
	DeclarerWon int // tricks taken by the declaring side
	NorthSouth  int // score from North/South's point of view
}

func (r DealRecord) EastWest() int {
	return -r.NorthSouth
}

func (r DealRecord) String() string {
	if r.PassedOut {
		return "Passed out"
	}
	return fmt.Sprintf("%s, %d tricks, N/S %d", r.Contract, r.DeclarerWon, r.NorthSouth)
}

// Table plays a series of deals with the same four players, rotating the dealer.
type Table struct {
	players  [4]Player
	reporter Reporter
	dealer   Seat
	rng      *rand.Rand
	history  []DealRecord
}

func NewTable(players [4]Player, firstDealer Seat, seed int64, reporters ...Reporter) *Table {
	return &Table{
		players:  players,
		reporter: Reporters(reporters),
		dealer:   firstDealer,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// Dealer deals the next deal.
func (t *Table) Dealer() Seat {
	return t.dealer
}

// PlayDeal deals, runs the auction and plays out the contract.
func (t *Table) PlayDeal(ctx context.Context) (DealRecord, error) {
	g, err := NewGame(t.dealer, cards.NewSeededDeck(t.rng.Int63()))
	if err != nil {
		return DealRecord{}, err
	}
	g.SetReporter(t.reporter)
	callSource := func(ctx context.Context, seat Seat) (Call, error) {
		return t.players[seat].Call(ctx, g.ViewFor(seat))
	}
	contract, ok, err := g.RunAuction(ctx, callSource)
	if err != nil {
		return DealRecord{}, err
	}
	record := DealRecord{GameId: g.Id(), Dealer: t.dealer, PassedOut: !ok}
	if ok {
		cardSource := func(ctx context.Context, seat Seat) (cards.Card, error) {
			return t.players[contract.Controller(seat)].Play(ctx, g.ViewFor(seat))
		}
		if err := g.PlayHand(ctx, cardSource); err != nil {
			return DealRecord{}, err
		}
		record.Contract = contract
		record.DeclarerWon = g.Results().TricksWon(contract.Side())
		record.NorthSouth = g.SideScore(NorthSouth)
	}
	t.history = append(t.history, record)
	t.dealer = t.dealer.Next()
	return record, nil
}

func (t *Table) History() []DealRecord {
	return t.history
}

// Totals sums the scores of every deal so far for each side.
func (t *Table) Totals() (northSouth, eastWest int) {
	for _, r := range t.history {
		northSouth += r.NorthSouth
		eastWest += r.EastWest()
	}
	return northSouth, eastWest
}
