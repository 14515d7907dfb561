package bridge

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mpsalisbury/bridge/pkg/cards"
	"github.com/mpsalisbury/bridge/pkg/game"
)

const HandSize = 13

// CallSource blocks until the collaborator supplies seat's next call.
type CallSource func(ctx context.Context, seat Seat) (Call, error)

// CardSource blocks until the collaborator supplies the card to play from seat's hand.
type CardSource func(ctx context.Context, seat Seat) (cards.Card, error)

// Game is one deal: the auction followed by up to 13 tricks.
type Game struct {
	id          string
	phase       game.GamePhase
	dealer      Seat
	hands       [4]*cards.Hand
	auction     *Auction
	contract    Contract
	hasContract bool
	leader      Seat // leads the next trick
	trick       *Trick
	tricks      []*Trick
	results     *Results
	reporter    Reporter
}

// NewGame shuffles deck and deals 13 cards to each seat, North first.
func NewGame(dealer Seat, deck *cards.Deck) (*Game, error) {
	deck.Shuffle()
	hands, err := deck.DealHands(len(Seats), HandSize)
	if err != nil {
		return nil, err
	}
	var hs [4]cards.Cards
	for i, h := range hands {
		hs[i] = h.Cards()
	}
	return NewGameFromHands(uuid.NewString(), dealer, hs), nil
}

// NewGameFromHands starts a deal with hands already dealt, indexed by Seat.
func NewGameFromHands(id string, dealer Seat, hands [4]cards.Cards) *Game {
	g := &Game{
		id:       id,
		phase:    game.Bidding,
		dealer:   dealer,
		auction:  NewAuction(dealer),
		results:  NewResults(),
		reporter: NopReporter{},
	}
	for i, cs := range hands {
		g.hands[i] = cards.NewHand(cs)
		g.hands[i].Sort()
	}
	return g
}

func (g *Game) SetReporter(r Reporter) {
	if r == nil {
		r = NopReporter{}
	}
	g.reporter = r
}

func (g *Game) Id() string {
	return g.id
}

func (g *Game) Phase() game.GamePhase {
	return g.phase
}

func (g *Game) Dealer() Seat {
	return g.dealer
}

func (g *Game) Hand(seat Seat) *cards.Hand {
	return g.hands[seat]
}

func (g *Game) Auction() *Auction {
	return g.auction
}

// Contract returns false until a bid auction has finished, and for a passed-out deal.
func (g *Game) Contract() (Contract, bool) {
	return g.contract, g.hasContract
}

// Trick is the trick in progress or the last one completed. Nil before the opening lead.
func (g *Game) Trick() *Trick {
	return g.trick
}

func (g *Game) CompletedTricks() []*Trick {
	return g.tricks
}

func (g *Game) Results() *Results {
	return g.results
}

// Leader is the seat to lead the next trick.
func (g *Game) Leader() Seat {
	return g.leader
}

func (g *Game) Abort() {
	g.phase = game.Aborted
}

// RunAuction collects calls until the auction ends. Illegal calls are reported
// and requested again from the same seat.
func (g *Game) RunAuction(ctx context.Context, source CallSource) (Contract, bool, error) {
	if g.phase != game.Bidding {
		return Contract{}, false, fmt.Errorf("%w: auction requested in phase %s", ErrWrongPhase, g.phase)
	}
	g.reporter.DealStarted(g)
	for !g.auction.Finished() {
		seat := g.auction.Turn()
		for {
			if err := ctx.Err(); err != nil {
				g.Abort()
				return Contract{}, false, err
			}
			call, err := source(ctx, seat)
			if err != nil {
				g.Abort()
				return Contract{}, false, fmt.Errorf("getting call from %s: %w", seat, err)
			}
			if err := g.auction.MakeCall(call); err != nil {
				g.reporter.CallRejected(g, seat, call, err)
				continue
			}
			g.reporter.CallMade(g, seat, call)
			break
		}
	}
	g.contract, g.hasContract = g.auction.Contract()
	g.reporter.AuctionFinished(g)
	if !g.hasContract {
		g.phase = game.PassedOut
		g.reporter.DealFinished(g)
		return Contract{}, false, nil
	}
	g.phase = game.Playing
	g.leader = g.contract.OpeningLeader()
	return g.contract, true, nil
}

// PlayTrick plays one trick led by Leader and returns the winning seat.
// Illegal cards are reported and requested again from the same seat.
func (g *Game) PlayTrick(ctx context.Context, source CardSource) (Seat, error) {
	if g.phase != game.Playing {
		return North, fmt.Errorf("%w: trick requested in phase %s", ErrWrongPhase, g.phase)
	}
	t := NewTrick(g.leader, g.contract.Strain)
	g.trick = t
	for t.State() != Resolved {
		seat := t.Turn()
		for {
			if err := ctx.Err(); err != nil {
				g.Abort()
				return North, err
			}
			card, err := source(ctx, seat)
			if err != nil {
				g.Abort()
				return North, fmt.Errorf("getting card from %s: %w", seat, err)
			}
			if err := t.Play(g.hands[seat], card); err != nil {
				g.reporter.PlayRejected(g, seat, card, err)
				continue
			}
			g.reporter.CardPlayed(g, seat, card)
			break
		}
	}
	winner, winningCard, err := t.Winner()
	if err != nil {
		return North, err
	}
	if err := g.results.Record(winner.Side()); err != nil {
		return North, err
	}
	g.tricks = append(g.tricks, t)
	g.leader = winner
	g.reporter.TrickCompleted(g, t, winner, winningCard)
	if g.results.Played() == NumTricks {
		g.phase = game.Completed
		g.reporter.DealFinished(g)
	}
	return winner, nil
}

// PlayHand plays tricks until all 13 are done.
func (g *Game) PlayHand(ctx context.Context, source CardSource) error {
	for g.phase == game.Playing {
		if _, err := g.PlayTrick(ctx, source); err != nil {
			return err
		}
	}
	return nil
}

// Score is the declaring side's score so far. Zero without a contract.
func (g *Game) Score() int {
	if !g.hasContract {
		return 0
	}
	return Score(g.contract, g.results)
}

func (g *Game) SideScore(side Side) int {
	if !g.hasContract {
		return 0
	}
	return SideScore(g.contract, g.results, side)
}

// PlayedCards lists every card in completed tricks, in play order.
func (g *Game) PlayedCards() cards.Cards {
	played := make([]cards.Cards, len(g.tricks))
	for i, t := range g.tricks {
		played[i] = t.cards
	}
	return cards.Combine(played...)
}

func (g *Game) dummyVisible() bool {
	return g.hasContract && (len(g.tricks) > 0 || (g.trick != nil && len(g.trick.cards) > 0))
}
