package bridge

import (
	"github.com/mpsalisbury/bridge/pkg/cards"
	"github.com/ratel-online/core/log"
)

// Reporter hears about each step of a deal as it happens.
type Reporter interface {
	DealStarted(g *Game)
	CallMade(g *Game, seat Seat, call Call)
	CallRejected(g *Game, seat Seat, call Call, err error)
	AuctionFinished(g *Game)
	CardPlayed(g *Game, seat Seat, card cards.Card)
	PlayRejected(g *Game, seat Seat, card cards.Card, err error)
	TrickCompleted(g *Game, trick *Trick, winner Seat, winningCard cards.Card)
	DealFinished(g *Game)
}

// NopReporter ignores everything. Embed it to implement part of Reporter.
type NopReporter struct{}

func (NopReporter) DealStarted(*Game) {}

func (NopReporter) CallMade(*Game, Seat, Call) {}

func (NopReporter) CallRejected(*Game, Seat, Call, error) {}

func (NopReporter) AuctionFinished(*Game) {}

func (NopReporter) CardPlayed(*Game, Seat, cards.Card) {}

func (NopReporter) PlayRejected(*Game, Seat, cards.Card, error) {}

func (NopReporter) TrickCompleted(*Game, *Trick, Seat, cards.Card) {}

func (NopReporter) DealFinished(*Game) {}

// Reporters fans each event out to every reporter in order.
type Reporters []Reporter

func (rs Reporters) DealStarted(g *Game) {
	for _, r := range rs {
		r.DealStarted(g)
	}
}
func (rs Reporters) CallMade(g *Game, seat Seat, call Call) {
	for _, r := range rs {
		r.CallMade(g, seat, call)
	}
}
func (rs Reporters) CallRejected(g *Game, seat Seat, call Call, err error) {
	for _, r := range rs {
		r.CallRejected(g, seat, call, err)
	}
}
func (rs Reporters) AuctionFinished(g *Game) {
	for _, r := range rs {
		r.AuctionFinished(g)
	}
}
func (rs Reporters) CardPlayed(g *Game, seat Seat, card cards.Card) {
	for _, r := range rs {
		r.CardPlayed(g, seat, card)
	}
}
func (rs Reporters) PlayRejected(g *Game, seat Seat, card cards.Card, err error) {
	for _, r := range rs {
		r.PlayRejected(g, seat, card, err)
	}
}
func (rs Reporters) TrickCompleted(g *Game, trick *Trick, winner Seat, winningCard cards.Card) {
	for _, r := range rs {
		r.TrickCompleted(g, trick, winner, winningCard)
	}
}
func (rs Reporters) DealFinished(g *Game) {
	for _, r := range rs {
		r.DealFinished(g)
	}
}

// LogReporter writes deal progress to the server log.
type LogReporter struct {
	NopReporter
}

func (LogReporter) DealStarted(g *Game) {
	log.Infof("deal %s started, dealer %s\n", g.Id(), g.Dealer())
}
func (LogReporter) CallRejected(g *Game, seat Seat, call Call, err error) {
	log.Infof("deal %s: %s call %s rejected: %v\n", g.Id(), seat, call, err)
}
func (LogReporter) AuctionFinished(g *Game) {
	if c, ok := g.Contract(); ok {
		log.Infof("deal %s: contract %s\n", g.Id(), c)
		return
	}
	log.Infof("deal %s: passed out\n", g.Id())
}
func (LogReporter) PlayRejected(g *Game, seat Seat, card cards.Card, err error) {
	log.Infof("deal %s: %s play %s rejected: %v\n", g.Id(), seat, card, err)
}
func (LogReporter) TrickCompleted(g *Game, trick *Trick, winner Seat, winningCard cards.Card) {
	log.Infof("deal %s trick: %s - winning card %s by %s\n", g.Id(), trick, winningCard, winner)
}
func (LogReporter) DealFinished(g *Game) {
	log.Infof("deal %s finished (%s): %s, N/S score %d\n", g.Id(), g.Phase(), g.Results(), g.SideScore(NorthSouth))
}
