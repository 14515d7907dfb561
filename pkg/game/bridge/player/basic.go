package player

import (
	"sort"

	"github.com/mpsalisbury/bridge/pkg/cards"
	"github.com/mpsalisbury/bridge/pkg/game/bridge"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// BasicStrategy bids on high card points and plays simple winning or
// ducking cards.

func NewBasicStrategy() PlayerStrategy {
	return &basicStrategy{}
}

type basicStrategy struct{}

// Publicly expose basic strategy, used for hints.
func ChooseBasicStrategyCall(v bridge.View) bridge.Call {
	return basicStrategy{}.ChooseCall(v)
}
func ChooseBasicStrategyCard(v bridge.View) cards.Card {
	return basicStrategy{}.ChooseCardToPlay(v)
}

// HighCardPoints counts A=4, K=3, Q=2, J=1.
func HighCardPoints(cs cards.Cards) int {
	points := 0
	for _, c := range cs {
		if c.Value >= cards.Jack {
			points += int(c.Value - cards.Ten)
		}
	}
	return points
}

// isBalanced is true with no void or singleton and at most one doubleton.
func isBalanced(cs cards.Cards) bool {
	doubletons := 0
	bySuit := cs.SplitBySuit()
	for _, s := range cards.Suits {
		switch n := len(bySuit[s]); {
		case n < 2:
			return false
		case n == 2:
			doubletons++
		}
	}
	return doubletons <= 1
}

// longestSuit prefers the higher ranking suit among equal lengths.
func longestSuit(cs cards.Cards) cards.Suit {
	bySuit := cs.SplitBySuit()
	suits := maps.Keys(bySuit)
	sort.Slice(suits, func(i, j int) bool {
		li, lj := len(bySuit[suits[i]]), len(bySuit[suits[j]])
		if li != lj {
			return li > lj
		}
		return suits[i] > suits[j]
	})
	return suits[0]
}

type seatBid struct {
	seat bridge.Seat
	bid  bridge.Call
}

func allBids(v bridge.View) []seatBid {
	var bids []seatBid
	for i, c := range v.Calls {
		if c.IsBid() {
			bids = append(bids, seatBid{seat: (v.Dealer + bridge.Seat(i%4)) % 4, bid: c})
		}
	}
	return bids
}

func (s basicStrategy) ChooseCall(v bridge.View) bridge.Call {
	call := s.chooseCall(v)
	if !slices.Contains(v.LegalCalls, call) {
		return bridge.PassCall
	}
	return call
}

func (s basicStrategy) chooseCall(v bridge.View) bridge.Call {
	hcp := HighCardPoints(v.Hand)
	bids := allBids(v)

	// Open the bidding.
	if len(bids) == 0 {
		if hcp >= 15 && hcp <= 17 && isBalanced(v.Hand) {
			return bridge.MustBid(1, bridge.NoTrump)
		}
		if hcp >= 13 {
			return bridge.MustBid(1, bridge.StrainOf(longestSuit(v.Hand)))
		}
		return bridge.PassCall
	}

	// Only respond to partner's bid while it is the contract.
	last := bids[len(bids)-1]
	if last.seat != v.Seat.Partner() {
		return bridge.PassCall
	}
	pb := last.bid
	if pb.Strain == bridge.NoTrump {
		switch {
		case hcp >= 10:
			return bridge.MustBid(3, bridge.NoTrump)
		case hcp >= 8 && pb.Level == 1:
			return bridge.MustBid(2, bridge.NoTrump)
		}
		return bridge.PassCall
	}
	suit, _ := pb.Strain.Suit()
	if v.Hand.CountSuit(suit) < 3 || hcp < 6 {
		return bridge.PassCall
	}
	target := 2
	switch {
	case hcp >= 13 && pb.Strain.IsMajor():
		target = 4
	case hcp >= 10:
		target = 3
	}
	if target <= pb.Level {
		return bridge.PassCall
	}
	return bridge.MustBid(target, pb.Strain)
}

func (s basicStrategy) ChooseCardToPlay(v bridge.View) cards.Card {
	legal := v.LegalPlays
	if len(legal) == 1 {
		return legal[0]
	}
	if len(v.Trick) == 0 {
		return chooseLeadCard(v)
	}
	strain := v.Contract.Strain
	lead := v.Trick[0].Suit
	winning := bridge.WinningIndex(v.Trick, strain)
	best := v.Trick[winning]
	partnerWinning := v.SeatOf(winning).Side() == v.Seat.Side()

	if partnerWinning {
		return cheapest(legal, strain)
	}
	winners := legal.Filter(func(c cards.Card) bool {
		return bridge.Beats(c, best, lead, strain)
	})
	if len(winners) > 0 {
		return cheapest(winners, strain)
	}
	return cheapest(legal, strain)
}

// chooseLeadCard leads an ace if there is one, else low from the longest suit.
func chooseLeadCard(v bridge.View) cards.Card {
	legal := v.LegalPlays
	nonTrump := legal.Filter(func(c cards.Card) bool { return !v.Contract.Strain.IsTrump(c.Suit) })
	if len(nonTrump) == 0 {
		nonTrump = legal
	}
	aces := nonTrump.Filter(func(c cards.Card) bool { return c.Value == cards.Ace })
	if len(aces) > 0 {
		return aces[0]
	}
	return nonTrump.FilterBySuit(longestSuit(nonTrump)).Lowest()
}

// cheapest is the lowest card, saving trumps when there is a choice.
func cheapest(cs cards.Cards, strain bridge.Strain) cards.Card {
	nonTrump := cs.Filter(func(c cards.Card) bool { return !strain.IsTrump(c.Suit) })
	if len(nonTrump) > 0 {
		return nonTrump.Lowest()
	}
	return cs.Lowest()
}
