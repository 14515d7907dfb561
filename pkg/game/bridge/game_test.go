package bridge_test

import (
	"context"
	"errors"
	"testing"

	"github.com/mpsalisbury/bridge/pkg/cards"
	"github.com/mpsalisbury/bridge/pkg/game"
	"github.com/mpsalisbury/bridge/pkg/game/bridge"
	"github.com/stretchr/testify/require"
)

// One suit per seat: North spades, East hearts, South diamonds, West clubs.
func suitPerSeatHands() [4]cards.Cards {
	var hands [4]cards.Cards
	suits := []cards.Suit{cards.Spades, cards.Hearts, cards.Diamonds, cards.Clubs}
	for i, s := range suits {
		for _, v := range cards.Values {
			hands[i] = append(hands[i], cards.Card{Value: v, Suit: s})
		}
	}
	return hands
}

func scriptedCalls(t *testing.T, calls ...string) bridge.CallSource {
	parsed, err := bridge.ParseCalls(calls)
	require.NoError(t, err)
	return func(ctx context.Context, seat bridge.Seat) (bridge.Call, error) {
		if len(parsed) == 0 {
			return bridge.Call{}, errors.New("out of calls")
		}
		c := parsed[0]
		parsed = parsed[1:]
		return c, nil
	}
}

// lowestLegal plays the first legal card of the seat's sorted hand.
func lowestLegal(g *bridge.Game) bridge.CardSource {
	return func(ctx context.Context, seat bridge.Seat) (cards.Card, error) {
		return g.ViewFor(seat).LegalPlays[0], nil
	}
}

type recordingReporter struct {
	bridge.NopReporter
	calls         []bridge.Call
	rejectedCalls []bridge.Call
	played        cards.Cards
	rejectedPlays cards.Cards
	winners       []bridge.Seat
	winningCards  cards.Cards
	finished      int
}

func (r *recordingReporter) CallMade(g *bridge.Game, seat bridge.Seat, call bridge.Call) {
	r.calls = append(r.calls, call)
}
func (r *recordingReporter) CallRejected(g *bridge.Game, seat bridge.Seat, call bridge.Call, err error) {
	r.rejectedCalls = append(r.rejectedCalls, call)
}
func (r *recordingReporter) CardPlayed(g *bridge.Game, seat bridge.Seat, card cards.Card) {
	r.played = append(r.played, card)
}
func (r *recordingReporter) PlayRejected(g *bridge.Game, seat bridge.Seat, card cards.Card, err error) {
	r.rejectedPlays = append(r.rejectedPlays, card)
}
func (r *recordingReporter) TrickCompleted(g *bridge.Game, trick *bridge.Trick, winner bridge.Seat, winningCard cards.Card) {
	r.winners = append(r.winners, winner)
	r.winningCards = append(r.winningCards, winningCard)
}
func (r *recordingReporter) DealFinished(g *bridge.Game) {
	r.finished++
}

func TestNewGameDealsWholeDeck(t *testing.T) {
	for seed := int64(0); seed < 5; seed++ {
		g, err := bridge.NewGame(bridge.North, cards.NewSeededDeck(seed))
		require.NoError(t, err)
		require.NotEmpty(t, g.Id())
		require.Equal(t, game.Bidding, g.Phase())

		var all cards.Cards
		for _, s := range bridge.Seats {
			require.Equal(t, bridge.HandSize, g.Hand(s).Len())
			all = cards.Combine(all, g.Hand(s).Cards())
		}
		require.True(t, all.Equals(cards.MakeDeck()), "hands hold %s", all)
	}
}

func TestRunAuctionRetriesIllegalCalls(t *testing.T) {
	g := bridge.NewGameFromHands("scripted", bridge.North, suitPerSeatHands())
	r := &recordingReporter{}
	g.SetReporter(r)

	contract, ok, err := g.RunAuction(context.Background(), scriptedCalls(t, "1S", "1C", "P", "P", "P"))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, bridge.Contract{Level: 1, Strain: bridge.SpadesStrain, Declarer: bridge.North}, contract)

	// East's 1C was rejected and East was asked again.
	require.Equal(t, []bridge.Call{bridge.MustBid(1, bridge.ClubsStrain)}, r.rejectedCalls)
	require.Len(t, r.calls, 4)
	require.Len(t, g.Auction().Calls(), 4)
}

func TestRunAuctionSourceError(t *testing.T) {
	g := bridge.NewGameFromHands("broken", bridge.North, suitPerSeatHands())
	_, _, err := g.RunAuction(context.Background(), scriptedCalls(t, "P", "P"))
	require.Error(t, err)
	require.Equal(t, game.Aborted, g.Phase())
}

func TestPlayFullDeal(t *testing.T) {
	g := bridge.NewGameFromHands("full", bridge.North, suitPerSeatHands())
	r := &recordingReporter{}
	g.SetReporter(r)
	ctx := context.Background()

	contract, ok, err := g.RunAuction(ctx, scriptedCalls(t, "1S", "P", "P", "P"))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, bridge.Contract{Level: 1, Strain: bridge.SpadesStrain, Declarer: bridge.North}, contract)
	require.Equal(t, game.Playing, g.Phase())
	require.Equal(t, bridge.East, g.Leader())

	// Nobody can follow anyone else, so North ruffs every lead and keeps the lead.
	winner, err := g.PlayTrick(ctx, lowestLegal(g))
	require.NoError(t, err)
	require.Equal(t, bridge.North, winner)
	require.Equal(t, bridge.North, g.Leader())
	require.Equal(t, 0, g.Results().Slot(0))

	require.NoError(t, g.PlayHand(ctx, lowestLegal(g)))
	require.Equal(t, game.Completed, g.Phase())
	require.Equal(t, bridge.NumTricks, g.Results().Played())
	require.Equal(t, 13, g.Results().TricksWon(bridge.NorthSouth))
	require.Len(t, r.played, 52)
	require.Equal(t, r.played, g.PlayedCards(), "completed tricks in play order")
	require.True(t, r.played.Equals(cards.MakeDeck()))
	require.Equal(t, 1, r.finished)
	require.Len(t, r.winners, bridge.NumTricks)
	for _, w := range r.winners {
		require.Equal(t, bridge.North, w)
	}
	for _, s := range bridge.Seats {
		require.Equal(t, 0, g.Hand(s).Len())
	}

	// 1S making seven: 30 + 6 overtricks at 30.
	require.Equal(t, 210, g.Score())
	require.Equal(t, 210, g.SideScore(bridge.NorthSouth))
	require.Equal(t, -210, g.SideScore(bridge.EastWest))

	_, err = g.PlayTrick(ctx, lowestLegal(g))
	require.True(t, errors.Is(err, bridge.ErrWrongPhase))
}

func TestPlayTrickRetriesIllegalCards(t *testing.T) {
	g := bridge.NewGameFromHands("retry", bridge.West, suitPerSeatHands())
	r := &recordingReporter{}
	g.SetReporter(r)
	ctx := context.Background()

	_, ok, err := g.RunAuction(ctx, scriptedCalls(t, "P", "1NT", "P", "P", "P"))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, bridge.East, g.Leader(), "left of declarer North leads")

	attempts := map[bridge.Seat]int{}
	source := func(ctx context.Context, seat bridge.Seat) (cards.Card, error) {
		attempts[seat]++
		if attempts[seat] == 1 {
			// Someone else's card.
			return g.Hand(seat.Next()).Cards()[0], nil
		}
		return g.Hand(seat).Cards()[0], nil
	}
	winner, err := g.PlayTrick(ctx, source)
	require.NoError(t, err)
	require.Equal(t, bridge.East, winner, "only the led suit counts at no-trump")
	require.Len(t, r.rejectedPlays, 4)
	require.Len(t, r.played, 4)
	require.Equal(t, cards.Cards{r.played[0]}, r.winningCards, "East's lead wins the trick")
	for _, s := range bridge.Seats {
		require.Equal(t, 2, attempts[s])
		require.Equal(t, 12, g.Hand(s).Len())
	}
}

func TestPassedOutDeal(t *testing.T) {
	g := bridge.NewGameFromHands("passed", bridge.South, suitPerSeatHands())
	r := &recordingReporter{}
	g.SetReporter(r)

	_, ok, err := g.RunAuction(context.Background(), scriptedCalls(t, "P", "P", "P", "P"))
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, game.PassedOut, g.Phase())
	require.Equal(t, 0, g.Score())
	require.Equal(t, 1, r.finished)

	_, err = g.PlayTrick(context.Background(), lowestLegal(g))
	require.True(t, errors.Is(err, bridge.ErrWrongPhase))
}

func TestRunAuctionCancelled(t *testing.T) {
	g := bridge.NewGameFromHands("cancelled", bridge.North, suitPerSeatHands())
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	source := func(ctx context.Context, seat bridge.Seat) (bridge.Call, error) {
		calls++
		cancel()
		return bridge.PassCall, nil
	}
	_, _, err := g.RunAuction(ctx, source)
	require.True(t, errors.Is(err, context.Canceled))
	require.Equal(t, 1, calls)
	require.Equal(t, game.Aborted, g.Phase())
}

func TestViewFor(t *testing.T) {
	g := bridge.NewGameFromHands("view", bridge.North, suitPerSeatHands())
	v := g.ViewFor(bridge.North)
	require.Len(t, v.LegalCalls, 36)
	require.Empty(t, g.ViewFor(bridge.East).LegalCalls)
	require.Equal(t, bridge.HandSize, len(v.Hand))

	ctx := context.Background()
	_, _, err := g.RunAuction(ctx, scriptedCalls(t, "P", "2H", "P", "P", "P"))
	require.NoError(t, err)

	// East declares, South leads, West is dummy.
	views := map[bridge.Seat]bridge.View{}
	source := func(ctx context.Context, seat bridge.Seat) (cards.Card, error) {
		v := g.ViewFor(seat)
		views[seat] = v
		return v.LegalPlays[0], nil
	}
	require.Empty(t, g.ViewFor(bridge.West).LegalPlays)
	_, err = g.PlayTrick(ctx, source)
	require.NoError(t, err)

	lead := views[bridge.South]
	require.Nil(t, lead.DummyHand, "dummy is hidden before the opening lead")
	require.Len(t, lead.LegalPlays, bridge.HandSize)
	require.Empty(t, lead.Trick)

	dummy := views[bridge.West]
	require.Len(t, dummy.DummyHand, bridge.HandSize)
	require.Equal(t, dummy.Hand, dummy.DummyHand)
	require.Equal(t, cards.Cards{lead.LegalPlays[0]}, dummy.Trick)
	require.Equal(t, bridge.South, dummy.TrickLeader)
	require.True(t, dummy.Declarer())
	require.Len(t, dummy.LegalPlays, bridge.HandSize)

	north := views[bridge.North]
	require.Len(t, north.Trick, 2)
	require.Equal(t, bridge.West, north.SeatOf(1))
	require.False(t, north.Declarer())
}
