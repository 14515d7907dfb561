package player

import (
	"context"
	"fmt"

	"github.com/mpsalisbury/bridge/pkg/cards"
	"github.com/mpsalisbury/bridge/pkg/game/bridge"
	"golang.org/x/exp/slices"
)

// PlayerStrategy picks moves from a view. It is only asked when the view has legal moves.
type PlayerStrategy interface {
	ChooseCall(bridge.View) bridge.Call
	ChooseCardToPlay(bridge.View) cards.Card
}

func newStrategyPlayer(strategy PlayerStrategy) bridge.Player {
	return &strategyPlayer{strategy: strategy}
}

type strategyPlayer struct {
	strategy PlayerStrategy
}

func (p strategyPlayer) Call(ctx context.Context, v bridge.View) (bridge.Call, error) {
	if len(v.LegalCalls) == 0 {
		return bridge.Call{}, fmt.Errorf("no legal calls for %s", v.Seat)
	}
	call := p.strategy.ChooseCall(v)
	if !slices.Contains(v.LegalCalls, call) {
		return bridge.Call{}, fmt.Errorf("strategy chose illegal call %s for %s", call, v.Seat)
	}
	return call, nil
}

func (p strategyPlayer) Play(ctx context.Context, v bridge.View) (cards.Card, error) {
	if len(v.LegalPlays) == 0 {
		return cards.Card{}, fmt.Errorf("no legal plays for %s", v.Seat)
	}
	card := p.strategy.ChooseCardToPlay(v)
	if !v.LegalPlays.ContainsCard(card) {
		return cards.Card{}, fmt.Errorf("strategy chose illegal card %s for %s", card, v.Seat)
	}
	return card, nil
}
