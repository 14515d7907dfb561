package player

import (
	"math/rand"

	"github.com/mpsalisbury/bridge/pkg/cards"
	"github.com/mpsalisbury/bridge/pkg/game/bridge"
)

// Makes a random (legal) call or play. Mostly passes, and bids at most
// one level above the current contract.

func NewRandomStrategy(seed int64) PlayerStrategy {
	return &randomStrategy{rng: rand.New(rand.NewSource(seed))}
}

type randomStrategy struct {
	rng *rand.Rand
}

const randomPassChance = 0.7

func (s randomStrategy) ChooseCall(v bridge.View) bridge.Call {
	if s.rng.Float64() < randomPassChance {
		return bridge.PassCall
	}
	maxLevel := bridge.MinLevel
	for _, c := range v.Calls {
		if c.IsBid() {
			maxLevel = c.Level + 1
		}
	}
	var candidates []bridge.Call
	for _, c := range v.LegalCalls {
		if !c.IsBid() || c.Level <= maxLevel {
			candidates = append(candidates, c)
		}
	}
	return candidates[s.rng.Intn(len(candidates))]
}

func (s randomStrategy) ChooseCardToPlay(v bridge.View) cards.Card {
	return v.LegalPlays[s.rng.Intn(len(v.LegalPlays))]
}
