package strategy

import (
	"context"
	"math/rand"
	"time"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/game"
)

const calmPlayChance = 0.3

// Random plays any playable card, now and then steering clear of aggressive ones.
type Random struct {
	rand *rand.Rand
}

// NewRandom uses source for every roll, or a time seeded one when source is nil.
func NewRandom(source *rand.Rand) *Random {
	if source == nil {
		source = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Random{rand: source}
}

func (s *Random) ChooseCard(_ context.Context, playableCards []card.Card, _ game.State) Decision {
	if s.rand.Float64() < calmPlayChance && len(playableCards) > 1 {
		calmCards := make([]card.Card, 0, len(playableCards))
		for _, playableCard := range playableCards {
			if !playableCard.Kind().IsAggressive() {
				calmCards = append(calmCards, playableCard)
			}
		}
		if len(calmCards) > 0 {
			return Decision{Card: calmCards[s.rand.Intn(len(calmCards))], Reasoning: "Random choice"}
		}
	}
	return Decision{Card: playableCards[s.rand.Intn(len(playableCards))], Reasoning: "Random play"}
}
