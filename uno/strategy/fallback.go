package strategy

import (
	"context"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
)

const (
	aggressiveFallbackReasoning = "Aggressive play (fallback)"
	safeFallbackReasoning       = "Safe choice (fallback)"
)

// Fallback stands in when the remote reasoner cannot answer. Its color hint
// is always red.
type Fallback struct{}

func (Fallback) ChooseCard(_ context.Context, playableCards []card.Card, gameState game.State) Decision {
	if gameState.OpponentHandSize == 1 {
		if aggressive, ok := firstAggressive(playableCards); ok {
			return Decision{Card: aggressive, WildColor: color.Red, Reasoning: aggressiveFallbackReasoning}
		}
	}
	return Decision{Card: playableCards[0], WildColor: color.Red, Reasoning: safeFallbackReasoning}
}
