package strategy

import (
	"context"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/game"
)

var kindPriority = []card.Kind{
	card.KindWildDrawFour,
	card.KindDrawTwo,
	card.KindSkip,
	card.KindReverse,
	card.KindWild,
}

// Heuristic attacks an opponent about to win, prefers action cards and sheds
// high numbers otherwise.
type Heuristic struct{}

func NewHeuristic() Heuristic {
	return Heuristic{}
}

func (Heuristic) ChooseCard(_ context.Context, playableCards []card.Card, gameState game.State) Decision {
	if gameState.OpponentHandSize == 1 {
		if aggressive, ok := firstAggressive(playableCards); ok {
			return Decision{Card: aggressive, Reasoning: "Preventing opponent victory"}
		}
	}

	for _, kind := range kindPriority {
		for _, playableCard := range playableCards {
			if playableCard.Kind() == kind {
				return Decision{Card: playableCard, Reasoning: "Playing " + kind.String()}
			}
		}
	}

	var (
		highestCard   card.Card
		highestNumber = -1
	)
	for _, playableCard := range playableCards {
		if number, ok := card.Number(playableCard); ok && number > highestNumber {
			highestCard, highestNumber = playableCard, number
		}
	}
	if highestCard != nil {
		return Decision{Card: highestCard, Reasoning: "Playing high-value number card"}
	}

	return Decision{Card: playableCards[0], Reasoning: "Basic choice"}
}
