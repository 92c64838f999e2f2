package strategy_test

import (
	"context"
	"testing"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/strategy"
	"github.com/stretchr/testify/require"
)

func TestHeuristicChooseCard(t *testing.T) {
	scenarios := []struct {
		description      string
		playableCards    []card.Card
		opponentHandSize int
		expected         card.Card
	}{
		{
			description: "attacks_an_opponent_with_one_card",
			playableCards: []card.Card{
				card.NewReverseCard(color.Red),
				card.NewNumberCard(color.Red, 9),
				card.NewSkipCard(color.Red),
				card.NewDrawTwoCard(color.Red),
			},
			opponentHandSize: 1,
			expected:         card.NewSkipCard(color.Red),
		},
		{
			description: "prefers_wild_draw_four_over_other_actions",
			playableCards: []card.Card{
				card.NewSkipCard(color.Red),
				card.NewWildDrawFourCard(),
				card.NewDrawTwoCard(color.Red),
			},
			opponentHandSize: 5,
			expected:         card.NewWildDrawFourCard(),
		},
		{
			description: "prefers_draw_two_over_skip",
			playableCards: []card.Card{
				card.NewSkipCard(color.Red),
				card.NewDrawTwoCard(color.Red),
			},
			opponentHandSize: 5,
			expected:         card.NewDrawTwoCard(color.Red),
		},
		{
			description: "prefers_reverse_over_wild",
			playableCards: []card.Card{
				card.NewWildCard(),
				card.NewReverseCard(color.Blue),
			},
			opponentHandSize: 5,
			expected:         card.NewReverseCard(color.Blue),
		},
		{
			description: "prefers_wild_over_numbers",
			playableCards: []card.Card{
				card.NewNumberCard(color.Red, 9),
				card.NewWildCard(),
			},
			opponentHandSize: 5,
			expected:         card.NewWildCard(),
		},
		{
			description: "plays_the_first_highest_number",
			playableCards: []card.Card{
				card.NewNumberCard(color.Red, 3),
				card.NewNumberCard(color.Red, 8),
				card.NewNumberCard(color.Blue, 8),
				card.NewNumberCard(color.Red, 0),
			},
			opponentHandSize: 5,
			expected:         card.NewNumberCard(color.Red, 8),
		},
		{
			description: "without_aggressive_cards_follows_priorities_against_one_card",
			playableCards: []card.Card{
				card.NewNumberCard(color.Red, 3),
				card.NewReverseCard(color.Red),
			},
			opponentHandSize: 1,
			expected:         card.NewReverseCard(color.Red),
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			decision := strategy.NewHeuristic().ChooseCard(context.Background(), scenario.playableCards, game.State{
				OpponentHandSize: scenario.opponentHandSize,
			})
			require.Equal(t, scenario.expected, decision.Card)
			require.Nil(t, decision.WildColor)
			require.NotEmpty(t, decision.Reasoning)
		})
	}
}
