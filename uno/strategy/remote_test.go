package strategy_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/reasoning"
	"github.com/ratel-online/uno/uno/strategy"
	"github.com/stretchr/testify/require"
)

type fakeReasoner struct {
	reply    reasoning.Reply
	err      error
	block    bool
	requests []reasoning.Request
}

func (r *fakeReasoner) Reason(ctx context.Context, request reasoning.Request) (reasoning.Reply, error) {
	r.requests = append(r.requests, request)
	if r.block {
		<-ctx.Done()
		return reasoning.Reply{}, ctx.Err()
	}
	return r.reply, r.err
}

func intPointer(value int) *int {
	return &value
}

func stringPointer(value string) *string {
	return &value
}

func TestRemoteChooseCard(t *testing.T) {
	playableCards := []card.Card{
		card.NewNumberCard(color.Green, 4),
		card.NewSkipCard(color.Green),
		card.NewWildCard(),
	}
	gameState := game.State{
		GameID:            "test",
		LastPlayedCard:    card.NewNumberCard(color.Green, 7),
		ActiveColor:       color.Green,
		DeckSize:          40,
		CurrentPlayerHand: append([]card.Card{card.NewNumberCard(color.Red, 1)}, playableCards...),
		OpponentHandSize:  1,
	}

	t.Run("plays_the_card_picked_by_the_reasoner", func(t *testing.T) {
		reasoner := &fakeReasoner{reply: reasoning.Reply{
			CardIndex: intPointer(2),
			Reasoning: "Switching to red",
			WildColor: stringPointer("Red"),
		}}
		decision := strategy.NewRemote(reasoner, time.Second).ChooseCard(context.Background(), playableCards, gameState)

		require.Equal(t, card.NewWildCard(), decision.Card)
		require.Equal(t, color.Red, decision.WildColor)
		require.Equal(t, "Switching to red", decision.Reasoning)

		require.Len(t, reasoner.requests, 1)
		request := reasoner.requests[0]
		require.Equal(t, "Green", request.CurrentColor)
		require.Len(t, request.PlayableCards, 3)
		require.Equal(t, 4, request.MyHandSize)
		require.Equal(t, 1, request.OpponentHandSize)
		require.Equal(t, 40, request.DeckSize)
	})

	t.Run("ignores_an_unknown_wild_color", func(t *testing.T) {
		reasoner := &fakeReasoner{reply: reasoning.Reply{CardIndex: intPointer(2), WildColor: stringPointer("Purple")}}
		decision := strategy.NewRemote(reasoner, time.Second).ChooseCard(context.Background(), playableCards, gameState)
		require.Equal(t, card.NewWildCard(), decision.Card)
		require.Nil(t, decision.WildColor)
	})

	scenarios := []struct {
		description string
		reasoner    *fakeReasoner
	}{
		{
			description: "falls_back_on_transport_error",
			reasoner:    &fakeReasoner{err: errors.New("connection refused")},
		},
		{
			description: "falls_back_on_error_status",
			reasoner:    &fakeReasoner{err: &reasoning.StatusError{StatusCode: 503}},
		},
		{
			description: "falls_back_on_index_out_of_range",
			reasoner:    &fakeReasoner{reply: reasoning.Reply{CardIndex: intPointer(3)}},
		},
		{
			description: "falls_back_on_negative_index",
			reasoner:    &fakeReasoner{reply: reasoning.Reply{CardIndex: intPointer(-1)}},
		},
		{
			description: "falls_back_on_missing_index",
			reasoner:    &fakeReasoner{reply: reasoning.Reply{Reasoning: "no idea"}},
		},
		{
			description: "falls_back_on_timeout",
			reasoner:    &fakeReasoner{block: true},
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			started := time.Now()
			decision := strategy.NewRemote(scenario.reasoner, 50*time.Millisecond).ChooseCard(context.Background(), playableCards, gameState)

			require.Less(t, int64(time.Since(started)), int64(5*time.Second))
			require.Equal(t, card.NewSkipCard(color.Green), decision.Card)
			require.Equal(t, color.Red, decision.WildColor)
			require.Contains(t, decision.Reasoning, "fallback")
		})
	}

	t.Run("falls_back_to_the_first_card_when_opponent_is_not_close", func(t *testing.T) {
		relaxed := gameState
		relaxed.OpponentHandSize = 6
		decision := strategy.NewRemote(&fakeReasoner{err: errors.New("boom")}, time.Second).ChooseCard(context.Background(), playableCards, relaxed)
		require.Equal(t, card.NewNumberCard(color.Green, 4), decision.Card)
		require.Equal(t, color.Red, decision.WildColor)
	})
}
