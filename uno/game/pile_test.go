package game_test

import (
	"testing"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/stretchr/testify/require"
)

func TestCards(t *testing.T) {
	pile := game.NewPile()
	pile.Add(card.NewNumberCard(color.Blue, 5))
	pile.Add(card.NewNumberCard(color.Green, 5))
	pile.Add(card.NewNumberCard(color.Green, 7))
	require.Equal(t, []card.Card{
		card.NewNumberCard(color.Blue, 5),
		card.NewNumberCard(color.Green, 5),
		card.NewNumberCard(color.Green, 7),
	}, pile.Cards())
	require.Equal(t, 3, pile.Size())
}

func TestTakeAllButTop(t *testing.T) {
	t.Run("keeps_the_top_card", func(t *testing.T) {
		pile := game.NewPile()
		pile.Add(card.NewNumberCard(color.Blue, 5))
		pile.Add(card.NewNumberCard(color.Green, 5))
		pile.Add(card.NewWildCard())

		taken := pile.TakeAllButTop()

		require.Equal(t, []card.Card{
			card.NewNumberCard(color.Blue, 5),
			card.NewNumberCard(color.Green, 5),
		}, taken)
		require.Equal(t, []card.Card{card.NewWildCard()}, pile.Cards())
		require.Equal(t, card.NewWildCard(), pile.Top())
	})

	t.Run("takes_nothing_from_a_single_card_pile", func(t *testing.T) {
		pile := game.NewPile()
		pile.Add(card.NewNumberCard(color.Blue, 5))
		require.Empty(t, pile.TakeAllButTop())
		require.Equal(t, 1, pile.Size())
	})

	t.Run("takes_nothing_from_an_empty_pile", func(t *testing.T) {
		pile := game.NewPile()
		require.Empty(t, pile.TakeAllButTop())
	})
}

func TestTop(t *testing.T) {
	pile := game.NewPile()
	require.Nil(t, pile.Top())
	pile.Add(card.NewNumberCard(color.Blue, 5))
	pile.Add(card.NewNumberCard(color.Green, 5))
	pile.Add(card.NewNumberCard(color.Green, 7))
	require.Equal(t, card.NewNumberCard(color.Green, 7), pile.Top())
}
