package game_test

import (
	"testing"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/stretchr/testify/require"
)

func drawAll(deck *game.Deck) []card.Card {
	var cards []card.Card
	for {
		drawn, ok := deck.DrawOne()
		if !ok {
			return cards
		}
		cards = append(cards, drawn)
	}
}

func TestNewDeck(t *testing.T) {
	t.Run("returns_all_108_standard_uno_cards", func(t *testing.T) {
		deck := game.NewDeck()
		require.Equal(t, 108, deck.Size())
		require.ElementsMatch(t, standardDeckCards, drawAll(deck))
	})

	t.Run("has_19_number_cards_per_color", func(t *testing.T) {
		for _, cardColor := range color.All {
			numbers := map[int]int{}
			for _, deckCard := range game.StandardCards() {
				if number, ok := card.Number(deckCard); ok && deckCard.Color() == cardColor {
					numbers[number]++
				}
			}
			require.Equal(t, 1, numbers[0], cardColor.Name())
			for number := 1; number <= 9; number++ {
				require.Equal(t, 2, numbers[number], cardColor.Name())
			}
		}
	})

	t.Run("has_8_action_cards_per_color_and_4_of_each_wild", func(t *testing.T) {
		kinds := map[color.Color]map[card.Kind]int{}
		for _, deckCard := range game.StandardCards() {
			if kinds[deckCard.Color()] == nil {
				kinds[deckCard.Color()] = map[card.Kind]int{}
			}
			kinds[deckCard.Color()][deckCard.Kind()]++
		}
		for _, cardColor := range color.All {
			require.Equal(t, 2, kinds[cardColor][card.KindSkip])
			require.Equal(t, 2, kinds[cardColor][card.KindReverse])
			require.Equal(t, 2, kinds[cardColor][card.KindDrawTwo])
			require.Equal(t, 19, kinds[cardColor][card.KindNumber])
		}
		require.Equal(t, 4, kinds[color.Wild][card.KindWild])
		require.Equal(t, 4, kinds[color.Wild][card.KindWildDrawFour])
	})
}

func TestDrawOne(t *testing.T) {
	t.Run("draws_from_the_top", func(t *testing.T) {
		deck := game.NewDeckOf([]card.Card{
			card.NewNumberCard(color.Red, 1),
			card.NewNumberCard(color.Red, 2),
		})
		drawn, ok := deck.DrawOne()
		require.True(t, ok)
		require.Equal(t, card.NewNumberCard(color.Red, 1), drawn)
		require.Equal(t, 1, deck.Size())
	})

	t.Run("signals_an_empty_deck", func(t *testing.T) {
		deck := game.NewDeckOf(nil)
		drawn, ok := deck.DrawOne()
		require.False(t, ok)
		require.Nil(t, drawn)
		require.True(t, deck.Empty())
	})
}

func TestReturnToBottom(t *testing.T) {
	deck := game.NewDeckOf([]card.Card{
		card.NewNumberCard(color.Red, 1),
	})
	deck.ReturnToBottom(card.NewSkipCard(color.Blue))

	require.Equal(t, []card.Card{
		card.NewNumberCard(color.Red, 1),
		card.NewSkipCard(color.Blue),
	}, deck.Cards())
}

func TestShuffleKeepsComposition(t *testing.T) {
	deck := game.NewDeckOf(game.StandardCards())
	deck.Shuffle()
	require.ElementsMatch(t, standardDeckCards, deck.Cards())
}

var standardDeckCards = []card.Card{
	card.NewWildCard(),
	card.NewWildCard(),
	card.NewWildCard(),
	card.NewWildCard(),
	card.NewWildDrawFourCard(),
	card.NewWildDrawFourCard(),
	card.NewWildDrawFourCard(),
	card.NewWildDrawFourCard(),
	card.NewDrawTwoCard(color.Blue),
	card.NewDrawTwoCard(color.Blue),
	card.NewReverseCard(color.Blue),
	card.NewReverseCard(color.Blue),
	card.NewSkipCard(color.Blue),
	card.NewSkipCard(color.Blue),
	card.NewNumberCard(color.Blue, 0),
	card.NewNumberCard(color.Blue, 1),
	card.NewNumberCard(color.Blue, 1),
	card.NewNumberCard(color.Blue, 2),
	card.NewNumberCard(color.Blue, 2),
	card.NewNumberCard(color.Blue, 3),
	card.NewNumberCard(color.Blue, 3),
	card.NewNumberCard(color.Blue, 4),
	card.NewNumberCard(color.Blue, 4),
	card.NewNumberCard(color.Blue, 5),
	card.NewNumberCard(color.Blue, 5),
	card.NewNumberCard(color.Blue, 6),
	card.NewNumberCard(color.Blue, 6),
	card.NewNumberCard(color.Blue, 7),
	card.NewNumberCard(color.Blue, 7),
	card.NewNumberCard(color.Blue, 8),
	card.NewNumberCard(color.Blue, 8),
	card.NewNumberCard(color.Blue, 9),
	card.NewNumberCard(color.Blue, 9),
	card.NewDrawTwoCard(color.Green),
	card.NewDrawTwoCard(color.Green),
	card.NewReverseCard(color.Green),
	card.NewReverseCard(color.Green),
	card.NewSkipCard(color.Green),
	card.NewSkipCard(color.Green),
	card.NewNumberCard(color.Green, 0),
	card.NewNumberCard(color.Green, 1),
	card.NewNumberCard(color.Green, 1),
	card.NewNumberCard(color.Green, 2),
	card.NewNumberCard(color.Green, 2),
	card.NewNumberCard(color.Green, 3),
	card.NewNumberCard(color.Green, 3),
	card.NewNumberCard(color.Green, 4),
	card.NewNumberCard(color.Green, 4),
	card.NewNumberCard(color.Green, 5),
	card.NewNumberCard(color.Green, 5),
	card.NewNumberCard(color.Green, 6),
	card.NewNumberCard(color.Green, 6),
	card.NewNumberCard(color.Green, 7),
	card.NewNumberCard(color.Green, 7),
	card.NewNumberCard(color.Green, 8),
	card.NewNumberCard(color.Green, 8),
	card.NewNumberCard(color.Green, 9),
	card.NewNumberCard(color.Green, 9),
	card.NewDrawTwoCard(color.Red),
	card.NewDrawTwoCard(color.Red),
	card.NewReverseCard(color.Red),
	card.NewReverseCard(color.Red),
	card.NewSkipCard(color.Red),
	card.NewSkipCard(color.Red),
	card.NewNumberCard(color.Red, 0),
	card.NewNumberCard(color.Red, 1),
	card.NewNumberCard(color.Red, 1),
	card.NewNumberCard(color.Red, 2),
	card.NewNumberCard(color.Red, 2),
	card.NewNumberCard(color.Red, 3),
	card.NewNumberCard(color.Red, 3),
	card.NewNumberCard(color.Red, 4),
	card.NewNumberCard(color.Red, 4),
	card.NewNumberCard(color.Red, 5),
	card.NewNumberCard(color.Red, 5),
	card.NewNumberCard(color.Red, 6),
	card.NewNumberCard(color.Red, 6),
	card.NewNumberCard(color.Red, 7),
	card.NewNumberCard(color.Red, 7),
	card.NewNumberCard(color.Red, 8),
	card.NewNumberCard(color.Red, 8),
	card.NewNumberCard(color.Red, 9),
	card.NewNumberCard(color.Red, 9),
	card.NewDrawTwoCard(color.Yellow),
	card.NewDrawTwoCard(color.Yellow),
	card.NewReverseCard(color.Yellow),
	card.NewReverseCard(color.Yellow),
	card.NewSkipCard(color.Yellow),
	card.NewSkipCard(color.Yellow),
	card.NewNumberCard(color.Yellow, 0),
	card.NewNumberCard(color.Yellow, 1),
	card.NewNumberCard(color.Yellow, 1),
	card.NewNumberCard(color.Yellow, 2),
	card.NewNumberCard(color.Yellow, 2),
	card.NewNumberCard(color.Yellow, 3),
	card.NewNumberCard(color.Yellow, 3),
	card.NewNumberCard(color.Yellow, 4),
	card.NewNumberCard(color.Yellow, 4),
	card.NewNumberCard(color.Yellow, 5),
	card.NewNumberCard(color.Yellow, 5),
	card.NewNumberCard(color.Yellow, 6),
	card.NewNumberCard(color.Yellow, 6),
	card.NewNumberCard(color.Yellow, 7),
	card.NewNumberCard(color.Yellow, 7),
	card.NewNumberCard(color.Yellow, 8),
	card.NewNumberCard(color.Yellow, 8),
	card.NewNumberCard(color.Yellow, 9),
	card.NewNumberCard(color.Yellow, 9),
}
