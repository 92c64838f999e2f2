package ui_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/player"
	"github.com/ratel-online/uno/uno/strategy"
	"github.com/ratel-online/uno/uno/ui"
	"github.com/stretchr/testify/require"
)

func newConsole(input string) (*ui.Console, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return ui.NewConsole(strings.NewReader(input), out, 0), out
}

var _ player.Presenter = (*ui.Console)(nil)

func TestPromptCardChoice(t *testing.T) {
	playableCards := []card.Card{card.NewNumberCard(color.Red, 1), card.NewSkipCard(color.Red)}

	scenarios := []struct {
		description string
		input       string
		expected    int
		complaints  []string
	}{
		{
			description: "picks_by_number",
			input:       "2\n",
			expected:    1,
		},
		{
			description: "draws_on_d",
			input:       "D\n",
			expected:    player.DrawIndex,
		},
		{
			description: "reprompts_on_text",
			input:       "skip\n1\n",
			expected:    0,
			complaints:  []string{"Enter a number or 'd'!"},
		},
		{
			description: "reprompts_out_of_range",
			input:       "0\n3\n2\n",
			expected:    1,
			complaints:  []string{"Invalid choice!"},
		},
		{
			description: "accepts_last_line_without_newline",
			input:       "1",
			expected:    0,
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			console, out := newConsole(scenario.input)
			index, err := console.PromptCardChoice(playableCards)
			require.NoError(t, err)
			require.Equal(t, scenario.expected, index)
			require.Contains(t, out.String(), "Play card (1-2) or 'd' to draw: ")
			for _, complaint := range scenario.complaints {
				require.Contains(t, out.String(), complaint)
			}
		})
	}
}

func TestReadLineEndings(t *testing.T) {
	scenarios := []struct {
		description string
		input       string
		expected    error
	}{
		{description: "closed_input", input: "", expected: consts.ErrorsInputClosed},
		{description: "exit", input: "exit\n", expected: consts.ErrorsExist},
		{description: "quit_in_capitals", input: "QUIT\n", expected: consts.ErrorsExist},
		{description: "input_closed_after_invalid_answer", input: "maybe\n", expected: consts.ErrorsInputClosed},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			console, _ := newConsole(scenario.input)
			_, err := console.PromptDrawPlayDecision(card.NewWildCard())
			require.Equal(t, scenario.expected, err)
		})
	}
}

func TestPromptColorChoice(t *testing.T) {
	console, out := newConsole("purple\nw\ng\n")
	picked, err := console.PromptColorChoice()
	require.NoError(t, err)
	require.Equal(t, color.Green, picked)
	require.Equal(t, 2, strings.Count(out.String(), "Use R, B, G, or Y!"))
}

func TestPromptDrawPlayDecision(t *testing.T) {
	console, out := newConsole("Y\n")
	playIt, err := console.PromptDrawPlayDecision(card.NewNumberCard(color.Blue, 4))
	require.NoError(t, err)
	require.True(t, playIt)
	require.Contains(t, out.String(), "Play drawn card (")

	console, _ = newConsole("sure\nn\n")
	playIt, err = console.PromptDrawPlayDecision(card.NewNumberCard(color.Blue, 4))
	require.NoError(t, err)
	require.False(t, playIt)
}

func TestPromptName(t *testing.T) {
	console, out := newConsole("\n   \n  Alice \n")
	name, err := console.PromptName()
	require.NoError(t, err)
	require.Equal(t, "Alice", name)
	require.Equal(t, 2, strings.Count(out.String(), "Please enter a valid name!"))
}

func TestPromptCredential(t *testing.T) {
	t.Run("without_key", func(t *testing.T) {
		console, _ := newConsole("n\n")
		key, err := console.PromptCredential()
		require.NoError(t, err)
		require.Empty(t, key)
	})

	t.Run("with_key", func(t *testing.T) {
		console, out := newConsole("y\n\nsecret-key\n")
		key, err := console.PromptCredential()
		require.NoError(t, err)
		require.Equal(t, "secret-key", key)
		require.Contains(t, out.String(), "Please enter a valid API key")
	})
}

func TestPromptDifficulty(t *testing.T) {
	t.Run("hard_is_locked_without_key", func(t *testing.T) {
		console, out := newConsole("3\n4\n2\n")
		difficulty, err := console.PromptDifficulty(false)
		require.NoError(t, err)
		require.Equal(t, strategy.Medium, difficulty)
		require.Contains(t, out.String(), "Hard requires an API key! Choose option 1 or 2.")
		require.Contains(t, out.String(), "Please enter 1, 2, or 3")
	})

	t.Run("hard_is_available_with_key", func(t *testing.T) {
		console, _ := newConsole("3\n")
		difficulty, err := console.PromptDifficulty(true)
		require.NoError(t, err)
		require.Equal(t, strategy.Hard, difficulty)
	})
}

func TestRenderStateShowsRecentActions(t *testing.T) {
	console, out := newConsole("")
	for _, message := range []string{"one", "two", "three", "four"} {
		require.NoError(t, console.Notify(message))
	}
	out.Reset()

	require.NoError(t, console.RenderState(game.State{
		LastPlayedCard: card.NewNumberCard(color.Red, 5),
		ActiveColor:    color.Red,
		DeckSize:       80,
		Players: []game.PlayerStatus{
			{Name: "Alice", HandSize: 7, Current: true},
			{Name: "Computer (Easy)", HandSize: 1, Automated: true},
		},
		CurrentPlayerHand: []card.Card{card.NewNumberCard(color.Red, 1)},
	}))

	rendered := out.String()
	require.Contains(t, rendered, "Deck: 80 cards")
	require.Contains(t, rendered, "Alice: 7 cards")
	require.Contains(t, rendered, "Computer (Easy): 1 cards")
	require.Contains(t, rendered, "(UNO!)")
	require.Contains(t, rendered, "▶")
	require.NotContains(t, rendered, "• one")
	require.Contains(t, rendered, "• two")
	require.Contains(t, rendered, "• four")
	require.Contains(t, rendered, "1. ")
}
