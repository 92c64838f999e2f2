package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/msg"
	"github.com/ratel-online/uno/uno/strategy"
)

// Console plays through a terminal, one line of input per answer.
type Console struct {
	in      *bufio.Reader
	out     io.Writer
	delay   time.Duration
	actions *msg.ActionLog
}

// NewConsole pauses for delay after every line it prints.
func NewConsole(in io.Reader, out io.Writer, delay time.Duration) *Console {
	return &Console{
		in:      bufio.NewReader(in),
		out:     out,
		delay:   delay,
		actions: msg.NewActionLog(),
	}
}

func (c *Console) Welcome() error {
	c.Printlns([]string{
		"",
		msg.Message.Welcome(),
		"Cli-Based Card Game Interface",
		"",
	})
	return nil
}

func (c *Console) PromptCredential() (string, error) {
	c.Printlns([]string{
		color.Yellow.Paint("AI Opponent Setup"),
		strings.Repeat("─", 35),
		"To unlock the " + color.Red.Paint("Hard") + " opponent, you need a Google Gemini API key.",
		"Without one you can still play Easy and Medium.",
	})
	hasKey, err := c.promptYesNo("Do you have a Gemini API key? (y/n): ")
	if err != nil {
		return "", err
	}
	if !hasKey {
		c.Println("No problem! You can still play against Easy and Medium.")
		return "", nil
	}
	for {
		key, err := c.readLine("Enter your Gemini API key: ")
		if err != nil {
			return "", err
		}
		if key != "" {
			c.Println(color.Green.Paint("API key configured, Hard mode is unlocked!"))
			return key, nil
		}
		c.Println(color.Red.Paint("Please enter a valid API key"))
	}
}

func (c *Console) PromptName() (string, error) {
	c.Printlns([]string{color.Yellow.Paint("PLAYER SETUP"), strings.Repeat("─", 30)})
	for {
		name, err := c.readLine("Enter your name: ")
		if err != nil {
			return "", err
		}
		if name != "" {
			return name, nil
		}
		c.Println(color.Red.Paint("Please enter a valid name!"))
	}
}

func (c *Console) PromptDifficulty(hardUnlocked bool) (strategy.Difficulty, error) {
	hardStatus := color.Red.Paint("LOCKED - requires API key")
	if hardUnlocked {
		hardStatus = color.Green.Paint("UNLOCKED")
	}
	c.Printlns([]string{
		color.Yellow.Paint("CHOOSE YOUR OPPONENT"),
		strings.Repeat("─", 40),
		"  1. Easy   - plays whatever it likes",
		"  2. Medium - hits hard and sheds high cards",
		"  3. Hard   - reasons with Gemini, " + hardStatus,
	})
	for {
		input, err := c.readLine("Select difficulty (1-3): ")
		if err != nil {
			return 0, err
		}
		difficulty, err := strategy.ParseDifficulty(input)
		if err != nil {
			c.Println(color.Red.Paint("Please enter 1, 2, or 3"))
			continue
		}
		if difficulty == strategy.Hard && !hardUnlocked {
			c.Println(color.Red.Paint("Hard requires an API key! Choose option 1 or 2."))
			continue
		}
		return difficulty, nil
	}
}

// StartGame clears the action log of any previous game.
func (c *Console) StartGame(playerName string, opponentName string) error {
	c.actions.Clear()
	c.Printlns([]string{
		color.Green.Paint("Game setup complete!"),
		"Player: " + playerName,
		"Opponent: " + opponentName,
	})
	return nil
}

func (c *Console) GameOver(winner string, statuses []game.PlayerStatus) error {
	c.Printlns([]string{
		"",
		color.Green.Paint("GAME OVER!"),
		strings.Repeat("-", 30),
		"Winner: " + winner,
		"",
		msg.FinalScores(statuses),
	})
	return nil
}

func (c *Console) PromptPlayAgain() (bool, error) {
	return c.promptYesNo("Would you like another game? (y/n): ")
}

func (c *Console) PromptRetry(cause error) (bool, error) {
	c.Println(color.Red.Paintf("An unexpected error occurred: %v", cause))
	return c.promptYesNo("Would you like to try again? (y/n): ")
}

func (c *Console) Goodbye() error {
	c.Println(color.Green.Paint("Thanks for playing UNO!"))
	return nil
}

func (c *Console) RenderState(gameState game.State) error {
	c.Println(msg.Board(gameState, c.actions.Recent()))
	return nil
}

func (c *Console) PromptCardChoice(playableCards []card.Card) (int, error) {
	c.Printlns([]string{color.Green.Paint("Playable Cards:"), strings.TrimRight(msg.NumberedCards(playableCards), "\n")})
	return c.promptCardIndex(len(playableCards))
}

func (c *Console) PromptColorChoice() (color.Color, error) {
	return c.promptColor()
}

func (c *Console) PromptDrawPlayDecision(drawnCard card.Card) (bool, error) {
	return c.promptYesNo(fmt.Sprintf("Play drawn card (%s)? (y/n): ", drawnCard))
}

func (c *Console) Notify(message string) error {
	c.actions.Add(message)
	c.Println(message)
	return nil
}
