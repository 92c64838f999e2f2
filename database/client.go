package database

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/msg"
	"github.com/ratel-online/uno/uno/player"
	"github.com/ratel-online/uno/uno/strategy"
)

// The methods below let a remote player sit at the table. Questions asked
// during a game expire after consts.PlayTimeout and are answered for the player.

func (p *Player) Welcome() error {
	return p.WriteString(fmt.Sprintf("\n%s\nWelcome %s, you are playing against the computer.\n\n", msg.Message.Welcome(), p.Name))
}

// PromptCredential never asks: keys are configured on the server only.
func (p *Player) PromptCredential() (string, error) {
	return "", nil
}

func (p *Player) PromptName() (string, error) {
	if p.Name != "" {
		return p.Name, nil
	}
	for {
		if err := p.WriteString("Enter your name: \n"); err != nil {
			return "", err
		}
		name, err := p.AskForString()
		if err != nil {
			return "", err
		}
		if name != "" {
			p.Name = name
			return name, nil
		}
		_ = p.WriteString(color.Red.Paint("Please enter a valid name!") + "\n")
	}
}

func (p *Player) PromptDifficulty(hardUnlocked bool) (strategy.Difficulty, error) {
	hardStatus := color.Red.Paint("LOCKED - no API key on this server")
	if hardUnlocked {
		hardStatus = color.Green.Paint("UNLOCKED")
	}
	menu := fmt.Sprintf("%s\n%s\n  1. Easy\n  2. Medium\n  3. Hard, %s\nSelect difficulty (1-3): \n",
		color.Yellow.Paint("CHOOSE YOUR OPPONENT"), strings.Repeat("─", 40), hardStatus)
	if err := p.WriteString(menu); err != nil {
		return 0, err
	}
	for {
		input, err := p.AskForString()
		if err != nil {
			return 0, err
		}
		difficulty, err := strategy.ParseDifficulty(input)
		if err != nil {
			_ = p.WriteString(color.Red.Paint("Please enter 1, 2, or 3") + "\n")
			continue
		}
		if difficulty == strategy.Hard && !hardUnlocked {
			_ = p.WriteString(color.Red.Paint("Hard is not available on this server! Choose option 1 or 2.") + "\n")
			continue
		}
		return difficulty, nil
	}
}

func (p *Player) StartGame(playerName string, opponentName string) error {
	p.actions.Clear()
	return p.WriteString(fmt.Sprintf("%s\nPlayer: %s\nOpponent: %s\n",
		color.Green.Paint("Game setup complete!"), playerName, opponentName))
}

func (p *Player) GameOver(winner string, statuses []game.PlayerStatus) error {
	log.Infof("player %s finished a game, winner %s\n", p, winner)
	return p.WriteString(fmt.Sprintf("\n%s\n%s\nWinner: %s\n\n%s",
		color.Green.Paint("GAME OVER!"), strings.Repeat("-", 30), winner, msg.FinalScores(statuses)))
}

func (p *Player) PromptPlayAgain() (bool, error) {
	return p.askYesNo("Would you like another game? (y/n): \n")
}

func (p *Player) PromptRetry(cause error) (bool, error) {
	_ = p.WriteString(color.Red.Paintf("An unexpected error occurred: %v", cause) + "\n")
	return p.askYesNo("Would you like to try again? (y/n): \n")
}

func (p *Player) Goodbye() error {
	return p.WriteString(color.Green.Paint("Thanks for playing UNO!") + "\n")
}

func (p *Player) RenderState(gameState game.State) error {
	return p.WriteString(msg.Board(gameState, p.actions.Recent()))
}

// PromptCardChoice plays the first playable card when the player runs out of time.
func (p *Player) PromptCardChoice(playableCards []card.Card) (int, error) {
	message := fmt.Sprintf("%s\n%sPlay card (1-%d) or 'd' to draw: \n",
		color.Green.Paint("Playable Cards:"), msg.NumberedCards(playableCards), len(playableCards))
	if err := p.WriteString(message); err != nil {
		return 0, err
	}
	for {
		input, err := p.AskForString(consts.PlayTimeout)
		if errors.Is(err, consts.ErrorsTimeout) {
			_ = p.WriteString(fmt.Sprintf("Time is up, playing %s\n", playableCards[0]))
			return 0, nil
		}
		if err != nil {
			return 0, err
		}
		if strings.EqualFold(input, "d") {
			return player.DrawIndex, nil
		}
		number, err := strconv.Atoi(input)
		if err != nil || number < 1 || number > len(playableCards) {
			_ = p.WriteString(color.Red.Paint("Invalid choice!") + "\n")
			continue
		}
		return number - 1, nil
	}
}

// PromptColorChoice picks red when the player runs out of time.
func (p *Player) PromptColorChoice() (color.Color, error) {
	message := fmt.Sprintf("Choose color (%s/%s/%s/%s): \n",
		color.Red.Paint("R"), color.Blue.Paint("B"), color.Green.Paint("G"), color.Yellow.Paint("Y"))
	if err := p.WriteString(message); err != nil {
		return nil, err
	}
	for {
		input, err := p.AskForString(consts.PlayTimeout)
		if errors.Is(err, consts.ErrorsTimeout) {
			return color.Red, nil
		}
		if err != nil {
			return nil, err
		}
		chosenColor, err := color.ByName(input)
		if err != nil {
			_ = p.WriteString(color.Red.Paint("Use R, B, G, or Y!") + "\n")
			continue
		}
		return chosenColor, nil
	}
}

// PromptDrawPlayDecision keeps the drawn card when the player runs out of time.
func (p *Player) PromptDrawPlayDecision(drawnCard card.Card) (bool, error) {
	return p.askYesNo(fmt.Sprintf("Play drawn card (%s)? (y/n): \n", drawnCard), consts.PlayTimeout)
}

func (p *Player) Notify(message string) error {
	p.actions.Add(message)
	return p.WriteString(message + "\n")
}

func (p *Player) askYesNo(message string, timeout ...time.Duration) (bool, error) {
	if err := p.WriteString(message); err != nil {
		return false, err
	}
	for {
		input, err := p.AskForString(timeout...)
		if errors.Is(err, consts.ErrorsTimeout) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		switch strings.ToLower(input) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		_ = p.WriteString(color.Red.Paint("Please answer y or n") + "\n")
	}
}
