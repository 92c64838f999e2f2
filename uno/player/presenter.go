package player

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
)

// DrawIndex is returned by PromptCardChoice when the human draws instead of playing.
const DrawIndex = -1

// Presenter is whatever a human uses to follow and steer the game. Prompts
// block until they get a valid answer or the input is gone.
type Presenter interface {
	RenderState(gameState game.State) error
	// PromptCardChoice returns an index into playableCards or DrawIndex.
	PromptCardChoice(playableCards []card.Card) (int, error)
	PromptColorChoice() (color.Color, error)
	PromptDrawPlayDecision(drawnCard card.Card) (bool, error)
	Notify(message string) error
}
