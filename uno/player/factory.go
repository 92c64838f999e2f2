package player

import (
	"fmt"

	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/strategy"
)

func BotName(difficulty strategy.Difficulty) string {
	return fmt.Sprintf("Computer (%s)", difficulty)
}

// CreatePlayers seats the human first and the bot second.
func CreatePlayers(humanPlayerName string, presenter Presenter, difficulty strategy.Difficulty, botStrategy strategy.Strategy) []game.Player {
	return []game.Player{
		NewHumanPlayer(humanPlayerName, presenter),
		NewBotPlayer(BotName(difficulty), botStrategy),
	}
}
