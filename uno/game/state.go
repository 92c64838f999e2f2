package game

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

type PlayerStatus struct {
	Name      string
	HandSize  int
	Automated bool
	Current   bool
}

// State is the view of the game handed to the player about to act.
type State struct {
	GameID            string
	LastPlayedCard    card.Card
	ActiveColor       color.Color
	Direction         int
	DeckSize          int
	CurrentPlayer     string
	CurrentPlayerHand []card.Card
	OpponentHandSize  int
	Players           []PlayerStatus
}

func (s State) HandSize() int {
	return len(s.CurrentPlayerHand)
}
