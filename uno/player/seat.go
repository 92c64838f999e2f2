package player

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/game"
)

// seat holds what every participant shares. Notifications are dropped unless
// the embedding player overrides them.
type seat struct {
	name string
}

func (s seat) Name() string {
	return s.name
}

func (s seat) Automated() bool {
	return false
}

func (s seat) NotifyCardsDrawn([]card.Card) {}

func (s seat) NotifyNoMatchingCardsInHand(game.State) {}
