package game

import (
	"context"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// Player is a participant: a human behind a presentation boundary or a bot
// bound to a strategy.
type Player interface {
	Name() string
	Automated() bool
	// Play is only called with at least one playable card.
	Play(ctx context.Context, playableCards []card.Card, gameState State) (Choice, error)
	// PickColor is called after a wild card left the hand; hint is the color the
	// player suggested in its Choice, if any.
	PickColor(gameState State, hint color.Color) (color.Color, error)
	// PlayDrawnCard asks whether a just drawn, playable card should be played at once.
	PlayDrawnCard(drawnCard card.Card, gameState State) (bool, error)
	NotifyCardsDrawn(drawnCards []card.Card)
	// NotifyNoMatchingCardsInHand is called before the forced draw of a turn
	// without playable cards.
	NotifyNoMatchingCardsInHand(gameState State)
}

// Choice is the outcome of Player.Play. Draw asks for a card from the deck instead
// of playing one.
type Choice struct {
	Card      card.Card
	Draw      bool
	WildColor color.Color
	Reasoning string
}
