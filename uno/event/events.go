package event

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// FirstCardPlayedPayload carries the opening card turned from the deck.
type FirstCardPlayedPayload struct {
	Card card.Card
}

type FirstCardPlayedListener interface {
	OnFirstCardPlayed(FirstCardPlayedPayload)
}

type CardPlayedPayload struct {
	PlayerName string
	Card       card.Card
}

type CardPlayedListener interface {
	OnCardPlayed(CardPlayedPayload)
}

// CardReasonedPayload explains why an automated player chose its card.
type CardReasonedPayload struct {
	PlayerName string
	Reasoning  string
}

type CardReasonedListener interface {
	OnCardReasoned(CardReasonedPayload)
}

type ColorPickedPayload struct {
	PlayerName string
	Color      color.Color
}

type ColorPickedListener interface {
	OnColorPicked(ColorPickedPayload)
}

type CardsDrawnPayload struct {
	PlayerName string
	Amount     int
	// Forced is set when the cards were drawn as the effect of an opponent's card.
	Forced bool
}

type CardsDrawnListener interface {
	OnCardsDrawn(CardsDrawnPayload)
}

// PlayerPassedPayload names a player who drew and ended the turn without playing.
type PlayerPassedPayload struct {
	PlayerName string
}

type PlayerPassedListener interface {
	OnPlayerPassed(PlayerPassedPayload)
}

type TurnSkippedPayload struct {
	PlayerName string
}

type TurnSkippedListener interface {
	OnTurnSkipped(TurnSkippedPayload)
}

type TurnOrderReversedPayload struct {
	Direction int
}

type TurnOrderReversedListener interface {
	OnTurnOrderReversed(TurnOrderReversedPayload)
}

// DeckReshuffledPayload counts the cards moved from the discard pile back into the deck.
type DeckReshuffledPayload struct {
	Amount int
}

type DeckReshuffledListener interface {
	OnDeckReshuffled(DeckReshuffledPayload)
}

type GameWonPayload struct {
	PlayerName string
}

type GameWonListener interface {
	OnGameWon(GameWonPayload)
}
