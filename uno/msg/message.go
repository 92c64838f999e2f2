package msg

import (
	"fmt"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

var Message = MessageWriter{}

// MessageWriter words every game event the way players read it.
type MessageWriter struct{}

func (m MessageWriter) FirstCardPlayed(card card.Card) string {
	return fmt.Sprintf("First card is %s", card)
}

func (m MessageWriter) HumanPlayerDrewCards(cards []card.Card) string {
	if len(cards) == 1 {
		return fmt.Sprintf("You drew %s", cards[0])
	}
	return fmt.Sprintf("You drew %d cards: %s", len(cards), cards)
}

func (m MessageWriter) HumanPlayerHasNoMatchingCardsInHand(playerName string, lastPlayedCard card.Card) string {
	return fmt.Sprintf("%s, none of your cards match %s. Drawing...", playerName, lastPlayedCard)
}

func (m MessageWriter) HumanPlayerTurnStarted(playerName string) string {
	return fmt.Sprintf("It's your turn, %s!", playerName)
}

func (m MessageWriter) PlayerReasoned(playerName string, reasoning string) string {
	return fmt.Sprintf("%s: %s", playerName, reasoning)
}

func (m MessageWriter) PlayerDrewCards(playerName string, amount int) string {
	if amount == 1 {
		return fmt.Sprintf("%s drew a card", playerName)
	}
	return fmt.Sprintf("%s drew %d cards", playerName, amount)
}

func (m MessageWriter) PlayerPassed(playerName string) string {
	return fmt.Sprintf("%s's turn skipped", playerName)
}

func (m MessageWriter) PlayerPickedColor(playerName string, color color.Color) string {
	return fmt.Sprintf("%s changed color to %s", playerName, color)
}

func (m MessageWriter) PlayerPlayedCard(playerName string, card card.Card) string {
	return fmt.Sprintf("%s played %s", playerName, card)
}

func (m MessageWriter) PlayerTurnSkipped(playerName string) string {
	return fmt.Sprintf("%s was skipped", playerName)
}

func (m MessageWriter) TurnOrderReversed() string {
	return "Direction reversed"
}

func (m MessageWriter) DeckReshuffled(amount int) string {
	return fmt.Sprintf("Discard pile reshuffled into the deck (%d cards)", amount)
}

func (m MessageWriter) Welcome() string {
	return fmt.Sprintf(
		"WELCOME TO %s%s%s",
		color.Red.Paint("U"),
		color.Blue.Paint("N"),
		color.Green.Paint("O"),
	)
}

func (m MessageWriter) WinnerFound(playerName string) string {
	return fmt.Sprintf("%s wins!", playerName)
}
