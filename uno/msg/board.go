package msg

import (
	"fmt"
	"strings"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
)

const ruleWidth = 50

// Board draws the table as seen by the player about to act.
func Board(gameState game.State, recent []string) string {
	var b strings.Builder
	b.WriteString("UNO GAME\n")
	b.WriteString(strings.Repeat("-", ruleWidth) + "\n")
	fmt.Fprintf(&b, "Current Card: %s | Color: %s\n", gameState.LastPlayedCard, gameState.ActiveColor)
	fmt.Fprintf(&b, "Deck: %d cards\n\n", gameState.DeckSize)

	for _, player := range gameState.Players {
		marker := "  "
		if player.Current {
			marker = color.Green.Paint("▶ ")
		}
		uno := ""
		if player.HandSize == 1 {
			uno = " " + color.Red.Paint("(UNO!)")
		}
		fmt.Fprintf(&b, "%s%s: %d cards%s\n", marker, player.Name, player.HandSize, uno)
	}
	b.WriteString("\n")

	if len(recent) > 0 {
		b.WriteString("Recent Actions:\n")
		for _, action := range recent {
			fmt.Fprintf(&b, "  • %s\n", action)
		}
		b.WriteString("\n")
	}

	b.WriteString("Your Hand:\n")
	b.WriteString(NumberedCards(gameState.CurrentPlayerHand))
	return b.String()
}

// NumberedCards lists cards one per line, counting from 1.
func NumberedCards(cards []card.Card) string {
	var b strings.Builder
	for i, c := range cards {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, c)
	}
	return b.String()
}

// FinalScores lists the cards each player was left holding.
func FinalScores(statuses []game.PlayerStatus) string {
	var b strings.Builder
	b.WriteString("Final Scores:\n")
	for _, status := range statuses {
		fmt.Fprintf(&b, "  %s: %d cards remaining\n", status.Name, status.HandSize)
	}
	return b.String()
}
