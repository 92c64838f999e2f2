package game

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// Playable decides whether candidateCard may be played on lastPlayedCard while
// activeColor is the color to match. It has no side effects.
func Playable(candidateCard card.Card, lastPlayedCard card.Card, activeColor color.Color) bool {
	if candidateCard.Kind().IsWild() {
		return true
	}

	if candidateCard.Color() == activeColor {
		return true
	}

	candidateNumber, candidateIsNumber := card.Number(candidateCard)
	lastNumber, lastIsNumber := card.Number(lastPlayedCard)
	if candidateIsNumber && lastIsNumber {
		return candidateNumber == lastNumber
	}

	return candidateCard.Kind() == lastPlayedCard.Kind()
}
