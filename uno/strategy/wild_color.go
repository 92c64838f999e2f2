package strategy

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// ChooseWildColor returns hint when it is a playable color. Otherwise it picks the
// color held most often in hand, ties going to the earlier one of red, blue,
// green and yellow.
func ChooseWildColor(hand []card.Card, hint color.Color) color.Color {
	if color.Real(hint) {
		return hint
	}

	colorCounts := make(map[color.Color]int)
	for _, handCard := range hand {
		if color.Real(handCard.Color()) {
			colorCounts[handCard.Color()]++
		}
	}

	mostFrequentColor := color.All[0]
	for _, availableColor := range color.All {
		if colorCounts[availableColor] > colorCounts[mostFrequentColor] {
			mostFrequentColor = availableColor
		}
	}
	return mostFrequentColor
}
