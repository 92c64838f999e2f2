package card

import (
	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
)

type Card interface {
	Actions() []action.Action
	Color() color.Color
	Kind() Kind
	Equal(other Card) bool
	// Label is the uncolored text of the card, e.g. "Red 7" or "Wild Draw Four".
	Label() string
	String() string
}

type Kind int

const (
	KindNumber Kind = iota
	KindSkip
	KindReverse
	KindDrawTwo
	KindWild
	KindWildDrawFour
)

var kindNames = map[Kind]string{
	KindNumber:       "Number",
	KindSkip:         "Skip",
	KindReverse:      "Reverse",
	KindDrawTwo:      "Draw Two",
	KindWild:         "Wild",
	KindWildDrawFour: "Wild Draw Four",
}

func (k Kind) String() string {
	return kindNames[k]
}

// IsWild reports whether cards of this kind can be played on anything.
func (k Kind) IsWild() bool {
	return k == KindWild || k == KindWildDrawFour
}

// IsAggressive reports whether the kind denies the next player a normal turn.
func (k Kind) IsAggressive() bool {
	return k == KindWildDrawFour || k == KindDrawTwo || k == KindSkip
}

// Number returns the face value of a number card.
func Number(c Card) (int, bool) {
	numberCard, ok := c.(NumberCard)
	if !ok {
		return 0, false
	}
	return numberCard.Number(), true
}
