package card

import (
	"fmt"

	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
)

// Side effects per kind. The color is picked before the victim is reached, so
// the player who played the card is the one choosing.
var kindActions = map[Kind][]action.Action{
	KindSkip:         {action.NewSkipTurnAction()},
	KindReverse:      {action.NewReverseTurnsAction()},
	KindDrawTwo:      {action.NewSkipTurnAction(), action.NewDrawCardsAction(2)},
	KindWild:         {action.NewPickColorAction()},
	KindWildDrawFour: {action.NewPickColorAction(), action.NewSkipTurnAction(), action.NewDrawCardsAction(4)},
}

type face struct {
	kind  Kind
	color color.Color
}

func (f face) Actions() []action.Action {
	actions := make([]action.Action, len(kindActions[f.kind]))
	copy(actions, kindActions[f.kind])
	return actions
}

func (f face) Color() color.Color {
	return f.color
}

func (f face) Kind() Kind {
	return f.kind
}

func (f face) Equal(other Card) bool {
	return other != nil && other.Kind() == f.kind && other.Color() == f.color
}

func (f face) Label() string {
	if f.kind.IsWild() {
		return f.kind.String()
	}
	return f.color.Name() + " " + f.kind.String()
}

func (f face) String() string {
	return f.color.Paint(f.Label())
}

type NumberCard struct {
	face
	number int
}

func NewNumberCard(color color.Color, number int) NumberCard {
	return NumberCard{face: face{kind: KindNumber, color: color}, number: number}
}

func (c NumberCard) Number() int {
	return c.number
}

func (c NumberCard) Equal(other Card) bool {
	otherNumber, ok := Number(other)
	return ok && c.face.Equal(other) && otherNumber == c.number
}

func (c NumberCard) Label() string {
	return fmt.Sprintf("%s %d", c.color.Name(), c.number)
}

func (c NumberCard) String() string {
	return c.color.Paint(c.Label())
}

type SkipCard struct{ face }

func NewSkipCard(color color.Color) SkipCard {
	return SkipCard{face{kind: KindSkip, color: color}}
}

type ReverseCard struct{ face }

func NewReverseCard(color color.Color) ReverseCard {
	return ReverseCard{face{kind: KindReverse, color: color}}
}

type DrawTwoCard struct{ face }

func NewDrawTwoCard(color color.Color) DrawTwoCard {
	return DrawTwoCard{face{kind: KindDrawTwo, color: color}}
}

type WildCard struct{ face }

func NewWildCard() WildCard {
	return WildCard{face{kind: KindWild, color: color.Wild}}
}

type WildDrawFourCard struct{ face }

func NewWildDrawFourCard() WildDrawFourCard {
	return WildDrawFourCard{face{kind: KindWildDrawFour, color: color.Wild}}
}
