package action

import "fmt"

// Action is a side effect resolved by the engine after a card is played.
// Actions of one card are resolved in order.
type Action interface {
	fmt.Stringer
}

// DrawCardsAction makes the player currently pointed at draw cards.
type DrawCardsAction struct {
	amount int
}

func NewDrawCardsAction(amount int) Action {
	return DrawCardsAction{amount: amount}
}

func (a DrawCardsAction) Amount() int {
	return a.amount
}

func (a DrawCardsAction) String() string {
	return fmt.Sprintf("draw %d", a.amount)
}

type ReverseTurnsAction struct{}

func NewReverseTurnsAction() Action {
	return ReverseTurnsAction{}
}

func (a ReverseTurnsAction) String() string {
	return "reverse"
}

// SkipTurnAction moves the turn pointer to the next player, whose turn is forfeited.
type SkipTurnAction struct{}

func NewSkipTurnAction() Action {
	return SkipTurnAction{}
}

func (a SkipTurnAction) String() string {
	return "skip"
}

type PickColorAction struct{}

func NewPickColorAction() Action {
	return PickColorAction{}
}

func (a PickColorAction) String() string {
	return "pick color"
}
