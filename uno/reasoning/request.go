package reasoning

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/game"
)

// CardView is the wire form of a card.
type CardView struct {
	Color string `json:"color"`
	Type  string `json:"type"`
	Value *int   `json:"value"`
}

func NewCardView(c card.Card) CardView {
	view := CardView{
		Color: c.Color().Name(),
		Type:  c.Kind().String(),
	}
	if number, ok := card.Number(c); ok {
		view.Value = &number
	}
	return view
}

func NewCardViews(cards []card.Card) []CardView {
	views := make([]CardView, 0, len(cards))
	for _, c := range cards {
		views = append(views, NewCardView(c))
	}
	return views
}

// Request is everything the reasoning service gets to see.
type Request struct {
	TopCard          CardView   `json:"top_card"`
	CurrentColor     string     `json:"current_color"`
	MyHand           []CardView `json:"my_hand"`
	PlayableCards    []CardView `json:"playable_cards"`
	OpponentHandSize int        `json:"opponent_hand_size"`
	MyHandSize       int        `json:"my_hand_size"`
	DeckSize         int        `json:"deck_size"`
}

func NewRequest(playableCards []card.Card, gameState game.State) Request {
	return Request{
		TopCard:          NewCardView(gameState.LastPlayedCard),
		CurrentColor:     gameState.ActiveColor.Name(),
		MyHand:           NewCardViews(gameState.CurrentPlayerHand),
		PlayableCards:    NewCardViews(playableCards),
		OpponentHandSize: gameState.OpponentHandSize,
		MyHandSize:       gameState.HandSize(),
		DeckSize:         gameState.DeckSize,
	}
}

// Reply is the decision parsed out of the service's answer. CardIndex is nil
// when the answer did not name a card.
type Reply struct {
	CardIndex *int    `json:"card_index"`
	Reasoning string  `json:"reasoning"`
	WildColor *string `json:"wild_color"`
}
