package game

import (
	"slices"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// Hand keeps cards in the order they were received, so listings and the
// playable subset are deterministic.
type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, 7)}
}

func (h *Hand) AddCards(cards []card.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) Cards() []card.Card {
	return slices.Clone(h.cards)
}

func (h *Hand) Size() int {
	return len(h.cards)
}

func (h *Hand) Empty() bool {
	return h.Size() == 0
}

func (h *Hand) PlayableCards(lastPlayedCard card.Card, activeColor color.Color) []card.Card {
	var playableCards []card.Card
	for _, candidate := range h.cards {
		if Playable(candidate, lastPlayedCard, activeColor) {
			playableCards = append(playableCards, candidate)
		}
	}
	return playableCards
}

// RemoveCard removes the first copy of target and reports whether one was held.
func (h *Hand) RemoveCard(target card.Card) bool {
	index := slices.IndexFunc(h.cards, target.Equal)
	if index < 0 {
		return false
	}
	h.cards = slices.Delete(h.cards, index, index+1)
	return true
}
