package game

import (
	"math/rand"
	"sync"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// Deck is a stack of cards. Cards are drawn from the front and returned to the back.
type Deck struct {
	sync.Mutex
	cards []card.Card
}

// NewDeck builds the 108 standard cards in random order.
func NewDeck() *Deck {
	deck := &Deck{cards: StandardCards()}
	deck.Shuffle()
	return deck
}

// NewDeckOf builds a deck that deals cards in the given order.
func NewDeckOf(cards []card.Card) *Deck {
	deckCards := make([]card.Card, len(cards))
	copy(deckCards, cards)
	return &Deck{cards: deckCards}
}

// DrawOne returns false when the deck is empty.
func (d *Deck) DrawOne() (card.Card, bool) {
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	if len(d.cards) == 0 {
		return nil, false
	}
	drawn := d.cards[0]
	d.cards = d.cards[1:]
	return drawn, true
}

func (d *Deck) ReturnToBottom(returned card.Card) {
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	d.cards = append(d.cards, returned)
}

func (d *Deck) Shuffle() {
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	shuffleCards(d.cards)
}

func (d *Deck) Size() int {
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	return len(d.cards)
}

func (d *Deck) Empty() bool {
	return d.Size() == 0
}

func (d *Deck) Cards() []card.Card {
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	cards := make([]card.Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

// StandardCards returns the full 108 card composition in a fixed order.
func StandardCards() []card.Card {
	cards := make([]card.Card, 0, 108)

	for _, cardColor := range color.All {
		cards = append(cards, createColorCards(cardColor)...)
	}
	cards = append(cards, createBlackCards()...)

	return cards
}

func createColorCards(cardColor color.Color) []card.Card {
	zeroCard := card.NewNumberCard(cardColor, 0)
	skipCard := card.NewSkipCard(cardColor)
	reverseCard := card.NewReverseCard(cardColor)
	drawTwoCard := card.NewDrawTwoCard(cardColor)

	cards := []card.Card{
		zeroCard,
		skipCard, skipCard,
		reverseCard, reverseCard,
		drawTwoCard, drawTwoCard,
	}

	for number := 1; number <= 9; number++ {
		numberCard := card.NewNumberCard(cardColor, number)
		cards = append(cards, numberCard, numberCard)
	}

	return cards
}

func createBlackCards() []card.Card {
	wildCard := card.NewWildCard()
	wildDrawFourCard := card.NewWildDrawFourCard()

	return []card.Card{
		wildCard, wildCard, wildCard, wildCard,
		wildDrawFourCard, wildDrawFourCard, wildDrawFourCard, wildDrawFourCard,
	}
}

func shuffleCards(cards []card.Card) {
	rand.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
}
