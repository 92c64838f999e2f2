package game

import (
	"sync"

	"github.com/ratel-online/uno/uno/card"
)

// Pile is the discard pile. The last added card is the top card.
type Pile struct {
	sync.Mutex
	cards []card.Card
}

func NewPile() *Pile {
	return &Pile{cards: make([]card.Card, 0, 54)}
}

func (p *Pile) Add(card card.Card) {
	p.Mutex.Lock()
	defer p.Mutex.Unlock()
	p.cards = append(p.cards, card)
}

func (p *Pile) Cards() []card.Card {
	p.Mutex.Lock()
	defer p.Mutex.Unlock()
	cards := make([]card.Card, len(p.cards))
	copy(cards, p.cards)
	return cards
}

func (p *Pile) Size() int {
	p.Mutex.Lock()
	defer p.Mutex.Unlock()
	return len(p.cards)
}

// TakeAllButTop removes and returns every card under the top card.
func (p *Pile) TakeAllButTop() []card.Card {
	p.Mutex.Lock()
	defer p.Mutex.Unlock()
	if len(p.cards) <= 1 {
		return nil
	}
	top := p.cards[len(p.cards)-1]
	taken := make([]card.Card, len(p.cards)-1)
	copy(taken, p.cards[:len(p.cards)-1])
	p.cards = append(p.cards[:0], top)
	return taken
}

func (p *Pile) Top() card.Card {
	p.Mutex.Lock()
	defer p.Mutex.Unlock()
	pileSize := len(p.cards)
	if pileSize == 0 {
		return nil
	}
	return p.cards[pileSize-1]
}
