package player

import (
	"context"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/strategy"
)

type botPlayer struct {
	seat
	strategy strategy.Strategy
}

func NewBotPlayer(name string, s strategy.Strategy) game.Player {
	return &botPlayer{seat: seat{name: name}, strategy: s}
}

func (p *botPlayer) Automated() bool {
	return true
}

func (p *botPlayer) Play(ctx context.Context, playableCards []card.Card, gameState game.State) (game.Choice, error) {
	decision := p.strategy.ChooseCard(ctx, playableCards, gameState)
	return game.Choice{
		Card:      decision.Card,
		WildColor: decision.WildColor,
		Reasoning: decision.Reasoning,
	}, nil
}

func (p *botPlayer) PickColor(gameState game.State, hint color.Color) (color.Color, error) {
	return strategy.ChooseWildColor(gameState.CurrentPlayerHand, hint), nil
}

// PlayDrawnCard always keeps the card. Bots never play what they just drew.
func (p *botPlayer) PlayDrawnCard(card.Card, game.State) (bool, error) {
	return false, nil
}
