package player

import (
	"context"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/msg"
)

type humanPlayer struct {
	seat
	presenter Presenter
}

// NewHumanPlayer returns a player driven through presenter. Subscribed to a
// game, it reports every event to the presenter.
func NewHumanPlayer(name string, presenter Presenter) game.Player {
	return &humanPlayer{seat: seat{name: name}, presenter: presenter}
}

func (p *humanPlayer) Play(_ context.Context, playableCards []card.Card, gameState game.State) (game.Choice, error) {
	p.notify(msg.Message.HumanPlayerTurnStarted(p.name))
	if err := p.presenter.RenderState(gameState); err != nil {
		return game.Choice{}, err
	}
	index, err := p.presenter.PromptCardChoice(playableCards)
	if err != nil {
		return game.Choice{}, err
	}
	if index == DrawIndex {
		return game.Choice{Draw: true}, nil
	}
	if index < 0 || index >= len(playableCards) {
		return game.Choice{}, consts.ErrorsInputInvalid
	}
	return game.Choice{Card: playableCards[index]}, nil
}

func (p *humanPlayer) PickColor(game.State, color.Color) (color.Color, error) {
	return p.presenter.PromptColorChoice()
}

func (p *humanPlayer) PlayDrawnCard(drawnCard card.Card, _ game.State) (bool, error) {
	return p.presenter.PromptDrawPlayDecision(drawnCard)
}

func (p *humanPlayer) NotifyCardsDrawn(cards []card.Card) {
	p.notify(msg.Message.HumanPlayerDrewCards(cards))
}

// NotifyNoMatchingCardsInHand shows the board even though there is nothing to choose.
func (p *humanPlayer) NotifyNoMatchingCardsInHand(gameState game.State) {
	p.notify(msg.Message.HumanPlayerTurnStarted(p.name))
	if err := p.presenter.RenderState(gameState); err != nil {
		log.Errorf("render state for %s: %v\n", p.name, err)
	}
	p.notify(msg.Message.HumanPlayerHasNoMatchingCardsInHand(p.name, gameState.LastPlayedCard))
}

func (p *humanPlayer) OnFirstCardPlayed(payload event.FirstCardPlayedPayload) {
	p.notify(msg.Message.FirstCardPlayed(payload.Card))
}

func (p *humanPlayer) OnCardPlayed(payload event.CardPlayedPayload) {
	p.notify(msg.Message.PlayerPlayedCard(payload.PlayerName, payload.Card))
}

func (p *humanPlayer) OnCardReasoned(payload event.CardReasonedPayload) {
	p.notify(msg.Message.PlayerReasoned(payload.PlayerName, payload.Reasoning))
}

func (p *humanPlayer) OnColorPicked(payload event.ColorPickedPayload) {
	p.notify(msg.Message.PlayerPickedColor(payload.PlayerName, payload.Color))
}

func (p *humanPlayer) OnCardsDrawn(payload event.CardsDrawnPayload) {
	if payload.PlayerName == p.name {
		return
	}
	p.notify(msg.Message.PlayerDrewCards(payload.PlayerName, payload.Amount))
}

func (p *humanPlayer) OnPlayerPassed(payload event.PlayerPassedPayload) {
	p.notify(msg.Message.PlayerPassed(payload.PlayerName))
}

func (p *humanPlayer) OnTurnSkipped(payload event.TurnSkippedPayload) {
	p.notify(msg.Message.PlayerTurnSkipped(payload.PlayerName))
}

func (p *humanPlayer) OnTurnOrderReversed(event.TurnOrderReversedPayload) {
	p.notify(msg.Message.TurnOrderReversed())
}

func (p *humanPlayer) OnDeckReshuffled(payload event.DeckReshuffledPayload) {
	p.notify(msg.Message.DeckReshuffled(payload.Amount))
}

func (p *humanPlayer) OnGameWon(payload event.GameWonPayload) {
	p.notify(msg.Message.WinnerFound(payload.PlayerName))
}

func (p *humanPlayer) notify(message string) {
	if err := p.presenter.Notify(message); err != nil {
		log.Errorf("notify %s: %v\n", p.name, err)
	}
}
