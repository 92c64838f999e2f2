package game

import (
	"context"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

type playerController struct {
	player Player
	hand   *Hand
}

func newPlayerController(player Player) *playerController {
	return &playerController{
		player: player,
		hand:   NewHand(),
	}
}

func (c *playerController) AddCards(cards []card.Card) {
	if len(cards) == 0 {
		return
	}
	c.hand.AddCards(cards)
	c.player.NotifyCardsDrawn(cards)
}

func (c *playerController) Hand() []card.Card {
	return c.hand.Cards()
}

func (c *playerController) HandSize() int {
	return c.hand.Size()
}

func (c *playerController) Name() string {
	return c.player.Name()
}

func (c *playerController) Automated() bool {
	return c.player.Automated()
}

func (c *playerController) NoCards() bool {
	return c.hand.Empty()
}

func (c *playerController) PlayableCards(lastPlayedCard card.Card, activeColor color.Color) []card.Card {
	return c.hand.PlayableCards(lastPlayedCard, activeColor)
}

func (c *playerController) Choose(ctx context.Context, playableCards []card.Card, gameState State) (Choice, error) {
	choice, err := c.player.Play(ctx, playableCards, gameState)
	if err != nil {
		return Choice{}, err
	}
	if choice.Draw {
		return choice, nil
	}
	if choice.Card == nil || !contains(playableCards, choice.Card) {
		return Choice{}, consts.ErrorsCardNotPlayable
	}
	return choice, nil
}

func (c *playerController) PickColor(gameState State, hint color.Color) (color.Color, error) {
	picked, err := c.player.PickColor(gameState, hint)
	if err != nil {
		return nil, err
	}
	if !color.Real(picked) {
		return nil, consts.ErrorsColorInvalid
	}
	return picked, nil
}

func (c *playerController) RemoveCard(played card.Card) bool {
	return c.hand.RemoveCard(played)
}

func contains(cards []card.Card, searchedCard card.Card) bool {
	for _, card := range cards {
		if card.Equal(searchedCard) {
			return true
		}
	}
	return false
}
