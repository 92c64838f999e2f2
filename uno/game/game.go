package game

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
)

type Game struct {
	id          string
	players     *PlayerIterator
	deck        *Deck
	pile        *Pile
	events      *event.Bus
	activeColor color.Color
	winner      *playerController
}

func New(players []Player) *Game {
	return NewWithDeck(players, NewDeck())
}

// NewWithDeck creates a game that deals from deck. Players implementing any
// event listener interface are subscribed to the game's events.
func NewWithDeck(players []Player, deck *Deck) *Game {
	g := &Game{
		id:      uuid.NewString(),
		players: newPlayerIterator(players),
		deck:    deck,
		pile:    NewPile(),
		events:  event.NewBus(),
	}
	for _, player := range players {
		g.events.Subscribe(player)
	}
	return g
}

func (g *Game) ID() string {
	return g.id
}

func (g *Game) Events() *event.Bus {
	return g.events
}

func (g *Game) Players() *PlayerIterator {
	return g.players
}

func (g *Game) Deck() *Deck {
	return g.deck
}

func (g *Game) Pile() *Pile {
	return g.pile
}

func (g *Game) ActiveColor() color.Color {
	return g.activeColor
}

func (g *Game) Over() bool {
	return g.winner != nil
}

// Winner returns the winner's name, or an empty string while the game is running.
func (g *Game) Winner() string {
	if g.winner == nil {
		return ""
	}
	return g.winner.Name()
}

func (g *Game) GetPlayerCards(index int) []card.Card {
	return g.players.Get(index).Hand()
}

// CardCount is the number of cards across deck, pile and hands.
func (g *Game) CardCount() int {
	count := g.deck.Size() + g.pile.Size()
	g.players.ForEach(func(player *playerController) {
		count += player.HandSize()
	})
	return count
}

// Start deals the starting hands and turns the opening card.
func (g *Game) Start() error {
	g.DealStartingCards()
	if err := g.PlayFirstCard(); err != nil {
		return err
	}
	names := make([]string, 0, g.players.Len())
	g.players.ForEach(func(player *playerController) {
		names = append(names, player.Name())
	})
	log.Infof("game %s started, players %v, first card %s\n", g.id, names, g.pile.Top().Label())
	return nil
}

func (g *Game) DealStartingCards() {
	g.DealCards(consts.StartingHand)
}

func (g *Game) DealCards(amount int) {
	g.players.ForEach(func(player *playerController) {
		player.AddCards(g.drawCards(amount))
	})
}

// PlayFirstCard turns cards until a non-wild one shows up. Wild cards met on the
// way go back under the deck. The opening card's action is not resolved.
func (g *Game) PlayFirstCard() error {
	var wildCards []card.Card
	defer func() {
		for _, wildCard := range wildCards {
			g.deck.ReturnToBottom(wildCard)
		}
	}()
	for {
		firstCard, ok := g.deck.DrawOne()
		if !ok {
			return fmt.Errorf("no opening card left in deck")
		}
		if firstCard.Kind().IsWild() {
			wildCards = append(wildCards, firstCard)
			continue
		}
		g.pile.Add(firstCard)
		g.activeColor = firstCard.Color()
		g.events.FirstCardPlayed.Emit(event.FirstCardPlayedPayload{
			Card: firstCard,
		})
		return nil
	}
}

// Run plays turns until someone wins and returns the winner's name.
func (g *Game) Run(ctx context.Context) (string, error) {
	for !g.Over() {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if err := g.PlayTurn(ctx); err != nil {
			return "", err
		}
	}
	return g.Winner(), nil
}

// PlayTurn lets the current player act once and moves the turn on.
func (g *Game) PlayTurn(ctx context.Context) error {
	if g.Over() {
		return consts.ErrorsGameOver
	}
	player := g.players.Current()
	lastPlayedCard := g.pile.Top()
	playableCards := player.PlayableCards(lastPlayedCard, g.activeColor)

	var choice Choice
	if len(playableCards) == 0 {
		player.player.NotifyNoMatchingCardsInHand(g.ExtractState(player))
		choice.Draw = true
	} else {
		var err error
		choice, err = player.Choose(ctx, playableCards, g.ExtractState(player))
		if err != nil {
			return err
		}
	}

	playedCard, wildColorHint := choice.Card, choice.WildColor
	if choice.Draw {
		drawnCard, err := g.drawAndOffer(player)
		if err != nil {
			return err
		}
		playedCard, wildColorHint = drawnCard, nil
	} else if choice.Reasoning != "" {
		g.events.CardReasoned.Emit(event.CardReasonedPayload{
			PlayerName: player.Name(),
			Reasoning:  choice.Reasoning,
		})
	}

	if playedCard == nil {
		g.events.PlayerPassed.Emit(event.PlayerPassedPayload{
			PlayerName: player.Name(),
		})
		g.players.Next()
		return nil
	}
	return g.play(player, playedCard, wildColorHint)
}

// drawAndOffer draws a single card for player and returns it if the player
// decides to play it right away.
func (g *Game) drawAndOffer(player *playerController) (card.Card, error) {
	drawnCard, ok := g.drawOne()
	if !ok {
		return nil, nil
	}
	player.AddCards([]card.Card{drawnCard})
	g.events.CardsDrawn.Emit(event.CardsDrawnPayload{
		PlayerName: player.Name(),
		Amount:     1,
	})
	if !Playable(drawnCard, g.pile.Top(), g.activeColor) {
		return nil, nil
	}
	playIt, err := player.player.PlayDrawnCard(drawnCard, g.ExtractState(player))
	if err != nil || !playIt {
		return nil, err
	}
	return drawnCard, nil
}

func (g *Game) play(player *playerController, playedCard card.Card, wildColorHint color.Color) error {
	if !player.RemoveCard(playedCard) {
		return consts.ErrorsCardNotPlayable
	}
	g.pile.Add(playedCard)
	g.events.CardPlayed.Emit(event.CardPlayedPayload{
		PlayerName: player.Name(),
		Card:       playedCard,
	})
	if !playedCard.Kind().IsWild() {
		g.activeColor = playedCard.Color()
	}

	if err := g.PerformCardActions(player, playedCard, wildColorHint); err != nil {
		return err
	}

	// Effects on the other player are resolved even by a winning card.
	if player.NoCards() {
		g.winner = player
		g.events.GameWon.Emit(event.GameWonPayload{
			PlayerName: player.Name(),
		})
		log.Infof("game %s finished, winner %s\n", g.id, player.Name())
		return nil
	}
	g.players.Next()
	return nil
}

func (g *Game) PerformCardActions(player *playerController, playedCard card.Card, wildColorHint color.Color) error {
	for _, cardAction := range playedCard.Actions() {
		switch cardAction := cardAction.(type) {
		case action.DrawCardsAction:
			victim := g.players.Current()
			cards := g.drawCards(cardAction.Amount())
			victim.AddCards(cards)
			g.events.CardsDrawn.Emit(event.CardsDrawnPayload{
				PlayerName: victim.Name(),
				Amount:     len(cards),
				Forced:     true,
			})
		case action.ReverseTurnsAction:
			g.players.Reverse()
			g.events.TurnOrderReversed.Emit(event.TurnOrderReversedPayload{
				Direction: g.players.Direction(),
			})
			// Heads-up, reversing hands the turn straight back.
			if g.players.Len() == 2 {
				g.skip()
			}
		case action.SkipTurnAction:
			g.skip()
		case action.PickColorAction:
			picked, err := player.PickColor(g.ExtractState(player), wildColorHint)
			if err != nil {
				return err
			}
			g.activeColor = picked
			g.events.ColorPicked.Emit(event.ColorPickedPayload{
				PlayerName: player.Name(),
				Color:      picked,
			})
		}
	}
	return nil
}

func (g *Game) skip() {
	skippedPlayer := g.players.Skip()
	g.events.TurnSkipped.Emit(event.TurnSkippedPayload{
		PlayerName: skippedPlayer.Name(),
	})
}

// drawOne refills the deck from the discard pile when needed. It returns false
// when neither has a card to give.
func (g *Game) drawOne() (card.Card, bool) {
	if g.deck.Empty() {
		g.reshuffle()
	}
	return g.deck.DrawOne()
}

func (g *Game) drawCards(amount int) []card.Card {
	cards := make([]card.Card, 0, amount)
	for i := 0; i < amount; i++ {
		drawnCard, ok := g.drawOne()
		if !ok {
			continue
		}
		cards = append(cards, drawnCard)
	}
	return cards
}

// reshuffle moves every discarded card but the top one back into the deck.
func (g *Game) reshuffle() {
	cards := g.pile.TakeAllButTop()
	if len(cards) == 0 {
		return
	}
	for _, reclaimed := range cards {
		g.deck.ReturnToBottom(reclaimed)
	}
	g.deck.Shuffle()
	g.events.DeckReshuffled.Emit(event.DeckReshuffledPayload{
		Amount: len(cards),
	})
}

// Statuses describes every seat in turn order.
func (g *Game) Statuses() []PlayerStatus {
	statuses := make([]PlayerStatus, 0, g.players.Len())
	for index := 0; index < g.players.Len(); index++ {
		seated := g.players.Get(index)
		statuses = append(statuses, PlayerStatus{
			Name:      seated.Name(),
			HandSize:  seated.HandSize(),
			Automated: seated.Automated(),
			Current:   index == g.players.CurrentIndex(),
		})
	}
	return statuses
}

func (g *Game) ExtractState(player *playerController) State {
	playerIndex := 0
	for index := 0; index < g.players.Len(); index++ {
		if g.players.Get(index) == player {
			playerIndex = index
		}
	}
	playerCount := g.players.Len()
	opponent := g.players.Get((playerIndex + g.players.Direction() + playerCount) % playerCount)

	return State{
		GameID:            g.id,
		LastPlayedCard:    g.pile.Top(),
		ActiveColor:       g.activeColor,
		Direction:         g.players.Direction(),
		DeckSize:          g.deck.Size(),
		CurrentPlayer:     player.Name(),
		CurrentPlayerHand: player.Hand(),
		OpponentHandSize:  opponent.HandSize(),
		Players:           g.Statuses(),
	}
}
