package event

// Bus groups the emitters of a single game. Every game owns its bus so that
// concurrent games never see each other's events.
type Bus struct {
	FirstCardPlayed   *Emitter[FirstCardPlayedPayload]
	CardPlayed        *Emitter[CardPlayedPayload]
	CardReasoned      *Emitter[CardReasonedPayload]
	ColorPicked       *Emitter[ColorPickedPayload]
	CardsDrawn        *Emitter[CardsDrawnPayload]
	PlayerPassed      *Emitter[PlayerPassedPayload]
	TurnSkipped       *Emitter[TurnSkippedPayload]
	TurnOrderReversed *Emitter[TurnOrderReversedPayload]
	DeckReshuffled    *Emitter[DeckReshuffledPayload]
	GameWon           *Emitter[GameWonPayload]
}

func NewBus() *Bus {
	return &Bus{
		FirstCardPlayed:   &Emitter[FirstCardPlayedPayload]{},
		CardPlayed:        &Emitter[CardPlayedPayload]{},
		CardReasoned:      &Emitter[CardReasonedPayload]{},
		ColorPicked:       &Emitter[ColorPickedPayload]{},
		CardsDrawn:        &Emitter[CardsDrawnPayload]{},
		PlayerPassed:      &Emitter[PlayerPassedPayload]{},
		TurnSkipped:       &Emitter[TurnSkippedPayload]{},
		TurnOrderReversed: &Emitter[TurnOrderReversedPayload]{},
		DeckReshuffled:    &Emitter[DeckReshuffledPayload]{},
		GameWon:           &Emitter[GameWonPayload]{},
	}
}

// Subscribe registers listener on every emitter whose listener interface it implements.
func (b *Bus) Subscribe(listener interface{}) {
	if l, ok := listener.(FirstCardPlayedListener); ok {
		b.FirstCardPlayed.AddListener(l.OnFirstCardPlayed)
	}
	if l, ok := listener.(CardPlayedListener); ok {
		b.CardPlayed.AddListener(l.OnCardPlayed)
	}
	if l, ok := listener.(CardReasonedListener); ok {
		b.CardReasoned.AddListener(l.OnCardReasoned)
	}
	if l, ok := listener.(ColorPickedListener); ok {
		b.ColorPicked.AddListener(l.OnColorPicked)
	}
	if l, ok := listener.(CardsDrawnListener); ok {
		b.CardsDrawn.AddListener(l.OnCardsDrawn)
	}
	if l, ok := listener.(PlayerPassedListener); ok {
		b.PlayerPassed.AddListener(l.OnPlayerPassed)
	}
	if l, ok := listener.(TurnSkippedListener); ok {
		b.TurnSkipped.AddListener(l.OnTurnSkipped)
	}
	if l, ok := listener.(TurnOrderReversedListener); ok {
		b.TurnOrderReversed.AddListener(l.OnTurnOrderReversed)
	}
	if l, ok := listener.(DeckReshuffledListener); ok {
		b.DeckReshuffled.AddListener(l.OnDeckReshuffled)
	}
	if l, ok := listener.(GameWonListener); ok {
		b.GameWon.AddListener(l.OnGameWon)
	}
}
