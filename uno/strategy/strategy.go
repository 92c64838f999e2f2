package strategy

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
)

// Decision is the card a strategy wants to play. WildColor is only a hint and
// may be nil.
type Decision struct {
	Card      card.Card
	WildColor color.Color
	Reasoning string
}

// Strategy picks one of the playable cards. It is never called with an empty list.
type Strategy interface {
	ChooseCard(ctx context.Context, playableCards []card.Card, gameState game.State) Decision
}

type Difficulty int

const (
	Easy Difficulty = iota + 1
	Medium
	Hard
)

var difficultyNames = map[Difficulty]string{
	Easy:   "Easy",
	Medium: "Medium",
	Hard:   "Hard",
}

func (d Difficulty) String() string {
	if name, ok := difficultyNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Difficulty(%d)", int(d))
}

func (d Difficulty) Valid() bool {
	_, ok := difficultyNames[d]
	return ok
}

// ParseDifficulty accepts a menu number or a difficulty name.
func ParseDifficulty(text string) (Difficulty, error) {
	text = strings.TrimSpace(text)
	for difficulty, name := range difficultyNames {
		if text == fmt.Sprint(int(difficulty)) || strings.EqualFold(text, name) {
			return difficulty, nil
		}
	}
	return 0, fmt.Errorf("invalid difficulty '%s'", text)
}

// New returns the strategy playing at difficulty. Hard needs a reasoner whose
// calls are bounded by reasoningTimeout, or consts.ReasoningTimeout when zero.
func New(difficulty Difficulty, reasoner Reasoner, reasoningTimeout time.Duration) (Strategy, error) {
	switch difficulty {
	case Easy:
		return NewRandom(nil), nil
	case Medium:
		return NewHeuristic(), nil
	case Hard:
		if reasoner == nil {
			return nil, fmt.Errorf("difficulty %s needs a reasoner", difficulty)
		}
		return NewRemote(reasoner, reasoningTimeout), nil
	}
	return nil, fmt.Errorf("unknown difficulty %d", int(difficulty))
}

// firstAggressive returns the first card that hurts the opponent.
func firstAggressive(playableCards []card.Card) (card.Card, bool) {
	for _, playableCard := range playableCards {
		if playableCard.Kind().IsAggressive() {
			return playableCard, true
		}
	}
	return nil, false
}
