package strategy

import (
	"context"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/reasoning"
)

// Reasoner is a remote service deciding which card to play.
type Reasoner interface {
	Reason(ctx context.Context, request reasoning.Request) (reasoning.Reply, error)
}

// Remote delegates to a Reasoner and falls back to Fallback whenever the
// service fails, times out or answers with an unusable index.
type Remote struct {
	reasoner Reasoner
	timeout  time.Duration
	fallback Strategy
}

// NewRemote bounds every call by timeout, or consts.ReasoningTimeout when it is not positive.
func NewRemote(reasoner Reasoner, timeout time.Duration) *Remote {
	if timeout <= 0 {
		timeout = consts.ReasoningTimeout
	}
	return &Remote{
		reasoner: reasoner,
		timeout:  timeout,
		fallback: Fallback{},
	}
}

func (s *Remote) ChooseCard(ctx context.Context, playableCards []card.Card, gameState game.State) Decision {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	reply, err := s.reasoner.Reason(callCtx, reasoning.NewRequest(playableCards, gameState))
	if err != nil {
		log.Errorf("game %s: reasoning failed, using fallback: %v\n", gameState.GameID, err)
		return s.fallback.ChooseCard(ctx, playableCards, gameState)
	}
	if reply.CardIndex == nil || *reply.CardIndex < 0 || *reply.CardIndex >= len(playableCards) {
		log.Errorf("game %s: reasoning picked no valid card out of %d, using fallback\n", gameState.GameID, len(playableCards))
		return s.fallback.ChooseCard(ctx, playableCards, gameState)
	}

	decision := Decision{
		Card:      playableCards[*reply.CardIndex],
		Reasoning: reply.Reasoning,
	}
	if reply.WildColor != nil {
		if hint, err := color.ByName(*reply.WildColor); err == nil {
			decision.WildColor = hint
		}
	}
	return decision
}
