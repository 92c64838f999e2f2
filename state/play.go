package state

import (
	"context"
	"fmt"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/player"
	"github.com/ratel-online/uno/uno/strategy"
)

type play struct{}

func (s *play) Next(ctx context.Context, session *Session) (consts.StateID, error) {
	g, err := s.run(ctx, session)
	if err == nil {
		if err := session.Client.GameOver(g.Winner(), g.Statuses()); err != nil {
			return 0, err
		}
		return consts.StateAgain, nil
	}
	if Quit(err) || ctx.Err() != nil {
		return 0, err
	}

	log.Errorf("%s: game failed: %v\n", session.Name, err)
	retry, promptErr := session.Client.PromptRetry(err)
	if promptErr != nil {
		return 0, promptErr
	}
	if retry {
		return consts.StateSetup, nil
	}
	return s.Exit(session), nil
}

// run plays one game to its end. A panic inside the game is turned into an error.
func (s *play) run(ctx context.Context, session *Session) (g *game.Game, err error) {
	defer func() {
		if r := recover(); r != nil {
			async.PrintStackTrace(r)
			err = fmt.Errorf("game crashed: %v", r)
		}
	}()

	var reasoner strategy.Reasoner
	if client := session.Config.Reasoner(); client != nil {
		reasoner = client
	}
	botStrategy, err := strategy.New(session.Difficulty, reasoner, session.Config.ReasoningTimeout)
	if err != nil {
		return nil, err
	}

	players := player.CreatePlayers(session.Name, session.Client, session.Difficulty, botStrategy)
	g = game.New(players)
	if err := session.Client.StartGame(session.Name, players[1].Name()); err != nil {
		return nil, err
	}
	if err := g.Start(); err != nil {
		return nil, err
	}
	if _, err := g.Run(ctx); err != nil {
		return nil, err
	}
	return g, nil
}

func (*play) Exit(*Session) consts.StateID {
	return 0
}
