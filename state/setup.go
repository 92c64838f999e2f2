package state

import (
	"context"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/strategy"
)

type setup struct{}

func (*setup) Next(_ context.Context, session *Session) (consts.StateID, error) {
	name, err := session.Client.PromptName()
	if err != nil {
		return 0, err
	}
	difficulty, err := session.Client.PromptDifficulty(session.Config.HardUnlocked())
	if err != nil {
		return 0, err
	}
	if !difficulty.Valid() || (difficulty == strategy.Hard && !session.Config.HardUnlocked()) {
		return 0, consts.ErrorsHardLocked
	}
	session.Name, session.Difficulty = name, difficulty
	return consts.StateGame, nil
}

func (*setup) Exit(*Session) consts.StateID {
	return 0
}
