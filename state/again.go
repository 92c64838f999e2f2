package state

import (
	"context"

	"github.com/ratel-online/uno/consts"
)

type again struct{}

func (s *again) Next(_ context.Context, session *Session) (consts.StateID, error) {
	playAgain, err := session.Client.PromptPlayAgain()
	if err != nil {
		return 0, err
	}
	if playAgain {
		return consts.StateSetup, nil
	}
	return s.Exit(session), nil
}

func (*again) Exit(*Session) consts.StateID {
	return 0
}
