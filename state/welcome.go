package state

import (
	"context"

	"github.com/ratel-online/uno/consts"
)

type welcome struct{}

func (*welcome) Next(_ context.Context, session *Session) (consts.StateID, error) {
	if err := session.Client.Welcome(); err != nil {
		return 0, err
	}
	if !session.Config.HardUnlocked() {
		key, err := session.Client.PromptCredential()
		if err != nil {
			return 0, err
		}
		session.Config = session.Config.WithAPIKey(key)
	}
	return consts.StateSetup, nil
}

func (*welcome) Exit(*Session) consts.StateID {
	return 0
}
