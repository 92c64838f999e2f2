package state

import (
	"context"
	"errors"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/config"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/player"
	"github.com/ratel-online/uno/uno/strategy"
)

// Client is everything a session needs from whoever sits at the table.
type Client interface {
	player.Presenter
	Welcome() error
	// PromptCredential returns an empty key when the user has none.
	PromptCredential() (string, error)
	PromptName() (string, error)
	PromptDifficulty(hardUnlocked bool) (strategy.Difficulty, error)
	StartGame(playerName string, opponentName string) error
	GameOver(winner string, statuses []game.PlayerStatus) error
	PromptPlayAgain() (bool, error)
	PromptRetry(cause error) (bool, error)
	Goodbye() error
}

// Session is shared by the states of one client.
type Session struct {
	Client     Client
	Config     config.Config
	Name       string
	Difficulty strategy.Difficulty
}

type State interface {
	Next(ctx context.Context, session *Session) (consts.StateID, error)
	Exit(session *Session) consts.StateID
}

var states = map[consts.StateID]State{}

func init() {
	register(consts.StateWelcome, &welcome{})
	register(consts.StateSetup, &setup{})
	register(consts.StateGame, &play{})
	register(consts.StateAgain, &again{})
}

func register(id consts.StateID, state State) {
	states[id] = state
}

func Root() consts.StateID {
	return consts.StateWelcome
}

// Run walks client through setup and games until it leaves. Leaving, closed
// input and a cancelled ctx all end the session without error.
func Run(ctx context.Context, client Client, cfg config.Config) error {
	session := &Session{Client: client, Config: cfg}
	for stateID := Root(); stateID > 0; {
		if ctx.Err() != nil {
			return nil
		}
		next, err := states[stateID].Next(ctx, session)
		if err != nil {
			if Quit(err) || ctx.Err() != nil {
				_ = client.Goodbye()
				return nil
			}
			log.Error(err)
			return err
		}
		stateID = next
	}
	return client.Goodbye()
}

// Quit reports whether err means the user is gone rather than something broke.
func Quit(err error) bool {
	return errors.Is(err, consts.ErrorsExist) ||
		errors.Is(err, consts.ErrorsInputClosed) ||
		errors.Is(err, consts.ErrorsChanClosed) ||
		errors.Is(err, context.Canceled)
}
