package consts

import (
	"time"

	"github.com/ratel-online/core/consts"
)

type StateID int

const (
	_ StateID = iota
	StateWelcome
	StateSetup
	StateGame
	StateAgain
)

const (
	IsStart = consts.IsStart
	IsStop  = consts.IsStop

	Players      = 2
	StartingHand = 7
	DeckSize     = 108

	ReasoningTimeout = 10 * time.Second
	PlayTimeout      = 40 * time.Second
	AuthTimeout      = 3 * time.Second
	ActionLogSize    = 5
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsExist           = NewErr(1, true, "Exist. ")
	ErrorsChanClosed      = NewErr(1, true, "Chan closed. ")
	ErrorsInputClosed     = NewErr(1, true, "Input closed. ")
	ErrorsAuthFail        = NewErr(1, true, "Auth fail. ")
	ErrorsTimeout         = NewErr(1, false, "Timeout. ")
	ErrorsInputInvalid    = NewErr(1, false, "Input invalid. ")
	ErrorsCardNotPlayable = NewErr(2, false, "Card not playable. ")
	ErrorsColorInvalid    = NewErr(2, false, "Color invalid. ")
	ErrorsGameOver        = NewErr(2, false, "Game over. ")
	ErrorsHardLocked      = NewErr(3, false, "Hard opponent requires a reasoning service key. ")
)
