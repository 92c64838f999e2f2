package network

import (
	"context"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/model"
	"github.com/ratel-online/core/network"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno/config"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/database"
	"github.com/ratel-online/uno/state"
)

var authTimeout = consts.AuthTimeout

// Network is interface of all kinds of network.
type Network interface {
	Serve(ctx context.Context) error
}

// handle logs the connection in and plays sessions until either side leaves.
func handle(ctx context.Context, rwc protocol.ReadWriteCloser, cfg config.Config) error {
	c := network.Wrapper(rwc)
	log.Info("new player connected! ")
	authInfo, err := loginAuth(c)
	if err != nil || authInfo.ID == 0 {
		if err == nil {
			err = consts.ErrorsAuthFail
		}
		_ = c.Write(protocol.ErrorPacket(err))
		if closeErr := c.Close(); closeErr != nil {
			log.Error(closeErr)
		}
		return err
	}
	player := database.Connected(c, authInfo, cfg.MessageDelay)
	log.Infof("player auth accessed, %d:%s, online %d\n", authInfo.ID, authInfo.Name, len(database.OnlinePlayers()))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer player.Offline()
	async.Async(func() {
		defer player.Offline()
		if err := state.Run(ctx, player, cfg); err != nil {
			log.Errorf("session of %s ended: %v\n", player, err)
		}
	})
	return player.Listening()
}

func loginAuth(c *network.Conn) (*model.AuthInfo, error) {
	authChan := make(chan *model.AuthInfo, 1)
	async.Async(func() {
		packet, err := c.Read()
		if err != nil {
			log.Error(err)
			return
		}
		authInfo := &model.AuthInfo{}
		err = packet.Unmarshal(authInfo)
		if err != nil {
			log.Error(err)
			return
		}
		authChan <- authInfo
	})
	select {
	case authInfo := <-authChan:
		return authInfo, nil
	case <-time.After(authTimeout):
		return nil, consts.ErrorsAuthFail
	}
}
