package network

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/uno/config"
)

type Websocket struct {
	addr string
	cfg  config.Config
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func NewWebsocketServer(addr string, cfg config.Config) Websocket {
	return Websocket{addr: addr, cfg: cfg}
}

// Serve upgrades requests on /ws until ctx is done.
func (w Websocket) Serve(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(rw http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(rw, r, nil)
		if err != nil {
			log.Error(err)
			return
		}
		if err := handle(ctx, protocol.NewWebsocketReadWriteCloser(conn), w.cfg); err != nil {
			log.Error(err)
		}
	})
	server := &http.Server{Addr: w.addr, Handler: mux}
	go func() {
		<-ctx.Done()
		_ = server.Close()
	}()
	log.Infof("Websocket server listening on %s\n", w.addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
