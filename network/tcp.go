package network

import (
	"context"
	"net"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno/config"
)

type Tcp struct {
	addr string
	cfg  config.Config
}

func NewTcpServer(addr string, cfg config.Config) Tcp {
	return Tcp{addr: addr, cfg: cfg}
}

// Serve accepts connections until ctx is done.
func (t Tcp) Serve(ctx context.Context) error {
	listener, err := net.Listen("tcp", t.addr)
	if err != nil {
		log.Error(err)
		return err
	}
	log.Infof("Tcp server listening on %s\n", t.addr)
	async.Async(func() {
		<-ctx.Done()
		_ = listener.Close()
	})
	for {
		conn, err := listener.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			log.Infof("listener.Accept err %v\n", err)
			continue
		}
		async.Async(func() {
			err := handle(ctx, protocol.NewTcpReadWriteCloser(conn), t.cfg)
			if err != nil {
				log.Error(err)
			}
		})
	}
}
