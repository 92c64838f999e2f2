package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno/config"
	"github.com/ratel-online/uno/network"
	"github.com/ratel-online/uno/state"
	"github.com/ratel-online/uno/uno/ui"
	"golang.org/x/sync/errgroup"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	cfg, err := config.Load()
	if err != nil {
		log.Error(err)
		return
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Serving() {
		serve(ctx, cfg)
		return
	}
	play(ctx, cfg)
}

func serve(ctx context.Context, cfg config.Config) {
	servers := make([]network.Network, 0, 2)
	if cfg.TCPAddr != "" {
		servers = append(servers, network.NewTcpServer(cfg.TCPAddr, cfg))
	}
	if cfg.WebsocketAddr != "" {
		servers = append(servers, network.NewWebsocketServer(cfg.WebsocketAddr, cfg))
	}
	g, ctx := errgroup.WithContext(ctx)
	for _, server := range servers {
		server := server
		g.Go(func() error {
			return server.Serve(ctx)
		})
	}
	if err := g.Wait(); err != nil {
		log.Error(err)
	}
}

// play runs the local console. Reading stdin cannot be interrupted, so an
// interrupt says goodbye and exits right away.
func play(ctx context.Context, cfg config.Config) {
	console := ui.NewConsole(os.Stdin, color.Output, cfg.MessageDelay)
	finished := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			fmt.Fprintln(color.Output)
			_ = console.Goodbye()
			os.Exit(0)
		case <-finished:
		}
	}()
	if err := state.Run(ctx, console, cfg); err != nil {
		log.Error(err)
	}
	close(finished)
}
