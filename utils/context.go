package utils

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	log "github.com/bloXroute-Labs/geyser-client/logger"
)

// ContextWithSignal returns a context cancelled when the process receives one of the signals,
// SIGINT and SIGTERM when none are given. A second signal terminates the process.
func ContextWithSignal(parent context.Context, s ...os.Signal) (context.Context, context.CancelFunc) {
	if len(s) == 0 {
		s = []os.Signal{syscall.SIGTERM, syscall.SIGINT}
	}
	ctx, cancel := context.WithCancel(parent)
	c := make(chan os.Signal, 1)
	signal.Notify(c, s...)

	go func() {
		select {
		case sig := <-c:
			log.Infof("received %v, shutting down", sig)
		case <-ctx.Done():
		}

		cancel()
		signal.Stop(c)
	}()

	return ctx, cancel
}
