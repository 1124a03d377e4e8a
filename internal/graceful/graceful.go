package graceful

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
)

func MakeSigintChan() chan os.Signal {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	return sigCh
}

// WithSignals returns a context that is cancelled on SIGINT/SIGTERM or when
// the returned cancel func is called.
func WithSignals(parent context.Context, logger logrus.FieldLogger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	sigCh := MakeSigintChan()

	go func() {
		defer signal.Stop(sigCh)
		select {
		case sig := <-sigCh:
			logger.Infof("received exit signal: %v", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}
