package graceful

import (
	"context"
	"syscall"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func TestWithSignals(t *testing.T) {
	logger, hook := test.NewNullLogger()

	t.Run("cancel stops the context", func(t *testing.T) {
		ctx, cancel := WithSignals(context.Background(), logger)
		cancel()

		select {
		case <-ctx.Done():
		case <-time.After(time.Second):
			t.Fatal("context not cancelled")
		}
	})

	t.Run("parent cancellation propagates", func(t *testing.T) {
		parent, cancelParent := context.WithCancel(context.Background())
		ctx, cancel := WithSignals(parent, logger)
		defer cancel()

		cancelParent()
		require.Eventually(t, func() bool { return ctx.Err() != nil }, time.Second, 10*time.Millisecond)
	})

	t.Run("SIGTERM cancels the context", func(t *testing.T) {
		hook.Reset()
		ctx, cancel := WithSignals(context.Background(), logger)
		defer cancel()

		require.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGTERM))

		select {
		case <-ctx.Done():
		case <-time.After(2 * time.Second):
			t.Fatal("context not cancelled by signal")
		}
		require.Eventually(t, func() bool {
			entry := hook.LastEntry()
			return entry != nil && entry.Level == logrus.InfoLevel
		}, time.Second, 10*time.Millisecond)
	})
}
