package supervisor

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingService struct {
	name   string
	starts atomic.Int32
	fail   bool
}

func (c *countingService) Serve(ctx context.Context) error {
	c.starts.Add(1)
	if c.fail {
		return errors.New("crashed")
	}
	<-ctx.Done()
	return ctx.Err()
}

func (c *countingService) String() string {
	return c.name
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestNewTree_AppliesDefaults(t *testing.T) {
	tree := NewTree(testLogger(), TreeConfig{})

	assert.Equal(t, DefaultTreeConfig(), tree.config)
}

func TestTree_ServeStopsOnCancel(t *testing.T) {
	tree := NewTree(testLogger(), TreeConfig{ShutdownTimeout: time.Second})

	playback := &countingService{name: "playback"}
	poller := &countingService{name: "poller"}
	tree.AddMedia(playback)
	tree.AddChat(poller)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- tree.Serve(ctx) }()

	require.Eventually(t, func() bool {
		return playback.starts.Load() == 1 && poller.starts.Load() == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		if err != nil {
			assert.ErrorIs(t, err, context.Canceled)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("tree did not stop")
	}
}

func TestTree_RestartsFailingService(t *testing.T) {
	tree := NewTree(testLogger(), TreeConfig{
		FailureThreshold: 100,
		FailureBackoff:   10 * time.Millisecond,
		ShutdownTimeout:  time.Second,
	})

	flaky := &countingService{name: "flaky", fail: true}
	steady := &countingService{name: "steady"}
	tree.AddChat(flaky)
	tree.AddMedia(steady)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = tree.Serve(ctx) }()

	require.Eventually(t, func() bool { return flaky.starts.Load() >= 3 }, 2*time.Second, 5*time.Millisecond)
	assert.Equal(t, int32(1), steady.starts.Load())
}
