package radio

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/thejerf/suture/v4"

	"displaybot/internal/domain"
	"displaybot/internal/player"
)

const resetTimeout = 5 * time.Second

// Tuner follows the station selected in the radio state. It owns the stream
// player and records ICY titles the player prints.
type Tuner struct {
	radio        RadioStore
	stations     StationStore
	launcher     Launcher
	pollInterval time.Duration
	logger       *slog.Logger

	stopOnce sync.Once
	stop     chan struct{}

	mu           sync.Mutex
	handle       player.Handle
	currentURL   string
	currentTitle string
}

func NewTuner(radio RadioStore, stations StationStore, launcher Launcher, pollInterval time.Duration, logger *slog.Logger) *Tuner {
	return &Tuner{
		radio:        radio,
		stations:     stations,
		launcher:     launcher,
		pollInterval: pollInterval,
		logger:       logger.With("component", "radio"),
		stop:         make(chan struct{}),
	}
}

func (t *Tuner) String() string {
	return "radio"
}

// Stop ends the tuner. A stopped tuner is not restarted by its supervisor.
func (t *Tuner) Stop() {
	t.stopOnce.Do(func() { close(t.stop) })
}

// streaming reports whether a stream player is active.
func (t *Tuner) streaming() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.handle != nil && t.handle.Running()
}

// tunedURL is the stream the tuner last started, or "" when silent.
func (t *Tuner) tunedURL() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.currentURL
}

func (t *Tuner) Serve(ctx context.Context) error {
	t.logger.Info("radio tuner started", "interval", t.pollInterval)
	defer t.teardown()

	if err := t.radio.ResetTitles(ctx); err != nil {
		t.logger.Warn("reset titles", "error", err)
	}

	ticker := time.NewTicker(t.pollInterval)
	defer ticker.Stop()

	for {
		t.Poll(ctx)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.stop:
			t.logger.Info("radio tuner stopped")
			return suture.ErrDoNotRestart
		case <-ticker.C:
		}
	}
}

// Poll runs one tuning cycle: restart the stream when the selected station
// resolves to a different URL, otherwise track the stored title.
func (t *Tuner) Poll(ctx context.Context) {
	state, err := t.radio.Get(ctx)
	if err != nil {
		t.logger.Error("read radio state", "error", err)
		return
	}

	url, err := t.resolve(ctx, state.StationPlaying)
	if err != nil {
		t.logger.Error("resolve station", "station", state.StationPlaying, "error", err)
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if url != t.currentURL {
		t.logger.Debug("station changed", "station", state.StationPlaying)
		t.stopStream()

		if url != "" {
			if err := t.startStream(ctx, url); err != nil {
				t.logger.Error("start stream", "url", url, "error", err)
			}
		}
		t.currentURL = url
		return
	}

	if state.StationTitle != t.currentTitle {
		t.currentTitle = state.StationTitle
		t.logger.Info("title changed", "title", t.currentTitle)
	}
}

func (t *Tuner) resolve(ctx context.Context, name string) (string, error) {
	if name == "" {
		return "", nil
	}
	station, err := t.stations.Get(ctx, name)
	if errors.Is(err, domain.ErrNotFound) {
		t.logger.Warn("unknown station", "station", name)
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return station.URL, nil
}

func (t *Tuner) startStream(ctx context.Context, url string) error {
	t.logger.Info("playing stream", "url", url)

	handle, err := t.launcher.Launch(ctx, url, t.onLine(ctx))
	if err != nil {
		return fmt.Errorf("launch player: %w", err)
	}
	t.handle = handle
	return nil
}

func (t *Tuner) stopStream() {
	if t.handle == nil {
		t.logger.Debug("no radio playing previously")
		return
	}
	if err := t.handle.Stop(); err != nil {
		t.logger.Warn("stop stream", "error", err)
	}
	t.handle = nil
	t.logger.Info("stopped running radio")
}

func (t *Tuner) onLine(ctx context.Context) player.LineHandler {
	return func(line string) {
		title, ok := player.ParseStreamTitle(line)
		if !ok {
			return
		}
		t.logger.Debug("found title in stream", "title", title)
		if err := t.radio.SetTitle(ctx, title); err != nil {
			t.logger.Warn("store title", "error", err)
		}
	}
}

func (t *Tuner) teardown() {
	t.mu.Lock()
	t.stopStream()
	t.currentURL = ""
	t.currentTitle = ""
	t.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), resetTimeout)
	defer cancel()
	if err := t.radio.ResetTitles(ctx); err != nil {
		t.logger.Warn("reset titles", "error", err)
	}
}
