package playback

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/thejerf/suture/v4"

	"displaybot/internal/domain"
	"displaybot/internal/player"
)

// minRun is the shortest player run not followed by an idle pause, so a
// player that dies on start does not respawn in a tight loop.
const minRun = time.Second

type Config struct {
	ClipDir      string
	SlaveMode    bool
	Dwell        time.Duration
	IdleInterval time.Duration
}

// Loop keeps clips on screen. Newly added clips play before anything else;
// otherwise clips are picked at random.
type Loop struct {
	clips    ClipStore
	launcher Launcher
	logger   *slog.Logger
	config   Config

	stopOnce sync.Once
	stop     chan struct{}
}

func NewLoop(clips ClipStore, launcher Launcher, logger *slog.Logger, cfg Config) *Loop {
	return &Loop{
		clips:    clips,
		launcher: launcher,
		logger:   logger.With("component", "playback"),
		config:   cfg,
		stop:     make(chan struct{}),
	}
}

func (l *Loop) String() string {
	return "playback"
}

// Stop ends the loop and terminates its player. A stopped loop is not
// restarted by its supervisor.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}

func (l *Loop) Serve(ctx context.Context) error {
	l.logger.Info("playback loop started", "slave_mode", l.config.SlaveMode)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.stop:
			l.logger.Info("playback loop stopped")
			return suture.ErrDoNotRestart
		default:
		}

		clip, err := l.Next(ctx)
		if err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				l.logger.Error("select clip", "error", err)
			}
			l.idle(ctx)
			continue
		}

		started := time.Now()
		if err := l.play(ctx, clip); err != nil {
			l.logger.Error("play clip", "filename", clip.Filename, "error", err)
		}
		if time.Since(started) < minRun {
			l.idle(ctx)
		}
	}
}

// Next returns the oldest shortlisted clip, clearing its flag, or a random
// clip when nothing is shortlisted.
func (l *Loop) Next(ctx context.Context) (*domain.Clip, error) {
	clip, err := l.clips.TakeIncoming(ctx)
	if err == nil {
		l.logger.Info("enqueuing shortlisted clip", "filename", clip.Filename)
		return clip, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("take incoming: %w", err)
	}

	clip, err = l.clips.Random(ctx)
	if err != nil {
		return nil, fmt.Errorf("random clip: %w", err)
	}
	return clip, nil
}

func (l *Loop) path(clip *domain.Clip) string {
	return filepath.Join(l.config.ClipDir, clip.Filename)
}

// play runs the player for clip and returns once it exited, the dwell time
// ran out or the loop was told to stop. In slave mode the player keeps
// running and is fed the next clip each time playback starts.
func (l *Loop) play(ctx context.Context, clip *domain.Clip) error {
	started := make(chan struct{}, 1)
	onLine := func(line string) {
		if l.config.SlaveMode && player.IsPlaybackStarted(line) {
			select {
			case started <- struct{}{}:
			default:
			}
		}
	}

	l.logger.Info("starting video player", "filename", clip.Filename)
	handle, err := l.launcher.Launch(ctx, l.path(clip), onLine)
	if err != nil {
		return fmt.Errorf("launch player: %w", err)
	}
	defer func() {
		if err := handle.Stop(); err != nil {
			l.logger.Warn("stop player", "error", err)
		}
	}()

	var dwell <-chan time.Time
	if !l.config.SlaveMode && l.config.Dwell > 0 {
		timer := time.NewTimer(l.config.Dwell)
		defer timer.Stop()
		dwell = timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-l.stop:
			return nil
		case <-handle.Done():
			l.logger.Debug("video player exited")
			return nil
		case <-dwell:
			return nil
		case <-started:
			l.enqueue(ctx, handle)
		}
	}
}

func (l *Loop) enqueue(ctx context.Context, handle player.Handle) {
	next, err := l.Next(ctx)
	if err != nil {
		l.logger.Warn("select next clip", "error", err)
		return
	}
	if err := handle.Send(player.LoadFile(l.path(next))); err != nil {
		l.logger.Warn("enqueue clip", "filename", next.Filename, "error", err)
		return
	}
	l.logger.Info("enqueued clip", "filename", next.Filename)
}

func (l *Loop) idle(ctx context.Context) {
	select {
	case <-ctx.Done():
	case <-l.stop:
	case <-time.After(l.config.IdleInterval):
	}
}
