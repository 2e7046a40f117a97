package supervisor

import (
	"context"
	"log/slog"
	"time"

	"github.com/thejerf/suture/v4"
	"github.com/thejerf/sutureslog"
)

type TreeConfig struct {
	FailureThreshold float64
	FailureDecay     float64
	FailureBackoff   time.Duration
	ShutdownTimeout  time.Duration
}

func DefaultTreeConfig() TreeConfig {
	return TreeConfig{
		FailureThreshold: 5,
		FailureDecay:     30,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	}
}

// Tree supervises the bot's long-running services in two layers. The media
// layer owns the display and radio players, the chat layer owns the
// Telegram poller and announcement jobs. A crashing poller never takes the
// players down with it.
type Tree struct {
	root   *suture.Supervisor
	media  *suture.Supervisor
	chat   *suture.Supervisor
	logger *slog.Logger
	config TreeConfig
}

func NewTree(logger *slog.Logger, config TreeConfig) *Tree {
	defaults := DefaultTreeConfig()
	if config.FailureThreshold == 0 {
		config.FailureThreshold = defaults.FailureThreshold
	}
	if config.FailureDecay == 0 {
		config.FailureDecay = defaults.FailureDecay
	}
	if config.FailureBackoff == 0 {
		config.FailureBackoff = defaults.FailureBackoff
	}
	if config.ShutdownTimeout == 0 {
		config.ShutdownTimeout = defaults.ShutdownTimeout
	}

	logger = logger.With("component", "supervisor")

	// MustHook has a pointer receiver.
	hook := (&sutureslog.Handler{Logger: logger}).MustHook()

	childSpec := suture.Spec{
		FailureThreshold: config.FailureThreshold,
		FailureDecay:     config.FailureDecay,
		FailureBackoff:   config.FailureBackoff,
		Timeout:          config.ShutdownTimeout,
	}
	rootSpec := childSpec
	rootSpec.EventHook = hook

	root := suture.New("displaybot", rootSpec)
	media := suture.New("media", childSpec)
	chat := suture.New("chat", childSpec)
	root.Add(media)
	root.Add(chat)

	return &Tree{
		root:   root,
		media:  media,
		chat:   chat,
		logger: logger,
		config: config,
	}
}

// AddMedia adds a player loop.
func (t *Tree) AddMedia(svc suture.Service) suture.ServiceToken {
	return t.media.Add(svc)
}

// AddChat adds a chat-facing service.
func (t *Tree) AddChat(svc suture.Service) suture.ServiceToken {
	return t.chat.Add(svc)
}

// Serve blocks until ctx is canceled and every service has stopped or the
// shutdown timeout passed.
func (t *Tree) Serve(ctx context.Context) error {
	t.logger.Info("starting services")
	err := t.root.Serve(ctx)

	if report, rerr := t.root.UnstoppedServiceReport(); rerr == nil && len(report) > 0 {
		for _, svc := range report {
			t.logger.Warn("service did not stop in time", "service", svc.Name)
		}
	}
	return err
}
