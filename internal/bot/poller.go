package bot

import (
	"context"
	"errors"
	"log/slog"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/sync/errgroup"
)

const handlerWorkers = 4

type UpdateSource interface {
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

type UpdateHandler interface {
	Handle(ctx context.Context, update tgbotapi.Update)
}

// Poller long-polls Telegram for updates and hands them to the handler.
type Poller struct {
	source      UpdateSource
	handler     UpdateHandler
	pollTimeout time.Duration
	logger      *slog.Logger
}

func NewPoller(source UpdateSource, handler UpdateHandler, pollTimeout time.Duration, logger *slog.Logger) *Poller {
	return &Poller{
		source:      source,
		handler:     handler,
		pollTimeout: pollTimeout,
		logger:      logger.With("component", "poller"),
	}
}

func (p *Poller) String() string {
	return "telegram-poller"
}

func (p *Poller) Serve(ctx context.Context) error {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = int(p.pollTimeout.Seconds())

	updates := p.source.GetUpdatesChan(cfg)
	p.logger.Info("polling for updates", "timeout", p.pollTimeout)

	g := new(errgroup.Group)
	g.SetLimit(handlerWorkers)
	defer func() { _ = g.Wait() }()

	for {
		select {
		case <-ctx.Done():
			p.source.StopReceivingUpdates()
			p.logger.Info("stopped polling")
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return errors.New("updates channel closed")
			}
			g.Go(func() error {
				p.handler.Handle(ctx, update)
				return nil
			})
		}
	}
}
