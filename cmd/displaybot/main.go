package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"displaybot/internal/bot"
	"displaybot/internal/config"
	"displaybot/internal/fetch"
	"displaybot/internal/fip"
	"displaybot/internal/ingest"
	"displaybot/internal/notify"
	"displaybot/internal/playback"
	"displaybot/internal/player"
	"displaybot/internal/publisher"
	"displaybot/internal/radio"
	"displaybot/internal/router"
	"displaybot/internal/scheduler"
	"displaybot/internal/storage/sqlstore"
	"displaybot/internal/supervisor"
	"displaybot/internal/transcode"
	"displaybot/internal/wiki"
)

const (
	jobTimeout    = 30 * time.Second
	routerTimeout = 15 * time.Second
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	if err := cfg.ReadToken(); err != nil {
		logger.Error("failed to read telegram token", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("displaybot failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return err
	}

	db, err := sqlstore.Open(ctx, cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := sqlstore.Migrate(ctx, db); err != nil {
		return err
	}
	logger.Info("connected to database", "driver", cfg.Database.Driver)

	clipStore := sqlstore.NewClipStore(db)
	radioStore := sqlstore.NewRadioStore(db)
	stationStore := sqlstore.NewStationStore(db)

	added, err := stationStore.Seed(ctx, cfg.Stations)
	if err != nil {
		return err
	}
	if added > 0 {
		logger.Info("seeded stations", "count", added)
	}
	if err := radioStore.Ensure(ctx); err != nil {
		return err
	}

	clips, err := clipStore.Count(ctx)
	if err != nil {
		return err
	}
	logger.Info("loaded clip library", "clips", clips)

	var events ingest.Publisher
	if cfg.RabbitMQ.Enabled() {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			return err
		}
		defer rabbitMQ.Close()
		events = rabbitMQ
	}

	telegram, err := bot.NewTelegram(bot.TelegramConfig{
		Token:       cfg.Telegram.Token,
		SendRate:    cfg.Telegram.SendRate,
		PollTimeout: cfg.Telegram.PollTimeout,
	}, logger)
	if err != nil {
		return err
	}

	fetcher := fetch.New(fetch.Config{
		Timeout:        cfg.Ingest.Timeout,
		MaxAttempts:    cfg.Ingest.Retry.MaxAttempts,
		InitialBackoff: cfg.Ingest.Retry.InitialBackoff,
		MaxBackoff:     cfg.Ingest.Retry.MaxBackoff,
	}, logger)

	pipeline := ingest.NewPipeline(
		clipStore,
		fetcher,
		transcode.NewFFmpeg(cfg.Ingest.FFmpegPath, logger),
		events,
		logger,
		ingest.Config{
			ClipDir:        cfg.Ingest.ClipDir,
			SupportedTypes: cfg.Ingest.SupportedTypes,
			AllowedUsers:   cfg.Telegram.AllowedUsers,
			Timeout:        cfg.Ingest.Timeout,
		},
	)

	announcer := notify.NewAnnouncer(
		telegram,
		radioStore,
		wiki.New(cfg.Wiki.BaseURL, cfg.Wiki.Timeout, logger),
		fip.New(cfg.Radio.FIPBaseURL, cfg.Wiki.Timeout, logger),
		events,
		logger,
	)

	jobs := scheduler.NewQueue(jobTimeout, logger)

	handler := bot.NewHandler(bot.Deps{
		Messenger: telegram,
		Ingester:  pipeline,
		Radio:     radioStore,
		Stations:  stationStore,
		Jobs:      jobs,
		Announcer: announcer,
		Links:     fetcher,
		Router:    router.NewFritzBox(cfg.Router.URL, cfg.Router.PasswordFile, routerTimeout, logger),
		Host:      router.NewHostShutdown(cfg.Host.ShutdownCommand, logger),
	}, bot.Config{
		TitleInterval: cfg.Radio.TitleInterval,
		FIPInterval:   cfg.Radio.FIPInterval,
	}, logger)

	loop := playback.NewLoop(clipStore, player.Command{
		Path:   cfg.Playback.Player,
		Args:   cfg.Playback.Args,
		Logger: logger,
	}, logger, playback.Config{
		ClipDir:      cfg.Ingest.ClipDir,
		SlaveMode:    cfg.Playback.SlaveMode,
		Dwell:        cfg.Playback.Dwell,
		IdleInterval: cfg.Playback.IdleInterval,
	})

	tuner := radio.NewTuner(radioStore, stationStore, player.Command{
		Path:   cfg.Radio.Player,
		Args:   cfg.Radio.Args,
		Logger: logger,
	}, cfg.Radio.PollInterval, logger)

	tree := supervisor.NewTree(logger, supervisor.DefaultTreeConfig())
	tree.AddMedia(loop)
	tree.AddMedia(tuner)
	tree.AddChat(jobs)
	tree.AddChat(bot.NewPoller(telegram, handler, cfg.Telegram.PollTimeout, logger))

	logger.Info("starting displaybot",
		"clip_dir", cfg.Ingest.ClipDir,
		"stations", len(cfg.Stations),
		"events", events != nil,
	)

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Info("displaybot stopped")
	return nil
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
