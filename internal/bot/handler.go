package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"slices"
	"strings"
	"sync"
	"time"
	"unicode/utf16"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"displaybot/internal/domain"
	"displaybot/internal/fip"
	"displaybot/internal/scheduler"
)

const (
	startText     = "Gimme dat gif. Send an .mp4 link!"
	radioOffText  = "⏹ Radio turned off.\n\nSelect a station to start."
	rebootingText = "Rebooting now. See ya 💋"
)

type Config struct {
	TitleInterval time.Duration
	FIPInterval   time.Duration
}

type Deps struct {
	Messenger Messenger
	Ingester  Ingester
	Radio     RadioStore
	Stations  StationStore
	Jobs      JobQueue
	Announcer Announcer
	Links     LinkChecker
	Router    Rebooter
	Host      Shutdowner
}

// Handler maps chat updates to bot operations.
type Handler struct {
	deps   Deps
	config Config
	logger *slog.Logger

	// tuning serializes job replacement across concurrent updates.
	tuning sync.Mutex
}

func NewHandler(deps Deps, cfg Config, logger *slog.Logger) *Handler {
	return &Handler{
		deps:   deps,
		config: cfg,
		logger: logger.With("component", "bot"),
	}
}

// Handle processes one update. Errors and panics are logged and never
// escape, so one bad update cannot stop the poller.
func (h *Handler) Handle(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("handler panic",
				"update_id", update.UpdateID,
				"panic", r,
				"stack", string(debug.Stack()))
		}
	}()

	if err := h.dispatch(ctx, update); err != nil {
		h.logger.Error("handle update", "update_id", update.UpdateID, "error", err)
	}
}

func (h *Handler) dispatch(ctx context.Context, update tgbotapi.Update) error {
	if q := update.CallbackQuery; q != nil {
		return h.changeStation(ctx, q)
	}

	msg := update.Message
	if msg == nil || msg.Chat == nil {
		return nil
	}

	if !msg.IsCommand() {
		return h.receive(ctx, msg)
	}

	switch msg.Command() {
	case "start":
		return h.deps.Messenger.SendText(ctx, msg.Chat.ID, startText)
	case "radio":
		return h.radioMenu(ctx, msg.Chat.ID)
	case "play":
		return h.play(ctx, msg.Chat.ID, strings.TrimSpace(msg.CommandArguments()))
	case "reboot":
		return h.reboot(ctx, msg.Chat.ID)
	case "shutdown":
		return h.shutdown(ctx, msg.Chat.ID)
	default:
		h.logger.Debug("ignoring unknown command", "command", msg.Command())
		return nil
	}
}

// receive ingests every attachment and link in a message and replies once
// per submission.
func (h *Handler) receive(ctx context.Context, msg *tgbotapi.Message) error {
	author := authorOf(msg.From)
	chatID := msg.Chat.ID

	if doc := msg.Document; doc != nil {
		h.logger.Debug("processing attachment", "file_name", doc.FileName, "mime_type", doc.MimeType)
		_, err := h.submitDocument(ctx, doc, author)
		if err != nil && !isUserError(err) {
			h.logger.Error("ingest attachment", "file_name", doc.FileName, "error", err)
		}
		if err := h.deps.Messenger.SendText(ctx, chatID, domain.ReplyFor(err)); err != nil {
			return fmt.Errorf("send reply: %w", err)
		}
	}

	links := extractURLs(msg)
	if len(links) > 0 {
		h.logger.Info("processing message with url entities", "count", len(links))
	}

	for _, link := range links {
		_, err := h.deps.Ingester.SubmitURL(ctx, link, author)
		if err != nil && !isUserError(err) {
			h.logger.Error("ingest link", "url", link, "error", err)
		}
		if err := h.deps.Messenger.SendText(ctx, chatID, domain.ReplyFor(err)); err != nil {
			return fmt.Errorf("send reply: %w", err)
		}
	}
	return nil
}

func (h *Handler) submitDocument(ctx context.Context, doc *tgbotapi.Document, author string) (*domain.Clip, error) {
	fileURL, err := h.deps.Messenger.FileURL(ctx, doc.FileID)
	if err != nil {
		return nil, fmt.Errorf("resolve file: %w: %w", domain.ErrDownloadFailed, err)
	}

	return h.deps.Ingester.Submit(ctx, domain.Submission{
		Source:       fileURL,
		ContentType:  doc.MimeType,
		Author:       author,
		FilenameHint: doc.FileName,
		Uploaded:     true,
	})
}

func (h *Handler) radioMenu(ctx context.Context, chatID int64) error {
	if err := h.turnOff(ctx); err != nil {
		return err
	}

	stations, err := h.deps.Stations.List(ctx)
	if err != nil {
		return fmt.Errorf("list stations: %w", err)
	}

	names := make([]string, 0, len(stations))
	for _, st := range stations {
		names = append(names, st.Name)
	}
	slices.Sort(names)

	return h.deps.Messenger.SendKeyboard(ctx, chatID, radioOffText, names)
}

func (h *Handler) changeStation(ctx context.Context, q *tgbotapi.CallbackQuery) error {
	if q.Message == nil || q.Message.Chat == nil {
		return h.deps.Messenger.AnswerCallback(ctx, q.ID, "")
	}
	name := q.Data
	chatID := q.Message.Chat.ID

	if _, err := h.deps.Stations.Get(ctx, name); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("get station: %w", err)
		}
		if err := h.deps.Messenger.AnswerCallback(ctx, q.ID, ""); err != nil {
			return fmt.Errorf("answer callback: %w", err)
		}
		return h.deps.Messenger.SendText(ctx, chatID, fmt.Sprintf("I don't know about '%s'", name))
	}

	h.logger.Info("requesting station", "station", name)
	if err := h.deps.Messenger.AnswerCallback(ctx, q.ID, fmt.Sprintf("Tuning to %s...", name)); err != nil {
		h.logger.Warn("answer callback", "error", err)
	}

	if err := h.tune(ctx, chatID, name); err != nil {
		return err
	}

	return h.deps.Messenger.EditText(ctx, chatID, q.Message.MessageID, fmt.Sprintf("📻 Changed station to %s.", name))
}

func (h *Handler) play(ctx context.Context, chatID int64, link string) error {
	if link == "" {
		return h.deps.Messenger.SendText(ctx, chatID, "Usage: /play <stream url>")
	}

	if err := h.deps.Links.Check(ctx, link); err != nil {
		h.logger.Warn("manual stream not reachable", "url", link, "error", err)
		return h.deps.Messenger.SendText(ctx, chatID, domain.ReplyFor(err))
	}

	if err := h.deps.Stations.Upsert(ctx, domain.Station{Name: domain.ManualStation, URL: link}); err != nil {
		return fmt.Errorf("save manual station: %w", err)
	}

	if err := h.tune(ctx, chatID, domain.ManualStation); err != nil {
		return err
	}

	return h.deps.Messenger.SendText(ctx, chatID, fmt.Sprintf("📻 Playing %s", link))
}

func (h *Handler) turnOff(ctx context.Context) error {
	h.tuning.Lock()
	defer h.tuning.Unlock()

	h.deps.Jobs.CancelAll()

	if err := h.deps.Radio.ClearTuning(ctx); err != nil {
		return fmt.Errorf("clear tuning: %w", err)
	}
	return nil
}

// tune switches the radio to station and replaces the announcement job.
func (h *Handler) tune(ctx context.Context, chatID int64, station string) error {
	h.tuning.Lock()
	defer h.tuning.Unlock()

	h.deps.Jobs.CancelAll()

	if err := h.deps.Radio.SetStationPlaying(ctx, station); err != nil {
		return fmt.Errorf("set station: %w", err)
	}

	job := scheduler.Job{
		Name:     "stream-title",
		Interval: h.config.TitleInterval,
		Run:      h.deps.Announcer.AnnounceStreamTitle,
	}
	if fip.Known(station) {
		h.logger.Info("starting fip title poller", "station", station)
		job = scheduler.Job{
			Name:     "fip-title",
			Interval: h.config.FIPInterval,
			Run:      h.deps.Announcer.AnnounceProviderTrack,
		}
	}

	h.deps.Jobs.Schedule(job, chatID)
	return nil
}

func (h *Handler) reboot(ctx context.Context, chatID int64) error {
	h.logger.Debug("received reboot command")
	if err := h.deps.Messenger.SendText(ctx, chatID, "Preparing to reboot FritzBox..."); err != nil {
		return fmt.Errorf("send reply: %w", err)
	}

	// The router drops the connection once it restarts, so say goodbye first.
	if err := h.deps.Messenger.SendText(ctx, chatID, rebootingText); err != nil {
		return fmt.Errorf("send reply: %w", err)
	}

	if err := h.deps.Router.Reboot(ctx); err != nil {
		_ = h.deps.Messenger.SendText(ctx, chatID, "Router reboot failed")
		return fmt.Errorf("reboot router: %w", err)
	}
	return nil
}

func (h *Handler) shutdown(ctx context.Context, chatID int64) error {
	h.logger.Warn("received shutdown command")
	if err := h.deps.Messenger.SendText(ctx, chatID, "Shutting down. Bye 👋"); err != nil {
		return fmt.Errorf("send reply: %w", err)
	}

	if err := h.deps.Host.Run(ctx); err != nil {
		_ = h.deps.Messenger.SendText(ctx, chatID, "Shutdown failed")
		return fmt.Errorf("shutdown host: %w", err)
	}
	return nil
}

// extractURLs returns the links of a message or caption. Entity offsets
// count UTF-16 code units.
func extractURLs(msg *tgbotapi.Message) []string {
	text, entities := msg.Text, msg.Entities
	if text == "" {
		text, entities = msg.Caption, msg.CaptionEntities
	}

	var encoded []uint16
	var links []string
	for _, e := range entities {
		switch e.Type {
		case "url":
			if encoded == nil {
				encoded = utf16.Encode([]rune(text))
			}
			end := e.Offset + e.Length
			if e.Offset < 0 || end > len(encoded) {
				continue
			}
			links = append(links, string(utf16.Decode(encoded[e.Offset:end])))
		case "text_link":
			if e.URL != "" {
				links = append(links, e.URL)
			}
		}
	}
	return links
}

func authorOf(u *tgbotapi.User) string {
	if u == nil {
		return ""
	}
	if u.UserName != "" {
		return u.UserName
	}
	return u.FirstName
}

func isUserError(err error) bool {
	for _, target := range []error{
		domain.ErrUnsupportedType,
		domain.ErrDuplicate,
		domain.ErrInvalidURL,
		domain.ErrNotAllowed,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
