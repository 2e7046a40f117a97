package bot

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"
)

type TelegramConfig struct {
	Token       string
	Endpoint    string
	SendRate    float64
	PollTimeout time.Duration
}

// Telegram sends chat messages through the Bot API. Outbound calls share
// one rate limiter to stay under the flood limits.
type Telegram struct {
	api     *tgbotapi.BotAPI
	limiter *rate.Limiter
	logger  *slog.Logger
}

func NewTelegram(cfg TelegramConfig, logger *slog.Logger) (*Telegram, error) {
	if cfg.Endpoint == "" {
		cfg.Endpoint = tgbotapi.APIEndpoint
	}

	client := &http.Client{Timeout: cfg.PollTimeout + 10*time.Second}
	api, err := tgbotapi.NewBotAPIWithClient(cfg.Token, cfg.Endpoint, client)
	if err != nil {
		return nil, fmt.Errorf("connect to telegram: %w", err)
	}

	logger = logger.With("component", "telegram")
	logger.Info("authorized", "username", api.Self.UserName)

	return &Telegram{
		api:     api,
		limiter: rate.NewLimiter(rate.Limit(cfg.SendRate), 3),
		logger:  logger,
	}, nil
}

func (t *Telegram) SendText(ctx context.Context, chatID int64, text string) error {
	return t.send(ctx, tgbotapi.NewMessage(chatID, text))
}

func (t *Telegram) SendMarkdown(ctx context.Context, chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.DisableNotification = true
	msg.DisableWebPagePreview = true
	return t.send(ctx, msg)
}

func (t *Telegram) SendPhoto(ctx context.Context, chatID int64, photoURL string) error {
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileURL(photoURL))
	photo.DisableNotification = true
	return t.send(ctx, photo)
}

func (t *Telegram) SendTyping(ctx context.Context, chatID int64) error {
	return t.request(ctx, tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping))
}

// SendKeyboard shows options as an inline keyboard, one button per row.
// Each button's callback data is its label.
func (t *Telegram) SendKeyboard(ctx context.Context, chatID int64, text string, options []string) error {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(options))
	for _, opt := range options {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(opt, opt)))
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	return t.send(ctx, msg)
}

func (t *Telegram) EditText(ctx context.Context, chatID int64, messageID int, text string) error {
	return t.send(ctx, tgbotapi.NewEditMessageText(chatID, messageID, text))
}

func (t *Telegram) AnswerCallback(ctx context.Context, callbackID, text string) error {
	return t.request(ctx, tgbotapi.NewCallback(callbackID, text))
}

// FileURL resolves an uploaded file to a download URL. The URL embeds the
// bot token and must not be logged.
func (t *Telegram) FileURL(ctx context.Context, fileID string) (string, error) {
	if err := t.limiter.Wait(ctx); err != nil {
		return "", err
	}
	link, err := t.api.GetFileDirectURL(fileID)
	if err != nil {
		return "", fmt.Errorf("get file %s: %w", fileID, err)
	}
	return link, nil
}

func (t *Telegram) GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	return t.api.GetUpdatesChan(config)
}

func (t *Telegram) StopReceivingUpdates() {
	t.api.StopReceivingUpdates()
}

func (t *Telegram) send(ctx context.Context, c tgbotapi.Chattable) error {
	if err := t.limiter.Wait(ctx); err != nil {
		return err
	}
	if _, err := t.api.Send(c); err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}
	return nil
}

// request is for API methods that do not answer with a message.
func (t *Telegram) request(ctx context.Context, c tgbotapi.Chattable) error {
	if err := t.limiter.Wait(ctx); err != nil {
		return err
	}
	if _, err := t.api.Request(c); err != nil {
		return fmt.Errorf("telegram request: %w", err)
	}
	return nil
}
