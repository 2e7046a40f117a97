package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"displaybot/internal/domain"
	"displaybot/internal/wiki"
)

// Announcer posts what the radio is playing to a chat, followed by a short
// wiki summary of the artist.
type Announcer struct {
	messenger Messenger
	radio     RadioStore
	wiki      WikiClient
	tracks    TrackSource
	publisher Publisher
	logger    *slog.Logger
}

func NewAnnouncer(
	messenger Messenger,
	radio RadioStore,
	wiki WikiClient,
	tracks TrackSource,
	publisher Publisher,
	logger *slog.Logger,
) *Announcer {
	return &Announcer{
		messenger: messenger,
		radio:     radio,
		wiki:      wiki,
		tracks:    tracks,
		publisher: publisher,
		logger:    logger.With("component", "notify"),
	}
}

// AnnounceStreamTitle sends the ICY title read by the tuner once per change.
func (a *Announcer) AnnounceStreamTitle(ctx context.Context, chatID int64) error {
	state, err := a.radio.Get(ctx)
	if err != nil {
		return fmt.Errorf("get radio state: %w", err)
	}

	title := state.StationTitle
	if title == state.StationTitleSent {
		return nil
	}

	if title != "" {
		if err := a.messenger.SendText(ctx, chatID, "▶️ Now playing "+title); err != nil {
			return fmt.Errorf("send title: %w", err)
		}
	}

	if err := a.radio.SetTitleSent(ctx, title); err != nil {
		return fmt.Errorf("save sent title: %w", err)
	}
	a.logger.Debug("title changed", "from", state.StationTitleSent, "to", title)

	if title == "" {
		return nil
	}

	a.publish(ctx, domain.Event{
		Kind:    domain.EventNowPlaying,
		Station: state.StationPlaying,
		Title:   title,
	})

	if subject := domain.Subject(title); subject != "" {
		a.Research(ctx, chatID, subject, "")
	} else {
		a.logger.Debug("no research subject in title", "title", title)
	}
	return nil
}

// AnnounceProviderTrack asks the station's own API what is playing and
// announces it when it differs from the last announcement.
func (a *Announcer) AnnounceProviderTrack(ctx context.Context, chatID int64) error {
	state, err := a.radio.Get(ctx)
	if err != nil {
		return fmt.Errorf("get radio state: %w", err)
	}

	track, err := a.tracks.Current(ctx, state.StationPlaying)
	if err != nil {
		return fmt.Errorf("get current track: %w", err)
	}

	key := track.String()
	if key == state.StationTitleSent {
		return nil
	}

	msg := fmt.Sprintf("▶️ Now playing %s – _%s_ \nfrom %s",
		escape(track.Artist), escape(track.Title), escape(track.Album))
	if err := a.messenger.SendMarkdown(ctx, chatID, msg); err != nil {
		return fmt.Errorf("send track: %w", err)
	}

	if err := a.radio.SetTitleSent(ctx, key); err != nil {
		return fmt.Errorf("save sent title: %w", err)
	}
	a.logger.Debug("title changed", "from", state.StationTitleSent, "to", key)

	a.publish(ctx, domain.Event{
		Kind:    domain.EventNowPlaying,
		Station: state.StationPlaying,
		Title:   key,
		Track:   track,
	})

	a.Research(ctx, chatID, track.Artist, track.Image)
	return nil
}

// Research sends a wiki summary of subject and a photo. imageURL wins over
// images found on the article. Failures are logged, never returned.
func (a *Announcer) Research(ctx context.Context, chatID int64, subject, imageURL string) {
	a.logger.Info("researching", "subject", subject)

	if err := a.messenger.SendTyping(ctx, chatID); err != nil {
		a.logger.Debug("send typing", "error", err)
	}

	titles, err := a.wiki.Search(ctx, subject)
	if err != nil {
		a.logger.Warn("wiki search failed", "subject", subject, "error", err)
		return
	}
	if len(titles) == 0 {
		a.logger.Debug("no wiki articles found", "subject", subject)
		return
	}

	page, err := a.firstPage(ctx, titles)
	if err != nil {
		a.logger.Warn("wiki lookup failed", "subject", subject, "error", err)
		return
	}

	msg := fmt.Sprintf("*%s*\n%s\n\n[Wikipedia](%s)", escape(page.Title), escape(page.Summary), page.URL)
	if err := a.messenger.SendMarkdown(ctx, chatID, msg); err != nil {
		a.logger.Error("send research", "subject", subject, "error", err)
		return
	}

	if imageURL == "" {
		imageURL = firstJPEG(page.Images)
	}
	if imageURL == "" {
		return
	}

	a.logger.Debug("sending photo", "url", imageURL)
	if err := a.messenger.SendPhoto(ctx, chatID, imageURL); err != nil {
		a.logger.Error("send photo", "url", imageURL, "error", err)
	}
}

// firstPage walks the search results past disambiguation pages.
func (a *Announcer) firstPage(ctx context.Context, titles []string) (*wiki.Page, error) {
	for _, title := range titles {
		page, err := a.wiki.Page(ctx, title)
		if errors.Is(err, wiki.ErrDisambiguation) {
			a.logger.Warn("skipping disambiguation page", "title", title)
			continue
		}
		if err != nil {
			return nil, err
		}
		return page, nil
	}
	return nil, errors.New("wiki articles exhausted")
}

func (a *Announcer) publish(ctx context.Context, event domain.Event) {
	if a.publisher == nil {
		return
	}
	event.Timestamp = time.Now()
	if err := a.publisher.Publish(ctx, event); err != nil {
		a.logger.Warn("publish event", "kind", event.Kind, "error", err)
	}
}

func escape(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
}

func firstJPEG(urls []string) string {
	for _, u := range urls {
		lower := strings.ToLower(u)
		if strings.HasSuffix(lower, ".jpg") || strings.HasSuffix(lower, ".jpeg") {
			return u
		}
	}
	return ""
}
