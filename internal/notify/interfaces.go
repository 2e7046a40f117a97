package notify

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"displaybot/internal/domain"
	"displaybot/internal/wiki"
)

type Messenger interface {
	SendText(ctx context.Context, chatID int64, text string) error
	SendMarkdown(ctx context.Context, chatID int64, text string) error
	SendPhoto(ctx context.Context, chatID int64, photoURL string) error
	SendTyping(ctx context.Context, chatID int64) error
}

type RadioStore interface {
	Get(ctx context.Context) (*domain.RadioState, error)
	SetTitleSent(ctx context.Context, title string) error
}

type WikiClient interface {
	Search(ctx context.Context, subject string) ([]string, error)
	Page(ctx context.Context, title string) (*wiki.Page, error)
}

type TrackSource interface {
	Current(ctx context.Context, station string) (*domain.Track, error)
}

type Publisher interface {
	Publish(ctx context.Context, event domain.Event) error
}
