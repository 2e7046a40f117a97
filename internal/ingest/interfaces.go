package ingest

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"displaybot/internal/domain"
	"displaybot/internal/fetch"
)

type ClipStore interface {
	Insert(ctx context.Context, clip *domain.Clip) (int64, error)
	ExistsByURL(ctx context.Context, url string) (bool, error)
	ExistsByFilename(ctx context.Context, filename string) (bool, error)
}

type Fetcher interface {
	Probe(ctx context.Context, url string) (*fetch.Probe, error)
	Download(ctx context.Context, url, dst string) error
}

type Transcoder interface {
	ToMP4(ctx context.Context, src string) (string, error)
}

type Publisher interface {
	Publish(ctx context.Context, event domain.Event) error
}
