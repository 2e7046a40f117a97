package radio

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"displaybot/internal/domain"
	"displaybot/internal/player"
)

type RadioStore interface {
	Get(ctx context.Context) (*domain.RadioState, error)
	SetTitle(ctx context.Context, title string) error
	ResetTitles(ctx context.Context) error
}

type StationStore interface {
	Get(ctx context.Context, name string) (*domain.Station, error)
}

type Launcher interface {
	Launch(ctx context.Context, target string, onLine player.LineHandler) (player.Handle, error)
}
