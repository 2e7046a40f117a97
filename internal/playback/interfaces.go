package playback

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"displaybot/internal/domain"
	"displaybot/internal/player"
)

type ClipStore interface {
	TakeIncoming(ctx context.Context) (*domain.Clip, error)
	Random(ctx context.Context) (*domain.Clip, error)
}

type Launcher interface {
	Launch(ctx context.Context, target string, onLine player.LineHandler) (player.Handle, error)
}
