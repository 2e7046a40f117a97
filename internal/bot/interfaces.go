package bot

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"displaybot/internal/domain"
	"displaybot/internal/scheduler"
)

type Messenger interface {
	SendText(ctx context.Context, chatID int64, text string) error
	SendKeyboard(ctx context.Context, chatID int64, text string, options []string) error
	EditText(ctx context.Context, chatID int64, messageID int, text string) error
	AnswerCallback(ctx context.Context, callbackID, text string) error
	FileURL(ctx context.Context, fileID string) (string, error)
}

type Ingester interface {
	SubmitURL(ctx context.Context, rawURL, author string) (*domain.Clip, error)
	Submit(ctx context.Context, sub domain.Submission) (*domain.Clip, error)
}

type RadioStore interface {
	SetStationPlaying(ctx context.Context, name string) error
	ClearTuning(ctx context.Context) error
}

type StationStore interface {
	Get(ctx context.Context, name string) (*domain.Station, error)
	List(ctx context.Context) ([]domain.Station, error)
	Upsert(ctx context.Context, station domain.Station) error
}

type JobQueue interface {
	Schedule(job scheduler.Job, chatID int64)
	CancelAll()
}

type Announcer interface {
	AnnounceStreamTitle(ctx context.Context, chatID int64) error
	AnnounceProviderTrack(ctx context.Context, chatID int64) error
}

type LinkChecker interface {
	Check(ctx context.Context, url string) error
}

type Rebooter interface {
	Reboot(ctx context.Context) error
}

type Shutdowner interface {
	Run(ctx context.Context) error
}
