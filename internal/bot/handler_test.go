package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"displaybot/internal/bot/mocks"
	"displaybot/internal/domain"
	"displaybot/internal/scheduler"
)

const (
	chatID    int64 = -100123
	messageID       = 77
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	ctx  context.Context

	messenger *mocks.MockMessenger
	ingester  *mocks.MockIngester
	radio     *mocks.MockRadioStore
	stations  *mocks.MockStationStore
	jobs      *mocks.MockJobQueue
	announcer *mocks.MockAnnouncer
	links     *mocks.MockLinkChecker
	router    *mocks.MockRebooter
	host      *mocks.MockShutdowner

	handler *Handler
	config  Config
	logger  *slog.Logger
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ctx = context.Background()

	s.messenger = mocks.NewMockMessenger(s.ctrl)
	s.ingester = mocks.NewMockIngester(s.ctrl)
	s.radio = mocks.NewMockRadioStore(s.ctrl)
	s.stations = mocks.NewMockStationStore(s.ctrl)
	s.jobs = mocks.NewMockJobQueue(s.ctrl)
	s.announcer = mocks.NewMockAnnouncer(s.ctrl)
	s.links = mocks.NewMockLinkChecker(s.ctrl)
	s.router = mocks.NewMockRebooter(s.ctrl)
	s.host = mocks.NewMockShutdowner(s.ctrl)

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError + 4}))
	s.config = Config{TitleInterval: time.Second, FIPInterval: 7 * time.Second}

	s.handler = NewHandler(Deps{
		Messenger: s.messenger,
		Ingester:  s.ingester,
		Radio:     s.radio,
		Stations:  s.stations,
		Jobs:      s.jobs,
		Announcer: s.announcer,
		Links:     s.links,
		Router:    s.router,
		Host:      s.host,
	}, s.config, s.logger)
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func message(text string, entities ...tgbotapi.MessageEntity) *tgbotapi.Message {
	return &tgbotapi.Message{
		MessageID: messageID,
		From:      &tgbotapi.User{ID: 1, UserName: "alice"},
		Chat:      &tgbotapi.Chat{ID: chatID, Type: "group"},
		Text:      text,
		Entities:  entities,
	}
}

func command(text string) tgbotapi.Update {
	length := strings.IndexByte(text, ' ')
	if length < 0 {
		length = len(text)
	}
	return tgbotapi.Update{
		UpdateID: 1,
		Message:  message(text, tgbotapi.MessageEntity{Type: "bot_command", Offset: 0, Length: length}),
	}
}

func callback(data string) tgbotapi.Update {
	return tgbotapi.Update{
		UpdateID: 2,
		CallbackQuery: &tgbotapi.CallbackQuery{
			ID:      "cb-1",
			From:    &tgbotapi.User{ID: 1, UserName: "alice"},
			Message: message(radioOffText),
			Data:    data,
		},
	}
}

func (s *HandlerTestSuite) expectJob(name string, interval time.Duration) {
	s.jobs.EXPECT().Schedule(gomock.Any(), chatID).Do(func(job scheduler.Job, _ int64) {
		s.Equal(name, job.Name)
		s.Equal(interval, job.Interval)
		s.NotNil(job.Run)
	})
}

func (s *HandlerTestSuite) TestStart() {
	s.messenger.EXPECT().SendText(s.ctx, chatID, "Gimme dat gif. Send an .mp4 link!").Return(nil)

	s.handler.Handle(s.ctx, command("/start"))
}

func (s *HandlerTestSuite) TestRadio_ShowsSortedMenu() {
	gomock.InOrder(
		s.jobs.EXPECT().CancelAll(),
		s.radio.EXPECT().ClearTuning(s.ctx).Return(nil),
		s.stations.EXPECT().List(s.ctx).Return([]domain.Station{
			{Name: "fip"}, {Name: "dronezone"}, {Name: "91.4"},
		}, nil),
		s.messenger.EXPECT().SendKeyboard(s.ctx, chatID, "⏹ Radio turned off.\n\nSelect a station to start.",
			[]string{"91.4", "dronezone", "fip"}).Return(nil),
	)

	s.handler.Handle(s.ctx, command("/radio"))
}

func (s *HandlerTestSuite) TestRadio_StoreFailureIsLogged() {
	s.jobs.EXPECT().CancelAll()
	s.radio.EXPECT().ClearTuning(s.ctx).Return(errors.New("disk full"))

	s.NotPanics(func() { s.handler.Handle(s.ctx, command("/radio")) })
}

func (s *HandlerTestSuite) TestChangeStation_StreamStation() {
	gomock.InOrder(
		s.stations.EXPECT().Get(s.ctx, "dronezone").Return(&domain.Station{Name: "dronezone"}, nil),
		s.messenger.EXPECT().AnswerCallback(s.ctx, "cb-1", "Tuning to dronezone...").Return(nil),
		s.jobs.EXPECT().CancelAll(),
		s.radio.EXPECT().SetStationPlaying(s.ctx, "dronezone").Return(nil),
	)
	s.expectJob("stream-title", time.Second)
	s.messenger.EXPECT().EditText(s.ctx, chatID, messageID, "📻 Changed station to dronezone.").Return(nil)

	s.handler.Handle(s.ctx, callback("dronezone"))
}

func (s *HandlerTestSuite) TestChangeStation_FIPStationUsesProviderJob() {
	s.stations.EXPECT().Get(s.ctx, "fip du jazz").Return(&domain.Station{Name: "fip du jazz"}, nil)
	s.messenger.EXPECT().AnswerCallback(s.ctx, "cb-1", "Tuning to fip du jazz...").Return(nil)
	s.jobs.EXPECT().CancelAll()
	s.radio.EXPECT().SetStationPlaying(s.ctx, "fip du jazz").Return(nil)
	s.expectJob("fip-title", 7*time.Second)
	s.messenger.EXPECT().EditText(s.ctx, chatID, messageID, "📻 Changed station to fip du jazz.").Return(nil)

	s.handler.Handle(s.ctx, callback("fip du jazz"))
}

// jobCounter is a JobQueue that tracks how many announcement jobs are live.
type jobCounter struct {
	mu      sync.Mutex
	active  int
	highest int
}

func (c *jobCounter) Schedule(scheduler.Job, int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.active++
	c.highest = max(c.highest, c.active)
}

func (c *jobCounter) CancelAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.active = 0
}

func (s *HandlerTestSuite) TestChangeStation_ConcurrentKeepsOneJob() {
	jobs := &jobCounter{}
	handler := NewHandler(Deps{
		Messenger: s.messenger,
		Radio:     s.radio,
		Stations:  s.stations,
		Jobs:      jobs,
		Announcer: s.announcer,
		Links:     s.links,
	}, s.config, s.logger)

	s.stations.EXPECT().Get(s.ctx, gomock.Any()).DoAndReturn(func(_ context.Context, name string) (*domain.Station, error) {
		return &domain.Station{Name: name}, nil
	}).AnyTimes()
	s.stations.EXPECT().Upsert(s.ctx, gomock.Any()).Return(nil).AnyTimes()
	s.links.EXPECT().Check(s.ctx, gomock.Any()).Return(nil).AnyTimes()
	s.messenger.EXPECT().AnswerCallback(s.ctx, gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.messenger.EXPECT().EditText(s.ctx, chatID, messageID, gomock.Any()).Return(nil).AnyTimes()
	s.messenger.EXPECT().SendText(s.ctx, chatID, gomock.Any()).Return(nil).AnyTimes()
	s.radio.EXPECT().SetStationPlaying(s.ctx, gomock.Any()).DoAndReturn(func(context.Context, string) error {
		time.Sleep(10 * time.Millisecond)
		return nil
	}).AnyTimes()

	updates := []tgbotapi.Update{
		callback("dronezone"),
		callback("groovesalad"),
		command("/play http://stream.example/live.mp3"),
		callback("fip"),
	}

	var wg sync.WaitGroup
	for _, update := range updates {
		wg.Add(1)
		go func() {
			defer wg.Done()
			handler.Handle(s.ctx, update)
		}()
	}
	wg.Wait()

	s.Equal(1, jobs.active)
	s.Equal(1, jobs.highest)
}

func (s *HandlerTestSuite) TestChangeStation_Unknown() {
	s.stations.EXPECT().Get(s.ctx, "nowhere fm").Return(nil, fmt.Errorf("station nowhere fm: %w", domain.ErrNotFound))
	s.messenger.EXPECT().AnswerCallback(s.ctx, "cb-1", "").Return(nil)
	s.messenger.EXPECT().SendText(s.ctx, chatID, "I don't know about 'nowhere fm'").Return(nil)

	s.handler.Handle(s.ctx, callback("nowhere fm"))
}

func (s *HandlerTestSuite) TestPlay_TunesManualStation() {
	const stream = "http://stream.example/live.mp3"

	gomock.InOrder(
		s.links.EXPECT().Check(s.ctx, stream).Return(nil),
		s.stations.EXPECT().Upsert(s.ctx, domain.Station{Name: domain.ManualStation, URL: stream}).Return(nil),
		s.jobs.EXPECT().CancelAll(),
		s.radio.EXPECT().SetStationPlaying(s.ctx, domain.ManualStation).Return(nil),
	)
	s.expectJob("stream-title", time.Second)
	s.messenger.EXPECT().SendText(s.ctx, chatID, "📻 Playing "+stream).Return(nil)

	s.handler.Handle(s.ctx, command("/play "+stream))
}

func (s *HandlerTestSuite) TestPlay_Unreachable() {
	s.links.EXPECT().Check(s.ctx, "http://nope.invalid").Return(fmt.Errorf("check: %w", domain.ErrInvalidURL))
	s.messenger.EXPECT().SendText(s.ctx, chatID, "Link not valid").Return(nil)

	s.handler.Handle(s.ctx, command("/play http://nope.invalid"))
}

func (s *HandlerTestSuite) TestPlay_MissingArgument() {
	s.messenger.EXPECT().SendText(s.ctx, chatID, "Usage: /play <stream url>").Return(nil)

	s.handler.Handle(s.ctx, command("/play"))
}

func (s *HandlerTestSuite) TestReboot() {
	gomock.InOrder(
		s.messenger.EXPECT().SendText(s.ctx, chatID, "Preparing to reboot FritzBox...").Return(nil),
		s.messenger.EXPECT().SendText(s.ctx, chatID, "Rebooting now. See ya 💋").Return(nil),
		s.router.EXPECT().Reboot(s.ctx).Return(nil),
	)

	s.handler.Handle(s.ctx, command("/reboot"))
}

func (s *HandlerTestSuite) TestReboot_Failure() {
	s.messenger.EXPECT().SendText(s.ctx, chatID, gomock.Any()).Return(nil).Times(2)
	s.router.EXPECT().Reboot(s.ctx).Return(errors.New("router login failed"))
	s.messenger.EXPECT().SendText(s.ctx, chatID, "Router reboot failed").Return(nil)

	s.handler.Handle(s.ctx, command("/reboot"))
}

func (s *HandlerTestSuite) TestShutdown() {
	gomock.InOrder(
		s.messenger.EXPECT().SendText(s.ctx, chatID, "Shutting down. Bye 👋").Return(nil),
		s.host.EXPECT().Run(s.ctx).Return(nil),
	)

	s.handler.Handle(s.ctx, command("/shutdown"))
}

func (s *HandlerTestSuite) TestReceive_URLAfterEmoji() {
	// The emoji takes two UTF-16 code units, so the link starts at offset 8.
	text := "🎉 look https://example.com/a.mp4"
	update := tgbotapi.Update{Message: message(text, tgbotapi.MessageEntity{Type: "url", Offset: 8, Length: 25})}

	gomock.InOrder(
		s.ingester.EXPECT().SubmitURL(s.ctx, "https://example.com/a.mp4", "alice").Return(&domain.Clip{ID: 1}, nil),
		s.messenger.EXPECT().SendText(s.ctx, chatID, "👾 Added video to database.").Return(nil),
	)

	s.handler.Handle(s.ctx, update)
}

func (s *HandlerTestSuite) TestReceive_TextLinkDuplicate() {
	update := tgbotapi.Update{Message: message("this one", tgbotapi.MessageEntity{
		Type: "text_link", Offset: 0, Length: 8, URL: "https://example.com/b.mp4",
	})}

	s.ingester.EXPECT().SubmitURL(s.ctx, "https://example.com/b.mp4", "alice").Return(nil, domain.ErrDuplicate)
	s.messenger.EXPECT().SendText(s.ctx, chatID, "👾 Reposter!").Return(nil)

	s.handler.Handle(s.ctx, update)
}

func (s *HandlerTestSuite) TestReceive_Document() {
	msg := message("")
	msg.Document = &tgbotapi.Document{FileID: "file-1", FileName: "cat.mp4", MimeType: "video/mp4"}

	s.messenger.EXPECT().FileURL(s.ctx, "file-1").Return("https://api.telegram.org/file/botTOKEN/documents/cat.mp4", nil)
	s.ingester.EXPECT().Submit(s.ctx, domain.Submission{
		Source:       "https://api.telegram.org/file/botTOKEN/documents/cat.mp4",
		ContentType:  "video/mp4",
		Author:       "alice",
		FilenameHint: "cat.mp4",
		Uploaded:     true,
	}).Return(&domain.Clip{ID: 2}, nil)
	s.messenger.EXPECT().SendText(s.ctx, chatID, "👾 Added video to database.").Return(nil)

	s.handler.Handle(s.ctx, tgbotapi.Update{Message: msg})
}

func (s *HandlerTestSuite) TestReceive_DocumentFileLookupFails() {
	msg := message("")
	msg.Document = &tgbotapi.Document{FileID: "file-1", FileName: "cat.mp4", MimeType: "video/mp4"}

	s.messenger.EXPECT().FileURL(s.ctx, "file-1").Return("", errors.New("file is too big"))
	s.messenger.EXPECT().SendText(s.ctx, chatID, "Download failed, try again later").Return(nil)

	s.handler.Handle(s.ctx, tgbotapi.Update{Message: msg})
}

func (s *HandlerTestSuite) TestReceive_PlainTextIsIgnored() {
	s.handler.Handle(s.ctx, tgbotapi.Update{Message: message("good morning")})
}

func (s *HandlerTestSuite) TestHandle_RecoversFromPanic() {
	s.messenger.EXPECT().SendText(s.ctx, chatID, gomock.Any()).DoAndReturn(
		func(context.Context, int64, string) error { panic("boom") })

	s.NotPanics(func() { s.handler.Handle(s.ctx, command("/start")) })
}

func (s *HandlerTestSuite) TestHandle_EmptyUpdate() {
	s.NotPanics(func() { s.handler.Handle(s.ctx, tgbotapi.Update{}) })
}

func TestExtractURLs(t *testing.T) {
	tests := []struct {
		name string
		msg  *tgbotapi.Message
		want []string
	}{
		{
			name: "two links",
			msg: &tgbotapi.Message{
				Text: "a http://x.io/1 b http://x.io/2",
				Entities: []tgbotapi.MessageEntity{
					{Type: "url", Offset: 2, Length: 13},
					{Type: "url", Offset: 18, Length: 13},
				},
			},
			want: []string{"http://x.io/1", "http://x.io/2"},
		},
		{
			name: "caption",
			msg: &tgbotapi.Message{
				Caption:         "see http://x.io/c",
				CaptionEntities: []tgbotapi.MessageEntity{{Type: "url", Offset: 4, Length: 13}},
			},
			want: []string{"http://x.io/c"},
		},
		{
			name: "out of range entity",
			msg: &tgbotapi.Message{
				Text:     "short",
				Entities: []tgbotapi.MessageEntity{{Type: "url", Offset: 2, Length: 40}},
			},
		},
		{
			name: "other entities ignored",
			msg: &tgbotapi.Message{
				Text:     "@someone #tag",
				Entities: []tgbotapi.MessageEntity{{Type: "mention", Offset: 0, Length: 8}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractURLs(tt.msg))
		})
	}
}
