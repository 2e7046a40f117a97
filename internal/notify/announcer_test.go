package notify

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"displaybot/internal/domain"
	"displaybot/internal/notify/mocks"
	"displaybot/internal/wiki"
)

const chatID int64 = 4242

type AnnouncerTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	ctx  context.Context

	messenger *mocks.MockMessenger
	radio     *mocks.MockRadioStore
	wiki      *mocks.MockWikiClient
	tracks    *mocks.MockTrackSource
	publisher *mocks.MockPublisher

	announcer *Announcer
	logger    *slog.Logger
}

func (s *AnnouncerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ctx = context.Background()

	s.messenger = mocks.NewMockMessenger(s.ctrl)
	s.radio = mocks.NewMockRadioStore(s.ctrl)
	s.wiki = mocks.NewMockWikiClient(s.ctrl)
	s.tracks = mocks.NewMockTrackSource(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.announcer = NewAnnouncer(s.messenger, s.radio, s.wiki, s.tracks, s.publisher, s.logger)
}

func (s *AnnouncerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAnnouncerTestSuite(t *testing.T) {
	suite.Run(t, new(AnnouncerTestSuite))
}

func (s *AnnouncerTestSuite) TestAnnounceStreamTitle_NewTitle() {
	s.radio.EXPECT().Get(s.ctx).Return(&domain.RadioState{
		StationPlaying: "dronezone",
		StationTitle:   "Stars of the Lid - Requiem for Dying Mothers",
	}, nil)

	gomock.InOrder(
		s.messenger.EXPECT().SendText(s.ctx, chatID, "▶️ Now playing Stars of the Lid - Requiem for Dying Mothers").Return(nil),
		s.radio.EXPECT().SetTitleSent(s.ctx, "Stars of the Lid - Requiem for Dying Mothers").Return(nil),
		s.publisher.EXPECT().Publish(s.ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e domain.Event) error {
			s.Equal(domain.EventNowPlaying, e.Kind)
			s.Equal("dronezone", e.Station)
			s.False(e.Timestamp.IsZero())
			return nil
		}),
		s.messenger.EXPECT().SendTyping(s.ctx, chatID).Return(nil),
		s.wiki.EXPECT().Search(s.ctx, "Stars of the Lid").Return(nil, nil),
	)

	s.NoError(s.announcer.AnnounceStreamTitle(s.ctx, chatID))
}

func (s *AnnouncerTestSuite) TestAnnounceStreamTitle_AlreadySent() {
	s.radio.EXPECT().Get(s.ctx).Return(&domain.RadioState{
		StationTitle:     "Artist - Song",
		StationTitleSent: "Artist - Song",
	}, nil)

	s.NoError(s.announcer.AnnounceStreamTitle(s.ctx, chatID))
}

func (s *AnnouncerTestSuite) TestAnnounceStreamTitle_ClearedTitleIsPersistedSilently() {
	s.radio.EXPECT().Get(s.ctx).Return(&domain.RadioState{StationTitleSent: "Artist - Song"}, nil)
	s.radio.EXPECT().SetTitleSent(s.ctx, "").Return(nil)

	s.NoError(s.announcer.AnnounceStreamTitle(s.ctx, chatID))
}

func (s *AnnouncerTestSuite) TestAnnounceStreamTitle_NoSeparatorSkipsResearch() {
	s.radio.EXPECT().Get(s.ctx).Return(&domain.RadioState{StationTitle: "Station jingle"}, nil)
	s.messenger.EXPECT().SendText(s.ctx, chatID, "▶️ Now playing Station jingle").Return(nil)
	s.radio.EXPECT().SetTitleSent(s.ctx, "Station jingle").Return(nil)
	s.publisher.EXPECT().Publish(s.ctx, gomock.Any()).Return(nil)

	s.NoError(s.announcer.AnnounceStreamTitle(s.ctx, chatID))
}

func (s *AnnouncerTestSuite) TestAnnounceStreamTitle_SendFailureKeepsTitleUnsent() {
	s.radio.EXPECT().Get(s.ctx).Return(&domain.RadioState{StationTitle: "Artist - Song"}, nil)
	s.messenger.EXPECT().SendText(s.ctx, chatID, gomock.Any()).Return(errors.New("telegram down"))

	err := s.announcer.AnnounceStreamTitle(s.ctx, chatID)

	s.Error(err)
	s.Contains(err.Error(), "send title")
}

func (s *AnnouncerTestSuite) TestAnnounceStreamTitle_PublishFailureIsIgnored() {
	s.radio.EXPECT().Get(s.ctx).Return(&domain.RadioState{StationTitle: "Jingle"}, nil)
	s.messenger.EXPECT().SendText(s.ctx, chatID, gomock.Any()).Return(nil)
	s.radio.EXPECT().SetTitleSent(s.ctx, "Jingle").Return(nil)
	s.publisher.EXPECT().Publish(s.ctx, gomock.Any()).Return(errors.New("broker gone"))

	s.NoError(s.announcer.AnnounceStreamTitle(s.ctx, chatID))
}

func (s *AnnouncerTestSuite) TestAnnounceStreamTitle_NilPublisher() {
	announcer := NewAnnouncer(s.messenger, s.radio, s.wiki, s.tracks, nil, s.logger)

	s.radio.EXPECT().Get(s.ctx).Return(&domain.RadioState{StationTitle: "Jingle"}, nil)
	s.messenger.EXPECT().SendText(s.ctx, chatID, gomock.Any()).Return(nil)
	s.radio.EXPECT().SetTitleSent(s.ctx, "Jingle").Return(nil)

	s.NoError(announcer.AnnounceStreamTitle(s.ctx, chatID))
}

func (s *AnnouncerTestSuite) TestAnnounceProviderTrack_NewTrack() {
	track := &domain.Track{
		Artist: "Nina Simone",
		Title:  "Sinnerman",
		Album:  "Pastel Blues",
		Image:  "https://cdn.example/cover.jpg",
	}

	s.radio.EXPECT().Get(s.ctx).Return(&domain.RadioState{StationPlaying: "fip du jazz"}, nil)
	s.tracks.EXPECT().Current(s.ctx, "fip du jazz").Return(track, nil)

	gomock.InOrder(
		s.messenger.EXPECT().SendMarkdown(s.ctx, chatID, "▶️ Now playing Nina Simone – _Sinnerman_ \nfrom Pastel Blues").Return(nil),
		s.radio.EXPECT().SetTitleSent(s.ctx, "Nina Simone - Sinnerman (Pastel Blues)").Return(nil),
		s.publisher.EXPECT().Publish(s.ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e domain.Event) error {
			s.Equal(track, e.Track)
			return nil
		}),
		s.messenger.EXPECT().SendTyping(s.ctx, chatID).Return(nil),
		s.wiki.EXPECT().Search(s.ctx, "Nina Simone").Return([]string{"Nina Simone"}, nil),
		s.wiki.EXPECT().Page(s.ctx, "Nina Simone").Return(&wiki.Page{
			Title:   "Nina Simone",
			Summary: "American singer.",
			URL:     "https://en.wikipedia.org/wiki/Nina_Simone",
			Images:  []string{"https://upload.example/nina.jpg"},
		}, nil),
		s.messenger.EXPECT().SendMarkdown(s.ctx, chatID, "*Nina Simone*\nAmerican singer.\n\n[Wikipedia](https://en.wikipedia.org/wiki/Nina_Simone)").Return(nil),
		s.messenger.EXPECT().SendPhoto(s.ctx, chatID, "https://cdn.example/cover.jpg").Return(nil),
	)

	s.NoError(s.announcer.AnnounceProviderTrack(s.ctx, chatID))
}

func (s *AnnouncerTestSuite) TestAnnounceProviderTrack_SameTrack() {
	track := &domain.Track{Artist: "Nina Simone", Title: "Sinnerman", Album: "Pastel Blues"}

	s.radio.EXPECT().Get(s.ctx).Return(&domain.RadioState{
		StationPlaying:   "fip",
		StationTitleSent: track.String(),
	}, nil)
	s.tracks.EXPECT().Current(s.ctx, "fip").Return(track, nil)

	s.NoError(s.announcer.AnnounceProviderTrack(s.ctx, chatID))
}

func (s *AnnouncerTestSuite) TestAnnounceProviderTrack_ProviderError() {
	s.radio.EXPECT().Get(s.ctx).Return(&domain.RadioState{StationPlaying: "fip"}, nil)
	s.tracks.EXPECT().Current(s.ctx, "fip").Return(nil, errors.New("no livemeta data"))

	s.Error(s.announcer.AnnounceProviderTrack(s.ctx, chatID))
}

func (s *AnnouncerTestSuite) TestResearch_SkipsDisambiguation() {
	s.messenger.EXPECT().SendTyping(s.ctx, chatID).Return(nil)
	s.wiki.EXPECT().Search(s.ctx, "Mercury").Return([]string{"Mercury", "Freddie Mercury"}, nil)
	s.wiki.EXPECT().Page(s.ctx, "Mercury").Return(nil, wiki.ErrDisambiguation)
	s.wiki.EXPECT().Page(s.ctx, "Freddie Mercury").Return(&wiki.Page{
		Title:  "Freddie Mercury",
		URL:    "https://en.wikipedia.org/wiki/Freddie_Mercury",
		Images: []string{"https://upload.example/logo.svg", "https://upload.example/freddie.JPG"},
	}, nil)
	s.messenger.EXPECT().SendMarkdown(s.ctx, chatID, gomock.Any()).Return(nil)
	s.messenger.EXPECT().SendPhoto(s.ctx, chatID, "https://upload.example/freddie.JPG").Return(nil)

	s.announcer.Research(s.ctx, chatID, "Mercury", "")
}

func (s *AnnouncerTestSuite) TestResearch_AllDisambiguation() {
	s.messenger.EXPECT().SendTyping(s.ctx, chatID).Return(nil)
	s.wiki.EXPECT().Search(s.ctx, "Mercury").Return([]string{"Mercury"}, nil)
	s.wiki.EXPECT().Page(s.ctx, "Mercury").Return(nil, wiki.ErrDisambiguation)

	s.announcer.Research(s.ctx, chatID, "Mercury", "")
}

func (s *AnnouncerTestSuite) TestResearch_NoImage() {
	s.messenger.EXPECT().SendTyping(s.ctx, chatID).Return(nil)
	s.wiki.EXPECT().Search(s.ctx, "Burial").Return([]string{"Burial (musician)"}, nil)
	s.wiki.EXPECT().Page(s.ctx, "Burial (musician)").Return(&wiki.Page{Title: "Burial (musician)"}, nil)
	s.messenger.EXPECT().SendMarkdown(s.ctx, chatID, gomock.Any()).Return(nil)

	s.announcer.Research(s.ctx, chatID, "Burial", "")
}

func (s *AnnouncerTestSuite) TestResearch_ErrorsAreSwallowed() {
	s.messenger.EXPECT().SendTyping(s.ctx, chatID).Return(errors.New("rate limited"))
	s.wiki.EXPECT().Search(s.ctx, "Anyone").Return(nil, errors.New("circuit breaker is open"))

	s.announcer.Research(s.ctx, chatID, "Anyone", "")
}

func (s *AnnouncerTestSuite) TestEscape() {
	s.Equal(`snake\_case \*bold\*`, escape("snake_case *bold*"))
}

func (s *AnnouncerTestSuite) TestAnnounceStreamTitle_Sequence() {
	cases := []struct {
		name   string
		titles []string
		want   []string
	}{
		{
			name:   "repeats announced once",
			titles: []string{"Jingle A", "Jingle A", "Jingle A", "Jingle B", "Jingle B"},
			want:   []string{"▶️ Now playing Jingle A", "▶️ Now playing Jingle B"},
		},
		{
			name:   "title returning after a gap",
			titles: []string{"Jingle A", "", "Jingle A"},
			want:   []string{"▶️ Now playing Jingle A", "▶️ Now playing Jingle A"},
		},
		{
			name:   "silence sends nothing",
			titles: []string{"", "", ""},
		},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			ctrl := gomock.NewController(s.T())
			messenger := mocks.NewMockMessenger(ctrl)
			radio := mocks.NewMockRadioStore(ctrl)
			announcer := NewAnnouncer(messenger, radio, s.wiki, s.tracks, nil, s.logger)

			var current, sent string
			var got []string
			radio.EXPECT().Get(s.ctx).DoAndReturn(func(context.Context) (*domain.RadioState, error) {
				return &domain.RadioState{StationTitle: current, StationTitleSent: sent}, nil
			}).Times(len(tc.titles))
			radio.EXPECT().SetTitleSent(s.ctx, gomock.Any()).DoAndReturn(func(_ context.Context, title string) error {
				sent = title
				return nil
			}).AnyTimes()
			messenger.EXPECT().SendText(s.ctx, chatID, gomock.Any()).DoAndReturn(func(_ context.Context, _ int64, text string) error {
				got = append(got, text)
				return nil
			}).AnyTimes()

			for _, title := range tc.titles {
				current = title
				s.Require().NoError(announcer.AnnounceStreamTitle(s.ctx, chatID))
			}

			s.Equal(tc.want, got)
		})
	}
}
