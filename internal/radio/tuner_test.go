package radio

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/thejerf/suture/v4"
	"go.uber.org/mock/gomock"

	"displaybot/internal/domain"
	"displaybot/internal/player"
	"displaybot/internal/player/playertest"
	"displaybot/internal/radio/mocks"
)

const (
	fipURL   = "http://direct.fipradio.fr/live/fip-midfi.mp3"
	droneURL = "http://ice1.somafm.com/dronezone-128-aac"
)

type TunerTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	ctx  context.Context

	radio    *mocks.MockRadioStore
	stations *mocks.MockStationStore
	launcher *mocks.MockLauncher

	tuner  *Tuner
	logger *slog.Logger
}

func (s *TunerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ctx = context.Background()

	s.radio = mocks.NewMockRadioStore(s.ctrl)
	s.stations = mocks.NewMockStationStore(s.ctrl)
	s.launcher = mocks.NewMockLauncher(s.ctrl)

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.tuner = NewTuner(s.radio, s.stations, s.launcher, 5*time.Millisecond, s.logger)

	s.stations.EXPECT().Get(gomock.Any(), "fip").Return(&domain.Station{Name: "fip", URL: fipURL}, nil).AnyTimes()
	s.stations.EXPECT().Get(gomock.Any(), "dronezone").Return(&domain.Station{Name: "dronezone", URL: droneURL}, nil).AnyTimes()
	s.stations.EXPECT().Get(gomock.Any(), "nowhere").Return(nil, domain.ErrNotFound).AnyTimes()
}

func (s *TunerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestTunerTestSuite(t *testing.T) {
	suite.Run(t, new(TunerTestSuite))
}

func (s *TunerTestSuite) expectState(station, title string) {
	s.radio.EXPECT().Get(gomock.Any()).Return(&domain.RadioState{StationPlaying: station, StationTitle: title}, nil)
}

func (s *TunerTestSuite) TestPoll_StartsOnceForSameStation() {
	handle := playertest.NewHandle()

	s.expectState("fip", "")
	s.expectState("fip", "")
	s.expectState("fip", "Artist - Song")
	s.launcher.EXPECT().Launch(gomock.Any(), fipURL, gomock.Any()).Return(handle, nil).Times(1)

	s.tuner.Poll(s.ctx)
	s.tuner.Poll(s.ctx)
	s.tuner.Poll(s.ctx)

	s.True(s.tuner.streaming())
	s.Equal(fipURL, s.tuner.tunedURL())
	s.Zero(handle.Stops())
	s.Equal("Artist - Song", s.tuner.currentTitle)
}

func (s *TunerTestSuite) TestPoll_StationChangeStopsThenStarts() {
	first := playertest.NewHandle()
	second := playertest.NewHandle()

	s.expectState("fip", "")
	s.expectState("dronezone", "")
	gomock.InOrder(
		s.launcher.EXPECT().Launch(gomock.Any(), fipURL, gomock.Any()).Return(first, nil),
		s.launcher.EXPECT().Launch(gomock.Any(), droneURL, gomock.Any()).Return(second, nil),
	)

	s.tuner.Poll(s.ctx)
	s.tuner.Poll(s.ctx)

	s.Equal(1, first.Stops())
	s.Zero(second.Stops())
	s.Equal(droneURL, s.tuner.tunedURL())
}

func (s *TunerTestSuite) TestPoll_ClearedStationStops() {
	handle := playertest.NewHandle()

	s.expectState("fip", "")
	s.expectState("", "")
	s.launcher.EXPECT().Launch(gomock.Any(), fipURL, gomock.Any()).Return(handle, nil)

	s.tuner.Poll(s.ctx)
	s.tuner.Poll(s.ctx)

	s.Equal(1, handle.Stops())
	s.False(s.tuner.streaming())
	s.Empty(s.tuner.tunedURL())
}

func (s *TunerTestSuite) TestPoll_UnknownStationStaysSilent() {
	s.expectState("nowhere", "")

	s.tuner.Poll(s.ctx)

	s.False(s.tuner.streaming())
}

func (s *TunerTestSuite) TestPoll_StoreErrorIsNotFatal() {
	s.radio.EXPECT().Get(gomock.Any()).Return(nil, errors.New("db locked"))

	s.tuner.Poll(s.ctx)

	s.False(s.tuner.streaming())
}

func (s *TunerTestSuite) TestOnLine_StoresStreamTitle() {
	var onLine player.LineHandler

	s.expectState("fip", "")
	s.launcher.EXPECT().Launch(gomock.Any(), fipURL, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, fn player.LineHandler) (player.Handle, error) {
			onLine = fn
			return playertest.NewHandle(), nil
		},
	)
	s.radio.EXPECT().SetTitle(gomock.Any(), "Bonobo - Kerala").Return(nil)

	s.tuner.Poll(s.ctx)
	s.Require().NotNil(onLine)

	onLine("Cache fill:  5.00% (13107 bytes)")
	onLine("ICY Info: StreamTitle='Bonobo - Kerala';StreamUrl='';")
	onLine("ICY Info: StreamTitle='';")
}

func (s *TunerTestSuite) TestServe_StopTearsDown() {
	handle := playertest.NewHandle()

	s.radio.EXPECT().ResetTitles(gomock.Any()).Return(nil).Times(2)
	s.radio.EXPECT().Get(gomock.Any()).Return(&domain.RadioState{StationPlaying: "fip"}, nil).AnyTimes()
	s.launcher.EXPECT().Launch(gomock.Any(), fipURL, gomock.Any()).Return(handle, nil)

	errCh := make(chan error, 1)
	go func() { errCh <- s.tuner.Serve(s.ctx) }()

	s.Eventually(s.tuner.streaming, time.Second, time.Millisecond)
	s.tuner.Stop()

	select {
	case err := <-errCh:
		s.ErrorIs(err, suture.ErrDoNotRestart)
	case <-time.After(5 * time.Second):
		s.FailNow("tuner did not stop")
	}

	s.Equal(1, handle.Stops())
	s.False(s.tuner.streaming())
	s.Equal("radio", s.tuner.String())
}
