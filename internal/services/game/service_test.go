package game_test

import (
	"context"
	"errors"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/strike/internal/common/clock/mocks"
	"github.com/KirkDiggler/strike/internal/common/scheduler"
	schedulerMocks "github.com/KirkDiggler/strike/internal/common/scheduler/mocks"
	diceMocks "github.com/KirkDiggler/strike/internal/dice/mocks"
	"github.com/KirkDiggler/strike/internal/models"
	snapshotRepo "github.com/KirkDiggler/strike/internal/repositories/snapshot"
	snapshotMocks "github.com/KirkDiggler/strike/internal/repositories/snapshot/mocks"
	"github.com/KirkDiggler/strike/internal/services/game"
	gameMocks "github.com/KirkDiggler/strike/internal/services/game/mocks"
	"github.com/KirkDiggler/strike/internal/services/round"
	roundMocks "github.com/KirkDiggler/strike/internal/services/round/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type GameServiceTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockRound        *roundMocks.MockService
	mockDiceRoller   *diceMocks.MockRoller
	mockClock        *clockMocks.MockClock
	mockScheduler    *schedulerMocks.MockScheduler
	mockTimer        *schedulerMocks.MockTimer
	mockSnapshotRepo *snapshotMocks.MockRepository
	mockAnnouncer    *gameMocks.MockAnnouncer
	gameService      game.Service
	ctx              context.Context

	// Captured by the round service mock
	closeHandler round.CloseHandler

	// Test data
	testTime     time.Time
	testRoundID  string
	testPlayerID string
	testSnapshot *models.Snapshot
	testArchive  *models.ArchivedRound
}

func (s *GameServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRound = roundMocks.NewMockService(s.mockCtrl)
	s.mockDiceRoller = diceMocks.NewMockRoller(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockScheduler = schedulerMocks.NewMockScheduler(s.mockCtrl)
	s.mockTimer = schedulerMocks.NewMockTimer(s.mockCtrl)
	s.mockSnapshotRepo = snapshotMocks.NewMockRepository(s.mockCtrl)
	s.mockAnnouncer = gameMocks.NewMockAnnouncer(s.mockCtrl)

	s.ctx = context.Background()

	// Initialize test data
	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.testRoundID = "test-round-id"
	s.testPlayerID = "test-player-id"
	s.testSnapshot = &models.Snapshot{Version: models.SnapshotVersion, TakenAt: s.testTime}
	s.testArchive = &models.ArchivedRound{
		ID:       s.testRoundID,
		OpenedAt: s.testTime.Add(-time.Minute),
		ClosedAt: s.testTime,
		Reason:   models.CloseReasonManual,
		Entries: []*models.RankedEntry{
			{Rank: 1, Participant: &models.Participant{ID: "C", Name: "Carol", Score: 40, Seq: 3}},
			{Rank: 2, Participant: &models.Participant{ID: "A", Name: "Alice", Score: 12, Seq: 1}},
			{Rank: 3, Participant: &models.Participant{ID: "B", Name: "Bob", Score: 4, Seq: 2}},
		},
	}

	// Set up the clock mock to return our test time
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	s.mockRound.EXPECT().OnClose(gomock.Any()).Do(func(handler round.CloseHandler) {
		s.closeHandler = handler
	})

	gameService, err := game.New(&game.Config{
		Location:     time.UTC,
		SnapshotRepo: s.mockSnapshotRepo,
		RoundService: s.mockRound,
		DiceRoller:   s.mockDiceRoller,
		Clock:        s.mockClock,
		Scheduler:    s.mockScheduler,
	})
	s.Require().NoError(err)
	s.gameService = gameService
	s.Require().NotNil(s.closeHandler)
}

func (s *GameServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGameServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GameServiceTestSuite))
}

func (s *GameServiceTestSuite) expectSnapshotSaved(err error) {
	s.mockRound.EXPECT().
		Snapshot(gomock.Any(), &round.SnapshotInput{}).
		Return(&round.SnapshotOutput{Snapshot: s.testSnapshot}, nil)
	s.mockSnapshotRepo.EXPECT().
		SaveSnapshot(gomock.Any(), &snapshotRepo.SaveSnapshotInput{Snapshot: s.testSnapshot}).
		Return(err)
}

func (s *GameServiceTestSuite) TestNewValidatesConfig() {
	valid := func() *game.Config {
		return &game.Config{
			SnapshotRepo: s.mockSnapshotRepo,
			RoundService: s.mockRound,
			DiceRoller:   s.mockDiceRoller,
			Clock:        s.mockClock,
			Scheduler:    s.mockScheduler,
		}
	}

	testCases := []struct {
		name   string
		mutate func(cfg *game.Config)
		err    error
	}{
		{name: "nil round service", mutate: func(cfg *game.Config) { cfg.RoundService = nil }, err: game.ErrNilRoundService},
		{name: "nil dice roller", mutate: func(cfg *game.Config) { cfg.DiceRoller = nil }, err: game.ErrNilDiceRoller},
		{name: "nil clock", mutate: func(cfg *game.Config) { cfg.Clock = nil }, err: game.ErrNilClock},
		{name: "nil scheduler", mutate: func(cfg *game.Config) { cfg.Scheduler = nil }, err: game.ErrNilScheduler},
		{name: "nil snapshot repo", mutate: func(cfg *game.Config) { cfg.SnapshotRepo = nil }, err: game.ErrNilSnapshotRepo},
		{name: "negative prize count", mutate: func(cfg *game.Config) { cfg.PrizeCount = -1 }, err: game.ErrInvalidPrizeCount},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			cfg := valid()
			tc.mutate(cfg)
			_, err := game.New(cfg)
			s.ErrorIs(err, tc.err)
		})
	}

	_, err := game.New(nil)
	s.ErrorIs(err, game.ErrNilConfig)
}

func (s *GameServiceTestSuite) TestRollRecordsProductOfThrows() {
	s.mockRound.EXPECT().
		CanSubmit(s.ctx, &round.CanSubmitInput{ParticipantID: s.testPlayerID}).
		Return(&round.CanSubmitOutput{Allowed: true}, nil)

	gomock.InOrder(
		s.mockDiceRoller.EXPECT().Roll(6).Return(2),
		s.mockDiceRoller.EXPECT().Roll(6).Return(3),
		s.mockDiceRoller.EXPECT().Roll(6).Return(4),
	)

	s.mockRound.EXPECT().
		Submit(s.ctx, &round.SubmitInput{ParticipantID: s.testPlayerID, DisplayName: "Alice", Score: 24}).
		Return(&round.SubmitOutput{
			RoundID:     s.testRoundID,
			Rank:        2,
			Participant: &models.Participant{ID: s.testPlayerID, Name: "Alice", Score: 24, SubmittedAt: s.testTime},
		}, nil)

	s.mockRound.EXPECT().
		TimeLeft(s.ctx, &round.TimeLeftInput{}).
		Return(&round.TimeLeftOutput{Open: true, RoundID: s.testRoundID, Remaining: 30 * time.Second}, nil)

	output, err := s.gameService.Roll(s.ctx, &game.RollInput{PlayerID: s.testPlayerID, PlayerName: "Alice"})
	s.Require().NoError(err)
	s.Equal([]int{2, 3, 4}, output.Throws)
	s.Equal(24, output.Score)
	s.Equal(2, output.Rank)
	s.Equal(s.testRoundID, output.RoundID)
	s.Equal(30*time.Second, output.TimeLeft)
	s.Equal(s.testTime, output.Timestamp)
}

func (s *GameServiceTestSuite) TestRollRejectedBeforeThrowing() {
	testCases := []struct {
		reason round.RejectReason
		err    error
	}{
		{reason: round.RejectReasonRoundClosed, err: game.ErrRoundNotActive},
		{reason: round.RejectReasonDeadlinePassed, err: game.ErrRoundOver},
		{reason: round.RejectReasonAlreadyParticipated, err: game.ErrAlreadyParticipated},
	}

	for _, tc := range testCases {
		s.Run(string(tc.reason), func() {
			s.mockRound.EXPECT().
				CanSubmit(s.ctx, gomock.Any()).
				Return(&round.CanSubmitOutput{Reason: tc.reason}, nil)

			_, err := s.gameService.Roll(s.ctx, &game.RollInput{PlayerID: s.testPlayerID})
			s.ErrorIs(err, tc.err)
		})
	}
}

func (s *GameServiceTestSuite) TestRollLosesRaceWithClose() {
	s.mockRound.EXPECT().CanSubmit(s.ctx, gomock.Any()).Return(&round.CanSubmitOutput{Allowed: true}, nil)
	s.mockDiceRoller.EXPECT().Roll(6).Return(1).Times(3)
	s.mockRound.EXPECT().Submit(s.ctx, gomock.Any()).Return(nil, round.ErrRoundNotOpen)

	_, err := s.gameService.Roll(s.ctx, &game.RollInput{PlayerID: s.testPlayerID})
	s.ErrorIs(err, game.ErrRoundOver)
}

func (s *GameServiceTestSuite) TestRollLosesRaceWithOwnDuplicate() {
	s.mockRound.EXPECT().CanSubmit(s.ctx, gomock.Any()).Return(&round.CanSubmitOutput{Allowed: true}, nil)
	s.mockDiceRoller.EXPECT().Roll(6).Return(5).Times(3)
	s.mockRound.EXPECT().Submit(s.ctx, gomock.Any()).Return(nil, round.ErrAlreadyParticipated)

	_, err := s.gameService.Roll(s.ctx, &game.RollInput{PlayerID: s.testPlayerID})
	s.ErrorIs(err, game.ErrAlreadyParticipated)
}

func (s *GameServiceTestSuite) TestRollRequiresPlayer() {
	_, err := s.gameService.Roll(s.ctx, &game.RollInput{})
	s.ErrorIs(err, game.ErrInvalidInput)
}

func (s *GameServiceTestSuite) TestStartRound() {
	s.gameService.RegisterAnnouncer(s.mockAnnouncer)
	deadline := s.testTime.Add(10 * time.Second)

	s.mockRound.EXPECT().
		OpenFor(s.ctx, &round.OpenForInput{Duration: 10 * time.Second}).
		Return(&round.OpenRoundOutput{RoundID: s.testRoundID, OpenedAt: s.testTime, Deadline: &deadline}, nil)

	s.mockAnnouncer.EXPECT().
		AnnounceRoundOpened(s.ctx, &game.RoundOpening{RoundID: s.testRoundID, OpenedAt: s.testTime, Deadline: deadline}).
		Return(nil)

	output, err := s.gameService.StartRound(s.ctx, &game.StartRoundInput{Duration: 10 * time.Second})
	s.Require().NoError(err)
	s.Equal(s.testRoundID, output.RoundID)
	s.Equal(deadline, output.Deadline)
}

func (s *GameServiceTestSuite) TestStartRoundErrors() {
	_, err := s.gameService.StartRound(s.ctx, &game.StartRoundInput{})
	s.ErrorIs(err, game.ErrInvalidDuration)

	s.mockRound.EXPECT().OpenFor(s.ctx, gomock.Any()).Return(nil, round.ErrAlreadyOpen)
	_, err = s.gameService.StartRound(s.ctx, &game.StartRoundInput{Duration: time.Minute})
	s.ErrorIs(err, game.ErrRoundAlreadyActive)
}

func (s *GameServiceTestSuite) TestScheduleRoundOpensAtStart() {
	s.gameService.RegisterAnnouncer(s.mockAnnouncer)
	start := time.Date(2025, 4, 19, 13, 0, 0, 0, time.UTC)
	stop := time.Date(2025, 4, 19, 14, 0, 0, 0, time.UTC)

	var fire func()
	s.mockScheduler.EXPECT().
		AfterFunc(time.Hour, gomock.Any()).
		DoAndReturn(func(_ time.Duration, f func()) scheduler.Timer {
			fire = f
			return s.mockTimer
		})

	output, err := s.gameService.ScheduleRound(s.ctx, &game.ScheduleRoundInput{Window: "13:00-14:00"})
	s.Require().NoError(err)
	s.Equal(start, output.Start)
	s.Equal(stop, output.Stop)
	s.False(output.OpenedNow)
	s.False(output.Replaced)
	s.Require().NotNil(fire)

	s.mockRound.EXPECT().
		OpenUntil(gomock.Any(), &round.OpenUntilInput{Deadline: stop}).
		Return(&round.OpenRoundOutput{RoundID: s.testRoundID, OpenedAt: start, Deadline: &stop}, nil)
	s.mockAnnouncer.EXPECT().
		AnnounceRoundOpened(gomock.Any(), &game.RoundOpening{RoundID: s.testRoundID, OpenedAt: start, Deadline: stop, Scheduled: true}).
		Return(nil)

	fire()

	// The window is consumed
	cancelled, err := s.gameService.CancelSchedule(s.ctx, &game.CancelScheduleInput{})
	s.Require().NoError(err)
	s.False(cancelled.Cancelled)
}

func (s *GameServiceTestSuite) TestScheduleRoundReplacesPendingWindow() {
	var fired []func()
	s.mockScheduler.EXPECT().
		AfterFunc(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ time.Duration, f func()) scheduler.Timer {
			fired = append(fired, f)
			return s.mockTimer
		}).
		Times(2)
	s.mockTimer.EXPECT().Stop().Return(true)

	_, err := s.gameService.ScheduleRound(s.ctx, &game.ScheduleRoundInput{Window: "13:00-14:00"})
	s.Require().NoError(err)

	output, err := s.gameService.ScheduleRound(s.ctx, &game.ScheduleRoundInput{Window: "15:00-16:00"})
	s.Require().NoError(err)
	s.True(output.Replaced)

	// The replaced timer fired anyway and must not open anything
	fired[0]()

	stop := time.Date(2025, 4, 19, 16, 0, 0, 0, time.UTC)
	s.mockRound.EXPECT().
		OpenUntil(gomock.Any(), &round.OpenUntilInput{Deadline: stop}).
		Return(&round.OpenRoundOutput{RoundID: s.testRoundID, Deadline: &stop}, nil)
	fired[1]()
}

func (s *GameServiceTestSuite) TestScheduleRoundStartAlreadyPassed() {
	stop := time.Date(2025, 4, 19, 12, 30, 0, 0, time.UTC)
	s.mockRound.EXPECT().
		OpenUntil(s.ctx, &round.OpenUntilInput{Deadline: stop}).
		Return(&round.OpenRoundOutput{RoundID: s.testRoundID, OpenedAt: s.testTime, Deadline: &stop}, nil)

	output, err := s.gameService.ScheduleRound(s.ctx, &game.ScheduleRoundInput{Window: "11:30-12:30"})
	s.Require().NoError(err)
	s.True(output.OpenedNow)
	s.Equal(s.testRoundID, output.RoundID)
}

func (s *GameServiceTestSuite) TestScheduleRoundErrors() {
	testCases := []struct {
		window string
		err    error
	}{
		{window: "whenever", err: game.ErrInvalidWindow},
		{window: "14:00-13:00", err: game.ErrInvalidWindow},
		{window: "10:00-11:00", err: game.ErrWindowPassed},
		{window: "11:00-12:00", err: game.ErrWindowPassed},
	}

	for _, tc := range testCases {
		s.Run(tc.window, func() {
			_, err := s.gameService.ScheduleRound(s.ctx, &game.ScheduleRoundInput{Window: tc.window})
			s.ErrorIs(err, tc.err)
		})
	}
}

func (s *GameServiceTestSuite) TestScheduleRoundWhileOpen() {
	s.mockRound.EXPECT().OpenUntil(s.ctx, gomock.Any()).Return(nil, round.ErrAlreadyOpen)

	_, err := s.gameService.ScheduleRound(s.ctx, &game.ScheduleRoundInput{Window: "11:00-13:00"})
	s.ErrorIs(err, game.ErrRoundAlreadyActive)
}

func (s *GameServiceTestSuite) TestCancelSchedule() {
	s.mockScheduler.EXPECT().AfterFunc(gomock.Any(), gomock.Any()).Return(s.mockTimer)
	s.mockTimer.EXPECT().Stop().Return(true)

	_, err := s.gameService.ScheduleRound(s.ctx, &game.ScheduleRoundInput{Window: "18:00-19:00"})
	s.Require().NoError(err)

	output, err := s.gameService.CancelSchedule(s.ctx, &game.CancelScheduleInput{})
	s.Require().NoError(err)
	s.True(output.Cancelled)

	output, err = s.gameService.CancelSchedule(s.ctx, &game.CancelScheduleInput{})
	s.Require().NoError(err)
	s.False(output.Cancelled)
}

func (s *GameServiceTestSuite) TestCloseRoundAnnouncesResults() {
	s.gameService.RegisterAnnouncer(s.mockAnnouncer)

	s.mockRound.EXPECT().
		Close(s.ctx, &round.CloseInput{}).
		DoAndReturn(func(_ context.Context, _ *round.CloseInput) (*round.CloseOutput, error) {
			s.closeHandler(s.testArchive)
			return &round.CloseOutput{Archive: s.testArchive}, nil
		})

	s.mockRound.EXPECT().
		TopPrizeWinners(gomock.Any(), &round.TopPrizeWinnersInput{N: game.DefaultPrizeCount}).
		Return(&round.TopPrizeWinnersOutput{RoundID: s.testRoundID, Winners: s.testArchive.Top(5)}, nil)
	s.expectSnapshotSaved(nil)

	var announced *game.RoundResults
	s.mockAnnouncer.EXPECT().
		AnnounceRoundResults(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, results *game.RoundResults) error {
			announced = results
			return nil
		})

	output, err := s.gameService.CloseRound(s.ctx, &game.CloseRoundInput{})
	s.Require().NoError(err)
	s.False(output.AlreadyClosed)
	s.Equal(s.testRoundID, output.Round.ID)

	s.Require().NotNil(announced)
	s.Equal(s.testArchive, announced.Round)
	s.Equal(game.DefaultPrizeCount, announced.PrizeCount)
	s.Len(announced.Participants, 3)
	s.Require().Len(announced.Winners, 3)
	s.Equal("C", announced.Winners[0].ID)
}

func (s *GameServiceTestSuite) TestRoundClosedUsesPrizeCount() {
	s.gameService.RegisterAnnouncer(s.mockAnnouncer)

	_, err := s.gameService.SetPrizeCount(s.ctx, &game.SetPrizeCountInput{Count: 2})
	s.Require().NoError(err)

	s.mockRound.EXPECT().
		TopPrizeWinners(gomock.Any(), &round.TopPrizeWinnersInput{N: 2}).
		Return(&round.TopPrizeWinnersOutput{RoundID: s.testRoundID, Winners: s.testArchive.Top(2)}, nil)
	s.expectSnapshotSaved(nil)
	s.mockAnnouncer.EXPECT().
		AnnounceRoundResults(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, results *game.RoundResults) error {
			s.Equal(2, results.PrizeCount)
			s.Require().Len(results.Winners, 2)
			s.Equal("C", results.Winners[0].ID)
			s.Equal("A", results.Winners[1].ID)
			return nil
		})

	s.closeHandler(s.testArchive)
}

func (s *GameServiceTestSuite) TestRoundClosedFallsBackToArchiveWinners() {
	s.gameService.RegisterAnnouncer(s.mockAnnouncer)

	// A newer round was archived before the handler asked for winners
	s.mockRound.EXPECT().
		TopPrizeWinners(gomock.Any(), gomock.Any()).
		Return(&round.TopPrizeWinnersOutput{RoundID: "newer-round"}, nil)
	s.expectSnapshotSaved(nil)
	s.mockAnnouncer.EXPECT().
		AnnounceRoundResults(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, results *game.RoundResults) error {
			s.Len(results.Winners, 3)
			return nil
		})

	s.closeHandler(s.testArchive)
}

func (s *GameServiceTestSuite) TestRoundClosedSaveFailureStillAnnounces() {
	s.gameService.RegisterAnnouncer(s.mockAnnouncer)

	s.mockRound.EXPECT().
		TopPrizeWinners(gomock.Any(), gomock.Any()).
		Return(&round.TopPrizeWinnersOutput{RoundID: s.testRoundID}, nil)
	s.expectSnapshotSaved(&snapshotRepo.PersistenceError{Op: "save", Err: errors.New("connection refused")})
	s.mockAnnouncer.EXPECT().AnnounceRoundResults(gomock.Any(), gomock.Any()).Return(nil)

	s.closeHandler(s.testArchive)
}

func (s *GameServiceTestSuite) TestRoundClosedWithoutAnnouncer() {
	s.mockRound.EXPECT().
		TopPrizeWinners(gomock.Any(), gomock.Any()).
		Return(&round.TopPrizeWinnersOutput{RoundID: s.testRoundID}, nil)
	s.expectSnapshotSaved(nil)

	s.closeHandler(s.testArchive)
}

func (s *GameServiceTestSuite) TestCloseRoundWhenClosed() {
	s.mockRound.EXPECT().
		Close(s.ctx, &round.CloseInput{}).
		Return(&round.CloseOutput{AlreadyClosed: true}, nil)

	output, err := s.gameService.CloseRound(s.ctx, &game.CloseRoundInput{})
	s.Require().NoError(err)
	s.True(output.AlreadyClosed)
	s.Nil(output.Round)
}

func (s *GameServiceTestSuite) TestPrizeCount() {
	output, err := s.gameService.GetPrizeCount(s.ctx, &game.GetPrizeCountInput{})
	s.Require().NoError(err)
	s.Equal(game.DefaultPrizeCount, output.Count)

	_, err = s.gameService.SetPrizeCount(s.ctx, &game.SetPrizeCountInput{Count: -3})
	s.ErrorIs(err, game.ErrInvalidPrizeCount)

	set, err := s.gameService.SetPrizeCount(s.ctx, &game.SetPrizeCountInput{Count: 0})
	s.Require().NoError(err)
	s.Equal(0, set.Count)

	output, err = s.gameService.GetPrizeCount(s.ctx, &game.GetPrizeCountInput{})
	s.Require().NoError(err)
	s.Equal(0, output.Count)
}

func (s *GameServiceTestSuite) TestGetRoundLeaders() {
	entries := s.testArchive.Entries
	s.mockRound.EXPECT().
		CurrentStats(s.ctx, &round.CurrentStatsInput{ParticipantID: "A"}).
		Return(&round.CurrentStatsOutput{RoundID: s.testRoundID, Entries: entries, Own: entries[1]}, nil)
	s.mockRound.EXPECT().
		TimeLeft(s.ctx, &round.TimeLeftInput{}).
		Return(&round.TimeLeftOutput{Open: true, Remaining: time.Minute}, nil)

	output, err := s.gameService.GetRoundLeaders(s.ctx, &game.GetRoundLeadersInput{PlayerID: "A"})
	s.Require().NoError(err)
	s.True(output.Active)
	s.Equal(entries, output.Entries)
	s.Equal(2, output.Own.Rank)
	s.Equal(time.Minute, output.TimeLeft)
}

func (s *GameServiceTestSuite) TestGetDailyLeaders() {
	standings := []*models.RankedStanding{
		{Rank: 1, Standing: &models.Standing{PlayerID: "C", BestScore: 40}},
	}
	s.mockRound.EXPECT().
		CumulativeStats(s.ctx, &round.CumulativeStatsInput{ParticipantID: "C"}).
		Return(&round.CumulativeStatsOutput{Standings: standings, Own: standings[0]}, nil)
	s.mockRound.EXPECT().
		TimeLeft(s.ctx, &round.TimeLeftInput{}).
		Return(&round.TimeLeftOutput{Remaining: round.NoRoundOpen}, nil)

	output, err := s.gameService.GetDailyLeaders(s.ctx, &game.GetDailyLeadersInput{PlayerID: "C"})
	s.Require().NoError(err)
	s.Equal(standings, output.Standings)
	s.Equal(standings[0], output.Own)
	s.Equal(round.NoRoundOpen, output.TimeLeft)
}

func (s *GameServiceTestSuite) TestRestore() {
	s.mockSnapshotRepo.EXPECT().
		LoadSnapshot(s.ctx, &snapshotRepo.LoadSnapshotInput{}).
		Return(s.testSnapshot, nil)
	s.mockRound.EXPECT().
		Restore(s.ctx, &round.RestoreInput{Snapshot: s.testSnapshot}).
		Return(&round.RestoreOutput{Rounds: 4, Standings: 9}, nil)

	output, err := s.gameService.Restore(s.ctx, &game.RestoreInput{})
	s.Require().NoError(err)
	s.True(output.Found)
	s.Equal(4, output.Rounds)
	s.Equal(9, output.Standings)
}

func (s *GameServiceTestSuite) TestRestoreWithoutSnapshot() {
	s.mockSnapshotRepo.EXPECT().
		LoadSnapshot(s.ctx, gomock.Any()).
		Return(nil, snapshotRepo.ErrSnapshotNotFound)

	output, err := s.gameService.Restore(s.ctx, &game.RestoreInput{})
	s.Require().NoError(err)
	s.False(output.Found)
}

func (s *GameServiceTestSuite) TestRestoreLoadFailure() {
	s.mockSnapshotRepo.EXPECT().
		LoadSnapshot(s.ctx, gomock.Any()).
		Return(nil, &snapshotRepo.PersistenceError{Op: "load", Err: errors.New("boom")})

	_, err := s.gameService.Restore(s.ctx, &game.RestoreInput{})
	var persistenceErr *snapshotRepo.PersistenceError
	s.True(errors.As(err, &persistenceErr))
}

func (s *GameServiceTestSuite) TestRunSavesOnShutdown() {
	s.expectSnapshotSaved(nil)

	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	s.NoError(s.gameService.Run(ctx))
}

func TestRunSavesPeriodically(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRound := roundMocks.NewMockService(ctrl)
	mockRepo := snapshotMocks.NewMockRepository(ctrl)

	mockRound.EXPECT().OnClose(gomock.Any())
	mockRound.EXPECT().
		Snapshot(gomock.Any(), gomock.Any()).
		Return(&round.SnapshotOutput{Snapshot: &models.Snapshot{Version: models.SnapshotVersion}}, nil).
		MinTimes(3)

	saved := make(chan struct{}, 16)
	mockRepo.EXPECT().
		SaveSnapshot(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *snapshotRepo.SaveSnapshotInput) error {
			select {
			case saved <- struct{}{}:
			default:
			}
			return nil
		}).
		MinTimes(3)

	gameService, err := game.New(&game.Config{
		SnapshotInterval: 5 * time.Millisecond,
		SnapshotRepo:     mockRepo,
		RoundService:     mockRound,
		DiceRoller:       diceMocks.NewMockRoller(ctrl),
		Clock:            clockMocks.NewMockClock(ctrl),
		Scheduler:        schedulerMocks.NewMockScheduler(ctrl),
	})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- gameService.Run(ctx)
	}()

	for i := 0; i < 2; i++ {
		select {
		case <-saved:
		case <-time.After(2 * time.Second):
			t.Fatal("no periodic snapshot")
		}
	}
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("run did not stop")
	}
}
