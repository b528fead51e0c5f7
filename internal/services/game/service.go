package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/KirkDiggler/strike/internal/common/clock"
	"github.com/KirkDiggler/strike/internal/common/scheduler"
	"github.com/KirkDiggler/strike/internal/dice"
	"github.com/KirkDiggler/strike/internal/models"
	snapshotRepo "github.com/KirkDiggler/strike/internal/repositories/snapshot"
	"github.com/KirkDiggler/strike/internal/services/round"
)

// service implements the Service interface
type service struct {
	roundService     round.Service
	snapshotRepo     snapshotRepo.Repository
	diceRoller       dice.Roller
	clock            clock.Clock
	scheduler        scheduler.Scheduler
	location         *time.Location
	throwsPerRoll    int
	pinSides         int
	snapshotInterval time.Duration

	mu         sync.Mutex
	prizeCount int
	announcer  Announcer

	// pending is the timer of a scheduled window that has not opened yet.
	// pendingSeq invalidates a timer that fires after being replaced.
	pending    scheduler.Timer
	pendingSeq int
}

// New creates a new game service and subscribes it to round closes
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.RoundService == nil {
		return nil, ErrNilRoundService
	}

	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.Scheduler == nil {
		return nil, ErrNilScheduler
	}

	if cfg.SnapshotRepo == nil {
		return nil, ErrNilSnapshotRepo
	}

	if cfg.PrizeCount < 0 {
		return nil, ErrInvalidPrizeCount
	}

	s := &service{
		roundService:     cfg.RoundService,
		snapshotRepo:     cfg.SnapshotRepo,
		diceRoller:       cfg.DiceRoller,
		clock:            cfg.Clock,
		scheduler:        cfg.Scheduler,
		location:         cfg.Location,
		throwsPerRoll:    cfg.ThrowsPerRoll,
		pinSides:         cfg.PinSides,
		snapshotInterval: cfg.SnapshotInterval,
		prizeCount:       cfg.PrizeCount,
	}

	// Set default values if not provided
	if s.prizeCount == 0 {
		s.prizeCount = DefaultPrizeCount
	}
	if s.throwsPerRoll <= 0 {
		s.throwsPerRoll = DefaultThrowsPerRoll
	}
	if s.pinSides <= 0 {
		s.pinSides = DefaultPinSides
	}
	if s.location == nil {
		s.location = time.Local
	}

	s.roundService.OnClose(s.handleRoundClosed)

	return s, nil
}

// Roll throws the pins for a player and records the product as their score
func (s *service) Roll(ctx context.Context, input *RollInput) (*RollOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, ErrInvalidInput
	}

	// Check before rolling the dice
	can, err := s.roundService.CanSubmit(ctx, &round.CanSubmitInput{
		ParticipantID: input.PlayerID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to check round: %w", err)
	}

	switch can.Reason {
	case round.RejectReasonRoundClosed:
		return nil, ErrRoundNotActive
	case round.RejectReasonDeadlinePassed:
		return nil, ErrRoundOver
	case round.RejectReasonAlreadyParticipated:
		return nil, ErrAlreadyParticipated
	}

	throws := make([]int, s.throwsPerRoll)
	score := 1
	for i := range throws {
		throws[i] = s.diceRoller.Roll(s.pinSides)
		score *= throws[i]
	}

	submitted, err := s.roundService.Submit(ctx, &round.SubmitInput{
		ParticipantID: input.PlayerID,
		DisplayName:   input.PlayerName,
		Score:         score,
	})
	if err != nil {
		switch {
		case errors.Is(err, round.ErrAlreadyParticipated):
			return nil, ErrAlreadyParticipated
		case errors.Is(err, round.ErrRoundNotOpen):
			// The round closed between the check and the submit
			return nil, ErrRoundOver
		default:
			return nil, fmt.Errorf("failed to record roll: %w", err)
		}
	}

	output := &RollOutput{
		Roll: models.Roll{
			PlayerID:  input.PlayerID,
			Throws:    throws,
			Score:     score,
			Timestamp: submitted.Participant.SubmittedAt,
		},
		RoundID: submitted.RoundID,
		Rank:    submitted.Rank,
	}

	left, err := s.roundService.TimeLeft(ctx, &round.TimeLeftInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to get time left: %w", err)
	}
	output.TimeLeft = left.Remaining

	return output, nil
}

// StartRound opens a round that lasts the given duration
func (s *service) StartRound(ctx context.Context, input *StartRoundInput) (*StartRoundOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	if input.Duration <= 0 {
		return nil, ErrInvalidDuration
	}

	opened, err := s.roundService.OpenFor(ctx, &round.OpenForInput{
		Duration: input.Duration,
	})
	if err != nil {
		if errors.Is(err, round.ErrAlreadyOpen) {
			return nil, ErrRoundAlreadyActive
		}
		return nil, fmt.Errorf("failed to open round: %w", err)
	}

	output := &StartRoundOutput{
		RoundID:  opened.RoundID,
		OpenedAt: opened.OpenedAt,
	}
	if opened.Deadline != nil {
		output.Deadline = *opened.Deadline
	}

	s.announceOpening(ctx, &RoundOpening{
		RoundID:  output.RoundID,
		OpenedAt: output.OpenedAt,
		Deadline: output.Deadline,
	})

	return output, nil
}

// ScheduleRound accepts an HH:MM-HH:MM window for today. A window whose start
// already passed opens at once; otherwise the opening waits for the start and
// replaces any window scheduled before.
func (s *service) ScheduleRound(ctx context.Context, input *ScheduleRoundInput) (*ScheduleRoundOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	now := s.clock.Now()
	start, stop, err := parseWindow(input.Window, now, s.location)
	if err != nil {
		return nil, err
	}

	if !stop.After(now) {
		return nil, ErrWindowPassed
	}

	output := &ScheduleRoundOutput{
		Start: start,
		Stop:  stop,
	}

	if !start.After(now) {
		roundID, err := s.openUntil(ctx, stop)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		output.Replaced = s.stopPendingLocked()
		s.mu.Unlock()

		output.OpenedNow = true
		output.RoundID = roundID
		return output, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	output.Replaced = s.stopPendingLocked()
	s.pendingSeq++
	seq := s.pendingSeq
	s.pending = s.scheduler.AfterFunc(start.Sub(now), func() {
		s.openScheduled(seq, stop)
	})

	return output, nil
}

// CancelSchedule drops a scheduled window that has not opened yet
func (s *service) CancelSchedule(ctx context.Context, input *CancelScheduleInput) (*CancelScheduleOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return &CancelScheduleOutput{
		Cancelled: s.stopPendingLocked(),
	}, nil
}

func (s *service) stopPendingLocked() bool {
	if s.pending == nil {
		return false
	}

	s.pending.Stop()
	s.pending = nil
	s.pendingSeq++
	return true
}

func (s *service) openScheduled(seq int, stop time.Time) {
	s.mu.Lock()
	if seq != s.pendingSeq || s.pending == nil {
		s.mu.Unlock()
		return
	}
	s.pending = nil
	s.mu.Unlock()

	if _, err := s.openUntil(context.Background(), stop); err != nil {
		log.Printf("Failed to open scheduled round: %v", err)
	}
}

func (s *service) openUntil(ctx context.Context, stop time.Time) (string, error) {
	opened, err := s.roundService.OpenUntil(ctx, &round.OpenUntilInput{
		Deadline: stop,
	})
	if err != nil {
		switch {
		case errors.Is(err, round.ErrAlreadyOpen):
			return "", ErrRoundAlreadyActive
		case errors.Is(err, round.ErrInvalidDeadline):
			return "", ErrWindowPassed
		default:
			return "", fmt.Errorf("failed to open round: %w", err)
		}
	}

	s.announceOpening(ctx, &RoundOpening{
		RoundID:   opened.RoundID,
		OpenedAt:  opened.OpenedAt,
		Deadline:  stop,
		Scheduled: true,
	})

	return opened.RoundID, nil
}

// CloseRound ends the open round. Announcements happen through the close handler.
func (s *service) CloseRound(ctx context.Context, input *CloseRoundInput) (*CloseRoundOutput, error) {
	closed, err := s.roundService.Close(ctx, &round.CloseInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to close round: %w", err)
	}

	return &CloseRoundOutput{
		Round:         closed.Archive,
		AlreadyClosed: closed.AlreadyClosed,
	}, nil
}

// GetRoundLeaders returns the ranking of the open round
func (s *service) GetRoundLeaders(ctx context.Context, input *GetRoundLeadersInput) (*GetRoundLeadersOutput, error) {
	if input == nil {
		input = &GetRoundLeadersInput{}
	}

	stats, err := s.roundService.CurrentStats(ctx, &round.CurrentStatsInput{
		ParticipantID: input.PlayerID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get round stats: %w", err)
	}

	left, err := s.roundService.TimeLeft(ctx, &round.TimeLeftInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to get time left: %w", err)
	}

	return &GetRoundLeadersOutput{
		Active:   left.Open,
		Entries:  stats.Entries,
		Own:      stats.Own,
		TimeLeft: left.Remaining,
	}, nil
}

// GetDailyLeaders returns each player's best score across the retained rounds
func (s *service) GetDailyLeaders(ctx context.Context, input *GetDailyLeadersInput) (*GetDailyLeadersOutput, error) {
	if input == nil {
		input = &GetDailyLeadersInput{}
	}

	stats, err := s.roundService.CumulativeStats(ctx, &round.CumulativeStatsInput{
		ParticipantID: input.PlayerID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get daily stats: %w", err)
	}

	left, err := s.roundService.TimeLeft(ctx, &round.TimeLeftInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to get time left: %w", err)
	}

	return &GetDailyLeadersOutput{
		Standings: stats.Standings,
		Own:       stats.Own,
		TimeLeft:  left.Remaining,
	}, nil
}

// SetPrizeCount sets the number of prize places for rounds closing from now on
func (s *service) SetPrizeCount(ctx context.Context, input *SetPrizeCountInput) (*SetPrizeCountOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	if input.Count < 0 {
		return nil, ErrInvalidPrizeCount
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.prizeCount = input.Count

	return &SetPrizeCountOutput{Count: input.Count}, nil
}

// GetPrizeCount returns the number of prize places
func (s *service) GetPrizeCount(ctx context.Context, input *GetPrizeCountInput) (*GetPrizeCountOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return &GetPrizeCountOutput{Count: s.prizeCount}, nil
}

// RegisterAnnouncer sets the announcer. The transport registers itself once it is connected.
func (s *service) RegisterAnnouncer(announcer Announcer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.announcer = announcer
}

func (s *service) currentAnnouncer() Announcer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.announcer
}

func (s *service) announceOpening(ctx context.Context, opening *RoundOpening) {
	announcer := s.currentAnnouncer()
	if announcer == nil {
		return
	}

	if err := announcer.AnnounceRoundOpened(ctx, opening); err != nil {
		log.Printf("Failed to announce round %s: %v", opening.RoundID, err)
	}
}

// handleRoundClosed runs once per archived round, after the round service released its lock
func (s *service) handleRoundClosed(archive *models.ArchivedRound) {
	ctx := context.Background()

	prizes, err := s.GetPrizeCount(ctx, &GetPrizeCountInput{})
	if err != nil {
		log.Printf("Failed to get prize count: %v", err)
		return
	}

	winners := archive.Top(prizes.Count)
	top, err := s.roundService.TopPrizeWinners(ctx, &round.TopPrizeWinnersInput{N: prizes.Count})
	if err != nil {
		log.Printf("Failed to get prize winners for round %s: %v", archive.ID, err)
	} else if top.RoundID == archive.ID {
		winners = top.Winners
	}

	if err := s.SaveSnapshot(ctx, &SaveSnapshotInput{}); err != nil {
		log.Printf("Failed to save snapshot after round %s: %v", archive.ID, err)
	}

	announcer := s.currentAnnouncer()
	if announcer == nil {
		log.Printf("No announcer registered, results of round %s not delivered", archive.ID)
		return
	}

	err = announcer.AnnounceRoundResults(ctx, &RoundResults{
		Round:        archive,
		Participants: archive.Participants(),
		Winners:      winners,
		PrizeCount:   prizes.Count,
	})
	if err != nil {
		log.Printf("Failed to announce results of round %s: %v", archive.ID, err)
	}
}

// Restore loads the saved snapshot. A missing snapshot is not an error.
func (s *service) Restore(ctx context.Context, input *RestoreInput) (*RestoreOutput, error) {
	snapshot, err := s.snapshotRepo.LoadSnapshot(ctx, &snapshotRepo.LoadSnapshotInput{})
	if err != nil {
		if errors.Is(err, snapshotRepo.ErrSnapshotNotFound) {
			return &RestoreOutput{}, nil
		}
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	restored, err := s.roundService.Restore(ctx, &round.RestoreInput{
		Snapshot: snapshot,
	})
	if err != nil {
		if errors.Is(err, round.ErrAlreadyOpen) {
			return nil, ErrRoundAlreadyActive
		}
		return nil, fmt.Errorf("failed to restore snapshot: %w", err)
	}

	return &RestoreOutput{
		Found:     true,
		Rounds:    restored.Rounds,
		Standings: restored.Standings,
	}, nil
}

// SaveSnapshot persists the current history and standings
func (s *service) SaveSnapshot(ctx context.Context, input *SaveSnapshotInput) error {
	taken, err := s.roundService.Snapshot(ctx, &round.SnapshotInput{})
	if err != nil {
		return fmt.Errorf("failed to take snapshot: %w", err)
	}

	return s.snapshotRepo.SaveSnapshot(ctx, &snapshotRepo.SaveSnapshotInput{
		Snapshot: taken.Snapshot,
	})
}

// Run saves a snapshot every SnapshotInterval and once more when ctx is cancelled
func (s *service) Run(ctx context.Context) error {
	var tick <-chan time.Time
	if s.snapshotInterval > 0 {
		ticker := time.NewTicker(s.snapshotInterval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		select {
		case <-ctx.Done():
			if err := s.SaveSnapshot(context.Background(), &SaveSnapshotInput{}); err != nil {
				return fmt.Errorf("failed to save final snapshot: %w", err)
			}
			return nil
		case <-tick:
			if err := s.SaveSnapshot(ctx, &SaveSnapshotInput{}); err != nil {
				log.Printf("Failed to save snapshot: %v", err)
			}
		}
	}
}
