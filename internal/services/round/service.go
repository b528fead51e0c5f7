package round

import (
	"context"
	"sync"
	"time"

	"github.com/KirkDiggler/strike/internal/common/clock"
	"github.com/KirkDiggler/strike/internal/common/scheduler"
	"github.com/KirkDiggler/strike/internal/common/uuid"
	"github.com/KirkDiggler/strike/internal/leaderboard"
	"github.com/KirkDiggler/strike/internal/models"
)

// activeRound is the round currently accepting rolls
type activeRound struct {
	id       string
	openedAt time.Time
	deadline time.Time // zero for open-ended rounds
	store    *leaderboard.Store
}

// service implements the Service interface.
//
// mu guards every field below it. Lifecycle transitions and submissions take
// the write lock; queries share the read lock.
type service struct {
	clock         clock.Clock
	scheduler     scheduler.Scheduler
	uuidGenerator uuid.UUID
	historyLimit  int
	historyMaxAge time.Duration

	mu          sync.RWMutex
	status      models.RoundStatus
	current     *activeRound
	timer       scheduler.Timer
	history     []*models.ArchivedRound
	lastArchive *models.ArchivedRound
	aggregate   *aggregate

	handlersMu sync.Mutex
	handlers   []CloseHandler
}

// New creates a new round service with no open round
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.Scheduler == nil {
		return nil, ErrNilScheduler
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	if cfg.HistoryLimit < 0 || cfg.HistoryMaxAge < 0 {
		return nil, ErrInvalidHistoryLimit
	}

	return &service{
		clock:         cfg.Clock,
		scheduler:     cfg.Scheduler,
		uuidGenerator: cfg.UUIDGenerator,
		historyLimit:  cfg.HistoryLimit,
		historyMaxAge: cfg.HistoryMaxAge,
		status:        models.RoundStatusClosed,
		history:       []*models.ArchivedRound{},
		aggregate:     newAggregate(),
	}, nil
}

// OpenFor opens a round that closes after the given duration
func (s *service) OpenFor(ctx context.Context, input *OpenForInput) (*OpenRoundOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	if input.Duration <= 0 {
		return nil, ErrInvalidDeadline
	}

	return s.open(input.Duration, time.Time{})
}

// OpenUntil opens a round that closes at the deadline
func (s *service) OpenUntil(ctx context.Context, input *OpenUntilInput) (*OpenRoundOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	return s.open(0, input.Deadline)
}

// open starts a round. Either duration or deadline is set; neither means open-ended.
func (s *service) open(duration time.Duration, deadline time.Time) (*OpenRoundOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == models.RoundStatusOpen {
		return nil, ErrAlreadyOpen
	}

	now := s.clock.Now()
	if duration > 0 {
		deadline = now.Add(duration)
	}
	if !deadline.IsZero() && !deadline.After(now) {
		return nil, ErrInvalidDeadline
	}

	round := &activeRound{
		id:       s.uuidGenerator.NewUUID(),
		openedAt: now,
		deadline: deadline,
		store:    leaderboard.New(),
	}
	s.current = round
	s.status = models.RoundStatusOpen

	output := &OpenRoundOutput{
		RoundID:  round.id,
		OpenedAt: now,
	}

	if !deadline.IsZero() {
		roundID := round.id
		s.timer = s.scheduler.AfterFunc(deadline.Sub(now), func() {
			s.closeRound(roundID, models.CloseReasonDeadline)
		})
		output.Deadline = &deadline
	}

	return output, nil
}

// TimeLeft reports the time remaining in the current round
func (s *service) TimeLeft(ctx context.Context, input *TimeLeftInput) (*TimeLeftOutput, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.status != models.RoundStatusOpen {
		return &TimeLeftOutput{Remaining: NoRoundOpen}, nil
	}

	if s.current.deadline.IsZero() {
		return &TimeLeftOutput{
			Open:      true,
			OpenEnded: true,
			RoundID:   s.current.id,
			Remaining: Unbounded,
		}, nil
	}

	return &TimeLeftOutput{
		Open:      true,
		RoundID:   s.current.id,
		Remaining: s.current.deadline.Sub(s.clock.Now()),
	}, nil
}

// CanSubmit reports whether a participant may roll right now
func (s *service) CanSubmit(ctx context.Context, input *CanSubmitInput) (*CanSubmitOutput, error) {
	if input == nil || input.ParticipantID == "" {
		return nil, ErrInvalidInput
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	reason := s.rejectReasonLocked(input.ParticipantID, s.clock.Now())
	return &CanSubmitOutput{
		Allowed: reason == RejectReasonNone,
		Reason:  reason,
	}, nil
}

// Submit records a score. The admission check and the insert happen under
// the same lock, so concurrent rolls for one participant record at most one score.
func (s *service) Submit(ctx context.Context, input *SubmitInput) (*SubmitOutput, error) {
	if input == nil || input.ParticipantID == "" {
		return nil, ErrInvalidInput
	}

	if input.Score < 0 {
		return nil, ErrInvalidScore
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	switch s.rejectReasonLocked(input.ParticipantID, now) {
	case RejectReasonRoundClosed, RejectReasonDeadlinePassed:
		return nil, ErrRoundNotOpen
	case RejectReasonAlreadyParticipated:
		return nil, ErrAlreadyParticipated
	}

	accepted, rank := s.current.store.Insert(input.ParticipantID, input.DisplayName, input.Score, now)
	if !accepted {
		return nil, ErrAlreadyParticipated
	}

	entry, _ := s.current.store.Get(input.ParticipantID)
	return &SubmitOutput{
		RoundID:     s.current.id,
		Rank:        rank,
		Participant: entry.Participant,
	}, nil
}

func (s *service) rejectReasonLocked(participantID string, now time.Time) RejectReason {
	if s.status != models.RoundStatusOpen {
		return RejectReasonRoundClosed
	}

	if !s.current.deadline.IsZero() && !now.Before(s.current.deadline) {
		return RejectReasonDeadlinePassed
	}

	if s.current.store.Has(participantID) {
		return RejectReasonAlreadyParticipated
	}

	return RejectReasonNone
}

// CurrentStats returns the ranking of the open round
func (s *service) CurrentStats(ctx context.Context, input *CurrentStatsInput) (*CurrentStatsOutput, error) {
	if input == nil {
		input = &CurrentStatsInput{}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.status != models.RoundStatusOpen || s.current.store.IsEmpty() {
		output := &CurrentStatsOutput{
			Empty:   true,
			Entries: []*models.RankedEntry{},
		}
		if s.current != nil {
			output.RoundID = s.current.id
		}
		return output, nil
	}

	output := &CurrentStatsOutput{
		RoundID: s.current.id,
		Entries: s.current.store.RankedEntries(),
	}
	if input.ParticipantID != "" {
		output.Own = findEntry(output.Entries, input.ParticipantID)
	}

	return output, nil
}

// CumulativeStats returns the best-score ranking across retained rounds
func (s *service) CumulativeStats(ctx context.Context, input *CumulativeStatsInput) (*CumulativeStatsOutput, error) {
	if input == nil {
		input = &CumulativeStatsInput{}
	}

	// Rounds age out of the window without a new archival
	if s.needsEviction() {
		s.mu.Lock()
		s.evictLocked(s.clock.Now())
		s.mu.Unlock()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	standings := s.aggregate.ranked()
	output := &CumulativeStatsOutput{
		Empty:     len(standings) == 0,
		Standings: standings,
	}
	if input.ParticipantID != "" {
		for _, st := range standings {
			if st.PlayerID == input.ParticipantID {
				output.Own = st
				break
			}
		}
	}

	return output, nil
}

// Close archives the open round. When no round is open it returns the most
// recent archive without error, so a manual close racing the deadline is harmless.
func (s *service) Close(ctx context.Context, input *CloseInput) (*CloseOutput, error) {
	archive, archived := s.closeRound("", models.CloseReasonManual)
	return &CloseOutput{
		Archive:       archive,
		AlreadyClosed: !archived,
	}, nil
}

// closeRound archives the current round if it is still the expected one.
// An empty roundID matches any open round. The timer passes its own round id
// so a late firing never closes a round opened after it was armed.
func (s *service) closeRound(roundID string, reason models.CloseReason) (*models.ArchivedRound, bool) {
	s.mu.Lock()
	if s.status != models.RoundStatusOpen || (roundID != "" && s.current.id != roundID) {
		last := cloneArchive(s.lastArchive)
		s.mu.Unlock()
		return last, false
	}

	archive := s.archiveLocked(reason)
	s.mu.Unlock()

	s.notify(archive)
	return cloneArchive(archive), true
}

func (s *service) archiveLocked(reason models.CloseReason) *models.ArchivedRound {
	now := s.clock.Now()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	round := s.current
	archive := &models.ArchivedRound{
		ID:       round.id,
		OpenedAt: round.openedAt,
		ClosedAt: now,
		Reason:   reason,
		Entries:  round.store.RankedEntries(),
	}
	if !round.deadline.IsZero() {
		deadline := round.deadline
		archive.Deadline = &deadline
	}

	s.history = append(s.history, archive)
	s.aggregate.add(archive)
	s.evictLocked(now)

	s.lastArchive = archive
	s.current = nil
	s.status = models.RoundStatusClosed

	return archive
}

func (s *service) needsEviction() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.historyMaxAge == 0 || len(s.history) == 0 {
		return false
	}
	return s.clock.Now().Sub(s.history[0].ClosedAt) > s.historyMaxAge
}

// evictLocked trims history to the configured limits, oldest first
func (s *service) evictLocked(now time.Time) {
	var evicted []*models.ArchivedRound
	for len(s.history) > 0 {
		oldest := s.history[0]
		tooMany := s.historyLimit > 0 && len(s.history) > s.historyLimit
		tooOld := s.historyMaxAge > 0 && now.Sub(oldest.ClosedAt) > s.historyMaxAge
		if !tooMany && !tooOld {
			break
		}
		evicted = append(evicted, oldest)
		s.history = s.history[1:]
	}

	if len(evicted) > 0 {
		s.aggregate.evict(evicted, s.history)
	}
}

// OnClose registers a handler for archived rounds
func (s *service) OnClose(handler CloseHandler) {
	if handler == nil {
		return
	}

	s.handlersMu.Lock()
	defer s.handlersMu.Unlock()
	s.handlers = append(s.handlers, handler)
}

func (s *service) notify(archive *models.ArchivedRound) {
	s.handlersMu.Lock()
	handlers := make([]CloseHandler, len(s.handlers))
	copy(handlers, s.handlers)
	s.handlersMu.Unlock()

	for _, handler := range handlers {
		handler(cloneArchive(archive))
	}
}

// TopPrizeWinners returns the top N of the most recently archived round
func (s *service) TopPrizeWinners(ctx context.Context, input *TopPrizeWinnersInput) (*TopPrizeWinnersOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.lastArchive == nil {
		return &TopPrizeWinnersOutput{Winners: []*models.Participant{}}, nil
	}

	winners := []*models.Participant{}
	for _, p := range s.lastArchive.Top(input.N) {
		copied := *p
		winners = append(winners, &copied)
	}

	return &TopPrizeWinnersOutput{
		RoundID: s.lastArchive.ID,
		Winners: winners,
	}, nil
}

// Snapshot captures history and standings. An open round is not included.
func (s *service) Snapshot(ctx context.Context, input *SnapshotInput) (*SnapshotOutput, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := make([]*models.ArchivedRound, 0, len(s.history))
	for _, round := range s.history {
		history = append(history, cloneArchive(round))
	}

	return &SnapshotOutput{
		Snapshot: &models.Snapshot{
			Version:   models.SnapshotVersion,
			TakenAt:   s.clock.Now(),
			History:   history,
			Standings: s.aggregate.list(),
		},
	}, nil
}

// Restore replaces history and standings. It refuses while a round is open
// and always leaves the service closed.
func (s *service) Restore(ctx context.Context, input *RestoreInput) (*RestoreOutput, error) {
	if input == nil || input.Snapshot == nil {
		return nil, ErrInvalidInput
	}

	snapshot := input.Snapshot
	if snapshot.Version > models.SnapshotVersion {
		return nil, ErrUnsupportedSnapshot
	}

	history := make([]*models.ArchivedRound, 0, len(snapshot.History))
	for _, round := range snapshot.History {
		if round == nil {
			continue
		}
		history = append(history, cloneArchive(round))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == models.RoundStatusOpen {
		return nil, ErrAlreadyOpen
	}

	s.history = history
	if snapshot.Standings == nil {
		s.aggregate = rebuildAggregate(history)
	} else {
		s.aggregate = restoreAggregate(snapshot.Standings)
	}

	s.lastArchive = nil
	if len(history) > 0 {
		s.lastArchive = history[len(history)-1]
	}
	s.evictLocked(s.clock.Now())

	return &RestoreOutput{
		Rounds:    len(s.history),
		Standings: s.aggregate.len(),
	}, nil
}

func findEntry(entries []*models.RankedEntry, participantID string) *models.RankedEntry {
	for _, entry := range entries {
		if entry.ID == participantID {
			return entry
		}
	}
	return nil
}

// cloneArchive deep-copies an archive so callers never share history state
func cloneArchive(archive *models.ArchivedRound) *models.ArchivedRound {
	if archive == nil {
		return nil
	}

	cloned := *archive
	if archive.Deadline != nil {
		deadline := *archive.Deadline
		cloned.Deadline = &deadline
	}

	cloned.Entries = make([]*models.RankedEntry, 0, len(archive.Entries))
	for _, entry := range archive.Entries {
		if entry == nil || entry.Participant == nil {
			continue
		}
		participant := *entry.Participant
		cloned.Entries = append(cloned.Entries, &models.RankedEntry{
			Rank:        entry.Rank,
			Participant: &participant,
		})
	}

	return &cloned
}
