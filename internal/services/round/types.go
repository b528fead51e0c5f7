package round

import (
	"math"
	"time"

	"github.com/KirkDiggler/strike/internal/common/clock"
	"github.com/KirkDiggler/strike/internal/common/scheduler"
	"github.com/KirkDiggler/strike/internal/common/uuid"
	"github.com/KirkDiggler/strike/internal/models"
)

const (
	// NoRoundOpen is the Remaining value reported while no round is open
	NoRoundOpen time.Duration = math.MinInt64

	// Unbounded is the Remaining value reported for a round without a deadline
	Unbounded time.Duration = math.MaxInt64
)

// Config holds configuration for the round service
type Config struct {
	// HistoryLimit caps the number of archived rounds kept, 0 keeps all
	HistoryLimit int

	// HistoryMaxAge drops archived rounds closed longer ago than this, 0 keeps all
	HistoryMaxAge time.Duration

	// Service dependencies
	Clock         clock.Clock
	Scheduler     scheduler.Scheduler
	UUIDGenerator uuid.UUID
}

// OpenForInput contains parameters for opening a round for a duration
type OpenForInput struct {
	// Duration is how long the round accepts rolls
	Duration time.Duration
}

// OpenUntilInput contains parameters for opening a round until a deadline
type OpenUntilInput struct {
	// Deadline is when the round closes; zero opens a round that only closes explicitly
	Deadline time.Time
}

// OpenRoundOutput contains the result of opening a round
type OpenRoundOutput struct {
	// RoundID is the unique identifier for the new round
	RoundID string

	// OpenedAt is when the round was opened
	OpenedAt time.Time

	// Deadline is when the round closes, nil for open-ended rounds
	Deadline *time.Time
}

// TimeLeftInput contains parameters for querying the round clock
type TimeLeftInput struct{}

// TimeLeftOutput contains the time remaining in the current round
type TimeLeftOutput struct {
	// Open indicates a round is open. A round past its deadline stays open until the close runs.
	Open bool

	// OpenEnded indicates the round has no deadline
	OpenEnded bool

	// RoundID is the current round, empty when closed
	RoundID string

	// Remaining is the deadline minus now. It is NoRoundOpen when closed,
	// Unbounded for open-ended rounds and can be zero or negative once the deadline passed.
	Remaining time.Duration
}

// Accepting reports whether rolls are still taken according to the clock
func (o *TimeLeftOutput) Accepting() bool {
	return o != nil && o.Open && o.Remaining > 0
}

// RejectReason explains why a participant cannot roll
type RejectReason string

const (
	// RejectReasonNone indicates the participant may roll
	RejectReasonNone RejectReason = ""

	// RejectReasonRoundClosed indicates no round is open
	RejectReasonRoundClosed RejectReason = "round_closed"

	// RejectReasonDeadlinePassed indicates the round deadline passed
	RejectReasonDeadlinePassed RejectReason = "deadline_passed"

	// RejectReasonAlreadyParticipated indicates the participant already rolled
	RejectReasonAlreadyParticipated RejectReason = "already_participated"
)

// CanSubmitInput contains parameters for checking admission
type CanSubmitInput struct {
	// ParticipantID is the Discord user ID of the player
	ParticipantID string
}

// CanSubmitOutput contains the admission decision
type CanSubmitOutput struct {
	// Allowed indicates the participant may roll
	Allowed bool

	// Reason explains a refusal
	Reason RejectReason
}

// SubmitInput contains parameters for recording a score
type SubmitInput struct {
	// ParticipantID is the Discord user ID of the player
	ParticipantID string

	// DisplayName is the name shown in rankings
	DisplayName string

	// Score is the non-negative roll score
	Score int
}

// SubmitOutput contains the result of recording a score
type SubmitOutput struct {
	// RoundID is the round the score was recorded in
	RoundID string

	// Rank is the position at the time of submission. It is not final:
	// later, higher scores move the participant down.
	Rank int

	// Participant is the recorded entry
	Participant *models.Participant
}

// CurrentStatsInput contains parameters for the current round ranking
type CurrentStatsInput struct {
	// ParticipantID optionally identifies the requesting player
	ParticipantID string
}

// CurrentStatsOutput contains the current round ranking
type CurrentStatsOutput struct {
	// Empty indicates no round is open or nobody rolled yet
	Empty bool

	// RoundID is the current round, empty when closed
	RoundID string

	// Entries is the ranking, best first
	Entries []*models.RankedEntry

	// Own is the requesting player's entry, nil if they have not rolled
	Own *models.RankedEntry
}

// CumulativeStatsInput contains parameters for the cumulative ranking
type CumulativeStatsInput struct {
	// ParticipantID optionally identifies the requesting player
	ParticipantID string
}

// CumulativeStatsOutput contains the cumulative ranking
type CumulativeStatsOutput struct {
	// Empty indicates no archived round has any entry
	Empty bool

	// Standings is the ranking, best first
	Standings []*models.RankedStanding

	// Own is the requesting player's standing, nil if absent
	Own *models.RankedStanding
}

// CloseInput contains parameters for closing the current round
type CloseInput struct{}

// CloseOutput contains the result of closing a round
type CloseOutput struct {
	// Archive is the round that was archived, or the most recent archive
	// when the service was already closed. Nil if no round was ever archived.
	Archive *models.ArchivedRound

	// AlreadyClosed indicates this call did not archive anything
	AlreadyClosed bool
}

// TopPrizeWinnersInput contains parameters for computing prize winners
type TopPrizeWinnersInput struct {
	// N is the number of prize places
	N int
}

// TopPrizeWinnersOutput contains the prize winners of the last archived round
type TopPrizeWinnersOutput struct {
	// RoundID is the archived round the winners come from, empty if none
	RoundID string

	// Winners holds up to N participants, best first
	Winners []*models.Participant
}

// SnapshotInput contains parameters for taking a snapshot
type SnapshotInput struct{}

// SnapshotOutput contains the captured snapshot
type SnapshotOutput struct {
	Snapshot *models.Snapshot
}

// RestoreInput contains parameters for restoring a snapshot
type RestoreInput struct {
	Snapshot *models.Snapshot
}

// RestoreOutput contains the result of restoring a snapshot
type RestoreOutput struct {
	// Rounds is the number of archived rounds retained after the restore
	Rounds int

	// Standings is the number of players in the cumulative ranking
	Standings int
}
