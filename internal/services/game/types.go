package game

import (
	"time"

	"github.com/KirkDiggler/strike/internal/common/clock"
	"github.com/KirkDiggler/strike/internal/common/scheduler"
	"github.com/KirkDiggler/strike/internal/dice"
	"github.com/KirkDiggler/strike/internal/models"
	snapshotRepo "github.com/KirkDiggler/strike/internal/repositories/snapshot"
	"github.com/KirkDiggler/strike/internal/services/round"
)

const (
	// DefaultPrizeCount is the number of prize places until an admin changes it
	DefaultPrizeCount = 5

	// DefaultThrowsPerRoll is the number of balls thrown per roll
	DefaultThrowsPerRoll = 3

	// DefaultPinSides is the highest value of a single throw
	DefaultPinSides = 6
)

// Config holds configuration for the game service
type Config struct {
	// PrizeCount is the initial number of prize places
	PrizeCount int

	// Number of throws multiplied into one score
	ThrowsPerRoll int

	// Highest value of a single throw
	PinSides int

	// Location is the time zone HH:MM windows are read in
	Location *time.Location

	// SnapshotInterval is how often Run saves a snapshot, 0 saves only on shutdown
	SnapshotInterval time.Duration

	// Repository dependencies
	SnapshotRepo snapshotRepo.Repository

	// Service dependencies
	RoundService round.Service
	DiceRoller   dice.Roller
	Clock        clock.Clock
	Scheduler    scheduler.Scheduler
}

// RollInput contains parameters for rolling
type RollInput struct {
	// PlayerID is the Discord user ID of the player
	PlayerID string

	// PlayerName is the display name of the player
	PlayerName string
}

// RollOutput contains the result of a roll
type RollOutput struct {
	models.Roll

	// RoundID is the round the score counts for
	RoundID string

	// Rank is the position right after the roll
	Rank int

	// TimeLeft is the time until the round closes, round.Unbounded for open-ended rounds
	TimeLeft time.Duration
}

// StartRoundInput contains parameters for opening a round now
type StartRoundInput struct {
	// Duration is how long the round accepts rolls
	Duration time.Duration
}

// StartRoundOutput contains the opened round
type StartRoundOutput struct {
	RoundID  string
	OpenedAt time.Time
	Deadline time.Time
}

// ScheduleRoundInput contains parameters for a round window
type ScheduleRoundInput struct {
	// Window is "HH:MM-HH:MM" in the configured location, today
	Window string
}

// ScheduleRoundOutput contains the accepted window
type ScheduleRoundOutput struct {
	// Start and Stop are the window bounds
	Start time.Time
	Stop  time.Time

	// OpenedNow indicates the start already passed and the round opened immediately
	OpenedNow bool

	// RoundID is set when the round opened immediately
	RoundID string

	// Replaced indicates a previously scheduled window was dropped
	Replaced bool
}

// CancelScheduleInput contains parameters for cancelling a scheduled window
type CancelScheduleInput struct{}

// CancelScheduleOutput contains the result of cancelling a scheduled window
type CancelScheduleOutput struct {
	// Cancelled indicates a pending window existed
	Cancelled bool
}

// CloseRoundInput contains parameters for closing a round early
type CloseRoundInput struct{}

// CloseRoundOutput contains the closed round
type CloseRoundOutput struct {
	// Round is the archived round, nil if none ever ran
	Round *models.ArchivedRound

	// AlreadyClosed indicates no round was open
	AlreadyClosed bool
}

// GetRoundLeadersInput contains parameters for the round ranking
type GetRoundLeadersInput struct {
	// PlayerID optionally identifies the requesting player
	PlayerID string
}

// GetRoundLeadersOutput contains the round ranking
type GetRoundLeadersOutput struct {
	// Active indicates a round is open
	Active bool

	// Entries is the ranking, best first
	Entries []*models.RankedEntry

	// Own is the requesting player's entry
	Own *models.RankedEntry

	// TimeLeft is the time until the round closes
	TimeLeft time.Duration
}

// GetDailyLeadersInput contains parameters for the cumulative ranking
type GetDailyLeadersInput struct {
	// PlayerID optionally identifies the requesting player
	PlayerID string
}

// GetDailyLeadersOutput contains the cumulative ranking
type GetDailyLeadersOutput struct {
	// Standings is the ranking, best first
	Standings []*models.RankedStanding

	// Own is the requesting player's standing
	Own *models.RankedStanding

	// TimeLeft is the time until the open round closes, round.NoRoundOpen when closed
	TimeLeft time.Duration
}

// SetPrizeCountInput contains parameters for changing prize places
type SetPrizeCountInput struct {
	Count int
}

// SetPrizeCountOutput contains the new prize count
type SetPrizeCountOutput struct {
	Count int
}

// GetPrizeCountInput contains parameters for reading prize places
type GetPrizeCountInput struct{}

// GetPrizeCountOutput contains the prize count
type GetPrizeCountOutput struct {
	Count int
}

// RestoreInput contains parameters for loading the saved snapshot
type RestoreInput struct{}

// RestoreOutput contains the result of loading the saved snapshot
type RestoreOutput struct {
	// Found indicates a snapshot existed
	Found bool

	// Rounds is the number of archived rounds restored
	Rounds int

	// Standings is the number of players in the daily ranking
	Standings int
}

// SaveSnapshotInput contains parameters for saving a snapshot
type SaveSnapshotInput struct{}

// RoundOpening describes a round that just opened
type RoundOpening struct {
	RoundID  string
	OpenedAt time.Time

	// Deadline is zero for open-ended rounds
	Deadline time.Time

	// Scheduled indicates the round came from an HH:MM window
	Scheduled bool
}

// RoundResults describes a finished round for announcement
type RoundResults struct {
	// Round is the archived round
	Round *models.ArchivedRound

	// Participants is everyone who rolled, in ranking order
	Participants []*models.Participant

	// Winners are the prize places, best first
	Winners []*models.Participant

	// PrizeCount is the number of prize places at close time
	PrizeCount int
}
