package messaging

import "time"

// ErrorType identifies what went wrong for the player
type ErrorType string

const (
	ErrorTypeRoundNotActive      ErrorType = "round_not_active"
	ErrorTypeRoundOver           ErrorType = "round_over"
	ErrorTypeAlreadyParticipated ErrorType = "already_participated"
	ErrorTypeRoundAlreadyActive  ErrorType = "round_already_active"
	ErrorTypeInvalidWindow       ErrorType = "invalid_window"
	ErrorTypeWindowPassed        ErrorType = "window_passed"
	ErrorTypeInvalidDuration     ErrorType = "invalid_duration"
	ErrorTypeInvalidPrizeCount   ErrorType = "invalid_prize_count"
	ErrorTypeNotAdmin            ErrorType = "not_admin"
	ErrorTypeUnknown             ErrorType = "unknown"
)

// LeaderboardKind selects the ranking being rendered
type LeaderboardKind string

const (
	// LeaderboardKindRound is the ranking of the open round
	LeaderboardKindRound LeaderboardKind = "round"

	// LeaderboardKindDaily is the best score per player across recent rounds
	LeaderboardKindDaily LeaderboardKind = "daily"
)

// GetRollResultMessageInput contains parameters for a roll message
type GetRollResultMessageInput struct {
	PlayerName string
	Throws     []int
	Score      int

	// Rank is the position right after the roll
	Rank int
}

// GetRollResultMessageOutput contains the roll message
type GetRollResultMessageOutput struct {
	Title   string
	Message string
}

// GetErrorMessageInput contains parameters for an error message
type GetErrorMessageInput struct {
	ErrorType  ErrorType
	PlayerName string
}

// GetErrorMessageOutput contains the error message
type GetErrorMessageOutput struct {
	Title   string
	Message string
}

// GetRoundOpenedMessageInput contains parameters for a round announcement
type GetRoundOpenedMessageInput struct {
	OpenedAt time.Time

	// Deadline is zero for a round that only closes on an admin command
	Deadline time.Time

	// Scheduled indicates the round came from an HH:MM window
	Scheduled bool
}

// GetRoundOpenedMessageOutput contains the round announcement
type GetRoundOpenedMessageOutput struct {
	Title   string
	Message string
}

// GetRoundOverMessageInput contains parameters for the end-of-round message
type GetRoundOverMessageInput struct {
	PlayerName string

	// Rank and Score are the player's final result
	Rank  int
	Score int

	// Participants is the number of players in the round
	Participants int
}

// GetRoundOverMessageOutput contains the end-of-round message
type GetRoundOverMessageOutput struct {
	Title   string
	Message string
}

// GetPrizeMessageInput contains parameters for a prize congratulation
type GetPrizeMessageInput struct {
	PlayerName string
	Place      int
}

// GetPrizeMessageOutput contains the prize congratulation
type GetPrizeMessageOutput struct {
	Title   string
	Message string
}

// LeaderboardLine is one row of a ranking
type LeaderboardLine struct {
	Rank  int
	Name  string
	Score int

	// Highlight marks the requesting player
	Highlight bool
}

// GetLeaderboardMessageInput contains parameters for a ranking message
type GetLeaderboardMessageInput struct {
	Kind  LeaderboardKind
	Lines []*LeaderboardLine

	// EndsIn is shown as the time until the round closes when positive
	EndsIn time.Duration
}

// GetLeaderboardMessageOutput contains the ranking message
type GetLeaderboardMessageOutput struct {
	Title   string
	Message string
}

// ServiceConfig holds configuration for the messaging service
type ServiceConfig struct {
	// Optional seed for testing
	Seed int64

	// Location is used to print clock times
	Location *time.Location
}
