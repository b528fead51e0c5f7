package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrRoundNotActive      GameError = "round is not active"
	ErrRoundOver           GameError = "round is over"
	ErrAlreadyParticipated GameError = "player already rolled this round"
	ErrRoundAlreadyActive  GameError = "a round is already active"
	ErrInvalidDuration     GameError = "round duration must be positive"
	ErrInvalidWindow       GameError = "window must look like HH:MM-HH:MM with stop after start"
	ErrWindowPassed        GameError = "window already ended today"
	ErrInvalidPrizeCount   GameError = "prize count cannot be negative"
	ErrInvalidInput        GameError = "invalid input"
	ErrNilConfig           GameError = "config cannot be nil"
	ErrNilRoundService     GameError = "round service cannot be nil"
	ErrNilDiceRoller       GameError = "dice roller cannot be nil"
	ErrNilClock            GameError = "clock cannot be nil"
	ErrNilScheduler        GameError = "scheduler cannot be nil"
	ErrNilSnapshotRepo     GameError = "snapshot repository cannot be nil"
)
