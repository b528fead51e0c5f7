package round

// RoundError is a custom error type for round-related errors
type RoundError string

// Error implements the error interface
func (e RoundError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrAlreadyOpen         RoundError = "a round is already open"
	ErrRoundNotOpen        RoundError = "round is not open"
	ErrAlreadyParticipated RoundError = "participant already rolled in this round"
	ErrInvalidScore        RoundError = "score cannot be negative"
	ErrInvalidDeadline     RoundError = "round deadline must be in the future"
	ErrInvalidInput        RoundError = "invalid input"
	ErrUnsupportedSnapshot RoundError = "unsupported snapshot version"
	ErrNilConfig           RoundError = "config cannot be nil"
	ErrNilClock            RoundError = "clock cannot be nil"
	ErrNilScheduler        RoundError = "scheduler cannot be nil"
	ErrNilUUIDGenerator    RoundError = "UUID generator cannot be nil"
	ErrInvalidHistoryLimit RoundError = "history limits cannot be negative"
)
