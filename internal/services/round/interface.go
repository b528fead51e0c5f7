package round

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/strike/internal/services/round Service

import (
	"context"

	"github.com/KirkDiggler/strike/internal/models"
)

// CloseHandler is called once for every round that gets archived.
// It runs outside the service lock, on the goroutine that closed the round.
type CloseHandler func(archive *models.ArchivedRound)

// Service defines the round lifecycle and ranking operations
type Service interface {
	// OpenFor opens a round that closes after the given duration
	OpenFor(ctx context.Context, input *OpenForInput) (*OpenRoundOutput, error)

	// OpenUntil opens a round that closes at the given deadline, or never if the deadline is zero
	OpenUntil(ctx context.Context, input *OpenUntilInput) (*OpenRoundOutput, error)

	// TimeLeft reports how long the current round keeps accepting rolls
	TimeLeft(ctx context.Context, input *TimeLeftInput) (*TimeLeftOutput, error)

	// CanSubmit reports whether a participant may still roll in the current round
	CanSubmit(ctx context.Context, input *CanSubmitInput) (*CanSubmitOutput, error)

	// Submit records a participant's score in the current round
	Submit(ctx context.Context, input *SubmitInput) (*SubmitOutput, error)

	// CurrentStats returns the ranking of the current round
	CurrentStats(ctx context.Context, input *CurrentStatsInput) (*CurrentStatsOutput, error)

	// CumulativeStats returns the best-score ranking across retained rounds
	CumulativeStats(ctx context.Context, input *CumulativeStatsInput) (*CumulativeStatsOutput, error)

	// Close archives the current round. Closing a closed service returns the last archive.
	Close(ctx context.Context, input *CloseInput) (*CloseOutput, error)

	// TopPrizeWinners returns the top finishers of the most recently archived round
	TopPrizeWinners(ctx context.Context, input *TopPrizeWinnersInput) (*TopPrizeWinnersOutput, error)

	// Snapshot captures history and standings for durable storage
	Snapshot(ctx context.Context, input *SnapshotInput) (*SnapshotOutput, error)

	// Restore replaces history and standings with a snapshot
	Restore(ctx context.Context, input *RestoreInput) (*RestoreOutput, error)

	// OnClose registers a handler for archived rounds
	OnClose(handler CloseHandler)
}
