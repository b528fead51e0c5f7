package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/strike/internal/services/game Service,Announcer

import "context"

// Service defines the interface for bowling game operations
type Service interface {
	// Roll throws the pins for a player and records the score in the open round
	Roll(ctx context.Context, input *RollInput) (*RollOutput, error)

	// StartRound opens a round for a number of seconds
	StartRound(ctx context.Context, input *StartRoundInput) (*StartRoundOutput, error)

	// ScheduleRound opens a round for an HH:MM-HH:MM window today
	ScheduleRound(ctx context.Context, input *ScheduleRoundInput) (*ScheduleRoundOutput, error)

	// CancelSchedule drops a scheduled opening that has not happened yet
	CancelSchedule(ctx context.Context, input *CancelScheduleInput) (*CancelScheduleOutput, error)

	// CloseRound ends the open round early
	CloseRound(ctx context.Context, input *CloseRoundInput) (*CloseRoundOutput, error)

	// GetRoundLeaders returns the ranking of the open round
	GetRoundLeaders(ctx context.Context, input *GetRoundLeadersInput) (*GetRoundLeadersOutput, error)

	// GetDailyLeaders returns the best scores across recent rounds
	GetDailyLeaders(ctx context.Context, input *GetDailyLeadersInput) (*GetDailyLeadersOutput, error)

	// SetPrizeCount sets the number of prize places
	SetPrizeCount(ctx context.Context, input *SetPrizeCountInput) (*SetPrizeCountOutput, error)

	// GetPrizeCount returns the number of prize places
	GetPrizeCount(ctx context.Context, input *GetPrizeCountInput) (*GetPrizeCountOutput, error)

	// RegisterAnnouncer sets who is told about finished rounds
	RegisterAnnouncer(announcer Announcer)

	// Restore loads the last saved snapshot into the round service
	Restore(ctx context.Context, input *RestoreInput) (*RestoreOutput, error)

	// SaveSnapshot persists the current history and standings
	SaveSnapshot(ctx context.Context, input *SaveSnapshotInput) error

	// Run saves snapshots periodically until the context is cancelled
	Run(ctx context.Context) error
}

// Announcer delivers round events to players
type Announcer interface {
	// AnnounceRoundOpened tells players a round started
	AnnounceRoundOpened(ctx context.Context, opening *RoundOpening) error

	// AnnounceRoundResults tells participants the final standings and congratulates winners
	AnnounceRoundResults(ctx context.Context, results *RoundResults) error
}
