package snapshot

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/strike/internal/repositories/snapshot Repository

import (
	"context"

	"github.com/KirkDiggler/strike/internal/models"
)

// Repository defines the interface for leaderboard snapshot persistence
type Repository interface {
	// SaveSnapshot replaces the stored snapshot
	SaveSnapshot(ctx context.Context, input *SaveSnapshotInput) error

	// LoadSnapshot retrieves the stored snapshot
	LoadSnapshot(ctx context.Context, input *LoadSnapshotInput) (*models.Snapshot, error)
}
