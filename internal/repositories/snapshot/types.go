package snapshot

import (
	"errors"
	"fmt"

	"github.com/KirkDiggler/strike/internal/models"
)

// ErrSnapshotNotFound is returned when nothing was saved yet
var ErrSnapshotNotFound = errors.New("snapshot not found")

// DefaultNamespace is used when no namespace is configured
const DefaultNamespace = "default"

// PersistenceError reports a failed storage operation
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("snapshot %s failed: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

type SaveSnapshotInput struct {
	Snapshot *models.Snapshot
}

type LoadSnapshotInput struct {
}
