package models

import (
	"time"
)

// RoundStatus represents the lifecycle state of a round
type RoundStatus string

const (
	// RoundStatusClosed indicates no round is accepting rolls
	RoundStatusClosed RoundStatus = "closed"

	// RoundStatusOpen indicates a round is accepting rolls
	RoundStatusOpen RoundStatus = "open"
)

// CloseReason records what ended a round
type CloseReason string

const (
	// CloseReasonDeadline indicates the automatic close fired
	CloseReasonDeadline CloseReason = "deadline"

	// CloseReasonManual indicates an explicit close
	CloseReasonManual CloseReason = "manual"
)

// ArchivedRound is an immutable closed round kept in history
type ArchivedRound struct {
	// ID is the unique identifier for the round
	ID string `json:"id"`

	// OpenedAt is when the round started accepting rolls
	OpenedAt time.Time `json:"opened_at"`

	// Deadline is when the round was due to close, nil for open-ended rounds
	Deadline *time.Time `json:"deadline,omitempty"`

	// ClosedAt is when the round was archived
	ClosedAt time.Time `json:"closed_at"`

	// Reason is what closed the round
	Reason CloseReason `json:"reason"`

	// Entries holds the final ranking
	Entries []*RankedEntry `json:"entries"`
}

// Top returns the first n entries of the final ranking
func (r *ArchivedRound) Top(n int) []*Participant {
	if r == nil || n <= 0 {
		return []*Participant{}
	}
	n = min(n, len(r.Entries))

	top := make([]*Participant, 0, n)
	for _, entry := range r.Entries[:n] {
		top = append(top, entry.Participant)
	}
	return top
}

// Participants returns everyone who rolled in the round, in ranking order
func (r *ArchivedRound) Participants() []*Participant {
	if r == nil {
		return []*Participant{}
	}
	return r.Top(len(r.Entries))
}

// IsEmpty reports whether nobody rolled in the round
func (r *ArchivedRound) IsEmpty() bool {
	return r == nil || len(r.Entries) == 0
}
