package models

import (
	"time"
)

// Participant is a player's single scored entry in one round
type Participant struct {
	// ID is the Discord user ID of the player
	ID string `json:"id"`

	// Name is the display name at submission time, not unique
	Name string `json:"name"`

	// Score is the product of the player's throws
	Score int `json:"score"`

	// Seq is the insertion sequence inside the round, used to break ties
	Seq int64 `json:"seq"`

	// SubmittedAt is when the score was recorded
	SubmittedAt time.Time `json:"submitted_at"`
}

// RankedEntry pairs a participant with its 1-based position
type RankedEntry struct {
	Rank int `json:"rank"`

	*Participant
}
