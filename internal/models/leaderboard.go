package models

import (
	"time"
)

// Standing is a player's best score across the retained history
type Standing struct {
	// PlayerID is the Discord user ID of the player
	PlayerID string `json:"player_id"`

	// PlayerName is the most recent display name seen for the player
	PlayerName string `json:"player_name"`

	// BestScore is the highest score across retained rounds
	BestScore int `json:"best_score"`

	// RoundID is the round the best score came from
	RoundID string `json:"round_id"`

	// AchievedAt is when the best score was submitted
	AchievedAt time.Time `json:"achieved_at"`

	// LastSeenAt is when the player last rolled in a retained round
	LastSeenAt time.Time `json:"last_seen_at"`
}

// RankedStanding pairs a standing with its 1-based position
type RankedStanding struct {
	Rank int `json:"rank"`

	*Standing
}

// SnapshotVersion is the current snapshot format
const SnapshotVersion = 1

// Snapshot is the durable form of the round history
type Snapshot struct {
	Version   int              `json:"version"`
	TakenAt   time.Time        `json:"taken_at"`
	History   []*ArchivedRound `json:"history"`
	Standings []*Standing      `json:"standings"`
}
