package models

import (
	"time"
)

// Roll represents one bowling roll made of several throws
type Roll struct {
	// PlayerID is the ID of the player who rolled
	PlayerID string

	// Throws holds the pins knocked down by each ball
	Throws []int

	// Score is the product of the throws
	Score int

	// Timestamp is when the roll was made
	Timestamp time.Time
}
