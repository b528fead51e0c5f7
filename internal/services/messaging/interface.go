package messaging

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetRollResultMessage returns a message for a player's roll
	GetRollResultMessage(ctx context.Context, input *GetRollResultMessageInput) (*GetRollResultMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)

	// GetRoundOpenedMessage returns the announcement of a new round
	GetRoundOpenedMessage(ctx context.Context, input *GetRoundOpenedMessageInput) (*GetRoundOpenedMessageOutput, error)

	// GetRoundOverMessage returns the message sent to each participant when a round ends
	GetRoundOverMessage(ctx context.Context, input *GetRoundOverMessageInput) (*GetRoundOverMessageOutput, error)

	// GetPrizeMessage returns the congratulation sent to a prize winner
	GetPrizeMessage(ctx context.Context, input *GetPrizeMessageInput) (*GetPrizeMessageOutput, error)

	// GetLeaderboardMessage returns a rendered ranking
	GetLeaderboardMessage(ctx context.Context, input *GetLeaderboardMessageInput) (*GetLeaderboardMessageOutput, error)
}
