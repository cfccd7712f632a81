package messaging

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetRollResultMessage returns a message for a player's roll
	GetRollResultMessage(ctx context.Context, input *GetRollResultMessageInput) (*GetRollResultMessageOutput, error)

	// GetTurnResultMessage returns a message for the points a turn scored
	GetTurnResultMessage(ctx context.Context, input *GetTurnResultMessageInput) (*GetTurnResultMessageOutput, error)

	// GetRoundResultMessage returns a message announcing who took the round
	GetRoundResultMessage(ctx context.Context, input *GetRoundResultMessageInput) (*GetRoundResultMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
