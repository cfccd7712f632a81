package round_ledger

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/shipcaptaincrew/internal/repositories/round_ledger Repository

import (
	"context"
)

// Repository defines the interface for the per-session round history
type Repository interface {
	// AddRoundResult records a finished round
	AddRoundResult(ctx context.Context, input *AddRoundResultInput) error

	// GetRoundResults retrieves every recorded round for a session, oldest first
	GetRoundResults(ctx context.Context, input *GetRoundResultsInput) (*GetRoundResultsOutput, error)

	// GetWinCounts retrieves round wins per player number for a session
	GetWinCounts(ctx context.Context, input *GetWinCountsInput) (*GetWinCountsOutput, error)

	// DeleteRoundResults removes a session's history
	DeleteRoundResults(ctx context.Context, input *DeleteRoundResultsInput) error
}
