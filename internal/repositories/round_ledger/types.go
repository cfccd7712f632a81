package round_ledger

import (
	"errors"

	"github.com/KirkDiggler/shipcaptaincrew/internal/models"
)

// ErrRoundAlreadyRecorded is returned when a round number is recorded twice for a session
var ErrRoundAlreadyRecorded = errors.New("round already recorded")

// AddRoundResultInput contains parameters for recording a round
type AddRoundResultInput struct {
	Result *models.RoundResult
}

// GetRoundResultsInput contains parameters for retrieving a session's rounds
type GetRoundResultsInput struct {
	SessionID string
}

// GetRoundResultsOutput contains a session's rounds in round order
type GetRoundResultsOutput struct {
	Results []*models.RoundResult
}

// GetWinCountsInput contains parameters for retrieving win counts
type GetWinCountsInput struct {
	SessionID string
}

// GetWinCountsOutput maps player number to rounds won
type GetWinCountsOutput struct {
	Wins map[int]int
}

// DeleteRoundResultsInput contains parameters for deleting a session's rounds
type DeleteRoundResultsInput struct {
	SessionID string
}

func validateResult(input *AddRoundResultInput) error {
	if input == nil || input.Result == nil {
		return errors.New("input and result cannot be nil")
	}
	if input.Result.SessionID == "" {
		return errors.New("session ID cannot be empty")
	}
	if input.Result.Round < 1 {
		return errors.New("round must be positive")
	}
	return nil
}
