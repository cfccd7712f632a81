package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/shipcaptaincrew/internal/services/game Service

import "context"

// Service defines the interface for hosted game operations. Every call on
// a session is serialized with every other call on the same session.
type Service interface {
	// CreateGame creates a new game session
	CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error)

	// GetGame returns the current view of a session
	GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error)

	// ListGames returns every session that has not ended
	ListGames(ctx context.Context, input *ListGamesInput) (*ListGamesOutput, error)

	// RollDice rolls the unheld dice for the current player
	RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error)

	// AutoHold holds one die showing a face value
	AutoHold(ctx context.Context, input *AutoHoldInput) (*AutoHoldOutput, error)

	// HoldDie holds a die by its number
	HoldDie(ctx context.Context, input *HoldDieInput) (*HoldDieOutput, error)

	// EndTurn scores the current player and passes the dice on, closing the round after the last player
	EndTurn(ctx context.Context, input *EndTurnInput) (*EndTurnOutput, error)

	// StartNewRound begins the next round with the previous leader first
	StartNewRound(ctx context.Context, input *StartNewRoundInput) (*StartNewRoundOutput, error)

	// EndGame concludes a session and reports the overall winner
	EndGame(ctx context.Context, input *EndGameInput) (*EndGameOutput, error)

	// GetRoundHistory returns every finished round of a session
	GetRoundHistory(ctx context.Context, input *GetRoundHistoryInput) (*GetRoundHistoryOutput, error)

	// DeleteGame removes a session and its history
	DeleteGame(ctx context.Context, input *DeleteGameInput) (*DeleteGameOutput, error)
}
