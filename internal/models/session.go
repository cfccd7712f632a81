package models

import (
	"time"
)

// SessionStatus represents the current state of a game session
type SessionStatus string

const (
	// SessionStatusActive indicates a round is being played
	SessionStatusActive SessionStatus = "active"

	// SessionStatusRoundComplete indicates every player has taken a turn and the round was scored
	SessionStatusRoundComplete SessionStatus = "round_complete"

	// SessionStatusCompleted indicates the game has ended
	SessionStatusCompleted SessionStatus = "completed"
)

// TurnPhase tracks where the current player is within their turn
type TurnPhase string

const (
	// TurnPhaseAwaitingRoll indicates the current player has not rolled yet
	TurnPhaseAwaitingRoll TurnPhase = "awaiting_roll"

	// TurnPhaseRolled indicates the current player has rolled at least once
	TurnPhaseRolled TurnPhase = "rolled"

	// TurnPhaseScored indicates the current player's turn has been scored
	TurnPhaseScored TurnPhase = "scored"
)

// Session is a single hosted game
type Session struct {
	// ID is the unique identifier for the session
	ID string

	// Status is the current state of the session
	Status SessionStatus

	// Phase is the current player's turn phase
	Phase TurnPhase

	// Engine holds the game state
	Engine *EngineState

	// CreatedAt is when the session was created
	CreatedAt time.Time

	// UpdatedAt is when the session was last updated
	UpdatedAt time.Time
}
