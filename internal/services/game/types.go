package game

import (
	"github.com/KirkDiggler/shipcaptaincrew/internal/common/clock"
	"github.com/KirkDiggler/shipcaptaincrew/internal/common/uuid"
	"github.com/KirkDiggler/shipcaptaincrew/internal/dice"
	"github.com/KirkDiggler/shipcaptaincrew/internal/models"
	roundLedger "github.com/KirkDiggler/shipcaptaincrew/internal/repositories/round_ledger"
	sessionRepo "github.com/KirkDiggler/shipcaptaincrew/internal/repositories/session"
	"github.com/sirupsen/logrus"
)

// Config holds configuration for the game service
type Config struct {
	// Defaults used when CreateGameInput leaves a value at zero
	DefaultPlayerCount int
	DefaultDiceCount   int
	DefaultMaxRolls    int

	// Repository dependencies
	SessionRepo sessionRepo.Repository
	RoundLedger roundLedger.Repository

	// Service dependencies
	DiceRoller    dice.Roller
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Logger is optional; the logrus standard logger is used when nil
	Logger logrus.FieldLogger
}

// GameView is a read-only picture of a session
type GameView struct {
	SessionID string
	Status    models.SessionStatus
	Phase     models.TurnPhase
	Round     int

	// Current player information
	CurrentPlayerNumber int
	CurrentPlayerScore  int
	RollsRemaining      int
	IsLastTurn          bool

	// Dice in number order
	Dice        []models.DieState
	DiceResults string
	AllDiceHeld bool

	// Players in turn order
	Players []models.Standing
}

// CreateGameInput contains parameters for creating a new game
type CreateGameInput struct {
	// PlayerCount is the number of seats, at least 2
	PlayerCount int

	// DiceCount is the number of dice in play
	DiceCount int

	// MaxRolls is the number of rolls per turn
	MaxRolls int
}

// CreateGameOutput contains the result of creating a new game
type CreateGameOutput struct {
	// SessionID is the unique identifier for the created session
	SessionID string

	Game *GameView
}

// GetGameInput contains parameters for reading a game
type GetGameInput struct {
	SessionID string
}

// GetGameOutput contains the current view of a game
type GetGameOutput struct {
	Game *GameView
}

// ListGamesInput contains parameters for listing games
type ListGamesInput struct {
}

// ListGamesOutput contains every game that has not ended
type ListGamesOutput struct {
	Games []*GameView
}

// RollDiceInput contains parameters for rolling dice
type RollDiceInput struct {
	SessionID string

	// AutoHold holds the ship, captain and crew in order after the roll
	AutoHold bool
}

// RollDiceOutput contains the result of rolling dice
type RollDiceOutput struct {
	PlayerNumber int

	// Dice after the roll and any auto-hold
	Dice []models.DieState

	RollsRemaining int

	// ShipCaptainCrewHeld is how many of ship, captain and crew are held
	ShipCaptainCrewHeld int

	// HasShipCaptainCrew indicates the dice would score right now
	HasShipCaptainCrew bool

	// PotentialScore is what ending the turn now would add
	PotentialScore int

	// CanRoll indicates the player may roll again
	CanRoll bool
}

// AutoHoldInput contains parameters for holding a die by face value
type AutoHoldInput struct {
	SessionID string
	FaceValue int
}

// AutoHoldOutput contains the result of an auto-hold
type AutoHoldOutput struct {
	// Held is false when no die shows the face value
	Held bool

	Dice []models.DieState
}

// HoldDieInput contains parameters for holding a die by number
type HoldDieInput struct {
	SessionID string
	DieNumber int
}

// HoldDieOutput contains the dice after the hold
type HoldDieOutput struct {
	Dice []models.DieState
}

// EndTurnInput contains parameters for ending the current player's turn
type EndTurnInput struct {
	SessionID string
}

// EndTurnOutput contains the result of ending a turn
type EndTurnOutput struct {
	// PlayerNumber is the player whose turn ended
	PlayerNumber int

	// Points is what the turn added to the player's score
	Points int

	// Score is the player's round score after the turn
	Score int

	// NextPlayerNumber is the player up next; zero when the round is complete
	NextPlayerNumber int

	// RoundComplete indicates the last player has gone and the round was finalized
	RoundComplete bool

	// RoundResult is set when RoundComplete is true
	RoundResult *models.RoundResult

	// Report is the round report, one line per player
	Report string
}

// StartNewRoundInput contains parameters for starting the next round
type StartNewRoundInput struct {
	SessionID string
}

// StartNewRoundOutput contains the state at the start of the new round
type StartNewRoundOutput struct {
	Round               int
	CurrentPlayerNumber int
	Game                *GameView
}

// EndGameInput contains parameters for ending a game
type EndGameInput struct {
	SessionID string
}

// EndGameOutput contains the overall winner
type EndGameOutput struct {
	Winner models.Standing

	// Report renders the winner as "Player N: ..."
	Report string

	// RoundsPlayed is the number of finished rounds
	RoundsPlayed int
}

// GetRoundHistoryInput contains parameters for reading finished rounds
type GetRoundHistoryInput struct {
	SessionID string
}

// GetRoundHistoryOutput contains finished rounds oldest first
type GetRoundHistoryOutput struct {
	Results []*models.RoundResult

	// Wins maps player number to rounds won
	Wins map[int]int
}

// DeleteGameInput contains parameters for deleting a game
type DeleteGameInput struct {
	SessionID string
}

// DeleteGameOutput contains the result of deleting a game
type DeleteGameOutput struct {
	Success bool
}
