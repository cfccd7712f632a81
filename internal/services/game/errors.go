package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrSessionNotFound   GameError = "game session not found"
	ErrNoRollsRemaining  GameError = "no rolls remaining this turn"
	ErrAllDiceHeld       GameError = "all dice are held"
	ErrMustRollFirst     GameError = "current player has not rolled yet"
	ErrRoundComplete     GameError = "round is complete, start a new round"
	ErrRoundInProgress   GameError = "round is still in progress"
	ErrGameCompleted     GameError = "game has ended"
	ErrNilConfig         GameError = "config cannot be nil"
	ErrNilSessionRepo    GameError = "session repository cannot be nil"
	ErrNilRoundLedger    GameError = "round ledger repository cannot be nil"
	ErrNilDiceRoller     GameError = "dice roller cannot be nil"
	ErrNilClock          GameError = "clock cannot be nil"
	ErrNilUUIDGenerator  GameError = "UUID generator cannot be nil"
	ErrInvalidSessionID  GameError = "session ID cannot be empty"
)
