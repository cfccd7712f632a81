package game

// GameError is a custom error type for engine errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

const (
	ErrInvalidConfiguration GameError = "invalid game configuration"
	ErrDieNotFound          GameError = "die not found"
	ErrInvalidState         GameError = "invalid engine state"
	ErrNoPlayers            GameError = "no players in game"
)
