package models

// DieState is the saved state of a single die
type DieState struct {
	// Number is the stable identity of the die (1-based)
	Number int

	// Sides is the number of faces on the die
	Sides int

	// FaceValue is the value currently showing
	FaceValue int

	// Held indicates the die is kept out of rolls this turn
	Held bool
}

// PlayerState is the saved state of a seat in a game
type PlayerState struct {
	// Number is the 1-based seat number assigned at creation
	Number int

	// Score accumulates within a round
	Score int

	// RollsUsed counts rolls taken this round
	RollsUsed int

	// Wins is the number of rounds this player has won
	Wins int

	// Losses is the number of rounds this player has lost
	Losses int
}

// EngineState is a full snapshot of a game engine. Players are in turn
// order and dice are in number order.
type EngineState struct {
	Players            []PlayerState
	Dice               []DieState
	MaxRolls           int
	CurrentPlayerIndex int
	TurnCounter        int
	Round              int
}
