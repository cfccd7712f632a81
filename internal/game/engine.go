package game

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/shipcaptaincrew/internal/dice"
	"github.com/KirkDiggler/shipcaptaincrew/internal/models"
)

// Face values that make up a scoring hand
const (
	Ship    = 6
	Captain = 5
	Crew    = 4

	// shipCaptainCrewTotal is subtracted from the dice total so that only
	// the cargo counts toward the score
	shipCaptainCrewTotal = Ship + Captain + Crew
)

// Config holds the settings a game is created with
type Config struct {
	// PlayerCount is the number of seats, at least 2
	PlayerCount int

	// DiceCount is the number of dice in play
	DiceCount int

	// MaxRolls is the number of rolls each player gets per turn
	MaxRolls int

	// Roller is the random source for every die
	Roller dice.Roller
}

// Engine owns the players and dice for one game and applies the rules.
// It performs no I/O and is not safe for concurrent use.
type Engine struct {
	players  []*Player
	dice     []*dice.Die
	roller   dice.Roller
	maxRolls int

	// current indexes players; turnCounter counts completed turns this round
	current     int
	turnCounter int
	round       int
}

// New creates an engine with players numbered 1..N and six-sided dice
// numbered 1..M. The first player is current.
func New(cfg *Config) (*Engine, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil: %w", ErrInvalidConfiguration)
	}
	if cfg.PlayerCount < 2 {
		return nil, fmt.Errorf("at least two players are required, got %d: %w", cfg.PlayerCount, ErrInvalidConfiguration)
	}
	if cfg.DiceCount < 1 {
		return nil, fmt.Errorf("at least one die is required, got %d: %w", cfg.DiceCount, ErrInvalidConfiguration)
	}
	if cfg.MaxRolls < 1 {
		return nil, fmt.Errorf("at least one roll per turn is required, got %d: %w", cfg.MaxRolls, ErrInvalidConfiguration)
	}
	if cfg.Roller == nil {
		return nil, fmt.Errorf("dice roller cannot be nil: %w", ErrInvalidConfiguration)
	}

	players := make([]*Player, 0, cfg.PlayerCount)
	for i := 1; i <= cfg.PlayerCount; i++ {
		players = append(players, NewPlayer(i))
	}

	set := make([]*dice.Die, 0, cfg.DiceCount)
	for i := 1; i <= cfg.DiceCount; i++ {
		set = append(set, dice.NewDie(i, dice.DefaultSides, cfg.Roller))
	}

	return &Engine{
		players:  players,
		dice:     set,
		roller:   cfg.Roller,
		maxRolls: cfg.MaxRolls,
		round:    1,
	}, nil
}

func (e *Engine) currentPlayer() *Player {
	return e.players[e.current]
}

// CurrentPlayerCanRoll reports whether the current player has rolls left.
// Whether every die is already held is a separate question, see AllDiceHeld.
func (e *Engine) CurrentPlayerCanRoll() bool {
	return e.currentPlayer().RollsUsed() < e.maxRolls
}

// RollDice logs a roll for the current player and rolls every unheld die
func (e *Engine) RollDice() {
	e.currentPlayer().Roll()
	for _, d := range e.dice {
		d.Roll(e.roller)
	}
}

// AutoHold holds one die showing faceValue.
//
// It returns false when no die shows the value. A die already held with
// the value counts as success and nothing changes. Otherwise the first
// unheld match by die number is held; only one die is held per call.
func (e *Engine) AutoHold(faceValue int) bool {
	var firstUnheld *dice.Die
	found := false

	for _, d := range e.dice {
		if d.FaceValue() != faceValue {
			continue
		}
		found = true
		if d.IsHeld() {
			return true
		}
		if firstUnheld == nil {
			firstUnheld = d
		}
	}

	if !found {
		return false
	}

	firstUnheld.Hold()
	return true
}

// AutoHoldSequence holds the ship, then the captain once the ship is held,
// then the crew once the captain is held. It returns how many of the three
// are held.
func (e *Engine) AutoHoldSequence() int {
	held := 0
	for _, face := range []int{Ship, Captain, Crew} {
		if !e.AutoHold(face) {
			break
		}
		held++
	}
	return held
}

// HoldDie holds the die with the given number (not face value)
func (e *Engine) HoldDie(number int) error {
	d, ok := e.findDie(number)
	if !ok {
		return fmt.Errorf("die %d: %w", number, ErrDieNotFound)
	}

	d.Hold()
	return nil
}

func (e *Engine) findDie(number int) (*dice.Die, bool) {
	for _, d := range e.dice {
		if d.Number() == number {
			return d, true
		}
	}
	return nil, false
}

// AllDiceHeld reports whether every die is held
func (e *Engine) AllDiceHeld() bool {
	for _, d := range e.dice {
		if !d.IsHeld() {
			return false
		}
	}
	return true
}

func (e *Engine) showing(faceValue int) bool {
	for _, d := range e.dice {
		if d.FaceValue() == faceValue {
			return true
		}
	}
	return false
}

// HasShipCaptainCrew reports whether a 6, a 5 and a 4 are all showing.
// Hold state is not considered.
func (e *Engine) HasShipCaptainCrew() bool {
	return e.showing(Ship) && e.showing(Captain) && e.showing(Crew)
}

// CargoScore returns what the dice are worth right now: the total minus
// ship, captain and crew when all three are showing, otherwise zero.
func (e *Engine) CargoScore() int {
	if !e.HasShipCaptainCrew() {
		return 0
	}

	total := 0
	for _, d := range e.dice {
		total += d.FaceValue()
	}
	return total - shipCaptainCrewTotal
}

// ScoreCurrentPlayer adds the cargo to the current player's score when the
// ship, captain and crew are all showing, and returns the points added.
// Calling it twice in one turn scores twice.
func (e *Engine) ScoreCurrentPlayer() int {
	if !e.HasShipCaptainCrew() {
		return 0
	}

	points := e.CargoScore()
	e.currentPlayer().AddToScore(points)
	return points
}

// NextPlayer moves to the next player in turn order. It returns false,
// without changing anything, when the current player is the last one this
// round.
func (e *Engine) NextPlayer() bool {
	if e.turnCounter+1 >= len(e.players) {
		return false
	}

	e.turnCounter++
	e.current = e.turnCounter
	return true
}

// IsLastTurn reports whether the current player is the last this round
func (e *Engine) IsLastTurn() bool {
	return e.turnCounter+1 >= len(e.players)
}

// ResetDice releases every die without changing face values
func (e *Engine) ResetDice() {
	for _, d := range e.dice {
		d.Reset()
	}
}

// ResetPlayers zeroes every player's score and roll count
func (e *Engine) ResetPlayers() {
	for _, p := range e.players {
		p.Reset()
	}
}

// StartNewRound puts the first player in the list up, which after
// FinalizeRound is the previous round's leader, and clears per-round state.
func (e *Engine) StartNewRound() {
	e.current = 0
	e.turnCounter = 0
	e.round++
	e.ResetPlayers()
}

func (e *Engine) CurrentPlayerNumber() int {
	return e.currentPlayer().Number()
}

func (e *Engine) CurrentPlayerScore() int {
	return e.currentPlayer().Score()
}

func (e *Engine) CurrentPlayerRollsUsed() int {
	return e.currentPlayer().RollsUsed()
}

// RollsRemaining returns how many rolls the current player has left
func (e *Engine) RollsRemaining() int {
	remaining := e.maxRolls - e.currentPlayer().RollsUsed()
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (e *Engine) MaxRolls() int    { return e.maxRolls }
func (e *Engine) TurnCounter() int { return e.turnCounter }
func (e *Engine) Round() int       { return e.round }

// CurrentPlayerIndex is the position of the current player in turn order
func (e *Engine) CurrentPlayerIndex() int {
	return e.current
}

// DiceResults renders one line per die in number order
func (e *Engine) DiceResults() string {
	lines := make([]string, 0, len(e.dice))
	for _, d := range e.dice {
		lines = append(lines, d.String())
	}
	return strings.Join(lines, "\n")
}

// Dice returns a copy of the dice state in number order
func (e *Engine) Dice() []models.DieState {
	out := make([]models.DieState, 0, len(e.dice))
	for _, d := range e.dice {
		out = append(out, dieState(d))
	}
	return out
}

// Standings returns every player in current turn order
func (e *Engine) Standings() []models.Standing {
	out := make([]models.Standing, 0, len(e.players))
	for _, p := range e.players {
		out = append(out, p.Standing())
	}
	return out
}

func dieState(d *dice.Die) models.DieState {
	return models.DieState{
		Number:    d.Number(),
		Sides:     d.Sides(),
		FaceValue: d.FaceValue(),
		Held:      d.IsHeld(),
	}
}
