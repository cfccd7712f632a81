package game

import (
	"fmt"

	"github.com/KirkDiggler/shipcaptaincrew/internal/dice"
	"github.com/KirkDiggler/shipcaptaincrew/internal/models"
)

// Snapshot captures the full engine state
func (e *Engine) Snapshot() *models.EngineState {
	players := make([]models.PlayerState, 0, len(e.players))
	for _, p := range e.players {
		players = append(players, p.state())
	}

	return &models.EngineState{
		Players:            players,
		Dice:               e.Dice(),
		MaxRolls:           e.maxRolls,
		CurrentPlayerIndex: e.current,
		TurnCounter:        e.turnCounter,
		Round:              e.round,
	}
}

// Restore rebuilds an engine from a snapshot. The snapshot is checked
// against the same rules New enforces plus the cursor invariants.
func Restore(state *models.EngineState, roller dice.Roller) (*Engine, error) {
	if state == nil {
		return nil, fmt.Errorf("state cannot be nil: %w", ErrInvalidState)
	}
	if roller == nil {
		return nil, fmt.Errorf("dice roller cannot be nil: %w", ErrInvalidConfiguration)
	}
	if len(state.Players) < 2 {
		return nil, fmt.Errorf("snapshot has %d players: %w", len(state.Players), ErrInvalidState)
	}
	if len(state.Dice) < 1 {
		return nil, fmt.Errorf("snapshot has no dice: %w", ErrInvalidState)
	}
	if state.MaxRolls < 1 {
		return nil, fmt.Errorf("snapshot max rolls %d: %w", state.MaxRolls, ErrInvalidState)
	}
	if state.CurrentPlayerIndex < 0 || state.CurrentPlayerIndex >= len(state.Players) {
		return nil, fmt.Errorf("current player index %d out of range: %w", state.CurrentPlayerIndex, ErrInvalidState)
	}
	if state.TurnCounter < 0 || state.TurnCounter >= len(state.Players) {
		return nil, fmt.Errorf("turn counter %d out of range: %w", state.TurnCounter, ErrInvalidState)
	}
	if state.Round < 1 {
		return nil, fmt.Errorf("round %d: %w", state.Round, ErrInvalidState)
	}

	seenPlayers := make(map[int]bool, len(state.Players))
	players := make([]*Player, 0, len(state.Players))
	for _, ps := range state.Players {
		if seenPlayers[ps.Number] {
			return nil, fmt.Errorf("duplicate player %d: %w", ps.Number, ErrInvalidState)
		}
		seenPlayers[ps.Number] = true

		p, err := playerFromState(ps)
		if err != nil {
			return nil, err
		}
		players = append(players, p)
	}

	seenDice := make(map[int]bool, len(state.Dice))
	set := make([]*dice.Die, 0, len(state.Dice))
	for _, ds := range state.Dice {
		if seenDice[ds.Number] {
			return nil, fmt.Errorf("duplicate die %d: %w", ds.Number, ErrInvalidState)
		}
		seenDice[ds.Number] = true

		d, err := dice.RestoreDie(ds.Number, ds.Sides, ds.FaceValue, ds.Held)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", err, ErrInvalidState)
		}
		set = append(set, d)
	}

	return &Engine{
		players:     players,
		dice:        set,
		roller:      roller,
		maxRolls:    state.MaxRolls,
		current:     state.CurrentPlayerIndex,
		turnCounter: state.TurnCounter,
		round:       state.Round,
	}, nil
}
