package game

import (
	"testing"

	"github.com/KirkDiggler/shipcaptaincrew/internal/dice/mocks"
	"github.com/KirkDiggler/shipcaptaincrew/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func validState() *models.EngineState {
	return &models.EngineState{
		Players: []models.PlayerState{
			{Number: 2, Score: 4, RollsUsed: 1, Wins: 1},
			{Number: 1, Score: 0, RollsUsed: 0, Losses: 1},
		},
		Dice: []models.DieState{
			{Number: 1, Sides: 6, FaceValue: 6, Held: true},
			{Number: 2, Sides: 6, FaceValue: 3},
		},
		MaxRolls:           3,
		CurrentPlayerIndex: 1,
		TurnCounter:        1,
		Round:              2,
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	roller := mocks.NewMockRoller(gomock.NewController(t))

	e, err := Restore(validState(), roller)
	require.NoError(t, err)

	assert.Equal(t, validState(), e.Snapshot())
	assert.Equal(t, 1, e.CurrentPlayerNumber())
	assert.Equal(t, 2, e.Round())
	assert.True(t, e.IsLastTurn())
}

func TestRestoreRejectsInvalidState(t *testing.T) {
	roller := mocks.NewMockRoller(gomock.NewController(t))

	tests := []struct {
		name   string
		mutate func(s *models.EngineState)
	}{
		{"one player", func(s *models.EngineState) { s.Players = s.Players[:1] }},
		{"no dice", func(s *models.EngineState) { s.Dice = nil }},
		{"no rolls", func(s *models.EngineState) { s.MaxRolls = 0 }},
		{"cursor out of range", func(s *models.EngineState) { s.CurrentPlayerIndex = 2 }},
		{"negative turn counter", func(s *models.EngineState) { s.TurnCounter = -1 }},
		{"round zero", func(s *models.EngineState) { s.Round = 0 }},
		{"duplicate player", func(s *models.EngineState) { s.Players[1].Number = 2 }},
		{"duplicate die", func(s *models.EngineState) { s.Dice[1].Number = 1 }},
		{"face out of range", func(s *models.EngineState) { s.Dice[0].FaceValue = 9 }},
		{"negative wins", func(s *models.EngineState) { s.Players[0].Wins = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := validState()
			tt.mutate(state)

			e, err := Restore(state, roller)
			assert.Nil(t, e)
			assert.ErrorIs(t, err, ErrInvalidState)
		})
	}

	_, err := Restore(nil, roller)
	assert.ErrorIs(t, err, ErrInvalidState)

	_, err = Restore(validState(), nil)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestPlayer(t *testing.T) {
	p := NewPlayer(3)
	p.Roll()
	p.Roll()
	p.AddToScore(4)
	p.AddToScore(0)
	p.AddWin()
	p.AddLoss()
	p.AddLoss()

	assert.Equal(t, "Player 3: score 4, wins 1, losses 2", p.String())
	assert.Equal(t, 2, p.RollsUsed())

	p.Reset()

	assert.Equal(t, 0, p.Score())
	assert.Equal(t, 0, p.RollsUsed())
	assert.Equal(t, 1, p.Wins())
	assert.Equal(t, 2, p.Losses())
}
