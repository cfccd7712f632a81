package game

import (
	"errors"
	"testing"

	"github.com/KirkDiggler/shipcaptaincrew/internal/dice/mocks"
	"github.com/KirkDiggler/shipcaptaincrew/internal/models"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EngineTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockRoller *mocks.MockRoller
}

func (s *EngineTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRoller = mocks.NewMockRoller(s.mockCtrl)
}

func TestEngineTestSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

// expectRolls queues die rolls in order
func (s *EngineTestSuite) expectRolls(values ...int) {
	var prev *gomock.Call
	for _, v := range values {
		call := s.mockRoller.EXPECT().Roll(6).Return(v)
		if prev != nil {
			call.After(prev)
		}
		prev = call
	}
}

// newEngine builds an engine whose dice show the given faces, all unheld
func (s *EngineTestSuite) newEngine(players, maxRolls int, faces ...int) *Engine {
	state := &models.EngineState{
		MaxRolls: maxRolls,
		Round:    1,
	}
	for i := 1; i <= players; i++ {
		state.Players = append(state.Players, models.PlayerState{Number: i})
	}
	for i, f := range faces {
		state.Dice = append(state.Dice, models.DieState{Number: i + 1, Sides: 6, FaceValue: f})
	}

	e, err := Restore(state, s.mockRoller)
	s.Require().NoError(err)
	return e
}

func (s *EngineTestSuite) heldNumbers(e *Engine) []int {
	var held []int
	for _, d := range e.Dice() {
		if d.Held {
			held = append(held, d.Number)
		}
	}
	return held
}

func (s *EngineTestSuite) TestNew() {
	s.Run("it starts with the first player and an empty turn counter", func() {
		s.expectRolls(1, 2, 3, 4, 5)

		e, err := New(&Config{PlayerCount: 3, DiceCount: 5, MaxRolls: 3, Roller: s.mockRoller})
		s.Require().NoError(err)

		s.Equal(1, e.CurrentPlayerNumber())
		s.Equal(0, e.CurrentPlayerIndex())
		s.Equal(0, e.TurnCounter())
		s.Equal(1, e.Round())
		s.Equal(0, e.CurrentPlayerScore())
		s.Equal(3, e.MaxRolls())
		s.Equal(3, e.RollsRemaining())

		diceState := e.Dice()
		s.Require().Len(diceState, 5)
		for i, d := range diceState {
			s.Equal(i+1, d.Number)
			s.Equal(6, d.Sides)
			s.Equal(i+1, d.FaceValue)
			s.False(d.Held)
		}

		standings := e.Standings()
		s.Require().Len(standings, 3)
		for i, p := range standings {
			s.Equal(i+1, p.PlayerNumber)
		}
	})

	s.Run("it rejects fewer than two players", func() {
		for _, count := range []int{-1, 0, 1} {
			e, err := New(&Config{PlayerCount: count, DiceCount: 5, MaxRolls: 3, Roller: s.mockRoller})
			s.Nil(e)
			s.True(errors.Is(err, ErrInvalidConfiguration))
		}
	})

	s.Run("it rejects bad dice and roll counts", func() {
		_, err := New(&Config{PlayerCount: 2, DiceCount: 0, MaxRolls: 3, Roller: s.mockRoller})
		s.ErrorIs(err, ErrInvalidConfiguration)

		_, err = New(&Config{PlayerCount: 2, DiceCount: 5, MaxRolls: 0, Roller: s.mockRoller})
		s.ErrorIs(err, ErrInvalidConfiguration)

		_, err = New(&Config{PlayerCount: 2, DiceCount: 5, MaxRolls: 3})
		s.ErrorIs(err, ErrInvalidConfiguration)

		_, err = New(nil)
		s.ErrorIs(err, ErrInvalidConfiguration)
	})
}

func (s *EngineTestSuite) TestRollDice() {
	e := s.newEngine(2, 2, 1, 1, 1, 1, 1)
	s.Require().NoError(e.HoldDie(2))

	s.expectRolls(6, 5, 4, 3)
	e.RollDice()

	faces := []int{}
	for _, d := range e.Dice() {
		faces = append(faces, d.FaceValue)
	}
	s.Equal([]int{6, 1, 5, 4, 3}, faces)
	s.Equal(1, e.CurrentPlayerRollsUsed())
	s.True(e.CurrentPlayerCanRoll())

	s.expectRolls(2, 2, 2, 2)
	e.RollDice()
	s.False(e.CurrentPlayerCanRoll())
	s.Equal(0, e.RollsRemaining())
}

func (s *EngineTestSuite) TestCanRollIgnoresHeldDice() {
	e := s.newEngine(2, 3, 6, 5, 4)
	for i := 1; i <= 3; i++ {
		s.Require().NoError(e.HoldDie(i))
	}

	s.True(e.AllDiceHeld())
	s.True(e.CurrentPlayerCanRoll())
}

func (s *EngineTestSuite) TestAutoHold() {
	s.Run("it returns false when no die shows the face", func() {
		e := s.newEngine(2, 3, 1, 2, 3, 2, 1)

		s.False(e.AutoHold(6))
		s.Empty(s.heldNumbers(e))
	})

	s.Run("it holds only the first unheld match", func() {
		e := s.newEngine(2, 3, 1, 6, 3, 6, 6)

		s.True(e.AutoHold(6))
		s.Equal([]int{2}, s.heldNumbers(e))
	})

	s.Run("it is idempotent", func() {
		e := s.newEngine(2, 3, 6, 5, 6, 2, 1)

		s.True(e.AutoHold(6))
		first := s.heldNumbers(e)

		s.True(e.AutoHold(6))
		s.Equal(first, s.heldNumbers(e))
		s.Equal([]int{1}, first)
	})

	s.Run("it returns false after a roll clears the face and true once it shows again", func() {
		e := s.newEngine(2, 5, 1, 1, 1, 1, 1)

		s.expectRolls(2, 3, 2, 3, 1)
		e.RollDice()
		s.False(e.AutoHold(5))
		s.Empty(s.heldNumbers(e))

		s.expectRolls(2, 5, 2, 5, 1)
		e.RollDice()
		s.True(e.AutoHold(5))
		s.Equal([]int{2}, s.heldNumbers(e))
	})
}

func (s *EngineTestSuite) TestAutoHoldSequence() {
	s.Run("it stops when the ship is missing", func() {
		e := s.newEngine(2, 3, 5, 4, 1, 2, 3)

		s.Equal(0, e.AutoHoldSequence())
		s.Empty(s.heldNumbers(e))
	})

	s.Run("it holds ship and captain without crew", func() {
		e := s.newEngine(2, 3, 5, 1, 6, 2, 3)

		s.Equal(2, e.AutoHoldSequence())
		s.Equal([]int{1, 3}, s.heldNumbers(e))
	})

	s.Run("it holds all three", func() {
		e := s.newEngine(2, 3, 4, 5, 6, 6, 3)

		s.Equal(3, e.AutoHoldSequence())
		s.Equal([]int{1, 2, 3}, s.heldNumbers(e))
	})
}

func (s *EngineTestSuite) TestHoldDie() {
	e := s.newEngine(2, 3, 1, 2, 3, 4, 5)

	s.Require().NoError(e.HoldDie(4))
	s.Require().NoError(e.HoldDie(4))
	s.Equal([]int{4}, s.heldNumbers(e))

	err := e.HoldDie(6)
	s.ErrorIs(err, ErrDieNotFound)

	err = e.HoldDie(0)
	s.ErrorIs(err, ErrDieNotFound)
	s.Equal([]int{4}, s.heldNumbers(e))
}

func (s *EngineTestSuite) TestScoreCurrentPlayer() {
	s.Run("it scores the cargo", func() {
		e := s.newEngine(2, 3, 6, 5, 4, 2, 3)

		s.True(e.HasShipCaptainCrew())
		s.Equal(5, e.ScoreCurrentPlayer())
		s.Equal(5, e.CurrentPlayerScore())
	})

	s.Run("it scores nothing without a crew", func() {
		e := s.newEngine(2, 3, 6, 5, 3, 3, 3)

		s.False(e.HasShipCaptainCrew())
		s.Equal(0, e.ScoreCurrentPlayer())
		s.Equal(0, e.CurrentPlayerScore())
	})

	s.Run("it ignores hold state", func() {
		e := s.newEngine(2, 3, 2, 4, 6, 6, 5)
		s.Require().NoError(e.HoldDie(1))

		s.Equal(8, e.ScoreCurrentPlayer())
	})

	s.Run("it double counts when called twice", func() {
		e := s.newEngine(2, 3, 6, 5, 4, 6, 6)

		e.ScoreCurrentPlayer()
		e.ScoreCurrentPlayer()
		s.Equal(24, e.CurrentPlayerScore())
	})
}

func (s *EngineTestSuite) TestNextPlayer() {
	e := s.newEngine(4, 3, 1, 2, 3, 4, 5)

	for expected := 2; expected <= 4; expected++ {
		s.False(e.IsLastTurn())
		s.True(e.NextPlayer())
		s.Equal(expected, e.CurrentPlayerNumber())
		s.Equal(expected-1, e.TurnCounter())
	}

	s.True(e.IsLastTurn())
	s.False(e.NextPlayer())
	s.Equal(4, e.CurrentPlayerNumber())
	s.Equal(3, e.TurnCounter())
}

func (s *EngineTestSuite) TestResetDice() {
	e := s.newEngine(2, 3, 6, 5, 4, 3, 2)
	for i := 1; i <= 5; i++ {
		s.Require().NoError(e.HoldDie(i))
	}

	e.ResetDice()

	s.False(e.AllDiceHeld())
	s.Empty(s.heldNumbers(e))
	faces := []int{}
	for _, d := range e.Dice() {
		faces = append(faces, d.FaceValue)
	}
	s.Equal([]int{6, 5, 4, 3, 2}, faces)
}

// playRound scores each player in turn with the given cargo values
func (s *EngineTestSuite) playRound(e *Engine, scores ...int) *models.RoundResult {
	for i, score := range scores {
		e.currentPlayer().AddToScore(score)
		if i < len(scores)-1 {
			s.Require().True(e.NextPlayer())
		}
	}
	s.Require().False(e.NextPlayer())
	return e.FinalizeRound()
}

func (s *EngineTestSuite) TestFinalizeRound() {
	s.Run("it awards a win to every player tied for the top score", func() {
		e := s.newEngine(4, 3, 1, 2, 3, 4, 5)

		result := s.playRound(e, 10, 30, 30, 5)

		s.Equal(1, result.Round)
		s.Equal(30, result.WinningScore)
		s.Equal([]int{2, 3}, result.Winners())

		order := []int{}
		for _, st := range result.Standings {
			order = append(order, st.PlayerNumber)
		}
		s.Equal([]int{2, 3, 1, 4}, order)

		byNumber := map[int]models.Standing{}
		for _, st := range e.Standings() {
			byNumber[st.PlayerNumber] = st
		}
		s.Equal(1, byNumber[2].Wins)
		s.Equal(1, byNumber[3].Wins)
		s.Equal(0, byNumber[1].Wins)
		s.Equal(1, byNumber[1].Losses)
		s.Equal(1, byNumber[4].Losses)

		s.Equal("Player 2: score 30, wins 1, losses 0\n"+
			"Player 3: score 30, wins 1, losses 0\n"+
			"Player 1: score 10, wins 0, losses 1\n"+
			"Player 4: score 5, wins 0, losses 1", result.Report())
	})

	s.Run("it accumulates tallies across rounds", func() {
		e := s.newEngine(3, 3, 1, 2, 3, 4, 5)

		s.playRound(e, 3, 7, 1)
		e.StartNewRound()
		s.Equal(2, e.CurrentPlayerNumber())
		s.Equal(2, e.Round())

		// turn order is now 2, 1, 3
		s.playRound(e, 2, 9, 4)
		e.StartNewRound()
		s.Equal(1, e.CurrentPlayerNumber())

		// turn order is now 1, 3, 2
		s.playRound(e, 0, 0, 0)

		byNumber := map[int]models.Standing{}
		for _, st := range e.Standings() {
			byNumber[st.PlayerNumber] = st
		}
		s.Equal(models.Standing{PlayerNumber: 1, Wins: 2, Losses: 1}, byNumber[1])
		s.Equal(models.Standing{PlayerNumber: 2, Wins: 2, Losses: 1}, byNumber[2])
		s.Equal(models.Standing{PlayerNumber: 3, Wins: 1, Losses: 2}, byNumber[3])
	})
}

func (s *EngineTestSuite) TestStartNewRound() {
	e := s.newEngine(3, 3, 6, 5, 4, 1, 1)
	s.Require().Equal(3, e.AutoHoldSequence())

	s.expectRolls(1, 1)
	e.RollDice()
	s.playRound(e, 4, 8, 2)

	e.StartNewRound()

	s.Equal(0, e.CurrentPlayerIndex())
	s.Equal(0, e.TurnCounter())
	s.Equal(2, e.CurrentPlayerNumber())
	for _, st := range e.Snapshot().Players {
		s.Equal(0, st.Score)
		s.Equal(0, st.RollsUsed)
		s.Equal(1, st.Wins+st.Losses)
	}
}

func (s *EngineTestSuite) TestOverallWinner() {
	s.Run("it picks the most wins", func() {
		e := s.newEngine(3, 3, 1, 2, 3, 4, 5)
		s.playRound(e, 1, 5, 2)
		e.StartNewRound()
		s.playRound(e, 6, 1, 2)

		winner, err := e.OverallWinner()
		s.Require().NoError(err)
		s.Equal(2, winner.PlayerNumber)
		s.Equal("Player 2: score 6, wins 2, losses 0", e.OverallWinnerReport())
	})

	s.Run("it breaks ties by turn order", func() {
		e := s.newEngine(2, 3, 1, 2, 3, 4, 5)
		s.playRound(e, 1, 5)
		e.StartNewRound()
		// order is 2, 1
		s.playRound(e, 0, 3)

		winner, err := e.OverallWinner()
		s.Require().NoError(err)
		s.Equal(1, winner.PlayerNumber)
		s.NotContains(e.OverallWinnerReport(), "[")
		s.NotContains(e.OverallWinnerReport(), "Optional")
	})
}

func (s *EngineTestSuite) TestDiceResults() {
	e := s.newEngine(2, 3, 6, 2)
	s.Require().NoError(e.HoldDie(1))

	s.Equal("Die 1: 6 (held)\nDie 2: 2", e.DiceResults())
}
