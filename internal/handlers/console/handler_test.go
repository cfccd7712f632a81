package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/KirkDiggler/shipcaptaincrew/internal/models"
	gameService "github.com/KirkDiggler/shipcaptaincrew/internal/services/game"
	gameMocks "github.com/KirkDiggler/shipcaptaincrew/internal/services/game/mocks"
	"github.com/KirkDiggler/shipcaptaincrew/internal/services/messaging"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ConsoleHandlerTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockGameService *gameMocks.MockService
	messaging       messaging.Service
	output          *bytes.Buffer
	ctx             context.Context

	testSessionID string
	players       []models.Standing
}

func (s *ConsoleHandlerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGameService = gameMocks.NewMockService(s.mockCtrl)

	msg, err := messaging.NewService(&messaging.Config{Seed: 1})
	s.Require().NoError(err)
	s.messaging = msg

	s.output = &bytes.Buffer{}
	s.ctx = context.Background()
	s.testSessionID = "console-session"
	s.players = []models.Standing{{PlayerNumber: 1}, {PlayerNumber: 2}}

	s.mockGameService.EXPECT().GetGame(gomock.Any(), &gameService.GetGameInput{SessionID: s.testSessionID}).
		Return(&gameService.GetGameOutput{
			Game: &gameService.GameView{
				SessionID:           s.testSessionID,
				Round:               1,
				CurrentPlayerNumber: 1,
				RollsRemaining:      3,
				DiceResults:         "Die 1: 2\nDie 2: 3",
				Players:             s.players,
			},
		}, nil).AnyTimes()
}

func TestConsoleHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ConsoleHandlerTestSuite))
}

// newHandler expects the game to be created once Run starts
func (s *ConsoleHandlerTestSuite) newHandler(input io.Reader) *Handler {
	logger, _ := logtest.NewNullLogger()

	s.mockGameService.EXPECT().CreateGame(gomock.Any(), &gameService.CreateGameInput{PlayerCount: 2, MaxRolls: 3}).
		Return(&gameService.CreateGameOutput{
			SessionID: s.testSessionID,
			Game:      &gameService.GameView{SessionID: s.testSessionID, Players: s.players},
		}, nil)

	h, err := New(&Config{
		GameService:      s.mockGameService,
		MessagingService: s.messaging,
		Input:            input,
		Output:           s.output,
		PlayerCount:      2,
		MaxRolls:         3,
		Logger:           logger,
	})
	s.Require().NoError(err)
	return h
}

func (s *ConsoleHandlerTestSuite) expectEndGame(rounds int, report string) {
	s.mockGameService.EXPECT().EndGame(gomock.Any(), &gameService.EndGameInput{SessionID: s.testSessionID}).
		Return(&gameService.EndGameOutput{
			Winner:       models.Standing{PlayerNumber: 1, Wins: rounds},
			Report:       report,
			RoundsPlayed: rounds,
		}, nil)
}

func (s *ConsoleHandlerTestSuite) roundResult() *models.RoundResult {
	return &models.RoundResult{
		SessionID:    s.testSessionID,
		Round:        1,
		WinningScore: 5,
		Standings: []models.Standing{
			{PlayerNumber: 1, Score: 5, Wins: 1, Won: true},
			{PlayerNumber: 2, Score: 0, Losses: 1},
		},
	}
}

func (s *ConsoleHandlerTestSuite) TestNew() {
	_, err := New(nil)
	s.Error(err)

	_, err = New(&Config{MessagingService: s.messaging, Input: strings.NewReader(""), Output: s.output})
	s.Error(err)

	_, err = New(&Config{GameService: s.mockGameService, Input: strings.NewReader(""), Output: s.output})
	s.Error(err)

	_, err = New(&Config{GameService: s.mockGameService, MessagingService: s.messaging})
	s.Error(err)
}

func (s *ConsoleHandlerTestSuite) TestFullRound() {
	h := s.newHandler(strings.NewReader("r\nh 4\ns\nroll\nstop\nn\n"))

	firstRoll := s.mockGameService.EXPECT().RollDice(gomock.Any(), &gameService.RollDiceInput{SessionID: s.testSessionID, AutoHold: true}).
		Return(&gameService.RollDiceOutput{
			PlayerNumber: 1,
			Dice: []models.DieState{
				{Number: 1, FaceValue: 6, Held: true},
				{Number: 2, FaceValue: 5, Held: true},
				{Number: 3, FaceValue: 4, Held: true},
				{Number: 4, FaceValue: 3},
			},
			RollsRemaining:      2,
			ShipCaptainCrewHeld: 3,
			HasShipCaptainCrew:  true,
			PotentialScore:      3,
			CanRoll:             true,
		}, nil)
	s.mockGameService.EXPECT().RollDice(gomock.Any(), gomock.Any()).
		Return(&gameService.RollDiceOutput{
			PlayerNumber:   2,
			Dice:           []models.DieState{{Number: 1, FaceValue: 1}},
			RollsRemaining: 0,
			CanRoll:        false,
		}, nil).After(firstRoll)

	s.mockGameService.EXPECT().HoldDie(gomock.Any(), &gameService.HoldDieInput{SessionID: s.testSessionID, DieNumber: 4}).
		Return(&gameService.HoldDieOutput{
			Dice: []models.DieState{{Number: 4, FaceValue: 3, Held: true}},
		}, nil)

	result := s.roundResult()
	firstTurn := s.mockGameService.EXPECT().EndTurn(gomock.Any(), &gameService.EndTurnInput{SessionID: s.testSessionID}).
		Return(&gameService.EndTurnOutput{
			PlayerNumber:     1,
			Points:           3,
			Score:            3,
			NextPlayerNumber: 2,
		}, nil)
	s.mockGameService.EXPECT().EndTurn(gomock.Any(), gomock.Any()).
		Return(&gameService.EndTurnOutput{
			PlayerNumber:  2,
			RoundComplete: true,
			RoundResult:   result,
			Report:        result.Report(),
		}, nil).After(firstTurn)

	s.expectEndGame(1, "Player 1: score 5, wins 1, losses 0")

	s.Require().NoError(h.Run(s.ctx))

	out := s.output.String()
	s.Contains(out, "Ship, Captain and Crew with 2 players.")
	s.Contains(out, "Player 1 (3 rolls left)> ")
	s.Contains(out, "Die 1: 6 (held)\nDie 2: 5 (held)\nDie 3: 4 (held)\nDie 4: 3\n")
	s.Contains(out, "Die 4: 3 (held)")
	s.Contains(out, "Player 2 is up.")
	s.Contains(out, "That was the last roll.")
	s.Contains(out, "Type stop to end your turn.")
	s.Contains(out, "Player 1: score 5, wins 1, losses 0\nPlayer 2: score 0, wins 0, losses 1")
	s.Contains(out, "Round 1 goes to Player 1")
	s.Contains(out, "Play another round? (y/n) ")
	s.Contains(out, "Game over after 1 rounds. Overall winner:\nPlayer 1: score 5, wins 1, losses 0")
}

func (s *ConsoleHandlerTestSuite) TestNextRound() {
	h := s.newHandler(strings.NewReader("s\nmaybe\ny\nq\n"))

	result := s.roundResult()
	s.mockGameService.EXPECT().EndTurn(gomock.Any(), gomock.Any()).
		Return(&gameService.EndTurnOutput{
			PlayerNumber:  2,
			RoundComplete: true,
			RoundResult:   result,
			Report:        result.Report(),
		}, nil)
	s.mockGameService.EXPECT().StartNewRound(gomock.Any(), &gameService.StartNewRoundInput{SessionID: s.testSessionID}).
		Return(&gameService.StartNewRoundOutput{Round: 2, CurrentPlayerNumber: 1}, nil)
	s.expectEndGame(1, "Player 1: score 0, wins 1, losses 0")

	s.Require().NoError(h.Run(s.ctx))

	out := s.output.String()
	s.Equal(2, strings.Count(out, "Play another round? (y/n) "))
	s.Contains(out, "Round 2. Player 1 goes first.")
	s.Contains(out, "Overall winner:\nPlayer 1: score 0, wins 1, losses 0")
}

func (s *ConsoleHandlerTestSuite) TestErrorsAndUnknownCommands() {
	h := s.newHandler(strings.NewReader("hold x\nhold\nfly\n\nr\n"))

	s.mockGameService.EXPECT().RollDice(gomock.Any(), gomock.Any()).Return(nil, gameService.ErrNoRollsRemaining)
	s.expectEndGame(0, "Player 1: score 0, wins 0, losses 0")

	// input ending is the same as quitting
	s.Require().NoError(h.Run(s.ctx))

	out := s.output.String()
	s.Contains(out, `"x" is not a die number.`)
	s.Contains(out, "Usage: hold N")
	s.Contains(out, `Unknown command "fly".`)
	s.Contains(out, "rolls")
	s.Contains(out, "Game over after 0 rounds.")
}

func (s *ConsoleHandlerTestSuite) TestInformationCommands() {
	h := s.newHandler(strings.NewReader("dice\nscore\nhistory\nhelp\nquit\n"))

	s.mockGameService.EXPECT().GetRoundHistory(gomock.Any(), &gameService.GetRoundHistoryInput{SessionID: s.testSessionID}).
		Return(&gameService.GetRoundHistoryOutput{
			Results: []*models.RoundResult{s.roundResult()},
			Wins:    map[int]int{1: 1},
		}, nil)
	s.expectEndGame(1, "Player 1: score 0, wins 1, losses 0")

	s.Require().NoError(h.Run(s.ctx))

	out := s.output.String()
	s.Contains(out, "Die 1: 2\nDie 2: 3")
	s.Contains(out, "Round 1\nPlayer 1: score 0, wins 0, losses 0\nPlayer 2: score 0, wins 0, losses 0")
	s.Contains(out, "Round 1: Player 1 with 5\nPlayer 1 has won 1\nPlayer 2 has won 0")
	s.Contains(out, "hold N (h)")
	s.Contains(out, "quit (q)")
}

func (s *ConsoleHandlerTestSuite) TestCancelledContextEndsGame() {
	pr, pw := io.Pipe()
	defer pw.Close()

	h := s.newHandler(pr)
	s.expectEndGame(0, "Player 1: score 0, wins 0, losses 0")

	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	err := h.Run(ctx)
	s.ErrorIs(err, context.Canceled)
	s.Contains(s.output.String(), "Overall winner:")
}
