package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/shipcaptaincrew/internal/common/clock"
	"github.com/KirkDiggler/shipcaptaincrew/internal/common/uuid"
	"github.com/KirkDiggler/shipcaptaincrew/internal/dice"
	engine "github.com/KirkDiggler/shipcaptaincrew/internal/game"
	"github.com/KirkDiggler/shipcaptaincrew/internal/models"
	roundLedger "github.com/KirkDiggler/shipcaptaincrew/internal/repositories/round_ledger"
	sessionRepo "github.com/KirkDiggler/shipcaptaincrew/internal/repositories/session"
	"github.com/sirupsen/logrus"
)

const (
	defaultPlayerCount = 2
	defaultDiceCount   = 5
	defaultMaxRolls    = 3
)

// service implements the Service interface
type service struct {
	defaultPlayerCount int
	defaultDiceCount   int
	defaultMaxRolls    int

	sessionRepo   sessionRepo.Repository
	roundLedger   roundLedger.Repository
	diceRoller    dice.Roller
	clock         clock.Clock
	uuidGenerator uuid.UUID
	logger        logrus.FieldLogger

	sessions *sessions
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}
	if cfg.RoundLedger == nil {
		return nil, ErrNilRoundLedger
	}
	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	s := &service{
		defaultPlayerCount: cfg.DefaultPlayerCount,
		defaultDiceCount:   cfg.DefaultDiceCount,
		defaultMaxRolls:    cfg.DefaultMaxRolls,
		sessionRepo:        cfg.SessionRepo,
		roundLedger:        cfg.RoundLedger,
		diceRoller:         cfg.DiceRoller,
		clock:              cfg.Clock,
		uuidGenerator:      cfg.UUIDGenerator,
		logger:             logger,
		sessions:           newSessions(),
	}

	if s.defaultPlayerCount == 0 {
		s.defaultPlayerCount = defaultPlayerCount
	}
	if s.defaultDiceCount == 0 {
		s.defaultDiceCount = defaultDiceCount
	}
	if s.defaultMaxRolls == 0 {
		s.defaultMaxRolls = defaultMaxRolls
	}

	return s, nil
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

// CreateGame creates a new game session
func (s *service) CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	eng, err := engine.New(&engine.Config{
		PlayerCount: orDefault(input.PlayerCount, s.defaultPlayerCount),
		DiceCount:   orDefault(input.DiceCount, s.defaultDiceCount),
		MaxRolls:    orDefault(input.MaxRolls, s.defaultMaxRolls),
		Roller:      s.diceRoller,
	})
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	ls := &liveSession{
		session: &models.Session{
			ID:        s.uuidGenerator.NewUUID(),
			Status:    models.SessionStatusActive,
			Phase:     models.TurnPhaseAwaitingRoll,
			CreatedAt: now,
		},
		engine: eng,
	}

	if err := s.saveSession(ctx, ls); err != nil {
		return nil, err
	}

	s.sessions.mu.Lock()
	s.sessions.live[ls.session.ID] = ls
	s.sessions.mu.Unlock()

	s.logger.WithFields(logrus.Fields{
		"session_id": ls.session.ID,
		"players":    len(eng.Standings()),
		"max_rolls":  eng.MaxRolls(),
	}).Info("game created")

	return &CreateGameOutput{
		SessionID: ls.session.ID,
		Game:      newView(ls),
	}, nil
}

// GetGame returns the current view of a session
func (s *service) GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var output *GetGameOutput
	err := s.view(ctx, input.SessionID, func(ls *liveSession) error {
		output = &GetGameOutput{Game: newView(ls)}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// ListGames returns every session that has not ended
func (s *service) ListGames(ctx context.Context, input *ListGamesInput) (*ListGamesOutput, error) {
	active, err := s.sessionRepo.GetActiveSessions(ctx, &sessionRepo.GetActiveSessionsInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	games := make([]*GameView, 0, len(active.Sessions))
	for _, stored := range active.Sessions {
		output, err := s.GetGame(ctx, &GetGameInput{SessionID: stored.ID})
		if err != nil {
			// A session can expire or be deleted between the two reads
			if errors.Is(err, ErrSessionNotFound) {
				continue
			}
			return nil, err
		}
		games = append(games, output.Game)
	}

	return &ListGamesOutput{
		Games: games,
	}, nil
}

// RollDice rolls the unheld dice for the current player
func (s *service) RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var output *RollDiceOutput
	err := s.update(ctx, input.SessionID, func(ls *liveSession) error {
		if err := requirePlaying(ls); err != nil {
			return err
		}

		eng := ls.engine
		if !eng.CurrentPlayerCanRoll() {
			return ErrNoRollsRemaining
		}
		if ls.session.Phase == models.TurnPhaseRolled && eng.AllDiceHeld() {
			return ErrAllDiceHeld
		}

		eng.RollDice()
		ls.session.Phase = models.TurnPhaseRolled

		held := 0
		if input.AutoHold {
			held = eng.AutoHoldSequence()
		}

		output = &RollDiceOutput{
			PlayerNumber:        eng.CurrentPlayerNumber(),
			Dice:                eng.Dice(),
			RollsRemaining:      eng.RollsRemaining(),
			ShipCaptainCrewHeld: held,
			HasShipCaptainCrew:  eng.HasShipCaptainCrew(),
			PotentialScore:      eng.CargoScore(),
			CanRoll:             eng.CurrentPlayerCanRoll() && !eng.AllDiceHeld(),
		}

		s.logger.WithFields(logrus.Fields{
			"session_id": ls.session.ID,
			"player":     output.PlayerNumber,
			"rolls_left": output.RollsRemaining,
			"held":       held,
		}).Debug("dice rolled")

		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// AutoHold holds one die showing a face value
func (s *service) AutoHold(ctx context.Context, input *AutoHoldInput) (*AutoHoldOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var output *AutoHoldOutput
	err := s.update(ctx, input.SessionID, func(ls *liveSession) error {
		if err := requireRolled(ls); err != nil {
			return err
		}

		held := ls.engine.AutoHold(input.FaceValue)
		output = &AutoHoldOutput{
			Held: held,
			Dice: ls.engine.Dice(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// HoldDie holds a die by its number
func (s *service) HoldDie(ctx context.Context, input *HoldDieInput) (*HoldDieOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var output *HoldDieOutput
	err := s.update(ctx, input.SessionID, func(ls *liveSession) error {
		if err := requireRolled(ls); err != nil {
			return err
		}

		if err := ls.engine.HoldDie(input.DieNumber); err != nil {
			return err
		}

		output = &HoldDieOutput{
			Dice: ls.engine.Dice(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// EndTurn scores the current player once, releases the dice and moves on.
// After the last player the round is finalized and recorded in the ledger.
func (s *service) EndTurn(ctx context.Context, input *EndTurnInput) (*EndTurnOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var output *EndTurnOutput
	err := s.update(ctx, input.SessionID, func(ls *liveSession) error {
		if err := requireRolled(ls); err != nil {
			return err
		}

		eng := ls.engine
		output = &EndTurnOutput{
			PlayerNumber: eng.CurrentPlayerNumber(),
			Points:       eng.ScoreCurrentPlayer(),
			Score:        eng.CurrentPlayerScore(),
		}
		ls.session.Phase = models.TurnPhaseScored
		eng.ResetDice()

		logger := s.logger.WithFields(logrus.Fields{
			"session_id": ls.session.ID,
			"round":      eng.Round(),
			"player":     output.PlayerNumber,
		})
		logger.WithField("points", output.Points).Info("turn scored")

		if eng.NextPlayer() {
			ls.session.Phase = models.TurnPhaseAwaitingRoll
			output.NextPlayerNumber = eng.CurrentPlayerNumber()
			return nil
		}

		result := eng.FinalizeRound()
		result.SessionID = ls.session.ID
		result.CompletedAt = s.clock.Now()

		// A round already in the ledger was recorded by an earlier attempt
		// whose session save failed; the replayed turn produces the same result
		if err := s.roundLedger.AddRoundResult(ctx, &roundLedger.AddRoundResultInput{
			Result: result,
		}); err != nil {
			if !errors.Is(err, roundLedger.ErrRoundAlreadyRecorded) {
				return fmt.Errorf("failed to record round: %w", err)
			}
			logger.Warn("round already recorded")
		}

		ls.session.Status = models.SessionStatusRoundComplete
		output.RoundComplete = true
		output.RoundResult = result
		output.Report = result.Report()

		logger.WithFields(logrus.Fields{
			"winning_score": result.WinningScore,
			"winners":       result.Winners(),
		}).Info("round finalized")

		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// StartNewRound begins the next round with the previous leader first
func (s *service) StartNewRound(ctx context.Context, input *StartNewRoundInput) (*StartNewRoundOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var output *StartNewRoundOutput
	err := s.update(ctx, input.SessionID, func(ls *liveSession) error {
		switch ls.session.Status {
		case models.SessionStatusCompleted:
			return ErrGameCompleted
		case models.SessionStatusActive:
			return ErrRoundInProgress
		}

		ls.engine.ResetDice()
		ls.engine.StartNewRound()
		ls.session.Status = models.SessionStatusActive
		ls.session.Phase = models.TurnPhaseAwaitingRoll

		output = &StartNewRoundOutput{
			Round:               ls.engine.Round(),
			CurrentPlayerNumber: ls.engine.CurrentPlayerNumber(),
			Game:                newView(ls),
		}

		s.logger.WithFields(logrus.Fields{
			"session_id": ls.session.ID,
			"round":      output.Round,
			"first":      output.CurrentPlayerNumber,
		}).Info("round started")

		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// EndGame concludes a session and reports the overall winner. A round in
// progress is abandoned and does not count.
func (s *service) EndGame(ctx context.Context, input *EndGameInput) (*EndGameOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var output *EndGameOutput
	err := s.update(ctx, input.SessionID, func(ls *liveSession) error {
		if ls.session.Status == models.SessionStatusCompleted {
			return ErrGameCompleted
		}

		winner, err := ls.engine.OverallWinner()
		if err != nil {
			return err
		}

		rounds := ls.engine.Round()
		if ls.session.Status == models.SessionStatusActive {
			rounds--
		}

		ls.session.Status = models.SessionStatusCompleted
		output = &EndGameOutput{
			Winner:       winner,
			Report:       ls.engine.OverallWinnerReport(),
			RoundsPlayed: rounds,
		}

		s.logger.WithFields(logrus.Fields{
			"session_id": ls.session.ID,
			"winner":     winner.PlayerNumber,
			"wins":       winner.Wins,
		}).Info("game ended")

		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// GetRoundHistory returns every finished round of a session
func (s *service) GetRoundHistory(ctx context.Context, input *GetRoundHistoryInput) (*GetRoundHistoryOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if input.SessionID == "" {
		return nil, ErrInvalidSessionID
	}

	// Read under the session lock so a round being recorded is either
	// fully in the history or not in it at all
	var output *GetRoundHistoryOutput
	err := s.view(ctx, input.SessionID, func(ls *liveSession) error {
		results, err := s.roundLedger.GetRoundResults(ctx, &roundLedger.GetRoundResultsInput{
			SessionID: input.SessionID,
		})
		if err != nil {
			return fmt.Errorf("failed to get round results: %w", err)
		}

		wins, err := s.roundLedger.GetWinCounts(ctx, &roundLedger.GetWinCountsInput{
			SessionID: input.SessionID,
		})
		if err != nil {
			return fmt.Errorf("failed to get win counts: %w", err)
		}

		output = &GetRoundHistoryOutput{
			Results: results.Results,
			Wins:    wins.Wins,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// DeleteGame removes a session and its history
func (s *service) DeleteGame(ctx context.Context, input *DeleteGameInput) (*DeleteGameOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	err := s.view(ctx, input.SessionID, func(ls *liveSession) error {
		if err := s.sessionRepo.DeleteSession(ctx, &sessionRepo.DeleteSessionInput{
			SessionID: ls.session.ID,
		}); err != nil && !errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return fmt.Errorf("failed to delete session: %w", err)
		}

		s.evict(ls)

		if err := s.roundLedger.DeleteRoundResults(ctx, &roundLedger.DeleteRoundResultsInput{
			SessionID: ls.session.ID,
		}); err != nil {
			return fmt.Errorf("failed to delete round results: %w", err)
		}

		s.logger.WithField("session_id", ls.session.ID).Info("game deleted")
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &DeleteGameOutput{
		Success: true,
	}, nil
}
