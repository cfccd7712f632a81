package game

import (
	"context"
	"errors"
	"fmt"
	"sync"

	engine "github.com/KirkDiggler/shipcaptaincrew/internal/game"
	"github.com/KirkDiggler/shipcaptaincrew/internal/models"
	sessionRepo "github.com/KirkDiggler/shipcaptaincrew/internal/repositories/session"
)

// liveSession pairs a stored session with its running engine. mu
// serializes every command on the session.
type liveSession struct {
	mu      sync.Mutex
	session *models.Session
	engine  *engine.Engine

	// evicted is set once the entry has been dropped from the cache; a
	// caller that was waiting on mu must reload
	evicted bool
}

// sessions caches live sessions by ID
type sessions struct {
	mu   sync.Mutex
	live map[string]*liveSession
}

func newSessions() *sessions {
	return &sessions{
		live: make(map[string]*liveSession),
	}
}

func (s *service) loadSession(ctx context.Context, sessionID string) (*liveSession, error) {
	if sessionID == "" {
		return nil, ErrInvalidSessionID
	}

	s.sessions.mu.Lock()
	defer s.sessions.mu.Unlock()

	if ls, ok := s.sessions.live[sessionID]; ok {
		return ls, nil
	}

	stored, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{
		SessionID: sessionID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	eng, err := engine.Restore(stored.Engine, s.diceRoller)
	if err != nil {
		return nil, fmt.Errorf("failed to restore session %s: %w", sessionID, err)
	}

	ls := &liveSession{
		session: stored,
		engine:  eng,
	}
	s.sessions.live[sessionID] = ls

	return ls, nil
}

// evict drops a live session from the cache. The caller holds ls.mu.
func (s *service) evict(ls *liveSession) {
	s.sessions.mu.Lock()
	defer s.sessions.mu.Unlock()

	if s.sessions.live[ls.session.ID] == ls {
		delete(s.sessions.live, ls.session.ID)
	}
	ls.evicted = true
}

// update runs fn with the session locked and saves the result. When fn or
// the save fails the cached engine is evicted, so the next call starts
// again from the last saved state.
func (s *service) update(ctx context.Context, sessionID string, fn func(ls *liveSession) error) error {
	for {
		ls, err := s.loadSession(ctx, sessionID)
		if err != nil {
			return err
		}

		ls.mu.Lock()
		if ls.evicted {
			ls.mu.Unlock()
			continue
		}

		err = fn(ls)
		if err == nil {
			err = s.saveSession(ctx, ls)
		}
		if err != nil {
			s.evict(ls)
		}

		ls.mu.Unlock()
		return err
	}
}

// view runs fn with the session locked, without saving
func (s *service) view(ctx context.Context, sessionID string, fn func(ls *liveSession) error) error {
	for {
		ls, err := s.loadSession(ctx, sessionID)
		if err != nil {
			return err
		}

		ls.mu.Lock()
		if ls.evicted {
			ls.mu.Unlock()
			continue
		}

		err = fn(ls)
		ls.mu.Unlock()
		return err
	}
}

func (s *service) saveSession(ctx context.Context, ls *liveSession) error {
	ls.session.Engine = ls.engine.Snapshot()
	ls.session.UpdatedAt = s.clock.Now()

	if err := s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{
		Session: ls.session,
	}); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

func newView(ls *liveSession) *GameView {
	eng := ls.engine

	return &GameView{
		SessionID:           ls.session.ID,
		Status:              ls.session.Status,
		Phase:               ls.session.Phase,
		Round:               eng.Round(),
		CurrentPlayerNumber: eng.CurrentPlayerNumber(),
		CurrentPlayerScore:  eng.CurrentPlayerScore(),
		RollsRemaining:      eng.RollsRemaining(),
		IsLastTurn:          eng.IsLastTurn(),
		Dice:                eng.Dice(),
		DiceResults:         eng.DiceResults(),
		AllDiceHeld:         eng.AllDiceHeld(),
		Players:             eng.Standings(),
	}
}

// requirePlaying checks that the session is mid-round
func requirePlaying(ls *liveSession) error {
	switch ls.session.Status {
	case models.SessionStatusCompleted:
		return ErrGameCompleted
	case models.SessionStatusRoundComplete:
		return ErrRoundComplete
	}
	return nil
}

// requireRolled checks that the current player has rolled this turn
func requireRolled(ls *liveSession) error {
	if err := requirePlaying(ls); err != nil {
		return err
	}
	if ls.session.Phase != models.TurnPhaseRolled {
		return ErrMustRollFirst
	}
	return nil
}
