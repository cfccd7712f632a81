package session

import (
	"context"
	"errors"
	"sync"

	"github.com/KirkDiggler/shipcaptaincrew/internal/models"
)

// memoryRepository keeps sessions in process memory. Sessions are stored
// as deep copies so callers never share state with the store.
type memoryRepository struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
}

// NewMemory creates an in-process session repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		sessions: make(map[string]*models.Session),
	}
}

func (r *memoryRepository) SaveSession(ctx context.Context, input *SaveSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}

	if input.Session.ID == "" {
		return errors.New("session ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[input.Session.ID] = cloneSession(input.Session)
	return nil
}

func (r *memoryRepository) GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[input.SessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return cloneSession(s), nil
}

func (r *memoryRepository) DeleteSession(ctx context.Context, input *DeleteSessionInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[input.SessionID]; !ok {
		return ErrSessionNotFound
	}
	delete(r.sessions, input.SessionID)
	return nil
}

func (r *memoryRepository) GetActiveSessions(ctx context.Context, input *GetActiveSessionsInput) (*GetActiveSessionsOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sessions := make([]*models.Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		if isActive(s) {
			sessions = append(sessions, cloneSession(s))
		}
	}

	return &GetActiveSessionsOutput{
		Sessions: sessions,
	}, nil
}

func cloneSession(s *models.Session) *models.Session {
	out := *s
	if s.Engine != nil {
		engine := *s.Engine
		engine.Players = append([]models.PlayerState(nil), s.Engine.Players...)
		engine.Dice = append([]models.DieState(nil), s.Engine.Dice...)
		out.Engine = &engine
	}
	return &out
}
