package session

import (
	"errors"

	"github.com/KirkDiggler/shipcaptaincrew/internal/models"
)

// ErrSessionNotFound is returned when a session is not found
var ErrSessionNotFound = errors.New("session not found")

type SaveSessionInput struct {
	Session *models.Session
}

type GetSessionInput struct {
	SessionID string
}

type DeleteSessionInput struct {
	SessionID string
}

type GetActiveSessionsInput struct {
}

type GetActiveSessionsOutput struct {
	Sessions []*models.Session
}

func isActive(s *models.Session) bool {
	return s.Status != models.SessionStatusCompleted
}
