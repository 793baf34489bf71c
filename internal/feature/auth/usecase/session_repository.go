package usecase

import (
	"context"

	"receitas_backend/internal/feature/auth/domain/entity"
)

// SessionRepository abstracts the persistence layer for session entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type SessionRepository interface {
	// Create persists a new session to the storage.
	Create(ctx context.Context, session *entity.Session) error

	// FindByToken retrieves a session by its token value.
	// It returns ErrSessionNotFound if no session matches.
	FindByToken(ctx context.Context, token string) (*entity.Session, error)
}
