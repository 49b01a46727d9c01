package processor

import (
	"context"

	"engage-server/internal/store"

	"github.com/google/uuid"
)

// AuthStore defines the database operations required by AuthProcessor
type AuthStore interface {
	GetUserByEmail(ctx context.Context, email string) (store.User, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (store.User, error)
	TouchLastLogin(ctx context.Context, userID uuid.UUID) error
}

// EventPublisher defines the events AuthProcessor emits
type EventPublisher interface {
	PasswordResetRequested(ctx context.Context, userID uuid.UUID, email string)
}
