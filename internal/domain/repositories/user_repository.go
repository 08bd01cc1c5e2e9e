package repositories

import (
	"context"

	"pratham.backend/internal/domain/entities"
)

// UserRepository defines administrative account data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByUsername(ctx context.Context, username string) (*entities.User, error)
}
