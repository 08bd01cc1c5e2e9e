package repositories

import (
	"context"

	"github.com/google/uuid"
	"pratham.backend/internal/domain/entities"
)

// SubmissionRepository defines submission data operations
type SubmissionRepository interface {
	// Create assigns the id and submission timestamp and persists the row.
	Create(ctx context.Context, submission *entities.Submission) error
	// List returns every submission, most recent first.
	List(ctx context.Context) ([]*entities.Submission, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Submission, error)
	// GetByPhone returns the most recent submission for a phone number.
	GetByPhone(ctx context.Context, phone string) (*entities.Submission, error)
	// SetOTP stores a new code and resets the verified flag.
	SetOTP(ctx context.Context, id uuid.UUID, code string) error
	// VerifyOTP flips the verified flag only on exact code equality.
	// An unknown id or mismatched code reports false with no state change.
	VerifyOTP(ctx context.Context, id uuid.UUID, code string) (bool, error)
	SetScore(ctx context.Context, id uuid.UUID, score int) error
	SetStatus(ctx context.Context, id uuid.UUID, status string) error
}
