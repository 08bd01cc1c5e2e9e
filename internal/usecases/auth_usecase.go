package usecases

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"pratham.backend/internal/domain/entities"
	domainerrors "pratham.backend/internal/domain/errors"
	"pratham.backend/pkg/logger"
	"pratham.backend/pkg/redis"
)

// Hardcoded admin panel credential pair. The users table is bypassed by
// this check; see the seeding in cmd/server.
const (
	adminUsername = "admin"
	adminPassword = "admin123"

	adminSessionTTL = 24 * time.Hour
)

// AdminSessionRecorder records issued admin tokens
type AdminSessionRecorder interface {
	CreateSession(ctx context.Context, token string, data *redis.AdminSession, expiration time.Duration) error
}

// AuthUsecase handles admin panel authentication
type AuthUsecase struct {
	sessions AdminSessionRecorder
	now      func() time.Time
}

// NewAuthUsecase creates a new auth usecase. sessions may be nil when no
// session store is available; login does not depend on it.
func NewAuthUsecase(sessions AdminSessionRecorder) *AuthUsecase {
	return &AuthUsecase{
		sessions: sessions,
		now:      time.Now,
	}
}

// AdminLogin checks the fixed credential pair and mints the placeholder
// token string the admin panel stores. Any other pair, including case
// variants and empty strings, is rejected.
func (u *AuthUsecase) AdminLogin(ctx context.Context, input *entities.AdminLoginInput) (*entities.AdminLoginResponse, error) {
	if input.Username != adminUsername || input.Password != adminPassword {
		return nil, domainerrors.Unauthorized("Invalid username or password")
	}

	now := u.now()
	token := fmt.Sprintf("dummy-jwt-token-%d", now.UnixMilli())

	if u.sessions != nil {
		session := &redis.AdminSession{Username: input.Username, IssuedAt: now}
		if err := u.sessions.CreateSession(ctx, token, session, adminSessionTTL); err != nil {
			logger.Warn(ctx, "failed to record admin session", zap.Error(err))
		}
	}

	return &entities.AdminLoginResponse{
		Success: true,
		Token:   token,
		Message: "Login successful",
	}, nil
}
