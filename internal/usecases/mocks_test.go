package usecases

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"pratham.backend/internal/domain/entities"
	domainerrors "pratham.backend/internal/domain/errors"
	"pratham.backend/pkg/logger"
	"pratham.backend/pkg/redis"
)

func TestMain(m *testing.M) {
	logger.Init("development")
	os.Exit(m.Run())
}

// submissionRepoStub is an in-memory SubmissionRepository for usecase tests
type submissionRepoStub struct {
	rows      map[uuid.UUID]*entities.Submission
	createErr error
	scoreErr  error
	verifyErr error
}

func newSubmissionRepoStub() *submissionRepoStub {
	return &submissionRepoStub{rows: map[uuid.UUID]*entities.Submission{}}
}

func (s *submissionRepoStub) Create(_ context.Context, submission *entities.Submission) error {
	if s.createErr != nil {
		return s.createErr
	}
	if submission.ID == uuid.Nil {
		submission.ID = uuid.New()
	}
	if submission.SubmittedAt.IsZero() {
		submission.SubmittedAt = time.Now()
	}
	if submission.Status == "" {
		submission.Status = entities.SubmissionStatusPending
	}
	s.rows[submission.ID] = submission
	return nil
}

func (s *submissionRepoStub) List(context.Context) ([]*entities.Submission, error) {
	out := make([]*entities.Submission, 0, len(s.rows))
	for _, row := range s.rows {
		out = append(out, row)
	}
	return out, nil
}

func (s *submissionRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.Submission, error) {
	row, ok := s.rows[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return row, nil
}

func (s *submissionRepoStub) GetByPhone(_ context.Context, phone string) (*entities.Submission, error) {
	var latest *entities.Submission
	for _, row := range s.rows {
		if row.Phone != phone {
			continue
		}
		if latest == nil || row.SubmittedAt.After(latest.SubmittedAt) {
			latest = row
		}
	}
	if latest == nil {
		return nil, domainerrors.ErrNotFound
	}
	return latest, nil
}

func (s *submissionRepoStub) SetOTP(_ context.Context, id uuid.UUID, code string) error {
	row, ok := s.rows[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	row.OTPCode.SetValid(code)
	row.OTPVerified = 0
	return nil
}

func (s *submissionRepoStub) VerifyOTP(_ context.Context, id uuid.UUID, code string) (bool, error) {
	if s.verifyErr != nil {
		return false, s.verifyErr
	}
	row, ok := s.rows[id]
	if !ok {
		return false, nil
	}
	if !row.OTPCode.Valid || row.OTPCode.String != code {
		return false, nil
	}
	row.OTPVerified = 1
	return true, nil
}

func (s *submissionRepoStub) SetScore(_ context.Context, id uuid.UUID, score int) error {
	if s.scoreErr != nil {
		return s.scoreErr
	}
	row, ok := s.rows[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	row.EligibilityScore.SetValid(score)
	return nil
}

func (s *submissionRepoStub) SetStatus(_ context.Context, id uuid.UUID, status string) error {
	row, ok := s.rows[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	row.Status = status
	return nil
}

// seqRand returns a fixed sequence of draws, then zeroes
type seqRand struct {
	values []int
	idx    int
}

func (r *seqRand) Intn(int) int {
	if r.idx >= len(r.values) {
		return 0
	}
	v := r.values[r.idx]
	r.idx++
	return v
}

// rendererStub returns canned bytes
type rendererStub struct {
	data []byte
	err  error
}

func (r rendererStub) Render(*entities.Submission, time.Time) ([]byte, error) {
	return r.data, r.err
}

// sessionRecorderStub captures recorded admin sessions
type sessionRecorderStub struct {
	tokens map[string]*redis.AdminSession
	err    error
}

func newSessionRecorderStub() *sessionRecorderStub {
	return &sessionRecorderStub{tokens: map[string]*redis.AdminSession{}}
}

func (s *sessionRecorderStub) CreateSession(_ context.Context, token string, data *redis.AdminSession, _ time.Duration) error {
	if s.err != nil {
		return s.err
	}
	s.tokens[token] = data
	return nil
}
