package usecases

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"pratham.backend/internal/domain/entities"
	domainerrors "pratham.backend/internal/domain/errors"
	"pratham.backend/internal/domain/repositories"
	"pratham.backend/pkg/logger"
)

const (
	otpMin  = 100000
	otpSpan = 900000

	scoreMin  = 70
	scoreSpan = 26 // inclusive range [70, 95]

	eligibleThreshold      = 70
	strongProfileThreshold = 80
)

// Advisory messages selected purely by the score threshold
const (
	strongProfileMessage     = "You have a strong profile for Canada study visa. Consider improving your writing score to increase chances further."
	developingProfileMessage = "Your profile shows potential, but we recommend strengthening certain areas before applying. Our counselors can provide personalized guidance to improve your chances."
)

// RandSource yields the random draws behind OTP codes and eligibility
// scores. Tests substitute a deterministic source.
type RandSource interface {
	Intn(n int) int
}

type mathRandSource struct {
	rng *rand.Rand
}

func (s mathRandSource) Intn(n int) int { return s.rng.Intn(n) }

// NewMathRandSource returns the default pseudo-random source
func NewMathRandSource() RandSource {
	return mathRandSource{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// ReportRenderer renders the eligibility report document for a submission
type ReportRenderer interface {
	Render(submission *entities.Submission, generatedAt time.Time) ([]byte, error)
}

// EligibilityUsecase orchestrates the lead funnel: contact submission,
// OTP verification with scoring, and the gated report download.
type EligibilityUsecase struct {
	submissionRepo repositories.SubmissionRepository
	renderer       ReportRenderer
	rng            RandSource
	exposeOTP      bool
}

// NewEligibilityUsecase creates a new eligibility usecase. exposeOTP echoes
// the generated code in the submit response (non-production builds only;
// SMS delivery is not implemented).
func NewEligibilityUsecase(
	submissionRepo repositories.SubmissionRepository,
	renderer ReportRenderer,
	rng RandSource,
	exposeOTP bool,
) *EligibilityUsecase {
	return &EligibilityUsecase{
		submissionRepo: submissionRepo,
		renderer:       renderer,
		rng:            rng,
		exposeOTP:      exposeOTP,
	}
}

// SubmitContact creates a pending submission with a freshly generated
// 6-digit OTP attached.
func (u *EligibilityUsecase) SubmitContact(ctx context.Context, input *entities.SubmitContactInput) (*entities.SubmitContactResponse, error) {
	code := u.generateOTP()

	submission := &entities.Submission{
		FullName: input.FullName,
		Email:    input.Email,
		Phone:    input.Phone,
		City:     input.City,
		OTPCode:  null.StringFrom(code),
		Status:   entities.SubmissionStatusPending,
	}

	if err := u.submissionRepo.Create(ctx, submission); err != nil {
		return nil, err
	}

	logger.Info(ctx, "submission created",
		zap.String("submission_id", submission.ID.String()),
		zap.String("city", submission.City),
	)

	resp := &entities.SubmitContactResponse{
		ID:      submission.ID,
		Message: "OTP sent to your phone number",
	}
	if u.exposeOTP {
		resp.OTPCode = code
	}
	return resp, nil
}

// VerifyOTP checks the submitted code and, on a match, draws and persists
// the eligibility score. The stored code stays valid after verification,
// so a repeat call with the same code recomputes and overwrites the score.
func (u *EligibilityUsecase) VerifyOTP(ctx context.Context, input *entities.VerifyOTPInput) (*entities.EligibilityResult, error) {
	ok, err := u.submissionRepo.VerifyOTP(ctx, input.SubmissionID, input.OTP)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domainerrors.NewAppError(400, "Invalid OTP", domainerrors.ErrInvalidOTP)
	}

	score := scoreMin + u.rng.Intn(scoreSpan)
	if err := u.submissionRepo.SetScore(ctx, input.SubmissionID, score); err != nil {
		return nil, err
	}

	logger.Info(ctx, "submission verified",
		zap.String("submission_id", input.SubmissionID.String()),
		zap.Int("score", score),
	)

	return &entities.EligibilityResult{
		Score:      score,
		Message:    messageForScore(score),
		IsEligible: score >= eligibleThreshold,
	}, nil
}

// Report renders the PDF report for a verified submission. Unknown ids
// report not-found; unverified submissions are forbidden regardless of
// whether a score is already present.
func (u *EligibilityUsecase) Report(ctx context.Context, id uuid.UUID) ([]byte, string, error) {
	submission, err := u.submissionRepo.GetByID(ctx, id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			return nil, "", domainerrors.NotFound("Submission not found")
		}
		return nil, "", err
	}

	if !submission.IsVerified() {
		return nil, "", domainerrors.Forbidden("OTP verification is required before downloading the report")
	}

	data, err := u.renderer.Render(submission, time.Now())
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("eligibility-report-%s.pdf", id)
	return data, filename, nil
}

func (u *EligibilityUsecase) generateOTP() string {
	return fmt.Sprintf("%d", otpMin+u.rng.Intn(otpSpan))
}

func messageForScore(score int) string {
	if score >= strongProfileThreshold {
		return strongProfileMessage
	}
	return developingProfileMessage
}

// MessageForScore exposes the threshold message for report rendering
func MessageForScore(score int) string {
	return messageForScore(score)
}

// IsEligibleScore applies the eligibility threshold
func IsEligibleScore(score int) bool {
	return score >= eligibleThreshold
}
