package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"pratham.backend/internal/domain/entities"
	domainerrors "pratham.backend/internal/domain/errors"
	"pratham.backend/internal/interfaces/http/response"
)

type EligibilityService interface {
	SubmitContact(ctx context.Context, input *entities.SubmitContactInput) (*entities.SubmitContactResponse, error)
	VerifyOTP(ctx context.Context, input *entities.VerifyOTPInput) (*entities.EligibilityResult, error)
	Report(ctx context.Context, id uuid.UUID) ([]byte, string, error)
}

type ReportMailer interface {
	SendReport(ctx context.Context, recipient string, score int, eligible bool) error
}

// EligibilityHandler handles the public eligibility check endpoints
type EligibilityHandler struct {
	eligibilityUsecase EligibilityService
	mailer             ReportMailer
}

// NewEligibilityHandler creates a new eligibility handler
func NewEligibilityHandler(eligibilityUsecase EligibilityService, mailer ReportMailer) *EligibilityHandler {
	return &EligibilityHandler{eligibilityUsecase: eligibilityUsecase, mailer: mailer}
}

// Submit records contact details and issues an OTP
// POST /api/eligibility/submit
func (h *EligibilityHandler) Submit(c *gin.Context) {
	var input entities.SubmitContactInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("Name, email, phone and city are required"))
		return
	}

	submitResponse, err := h.eligibilityUsecase.SubmitContact(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, submitResponse)
}

// VerifyOTP checks the submitted code and returns the eligibility result
// POST /api/eligibility/verify-otp
func (h *EligibilityHandler) VerifyOTP(c *gin.Context) {
	var input entities.VerifyOTPInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("Submission ID and a 6-digit OTP are required"))
		return
	}

	result, err := h.eligibilityUsecase.VerifyOTP(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// DownloadPDF streams the eligibility report for a verified submission
// GET /api/eligibility/download-pdf/:id
func (h *EligibilityHandler) DownloadPDF(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.NotFound("Submission not found"))
		return
	}

	data, filename, err := h.eligibilityUsecase.Report(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}

// SendReportEmail mails a summary of the eligibility result
// POST /api/send-report-email
func (h *EligibilityHandler) SendReportEmail(c *gin.Context) {
	var input entities.SendReportEmailInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("A valid recipient email is required"))
		return
	}

	if err := h.mailer.SendReport(c.Request.Context(), input.Email, input.Score, input.IsEligible); err != nil {
		response.Error(c, domainerrors.NewAppError(http.StatusInternalServerError, "Failed to send report email", err))
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"success": true,
		"message": "Report email sent",
		"email":   input.Email,
	})
}
