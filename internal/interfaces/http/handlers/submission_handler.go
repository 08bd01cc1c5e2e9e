package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"pratham.backend/internal/domain/entities"
	domainerrors "pratham.backend/internal/domain/errors"
	"pratham.backend/internal/interfaces/http/response"
	"pratham.backend/pkg/logger"
)

type SubmissionStore interface {
	Create(ctx context.Context, submission *entities.Submission) error
	List(ctx context.Context) ([]*entities.Submission, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Submission, error)
	SetStatus(ctx context.Context, id uuid.UUID, status string) error
}

// SubmissionHandler handles the admin submission endpoints
type SubmissionHandler struct {
	submissions SubmissionStore
}

// NewSubmissionHandler creates a new submission handler
func NewSubmissionHandler(submissions SubmissionStore) *SubmissionHandler {
	return &SubmissionHandler{submissions: submissions}
}

// List returns all submissions, newest first
// GET /api/submissions
func (h *SubmissionHandler) List(c *gin.Context) {
	submissions, err := h.submissions.List(c.Request.Context())
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to list submissions", zap.Error(err))
		response.Error(c, domainerrors.NewAppError(http.StatusInternalServerError, "Failed to fetch submissions", err))
		return
	}

	response.Success(c, http.StatusOK, submissions)
}

// Get returns a single submission by ID
// GET /api/submissions/:id
func (h *SubmissionHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.NotFound("Submission not found"))
		return
	}

	submission, err := h.submissions.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("Submission not found"))
			return
		}
		logger.Error(c.Request.Context(), "Failed to fetch submission", zap.Error(err))
		response.Error(c, domainerrors.NewAppError(http.StatusInternalServerError, "Failed to fetch submission", err))
		return
	}

	response.Success(c, http.StatusOK, submission)
}

// Create stores a complete submission from the admin panel
// POST /api/submissions
func (h *SubmissionHandler) Create(c *gin.Context) {
	var input entities.CreateSubmissionInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid submission data"))
		return
	}

	submission := input.ToSubmission()
	if err := h.submissions.Create(c.Request.Context(), submission); err != nil {
		logger.Error(c.Request.Context(), "Failed to create submission", zap.Error(err))
		response.Error(c, domainerrors.NewAppError(http.StatusInternalServerError, "Failed to create submission", err))
		return
	}

	response.Success(c, http.StatusCreated, submission)
}

// UpdateStatus sets a submission's status label and returns the updated row
// PATCH /api/submissions/:id/status
func (h *SubmissionHandler) UpdateStatus(c *gin.Context) {
	var input entities.UpdateStatusInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("Status is required"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.NotFound("Submission not found"))
		return
	}

	if err := h.submissions.SetStatus(c.Request.Context(), id, input.Status); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("Submission not found"))
			return
		}
		logger.Error(c.Request.Context(), "Failed to update submission status", zap.Error(err))
		response.Error(c, domainerrors.NewAppError(http.StatusInternalServerError, "Failed to update submission", err))
		return
	}

	submission, err := h.submissions.GetByID(c.Request.Context(), id)
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to reload submission after status update", zap.Error(err))
		response.Error(c, domainerrors.NewAppError(http.StatusInternalServerError, "Failed to update submission", err))
		return
	}

	response.Success(c, http.StatusOK, submission)
}
