package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"pratham.backend/internal/domain/entities"
	domainerrors "pratham.backend/internal/domain/errors"
	"pratham.backend/internal/interfaces/http/response"
)

type AuthService interface {
	AdminLogin(ctx context.Context, input *entities.AdminLoginInput) (*entities.AdminLoginResponse, error)
}

// AuthHandler handles admin authentication endpoints
type AuthHandler struct {
	authUsecase AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase AuthService) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase}
}

// AdminLogin validates admin credentials and returns a session token
// POST /api/admin/login
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var input entities.AdminLoginInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid login request"))
		return
	}

	loginResponse, err := h.authUsecase.AdminLogin(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, loginResponse)
}
