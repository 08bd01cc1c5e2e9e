package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"pratham.backend/internal/domain/entities"
	domainerrors "pratham.backend/internal/domain/errors"
)

type authServiceStub struct {
	loginFn func(ctx context.Context, input *entities.AdminLoginInput) (*entities.AdminLoginResponse, error)
}

func (s *authServiceStub) AdminLogin(ctx context.Context, input *entities.AdminLoginInput) (*entities.AdminLoginResponse, error) {
	if s.loginFn != nil {
		return s.loginFn(ctx, input)
	}
	return nil, domainerrors.Unauthorized("Invalid username or password")
}

func newAuthRouter(svc AuthService) *gin.Engine {
	h := NewAuthHandler(svc)
	r := gin.New()
	r.POST("/api/admin/login", h.AdminLogin)
	return r
}

func TestAuthHandler_AdminLogin(t *testing.T) {
	svc := &authServiceStub{
		loginFn: func(_ context.Context, input *entities.AdminLoginInput) (*entities.AdminLoginResponse, error) {
			require.Equal(t, "admin", input.Username)
			require.Equal(t, "admin123", input.Password)
			return &entities.AdminLoginResponse{
				Success: true,
				Token:   "dummy-jwt-token-1700000000000",
				Message: "Login successful",
			}, nil
		},
	}
	r := newAuthRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(`{"username":"admin","password":"admin123"}`)))

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"success":true`)
	require.Contains(t, w.Body.String(), "dummy-jwt-token-1700000000000")
}

func TestAuthHandler_AdminLogin_Rejected(t *testing.T) {
	r := newAuthRouter(&authServiceStub{})

	// empty credentials still reach the usecase and come back as 401
	for _, body := range []string{
		`{"username":"admin","password":"wrong"}`,
		`{"username":"","password":""}`,
		`{}`,
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(body)))
		require.Equal(t, http.StatusUnauthorized, w.Code, body)
		require.Contains(t, w.Body.String(), "Invalid username or password")
	}
}

func TestAuthHandler_AdminLogin_MalformedBody(t *testing.T) {
	called := false
	svc := &authServiceStub{
		loginFn: func(_ context.Context, _ *entities.AdminLoginInput) (*entities.AdminLoginResponse, error) {
			called = true
			return nil, nil
		},
	}
	r := newAuthRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(`not json`)))

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.False(t, called)
}
