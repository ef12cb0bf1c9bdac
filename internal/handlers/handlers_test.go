package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ycsmatch_backend/internal/auth"
	"ycsmatch_backend/internal/models"
	"ycsmatch_backend/internal/search"
	"ycsmatch_backend/internal/services/dto"
	"ycsmatch_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserService struct {
	user *dto.UserResponse
}

func (s *stubUserService) GetByID(userID uint) (*dto.UserResponse, error) {
	return s.user, nil
}

func (s *stubUserService) ListMembers(filters search.Filters) (*dto.UsersResponse, error) {
	return &dto.UsersResponse{Users: []*dto.UserResponse{s.user}}, nil
}

func (s *stubUserService) UpdateRole(actingUserID, targetUserID uint, role string) error {
	return nil
}

func (s *stubUserService) Delete(actingUserID, targetUserID uint) error { return nil }

type stubAuthService struct {
	resetRequests []string
}

func (s *stubAuthService) Register(req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	return &dto.RegisterResponse{Success: true, UserID: 1}, nil
}

func (s *stubAuthService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	return &dto.LoginResponse{Success: true, Token: "token"}, nil
}

func (s *stubAuthService) RequestPasswordReset(emailAddr string) error {
	s.resetRequests = append(s.resetRequests, emailAddr)
	return nil
}

func (s *stubAuthService) ResetPassword(token, newPassword string) error { return nil }

func newHandlerTestRouter(t *testing.T, userStub *stubUserService, authStub *stubAuthService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	base := NewBaseHandler(validator.New())
	router := gin.New()
	api := router.Group("/api/v1")
	if userStub != nil {
		NewUserHandler(base, userStub).RegisterRoutes(api)
	}
	if authStub != nil {
		NewAuthHandler(base, authStub).RegisterRoutes(api)
	}
	return router
}

func TestGetCurrentUser_WrapsProfileInUserEnvelope(t *testing.T) {
	require.NoError(t, auth.Init("handler-test-secret-0123456789", time.Hour))
	token, err := auth.GenerateToken(1, models.UserRoleUser)
	require.NoError(t, err)

	router := newHandlerTestRouter(t, &stubUserService{
		user: &dto.UserResponse{ID: 1, Email: "me@example.com"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Contains(t, body, "user", "profile must be wrapped in a 'user' envelope")

	var user dto.UserResponse
	require.NoError(t, json.Unmarshal(body["user"], &user))
	assert.Equal(t, "me@example.com", user.Email)
}

func TestListMembers_UsersEnvelope(t *testing.T) {
	require.NoError(t, auth.Init("handler-test-secret-0123456789", time.Hour))
	token, err := auth.GenerateToken(1, models.UserRoleUser)
	require.NoError(t, err)

	router := newHandlerTestRouter(t, &stubUserService{
		user: &dto.UserResponse{ID: 1, Email: "a@example.com"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/members", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body, "users")
}

func TestRequestPasswordReset_EmptyEmailStillSucceeds(t *testing.T) {
	authStub := &stubAuthService{}
	router := newHandlerTestRouter(t, nil, authStub)

	for _, payload := range []string{`{"email":""}`, `{}`} {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/password/request-reset",
			strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, "payload %s", payload)
		assert.Contains(t, rec.Body.String(), `"success":true`)
	}
}
