package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/bikeshop_backoffice/internal/apperrors"
	"github.com/SscSPs/bikeshop_backoffice/internal/core/domain"
	portssvc "github.com/SscSPs/bikeshop_backoffice/internal/core/ports/services"
	"github.com/SscSPs/bikeshop_backoffice/internal/dto"
	"github.com/SscSPs/bikeshop_backoffice/internal/handlers"
	"github.com/SscSPs/bikeshop_backoffice/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(t *testing.T, users *MockUserService, tokens *MockTokenService, rate string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cfg := &config.Config{JWTSecret: testJWTSecret, IsProduction: true, LoginRateLimit: rate}
	require.NoError(t, handlers.RegisterRoutes(r, cfg, &portssvc.ServiceContainer{User: users, Token: tokens}, nil))
	return r
}

func postJSON(r *gin.Engine, url, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, url, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLogin_Success(t *testing.T) {
	users, tokens := new(MockUserService), new(MockTokenService)
	user := &domain.User{UserID: "u-1", Username: "oficina"}
	users.On("AuthenticateUser", mock.Anything, "oficina", "s3cret-pass").Return(user, nil).Once()
	tokens.On("GenerateAccessToken", mock.Anything, user).Return("signed.jwt.token", time.Now().Add(time.Hour), nil).Once()

	w := postJSON(newAuthRouter(t, users, tokens, "10-M"), "/api/v1/auth/login", `{"username":"oficina","password":"s3cret-pass"}`)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "signed.jwt.token", resp.Token)
}

func TestLogin_WrongPassword(t *testing.T) {
	users, tokens := new(MockUserService), new(MockTokenService)
	users.On("AuthenticateUser", mock.Anything, "oficina", "nope").Return(nil, apperrors.ErrUnauthorized).Once()

	w := postJSON(newAuthRouter(t, users, tokens, "10-M"), "/api/v1/auth/login", `{"username":"oficina","password":"nope"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	tokens.AssertNotCalled(t, "GenerateAccessToken", mock.Anything, mock.Anything)
}

func TestLogin_RateLimited(t *testing.T) {
	users, tokens := new(MockUserService), new(MockTokenService)
	users.On("AuthenticateUser", mock.Anything, "oficina", "nope").Return(nil, apperrors.ErrUnauthorized)
	r := newAuthRouter(t, users, tokens, "2-M")

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		codes = append(codes, postJSON(r, "/api/v1/auth/login", `{"username":"oficina","password":"nope"}`).Code)
	}

	assert.Equal(t, []int{http.StatusUnauthorized, http.StatusUnauthorized, http.StatusTooManyRequests}, codes)
	users.AssertNumberOfCalls(t, "AuthenticateUser", 2)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	users, tokens := new(MockUserService), new(MockTokenService)
	req := dto.CreateUserRequest{Username: "oficina", Password: "s3cret-pass", Name: "Oficina"}
	users.On("CreateUser", mock.Anything, req).Return(nil, apperrors.ErrDuplicate).Once()

	w := postJSON(newAuthRouter(t, users, tokens, "10-M"), "/api/v1/auth/register", `{"username":"oficina","password":"s3cret-pass","name":"Oficina"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegister_ShortPassword(t *testing.T) {
	users, tokens := new(MockUserService), new(MockTokenService)

	w := postJSON(newAuthRouter(t, users, tokens, "10-M"), "/api/v1/auth/register", `{"username":"oficina","password":"short","name":"Oficina"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	users.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestGetMe(t *testing.T) {
	users, tokens := new(MockUserService), new(MockTokenService)
	users.On("GetUserByID", mock.Anything, "u-1").Return(&domain.User{UserID: "u-1", Name: "Oficina"}, nil).Once()
	r := newAuthRouter(t, users, tokens, "10-M")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+generateTestToken(t, "u-1"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"userID":"u-1"`)
}

func TestHealth(t *testing.T) {
	r := newAuthRouter(t, new(MockUserService), new(MockTokenService), "10-M")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}
