package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/contable-dev/contabilidad_api/internal/core/domain"
	"github.com/contable-dev/contabilidad_api/internal/middleware"
	"github.com/contable-dev/contabilidad_api/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-that-is-long-enough"

func setupRouter(secret string) (*gin.Engine, *domain.Caller) {
	gin.SetMode(gin.TestMode)
	var captured domain.Caller
	r := gin.New()
	r.Use(middleware.AuthMiddleware(secret))
	r.GET("/protected", func(c *gin.Context) {
		caller, ok := middleware.GetCallerFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		captured = caller
		c.Status(http.StatusOK)
	})
	return r, &captured
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	router, captured := setupRouter(testSecret)
	userID := uuid.NewString()
	systemID := uuid.NewString()

	token, _, err := utils.GenerateJWT(userID, "Ana", systemID, testSecret, time.Hour, "contab-test")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, captured.UserID)
	assert.Equal(t, systemID, captured.AuxiliarySystemID)
	assert.False(t, captured.IsGlobal())
}

func TestAuthMiddleware_GlobalCaller(t *testing.T) {
	router, captured := setupRouter(testSecret)

	token, _, err := utils.GenerateJWT(uuid.NewString(), "admin", "", testSecret, time.Hour, "contab-test")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, captured.IsGlobal())
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	router, _ := setupRouter(testSecret)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	router, _ := setupRouter(testSecret)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	router, _ := setupRouter(testSecret)

	token, _, err := utils.GenerateJWT(uuid.NewString(), "Ana", "", testSecret, -time.Minute, "contab-test")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "expired")
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	router, _ := setupRouter(testSecret)

	token, _, err := utils.GenerateJWT(uuid.NewString(), "Ana", "", "some-other-secret", time.Hour, "contab-test")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
