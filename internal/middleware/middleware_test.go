package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/h4ks-com/brewlog/internal/clock"
	"github.com/h4ks-com/brewlog/internal/database"
	"github.com/h4ks-com/brewlog/internal/repository"
	"github.com/h4ks-com/brewlog/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func setupAuth(t *testing.T, testMode bool) (*AuthMiddleware, *services.TokenService, *services.UserService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	repos := repository.New(db)
	users := services.NewUserService(repos.Users)
	tokens := services.NewTokenService(repos.Tokens, repos.Users, "test-secret", clock.SystemClock{})
	return NewAuthMiddleware(tokens, users, testMode), tokens, users
}

func whoami(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"id": GetUserID(c), "username": GetUsername(c)})
}

func TestRequireAuth_TestModeHeader(t *testing.T) {
	auth, _, _ := setupAuth(t, true)
	router := gin.New()
	router.GET("/me", auth.RequireAuth(), whoami)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("X-Test-Username", "alice")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":1,"username":"alice"}`, w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_BearerToken(t *testing.T) {
	auth, tokens, users := setupAuth(t, false)
	_, err := users.GetOrCreate("alice")
	require.NoError(t, err)
	token, _, err := tokens.GenerateToken("alice", time.Hour)
	require.NoError(t, err)

	router := gin.New()
	router.GET("/me", auth.RequireAuth(), whoami)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"valid", "Bearer " + token, http.StatusOK},
		{"missing", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + token, http.StatusUnauthorized},
		{"garbage", "Bearer nope", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	auth, _, _ := setupAuth(t, true)
	admin := NewAdminMiddleware([]string{"root"})

	router := gin.New()
	router.GET("/admin", auth.RequireAuth(), admin.RequireAdmin(), whoami)

	for user, want := range map[string]int{"root": http.StatusOK, "alice": http.StatusForbidden} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("X-Test-Username", user)
		router.ServeHTTP(w, req)
		assert.Equal(t, want, w.Code, user)
	}
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.DebugLevel)

	router := gin.New()
	router.Use(RequestLogger(zap.New(core)))
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	generated := w.Header().Get(RequestIDHeader)
	assert.Len(t, generated, 36)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	router.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, int64(http.StatusNoContent), entries[0].ContextMap()["status"])
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "abc-123", entries[1].ContextMap()["request_id"])
}
