//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nuzlocke-tracker/internal/handler/middleware"
	"nuzlocke-tracker/internal/pkg/jwt"
	"nuzlocke-tracker/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(t *testing.T, svc *jwt.Service) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	auth := middleware.NewAuthMiddleware(usecase.NewTokenValidator(svc))
	r.GET("/me", auth.RequireAuth(), func(c *gin.Context) {
		id, ok := middleware.GetUserID(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"user_id": id.String(), "email": middleware.GetUserEmail(c)})
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour)
	router := newAuthRouter(t, svc)
	userID := uuid.New()
	token, err := svc.GenerateToken(userID, "red@example.com")
	require.NoError(t, err)

	tests := []struct {
		name       string
		prepare    func(r *http.Request)
		expectCode int
	}{
		{
			name:       "bearer header",
			prepare:    func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) },
			expectCode: http.StatusOK,
		},
		{
			name:       "cookie",
			prepare:    func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "access_token", Value: token}) },
			expectCode: http.StatusOK,
		},
		{
			name:       "query parameter for websocket upgrades",
			prepare:    func(r *http.Request) { r.URL.RawQuery = "access_token=" + token },
			expectCode: http.StatusOK,
		},
		{
			name:       "missing token",
			prepare:    func(r *http.Request) {},
			expectCode: http.StatusUnauthorized,
		},
		{
			name:       "garbage token",
			prepare:    func(r *http.Request) { r.Header.Set("Authorization", "Bearer not.a.jwt") },
			expectCode: http.StatusUnauthorized,
		},
		{
			name: "token signed with another secret",
			prepare: func(r *http.Request) {
				other, err := jwt.NewService("other-secret", time.Hour).GenerateToken(userID, "")
				require.NoError(t, err)
				r.Header.Set("Authorization", "Bearer "+other)
			},
			expectCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			tt.prepare(req)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectCode, rec.Code, rec.Body.String())
			if tt.expectCode == http.StatusOK {
				assert.JSONEq(t, `{"user_id":"`+userID.String()+`","email":"red@example.com"}`, rec.Body.String())
			} else {
				assert.Contains(t, rec.Body.String(), `"message"`)
			}
		})
	}

	t.Run("expired token", func(t *testing.T) {
		expired, err := jwt.NewService("test-secret", -time.Minute).GenerateToken(userID, "")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+expired)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
