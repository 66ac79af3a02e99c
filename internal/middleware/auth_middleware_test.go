package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/classroom-api/internal/domain/entity"
	"github.com/yourusername/classroom-api/pkg/auth"
)

func newAuthTestRouter(t *testing.T) (*auth.JWTService, *AuthMiddleware) {
	t.Helper()
	jwtService, err := auth.NewJWTService("middleware-test-secret", 1)
	require.NoError(t, err)
	return jwtService, NewAuthMiddleware(jwtService)
}

func signedToken(t *testing.T, jwtService *auth.JWTService, role string, onboarded bool) string {
	t.Helper()
	token, err := jwtService.GenerateToken(uuid.New(), "user@school.test", role, onboarded)
	require.NoError(t, err)
	return token
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwtService, mw := newAuthTestRouter(t)

	userID := uuid.New()
	router := gin.New()
	router.GET("/me", mw.RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":   c.MustGet("user_id").(uuid.UUID),
			"role":      c.GetString("role"),
			"onboarded": c.GetBool("onboarded"),
		})
	})

	t.Run("valid bearer token passes and fills the context", func(t *testing.T) {
		token, err := jwtService.GenerateToken(userID, "t@school.test", entity.RoleTeacher, true)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t,
			`{"user_id":"`+userID.String()+`","role":"teacher","onboarded":true}`,
			w.Body.String())
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed headers are rejected", func(t *testing.T) {
		for _, header := range []string{"Bearer", "Token abc", "garbage"} {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			req.Header.Set("Authorization", header)
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusUnauthorized, w.Code, header)
		}
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		foreign, err := auth.NewJWTService("some-other-secret", 1)
		require.NoError(t, err)
		token := signedToken(t, foreign, entity.RoleTeacher, true)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwtService, mw := newAuthTestRouter(t)

	router := gin.New()
	router.POST("/classrooms", mw.RequireAuth(), mw.RequireRole(entity.RoleStaff, entity.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	t.Run("listed role passes", func(t *testing.T) {
		for _, role := range []string{entity.RoleStaff, entity.RoleAdmin} {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/classrooms", nil)
			req.Header.Set("Authorization", "Bearer "+signedToken(t, jwtService, role, true))
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusCreated, w.Code, role)
		}
	})

	t.Run("unlisted role is forbidden", func(t *testing.T) {
		for _, role := range []string{entity.RoleStudent, entity.RoleTeacher} {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/classrooms", nil)
			req.Header.Set("Authorization", "Bearer "+signedToken(t, jwtService, role, true))
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusForbidden, w.Code, role)
			assert.JSONEq(t, `{"error":"insufficient permissions"}`, w.Body.String())
		}
	})

	t.Run("missing role in context is forbidden", func(t *testing.T) {
		bare := gin.New()
		bare.POST("/classrooms", mw.RequireRole(entity.RoleAdmin), func(c *gin.Context) {
			c.Status(http.StatusCreated)
		})

		w := httptest.NewRecorder()
		bare.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/classrooms", nil))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestRequireOnboarded(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwtService, mw := newAuthTestRouter(t)

	router := gin.New()
	router.GET("/subjects", mw.RequireAuth(), mw.RequireOnboarded(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	t.Run("onboarded caller passes", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/subjects", nil)
		req.Header.Set("Authorization", "Bearer "+signedToken(t, jwtService, entity.RoleStudent, true))
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("caller that has not onboarded is forbidden", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/subjects", nil)
		req.Header.Set("Authorization", "Bearer "+signedToken(t, jwtService, entity.RoleStudent, false))
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.JSONEq(t, `{"error":"complete onboarding first"}`, w.Body.String())
	})
}
