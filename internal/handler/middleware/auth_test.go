//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"stayhub/internal/domain/user"
	"stayhub/internal/handler/middleware"
	usecasemock "stayhub/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *usecasemock.MockTokenValidator) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	validator := usecasemock.NewMockTokenValidator(ctrl)
	auth := middleware.NewAuthMiddleware(validator)

	r := gin.New()
	r.GET("/me", auth.RequireAuth(), func(c *gin.Context) {
		id, role, ok := middleware.MustIdentity(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id, "role": role})
	})
	r.GET("/host", auth.RequireAuth(), auth.RequireRole(user.RoleHost), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	r.GET("/unguarded", auth.RequireRole(user.RoleHost), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r, validator
}

func TestRequireAuth(t *testing.T) {
	userID := uuid.New()

	t.Run("bearer header", func(t *testing.T) {
		r, validator := newAuthRouter(t)
		validator.EXPECT().ValidateToken("tok").Return(userID, user.RoleGuest, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer tok")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), userID.String())
		assert.Contains(t, w.Body.String(), `"role":"guest"`)
	})

	t.Run("cookie wins over header", func(t *testing.T) {
		r, validator := newAuthRouter(t)
		validator.EXPECT().ValidateToken("from-cookie").Return(userID, user.RoleGuest, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: "from-cookie"})
		req.Header.Set("Authorization", "Bearer from-header")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		r, _ := newAuthRouter(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Basic abc")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Access token required")
	})

	t.Run("invalid token", func(t *testing.T) {
		r, validator := newAuthRouter(t)
		validator.EXPECT().ValidateToken("bad").Return(uuid.Nil, user.Role(""), errors.New("token expired"))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer bad")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid or expired token")
	})
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name     string
		role     user.Role
		wantCode int
		wantBody string
	}{
		{name: "host passes", role: user.RoleHost, wantCode: http.StatusNoContent},
		{name: "guest is forbidden", role: user.RoleGuest, wantCode: http.StatusForbidden, wantBody: "Forbidden: host only"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, validator := newAuthRouter(t)
			validator.EXPECT().ValidateToken("tok").Return(uuid.New(), tt.role, nil)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/host", nil)
			req.Header.Set("Authorization", "Bearer tok")
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantBody != "" {
				assert.Contains(t, w.Body.String(), tt.wantBody)
			}
		})
	}

	t.Run("without RequireAuth", func(t *testing.T) {
		r, _ := newAuthRouter(t)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/unguarded", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
