package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/yoshiboykidd/karinto-castmanager-sub000/internal/middleware"
	"github.com/yoshiboykidd/karinto-castmanager-sub000/internal/staff"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func signedToken(t *testing.T, loginID, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"login_id": loginID,
		"role":     role,
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	s, err := token.SignedString([]byte("test-secret"))
	assert.NoError(t, err)
	return s
}

func newGuardedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/guarded",
		middleware.AuthMiddleware(),
		middleware.RoleMiddleware(staff.RoleAdmin, staff.RoleDeveloper),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"login_id": c.GetString("login_id")})
		})
	return r
}

func TestAuthMiddlewareSetsIdentity(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newGuardedRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "00600037", staff.RoleAdmin))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "00600037")
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newGuardedRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guarded", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsBadSignature(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newGuardedRouter()

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"login_id": "00600037",
		"role":     staff.RoleAdmin,
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	s, err := forged.SignedString([]byte("wrong-secret"))
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+s)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRoleMiddlewareBlocksCast(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newGuardedRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "00600037", staff.RoleCast))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
