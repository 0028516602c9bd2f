package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookreview/internal/http-api/models"
	"bookreview/internal/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubAuthService validates exactly one token.
type stubAuthService struct {
	service.AuthService
	token  string
	claims *service.Claims
}

func (s *stubAuthService) ValidateToken(tokenString string) (*service.Claims, error) {
	if tokenString == s.token {
		return s.claims, nil
	}
	return nil, errors.New("invalid token")
}

func newStub(role models.Role) *stubAuthService {
	return &stubAuthService{
		token:  "good-token",
		claims: &service.Claims{UserID: "user-1", Username: "alice", Role: role},
	}
}

func protectedRouter(mw ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	handlers := append(mw, func(c *gin.Context) {
		userID := c.GetString("userID")
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	r.GET("/protected", handlers...)
	return r
}

func request(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	r := protectedRouter(AuthMiddleware(newStub(models.RoleUser)))

	w := request(r, "Bearer good-token")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	r := protectedRouter(AuthMiddleware(newStub(models.RoleUser)))

	w := request(r, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	r := protectedRouter(AuthMiddleware(newStub(models.RoleUser)))

	w := request(r, "good-token")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_BadToken(t *testing.T) {
	r := protectedRouter(AuthMiddleware(newStub(models.RoleUser)))

	w := request(r, "Bearer forged-token")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOptionalAuth_AnonymousPassesThrough(t *testing.T) {
	r := protectedRouter(OptionalAuth(newStub(models.RoleUser)))

	w := request(r, "")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOptionalAuth_BadTokenStaysAnonymous(t *testing.T) {
	r := protectedRouter(OptionalAuth(newStub(models.RoleUser)))

	w := request(r, "Bearer forged-token")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "user-1")
}

func TestRequireAdmin_AllowsAdmin(t *testing.T) {
	r := protectedRouter(AuthMiddleware(newStub(models.RoleAdmin)), RequireAdmin())

	w := request(r, "Bearer good-token")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdmin_RejectsRegularUser(t *testing.T) {
	r := protectedRouter(AuthMiddleware(newStub(models.RoleUser)), RequireAdmin())

	w := request(r, "Bearer good-token")

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAdmin_RejectsAnonymous(t *testing.T) {
	r := protectedRouter(RequireAdmin())

	w := request(r, "")

	assert.Equal(t, http.StatusForbidden, w.Code)
}
