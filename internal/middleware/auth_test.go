package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/meowsite/recipes-backend/internal/middleware"
	"github.com/meowsite/recipes-backend/internal/types"
)

type stubValidator struct {
	claims *types.TokenClaims
}

func (v *stubValidator) ValidateToken(token string) (*types.TokenClaims, error) {
	if token == "valid" && v.claims != nil {
		return v.claims, nil
	}
	return nil, errors.New("invalid token")
}

func newTestEngine(handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/protected", handler, func(c *gin.Context) {
		id, ok := middleware.UserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id, "authenticated": ok})
	})
	return engine
}

func serve(engine *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	validator := &stubValidator{claims: &types.TokenClaims{UserID: uuid.New(), Username: "alice"}}
	engine := newTestEngine(middleware.RequireAuth(validator))

	assert.Equal(t, http.StatusUnauthorized, serve(engine, "").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(engine, "valid").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(engine, "Basic valid").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(engine, "Bearer expired").Code)
	assert.Equal(t, http.StatusOK, serve(engine, "Bearer valid").Code)
}

func TestOptionalAuthNeverRejects(t *testing.T) {
	validator := &stubValidator{claims: &types.TokenClaims{UserID: uuid.New(), Username: "alice"}}
	engine := newTestEngine(middleware.OptionalAuth(validator))

	w := serve(engine, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authenticated":false`)

	w = serve(engine, "Bearer valid")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authenticated":true`)
}

func TestNilRateLimiterIsNoOp(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	var limiter *middleware.RateLimiter
	engine.GET("/write", limiter.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/write", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
