package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"MindMirrorGo/services"
	"MindMirrorGo/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRateLimiterDisabled(t *testing.T) {
	assert.Nil(t, NewRateLimiter(0, 5))

	var l *RateLimiter
	r := gin.New()
	r.GET("/x", l.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })
	for i := 0; i < 20; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimiterRejectsAfterBurst(t *testing.T) {
	l := NewRateLimiter(1, 2)
	r := gin.New()
	r.GET("/x", l.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := []int{}
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{200, 200, 429}, codes)

	// 其他客户端不受影响
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimiterEvictsIdleClients(t *testing.T) {
	l := NewRateLimiter(60, 1)
	now := time.Now()
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("a"))
	now = now.Add(time.Hour)
	assert.True(t, l.Allow("b"))
	assert.NotContains(t, l.limiters, "a")
}

func newSessionRouter(issuer *utils.TokenIssuer, store services.RevocationStore) *gin.Engine {
	r := gin.New()
	r.Use(SessionMiddleware(issuer, store))
	r.GET("/optional", func(c *gin.Context) {
		uid, _ := CurrentUserID(c)
		c.JSON(http.StatusOK, gin.H{"uid": uid})
	})
	r.GET("/required", RequireSession(), func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestSessionMiddleware(t *testing.T) {
	issuer := utils.NewTokenIssuer("secret", time.Hour)
	store := services.NewMemoryRevocationStore()
	r := newSessionRouter(issuer, store)
	token, claims, err := issuer.GenerateToken(42)
	require.NoError(t, err)

	do := func(path, auth string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if auth != "" {
			req.Header.Set("Authorization", auth)
		}
		r.ServeHTTP(w, req)
		return w
	}

	assert.JSONEq(t, `{"uid": 0}`, do("/optional", "").Body.String())
	assert.JSONEq(t, `{"uid": 42}`, do("/optional", "Bearer "+token).Body.String())
	assert.JSONEq(t, `{"uid": 0}`, do("/optional", "Bearer garbage").Body.String())

	w := do("/required", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message": "User not authenticated"}`, w.Body.String())
	assert.Equal(t, http.StatusOK, do("/required", "Bearer "+token).Code)

	require.NoError(t, store.Revoke(context.Background(), claims.ID, time.Hour))
	assert.Equal(t, http.StatusUnauthorized, do("/required", "Bearer "+token).Code)
}

func TestRequestLoggerHonoursRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger())
	r.GET("/x", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("requestID")) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Body.String())
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.NotEmpty(t, w.Body.String())
}

func TestSplitOrigins(t *testing.T) {
	assert.Equal(t, []string{"https://a.com", "https://b.com"}, splitOrigins(" https://a.com, ,https://b.com"))
	assert.Empty(t, splitOrigins(""))
}
