package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	redisStore "github.com/CAR-dano/cardano-backend-sub000/internal/adapter/storage/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rateLimitedRouter(t *testing.T, rule RateLimitRule) *gin.Engine {
	t.Helper()

	mr := miniredis.RunT(t)
	store := redisStore.NewRateLimitStore(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))

	router := gin.New()
	router.GET("/test", RateLimiter(store, "test", rule, zerolog.Nop()), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{})
	})
	return router
}

func TestRateLimiter_AllowsUnderLimit(t *testing.T) {
	router := rateLimitedRouter(t, RateLimitRule{Limit: 3, Window: time.Minute})

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code, "request %d", i+1)
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	router := rateLimitedRouter(t, RateLimitRule{Limit: 2, Window: time.Minute})

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "SYS_003")
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimiter_SetsHeaders(t *testing.T) {
	router := rateLimitedRouter(t, RateLimitRule{Limit: 10, Window: time.Minute})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "10", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "9", w.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, w.Header().Get("X-RateLimit-Reset"))
}

func TestRateLimiter_DegradedModeAllows(t *testing.T) {
	// A dead Redis must not take the API down with it.
	mr := miniredis.RunT(t)
	store := redisStore.NewRateLimitStore(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	mr.Close()

	router := gin.New()
	router.GET("/test", RateLimiter(store, "test", RateLimitRule{Limit: 1, Window: time.Minute}, zerolog.Nop()), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{})
	})

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimiter_SubjectScopesTheLimit(t *testing.T) {
	mr := miniredis.RunT(t)
	store := redisStore.NewRateLimitStore(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))

	router := gin.New()
	setSubject := func(subject string) gin.HandlerFunc {
		return func(c *gin.Context) { c.Set(CtxSubject, subject) }
	}
	limiter := RateLimiter(store, "mint", RateLimitRule{Limit: 1, Window: time.Minute}, zerolog.Nop())
	router.GET("/a", setSubject("alice"), limiter, func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{}) })
	router.GET("/b", setSubject("bob"), limiter, func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{}) })

	// alice exhausts her budget
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/a", nil))
	require.Equal(t, http.StatusOK, w.Code)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/a", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// bob is unaffected
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/b", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
