package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cloudcache/services"
	"cloudcache/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func rateLimitedRouter(limiter *services.RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/limited", RateLimitMiddleware(limiter), func(c *gin.Context) {
		utils.Success(c, gin.H{"message": "ok"})
	})
	return router
}

func hitLimited(router *gin.Engine) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/limited", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("NilLimiterSkipsLimiting", func(t *testing.T) {
		router := rateLimitedRouter(nil)
		for i := 0; i < 5; i++ {
			if w := hitLimited(router); w.Code != http.StatusOK {
				t.Fatalf("request %d: expected 200 with no limiter, got %d", i+1, w.Code)
			}
		}
	})

	t.Run("FailsOpenWhenBackendDown", func(t *testing.T) {
		limiter := &services.RateLimiter{
			Client: redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"}),
			Limit:  1,
			Window: time.Minute,
		}
		defer limiter.Client.Close()

		router := rateLimitedRouter(limiter)
		for i := 0; i < 3; i++ {
			if w := hitLimited(router); w.Code != http.StatusOK {
				t.Fatalf("request %d: expected 200 with the backend down, got %d", i+1, w.Code)
			}
		}
	})

	t.Run("DeniesAboveLimit", func(t *testing.T) {
		limiter, err := services.NewRateLimiter(
			utils.GetEnvAsString("REDIS_URL", "redis://localhost:6379/1"),
			2, time.Minute)
		if err != nil {
			t.Skipf("Redis not available: %v", err)
		}
		defer limiter.Close()

		// httptest requests all arrive from the same client address
		if err := limiter.Client.Del(context.Background(), "ratelimit:192.0.2.1").Err(); err != nil {
			t.Fatal("failed to reset rate counter", err)
		}

		router := rateLimitedRouter(limiter)
		for i := 0; i < 2; i++ {
			if w := hitLimited(router); w.Code != http.StatusOK {
				t.Fatalf("request %d: expected 200 below the limit, got %d", i+1, w.Code)
			}
		}
		if w := hitLimited(router); w.Code != http.StatusTooManyRequests {
			t.Fatalf("expected 429 above the limit, got %d", w.Code)
		}
	})
}
