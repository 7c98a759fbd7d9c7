// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	domainerror "github.com/gestao/backend/internal/domain/error"
	"github.com/gestao/backend/internal/integration/entrypoint/dto"
)

const (
	defaultLoginAttempts = 5
	defaultLoginWindow   = time.Minute
)

// attemptWindow counts attempts for one client within the current window.
type attemptWindow struct {
	count   int
	started time.Time
}

// RateLimiter throttles requests per client IP over a fixed window. It backs
// the login route, where unthrottled attempts would allow email enumeration.
type RateLimiter struct {
	mu      sync.Mutex
	windows map[string]*attemptWindow
	limit   int
	window  time.Duration
}

// NewRateLimiter creates a rate limiter allowing limit attempts per window.
// Non-positive arguments fall back to 5 attempts per minute.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	if limit <= 0 {
		limit = defaultLoginAttempts
	}
	if window <= 0 {
		window = defaultLoginWindow
	}
	return &RateLimiter{
		windows: make(map[string]*attemptWindow),
		limit:   limit,
		window:  window,
	}
}

// Middleware returns a Gin handler that enforces the limit.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip rate limiting in test environment
		if os.Getenv("ENV") == "test" {
			c.Next()
			return
		}

		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		if !rl.allow(clientIP) {
			c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// allow records an attempt for key and reports whether it is within the limit.
func (rl *RateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()

	w, ok := rl.windows[key]
	if !ok || now.Sub(w.started) >= rl.window {
		rl.prune(now)
		rl.windows[key] = &attemptWindow{count: 1, started: now}
		return true
	}

	if w.count >= rl.limit {
		return false
	}
	w.count++
	return true
}

// prune drops expired windows. Called with the lock held whenever a new
// window opens, so the map stays bounded by the set of recently active clients.
func (rl *RateLimiter) prune(now time.Time) {
	for key, w := range rl.windows {
		if now.Sub(w.started) >= rl.window {
			delete(rl.windows, key)
		}
	}
}
