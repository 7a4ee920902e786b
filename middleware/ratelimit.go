package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pin-point/server-go/utils"
)

// RateLimiter is a per-user sliding window over the last minute.
// It is advisory and per-replica; the client backs off on 429.
type RateLimiter struct {
	mu        sync.Mutex
	limit     int
	window    time.Duration
	history   map[string][]time.Time
	lastSweep time.Time
}

func NewRateLimiter(perMinute int) *RateLimiter {
	return &RateLimiter{
		limit:     perMinute,
		window:    time.Minute,
		history:   make(map[string][]time.Time),
		lastSweep: time.Now(),
	}
}

func (rl *RateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	cutoff := now.Add(-rl.window)

	// Keys for users who went quiet would otherwise pile up for the
	// process lifetime; one sweep per window keeps the map bounded by
	// the currently active callers.
	if now.Sub(rl.lastSweep) > rl.window {
		rl.sweep(cutoff)
		rl.lastSweep = now
	}

	recent := rl.history[key][:0]
	for _, t := range rl.history[key] {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}
	if len(recent) >= rl.limit {
		rl.history[key] = recent
		return false
	}
	rl.history[key] = append(recent, now)
	return true
}

// sweep drops every key whose entries have all expired. Caller holds
// the mutex.
func (rl *RateLimiter) sweep(cutoff time.Time) {
	for key, times := range rl.history {
		stale := true
		for _, t := range times {
			if t.After(cutoff) {
				stale = false
				break
			}
		}
		if stale {
			delete(rl.history, key)
		}
	}
}

// Limit guards write endpoints. Keyed on the authenticated user when
// present, the client IP otherwise.
func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if user := utils.GetUser(c); user != nil {
			key = "u:" + strconv.FormatUint(uint64(user.UserID), 10)
		}
		if !rl.allow(key) {
			c.JSON(http.StatusTooManyRequests, gin.H{"message": "too many requests, slow down"})
			c.Abort()
			return
		}
		c.Next()
	}
}
