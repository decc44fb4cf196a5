package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"turnos/queue-service/internal/constant"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimitMiddleware keeps one token bucket per client IP.
type RateLimitMiddleware struct {
	mu      sync.Mutex
	entries map[string]*limiterEntry
	rps     rate.Limit
	burst   int
	idleTTL time.Duration
	now     func() time.Time
}

type limiterEntry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

func NewRateLimitMiddleware(rps float64, burst int, idleTTL time.Duration) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		entries: make(map[string]*limiterEntry),
		rps:     rate.Limit(rps),
		burst:   burst,
		idleTTL: idleTTL,
		now:     time.Now,
	}
}

func (m *RateLimitMiddleware) Handle(c *gin.Context) {
	if !m.limiter(c.ClientIP()).Allow() {
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": constant.RateLimitedErrMsg})
		return
	}
	c.Next()
}

func (m *RateLimitMiddleware) limiter(key string) *rate.Limiter {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	if ent, ok := m.entries[key]; ok {
		ent.lastSeen = now
		return ent.lim
	}

	lim := rate.NewLimiter(m.rps, m.burst)
	m.entries[key] = &limiterEntry{lim: lim, lastSeen: now}
	return lim
}

// Cleanup forgets clients idle for longer than idleTTL.
func (m *RateLimitMiddleware) Cleanup() {
	cutoff := m.now().Add(-m.idleTTL)

	m.mu.Lock()
	defer m.mu.Unlock()

	for k, ent := range m.entries {
		if ent.lastSeen.Before(cutoff) {
			delete(m.entries, k)
		}
	}
}

// StartJanitor runs Cleanup every interval until ctx is done.
func (m *RateLimitMiddleware) StartJanitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.Cleanup()
			}
		}
	}()
}

func (m *RateLimitMiddleware) size() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
