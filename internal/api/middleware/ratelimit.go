package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/martijn/watchlist/internal/web"
	"golang.org/x/time/rate"
)

const (
	bucketIdleTTL = 10 * time.Minute
	pruneInterval = 5 * time.Minute
)

// LoginLimiter throttles login attempts with one token bucket per client IP.
// Idle buckets are pruned in the background until Stop is called.
type LoginLimiter struct {
	limit rate.Limit
	burst int
	now   func() time.Time

	mu      sync.Mutex
	buckets map[string]*bucket

	stop     chan struct{}
	stopOnce sync.Once
}

type bucket struct {
	*rate.Limiter
	seen time.Time
}

// NewLoginLimiter allows rps attempts per second per client, with bursts
// of up to burst attempts.
func NewLoginLimiter(rps float64, burst int) *LoginLimiter {
	l := &LoginLimiter{
		limit:   rate.Limit(rps),
		burst:   burst,
		now:     time.Now,
		buckets: make(map[string]*bucket),
		stop:    make(chan struct{}),
	}
	go l.run()
	return l
}

// Allow spends one token from the client's bucket.
func (l *LoginLimiter) Allow(ip string) bool {
	l.mu.Lock()
	b, ok := l.buckets[ip]
	if !ok {
		b = &bucket{Limiter: rate.NewLimiter(l.limit, l.burst)}
		l.buckets[ip] = b
	}
	b.seen = l.now()
	l.mu.Unlock()

	return b.Allow()
}

// prune drops buckets not used since before cutoff.
func (l *LoginLimiter) prune(cutoff time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for ip, b := range l.buckets {
		if b.seen.Before(cutoff) {
			delete(l.buckets, ip)
		}
	}
}

func (l *LoginLimiter) run() {
	ticker := time.NewTicker(pruneInterval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			l.prune(l.now().Add(-bucketIdleTTL))
		}
	}
}

func (l *LoginLimiter) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}

// Middleware answers with the 429 page once the client's bucket is empty.
func (l *LoginLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if l.Allow(c.ClientIP()) {
			c.Next()
			return
		}
		web.RenderError(c, http.StatusTooManyRequests)
		c.Abort()
	}
}
