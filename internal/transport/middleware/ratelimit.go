package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/heartmarshall/foodcatalog-backend/internal/config"
)

const (
	bucketIdleTTL          = 10 * time.Minute
	defaultCleanupInterval = 5 * time.Minute
)

// RateLimiter is a per-client token bucket. Clients are keyed by the host
// part of RemoteAddr; every bucket holds up to one minute's worth of requests.
type RateLimiter struct {
	capacity float64
	perSec   float64
	now      func() time.Time

	buckets sync.Map // client host -> *bucket
	stop    chan struct{}
	once    sync.Once
}

type bucket struct {
	mu     sync.Mutex
	tokens float64
	seen   time.Time
}

// NewRateLimiter starts a limiter allowing cfg.RequestsPerMinute per client.
// Stop must be called to release the cleanup goroutine.
func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	perMinute := float64(max(cfg.RequestsPerMinute, 1))
	rl := &RateLimiter{
		capacity: perMinute,
		perSec:   perMinute / 60,
		now:      time.Now,
		stop:     make(chan struct{}),
	}

	interval := cfg.CleanupInterval
	if interval <= 0 {
		interval = defaultCleanupInterval
	}
	go rl.cleanup(interval)

	return rl
}

// Stop terminates the cleanup goroutine. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Middleware rejects requests over the limit with 429 and a Retry-After hint.
func (rl *RateLimiter) Middleware() Middleware {
	retryAfter := strconv.Itoa(int(math.Ceil(1 / rl.perSec)))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.allow(clientKey(r)) {
				w.Header().Set("Retry-After", retryAfter)
				writeJSONError(w, http.StatusTooManyRequests, "Too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (rl *RateLimiter) allow(key string) bool {
	now := rl.now()
	v, _ := rl.buckets.LoadOrStore(key, &bucket{tokens: rl.capacity, seen: now})
	b := v.(*bucket)

	b.mu.Lock()
	defer b.mu.Unlock()

	b.tokens = math.Min(rl.capacity, b.tokens+now.Sub(b.seen).Seconds()*rl.perSec)
	b.seen = now
	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.evictIdle(rl.now())
		}
	}
}

func (rl *RateLimiter) evictIdle(now time.Time) {
	rl.buckets.Range(func(key, value any) bool {
		b := value.(*bucket)
		b.mu.Lock()
		idle := now.Sub(b.seen)
		b.mu.Unlock()
		if idle > bucketIdleTTL {
			rl.buckets.Delete(key)
		}
		return true
	})
}
