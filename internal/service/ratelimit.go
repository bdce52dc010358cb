package service

import (
	"sync"
	"time"
)

// LoginLimiter is an in-memory per-key rate limiter using the token bucket
// algorithm, used to throttle credential-guessing against the login
// endpoint. It is safe for concurrent use and cleans up stale buckets in
// the background.
type LoginLimiter struct {
	mu       sync.Mutex
	buckets  map[string]*bucket
	rate     float64 // tokens added per second
	capacity float64 // maximum burst
	stop     chan struct{}
}

type bucket struct {
	tokens float64
	last   time.Time
}

// NewLoginLimiter creates a limiter allowing a burst of capacity attempts
// per key, refilling at rate attempts per second.
func NewLoginLimiter(rate, capacity float64) *LoginLimiter {
	l := &LoginLimiter{
		buckets:  make(map[string]*bucket),
		rate:     rate,
		capacity: capacity,
		stop:     make(chan struct{}),
	}
	go l.cleanup()
	return l
}

// Allow reports whether the given key may attempt a login. Each call
// consumes one token.
func (l *LoginLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{tokens: l.capacity, last: time.Now()}
		l.buckets[key] = b
	}

	now := time.Now()
	elapsed := now.Sub(b.last).Seconds()
	b.tokens = min(b.tokens+elapsed*l.rate, l.capacity)
	b.last = now

	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	return false
}

// Close stops the background cleanup goroutine.
func (l *LoginLimiter) Close() {
	close(l.stop)
}

// cleanup periodically drops buckets that have been idle for 10 minutes.
func (l *LoginLimiter) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			l.mu.Lock()
			cutoff := time.Now().Add(-10 * time.Minute)
			for key, b := range l.buckets {
				if b.last.Before(cutoff) {
					delete(l.buckets, key)
				}
			}
			l.mu.Unlock()
		}
	}
}
