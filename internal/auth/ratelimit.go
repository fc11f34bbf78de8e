package auth

import (
	"fmt"
	"sync"
	"time"
)

// AttemptStore tracks login attempts per client IP. The in-memory
// implementation suffices for a single instance; a shared cache can be
// slotted in behind the same interface for multi-instance deployments.
type AttemptStore interface {
	// Record counts an attempt and returns the total within the current
	// window along with when the window started.
	Record(ip string, now time.Time) (count int, windowStart time.Time)
	// Reset clears the counter for an IP.
	Reset(ip string)
}

type attemptEntry struct {
	count       int
	windowStart time.Time
}

// MemoryAttemptStore is a mutex-guarded map keyed by client IP.
type MemoryAttemptStore struct {
	mu     sync.Mutex
	window time.Duration
	byIP   map[string]*attemptEntry
}

func NewMemoryAttemptStore(window time.Duration) *MemoryAttemptStore {
	return &MemoryAttemptStore{
		window: window,
		byIP:   make(map[string]*attemptEntry),
	}
}

func (s *MemoryAttemptStore) Record(ip string, now time.Time) (int, time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.byIP[ip]
	if !ok || now.Sub(e.windowStart) > s.window {
		e = &attemptEntry{windowStart: now}
		s.byIP[ip] = e
	}
	e.count++
	return e.count, e.windowStart
}

func (s *MemoryAttemptStore) Reset(ip string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byIP, ip)
}

// Limiter throttles login attempts: up to max attempts per IP inside a
// sliding window. The cap is generous, tuned for a single owner
// fat-fingering a password rather than adversarial resistance.
type Limiter struct {
	store  AttemptStore
	max    int
	window time.Duration
}

func NewLimiter(store AttemptStore, max int, window time.Duration) *Limiter {
	return &Limiter{store: store, max: max, window: window}
}

// Allow records an attempt for ip and reports whether it may proceed.
// When blocked, message holds a human-readable retry hint.
func (l *Limiter) Allow(ip string) (allowed bool, message string) {
	now := time.Now()
	count, windowStart := l.store.Record(ip, now)
	if count <= l.max {
		return true, ""
	}
	remaining := l.window - now.Sub(windowStart)
	minutes := int(remaining.Minutes()) + 1
	return false, fmt.Sprintf("Too many failed attempts. Please try again in %d minutes.", minutes)
}

// Reset clears the attempt counter, called after a successful login.
func (l *Limiter) Reset(ip string) {
	l.store.Reset(ip)
}
