package memory

import (
	"context"
	"sync"
	"time"
)

// RateLimiter fenêtre glissante en processus : au plus limit requêtes par clé sur window.
type RateLimiter struct {
	mu     sync.Mutex
	limit  int
	window time.Duration
	hits   map[string][]time.Time
	now    func() time.Time
}

// NewRateLimiter limiteur de limit requêtes par window.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{limit: limit, window: window, hits: make(map[string][]time.Time), now: time.Now}
}

// Allow enregistre la requête si elle passe ; sinon renvoie le délai avant la prochaine place.
func (l *RateLimiter) Allow(_ context.Context, key string) (bool, time.Duration, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	from := now.Add(-l.window)
	kept := l.hits[key][:0]
	for _, t := range l.hits[key] {
		if t.After(from) {
			kept = append(kept, t)
		}
	}
	if len(kept) >= l.limit {
		l.hits[key] = kept
		return false, kept[0].Add(l.window).Sub(now), nil
	}
	l.hits[key] = append(kept, now)
	return true, 0, nil
}
