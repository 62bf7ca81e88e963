package memory

import (
	"context"
	"sync"
	"time"
)

// RefreshRegistry registre en processus des jetons de rafraîchissement consommés, utilisé
// quand REDIS_URL est vide. Les entrées expirées sont purgées à chaque consommation.
type RefreshRegistry struct {
	mu   sync.Mutex
	used map[string]time.Time
	now  func() time.Time
}

// NewRefreshRegistry registre vide.
func NewRefreshRegistry() *RefreshRegistry {
	return &RefreshRegistry{used: make(map[string]time.Time), now: time.Now}
}

// Consume false si jti a déjà été consommé et n'a pas expiré.
func (r *RefreshRegistry) Consume(_ context.Context, jti string, until time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	for k, exp := range r.used {
		if !exp.After(now) {
			delete(r.used, k)
		}
	}
	if _, ok := r.used[jti]; ok {
		return false, nil
	}
	r.used[jti] = until
	return true, nil
}
