package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RefreshRegistry jetons de rafraîchissement consommés, conservés jusqu'à leur expiration.
type RefreshRegistry struct {
	client    redis.Cmdable
	keyPrefix string
	now       func() time.Time
}

// NewRefreshRegistry registre adossé à client.
func NewRefreshRegistry(client redis.Cmdable) *RefreshRegistry {
	return &RefreshRegistry{client: client, keyPrefix: "refresh:used:", now: time.Now}
}

// Consume false si jti a déjà été consommé. SET NX rend la consommation atomique entre instances.
func (r *RefreshRegistry) Consume(ctx context.Context, jti string, until time.Time) (bool, error) {
	ttl := until.Sub(r.now())
	if ttl <= 0 {
		ttl = time.Second
	}
	ok, err := r.client.SetNX(ctx, r.keyPrefix+jti, 1, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("refresh registry: %w", err)
	}
	return ok, nil
}
