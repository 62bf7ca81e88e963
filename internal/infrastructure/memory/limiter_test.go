package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_FenetreGlissante(t *testing.T) {
	clock := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	l := NewRateLimiter(2, time.Minute)
	l.now = func() time.Time { return clock }
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, _, err := l.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, ok)
	}
	ok, wait, err := l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, time.Minute, wait)

	ok, _, _ = l.Allow(ctx, "10.0.0.2")
	assert.True(t, ok, "les clés sont indépendantes")

	clock = clock.Add(time.Minute + time.Second)
	ok, _, _ = l.Allow(ctx, "10.0.0.1")
	assert.True(t, ok)
}

func TestRefreshRegistry_UsageUnique(t *testing.T) {
	r := NewRefreshRegistry()
	ctx := context.Background()
	until := time.Now().Add(time.Hour)

	first, err := r.Consume(ctx, "jti-1", until)
	require.NoError(t, err)
	assert.True(t, first)

	first, err = r.Consume(ctx, "jti-1", until)
	require.NoError(t, err)
	assert.False(t, first)

	first, _ = r.Consume(ctx, "jti-2", until)
	assert.True(t, first)
}
