package middleware

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRateLimitRedis(t *testing.T) *redis.Client {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return client
}

func TestCheckRateLimit(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	client := setupRateLimitRedis(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		allowed, err := CheckRateLimit(ctx, client, "login", "1.2.3.4", 5, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, err := CheckRateLimit(ctx, client, "login", "1.2.3.4", 5, time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed, "request over the limit should be blocked")
}

func TestCheckRateLimit_SeparateKeys(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	client := setupRateLimitRedis(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := CheckRateLimit(ctx, client, "login", "1.2.3.4", 3, time.Minute)
		require.NoError(t, err)
	}

	// A different caller and a different resource both have fresh budgets.
	allowed, err := CheckRateLimit(ctx, client, "login", "5.6.7.8", 3, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = CheckRateLimit(ctx, client, "register", "1.2.3.4", 3, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestCheckRateLimit_WindowExpiry(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := CheckRateLimit(ctx, client, "search", "1.2.3.4", 2, time.Minute)
		require.NoError(t, err)
	}
	allowed, err := CheckRateLimit(ctx, client, "search", "1.2.3.4", 2, time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed)

	mr.FastForward(2 * time.Minute)

	allowed, err = CheckRateLimit(ctx, client, "search", "1.2.3.4", 2, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestCheckRateLimit_DisabledOutsideProduction(t *testing.T) {
	for _, env := range []string{"test", "development"} {
		t.Run(env, func(t *testing.T) {
			t.Setenv("APP_ENV", env)
			ctx := context.Background()

			// nil client: the check must still pass without touching Redis
			for i := 0; i < 100; i++ {
				allowed, err := CheckRateLimit(ctx, nil, "login", "1.2.3.4", 1, time.Minute)
				require.NoError(t, err)
				assert.True(t, allowed)
			}
		})
	}
}

func TestCheckRateLimit_NilClientInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	allowed, err := CheckRateLimit(context.Background(), nil, "login", "1.2.3.4", 1, time.Minute)
	assert.Error(t, err)
	assert.False(t, allowed)
}

func TestCheckRateLimit_ConcurrentCallers(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	client := setupRateLimitRedis(t)
	ctx := context.Background()

	const limit = 10
	allowedCount := 0
	for i := 0; i < 25; i++ {
		allowed, err := CheckRateLimit(ctx, client,
			"views", "shared", limit, time.Minute)
		require.NoError(t, err)
		if allowed {
			allowedCount++
		}
	}
	assert.Equal(t, limit, allowedCount)
}
