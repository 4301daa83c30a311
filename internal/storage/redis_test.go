package storage

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisStore(t *testing.T) (*RedisTokenStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisTokenStore(client), mr
}

func TestRedisTokenStoreRoundTrip(t *testing.T) {
	store, mr := newTestRedisStore(t)
	ctx := context.Background()

	tok := testToken("tok1", time.Hour)
	require.NoError(t, store.Store(ctx, tok, testAuth("13800000000")))

	// The entry carries a TTL matching the token expiry.
	ttl := mr.TTL("access_token:tok1")
	assert.Greater(t, ttl, 59*time.Minute)
	assert.LessOrEqual(t, ttl, time.Hour)

	auth, err := store.Lookup(ctx, "tok1")
	require.NoError(t, err)
	require.NotNil(t, auth)
	assert.Equal(t, "13800000000", auth.User.Username)
	assert.Equal(t, []string{"read"}, auth.Request.Scopes)

	require.NoError(t, store.Remove(ctx, "tok1"))

	auth, err = store.Lookup(ctx, "tok1")
	require.NoError(t, err)
	assert.Nil(t, auth)
}

func TestRedisTokenStoreUnknownToken(t *testing.T) {
	store, _ := newTestRedisStore(t)

	auth, err := store.Lookup(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, auth)
}

func TestRedisTokenStoreExpiry(t *testing.T) {
	store, mr := newTestRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Store(ctx, testToken("tok1", time.Minute), testAuth("13800000000")))
	mr.FastForward(2 * time.Minute)

	auth, err := store.Lookup(ctx, "tok1")
	require.NoError(t, err)
	assert.Nil(t, auth)
}

func TestRedisTokenStoreRejectsExpiredToken(t *testing.T) {
	store, _ := newTestRedisStore(t)

	err := store.Store(context.Background(), testToken("tok1", -time.Minute), testAuth("13800000000"))
	assert.Error(t, err)
}
