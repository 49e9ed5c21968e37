package cart

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umarsaeed-beep/clothing-project/internal/domain"
)

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisStore(client, "session-1"), mr
}

func TestRedisStore_LoadEmptySession(t *testing.T) {
	store, _ := newRedisStore(t)

	items, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestRedisStore_SaveThenLoad(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t)

	in := []domain.LineItem{
		{ProductID: 1, Title: "Casual Shirt", Price: 3299, Quantity: 2},
	}
	require.NoError(t, store.Save(ctx, in))
	require.True(t, mr.Exists("cart:session-1"))

	out, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestRedisStore_SessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	a := NewRedisStore(client, "a")
	b := NewRedisStore(client, "b")

	require.NoError(t, a.Save(ctx, []domain.LineItem{{ProductID: 1, Quantity: 1}}))

	items, err := b.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestRedisStore_MalformedValue(t *testing.T) {
	store, mr := newRedisStore(t)
	require.NoError(t, mr.Set("cart:session-1", "not json"))

	_, err := store.Load(context.Background())
	assert.Error(t, err)
}
