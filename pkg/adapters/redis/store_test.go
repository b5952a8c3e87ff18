package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/swml/pkg/adapters/redis"
	"github.com/aretw0/swml/pkg/codec"
	"github.com/aretw0/swml/pkg/ports"
)

func newClient(t *testing.T) (*miniredis.Miniredis, *backend.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestRedisStore_Contract(t *testing.T) {
	_, client := newClient(t)
	ports.RunDocumentStoreContract(t, redis.NewFromClient(client))
}

func TestRedisStore_Prefix(t *testing.T) {
	mr, client := newClient(t)
	ctx := context.Background()

	a := redis.NewFromClient(client, redis.WithPrefix("a:"))
	b := redis.NewFromClient(client, redis.WithPrefix("b:"))
	require.NoError(t, a.Save(ctx, "hello", []byte(`{"sections":{}}`), codec.JSON))

	assert.True(t, mr.Exists("a:doc:hello"))
	assert.Equal(t, "json", mr.HGet("a:doc:hello", "format"))

	_, err := b.Load(ctx, "hello")
	assert.ErrorIs(t, err, ports.ErrDocumentNotFound)
	names, err := b.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)

	// a document may be called "index" without clobbering the name index
	require.NoError(t, a.Save(ctx, "index", []byte(`{}`), codec.JSON))
	names, err = a.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"hello", "index"}, names)
}

func TestRedisStore_New(t *testing.T) {
	mr := miniredis.RunT(t)

	store, err := redis.New("redis://" + mr.Addr() + "/0")
	require.NoError(t, err)
	defer store.Close()
	assert.NoError(t, store.Ping(context.Background()))

	_, err = redis.New("http://nope")
	assert.Error(t, err)
}
