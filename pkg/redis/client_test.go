package redis

import (
	"context"
	"strconv"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client, err := NewClient(Config{Addr: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client, mr
}

func TestNewClient_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewClient(Config{Addr: addr})
	assert.ErrorContains(t, err, "failed to connect to redis")
}

func TestClient_Reads(t *testing.T) {
	ctx := context.Background()
	client, mr := newTestClient(t)

	require.NoError(t, mr.Set("k", "v"))
	mr.HSet("h", "a", "1")
	_, err := mr.SAdd("s", "x", "y")
	require.NoError(t, err)

	v, err := client.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", v)

	_, err = client.Get(ctx, "missing")
	assert.True(t, IsNil(err))

	ok, err := client.Exists(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)

	vals, err := client.HMGet(ctx, "h", "a", "b")
	require.NoError(t, err)
	assert.Equal(t, []any{"1", nil}, vals)

	ok, err = client.SIsMember(ctx, "s", "x")
	require.NoError(t, err)
	assert.True(t, ok)

	members, err := client.SMembers(ctx, "s")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"x", "y"}, members)
}

func TestClient_AtomicSerializesConcurrentWriters(t *testing.T) {
	ctx := context.Background()
	client, mr := newTestClient(t)

	incr := func(tx *redis.Tx) error {
		n, err := tx.Get(ctx, "counter").Int()
		if err != nil && !IsNil(err) {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
			p.Set(ctx, "counter", n+1, 0)
			return nil
		})
		return err
	}

	const workers = 10
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, client.Atomic(ctx, incr, "counter"))
		}()
	}
	wg.Wait()

	v, err := mr.Get("counter")
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(workers), v)
}

func TestClient_AtomicHonorsCanceledContext(t *testing.T) {
	client, _ := newTestClient(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := client.Atomic(ctx, func(*redis.Tx) error { return nil }, "k")
	assert.Error(t, err)
}
