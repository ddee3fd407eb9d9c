package cachez

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/xid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCache(t *testing.T, c Cache[string, int]) {
	_, ok := c.Get("a")
	assert.False(t, ok)

	c.Set("a", 1)
	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	c.Set("a", 2)
	v, _ = c.Get("a")
	assert.Equal(t, 2, v)

	c.Set("zero", 0)
	v, ok = c.Get("zero")
	assert.True(t, ok, "zero values are stored")
	assert.Zero(t, v)
}

func TestMap(t *testing.T) {
	m := NewMap[string, int]()
	testCache(t, m)
	assert.Equal(t, 2, m.Len())

	t.Run("Concurrent", func(t *testing.T) {
		m := NewMap[int, int]()
		var wg sync.WaitGroup
		for i := range 50 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				m.Set(i, i*i)
				m.Get(i)
			}()
		}
		wg.Wait()
		assert.Equal(t, 50, m.Len())
	})
}

func TestOtter(t *testing.T) {
	o, err := NewOtter[string, int](100)
	require.NoError(t, err)
	testCache(t, o)
}

func TestRedis(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
	defer rdb.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		t.Skip("redis is not available:", err)
	}

	prefix := "underbar:test:" + xid.New().String() + ":"
	r := NewRedis[string, int](rdb, prefix, WithTTL(time.Minute))
	testCache(t, r)
	assert.Equal(t, prefix+"a", r.Key("a"))

	t.Run("Struct", func(t *testing.T) {
		type point struct {
			X, Y int
		}
		r := NewRedis[int, point](rdb, prefix)
		r.Set(1, point{1, 2})
		v, ok := r.Get(1)
		assert.True(t, ok)
		assert.Equal(t, point{1, 2}, v)
	})
}

func TestRedisUnavailable(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer rdb.Close()

	r := NewRedis[string, int](rdb, "x:", WithTimeout(100*time.Millisecond))
	assert.NotPanics(t, func() { r.Set("a", 1) })
	_, ok := r.Get("a")
	assert.False(t, ok)
}
