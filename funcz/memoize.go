package funcz

import (
	"context"
	"sync"

	"github.com/adobaai/underbar/cachez"
)

type flight[R any] struct {
	done chan struct{}
	res  R
}

type memo[K comparable, R any] struct {
	fn    func(K) R
	cache cachez.Cache[K, R]

	mu      sync.Mutex
	flights map[K]*flight[R]
}

// call answers from the cache, or computes once per key while other
// callers of the same key wait. fn may call the memoized function for other keys.
func (m *memo[K, R]) call(k K) R {
	m.mu.Lock()
	if res, ok := m.cache.Get(k); ok {
		m.mu.Unlock()
		memoizeHits.Add(context.Background(), 1)
		return res
	}
	if f, ok := m.flights[k]; ok {
		m.mu.Unlock()
		<-f.done
		memoizeHits.Add(context.Background(), 1)
		return f.res
	}
	f := &flight[R]{done: make(chan struct{})}
	m.flights[k] = f
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		delete(m.flights, k)
		m.mu.Unlock()
		close(f.done)
	}()

	memoizeMisses.Add(context.Background(), 1)
	f.res = m.fn(k)
	m.cache.Set(k, f.res)
	return f.res
}

// Memoize returns a function that remembers the result of fn per key.
// fn runs at most once per key, even for concurrent callers.
func Memoize[K comparable, R any](fn func(K) R) func(K) R {
	return MemoizeWith(fn, cachez.NewMap[K, R]())
}

// MemoizeWith is like [Memoize] but stores the results in cache.
// With a bounded or remote cache, fn may run again for a key the cache has dropped.
func MemoizeWith[K comparable, R any](fn func(K) R, cache cachez.Cache[K, R]) func(K) R {
	m := &memo[K, R]{
		fn:      fn,
		cache:   cache,
		flights: make(map[K]*flight[R]),
	}
	return m.call
}

