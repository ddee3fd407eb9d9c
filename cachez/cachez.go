// Package cachez provides key-value stores for remembered results.
package cachez

import (
	"log/slog"
	"sync"
	"time"
)

// Cache stores values by key.
// Implementations must be safe for concurrent use.
type Cache[K comparable, V any] interface {
	// Get returns the value stored under k, or false when there is none.
	Get(k K) (V, bool)
	// Set stores v under k.
	Set(k K, v V)
}

// Map is an unbounded in-memory [Cache].
type Map[K comparable, V any] struct {
	mu sync.RWMutex
	m  map[K]V
}

func NewMap[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{m: make(map[K]V)}
}

func (m *Map[K, V]) Get(k K) (v V, ok bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok = m.m[k]
	return
}

func (m *Map[K, V]) Set(k K, v V) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.m[k] = v
}

func (m *Map[K, V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.m)
}

type newOption struct {
	logger  *slog.Logger
	ttl     time.Duration
	timeout time.Duration
}

type Option func(o *newOption)

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(o *newOption) {
		o.logger = log.With("component", "cachez")
	}
}

// WithTTL sets how long a remote entry lives. Zero means forever.
func WithTTL(d time.Duration) Option {
	return func(o *newOption) {
		o.ttl = d
	}
}

// WithTimeout bounds every remote round trip.
func WithTimeout(d time.Duration) Option {
	return func(o *newOption) {
		o.timeout = d
	}
}

func buildOptions(opts []Option) newOption {
	no := newOption{
		logger:  slog.Default().With("component", "cachez"),
		timeout: time.Second,
	}
	for _, opt := range opts {
		opt(&no)
	}
	return no
}
