// Package testingz provides helpers to write concise tests.
package testingz

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// Result wraps a (value, error) pair returned by the code under test.
type Result[T any] struct {
	t   *testing.T
	v   T
	err error
}

func R[T any](v T, err error) *Result[T] {
	return &Result[T]{
		v:   v,
		err: err,
	}
}

func (r *Result[T]) V() T {
	return r.v
}

func (r *Result[T]) NoError(t *testing.T, msgf ...any) *Result[T] {
	require.NoError(t, r.err, msgf...)
	r.t = t
	return r
}

func (r *Result[T]) ErrorIs(t *testing.T, target error, msgf ...any) *Result[T] {
	require.ErrorIs(t, r.err, target, msgf...)
	r.t = t
	return r
}

func (r *Result[T]) Equal(v T, msgf ...any) *Result[T] {
	require.Equal(r.t, v, r.v, msgf...)
	return r
}

func (r *Result[T]) Do(f func(t *testing.T, it T)) *Result[T] {
	f(r.t, r.v)
	return r
}

// Counter records how many times, and with which arguments,
// a function under test has been called.
// It is safe to use from callbacks running on other goroutines.
type Counter[A any] struct {
	mu    sync.Mutex
	calls [][]A
}

// Hit records a call with args.
func (c *Counter[A]) Hit(args ...A) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, append([]A(nil), args...))
}

// N returns the number of recorded calls.
func (c *Counter[A]) N() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.calls)
}

// Args returns the arguments of the i-th call.
func (c *Counter[A]) Args(i int) []A {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[i]
}

// Func returns a function that records its calls on c and returns ret.
func Func[A, R any](c *Counter[A], ret R) func(...A) R {
	return func(args ...A) R {
		c.Hit(args...)
		return ret
	}
}
