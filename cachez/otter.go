package cachez

import (
	"fmt"

	"github.com/maypok86/otter/v2"
)

// Otter is a size-bounded in-memory [Cache].
// Entries beyond the bound are evicted, so a memoized function may run again for them.
type Otter[K comparable, V any] struct {
	c *otter.Cache[K, V]
}

// NewOtter creates a cache that holds at most size entries.
func NewOtter[K comparable, V any](size int) (*Otter[K, V], error) {
	c, err := otter.New(&otter.Options[K, V]{
		MaximumSize: size,
	})
	if err != nil {
		return nil, fmt.Errorf("cachez: new otter: %w", err)
	}
	return &Otter[K, V]{c: c}, nil
}

func (o *Otter[K, V]) Get(k K) (V, bool) {
	return o.c.GetIfPresent(k)
}

func (o *Otter[K, V]) Set(k K, v V) {
	o.c.Set(k, v)
}
