package collections

import (
	"cmp"
	"maps"
	"slices"

	"github.com/samber/lo"
)

// Dict is a mapping that remembers insertion order.
// The zero value is an empty Dict ready to use; a nil *Dict reads as empty.
type Dict[K comparable, V any] struct {
	keys []K
	m    map[K]V
}

func NewDict[K comparable, V any]() *Dict[K, V] {
	return &Dict[K, V]{m: make(map[K]V)}
}

// FromMap returns a Dict holding the entries of m in ascending key order.
func FromMap[K cmp.Ordered, V any](m map[K]V) *Dict[K, V] {
	keys := lo.Keys(m)
	slices.Sort(keys)
	d := NewDict[K, V]()
	EachSeq(keys, func(k K, _ int) {
		d.Set(k, m[k])
	})
	return d
}

// Set stores v under k. A new key is appended to the traversal order;
// an existing key keeps its position.
func (d *Dict[K, V]) Set(k K, v V) *Dict[K, V] {
	if d.m == nil {
		d.m = make(map[K]V)
	}
	if _, ok := d.m[k]; !ok {
		d.keys = append(d.keys, k)
	}
	d.m[k] = v
	return d
}

func (d *Dict[K, V]) Get(k K) (v V, ok bool) {
	if d == nil {
		return
	}
	v, ok = d.m[k]
	return
}

func (d *Dict[K, V]) Has(k K) bool {
	_, ok := d.Get(k)
	return ok
}

func (d *Dict[K, V]) Delete(k K) {
	if !d.Has(k) {
		return
	}
	delete(d.m, k)
	d.keys = slices.DeleteFunc(d.keys, func(it K) bool { return it == k })
}

func (d *Dict[K, V]) Len() int {
	if d == nil {
		return 0
	}
	return len(d.keys)
}

func (d *Dict[K, V]) Keys() []K {
	if d == nil {
		return nil
	}
	return slices.Clone(d.keys)
}

func (d *Dict[K, V]) At(k K) V {
	v, _ := d.Get(k)
	return v
}

// Map returns a copy of the entries as a Go map.
func (d *Dict[K, V]) Map() map[K]V {
	if d == nil {
		return map[K]V{}
	}
	return maps.Clone(d.m)
}
