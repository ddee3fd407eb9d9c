package collections

import (
	"cmp"
	"reflect"
	"slices"

	"github.com/samber/lo"
)

// Shuffle returns a random permutation of items. items is not modified.
func Shuffle[V any](items []V) []V {
	return lo.Shuffle(Map(items, Identity[V]))
}

type sortKey[V any, O any] struct {
	v   V
	key O
}

// SortBy returns the values of c stably sorted by criterion.
func SortBy[K comparable, V any, O cmp.Ordered](c Collection[K, V], criterion func(it V) O) []V {
	keyed := MapCollection(c, func(v V, _ K) sortKey[V, O] {
		return sortKey[V, O]{v: v, key: criterion(v)}
	})
	slices.SortStableFunc(keyed, func(a, b sortKey[V, O]) int { return cmp.Compare(a.key, b.key) })
	return Map(keyed, func(it sortKey[V, O]) V { return it.v })
}

// SortByField returns the values of c stably sorted by the value stored under field.
// The field is resolved like [Field]; values without it sort last.
// It panics when the field values are not mutually comparable.
func SortByField[K comparable, V any](c Collection[K, V], field string) []V {
	keyed := MapCollection(c, func(v V, _ K) sortKey[V, any] {
		key, _ := Field(v, field)
		return sortKey[V, any]{v: v, key: key}
	})
	slices.SortStableFunc(keyed, func(a, b sortKey[V, any]) int { return compareAny(a.key, b.key) })
	return Map(keyed, func(it sortKey[V, any]) V { return it.v })
}

// Zip groups the items sharing an index:
// the i-th result holds the i-th item of every sequence.
// The result is as long as the longest sequence; missing items are zero values.
func Zip[V any](seqs ...[]V) [][]V {
	n := Reduce(seqOf(seqs), func(n int, s []V) int { return max(n, len(s)) }, 0)
	res := make([][]V, n)
	EachSeq(res, func(_ []V, i int) {
		res[i] = Map(seqs, func(s []V) V {
			if i < len(s) {
				return s[i]
			}
			var zero V
			return zero
		})
	})
	return res
}

// Flatten collapses nested slices and arrays into one slice, keeping order.
// With shallow set only one level of nesting is removed.
// Strings and byte slices or arrays are not treated as sequences.
func Flatten(nested []any, shallow ...bool) []any {
	depth := -1
	if len(shallow) > 0 && shallow[0] {
		depth = 1
	}
	return flattenInto(make([]any, 0, len(nested)), nested, depth)
}

func flattenInto(dst, items []any, depth int) []any {
	EachSeq(items, func(it any, _ int) {
		if inner, ok := asSlice(it); ok && depth != 0 {
			dst = flattenInto(dst, inner, depth-1)
			return
		}
		dst = append(dst, it)
	})
	return dst
}

func asSlice(it any) ([]any, bool) {
	if s, ok := it.([]any); ok {
		return s, true
	}
	rv := reflect.ValueOf(it)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	if rv.Type().Elem().Kind() == reflect.Uint8 {
		return nil, false
	}
	res := make([]any, rv.Len())
	EachSeq(res, func(_ any, i int) {
		res[i] = rv.Index(i).Interface()
	})
	return res, true
}

// FlattenSeq concatenates the sequences of nested.
func FlattenSeq[V any](nested [][]V) []V {
	return Reduce(seqOf(nested), func(acc, s []V) []V { return append(acc, s...) }, make([]V, 0))
}

// Intersection returns the distinct items of the first sequence that appear in all the others.
func Intersection[V comparable](seqs ...[]V) []V {
	first, ok := First(seqs)
	if !ok {
		return []V{}
	}
	rest := seqOf(seqs[1:])
	return Filter(seqOf(Uniq(first)), func(it V) bool {
		return Every(rest, func(s []V) bool { return Contains(seqOf(s), it) })
	})
}

// Difference returns the items of items that appear in none of others.
func Difference[V comparable](items []V, others ...[]V) []V {
	rest := seqOf(others)
	return Reject(seqOf(items), func(it V) bool {
		return Some(rest, func(s []V) bool { return Contains(seqOf(s), it) })
	})
}
