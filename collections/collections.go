// Package collections provides some useful functions for working with data structures
// that contain multiple elements.
//
// Two shapes are supported through the [Collection] interface:
// ordered sequences ([Seq]) and insertion-ordered mappings ([Dict]).
// [Each] is the only traversal primitive; every other operation in this
// package is expressed through it, so they all share its nil handling and ordering.
//
// Many languages have their own collection library:
//   - C#: https://learn.microsoft.com/en-us/dotnet/csharp/programming-guide/concepts/collections
//   - Rust: https://doc.rust-lang.org/std/collections/index.html
//   - Swift: https://github.com/apple/swift-collections
//   - Kotlin: https://kotlinlang.org/api/latest/jvm/stdlib/kotlin.collections/
//   - Python3: https://docs.python.org/3/library/collections.html
//   - JavaScript: https://underscorejs.org/
package collections

// Collection is anything [Each] can traverse.
type Collection[K comparable, V any] interface {
	// Keys returns the keys in traversal order.
	// The returned slice is a snapshot and is not affected by later changes.
	Keys() []K
	// At returns the value stored under k.
	At(k K) V
}

// Seq is an ordered sequence, keyed by 0-based index.
type Seq[V any] []V

func (s Seq[V]) Keys() []int {
	keys := make([]int, len(s))
	for i := range keys {
		keys[i] = i
	}
	return keys
}

func (s Seq[V]) At(i int) V { return s[i] }

func (s Seq[V]) Len() int { return len(s) }

func seqOf[V any](items []V) Collection[int, V] { return Seq[V](items) }

// Identity returns v unchanged.
// It is the default iterator and, through [Truthy], the default predicate.
func Identity[V any](v V) V { return v }

// Each calls fn(value, key, c) for every entry of c.
//
// A nil c is empty. The keys are read once before the first call,
// so entries added by fn are not visited; a mapping entry deleted by fn
// before its turn is visited with the zero value.
func Each[K comparable, V any](c Collection[K, V], fn func(v V, k K, c Collection[K, V])) {
	if c == nil {
		return
	}
	for _, k := range c.Keys() {
		fn(c.At(k), k, c)
	}
}

// EachSeq calls fn(item, index) for every item.
func EachSeq[V any](items []V, fn func(it V, i int)) {
	Each(seqOf(items), func(it V, i int, _ Collection[int, V]) {
		fn(it, i)
	})
}

// Values returns the values of c in traversal order.
func Values[K comparable, V any](c Collection[K, V]) []V {
	return MapCollection(c, func(v V, _ K) V { return Identity(v) })
}

// IndexOf returns the index of the first item equal to target, or -1.
func IndexOf[V comparable](items []V, target V) int {
	idx := -1
	EachSeq(items, func(it V, i int) {
		if idx == -1 && it == target {
			idx = i
		}
	})
	return idx
}

// Filter iterates over items, returning an array of all items predicate returns truthy for.
func Filter[K comparable, V any](c Collection[K, V], predicate func(it V) bool) []V {
	result := make([]V, 0)
	Each(c, func(it V, _ K, _ Collection[K, V]) {
		if predicate(it) {
			result = append(result, it)
		}
	})
	return result
}

// Reject is the complement of [Filter].
func Reject[K comparable, V any](c Collection[K, V], predicate func(it V) bool) []V {
	return Filter(c, func(it V) bool { return !predicate(it) })
}

// Map returns a slice containing the results of applying the given transform function
// to each item in the original slice.
func Map[T, R any](items []T, transform func(it T) R) []R {
	res := make([]R, 0, len(items))
	EachSeq(items, func(it T, _ int) {
		res = append(res, transform(it))
	})
	return res
}

// MapCollection is like [Map] for any collection; transform also receives the key.
func MapCollection[K comparable, V, R any](c Collection[K, V], transform func(v V, k K) R) []R {
	res := make([]R, 0)
	Each(c, func(v V, k K, _ Collection[K, V]) {
		res = append(res, transform(v, k))
	})
	return res
}

// Pluck returns the value stored under key for every item.
// See [Field] for how the key is resolved. Missing values are nil.
func Pluck[V any](items []V, key string) []any {
	return Map(items, func(it V) any {
		v, _ := Field(it, key)
		return v
	})
}

// Invoke calls fn with every value of c as the receiver, followed by args,
// and collects the results.
func Invoke[K comparable, V, R any](c Collection[K, V], fn func(recv V, args ...any) R, args ...any) []R {
	return MapCollection(c, func(v V, _ K) R { return fn(v, args...) })
}

// Reduce folds c from left to right, starting from initial.
func Reduce[K comparable, V, A any](c Collection[K, V], accumulator func(acc A, it V) A, initial A) A {
	acc := initial
	Each(c, func(it V, _ K, _ Collection[K, V]) {
		acc = accumulator(acc, it)
	})
	return acc
}

// ReduceFirst is [Reduce] without a seed: the first value visited becomes the seed.
// ok is false when c is empty.
func ReduceFirst[K comparable, V any](c Collection[K, V], accumulator func(acc, it V) V) (res V, ok bool) {
	Each(c, func(it V, _ K, _ Collection[K, V]) {
		if !ok {
			res, ok = it, true
			return
		}
		res = accumulator(res, it)
	})
	return
}

// Every reports whether predicate holds for every value of c.
// Without a predicate the values themselves are tested with [Truthy].
// Once a value fails, the remaining values are not tested.
func Every[K comparable, V any](c Collection[K, V], predicate ...func(it V) bool) bool {
	p := predicateOr(predicate)
	return Reduce(c, func(all bool, it V) bool { return all && p(it) }, true)
}

// Some reports whether predicate holds for at least one value of c.
// Without a predicate the values themselves are tested with [Truthy].
// Once a value passes, the remaining values are not tested.
func Some[K comparable, V any](c Collection[K, V], predicate ...func(it V) bool) bool {
	p := predicateOr(predicate)
	return Reduce(c, func(found bool, it V) bool { return found || p(it) }, false)
}

// Contains reports whether c holds a value equal to target.
func Contains[K, V comparable](c Collection[K, V], target V) bool {
	return Reduce(c, func(found bool, it V) bool { return found || it == target }, false)
}

// Uniq returns the distinct items in order of first occurrence.
// items is not modified.
func Uniq[V comparable](items []V) []V {
	seen := make(map[V]struct{}, len(items))
	return Filter(seqOf(items), func(it V) bool {
		if _, ok := seen[it]; ok {
			return false
		}
		seen[it] = struct{}{}
		return true
	})
}

// First returns the first item, or false when items is empty.
func First[V any](items []V) (it V, ok bool) {
	if head := FirstN(items, 1); len(head) == 1 {
		return head[0], true
	}
	return
}

// FirstN returns up to n leading items.
func FirstN[V any](items []V, n int) []V {
	res := make([]V, 0, max(0, min(n, len(items))))
	EachSeq(items, func(it V, i int) {
		if i < n {
			res = append(res, it)
		}
	})
	return res
}

// Last returns the last item, or false when items is empty.
func Last[V any](items []V) (it V, ok bool) {
	if tail := LastN(items, 1); len(tail) == 1 {
		return tail[0], true
	}
	return
}

// LastN returns up to n trailing items.
func LastN[V any](items []V, n int) []V {
	start := len(items) - n
	res := make([]V, 0, max(0, min(n, len(items))))
	EachSeq(items, func(it V, i int) {
		if i >= start {
			res = append(res, it)
		}
	})
	return res
}

func predicateOr[V any](ps []func(V) bool) func(V) bool {
	if len(ps) > 0 && ps[0] != nil {
		return ps[0]
	}
	return func(it V) bool { return Truthy(Identity(it)) }
}
