package collections

// Extend copies every entry of sources into target, left to right.
// Later sources overwrite earlier ones and the target's own entries.
// target is modified and returned; a nil target is replaced by a new [Dict].
func Extend[K comparable, V any](target *Dict[K, V], sources ...Collection[K, V]) *Dict[K, V] {
	return merge(target, sources, func(*Dict[K, V], K) bool { return true })
}

// Defaults is like [Extend] but never overwrites a key target already holds:
// the first source to supply a key wins.
func Defaults[K comparable, V any](target *Dict[K, V], sources ...Collection[K, V]) *Dict[K, V] {
	return merge(target, sources, func(d *Dict[K, V], k K) bool { return !d.Has(k) })
}

func merge[K comparable, V any](
	target *Dict[K, V], sources []Collection[K, V], accept func(*Dict[K, V], K) bool,
) *Dict[K, V] {
	if target == nil {
		target = NewDict[K, V]()
	}
	EachSeq(sources, func(src Collection[K, V], _ int) {
		Each(src, func(v V, k K, _ Collection[K, V]) {
			if accept(target, k) {
				target.Set(k, v)
			}
		})
	})
	return target
}
