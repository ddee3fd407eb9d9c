// Package funcz provides function decorators: wrappers that change when
// and how often a function actually runs.
//
// Decorators operate on [Func], a variadic function of one argument type.
// Wrap a function of another shape in a closure first.
package funcz

// Func is the shape of function the decorators in this package wrap.
type Func[A, R any] func(args ...A) R

// Decorator wraps a [Func] and returns a new one.
type Decorator[A, R any] func(next Func[A, R]) Func[A, R]

// Chain creates a single [Decorator] from ds.
// The first decorator is the outermost one.
func Chain[A, R any](ds ...Decorator[A, R]) Decorator[A, R] {
	return func(next Func[A, R]) Func[A, R] {
		for i := len(ds) - 1; i >= 0; i-- {
			next = ds[i](next)
		}
		return next
	}
}
