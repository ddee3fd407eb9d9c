package funcz

import "sync"

type once[A, R any] struct {
	once sync.Once
	fn   Func[A, R]
	res  R
}

func (o *once[A, R]) call(args ...A) R {
	o.once.Do(func() {
		fn := o.fn
		o.fn = nil
		o.res = fn(args...)
	})
	return o.res
}

// Once returns a function that calls fn on its first call only.
// Every call, including concurrent ones, returns the result of that first call;
// the arguments of later calls are ignored.
// If fn panics, later calls return the zero R.
func Once[A, R any](fn Func[A, R]) Func[A, R] {
	o := &once[A, R]{fn: fn}
	return o.call
}
