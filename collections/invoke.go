package collections

import (
	"fmt"
	"reflect"

	"go.uber.org/multierr"
)

// InvokeMethod calls the method called name on every value of c with args
// and collects the results: nil for methods without results, the value itself
// for a single result, and a []any for several.
//
// Values lacking the method yield nil and an error wrapping [ErrMethodNotFound];
// the errors of all values are combined. Methods with pointer receivers are only
// found on pointer values. Panics raised by the call itself are not recovered.
func InvokeMethod[K comparable, V any](c Collection[K, V], name string, args ...any) (res []any, err error) {
	res = MapCollection(c, func(v V, k K) any {
		rv := reflect.ValueOf(v)
		var m reflect.Value
		if rv.IsValid() {
			m = rv.MethodByName(name)
		}
		if !m.IsValid() {
			err = multierr.Append(err,
				fmt.Errorf("%w: %T has no method %s (key %v)", ErrMethodNotFound, v, name, k))
			return nil
		}

		out := m.Call(callArgs(m.Type(), args))
		switch len(out) {
		case 0:
			return nil
		case 1:
			return out[0].Interface()
		default:
			return Map(out, reflect.Value.Interface)
		}
	})
	return
}

// callArgs converts args for a call to a function of type ft.
// A nil arg becomes the zero value of the matching parameter.
func callArgs(ft reflect.Type, args []any) []reflect.Value {
	in := make([]reflect.Value, len(args))
	EachSeq(args, func(a any, i int) {
		if a != nil {
			in[i] = reflect.ValueOf(a)
			return
		}
		switch {
		case ft.IsVariadic() && i >= ft.NumIn()-1:
			in[i] = reflect.Zero(ft.In(ft.NumIn() - 1).Elem())
		case i < ft.NumIn():
			in[i] = reflect.Zero(ft.In(i))
		default:
			in[i] = reflect.Zero(reflect.TypeFor[any]())
		}
	})
	return in
}
