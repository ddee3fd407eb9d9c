package collections

import "errors"

// ErrMethodNotFound is returned by [InvokeMethod] when an element has no method of the given name.
var ErrMethodNotFound = errors.New("collections: method not found")
