// Package jsonz provides generic JSON helpers.
package jsonz

import "encoding/json"

// Unmarshal decodes bs into a new T.
func Unmarshal[T any](bs []byte) (*T, error) {
	var t T
	if err := json.Unmarshal(bs, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// Decode is like [Unmarshal] but returns the value itself,
// or the zero T when bs cannot be decoded.
func Decode[T any](bs []byte) (t T, err error) {
	p, err := Unmarshal[T](bs)
	if err != nil {
		return
	}
	return *p, nil
}
