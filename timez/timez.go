// Package timez provides time helpers for configuration values.
package timez

import (
	"bytes"
	"fmt"
	"strconv"
	"time"
)

// Duration is a wrapper for [time.Duration] with JSON support.
//
// It decodes either a Go duration string ("150ms", "2s") or a bare number,
// which is read as milliseconds.
type Duration struct {
	time.Duration
}

func Dur(d time.Duration) Duration {
	return Duration{Duration: d}
}

// Millis returns a Duration of n milliseconds.
func Millis(n int64) Duration {
	return Dur(time.Duration(n) * time.Millisecond)
}

func (d Duration) IsZero() bool {
	return d.Duration == 0
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Duration) UnmarshalJSON(b []byte) (err error) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return fmt.Errorf("invalid token: %s", b)
	}
	if b[0] != '"' {
		ms, err := strconv.ParseFloat(string(b), 64)
		if err != nil {
			return fmt.Errorf("invalid duration: %s", b)
		}
		d.Duration = time.Duration(ms * float64(time.Millisecond))
		return nil
	}

	length := len(b)
	if length <= 2 || b[length-1] != '"' {
		return fmt.Errorf("invalid token: %s", b)
	}
	d.Duration, err = time.ParseDuration(string(b[1 : length-1]))
	return
}
