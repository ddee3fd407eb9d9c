package funcz

import (
	"context"
	"slices"
	"time"

	"github.com/adobaai/underbar/schedz"
)

// Delay calls fn(args...) once, no sooner than wait from now, on the default scheduler.
// It returns immediately and the call cannot be cancelled.
// A panic in fn is logged by the scheduler.
func Delay[A any](fn func(args ...A), wait time.Duration, args ...A) {
	DelayOn(schedz.Default(), fn, wait, args...)
}

// DelayOn is like [Delay] but runs the call on s.
func DelayOn[A any](s schedz.Scheduler, fn func(args ...A), wait time.Duration, args ...A) {
	args = slices.Clone(args)
	delayCalls.Add(context.Background(), 1)
	s.After(wait, func() {
		traced(context.Background(), "funcz.delay", func() {
			fn(args...)
		})
	})
}
