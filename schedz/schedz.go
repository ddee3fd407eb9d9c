// Package schedz provides schedulers that run a function once after a delay.
//
// Three implementations are available:
//   - [Timer] runs every call on its own [time.Timer].
//   - [Cron] runs calls on a robfig/cron runner as one-shot entries.
//   - [Manual] never runs anything until its clock is advanced, for tests.
package schedz

import (
	"log/slog"
	"sync/atomic"
	"time"
)

// Scheduler runs functions after a minimum delay.
// There is no ordering guarantee between calls beyond "not before".
type Scheduler interface {
	// Now returns the current time as seen by the scheduler.
	Now() time.Time
	// After arranges for fn to run once, no sooner than d from now.
	// It returns immediately.
	After(d time.Duration, fn func()) Handle
}

// Handle refers to a scheduled call.
type Handle interface {
	// Stop prevents the call from running.
	// It reports false when the call has already run or been stopped.
	Stop() bool
}

var defaultScheduler atomic.Value

func init() {
	SetDefault(NewTimer())
}

// Default returns the scheduler used when none is given.
func Default() Scheduler {
	return defaultScheduler.Load().(holder).s
}

// SetDefault replaces the default scheduler.
func SetDefault(s Scheduler) {
	defaultScheduler.Store(holder{s})
}

// atomic.Value requires a consistent concrete type.
type holder struct {
	s Scheduler
}

type newOption struct {
	logger *slog.Logger
}

type Option func(o *newOption)

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(o *newOption) {
		o.logger = log.With("component", "schedz")
	}
}

func buildOptions(opts []Option) newOption {
	no := newOption{
		logger: slog.Default().With("component", "schedz"),
	}
	for _, opt := range opts {
		opt(&no)
	}
	return no
}

// run calls fn and logs a panic instead of propagating it.
func run(l *slog.Logger, id string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			l.Error("scheduled call panicked", "id", id, "panic", r)
		}
	}()

	fn()
	l.Debug("scheduled call done", "id", id)
}
