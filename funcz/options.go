package funcz

import (
	"log/slog"

	"github.com/adobaai/underbar/schedz"
)

type newOption struct {
	sched    schedz.Scheduler
	trailing bool
	logger   *slog.Logger
}

type Option func(o *newOption)

// WithScheduler sets the scheduler that provides the clock and runs deferred calls.
func WithScheduler(s schedz.Scheduler) Option {
	return func(o *newOption) {
		o.sched = s
	}
}

// WithTrailing sets whether a call suppressed by [Throttle] is replayed at
// the end of the window. It is enabled by default.
func WithTrailing(enabled bool) Option {
	return func(o *newOption) {
		o.trailing = enabled
	}
}

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(o *newOption) {
		o.logger = log.With("component", "funcz")
	}
}

func buildOptions(opts []Option) newOption {
	no := newOption{
		trailing: true,
		logger:   slog.Default().With("component", "funcz"),
	}
	for _, opt := range opts {
		opt(&no)
	}
	if no.sched == nil {
		no.sched = schedz.Default()
	}
	return no
}
