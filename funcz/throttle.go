package funcz

import (
	"log/slog"
	"slices"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/adobaai/underbar/schedz"
	"github.com/adobaai/underbar/timez"
)

type throttle[A, R any] struct {
	fn       Func[A, R]
	wait     time.Duration
	sched    schedz.Scheduler
	trailing bool
	log      *slog.Logger

	mu      sync.Mutex
	limiter *rate.Limiter
	pending bool
	lastRun time.Time
	args    []A
	last    R
}

// Throttle returns a function that calls fn at most once per wait.
//
// The first call runs fn at once. Calls inside the window that follows are
// suppressed and return the result of the last run. With trailing enabled
// (the default), the first suppressed call books one more run at the end of
// the window, which uses the arguments of the latest suppressed call.
// A wait of zero or less disables throttling.
func Throttle[A, R any](fn Func[A, R], wait time.Duration, opts ...Option) Func[A, R] {
	no := buildOptions(opts)
	limit := rate.Inf
	if wait > 0 {
		limit = rate.Every(wait)
	}
	t := &throttle[A, R]{
		fn:       fn,
		wait:     wait,
		sched:    no.sched,
		trailing: no.trailing,
		log:      no.logger,
		limiter:  rate.NewLimiter(limit, 1),
	}
	return t.call
}

// Throttled creates a [Decorator] form of [Throttle].
func Throttled[A, R any](wait time.Duration, opts ...Option) Decorator[A, R] {
	return func(next Func[A, R]) Func[A, R] {
		return Throttle(next, wait, opts...)
	}
}

func (t *throttle[A, R]) call(args ...A) R {
	t.mu.Lock()
	now := t.sched.Now()
	if !t.pending && t.ready(now) && t.limiter.AllowN(now, 1) {
		t.lastRun = now
		t.mu.Unlock()
		countThrottle(outcomeLeading)
		return t.run(args)
	}
	defer t.mu.Unlock()

	countThrottle(outcomeSuppressed)
	if t.trailing {
		t.args = slices.Clone(args)
		if !t.pending {
			t.pending = true
			// The trailing run takes the next token.
			t.limiter.ReserveN(now, 1)
			d := t.lastRun.Add(t.wait).Sub(now)
			t.sched.After(d, t.fire)
			t.log.Debug("trailing call booked", "after", d)
		}
	}
	return t.last
}

// ready reports whether a full wait has passed since the last run.
// The limiter keeps tokens in float64, so it alone may open a window early.
func (t *throttle[A, R]) ready(now time.Time) bool {
	return t.lastRun.IsZero() || now.Sub(t.lastRun) >= t.wait
}

func (t *throttle[A, R]) fire() {
	t.mu.Lock()
	args := t.args
	t.pending, t.args = false, nil
	t.lastRun = t.sched.Now()
	t.mu.Unlock()

	countThrottle(outcomeTrailing)
	t.run(args)
}

func (t *throttle[A, R]) run(args []A) R {
	res := t.fn(args...)
	t.mu.Lock()
	t.last = res
	t.mu.Unlock()
	return res
}

// ThrottleConfig is the JSON form of the [Throttle] settings.
//
//	{"wait": "100ms", "trailing": false}
type ThrottleConfig struct {
	Wait timez.Duration `json:"wait"`
	// Trailing defaults to true when absent.
	Trailing *bool `json:"trailing,omitempty"`
}

// Options returns the options described by c.
func (c ThrottleConfig) Options() []Option {
	var opts []Option
	if c.Trailing != nil {
		opts = append(opts, WithTrailing(*c.Trailing))
	}
	return opts
}

// ThrottleFrom is [Throttle] configured by c.
// opts are applied after the options of c.
func ThrottleFrom[A, R any](fn Func[A, R], c ThrottleConfig, opts ...Option) Func[A, R] {
	return Throttle(fn, c.Wait.Duration, append(c.Options(), opts...)...)
}
