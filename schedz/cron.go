package schedz

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/xid"
	"github.com/samber/lo"
)

// ErrBusy is returned by [Cron.Stop] when calls are still running as the context ends.
var ErrBusy = errors.New("schedz: still have running calls")

// Cron is a [Scheduler] that runs calls as one-shot entries of a cron runner.
// Calls only run between [Cron.Start] and [Cron.Stop].
type Cron struct {
	cron *cron.Cron
	log  *slog.Logger

	mu      sync.Mutex
	pending map[*cronHandle]struct{}
}

func NewCron(opts ...Option) *Cron {
	no := buildOptions(opts)
	return &Cron{
		cron:    cron.New(cron.WithLocation(time.UTC)),
		log:     no.logger,
		pending: make(map[*cronHandle]struct{}),
	}
}

// Start runs the cron runner.
// This method is a blocking call and will not return until the runner is stopped.
func (c *Cron) Start(ctx context.Context) error {
	c.log.InfoContext(ctx, "cron scheduler started")
	c.cron.Run()
	return nil
}

// Stop stops the cron runner and waits for running calls to finish.
// Calls that have not become due are dropped: they will not run after a
// later Start, and their handles report false from Stop.
func (c *Cron) Stop(ctx context.Context) error {
	stopCtx := c.cron.Stop()
	if n := c.dropPending(); n > 0 {
		c.log.InfoContext(ctx, "dropped pending calls", "count", n)
	}
	select {
	case <-ctx.Done():
		return ErrBusy
	case <-stopCtx.Done():
		c.log.InfoContext(ctx, "cron scheduler stopped")
		return nil
	}
}

func (c *Cron) Now() time.Time {
	return time.Now().In(c.cron.Location())
}

func (c *Cron) After(d time.Duration, fn func()) Handle {
	id := xid.New().String()
	h := &cronHandle{owner: c}
	c.track(h)

	h.mu.Lock()
	defer h.mu.Unlock()
	h.entry = c.cron.Schedule(&oneShot{at: c.Now().Add(d)}, cron.FuncJob(func() {
		if !h.fired.CompareAndSwap(false, true) {
			return
		}
		h.remove()
		run(c.log, id, fn)
	}))
	c.log.Debug("call scheduled", "id", id, "after", d, "entry", h.entry)
	return h
}

// Pending returns the number of calls waiting to run.
func (c *Cron) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

func (c *Cron) track(h *cronHandle) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending[h] = struct{}{}
}

func (c *Cron) forget(h *cronHandle) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.pending, h)
}

func (c *Cron) dropPending() int {
	c.mu.Lock()
	hs := lo.Keys(c.pending)
	c.mu.Unlock()

	return lo.CountBy(hs, func(h *cronHandle) bool { return h.Stop() })
}

// oneShot is a cron.Schedule that fires once at a fixed time.
type oneShot struct {
	at   time.Time
	used atomic.Bool
}

// Next returns the fixed time on the first call, which cron makes when the
// entry is added; later calls return the zero time so the entry never runs again.
func (s *oneShot) Next(time.Time) time.Time {
	if s.used.CompareAndSwap(false, true) {
		return s.at
	}
	return time.Time{}
}

type cronHandle struct {
	mu    sync.Mutex
	owner *Cron
	entry cron.EntryID
	fired atomic.Bool
}

func (h *cronHandle) remove() {
	h.owner.forget(h)
	h.mu.Lock()
	defer h.mu.Unlock()
	h.owner.cron.Remove(h.entry)
}

func (h *cronHandle) Stop() bool {
	if !h.fired.CompareAndSwap(false, true) {
		return false
	}
	h.remove()
	return true
}
