package schedz

import (
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/rs/xid"
	"github.com/samber/lo"
)

// Manual is a [Scheduler] with a clock that only moves when told to.
// Calls run synchronously inside [Manual.Advance], in order of due time.
type Manual struct {
	mu    sync.Mutex
	now   time.Time
	seq   uint64
	tasks []*manualTask
	log   *slog.Logger
}

type manualTask struct {
	m   *Manual
	id  string
	at  time.Time
	seq uint64
	fn  func()
}

func NewManual(start time.Time, opts ...Option) *Manual {
	no := buildOptions(opts)
	return &Manual{now: start, log: no.logger}
}

func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *Manual) After(d time.Duration, fn func()) Handle {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	t := &manualTask{
		m:   m,
		id:  xid.New().String(),
		at:  m.now.Add(d),
		seq: m.seq,
		fn:  fn,
	}
	m.tasks = append(m.tasks, t)
	m.log.Debug("call scheduled", "id", t.id, "after", d)
	return t
}

// Advance moves the clock forward by d and runs every call that falls due,
// including calls scheduled by those calls. It returns the number of calls run.
func (m *Manual) Advance(d time.Duration) (n int) {
	m.mu.Lock()
	target := m.now.Add(d)
	m.mu.Unlock()

	for {
		t := m.popDue(target)
		if t == nil {
			return
		}
		run(m.log, t.id, t.fn)
		n++
	}
}

// Pending returns the number of calls waiting to run.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tasks)
}

// popDue removes and returns the earliest call due by target,
// moving the clock to its due time. Without one, the clock moves to target.
func (m *Manual) popDue(target time.Time) *manualTask {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.tasks) > 0 {
		t := lo.MinBy(m.tasks, func(a, b *manualTask) bool {
			return a.at.Before(b.at) || a.at.Equal(b.at) && a.seq < b.seq
		})
		if !t.at.After(target) {
			m.tasks = slices.DeleteFunc(m.tasks, func(it *manualTask) bool { return it == t })
			if t.at.After(m.now) {
				m.now = t.at
			}
			return t
		}
	}
	if target.After(m.now) {
		m.now = target
	}
	return nil
}

func (t *manualTask) Stop() bool {
	t.m.mu.Lock()
	defer t.m.mu.Unlock()
	n := len(t.m.tasks)
	t.m.tasks = slices.DeleteFunc(t.m.tasks, func(it *manualTask) bool { return it == t })
	return len(t.m.tasks) < n
}
