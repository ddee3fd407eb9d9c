package schedz

import (
	"log/slog"
	"time"

	"github.com/rs/xid"
)

// Timer is a [Scheduler] backed by [time.AfterFunc].
type Timer struct {
	log *slog.Logger
}

func NewTimer(opts ...Option) *Timer {
	no := buildOptions(opts)
	return &Timer{log: no.logger}
}

func (t *Timer) Now() time.Time {
	return time.Now()
}

func (t *Timer) After(d time.Duration, fn func()) Handle {
	id := xid.New().String()
	t.log.Debug("call scheduled", "id", id, "after", d)
	return time.AfterFunc(d, func() {
		run(t.log, id, fn)
	})
}
