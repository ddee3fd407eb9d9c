package schedz

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestManual(t *testing.T) {
	t.Run("Order", func(t *testing.T) {
		m := NewManual(epoch)
		var got []string
		m.After(30*time.Millisecond, func() { got = append(got, "c") })
		m.After(10*time.Millisecond, func() { got = append(got, "a") })
		m.After(10*time.Millisecond, func() { got = append(got, "b") })
		assert.Equal(t, 3, m.Pending())

		assert.Equal(t, 2, m.Advance(20*time.Millisecond))
		assert.Equal(t, []string{"a", "b"}, got)
		assert.Equal(t, epoch.Add(20*time.Millisecond), m.Now())

		assert.Equal(t, 1, m.Advance(10*time.Millisecond))
		assert.Equal(t, []string{"a", "b", "c"}, got)
		assert.Zero(t, m.Pending())
	})

	t.Run("ClockAtDueTime", func(t *testing.T) {
		m := NewManual(epoch)
		var at time.Time
		m.After(5*time.Millisecond, func() { at = m.Now() })
		m.Advance(time.Second)
		assert.Equal(t, epoch.Add(5*time.Millisecond), at)
		assert.Equal(t, epoch.Add(time.Second), m.Now())
	})

	t.Run("Nested", func(t *testing.T) {
		m := NewManual(epoch)
		n := 0
		m.After(10*time.Millisecond, func() {
			n++
			m.After(10*time.Millisecond, func() { n++ })
			m.After(time.Hour, func() { n++ })
		})
		assert.Equal(t, 2, m.Advance(50*time.Millisecond))
		assert.Equal(t, 2, n)
		assert.Equal(t, 1, m.Pending())
	})

	t.Run("Stop", func(t *testing.T) {
		m := NewManual(epoch)
		ran := false
		h := m.After(time.Millisecond, func() { ran = true })
		assert.True(t, h.Stop())
		assert.False(t, h.Stop())
		m.Advance(time.Second)
		assert.False(t, ran)

		h = m.After(time.Millisecond, func() {})
		m.Advance(time.Second)
		assert.False(t, h.Stop())
	})

	t.Run("Panic", func(t *testing.T) {
		m := NewManual(epoch)
		ran := false
		m.After(time.Millisecond, func() { panic("boom") })
		m.After(2*time.Millisecond, func() { ran = true })
		assert.NotPanics(t, func() { m.Advance(time.Second) })
		assert.True(t, ran)
	})
}

func TestDefault(t *testing.T) {
	old := Default()
	t.Cleanup(func() { SetDefault(old) })

	assert.IsType(t, &Timer{}, old)
	m := NewManual(epoch)
	SetDefault(m)
	assert.Same(t, m, Default())
}
