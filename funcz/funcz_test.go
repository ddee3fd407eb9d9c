package funcz

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adobaai/underbar/cachez"
	"github.com/adobaai/underbar/encodingz/jsonz"
	"github.com/adobaai/underbar/schedz"
	"github.com/adobaai/underbar/testingz"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestChain(t *testing.T) {
	tag := func(s string) Decorator[string, string] {
		return func(next Func[string, string]) Func[string, string] {
			return func(args ...string) string {
				return s + "(" + next(args...) + ")"
			}
		}
	}
	join := func(args ...string) string { return strings.Join(args, ",") }

	f := Chain(tag("a"), tag("b"))(join)
	assert.Equal(t, "a(b(x,y))", f("x", "y"))
	assert.Equal(t, "a(b(z))", f("z"), "wrapping happens once")

	assert.Equal(t, "x", Chain[string, string]()(join)("x"))
}

func TestTrace(t *testing.T) {
	var c testingz.Counter[int]
	f := Trace[int, int]("double")(func(args ...int) int {
		c.Hit(args...)
		return args[0] * 2
	})
	assert.Equal(t, 4, f(2))
	assert.Equal(t, 1, c.N())

	boom := Trace[int, int]("boom")(func(...int) int { panic("boom") })
	assert.PanicsWithValue(t, "boom", func() { boom() })
}

func TestOnce(t *testing.T) {
	var c testingz.Counter[int]
	f := Once(testingz.Func(&c, "done"))

	assert.Equal(t, "done", f(1))
	assert.Equal(t, "done", f(2))
	assert.Equal(t, "done", f(3))
	assert.Equal(t, 1, c.N())
	assert.Equal(t, []int{1}, c.Args(0))

	t.Run("FirstResult", func(t *testing.T) {
		n := 0
		f := Once(func(args ...int) int {
			n++
			return args[0] * 10
		})
		assert.Equal(t, 10, f(1))
		assert.Equal(t, 10, f(2))
		assert.Equal(t, 1, n)
	})

	t.Run("Concurrent", func(t *testing.T) {
		var c testingz.Counter[int]
		f := Once(testingz.Func(&c, 1))
		var wg sync.WaitGroup
		for i := range 20 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.Equal(t, 1, f(i))
			}()
		}
		wg.Wait()
		assert.Equal(t, 1, c.N())
	})

	t.Run("Decorator", func(t *testing.T) {
		var c testingz.Counter[int]
		f := Chain(Trace[int, bool]("once"), Once[int, bool])(testingz.Func(&c, true))
		f()
		f()
		assert.Equal(t, 1, c.N())
	})
}

func TestMemoize(t *testing.T) {
	calls := map[int]int{}
	square := Memoize(func(n int) int {
		calls[n]++
		return n * n
	})
	assert.Equal(t, 9, square(3))
	assert.Equal(t, 9, square(3))
	assert.Equal(t, 16, square(4))
	assert.Equal(t, map[int]int{3: 1, 4: 1}, calls)

	t.Run("Recursive", func(t *testing.T) {
		n := 0
		var fib func(int) int
		fib = Memoize(func(i int) int {
			n++
			if i < 2 {
				return i
			}
			return fib(i-1) + fib(i-2)
		})
		assert.Equal(t, 12586269025, fib(50))
		assert.Equal(t, 51, n)
	})

	t.Run("Concurrent", func(t *testing.T) {
		var c testingz.Counter[string]
		slow := Memoize(func(s string) string {
			c.Hit(s)
			time.Sleep(20 * time.Millisecond)
			return strings.ToUpper(s)
		})
		var wg sync.WaitGroup
		for range 10 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.Equal(t, "A", slow("a"))
			}()
		}
		wg.Wait()
		assert.Equal(t, 1, c.N())
	})

	t.Run("With", func(t *testing.T) {
		cache := cachez.NewMap[string, int]()
		n := 0
		f := MemoizeWith(func(s string) int { n++; return len(s) }, cache)
		f("abc")
		f("abc")
		assert.Equal(t, 1, n)
		v, ok := cache.Get("abc")
		assert.True(t, ok)
		assert.Equal(t, 3, v)

		o, err := cachez.NewOtter[string, int](10)
		require.NoError(t, err)
		g := MemoizeWith(func(s string) int { n++; return len(s) }, o)
		assert.Equal(t, 2, g("ab"))
		assert.Equal(t, 2, n)
	})
}

func TestDelay(t *testing.T) {
	m := schedz.NewManual(epoch)
	var c testingz.Counter[string]
	args := []string{"a", "b"}

	DelayOn(m, c.Hit, 100*time.Millisecond, args...)
	args[0] = "changed"
	assert.Zero(t, c.N(), "returns before the call")

	m.Advance(99 * time.Millisecond)
	assert.Zero(t, c.N())
	m.Advance(time.Millisecond)
	require.Equal(t, 1, c.N())
	assert.Equal(t, []string{"a", "b"}, c.Args(0))

	m.Advance(time.Hour)
	assert.Equal(t, 1, c.N(), "runs once")

	t.Run("Panic", func(t *testing.T) {
		DelayOn(m, func(...int) { panic("boom") }, time.Millisecond)
		assert.NotPanics(t, func() { m.Advance(time.Second) })
	})

	t.Run("Default", func(t *testing.T) {
		var c testingz.Counter[int]
		Delay(c.Hit, 10*time.Millisecond, 7)
		require.Eventually(t, func() bool { return c.N() == 1 }, time.Second, 5*time.Millisecond)
		assert.Equal(t, []int{7}, c.Args(0))
	})
}

func TestThrottle(t *testing.T) {
	wait := 100 * time.Millisecond

	t.Run("Window", func(t *testing.T) {
		m := schedz.NewManual(epoch)
		var c testingz.Counter[int]
		f := Throttle(testingz.Func(&c, 0), wait, WithScheduler(m))

		for i := range 10 {
			f(i)
			m.Advance(5 * time.Millisecond)
		}
		assert.Equal(t, 1, c.N(), "only the leading call")
		assert.Equal(t, []int{0}, c.Args(0))

		m.Advance(wait)
		assert.Equal(t, 2, c.N(), "leading and trailing")
		assert.Equal(t, []int{9}, c.Args(1), "latest arguments")

		m.Advance(time.Second)
		assert.Equal(t, 2, c.N())
	})

	t.Run("Spacing", func(t *testing.T) {
		for _, wait := range []time.Duration{7 * time.Millisecond, 30 * time.Millisecond, 100 * time.Millisecond} {
			t.Run(wait.String(), func(t *testing.T) {
				m := schedz.NewManual(epoch)
				var at []time.Time
				f := Throttle(func(...int) int { at = append(at, m.Now()); return 0 }, wait, WithScheduler(m))

				for range 400 {
					f()
					m.Advance(wait / 7)
				}
				m.Advance(time.Minute)
				require.Greater(t, len(at), 2)
				for i := 1; i < len(at); i++ {
					assert.GreaterOrEqual(t, at[i].Sub(at[i-1]), wait)
				}
			})
		}
	})

	t.Run("NoTrailing", func(t *testing.T) {
		m := schedz.NewManual(epoch)
		var c testingz.Counter[int]
		f := Throttle(testingz.Func(&c, 0), wait, WithScheduler(m), WithTrailing(false))

		for i := range 10 {
			f(i)
			m.Advance(5 * time.Millisecond)
		}
		m.Advance(time.Second)
		assert.Equal(t, 1, c.N())
		assert.Zero(t, m.Pending())

		f(42)
		assert.Equal(t, 2, c.N(), "a new window opens")
	})

	t.Run("LastResult", func(t *testing.T) {
		m := schedz.NewManual(epoch)
		f := Throttle(func(args ...int) int { return args[0] }, wait, WithScheduler(m))

		assert.Equal(t, 1, f(1))
		assert.Equal(t, 1, f(2), "suppressed calls see the last result")
		m.Advance(wait)
		assert.Equal(t, 2, f(3), "trailing call ran with 2")
	})

	t.Run("ZeroWait", func(t *testing.T) {
		var c testingz.Counter[int]
		f := Throttle(testingz.Func(&c, 0), 0, WithScheduler(schedz.NewManual(epoch)))
		f()
		f()
		f()
		assert.Equal(t, 3, c.N())
	})

	t.Run("Decorator", func(t *testing.T) {
		m := schedz.NewManual(epoch)
		var c testingz.Counter[int]
		f := Chain(Trace[int, int]("throttled"), Throttled[int, int](wait, WithScheduler(m)))(testingz.Func(&c, 0))
		f()
		f()
		assert.Equal(t, 1, c.N())
	})
}

func TestThrottleConfig(t *testing.T) {
	cfg, err := jsonz.Decode[ThrottleConfig]([]byte(`{"wait":"100ms","trailing":false}`))
	require.NoError(t, err)
	assert.Equal(t, 100*time.Millisecond, cfg.Wait.Duration)
	require.NotNil(t, cfg.Trailing)
	assert.False(t, *cfg.Trailing)
	assert.Len(t, cfg.Options(), 1)

	m := schedz.NewManual(epoch)
	var c testingz.Counter[int]
	f := ThrottleFrom(testingz.Func(&c, 0), cfg, WithScheduler(m))
	f()
	f()
	m.Advance(time.Second)
	assert.Equal(t, 1, c.N())

	cfg, err = jsonz.Decode[ThrottleConfig]([]byte(`{"wait":50}`))
	require.NoError(t, err)
	assert.Equal(t, 50*time.Millisecond, cfg.Wait.Duration)
	assert.Empty(t, cfg.Options())
}

func ExampleThrottle() {
	m := schedz.NewManual(epoch)
	log := Throttle(func(args ...string) int {
		fmt.Println(m.Now().Sub(epoch), args)
		return 0
	}, time.Second, WithScheduler(m))

	log("a")
	log("b")
	log("c")
	m.Advance(2 * time.Second)
	// Output:
	// 0s [a]
	// 1s [c]
}
