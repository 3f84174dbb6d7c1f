package ctxclock

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"fknsrs.biz/p/videoregistry/internal/ctxlogger"
)

var (
	ErrNoTimesLeft = fmt.Errorf("ctxclock.ErrNoTimesLeft: no times left")
	ErrNoClock     = fmt.Errorf("ctxclock.ErrNoClock: no clock found in context")
)

// Clock is the only source of "now" for stored records, so that tests can
// pin createdAt.
type Clock interface {
	Now() (time.Time, error)
}

// context registration

var clockKey int

func WithClock(ctx context.Context, c Clock) context.Context {
	if c == nil {
		c = NewRealClock()
	}

	return context.WithValue(ctx, &clockKey, c)
}

func GetClock(ctx context.Context) Clock {
	if v := ctx.Value(&clockKey); v != nil {
		return v.(Clock)
	}

	return nil
}

func Now(ctx context.Context) (time.Time, error) {
	if c := GetClock(ctx); c != nil {
		return c.Now()
	}

	return time.Time{}, fmt.Errorf("ctxclock.Now: %w", ErrNoClock)
}

// middleware

func Register(c Clock) func(rw http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
	return func(rw http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
		next(rw, r.WithContext(WithClock(r.Context(), c)))
	}
}

func stampHook(field string) ctxlogger.HookFunc {
	return func(rw http.ResponseWriter, r *http.Request, l logrus.FieldLogger) logrus.FieldLogger {
		now, err := Now(r.Context())
		if err != nil {
			l.WithError(err).Warning("clock middleware could not get current time")
			return l
		}

		return l.WithField(field, now.UTC().Format(time.RFC3339Nano))
	}
}

func AddLoggerHooks() func(rw http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
	return func(rw http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
		next(rw, r.WithContext(ctxlogger.AddHookPair(
			r.Context(),
			stampHook("http.request_start"),
			stampHook("http.response_end"),
		)))
	}
}

// real clock

type realClock struct{}

func NewRealClock() Clock {
	return realClock{}
}

func (realClock) Now() (time.Time, error) {
	return time.Now(), nil
}

// static clock

type staticClock struct{ t time.Time }

func NewStaticClock(t time.Time) Clock {
	return &staticClock{t: t}
}

func (c *staticClock) Now() (time.Time, error) {
	return c.t, nil
}

// error clock

type errorClock struct{ err error }

func NewErrorClock(err error) Clock {
	return &errorClock{err: err}
}

func (c *errorClock) Now() (time.Time, error) {
	return time.Time{}, fmt.Errorf("ctxclock.errorClock.Now: %w", c.err)
}

// step clock, advances by a fixed amount every time it's read

type stepClock struct {
	m    sync.Mutex
	next time.Time
	step time.Duration
}

func NewStepClock(start time.Time, step time.Duration) Clock {
	return &stepClock{next: start, step: step}
}

func (c *stepClock) Now() (time.Time, error) {
	c.m.Lock()
	defer c.m.Unlock()

	t := c.next
	c.next = c.next.Add(c.step)

	return t, nil
}

// testing clock, replays a fixed list of results

type TestClockResult struct {
	Time  time.Time
	Error error
}

type testClock struct {
	m sync.Mutex
	a []TestClockResult
	i int
}

func NewTestClock(results []TestClockResult) Clock {
	return &testClock{a: results}
}

func (c *testClock) Now() (time.Time, error) {
	c.m.Lock()
	defer c.m.Unlock()

	if c.i >= len(c.a) {
		return time.Time{}, fmt.Errorf("ctxclock.testClock.Now: %w", ErrNoTimesLeft)
	}

	r := c.a[c.i]
	c.i++

	return r.Time, r.Error
}
