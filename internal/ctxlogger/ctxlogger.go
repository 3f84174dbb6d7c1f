package ctxlogger

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"
)

// context registration

var loggerKey int

func WithLogger(ctx context.Context, l logrus.FieldLogger) context.Context {
	return context.WithValue(ctx, &loggerKey, l)
}

func GetLogger(ctx context.Context) logrus.FieldLogger {
	if v := ctx.Value(&loggerKey); v != nil {
		return v.(logrus.FieldLogger)
	}

	return logrus.StandardLogger()
}

// hooks let other middleware decorate the request log entry before the
// request runs and after it finishes

type HookFunc func(rw http.ResponseWriter, r *http.Request, l logrus.FieldLogger) logrus.FieldLogger

type Hook struct {
	Before HookFunc
	After  HookFunc
}

type hookList struct {
	a []Hook
}

func (h *hookList) run(rw http.ResponseWriter, r *http.Request, l logrus.FieldLogger, after bool) logrus.FieldLogger {
	for _, hook := range h.a {
		fn := hook.Before
		if after {
			fn = hook.After
		}

		if fn != nil {
			l = fn(rw, r, l)
		}
	}

	return l
}

var hookListKey int

func getHookList(ctx context.Context) *hookList {
	if v := ctx.Value(&hookListKey); v != nil {
		return v.(*hookList)
	}

	return nil
}

func AddHookPair(ctx context.Context, beforeFunc, afterFunc HookFunc) context.Context {
	hooks := getHookList(ctx)
	if hooks == nil {
		hooks = &hookList{}
		ctx = context.WithValue(ctx, &hookListKey, hooks)
	}

	hooks.a = append(hooks.a, Hook{Before: beforeFunc, After: afterFunc})

	return ctx
}

// middleware

func Register(l logrus.FieldLogger) func(rw http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
	return func(rw http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
		ctx := context.WithValue(r.Context(), &hookListKey, &hookList{})
		next(rw, r.WithContext(WithLogger(ctx, l)))
	}
}

func Log() func(rw http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
	return func(rw http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
		hooks := getHookList(r.Context())

		var l logrus.FieldLogger = GetLogger(r.Context()).WithFields(logrus.Fields{
			"http.method":     r.Method,
			"http.path":       r.URL.String(),
			"http.host":       r.Host,
			"http.user_agent": r.Header.Get("user-agent"),
		})

		if hooks != nil {
			l = hooks.run(rw, r, l, false)
		}

		// handlers log through the request logger, so they pick up the
		// fields added by hooks
		r = r.WithContext(WithLogger(r.Context(), l))

		defer func() {
			status := 0

			if nrw, ok := rw.(interface {
				Status() int
				Size() int
			}); ok {
				status = nrw.Status()

				l = l.WithFields(logrus.Fields{
					"http.status_code":   nrw.Status(),
					"http.response_size": nrw.Size(),
				})
			}

			if hooks != nil {
				l = hooks.run(rw, r, l, true)
			}

			if status >= http.StatusInternalServerError {
				l.Warn("http request finished")
			} else {
				l.Info("http request finished")
			}
		}()

		l.Debug("http request started")

		next(rw, r)
	}
}
