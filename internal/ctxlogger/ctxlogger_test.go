package ctxlogger

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/urfave/negroni/v2"
)

func TestGetLoggerDefault(t *testing.T) {
	a := assert.New(t)

	a.Equal(logrus.StandardLogger(), GetLogger(context.Background()))
}

func TestLogMiddleware(t *testing.T) {
	a := assert.New(t)

	logger, hook := test.NewNullLogger()

	n := negroni.New()
	n.UseFunc(Register(logger))
	n.UseFunc(func(rw http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
		next(rw, r.WithContext(AddHookPair(
			r.Context(),
			func(rw http.ResponseWriter, r *http.Request, l logrus.FieldLogger) logrus.FieldLogger {
				return l.WithField("test.before", "yes")
			},
			func(rw http.ResponseWriter, r *http.Request, l logrus.FieldLogger) logrus.FieldLogger {
				return l.WithField("test.after", "yes")
			},
		)))
	})
	n.UseFunc(Log())
	n.UseHandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		GetLogger(r.Context()).Info("inside handler")
		rw.WriteHeader(http.StatusTeapot)
	})

	rw := httptest.NewRecorder()
	n.ServeHTTP(rw, httptest.NewRequest(http.MethodGet, "/videos", nil))

	a.Equal(http.StatusTeapot, rw.Code)

	if a.Len(hook.AllEntries(), 2) {
		inside := hook.AllEntries()[0]
		a.Equal("inside handler", inside.Message)
		a.Equal("yes", inside.Data["test.before"])
		a.Equal("/videos", inside.Data["http.path"])

		last := hook.LastEntry()
		a.Equal("http request finished", last.Message)
		a.Equal(http.StatusTeapot, last.Data["http.status_code"])
		a.Equal("yes", last.Data["test.after"])
	}
}
