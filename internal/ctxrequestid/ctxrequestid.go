package ctxrequestid

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"fknsrs.biz/p/videoregistry/internal/ctxlogger"
)

const HeaderName = "X-Request-Id"

// context registration

var requestIDKey int

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, &requestIDKey, id)
}

func GetRequestID(ctx context.Context) string {
	if v := ctx.Value(&requestIDKey); v != nil {
		return v.(string)
	}

	return ""
}

// middleware

// Register reuses an incoming request id header or generates a new one,
// and echoes it back on the response.
func Register() func(rw http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
	return func(rw http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
		id := r.Header.Get(HeaderName)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}

		rw.Header().Set(HeaderName, id)

		next(rw, r.WithContext(WithRequestID(r.Context(), id)))
	}
}

func AddLoggerHooks() func(rw http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
	return func(rw http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
		next(rw, r.WithContext(ctxlogger.AddHookPair(
			r.Context(),
			func(rw http.ResponseWriter, r *http.Request, l logrus.FieldLogger) logrus.FieldLogger {
				if id := GetRequestID(r.Context()); id != "" {
					return l.WithField("http.request_id", id)
				}

				return l
			},
			nil,
		)))
	}
}
