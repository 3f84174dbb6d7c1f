package ctxstore

import (
	"context"
	"fmt"
	"net/http"

	"fknsrs.biz/p/videoregistry/internal/videostore"
)

var (
	ErrNoStore = fmt.Errorf("ctxstore: no store found in context")
)

// context registration

var storeKey int

func WithStore(ctx context.Context, s *videostore.Store) context.Context {
	return context.WithValue(ctx, &storeKey, s)
}

func GetStore(ctx context.Context) *videostore.Store {
	if v := ctx.Value(&storeKey); v != nil {
		return v.(*videostore.Store)
	}

	return nil
}

// MustGetStore panics with ErrNoStore when the middleware wasn't installed,
// which negroni's recovery turns into a 500.
func MustGetStore(ctx context.Context) *videostore.Store {
	s := GetStore(ctx)
	if s == nil {
		panic(ErrNoStore)
	}

	return s
}

// middleware

func Register(s *videostore.Store) func(rw http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
	return func(rw http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
		next(rw, r.WithContext(WithStore(r.Context(), s)))
	}
}
