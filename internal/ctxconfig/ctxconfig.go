package ctxconfig

import (
	"context"
	"net/http"

	"fknsrs.biz/p/videoregistry/internal/config"
)

// context registration

var configKey int

func WithConfig(ctx context.Context, c config.Config) context.Context {
	return context.WithValue(ctx, &configKey, c)
}

// GetConfig falls back to config.Default when nothing was registered.
func GetConfig(ctx context.Context) config.Config {
	if v := ctx.Value(&configKey); v != nil {
		return v.(config.Config)
	}

	return config.Default()
}

// middleware

func Register(c config.Config) func(rw http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
	return func(rw http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
		next(rw, r.WithContext(WithConfig(r.Context(), c)))
	}
}

// main interface

func MaxBodyBytes(ctx context.Context) int64 {
	return int64(GetConfig(ctx).ApplicationMaxBodyBytes)
}
