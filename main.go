package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/urfave/negroni/v2"

	"fknsrs.biz/p/videoregistry/handlers"
	"fknsrs.biz/p/videoregistry/internal/catchpanic"
	"fknsrs.biz/p/videoregistry/internal/config"
	"fknsrs.biz/p/videoregistry/internal/configreader"
	"fknsrs.biz/p/videoregistry/internal/ctxclock"
	"fknsrs.biz/p/videoregistry/internal/ctxconfig"
	"fknsrs.biz/p/videoregistry/internal/ctxlogger"
	"fknsrs.biz/p/videoregistry/internal/ctxrequestid"
	"fknsrs.biz/p/videoregistry/internal/ctxstore"
	"fknsrs.biz/p/videoregistry/internal/ctxtimer"
	"fknsrs.biz/p/videoregistry/internal/logrusstackhook"
	"fknsrs.biz/p/videoregistry/internal/videometrics"
	"fknsrs.biz/p/videoregistry/internal/videostore"
)

var cfg = config.Default()

func init() {
	for _, configPath := range []string{"config.toml", "config.yaml", "config.yml"} {
		if st, err := os.Stat(configPath); err == nil && st != nil && !st.IsDir() {
			cfg.Config = configPath
		}
	}
}

func main() {
	if err := configreader.Read(os.Args[0], os.Args[1:], os.Environ(), &cfg); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}

		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(2)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx = ctxconfig.WithConfig(ctx, cfg)
	ctx = ctxclock.WithClock(ctx, ctxclock.NewRealClock())

	logger := logrus.New()

	logger.SetLevel(cfg.LogLevel)
	if cfg.LogJSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	if len(cfg.LogDebugLevels) > 0 {
		logger.AddHook(logrusstackhook.NewStackHook(cfg.LogDebugLevels, nil))
	}

	logger.WithFields(logrus.Fields{
		"config.config":                     cfg.Config,
		"config.log_level":                  cfg.LogLevel,
		"config.log_debug_levels":           cfg.LogDebugLevels,
		"config.log_json":                   cfg.LogJSON,
		"config.application_addr":           cfg.ApplicationAddr,
		"config.application_metrics":        cfg.ApplicationMetrics,
		"config.application_metrics_path":   cfg.ApplicationMetricsPath,
		"config.application_testing_routes": cfg.ApplicationTestingRoutes,
		"config.application_max_body_bytes": cfg.ApplicationMaxBodyBytes,
	}).Info("program starting")

	ctx = ctxlogger.WithLogger(ctx, logger)

	store := videostore.New(ctxclock.GetClock(ctx))
	videometrics.SetVideos(store.Len())

	ctx = ctxstore.WithStore(ctx, store)

	workers := []worker{
		{
			name: "application",
			run: func(ctx context.Context) error {
				return runApplicationWorker(ctx, cfg.ApplicationAddr)
			},
		},
	}

	if err := runAllWorkers(ctx, workers); err != nil {
		logger.WithError(err).Error("program failed")
		os.Exit(1)
	}

	logger.Info("program finished")
}

type worker struct {
	name string
	run  func(ctx context.Context) error
}

// runAllWorkers runs every worker until ctx is cancelled. A worker that
// returns or panics is restarted after a second.
func runAllWorkers(ctx context.Context, workers []worker) error {
	var wg sync.WaitGroup

	errs := make([]error, len(workers))

	for id, w := range workers {
		wg.Add(1)

		go func(id int, w worker) {
			defer wg.Done()

			l := ctxlogger.GetLogger(ctx).WithFields(logrus.Fields{
				"worker.id":   id + 1,
				"worker.name": w.name,
			})

			wctx := ctxlogger.WithLogger(ctx, l)

			for {
				err := catchpanic.CatchErr0(func() error { return w.run(wctx) })

				if ctx.Err() != nil {
					if err != nil && !errors.Is(err, http.ErrServerClosed) {
						errs[id] = fmt.Errorf("worker %d (%s) failed during shutdown: %w", id+1, w.name, err)
					}

					return
				}

				if err != nil {
					l.WithError(err).Error("worker failed")
				} else {
					l.Info("worker returned")
				}

				select {
				case <-ctx.Done():
					return
				case <-time.After(time.Second):
					l.Info("worker restarting")
				}
			}
		}(id, w)
	}

	wg.Wait()

	return errors.Join(errs...)
}

func runApplicationWorker(ctx context.Context, addr string) error {
	l := ctxlogger.GetLogger(ctx)

	l.WithFields(logrus.Fields{
		"args.addr": addr,
	}).Info("running application worker")

	m := handlers.NewRouter(cfg.ApplicationTestingRoutes)

	if cfg.ApplicationMetrics {
		m.Methods(http.MethodGet).Path(cfg.ApplicationMetricsPath).Handler(promhttp.Handler())
	}

	n := negroni.New()
	n.Use(negroni.NewRecovery())
	n.UseFunc(ctxlogger.Register(l))
	n.UseFunc(ctxrequestid.Register())
	n.UseFunc(ctxtimer.Register())
	n.UseFunc(ctxclock.Register(ctxclock.GetClock(ctx)))
	n.UseFunc(ctxconfig.Register(ctxconfig.GetConfig(ctx)))
	n.UseFunc(ctxstore.Register(ctxstore.GetStore(ctx)))
	n.UseFunc(ctxrequestid.AddLoggerHooks())
	n.UseFunc(ctxtimer.AddLoggerHooks())
	n.UseFunc(ctxclock.AddLoggerHooks())
	n.UseFunc(ctxlogger.Log())
	n.UseHandler(m)

	s := &http.Server{
		Addr:              addr,
		Handler:           n,
		ReadHeaderTimeout: time.Second * 10,
		BaseContext:       func(l net.Listener) context.Context { return ctx },
	}

	errs := make(chan error, 1)
	go func() {
		l.Info("starting server")
		errs <- s.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()

		l.Info("stopping server")

		return s.Shutdown(shutdownCtx)
	}
}
