package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"brainball/api/internal/backend"
	"brainball/api/internal/config"
	"brainball/api/internal/events"
	"brainball/api/internal/httpapi"
)

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Logger()
}

func serve(cfg config.Config) error {
	log := newLogger(cfg.LogLevel)

	// Canceled on SIGINT/SIGTERM. Joined into every backend call via the
	// base context, so shutdown also stops in-flight inference.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	httpapi.SetLogger(log)
	httpapi.SetMaxBodyBytes(cfg.MaxBodyBytes)
	httpapi.SetRequestDeadline(time.Duration(cfg.RequestDeadline))
	httpapi.SetVersion(version)
	httpapi.SetBaseContext(ctx)
	if len(cfg.CORSOrigins) > 0 {
		httpapi.SetCORSOptions(true, cfg.CORSOrigins,
			[]string{http.MethodGet, http.MethodPost, http.MethodOptions},
			[]string{"Accept", "Content-Type", httpapi.RequestIDHeader})
	}

	if cfg.NATSURL != "" {
		pub, err := events.NewNATSPublisher(cfg.NATSURL, cfg.EventsSubject, log)
		if err != nil {
			// Events are best-effort; run without them rather than refuse to start.
			log.Warn().Err(err).Str("url", cfg.NATSURL).Msg("events disabled")
		} else {
			defer pub.Close()
			httpapi.SetPublisher(pub)
		}
	}

	client := backend.New(cfg.BackendAddr, backend.WithLogger(log))
	defer client.Close()

	// Warm the connection so the first request does not pay for the dial.
	// Failure is fine here, the client redials on demand.
	dialCtx, cancelDial := context.WithTimeout(ctx, 2*time.Second)
	if err := client.Connect(dialCtx); err != nil {
		log.Warn().Err(err).Str("addr", cfg.BackendAddr).Msg("backend not reachable yet")
	}
	cancelDial()

	srv := &http.Server{Addr: cfg.Addr, Handler: httpapi.NewMux(client)}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr).Str("backend", cfg.BackendAddr).Msg("gateway listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutCtx); err != nil {
		log.Warn().Err(err).Msg("graceful shutdown incomplete")
	}
	return nil
}
