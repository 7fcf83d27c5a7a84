package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	idhandler "idcheck/internal/identifier/handler"
	idmetrics "idcheck/internal/identifier/metrics"
	idservice "idcheck/internal/identifier/service"
	"idcheck/internal/platform/config"
	"idcheck/internal/platform/httpserver"
	"idcheck/internal/platform/logger"
	httptransport "idcheck/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	m := idmetrics.New()
	svc := idservice.New(
		idservice.WithLogger(log),
		idservice.WithMetrics(m),
	)
	router := httptransport.NewRouter(idhandler.New(svc, log))

	srv := httpserver.New(cfg.Addr, router)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting idcheck", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server exited", "error", err)
	}
}
