// Ingallsd serves the Ingalls solver over HTTP.
//
// Flags set the defaults, INGALLS_ADDR and INGALLS_RATE override them.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/soniakeys/exit"

	"github.com/gehtsoft-usa/go_ingalls"
	"github.com/gehtsoft-usa/go_ingalls/internal/api"
)

func main() {
	defer exit.Handler()

	defaults := api.DefaultConfig()
	addr := flag.String("addr", defaults.Addr, "listen address")
	rate := flag.Float64("rate", defaults.RequestsPerMinute, "requests per minute per client")
	burst := flag.Int("burst", defaults.Burst, "request burst per client")
	verbose := flag.Bool("v", false, "log every rejected request")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	config, err := api.ConfigFromEnv(api.Config{Addr: *addr, RequestsPerMinute: *rate, Burst: *burst})
	if err != nil {
		exit.Log(err)
	}

	calculator, err := go_ingalls.CreateStandardIngallsCalculator()
	if err != nil {
		exit.Log(err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := api.NewMetricsCollector(registry)
	server := api.NewServer(go_ingalls.CreateTrajectorySolver(calculator), config, metrics, logger)

	httpServer := &http.Server{
		Addr:              config.Addr,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Warn("starting server", "addr", config.Addr, "rate", config.RequestsPerMinute, "burst", config.Burst)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			exit.Log(err)
		}
	case <-ctx.Done():
		logger.Warn("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			exit.Log(err)
		}
	}
}
