package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dearmomollie/internal/catalog"
	"dearmomollie/internal/config"
	"dearmomollie/internal/shop"
	"dearmomollie/internal/sitemap"
	"dearmomollie/internal/static"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func runServer(cfg *config.Config, addr string) error {
	fetcher, err := catalog.NewFetcher(cfg.Catalog)
	if err != nil {
		return fmt.Errorf("failed to create catalog fetcher: %w", err)
	}

	mux := http.NewServeMux()

	static.Register(mux)

	shopHandler := shop.NewHandler(fetcher)
	shopHandler.Register(mux)

	sitemap.New().Register(mux)

	ro := &readyOnce{}
	ro.Add(fetcher)
	mux.Handle("/ready", ro)

	mux.Handle("GET /metrics", promhttp.Handler())

	server := &http.Server{
		Addr:    addr,
		Handler: WithMiddleware(mux),
	}

	serverErrors := make(chan error, 1)

	go func() {
		slog.Info("Serving DearMomollie", "address", addr)
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case sig := <-shutdown:
		slog.Info("Shutdown signal received", "signal", sig)
		return gracefulShutdown(server)
	}
}

func gracefulShutdown(svr *http.Server) error {
	// Give outstanding requests 25 seconds to complete (kubernetes has 30 second grace period)
	ctx, cancel := context.WithTimeout(context.Background(), 25*time.Second)
	defer cancel()

	if err := svr.Shutdown(ctx); err != nil {
		slog.Error("Server shutdown error", "error", err)
		if closeErr := svr.Close(); closeErr != nil {
			slog.Error("Server close error", "error", closeErr)
		}
		return err
	}
	return nil
}
