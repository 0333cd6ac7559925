// Package server exposes the password generator over HTTP.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/passwiz/passwiz-go/internal/config"
	"github.com/passwiz/passwiz-go/internal/generator"
	"github.com/passwiz/passwiz-go/internal/handler"
	"github.com/passwiz/passwiz-go/internal/middleware"
	"github.com/passwiz/passwiz-go/internal/service"
)

const shutdownTimeout = 10 * time.Second

// NewRouter builds the API routes. ctx bounds the rate limiter's background cleanup.
func NewRouter(ctx context.Context, cfg config.Config, src generator.Source) http.Handler {
	genHandler := handler.NewGeneratorHandler(service.NewGeneratorService(src))

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst))
		r.Post("/api/v1/generate", genHandler.HandleGenerate)
		r.Get("/api/v1/alphabet", genHandler.HandleAlphabet)
	})

	return r
}

// Run serves the API on cfg.Port until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context, cfg config.Config, src generator.Source) error {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           NewRouter(ctx, cfg, src),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	slog.Info("server stopped")
	return nil
}
