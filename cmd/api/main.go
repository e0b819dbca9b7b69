package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"poppy-paws/internal/adapters/auth/token"
	"poppy-paws/internal/adapters/storage/postgres"
	"poppy-paws/internal/platform/config"
	"poppy-paws/internal/platform/logger"
	"poppy-paws/internal/router"
)

func main() {
	// .env si existe; los errores se ignoran a propósito.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		App:    "poppy-paws",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := router.Options{Logger: log}

	// Sin DSN corremos con repos in-memory (modo dev).
	if cfg.DBDSN != "" {
		pool, err := postgres.Connect(ctx, cfg.DBDSN)
		if err != nil {
			log.Error("postgres connect failed", map[string]any{"err": err.Error()})
			os.Exit(1)
		}
		defer pool.Close()

		opts.Pool = pool
		opts.DSN = cfg.DBDSN
	} else {
		log.Warn("DB_DSN vacío: usando repos in-memory", nil)
	}

	// Sin password de admin corremos en modo dev: mutaciones abiertas.
	if cfg.AdminPassword != "" {
		tokens, err := token.NewManager(cfg.TokenSecret, cfg.TokenTTL)
		if err != nil {
			log.Error("token manager", map[string]any{"err": err.Error()})
			os.Exit(1)
		}
		opts.Tokens = tokens
		opts.AdminPassword = cfg.AdminPassword
	} else {
		log.Warn("ADMIN_PASSWORD vacía: mutaciones abiertas (modo dev)", nil)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router.New(opts),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down", nil)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown failed", map[string]any{"err": err.Error()})
			os.Exit(1)
		}
	case err := <-serverErr:
		log.Error("server error", map[string]any{"err": err.Error()})
		os.Exit(1)
	}
}
