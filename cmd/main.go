/*
Package main starts the medauth server.

It loads configuration, initializes logging, opens the configured credential
store, serves HTTP until SIGINT or SIGTERM and then shuts down gracefully.
*/
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medauth/internal/app/auth"
	"medauth/internal/app/credstore"
	"medauth/internal/configs"
	"medauth/internal/handler"
	"medauth/internal/pkg/logx"
)

func main() {
	cfg, err := configs.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logx.InitGlobalLogger(cfg.IsDevelopment())
	logx.Logger().Info().
		Str("environment", cfg.Environment).
		Int("port", cfg.Port).
		Str("store_driver", cfg.StoreDriver).
		Str("static_dir", cfg.StaticDir).
		Strs("allowed_origins", cfg.AllowedOrigins).
		Msg("Configuration loaded successfully")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := credstore.Open(ctx, credstore.OptionsFromConfig(cfg))
	if err != nil {
		logx.Fatal(err, "Failed to open credential store", "driver", cfg.StoreDriver)
	}

	deps := &handler.AppDeps{
		Config: cfg,
		Auth:   auth.NewService(store, cfg.BcryptCost),
	}
	if cfg.StoreDriver == configs.DriverFile {
		deps.UsersFile = cfg.UsersFile
	}

	serverAddr := fmt.Sprintf(":%d", cfg.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler.Router(deps),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logx.Info(fmt.Sprintf("medauth running at http://localhost%s", serverAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logx.Fatal(err, "Server failed to start")
		}
	}()

	<-ctx.Done()
	logx.Info("Received shutdown signal. Starting graceful shutdown...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logx.Error(err, "Server forced to shutdown")
	}

	if err := store.Close(); err != nil {
		logx.Error(err, "Failed to close credential store")
	}

	logx.Info("Server gracefully stopped.")
}
