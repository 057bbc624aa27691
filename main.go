package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/danielhkuo/angelito/assign"
	"github.com/danielhkuo/angelito/cliparse"
	"github.com/danielhkuo/angelito/middleware"
	"github.com/danielhkuo/angelito/router"
	"github.com/danielhkuo/angelito/store"
)

func main() {
	var err error

	setupLogger()

	// Load .env before reading configuration
	if err := cliparse.LoadDotEnv(".env"); err != nil {
		slog.Error("Error loading .env", "error", err)
		os.Exit(1)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Open participant store
	backend, err := store.Open(ctx, cfg)
	if err != nil {
		slog.Error("store open failed", "error", err, "store", cfg.StoreType)
		os.Exit(1)
	}
	defer backend.Close()

	pick, err := assign.NewPicker()
	if err != nil {
		slog.Error("random source failed", "error", err)
		os.Exit(1)
	}
	svc := assign.NewService(backend, pick)

	// Refuse to serve broken data
	count, err := svc.Check(ctx)
	if err != nil {
		slog.Error("participant check failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Participants ready", "store", cfg.StoreType, "count", count)
	if cfg.AdminKey == "" {
		slog.Warn("admin data is public; set ADMIN_KEY to protect it")
	}

	// Create router
	mux := router.NewRouter(svc, cfg)

	// Create server
	server := http.Server{
		Handler:           middleware.CORS(mux),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

// setupLogger uses readable text on a terminal and JSON otherwise
func setupLogger() {
	var handler slog.Handler
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		handler = slog.NewTextHandler(os.Stdout, nil)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, nil)
	}
	slog.SetDefault(slog.New(handler))
}
