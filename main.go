package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/toilettalk/toilettalk/cliparse"
	"github.com/toilettalk/toilettalk/db"
	"github.com/toilettalk/toilettalk/router"
	"github.com/toilettalk/toilettalk/store"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(newLogger(cfg))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to the database
	dbConn, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "type", cfg.DatabaseType, "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Create schema (tables)
	if err := db.CreateSchema(ctx, dbConn, cfg.DatabaseType); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	seeded, err := db.Seed(ctx, dbConn)
	if err != nil {
		slog.Error("seeding locations failed", "error", err)
		os.Exit(1)
	}
	if seeded {
		slog.Info("Seeded locations", "count", len(db.SeedLocations))
	} else {
		slog.Info("Locations already seeded")
	}

	// Create router
	handler := router.NewRouter(store.New(dbConn), cfg)

	// Create server
	server := &http.Server{
		Handler:      handler,
		Addr:         cfg.Addr(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		slog.Error("listen failed", "addr", server.Addr, "error", err)
		dbConn.Close()
		os.Exit(1)
	}

	// Start server
	slog.Info("Listening", "addr", ln.Addr().String())
	if err := serve(ctx, server, ln, cfg.ShutdownTimeout); err != nil {
		slog.Error("Server closed", "error", err)
		dbConn.Close()
		os.Exit(1)
	}
	slog.Info("Server closed")
}

// serve runs srv on ln until ctx is cancelled, then drains in-flight
// requests for up to timeout. It returns only once the server has stopped,
// so callers may release shared resources afterwards.
func serve(ctx context.Context, srv *http.Server, ln net.Listener, timeout time.Duration) error {
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve(ln)
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down", "timeout", timeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		srv.Close()
		<-serveErr
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	if err := <-serveErr; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func newLogger(cfg cliparse.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.LogFormat == cliparse.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
