package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/akiyamakenta/manabiya/internal/db"
	"github.com/akiyamakenta/manabiya/internal/llm"
	"github.com/akiyamakenta/manabiya/internal/server"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		addr   string
		dbPath string
	)

	root := &cobra.Command{
		Use:          "manabiya",
		Short:        "Learning planner API server",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(addr, dbPath)
		},
	}

	root.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	root.Flags().StringVar(&dbPath, "db", "", "SQLite database path (default $MANABIYA_DB or ~/.manabiya/manabiya.db)")

	return root
}

func run(addr, dbPath string) error {
	logger := newLogger()

	if dbPath == "" {
		dbPath = os.Getenv("MANABIYA_DB")
	}
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".manabiya", "manabiya.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	llmCfg := llm.LoadConfig()
	var observer llm.Observer = llm.NoopObserver{}
	if llmCfg.LogCalls {
		observer = llm.NewLogObserver(os.Stderr)
	}
	client := llm.NewOpenAIClient(llmCfg, observer)

	srv := server.New(client, db.NewSQLiteUnitOfWork(database), logger)

	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", addr, "db", dbPath, "model", llmCfg.Model)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving: %w", err)
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down: %w", err)
		}
	}
	return nil
}

// newLogger uses a human-readable handler on a terminal, JSON otherwise.
func newLogger() *slog.Logger {
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		return slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, nil))
}
