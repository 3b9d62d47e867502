package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gaiapac/backend/internal/config"
	"github.com/gaiapac/backend/internal/database"
	"github.com/gaiapac/backend/internal/logging"
	"github.com/gaiapac/backend/internal/repository"
	"github.com/gaiapac/backend/internal/server"
	"github.com/gaiapac/backend/internal/version"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gaiapac-api",
	Short: "Gaiapac backend API server",
	Long: `Backend service that accepts contact form submissions, persists them to
PostgreSQL and reports database health.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Info())
	},
}

func runServe() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logFile := cfg.LogFile
	if logFile == "" {
		logFile = "./logs/api.log"
	}
	if err := logging.InitLogger(&logging.LogConfig{
		File:       logFile,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     7,
	}); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger := logging.GetGlobalLogger()
	defer logger.Close()

	logger.Info("Starting server in %s mode", cfg.Environment)

	submissions := buildSubmissionRepository(cfg, logger)

	// Startup connectivity probe, logged only; the server serves regardless.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := submissions.Probe(ctx); err != nil {
		logger.Warn("Database connectivity probe failed: %v", err)
	} else {
		logger.Info("Database connection established")
	}

	srv := server.NewServer(cfg, submissions)
	logger.Info("Listening on port %s", cfg.Port)
	return srv.Start()
}

// buildSubmissionRepository wires the store gateway. Missing or broken
// database configuration degrades to the unavailable gateway instead of
// crashing the listener; /health reports the condition.
func buildSubmissionRepository(cfg *config.Config, logger *logging.Logger) *repository.PGSubmissionRepository {
	dsn := cfg.DSN()
	if dsn == "" {
		logger.Error("Missing database configuration (DATABASE_URL or DB_* variables); store operations will be unavailable")
		return repository.NewSubmissionRepository(nil)
	}

	db, err := database.Connect(dsn)
	if err != nil {
		logger.Error("Failed to open database connection: %v", err)
		return repository.NewSubmissionRepository(nil)
	}
	return repository.NewSubmissionRepository(db)
}

func main() {
	rootCmd.AddCommand(serveCmd, versionCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
