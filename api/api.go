// Package api exposes the HTTP endpoints as standalone serverless function
// entrypoints. Every entrypoint shares one lazily initialized engine, so the
// handler logic is exactly the long-lived server's; only the invocation shape
// differs.
package api

import (
	"sync"

	"github.com/gaiapac/backend/internal/config"
	"github.com/gaiapac/backend/internal/database"
	"github.com/gaiapac/backend/internal/logging"
	"github.com/gaiapac/backend/internal/repository"
	"github.com/gaiapac/backend/internal/server"
)

var (
	initOnce sync.Once
	srv      *server.Server
)

// instance builds the shared engine on first invocation (cold start).
// Serverless filesystems are ephemeral, so logs go to stdout only.
func instance() *server.Server {
	initOnce.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			cfg = &config.Config{Environment: "production", Port: "5000"}
		}

		_ = logging.InitLogger(&logging.LogConfig{})
		logger := logging.GetGlobalLogger()
		if err != nil {
			logger.Error("Failed to load configuration: %v", err)
		}

		var submissions repository.SubmissionRepository
		if dsn := cfg.DSN(); dsn != "" {
			db, dbErr := database.Connect(dsn)
			if dbErr != nil {
				logger.Error("Failed to open database connection: %v", dbErr)
				submissions = repository.NewSubmissionRepository(nil)
			} else {
				submissions = repository.NewSubmissionRepository(db)
			}
		} else {
			logger.Error("Missing database configuration; store operations will be unavailable")
			submissions = repository.NewSubmissionRepository(nil)
		}

		srv = server.NewServer(cfg, submissions)
	})
	return srv
}
