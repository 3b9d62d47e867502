package logging

import (
	"log"
	"os"
	"sync"
)

var (
	mu       sync.Mutex
	instance *Logger
)

// InitLogger initializes the global logger with the given configuration.
// It replaces any previously configured instance.
func InitLogger(config *LogConfig) error {
	logger, err := NewLogger(config)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	instance = logger
	return nil
}

// GetGlobalLogger returns the global logger instance. If InitLogger was never
// called (tests, early startup failures) it falls back to a plain stdout
// logger rather than panicking.
func GetGlobalLogger() *Logger {
	mu.Lock()
	defer mu.Unlock()
	if instance == nil {
		instance = &Logger{Logger: log.New(os.Stdout, "", log.LstdFlags)}
	}
	return instance
}
