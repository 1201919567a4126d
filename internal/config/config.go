// Package config handles application configuration and setup
package config

import (
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates the application logger. The program has no options to
// change the log level, diagnostics below info level are not shown.
func CreateLogger() *log.Logger {
	cfg := log.DefaultConfig()
	return log.NewWithConfig(cfg)
}
