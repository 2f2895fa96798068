// Package debug provides runtime-toggled debug logging for idcheck.
//
// Debug output is off by default and enabled with IDCHECK_DEBUG=1. The
// validator itself never logs; only the CLI and the HTTP service use this.
package debug

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"sync"
)

// Logger interface for debug logging.
// Provides debug output that can be enabled/disabled at runtime.
//
// Example usage:
//
//	logger := debug.GetLogger()
//	logger.Debugf("validating candidate ID: %s", raw)
//	logger.Debug("verdict computed")
type Logger interface {
	// Debugf logs a formatted debug message
	Debugf(format string, args ...any)
	// Debug logs debug arguments
	Debug(args ...any)
}

// nopLogger does nothing (used when debug mode is disabled).
type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Debug(...any)          {}

// stdLogger logs to standard logger with [DEBUG] prefix.
type stdLogger struct{}

func (stdLogger) Debugf(format string, args ...any) {
	log.Printf("[DEBUG] "+format, args...)
}

func (stdLogger) Debug(args ...any) {
	log.Printf("[DEBUG] %v", fmt.Sprint(args...))
}

var (
	// l is the private global debug logger (use GetLogger() to access)
	l    Logger = nopLogger{}
	once sync.Once
)

// Enabled reports whether debug mode is on, reading IDCHECK_DEBUG.
func Enabled() bool {
	v := os.Getenv("IDCHECK_DEBUG")
	if v == "" {
		return false
	}
	on, err := strconv.ParseBool(v)
	if err != nil {
		return false
	}
	return on
}

// GetLogger returns the configured debug logger.
// Always use this function to access the logger instead of storing a reference.
func GetLogger() Logger {
	return l
}

// InitLogger initializes the debug logger from the environment.
// Uses sync.Once so initialization happens only once, even in concurrent use.
func InitLogger() {
	once.Do(func() {
		if Enabled() {
			l = stdLogger{}
			l.Debug("Debug logging enabled")
		}
	})
}
