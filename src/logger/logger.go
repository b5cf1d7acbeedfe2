package logger

import (
	"fmt"
	"log"
	"os"

	"trade-journal/src/models"
)

// -----------------------------------------------------------------------------

// Verbosity levels, in increasing order of detail.
const (
	levelCritical = iota
	levelError
	levelWarning
	levelInfo
	levelDebug
)

// -----------------------------------------------------------------------------

// Logger is the service's own operational logger, one named instance per
// component. It is distinct from the journal, which is the product.
type Logger struct {
	name   string
	level  int
	logger *log.Logger
}

// -----------------------------------------------------------------------------

// NewLogger creates a new Logger instance. The level comes from the config
// log_level field; a nil config or unknown level defaults to INFO.
func NewLogger(cfg *models.MConfig, name string) *Logger {
	level := levelInfo
	if cfg != nil {
		level = parseLevel(cfg.LogLevel)
	}
	return &Logger{
		name:   name,
		level:  level,
		logger: log.New(os.Stdout, "", log.LstdFlags),
	}
}

// -----------------------------------------------------------------------------

func parseLevel(s string) int {
	switch s {
	case "DEBUG":
		return levelDebug
	case "INFO":
		return levelInfo
	case "WARNING":
		return levelWarning
	case "ERROR":
		return levelError
	case "CRITICAL":
		return levelCritical
	default:
		return levelInfo
	}
}

// -----------------------------------------------------------------------------

func (l *Logger) printf(level int, tag, format string, args ...interface{}) {
	if level > l.level {
		return
	}
	msg := fmt.Sprintf(format, args...)
	l.logger.Printf("[%s] %s: %s", l.name, tag, msg)
}

// -----------------------------------------------------------------------------

// Debug logs diagnostic details
func (l *Logger) Debug(format string, args ...interface{}) {
	l.printf(levelDebug, "DEBUG", format, args...)
}

// -----------------------------------------------------------------------------

// Info logs informational messages
func (l *Logger) Info(format string, args ...interface{}) {
	l.printf(levelInfo, "INFO", format, args...)
}

// -----------------------------------------------------------------------------

// Warning logs recoverable problems
func (l *Logger) Warning(format string, args ...interface{}) {
	l.printf(levelWarning, "WARNING", format, args...)
}

// -----------------------------------------------------------------------------

// Error logs error messages
func (l *Logger) Error(format string, args ...interface{}) {
	l.printf(levelError, "ERROR", format, args...)
}

// -----------------------------------------------------------------------------

// Critical logs critical errors and exits the application
func (l *Logger) Critical(format string, args ...interface{}) {
	l.printf(levelCritical, "CRITICAL", format, args...)
	os.Exit(1)
}
