package odfgen

import (
	"io"
	"math"
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

type LogLevel = log.Level

const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
	LogWarn  = log.WarnLevel
	LogError = log.ErrorLevel
	LogOff   = log.Level(math.MaxInt32)
)

var logLevels = map[string]LogLevel{
	"debug": LogDebug,
	"info":  LogInfo,
	"warn":  LogWarn,
	"error": LogError,
	"off":   LogOff,
}

var (
	globalLogger   *log.Logger
	globalLoggerMu sync.RWMutex
)

// ParseLogLevel maps a configured level name to a LogLevel, falling back to info
func ParseLogLevel(levelStr string) LogLevel {
	if level, ok := logLevels[levelStr]; ok {
		return level
	}
	return LogInfo
}

// NewLogger creates a logger writing to w at the given level
func NewLogger(w io.Writer, level LogLevel) *log.Logger {
	if w == nil {
		w = io.Discard
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "2006-01-02 15:04:05",
		Level:           level,
		Prefix:          "odfgen",
	})
}

// SetLogger replaces the package logger used when an Assembler has none
func SetLogger(logger *log.Logger) {
	globalLoggerMu.Lock()
	defer globalLoggerMu.Unlock()
	globalLogger = logger
}

// GetLogger returns the package logger, creating it from the environment on first use
func GetLogger() *log.Logger {
	globalLoggerMu.RLock()
	l := globalLogger
	globalLoggerMu.RUnlock()
	if l != nil {
		return l
	}

	globalLoggerMu.Lock()
	defer globalLoggerMu.Unlock()
	if globalLogger == nil {
		globalLogger = NewLogger(os.Stderr, ParseLogLevel(ConfigFromEnvironment().LogLevel))
	}
	return globalLogger
}
