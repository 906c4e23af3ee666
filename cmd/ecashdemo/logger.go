// logger.go - structured logging for the ecash demonstration binary
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// LogLevel represents the logging level.
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	FATAL
)

// Logger wraps a zerolog.Logger behind the method shape the rest of this
// demo's call sites expect: Debug/Info/Warn/Error/Fatal/Audit, each taking
// a printf-style format string.
type Logger struct {
	level LogLevel
	zl    zerolog.Logger
}

// NewLogger creates a console logger at the given level.
func NewLogger(level string) *Logger {
	var logLevel LogLevel
	switch level {
	case "debug":
		logLevel = DEBUG
	case "info":
		logLevel = INFO
	case "warn":
		logLevel = WARN
	case "error":
		logLevel = ERROR
	case "fatal":
		logLevel = FATAL
	default:
		logLevel = INFO
	}

	zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}).With().Timestamp().Logger()

	return &Logger{level: logLevel, zl: zl}
}

func (l *Logger) log(level LogLevel, format string, args ...interface{}) {
	if level < l.level {
		return
	}

	message := fmt.Sprintf(format, args...)
	switch level {
	case DEBUG:
		l.zl.Debug().Msg(message)
	case INFO:
		l.zl.Info().Msg(message)
	case WARN:
		l.zl.Warn().Msg(message)
	case ERROR:
		l.zl.Error().Msg(message)
	case FATAL:
		l.zl.Fatal().Msg(message)
	}
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, args ...interface{}) { l.log(DEBUG, format, args...) }

// Info logs an info message.
func (l *Logger) Info(format string, args ...interface{}) { l.log(INFO, format, args...) }

// Warn logs a warning message.
func (l *Logger) Warn(format string, args ...interface{}) { l.log(WARN, format, args...) }

// Error logs an error message.
func (l *Logger) Error(format string, args ...interface{}) { l.log(ERROR, format, args...) }

// Fatal logs a fatal message and exits.
func (l *Logger) Fatal(format string, args ...interface{}) {
	l.log(FATAL, format, args...)
	os.Exit(1)
}

// Audit logs a structured event carrying arbitrary key/value detail,
// separate from the leveled log stream.
func (l *Logger) Audit(event string, details map[string]interface{}) {
	evt := l.zl.Log().Str("event", event)
	for k, v := range details {
		evt = evt.Interface(k, v)
	}
	evt.Msg("audit")
}
