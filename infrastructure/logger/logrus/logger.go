// ABOUTME: Logrus-backed implementation of the Logger interface
// ABOUTME: Structured fields map directly onto logrus fields

package logrus

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Logger implements the core Logger interface using logrus
type Logger struct {
	log *logrus.Logger
}

// NewLogger creates a logrus logger with JSON output at info level
func NewLogger() *Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)

	return &Logger{log: log}
}

// NewLoggerWithOutput creates a logger writing to the given sink,
// mainly for tests.
func NewLoggerWithOutput(out io.Writer) *Logger {
	l := NewLogger()
	l.log.SetOutput(out)
	return l
}

// SetDebug enables debug level logging
func (l *Logger) SetDebug() {
	l.log.SetLevel(logrus.DebugLevel)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Info(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Error(msg)
}
