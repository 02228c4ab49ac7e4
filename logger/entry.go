package logger

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Entry is a logger carrying a fixed set of fields
type Entry struct {
	ee zerolog.Logger
}

// WithField adds a single field to the Entry.
func (entry *Entry) WithField(key string, value interface{}) *Entry {
	return &Entry{ee: entry.ee.With().Interface(key, value).Logger()}
}

// WithFields adds a map of fields to the Entry.
func (entry *Entry) WithFields(fields Fields) *Entry {
	return &Entry{ee: entry.ee.With().Fields(map[string]interface{}(fields)).Logger()}
}

// Logf logs using level and format
func (entry *Entry) Logf(level Level, format string, args ...interface{}) {
	entry.ee.WithLevel(toZeroLogLevel(level)).Msgf(format, args...)
}

// Log logs using level
func (entry *Entry) Log(level Level, args ...interface{}) {
	entry.ee.WithLevel(toZeroLogLevel(level)).Msg(fmt.Sprint(args...))
}

// Tracef logs trace level with format
func (entry *Entry) Tracef(format string, args ...interface{}) {
	entry.Logf(TraceLevel, format, args...)
}

// Debugf logs debug level with format
func (entry *Entry) Debugf(format string, args ...interface{}) {
	entry.Logf(DebugLevel, format, args...)
}

// Infof logs info level with format
func (entry *Entry) Infof(format string, args ...interface{}) {
	entry.Logf(InfoLevel, format, args...)
}

// Warnf logs warn level with format
func (entry *Entry) Warnf(format string, args ...interface{}) {
	entry.Logf(WarnLevel, format, args...)
}

// Errorf logs error level with format
func (entry *Entry) Errorf(format string, args ...interface{}) {
	entry.Logf(ErrorLevel, format, args...)
}

// Debug logs debug level
func (entry *Entry) Debug(args ...interface{}) {
	entry.Log(DebugLevel, args...)
}

// Info logs info level
func (entry *Entry) Info(args ...interface{}) {
	entry.Log(InfoLevel, args...)
}

// Warn logs warn level
func (entry *Entry) Warn(args ...interface{}) {
	entry.Log(WarnLevel, args...)
}

// Error logs error level
func (entry *Entry) Error(args ...interface{}) {
	entry.Log(ErrorLevel, args...)
}
