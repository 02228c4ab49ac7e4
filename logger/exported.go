package logger

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Fields type
type Fields map[string]interface{}

// WithFields creates an entry with fields
func WithFields(fields Fields) *Entry {
	return &Entry{ee: log.Logger.With().Fields(map[string]interface{}(fields)).Logger()}
}

// WithField creates an entry from the standard logger and adds a field to
// it. If you want multiple fields, use `WithFields`.
func WithField(key string, value interface{}) *Entry {
	return &Entry{ee: log.Logger.With().Interface(key, value).Logger()}
}

func logf(level zerolog.Level, format string, args ...interface{}) {
	log.Logger.WithLevel(level).Msgf(format, args...)
}

func logs(level zerolog.Level, args ...interface{}) {
	log.Logger.WithLevel(level).Msg(fmt.Sprint(args...))
}

// Tracef logs a message at level Trace on the standard logger.
func Tracef(format string, args ...interface{}) {
	logf(zerolog.TraceLevel, format, args...)
}

// Debugf logs a message at level Debug on the standard logger.
func Debugf(format string, args ...interface{}) {
	logf(zerolog.DebugLevel, format, args...)
}

// Infof logs a message at level Info on the standard logger.
func Infof(format string, args ...interface{}) {
	logf(zerolog.InfoLevel, format, args...)
}

// Warnf logs a message at level Warn on the standard logger.
func Warnf(format string, args ...interface{}) {
	logf(zerolog.WarnLevel, format, args...)
}

// Errorf logs a message at level Error on the standard logger.
func Errorf(format string, args ...interface{}) {
	logf(zerolog.ErrorLevel, format, args...)
}

// Fatalf logs a message at level Fatal on the standard logger then the process will exit with status set to 1.
func Fatalf(format string, args ...interface{}) {
	logf(zerolog.FatalLevel, format, args...)
	Exit(1)
}

// Trace logs a message at level Trace on the standard logger.
func Trace(args ...interface{}) {
	logs(zerolog.TraceLevel, args...)
}

// Debug logs a message at level Debug on the standard logger.
func Debug(args ...interface{}) {
	logs(zerolog.DebugLevel, args...)
}

// Info logs a message at level Info on the standard logger.
func Info(args ...interface{}) {
	logs(zerolog.InfoLevel, args...)
}

// Warn logs a message at level Warn on the standard logger.
func Warn(args ...interface{}) {
	logs(zerolog.WarnLevel, args...)
}

// Error logs a message at level Error on the standard logger.
func Error(args ...interface{}) {
	logs(zerolog.ErrorLevel, args...)
}

// Fatal logs a message at level Fatal on the standard logger then the process will exit with status set to 1.
func Fatal(args ...interface{}) {
	logs(zerolog.FatalLevel, args...)
	Exit(1)
}

// Exit flushes pending records and performs os.Exit
func Exit(rc int) {
	closeWriters()
	os.Exit(rc)
}
