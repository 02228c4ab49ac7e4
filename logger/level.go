package logger

import "github.com/rs/zerolog"

const (
	// PanicLevel level, highest level of severity. Logs and then calls panic with the
	// message passed to Debug, Info, ...
	PanicLevel Level = iota
	// FatalLevel level. Logs and then calls `logger.Exit(1)`. It will exit even if the
	// logging level is set to Panic.
	FatalLevel
	// ErrorLevel level. Logs. Used for errors that should definitely be noted.
	ErrorLevel
	// WarnLevel level. Non-critical entries that deserve eyes.
	WarnLevel
	// InfoLevel level. General operational entries about what's going on inside the
	// application.
	InfoLevel
	// DebugLevel level. Usually only enabled when debugging. Very verbose logging.
	DebugLevel
	// TraceLevel level. Designates finer-grained informational events than the Debug.
	TraceLevel
)

// Level type
type Level uint32

// String returns the lower case name of the level
func (l Level) String() string {
	return toZeroLogLevel(l).String()
}

// ParseLevel takes a string level and returns the log level constant.
func ParseLevel(lvl string) (Level, error) {
	level, err := zerolog.ParseLevel(lvl)
	if err != nil {
		return PanicLevel, err
	}
	return fromZeroLogLevel(level), nil
}

// GetLevel returns the global logger level.
func GetLevel() Level {
	return fromZeroLogLevel(zerolog.GlobalLevel())
}

// SetLevel sets the global logger level.
func SetLevel(level Level) {
	zerolog.SetGlobalLevel(toZeroLogLevel(level))
}

// IsLevelEnabled checks if the global logger emits entries of the given level
func IsLevelEnabled(level Level) bool {
	return toZeroLogLevel(level) >= zerolog.GlobalLevel()
}

func toZeroLogLevel(level Level) zerolog.Level {
	switch level {
	case PanicLevel:
		return zerolog.PanicLevel
	case FatalLevel:
		return zerolog.FatalLevel
	case ErrorLevel:
		return zerolog.ErrorLevel
	case WarnLevel:
		return zerolog.WarnLevel
	case InfoLevel:
		return zerolog.InfoLevel
	case DebugLevel:
		return zerolog.DebugLevel
	case TraceLevel:
		return zerolog.TraceLevel
	default:
		return zerolog.NoLevel
	}
}

func fromZeroLogLevel(level zerolog.Level) Level {
	switch level {
	case zerolog.PanicLevel:
		return PanicLevel
	case zerolog.FatalLevel:
		return FatalLevel
	case zerolog.ErrorLevel:
		return ErrorLevel
	case zerolog.WarnLevel:
		return WarnLevel
	case zerolog.InfoLevel:
		return InfoLevel
	case zerolog.DebugLevel:
		return DebugLevel
	case zerolog.TraceLevel:
		return TraceLevel
	default:
		return PanicLevel
	}
}
