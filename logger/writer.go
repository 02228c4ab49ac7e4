package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/diode"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	backLog           = 100000
	fileFlushInterval = 100 * time.Millisecond
)

// levelWriter passes on records between minLevel and maxLevel that are at least systemLevel
type levelWriter struct {
	io.WriteCloser
	minLevel, maxLevel, systemLevel zerolog.Level
}

// WriteLevel writes p to the writer if the level is enabled
func (lw *levelWriter) WriteLevel(l zerolog.Level, p []byte) (n int, err error) {
	if l >= lw.minLevel && l <= lw.maxLevel && l >= lw.systemLevel {
		return lw.Write(p)
	}

	return len(p), nil
}

// stdoutWriter carries info and more verbose records. Stream output shares stdout so the
// writer is synchronous to keep log lines ordered with printed updates.
func stdoutWriter(level zerolog.Level) *levelWriter {
	return &levelWriter{
		WriteCloser: newWriter(os.Stdout, consoleLayout, colorEnabled(os.Stdout)),
		minLevel:    zerolog.TraceLevel,
		maxLevel:    zerolog.InfoLevel,
		systemLevel: level,
	}
}

// stderrWriter carries warnings and errors
func stderrWriter(level zerolog.Level) *levelWriter {
	return &levelWriter{
		WriteCloser: newWriter(os.Stderr, consoleLayout, colorEnabled(os.Stderr)),
		minLevel:    zerolog.WarnLevel,
		maxLevel:    zerolog.PanicLevel,
		systemLevel: level,
	}
}

// fileWriter writes every level to a rotating file through a non blocking diode
func fileWriter(cfg *Config, level zerolog.Level) *levelWriter {
	w := &lumberjack.Logger{
		Filename:   cfg.FileName,
		MaxSize:    cfg.MaxSize,
		MaxAge:     cfg.MaxAge,
		MaxBackups: cfg.MaxBackups,
	}

	return &levelWriter{
		WriteCloser: diode.NewWriter(newWriter(w, fileLayout, false), backLog, fileFlushInterval, logOverflowAlerter),
		minLevel:    zerolog.TraceLevel,
		maxLevel:    zerolog.PanicLevel,
		systemLevel: level,
	}
}

func newWriter(out io.Writer, l layout, color bool) zerolog.ConsoleWriter {
	return zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = out
		w.NoColor = !color
		w.TimeFormat = timestampFormat
		w.FormatTimestamp = formatTimestamp(l)
		w.FormatLevel = formatLevel(l, color)
		w.FormatMessage = formatMessage(l)
	})
}

func logOverflowAlerter(missed int) {
	_, _ = fmt.Fprintf(os.Stderr, "log file writer dropped %d messages\n", missed)
}
