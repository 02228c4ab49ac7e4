package logger

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

const timestampFormat = "2006-01-02T15:04:05.000000"

// layout selects how a writer lays out a record
type layout int

const (
	// consoleLayout is short, time of day and padded level, colored on terminals
	consoleLayout layout = iota
	// fileLayout is key="value" pairs with the full timestamp
	fileLayout
)

func formatTimestamp(l layout) zerolog.Formatter {
	return func(i interface{}) string {
		ts := fmt.Sprintf("%s", i)
		if l == consoleLayout {
			if _, timeOfDay, ok := strings.Cut(ts, "T"); ok {
				return timeOfDay
			}
			return ts
		}
		return fmt.Sprintf("time=\"%s\"", ts)
	}
}

func formatLevel(l layout, color bool) zerolog.Formatter {
	return func(i interface{}) string {
		ll, ok := i.(string)
		if !ok {
			return "???"
		}
		if l == fileLayout {
			return fmt.Sprintf("level=\"%s\"", ll)
		}

		label := fmt.Sprintf("%-5s", strings.ToUpper(ll))
		if !color {
			return label
		}
		level, err := zerolog.ParseLevel(ll)
		if err != nil {
			level = zerolog.NoLevel
		}
		return fmt.Sprintf("\x1b[%dm%s\x1b[0m", zerolog.LevelColors[level], label)
	}
}

func formatMessage(l layout) zerolog.Formatter {
	return func(i interface{}) string {
		if l == fileLayout {
			return fmt.Sprintf("msg=\"%s\"", i)
		}
		return fmt.Sprintf("%s", i)
	}
}

// colorEnabled reports whether f is a terminal and NO_COLOR is unset
func colorEnabled(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
