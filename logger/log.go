package logger

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config represents logger options for where to write data and what data to write
type Config struct {
	AppName      string
	FileName     string
	FileLevel    Level
	ConsoleLevel Level
	MaxSize      int
	MaxBackups   int
	MaxAge       int
	// FluentDHost enables sending records at ConsoleLevel to fluentd when set
	FluentDHost string
}

// initConfigMutex guards the global zerolog logger while it is being replaced
var initConfigMutex sync.Mutex

var closeWriters = func() {}

// Init initialises the global logger and returns a function flushing and closing its writers.
// An empty FileName disables the file writer.
func Init(logConfig *Config, version string) (func(), error) {
	initConfigMutex.Lock()

	zerolog.TimeFieldFormat = timestampFormat

	consoleLevel := toZeroLogLevel(logConfig.ConsoleLevel)
	globalLevel := consoleLevel

	writers := []*levelWriter{stdoutWriter(consoleLevel), stderrWriter(consoleLevel)}
	if logConfig.FileName != "" {
		fileLevel := toZeroLogLevel(logConfig.FileLevel)
		writers = append(writers, fileWriter(logConfig, fileLevel))
		if fileLevel < globalLevel {
			globalLevel = fileLevel
		}
	}

	var fluentErr error
	if logConfig.FluentDHost != "" {
		var fw *levelWriter
		if fw, fluentErr = fluentDWriter(logConfig.FluentDHost, consoleLevel); fluentErr == nil {
			writers = append(writers, fw)
		}
	}

	outputs := make([]io.Writer, 0, len(writers))
	for _, w := range writers {
		outputs = append(outputs, w)
	}

	zerolog.SetGlobalLevel(globalLevel)
	log.Logger = zerolog.New(zerolog.MultiLevelWriter(outputs...)).With().Timestamp().Logger()

	var once sync.Once
	closeWriters = func() {
		once.Do(func() {
			for _, w := range writers {
				_ = w.Close()
			}
		})
	}
	closeFn := closeWriters

	initConfigMutex.Unlock()

	if fluentErr != nil {
		Warnf("failed to create fluentd writer: %v", fluentErr)
	} else if logConfig.FluentDHost != "" {
		Infof("sending logs to fluentd at %v:%v", logConfig.FluentDHost, fluentDPort)
	}
	Debugf("log initiated.")
	Infof("%v (%v) is starting with arguments %v", logConfig.AppName, version, strings.Join(os.Args[1:], " "))

	return closeFn, nil
}
