package logger

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/rs/zerolog"
)

const (
	fluentDTag  = "geyser.client.log"
	fluentDPort = 24224
)

type fluentPoster interface {
	Post(tag string, message interface{}) error
	Close() error
}

// fluentWriter forwards zerolog JSON records to a fluentd agent
type fluentWriter struct {
	poster   fluentPoster
	instance string
}

func (w *fluentWriter) Write(p []byte) (int, error) {
	var record map[string]interface{}
	if err := json.Unmarshal(p, &record); err != nil {
		// records that are not JSON never reach the agent
		return len(p), nil
	}

	if level, ok := record[zerolog.LevelFieldName].(string); ok {
		record["level"] = strings.ToUpper(level)
	}
	if msg, ok := record[zerolog.MessageFieldName]; ok {
		delete(record, zerolog.MessageFieldName)
		record["msg"] = msg
	}
	if ts, ok := record[zerolog.TimestampFieldName]; ok {
		delete(record, zerolog.TimestampFieldName)
		record["timestamp"] = ts
	}
	record["instance"] = w.instance

	if err := w.poster.Post(fluentDTag, record); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (w *fluentWriter) Close() error {
	return w.poster.Close()
}

// fluentDWriter connects asynchronously to fluentd on host and passes on records at least level
func fluentDWriter(host string, level zerolog.Level) (*levelWriter, error) {
	f, err := fluent.New(fluent.Config{
		FluentHost:    host,
		FluentPort:    fluentDPort,
		MarshalAsJSON: true,
		Async:         true,
	})
	if err != nil {
		return nil, err
	}

	instance, _ := os.Hostname()
	return &levelWriter{
		WriteCloser: &fluentWriter{poster: f, instance: instance},
		minLevel:    zerolog.TraceLevel,
		maxLevel:    zerolog.PanicLevel,
		systemLevel: level,
	}, nil
}
