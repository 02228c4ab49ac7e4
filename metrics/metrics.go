package metrics

import (
	"fmt"
	"os"

	"github.com/DataDog/datadog-go/v5/statsd"
	log "github.com/bloXroute-Labs/geyser-client/logger"
)

const (
	sdUpdatesReceived  = "geyser.client.updates.received.count"
	sdBytesReceived    = "geyser.client.updates.bytes.count"
	sdReconnects       = "geyser.client.reconnects.count"
	sdPongsSent        = "geyser.client.pongs.sent.count"
	sdResubscribes     = "geyser.client.resubscribes.count"
	sdVerifyMismatches = "geyser.client.verify.mismatches.count"
	sdQueries          = "geyser.client.queries.count"
)

// RegisterStatsd creates a statsd exporter from DD_AGENT_HOST and DD_DOGSTATSD_PORT.
// It returns a no-op exporter when either is unset.
func RegisterStatsd() (Exporter, error) {
	host, port := os.Getenv("DD_AGENT_HOST"), os.Getenv("DD_DOGSTATSD_PORT")

	if host == "" || port == "" {
		log.Info("STATSD: DD_AGENT_HOST and DD_DOGSTATSD_PORT environment variables not set, ignoring metrics")
		return &NoOpExporter{}, nil
	}

	addr := fmt.Sprintf("%s:%s", host, port)
	sd, err := statsd.New(addr, statsd.WithTags([]string{tag(Service, ServiceName)}))
	if err != nil {
		return nil, fmt.Errorf("failed to create statsd client: %w", err)
	}

	return &StatsdExporter{client: sd}, nil
}

// StatsdExporter pushes client metrics to a DogStatsD agent
type StatsdExporter struct {
	client statsd.ClientInterface
}

// NewStatsdExporter wraps an existing statsd client
func NewStatsdExporter(client statsd.ClientInterface) *StatsdExporter {
	return &StatsdExporter{client: client}
}

// IncrUpdate counts a received update of kind and its encoded size
func (e *StatsdExporter) IncrUpdate(kind string, size int) {
	tags := []string{tag(UpdateKind, kind)}
	e.incr(sdUpdatesReceived, tags)
	if err := e.client.Count(sdBytesReceived, int64(size), tags, 1); err != nil {
		log.Errorf("Failed to update metric %s: %v", sdBytesReceived, err)
	}
}

// IncrReconnect counts a failed connection attempt
func (e *StatsdExporter) IncrReconnect(errorType string) {
	e.incr(sdReconnects, []string{tag(ErrorType, errorType)})
}

// IncrPongSent counts a ping-ack written to the stream
func (e *StatsdExporter) IncrPongSent() {
	e.incr(sdPongsSent, nil)
}

// IncrResubscribe counts a resubscribe request
func (e *StatsdExporter) IncrResubscribe() {
	e.incr(sdResubscribes, nil)
}

// IncrVerifyMismatch counts a divergence found by the encoding verifier
func (e *StatsdExporter) IncrVerifyMismatch(check string) {
	e.incr(sdVerifyMismatches, []string{tag(VerifyCheck, check)})
}

// IncrQuery counts a one-shot query and its outcome
func (e *StatsdExporter) IncrQuery(method string, success bool) {
	status := Error
	if success {
		status = Ok
	}
	e.incr(sdQueries, []string{tag(RPCMethod, method), tag(Status, status)})
}

// Close flushes and closes the statsd client
func (e *StatsdExporter) Close() error {
	return e.client.Close()
}

func (e *StatsdExporter) incr(name string, tags []string) {
	if err := e.client.Incr(name, tags, 1); err != nil {
		log.Errorf("Failed to update metric %s: %v", name, err)
	}
}

func tag(name string, val any) string {
	return fmt.Sprintf("%s:%v", name, val)
}
