package metrics

// Exporter is an interface for sending metrics
type Exporter interface {
	IncrUpdate(kind string, size int)
	IncrReconnect(errorType string)
	IncrPongSent()
	IncrResubscribe()
	IncrVerifyMismatch(check string)
	IncrQuery(method string, success bool)
	Close() error
}

// NoOpExporter is a no-op implementation of the metrics Exporter interface
type NoOpExporter struct{}

// IncrUpdate does nothing
func (n *NoOpExporter) IncrUpdate(string, int) {}

// IncrReconnect does nothing
func (n *NoOpExporter) IncrReconnect(string) {}

// IncrPongSent does nothing
func (n *NoOpExporter) IncrPongSent() {}

// IncrResubscribe does nothing
func (n *NoOpExporter) IncrResubscribe() {}

// IncrVerifyMismatch does nothing
func (n *NoOpExporter) IncrVerifyMismatch(string) {}

// IncrQuery does nothing
func (n *NoOpExporter) IncrQuery(string, bool) {}

// Close does nothing
func (n *NoOpExporter) Close() error { return nil }
