package metrics

import (
	"os"

	log "github.com/bloXroute-Labs/geyser-client/logger"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"
)

// OperationQuery is the span operation of a one-shot unary query
const OperationQuery = "geyser.query"

// QueryResourceName generates a resource name used with OperationQuery
func QueryResourceName(method string) tracer.StartSpanOption {
	return tracer.ResourceName("Query: " + method)
}

// StartTracer starts the APM tracer when DD_AGENT_HOST is set and returns its stop func.
// Spans started without a running tracer are no-ops.
func StartTracer() (stop func()) {
	if os.Getenv("DD_AGENT_HOST") == "" {
		return func() {}
	}

	tracer.Start(tracer.WithService(ServiceName), tracer.WithLogStartup(false))
	log.Debug("APM tracer started")
	return tracer.Stop
}
