package metrics

// Tags attached to client metrics
const (
	UpdateKind  = "geyser.update.kind"
	ErrorType   = "geyser.error.type"
	VerifyCheck = "geyser.verify.check"
	RPCMethod   = "geyser.rpc.method"
	Service     = "service"

	Status = "status"
	Ok     = "ok"
	Error  = "error"
)

const (
	// ServiceName is the current service name
	ServiceName = "geyser-client"
)
