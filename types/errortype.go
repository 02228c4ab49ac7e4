package types

// ErrorType classifies a failure for the reconnect policy
type ErrorType uint16

// flag constant values
const (
	// ErrorTypeTransport is a failure of the connection or stream, retried after backoff
	ErrorTypeTransport ErrorType = iota
	// ErrorTypeProtocol is a message violating the expected shape, the session ends and is retried
	ErrorTypeProtocol
	// ErrorTypeValidation is a bad user input, never retried
	ErrorTypeValidation
)

func (t ErrorType) String() string {
	switch t {
	case ErrorTypeTransport:
		return "transport"
	case ErrorTypeProtocol:
		return "protocol"
	case ErrorTypeValidation:
		return "validation"
	}
	return "unknown"
}

// Permanent reports whether errors of this type must not be retried
func (t ErrorType) Permanent() bool {
	return t == ErrorTypeValidation
}
