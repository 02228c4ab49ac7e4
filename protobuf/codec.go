package protobuf

import (
	"fmt"

	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/proto"
)

// CodecName is reported as the content subtype; servers expect "proto"
const CodecName = "proto"

// Codec is a gRPC codec for the Geyser message types of this package.
// Generated protobuf messages, such as the health service ones, are passed to the proto runtime.
type Codec struct{}

var _ encoding.Codec = Codec{}

// Marshal encodes v
func (Codec) Marshal(v any) ([]byte, error) {
	switch m := v.(type) {
	case Message:
		return Marshal(m), nil
	case proto.Message:
		return proto.Marshal(m)
	}
	return nil, fmt.Errorf("failed to marshal, message is %T, want protobuf.Message", v)
}

// Unmarshal decodes data into v
func (Codec) Unmarshal(data []byte, v any) error {
	switch m := v.(type) {
	case Message:
		return m.Unmarshal(data)
	case proto.Message:
		return proto.Unmarshal(data, m)
	}
	return fmt.Errorf("failed to unmarshal, message is %T, want protobuf.Message", v)
}

// Name returns the codec content subtype
func (Codec) Name() string {
	return CodecName
}
