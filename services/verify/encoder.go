package verify

import pb "github.com/bloXroute-Labs/geyser-client/protobuf"

// Encoder serializes an update to its wire form
type Encoder interface {
	Name() string
	Encode(u *pb.SubscribeUpdate) []byte
}

// PrimaryEncoder is the size-first encoder used on the wire
type PrimaryEncoder struct{}

// Name returns the encoder name
func (PrimaryEncoder) Name() string { return "primary" }

// Encode sizes u once and writes it into a single buffer
func (PrimaryEncoder) Encode(u *pb.SubscribeUpdate) []byte {
	return pb.Marshal(u)
}
