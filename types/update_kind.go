package types

import pb "github.com/bloXroute-Labs/geyser-client/protobuf"

// UpdateKind names the variant of a stream update
type UpdateKind string

// UpdateKind enumeration
const (
	AccountKind           UpdateKind = "account"
	SlotKind              UpdateKind = "slot"
	TransactionKind       UpdateKind = "transaction"
	TransactionStatusKind UpdateKind = "transactionStatus"
	EntryKind             UpdateKind = "entry"
	BlockMetaKind         UpdateKind = "blockmeta"
	BlockKind             UpdateKind = "block"
	PingKind              UpdateKind = "ping"
	PongKind              UpdateKind = "pong"
	UnknownKind           UpdateKind = "unknown"
)

// DataKinds lists the non-control kinds in display order
var DataKinds = []UpdateKind{
	AccountKind,
	SlotKind,
	TransactionKind,
	TransactionStatusKind,
	EntryKind,
	BlockMetaKind,
	BlockKind,
}

// KindOf returns the kind of an update variant, UnknownKind for nil
func KindOf(u pb.UpdateOneof) UpdateKind {
	switch u.(type) {
	case *pb.SubscribeUpdateAccount:
		return AccountKind
	case *pb.SubscribeUpdateSlot:
		return SlotKind
	case *pb.SubscribeUpdateTransaction:
		return TransactionKind
	case *pb.SubscribeUpdateTransactionStatus:
		return TransactionStatusKind
	case *pb.SubscribeUpdateEntry:
		return EntryKind
	case *pb.SubscribeUpdateBlockMeta:
		return BlockMetaKind
	case *pb.SubscribeUpdateBlock:
		return BlockKind
	case *pb.SubscribeUpdatePing:
		return PingKind
	case *pb.SubscribeUpdatePong:
		return PongKind
	}
	return UnknownKind
}

// IsControl reports whether the kind is a keepalive message
func (k UpdateKind) IsControl() bool {
	return k == PingKind || k == PongKind
}
