package protobuf

import (
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// SubscribeUpdate is one message of the subscription stream
type SubscribeUpdate struct {
	Filters   []string
	CreatedAt *timestamppb.Timestamp
	// UpdateOneof is nil when the message carries no recognized variant
	UpdateOneof UpdateOneof

	wire []byte
}

// WireBytes returns the bytes m was decoded from, nil for locally built updates
func (m *SubscribeUpdate) WireBytes() []byte {
	return m.wire
}

// UpdateOneof is one of the update variants a SubscribeUpdate can carry
type UpdateOneof interface {
	updateField() protowire.Number
	Message
}

// variant field numbers of SubscribeUpdate
const (
	fieldAccount           protowire.Number = 2
	fieldSlot              protowire.Number = 3
	fieldTransaction       protowire.Number = 4
	fieldBlock             protowire.Number = 5
	fieldPing              protowire.Number = 6
	fieldBlockMeta         protowire.Number = 7
	fieldEntry             protowire.Number = 8
	fieldPong              protowire.Number = 9
	fieldTransactionStatus protowire.Number = 10
	fieldCreatedAt         protowire.Number = 11
)

// SubscribeUpdateAccount reports an account write
type SubscribeUpdateAccount struct {
	Account   *SubscribeUpdateAccountInfo
	Slot      uint64
	IsStartup bool
}

// SubscribeUpdateAccountInfo is the account state after a write.
// TxnSignature is nil when the write was not caused by a transaction.
type SubscribeUpdateAccountInfo struct {
	Pubkey       []byte
	Lamports     uint64
	Owner        []byte
	Executable   bool
	RentEpoch    uint64
	Data         []byte
	WriteVersion uint64
	TxnSignature []byte
}

// SubscribeUpdateSlot reports a slot status change
type SubscribeUpdateSlot struct {
	Slot      uint64
	Parent    *uint64
	Status    SlotStatus
	DeadError *string
}

// SubscribeUpdateTransaction reports a transaction
type SubscribeUpdateTransaction struct {
	Transaction *SubscribeUpdateTransactionInfo
	Slot        uint64
}

// SubscribeUpdateTransactionInfo carries the transaction and its status meta as opaque
// encoded messages; nil means absent
type SubscribeUpdateTransactionInfo struct {
	Signature   []byte
	IsVote      bool
	Transaction []byte
	Meta        []byte
	Index       uint64
}

// SubscribeUpdateTransactionStatus reports the outcome of a transaction
type SubscribeUpdateTransactionStatus struct {
	Slot      uint64
	Signature []byte
	IsVote    bool
	Index     uint64
	Err       *TransactionError
}

// TransactionError is the serialized transaction error
type TransactionError struct {
	Err []byte
}

// SubscribeUpdateBlock reports a full block
type SubscribeUpdateBlock struct {
	Slot                     uint64
	Blockhash                string
	Rewards                  *Rewards
	BlockTime                *UnixTimestamp
	BlockHeight              *BlockHeight
	ParentSlot               uint64
	ParentBlockhash          string
	ExecutedTransactionCount uint64
	Transactions             []*SubscribeUpdateTransactionInfo
	UpdatedAccountCount      uint64
	Accounts                 []*SubscribeUpdateAccountInfo
	EntriesCount             uint64
	Entries                  []*SubscribeUpdateEntry
}

// SubscribeUpdateBlockMeta reports block metadata without its contents
type SubscribeUpdateBlockMeta struct {
	Slot                     uint64
	Blockhash                string
	Rewards                  *Rewards
	BlockTime                *UnixTimestamp
	BlockHeight              *BlockHeight
	ParentSlot               uint64
	ParentBlockhash          string
	ExecutedTransactionCount uint64
	EntriesCount             uint64
}

// SubscribeUpdateEntry reports a PoH entry
type SubscribeUpdateEntry struct {
	Slot                     uint64
	Index                    uint64
	NumHashes                uint64
	Hash                     []byte
	ExecutedTransactionCount uint64
	StartingTransactionIndex uint64
}

// SubscribeUpdatePing is a server keepalive which must be answered
type SubscribeUpdatePing struct{}

// SubscribeUpdatePong answers a client ping
type SubscribeUpdatePong struct {
	Id int32
}

// Rewards lists the rewards of a block
type Rewards struct {
	Rewards       []*Reward
	NumPartitions *NumPartitions
}

// Reward is a single block reward
type Reward struct {
	Pubkey      string
	Lamports    int64
	PostBalance uint64
	RewardType  RewardType
	Commission  string
}

// NumPartitions is the number of reward partitions of an epoch
type NumPartitions struct {
	NumPartitions uint64
}

// UnixTimestamp is a block time in seconds
type UnixTimestamp struct {
	Timestamp int64
}

// BlockHeight is the height of a block
type BlockHeight struct {
	BlockHeight uint64
}

func (*SubscribeUpdateAccount) updateField() protowire.Number     { return fieldAccount }
func (*SubscribeUpdateSlot) updateField() protowire.Number        { return fieldSlot }
func (*SubscribeUpdateTransaction) updateField() protowire.Number { return fieldTransaction }
func (*SubscribeUpdateTransactionStatus) updateField() protowire.Number {
	return fieldTransactionStatus
}
func (*SubscribeUpdateBlock) updateField() protowire.Number     { return fieldBlock }
func (*SubscribeUpdatePing) updateField() protowire.Number      { return fieldPing }
func (*SubscribeUpdatePong) updateField() protowire.Number      { return fieldPong }
func (*SubscribeUpdateBlockMeta) updateField() protowire.Number { return fieldBlockMeta }
func (*SubscribeUpdateEntry) updateField() protowire.Number     { return fieldEntry }

// UpdateFieldNumber returns the SubscribeUpdate field number a variant is written under
func UpdateFieldNumber(u UpdateOneof) protowire.Number {
	return u.updateField()
}
