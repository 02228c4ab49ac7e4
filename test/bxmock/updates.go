package bxmock

import (
	"crypto/rand"
	"time"

	pb "github.com/bloXroute-Labs/geyser-client/protobuf"
	"github.com/bloXroute-Labs/geyser-client/utils/ptr"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// CreatedAt is the creation time stamped on generated updates
var CreatedAt = time.Unix(1700000000, 123456000).UTC()

// GenerateBytes returns n random bytes, use 32 for a pubkey or hash and 64 for a signature
func GenerateBytes(n int) []byte {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return b
}

func newUpdate(variant pb.UpdateOneof) *pb.SubscribeUpdate {
	return &pb.SubscribeUpdate{
		Filters:     []string{"client"},
		CreatedAt:   timestamppb.New(CreatedAt),
		UpdateOneof: variant,
	}
}

// NewAccountInfo generates an account with random keys and data
func NewAccountInfo() *pb.SubscribeUpdateAccountInfo {
	return &pb.SubscribeUpdateAccountInfo{
		Pubkey:       GenerateBytes(32),
		Lamports:     2039280,
		Owner:        GenerateBytes(32),
		RentEpoch:    18446744073709551615,
		Data:         GenerateBytes(165),
		WriteVersion: 1337,
		TxnSignature: GenerateBytes(64),
	}
}

// NewAccountUpdate generates an account update at slot
func NewAccountUpdate(slot uint64) *pb.SubscribeUpdate {
	return newUpdate(&pb.SubscribeUpdateAccount{Account: NewAccountInfo(), Slot: slot})
}

// NewSlotUpdate generates a slot update whose parent is slot-1
func NewSlotUpdate(slot uint64, status pb.SlotStatus) *pb.SubscribeUpdate {
	return newUpdate(&pb.SubscribeUpdateSlot{Slot: slot, Parent: ptr.New(slot - 1), Status: status})
}

// NewTransactionInfo generates a transaction with opaque payloads
func NewTransactionInfo(index uint64) *pb.SubscribeUpdateTransactionInfo {
	return &pb.SubscribeUpdateTransactionInfo{
		Signature:   GenerateBytes(64),
		Transaction: GenerateBytes(220),
		Meta:        GenerateBytes(90),
		Index:       index,
	}
}

// NewTransactionUpdate generates a transaction update at slot
func NewTransactionUpdate(slot uint64) *pb.SubscribeUpdate {
	return newUpdate(&pb.SubscribeUpdateTransaction{Transaction: NewTransactionInfo(7), Slot: slot})
}

// NewTransactionStatusUpdate generates a failed transaction status update at slot
func NewTransactionStatusUpdate(slot uint64) *pb.SubscribeUpdate {
	return newUpdate(&pb.SubscribeUpdateTransactionStatus{
		Slot:      slot,
		Signature: GenerateBytes(64),
		Index:     3,
		Err:       &pb.TransactionError{Err: []byte{8, 0, 0, 0}},
	})
}

// NewEntry generates an entry of slot
func NewEntry(slot, index uint64) *pb.SubscribeUpdateEntry {
	return &pb.SubscribeUpdateEntry{
		Slot:                     slot,
		Index:                    index,
		NumHashes:                12500,
		Hash:                     GenerateBytes(32),
		ExecutedTransactionCount: 2,
		StartingTransactionIndex: index * 2,
	}
}

// NewEntryUpdate generates an entry update at slot
func NewEntryUpdate(slot uint64) *pb.SubscribeUpdate {
	return newUpdate(NewEntry(slot, 0))
}

func newRewards() *pb.Rewards {
	return &pb.Rewards{
		Rewards: []*pb.Reward{
			{Pubkey: "Vote111111111111111111111111111111111111111", Lamports: 5000, PostBalance: 1000005000, RewardType: pb.RewardTypeFee},
			{Pubkey: "Stake11111111111111111111111111111111111111", Lamports: -20, PostBalance: 99980, RewardType: pb.RewardTypeRent, Commission: "10"},
		},
		NumPartitions: &pb.NumPartitions{NumPartitions: 4},
	}
}

// NewBlockMetaUpdate generates a block meta update at slot
func NewBlockMetaUpdate(slot uint64) *pb.SubscribeUpdate {
	return newUpdate(&pb.SubscribeUpdateBlockMeta{
		Slot:                     slot,
		Blockhash:                "5Tq1Ltvfz2KDwLL8RvLv1BBX6Nn3hA5nTtXP5khm3NDT",
		Rewards:                  newRewards(),
		BlockTime:                &pb.UnixTimestamp{Timestamp: CreatedAt.Unix()},
		BlockHeight:              &pb.BlockHeight{BlockHeight: slot - 100},
		ParentSlot:               slot - 1,
		ParentBlockhash:          "9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin",
		ExecutedTransactionCount: 2,
		EntriesCount:             1,
	})
}

// NewBlockUpdate generates a block update at slot with one transaction, account and entry
func NewBlockUpdate(slot uint64) *pb.SubscribeUpdate {
	return newUpdate(&pb.SubscribeUpdateBlock{
		Slot:                     slot,
		Blockhash:                "5Tq1Ltvfz2KDwLL8RvLv1BBX6Nn3hA5nTtXP5khm3NDT",
		Rewards:                  newRewards(),
		BlockTime:                &pb.UnixTimestamp{Timestamp: CreatedAt.Unix()},
		BlockHeight:              &pb.BlockHeight{BlockHeight: slot - 100},
		ParentSlot:               slot - 1,
		ParentBlockhash:          "9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin",
		ExecutedTransactionCount: 1,
		Transactions:             []*pb.SubscribeUpdateTransactionInfo{NewTransactionInfo(0)},
		UpdatedAccountCount:      1,
		Accounts:                 []*pb.SubscribeUpdateAccountInfo{NewAccountInfo()},
		EntriesCount:             1,
		Entries:                  []*pb.SubscribeUpdateEntry{NewEntry(slot, 0)},
	})
}

// NewPingUpdate generates a server ping
func NewPingUpdate() *pb.SubscribeUpdate {
	return newUpdate(&pb.SubscribeUpdatePing{})
}

// NewPongUpdate generates a pong answering ping id
func NewPongUpdate(id int32) *pb.SubscribeUpdate {
	return newUpdate(&pb.SubscribeUpdatePong{Id: id})
}

// Decoded marshals u and decodes it again so the result carries wire bytes like a received update
func Decoded(u *pb.SubscribeUpdate) *pb.SubscribeUpdate {
	decoded := &pb.SubscribeUpdate{}
	if err := decoded.Unmarshal(pb.Marshal(u)); err != nil {
		panic(err)
	}
	return decoded
}
