package dispatch

import (
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	pb "github.com/bloXroute-Labs/geyser-client/protobuf"
	"github.com/bloXroute-Labs/geyser-client/types"
	"github.com/mr-tron/base58"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

const (
	pubkeyLen    = 32
	signatureLen = 64
	hashLen      = 32
)

// Fields keeps the rendered values of an update in display order
type Fields = orderedmap.OrderedMap[string, any]

// Record is the human readable form of a data update
type Record struct {
	Kind      types.UpdateKind
	CreatedAt time.Time
	Filters   []string
	Fields    *Fields
}

// Dispatch renders a data update. Keepalive messages and updates without a variant are
// not records and return an error.
func Dispatch(u *pb.SubscribeUpdate) (*Record, error) {
	if u.CreatedAt == nil {
		return nil, protocolError(errors.New("no created_at in the message"))
	}
	if err := u.CreatedAt.CheckValid(); err != nil {
		return nil, protocolError(fmt.Errorf("failed to parse created_at: %w", err))
	}

	record := &Record{
		Kind:      types.KindOf(u.UpdateOneof),
		CreatedAt: u.CreatedAt.AsTime(),
		Filters:   u.Filters,
	}

	var err error
	switch msg := u.UpdateOneof.(type) {
	case *pb.SubscribeUpdateAccount:
		record.Fields, err = accountFields(msg)
	case *pb.SubscribeUpdateSlot:
		record.Fields, err = slotFields(msg)
	case *pb.SubscribeUpdateTransaction:
		record.Fields, err = transactionFields(msg)
	case *pb.SubscribeUpdateTransactionStatus:
		record.Fields, err = transactionStatusFields(msg)
	case *pb.SubscribeUpdateEntry:
		record.Fields, err = entryFields(msg)
	case *pb.SubscribeUpdateBlockMeta:
		record.Fields = blockMetaFields(msg)
	case *pb.SubscribeUpdateBlock:
		record.Fields, err = blockFields(msg)
	case nil:
		err = errors.New("update not found in the message")
	default:
		err = fmt.Errorf("%v is not a data update", record.Kind)
	}
	if err != nil {
		return nil, protocolError(err)
	}
	return record, nil
}

func protocolError(err error) error {
	return types.NewProtocolError("dispatch", err)
}

func accountFields(msg *pb.SubscribeUpdateAccount) (*Fields, error) {
	if msg.Account == nil {
		return nil, errors.New("no account in the message")
	}
	fields, err := accountInfoFields(msg.Account)
	if err != nil {
		return nil, err
	}
	fields.Set("isStartup", msg.IsStartup)
	fields.Set("slot", msg.Slot)
	return fields, nil
}

func accountInfoFields(account *pb.SubscribeUpdateAccountInfo) (*Fields, error) {
	pubkey, err := encodeBase58(account.Pubkey, pubkeyLen, "account pubkey")
	if err != nil {
		return nil, err
	}
	owner, err := encodeBase58(account.Owner, pubkeyLen, "account owner")
	if err != nil {
		return nil, err
	}

	fields := orderedmap.New[string, any]()
	fields.Set("pubkey", pubkey)
	fields.Set("lamports", account.Lamports)
	fields.Set("owner", owner)
	fields.Set("executable", account.Executable)
	fields.Set("rentEpoch", account.RentEpoch)
	fields.Set("data", hex.EncodeToString(account.Data))
	fields.Set("writeVersion", account.WriteVersion)
	if account.TxnSignature != nil {
		fields.Set("txnSignature", base58.Encode(account.TxnSignature))
	} else {
		fields.Set("txnSignature", nil)
	}
	return fields, nil
}

func slotFields(msg *pb.SubscribeUpdateSlot) (*Fields, error) {
	if !msg.Status.Valid() {
		return nil, fmt.Errorf("failed to decode slot status %d", int32(msg.Status))
	}

	fields := orderedmap.New[string, any]()
	fields.Set("slot", msg.Slot)
	fields.Set("parent", optional(msg.Parent))
	fields.Set("status", msg.Status.String())
	fields.Set("deadError", optional(msg.DeadError))
	return fields, nil
}

func transactionFields(msg *pb.SubscribeUpdateTransaction) (*Fields, error) {
	if msg.Transaction == nil {
		return nil, errors.New("no transaction in the message")
	}
	fields, err := transactionInfoFields(msg.Transaction)
	if err != nil {
		return nil, err
	}
	fields.Set("slot", msg.Slot)
	return fields, nil
}

func transactionInfoFields(tx *pb.SubscribeUpdateTransactionInfo) (*Fields, error) {
	signature, err := encodeBase58(tx.Signature, signatureLen, "signature")
	if err != nil {
		return nil, err
	}

	fields := orderedmap.New[string, any]()
	fields.Set("signature", signature)
	fields.Set("isVote", tx.IsVote)
	fields.Set("index", tx.Index)
	fields.Set("transaction", optionalHex(tx.Transaction))
	fields.Set("meta", optionalHex(tx.Meta))
	return fields, nil
}

func transactionStatusFields(msg *pb.SubscribeUpdateTransactionStatus) (*Fields, error) {
	signature, err := encodeBase58(msg.Signature, signatureLen, "signature")
	if err != nil {
		return nil, err
	}

	fields := orderedmap.New[string, any]()
	fields.Set("slot", msg.Slot)
	fields.Set("signature", signature)
	fields.Set("isVote", msg.IsVote)
	fields.Set("index", msg.Index)
	if msg.Err != nil {
		fields.Set("err", hex.EncodeToString(msg.Err.Err))
	} else {
		fields.Set("err", nil)
	}
	return fields, nil
}

func entryFields(msg *pb.SubscribeUpdateEntry) (*Fields, error) {
	hash, err := encodeBase58(msg.Hash, hashLen, "entry hash")
	if err != nil {
		return nil, err
	}

	fields := orderedmap.New[string, any]()
	fields.Set("slot", msg.Slot)
	fields.Set("index", msg.Index)
	fields.Set("numHashes", msg.NumHashes)
	fields.Set("hash", hash)
	fields.Set("executedTransactionCount", msg.ExecutedTransactionCount)
	fields.Set("startingTransactionIndex", msg.StartingTransactionIndex)
	return fields, nil
}

func blockMetaFields(msg *pb.SubscribeUpdateBlockMeta) *Fields {
	fields := orderedmap.New[string, any]()
	fields.Set("slot", msg.Slot)
	fields.Set("blockhash", msg.Blockhash)
	fields.Set("rewards", rewardsValue(msg.Rewards))
	fields.Set("blockTime", blockTimeValue(msg.BlockTime))
	fields.Set("blockHeight", blockHeightValue(msg.BlockHeight))
	fields.Set("parentSlot", msg.ParentSlot)
	fields.Set("parentBlockhash", msg.ParentBlockhash)
	fields.Set("executedTransactionCount", msg.ExecutedTransactionCount)
	fields.Set("entriesCount", msg.EntriesCount)
	return fields
}

func blockFields(msg *pb.SubscribeUpdateBlock) (*Fields, error) {
	transactions := make([]*Fields, 0, len(msg.Transactions))
	for _, tx := range msg.Transactions {
		fields, err := transactionInfoFields(tx)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, fields)
	}

	accounts := make([]*Fields, 0, len(msg.Accounts))
	for _, account := range msg.Accounts {
		fields, err := accountInfoFields(account)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, fields)
	}

	entries := make([]*Fields, 0, len(msg.Entries))
	for _, entry := range msg.Entries {
		fields, err := entryFields(entry)
		if err != nil {
			return nil, err
		}
		entries = append(entries, fields)
	}

	fields := orderedmap.New[string, any]()
	fields.Set("slot", msg.Slot)
	fields.Set("blockhash", msg.Blockhash)
	fields.Set("rewards", rewardsValue(msg.Rewards))
	fields.Set("blockTime", blockTimeValue(msg.BlockTime))
	fields.Set("blockHeight", blockHeightValue(msg.BlockHeight))
	fields.Set("parentSlot", msg.ParentSlot)
	fields.Set("parentBlockhash", msg.ParentBlockhash)
	fields.Set("executedTransactionCount", msg.ExecutedTransactionCount)
	fields.Set("transactions", transactions)
	fields.Set("updatedAccountCount", msg.UpdatedAccountCount)
	fields.Set("accounts", accounts)
	fields.Set("entriesCount", msg.EntriesCount)
	fields.Set("entries", entries)
	return fields, nil
}

func rewardsValue(rewards *pb.Rewards) any {
	if rewards == nil {
		return nil
	}

	list := make([]*Fields, 0, len(rewards.Rewards))
	for _, reward := range rewards.Rewards {
		fields := orderedmap.New[string, any]()
		fields.Set("pubkey", reward.Pubkey)
		fields.Set("lamports", reward.Lamports)
		fields.Set("postBalance", reward.PostBalance)
		if reward.RewardType == pb.RewardTypeUnspecified {
			fields.Set("rewardType", nil)
		} else {
			fields.Set("rewardType", reward.RewardType.String())
		}
		if reward.Commission == "" {
			fields.Set("commission", nil)
		} else {
			fields.Set("commission", reward.Commission)
		}
		list = append(list, fields)
	}

	fields := orderedmap.New[string, any]()
	fields.Set("rewards", list)
	if rewards.NumPartitions != nil {
		fields.Set("numPartitions", rewards.NumPartitions.NumPartitions)
	} else {
		fields.Set("numPartitions", nil)
	}
	return fields
}

func blockTimeValue(ts *pb.UnixTimestamp) any {
	if ts == nil {
		return nil
	}
	return ts.Timestamp
}

func blockHeightValue(h *pb.BlockHeight) any {
	if h == nil {
		return nil
	}
	return h.BlockHeight
}

func encodeBase58(b []byte, size int, name string) (string, error) {
	if len(b) != size {
		return "", fmt.Errorf("invalid %v: expected %d bytes, got %d", name, size, len(b))
	}
	return base58.Encode(b), nil
}

func optional[T any](v *T) any {
	if v == nil {
		return nil
	}
	return *v
}

func optionalHex(b []byte) any {
	if b == nil {
		return nil
	}
	return hex.EncodeToString(b)
}
