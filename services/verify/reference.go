package verify

import (
	pb "github.com/bloXroute-Labs/geyser-client/protobuf"
	"google.golang.org/protobuf/encoding/protowire"
)

// ReferenceEncoder writes every nested message into its own buffer and prefixes it with
// the resulting length. It shares no code with the primary encoder.
type ReferenceEncoder struct{}

// Name returns the encoder name
func (ReferenceEncoder) Name() string { return "reference" }

// Encode serializes u
func (ReferenceEncoder) Encode(u *pb.SubscribeUpdate) []byte {
	w := &writer{}
	for _, f := range u.Filters {
		w.str(1, f, true)
	}
	if u.CreatedAt != nil {
		w.message(11, func(w *writer) {
			w.uint(1, uint64(u.CreatedAt.GetSeconds()))
			w.uint(2, uint64(int64(u.CreatedAt.GetNanos())))
		})
	}

	switch msg := u.UpdateOneof.(type) {
	case *pb.SubscribeUpdateAccount:
		w.message(2, func(w *writer) {
			if msg.Account != nil {
				w.message(1, func(w *writer) { writeAccountInfo(w, msg.Account) })
			}
			w.uint(2, msg.Slot)
			w.bool(3, msg.IsStartup)
		})
	case *pb.SubscribeUpdateSlot:
		w.message(3, func(w *writer) {
			w.uint(1, msg.Slot)
			if msg.Parent != nil {
				w.uintAlways(2, *msg.Parent)
			}
			w.uint(3, uint64(int64(msg.Status)))
			if msg.DeadError != nil {
				w.str(4, *msg.DeadError, true)
			}
		})
	case *pb.SubscribeUpdateTransaction:
		w.message(4, func(w *writer) {
			if msg.Transaction != nil {
				w.message(1, func(w *writer) { writeTransactionInfo(w, msg.Transaction) })
			}
			w.uint(2, msg.Slot)
		})
	case *pb.SubscribeUpdateBlock:
		w.message(5, func(w *writer) { writeBlock(w, msg) })
	case *pb.SubscribeUpdatePing:
		w.message(6, func(*writer) {})
	case *pb.SubscribeUpdateBlockMeta:
		w.message(7, func(w *writer) { writeBlockMeta(w, msg) })
	case *pb.SubscribeUpdateEntry:
		w.message(8, func(w *writer) { writeEntry(w, msg) })
	case *pb.SubscribeUpdatePong:
		w.message(9, func(w *writer) { w.uint(1, uint64(int64(msg.Id))) })
	case *pb.SubscribeUpdateTransactionStatus:
		w.message(10, func(w *writer) {
			w.uint(1, msg.Slot)
			w.bytes(2, msg.Signature, false)
			w.bool(3, msg.IsVote)
			w.uint(4, msg.Index)
			if msg.Err != nil {
				w.message(5, func(w *writer) { w.bytes(1, msg.Err.Err, false) })
			}
		})
	}
	return w.buf
}

func writeAccountInfo(w *writer, a *pb.SubscribeUpdateAccountInfo) {
	w.bytes(1, a.Pubkey, false)
	w.uint(2, a.Lamports)
	w.bytes(3, a.Owner, false)
	w.bool(4, a.Executable)
	w.uint(5, a.RentEpoch)
	w.bytes(6, a.Data, false)
	w.uint(7, a.WriteVersion)
	if a.TxnSignature != nil {
		w.bytes(8, a.TxnSignature, true)
	}
}

func writeTransactionInfo(w *writer, tx *pb.SubscribeUpdateTransactionInfo) {
	w.bytes(1, tx.Signature, false)
	w.bool(2, tx.IsVote)
	if tx.Transaction != nil {
		w.bytes(3, tx.Transaction, true)
	}
	if tx.Meta != nil {
		w.bytes(4, tx.Meta, true)
	}
	w.uint(5, tx.Index)
}

func writeEntry(w *writer, e *pb.SubscribeUpdateEntry) {
	w.uint(1, e.Slot)
	w.uint(2, e.Index)
	w.uint(3, e.NumHashes)
	w.bytes(4, e.Hash, false)
	w.uint(5, e.ExecutedTransactionCount)
	w.uint(6, e.StartingTransactionIndex)
}

func writeRewards(w *writer, rewards *pb.Rewards) {
	for _, r := range rewards.Rewards {
		w.message(1, func(w *writer) {
			w.str(1, r.Pubkey, false)
			w.uint(2, uint64(r.Lamports))
			w.uint(3, r.PostBalance)
			w.uint(4, uint64(int64(r.RewardType)))
			w.str(5, r.Commission, false)
		})
	}
	if rewards.NumPartitions != nil {
		w.message(2, func(w *writer) { w.uint(1, rewards.NumPartitions.NumPartitions) })
	}
}

func writeBlockHeader(w *writer, slot uint64, blockhash string, rewards *pb.Rewards, blockTime *pb.UnixTimestamp, blockHeight *pb.BlockHeight) {
	w.uint(1, slot)
	w.str(2, blockhash, false)
	if rewards != nil {
		w.message(3, func(w *writer) { writeRewards(w, rewards) })
	}
	if blockTime != nil {
		w.message(4, func(w *writer) { w.uint(1, uint64(blockTime.Timestamp)) })
	}
	if blockHeight != nil {
		w.message(5, func(w *writer) { w.uint(1, blockHeight.BlockHeight) })
	}
}

func writeBlock(w *writer, b *pb.SubscribeUpdateBlock) {
	writeBlockHeader(w, b.Slot, b.Blockhash, b.Rewards, b.BlockTime, b.BlockHeight)
	w.uint(7, b.ParentSlot)
	w.str(8, b.ParentBlockhash, false)
	w.uint(9, b.ExecutedTransactionCount)
	for _, tx := range b.Transactions {
		w.message(6, func(w *writer) { writeTransactionInfo(w, tx) })
	}
	w.uint(10, b.UpdatedAccountCount)
	for _, a := range b.Accounts {
		w.message(11, func(w *writer) { writeAccountInfo(w, a) })
	}
	w.uint(12, b.EntriesCount)
	for _, e := range b.Entries {
		w.message(13, func(w *writer) { writeEntry(w, e) })
	}
}

func writeBlockMeta(w *writer, b *pb.SubscribeUpdateBlockMeta) {
	writeBlockHeader(w, b.Slot, b.Blockhash, b.Rewards, b.BlockTime, b.BlockHeight)
	w.uint(6, b.ParentSlot)
	w.str(7, b.ParentBlockhash, false)
	w.uint(8, b.ExecutedTransactionCount)
	w.uint(9, b.EntriesCount)
}

// writer accumulates one message; scalars equal to their zero value are skipped
// unless the field tracks presence
type writer struct {
	buf []byte
}

func (w *writer) uint(num protowire.Number, v uint64) {
	if v != 0 {
		w.uintAlways(num, v)
	}
}

func (w *writer) uintAlways(num protowire.Number, v uint64) {
	w.buf = protowire.AppendTag(w.buf, num, protowire.VarintType)
	w.buf = protowire.AppendVarint(w.buf, v)
}

func (w *writer) bool(num protowire.Number, v bool) {
	if v {
		w.uintAlways(num, 1)
	}
}

func (w *writer) bytes(num protowire.Number, v []byte, present bool) {
	if len(v) == 0 && !present {
		return
	}
	w.buf = protowire.AppendTag(w.buf, num, protowire.BytesType)
	w.buf = protowire.AppendBytes(w.buf, v)
}

func (w *writer) str(num protowire.Number, v string, present bool) {
	if v == "" && !present {
		return
	}
	w.buf = protowire.AppendTag(w.buf, num, protowire.BytesType)
	w.buf = protowire.AppendString(w.buf, v)
}

func (w *writer) message(num protowire.Number, body func(w *writer)) {
	nested := &writer{}
	body(nested)
	w.buf = protowire.AppendTag(w.buf, num, protowire.BytesType)
	w.buf = protowire.AppendBytes(w.buf, nested.buf)
}
