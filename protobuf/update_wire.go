package protobuf

import (
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func sizeTimestamp(ts *timestamppb.Timestamp) int {
	return sizeVarint(1, uint64(ts.GetSeconds())) + sizeVarint(2, int32Wire(ts.GetNanos()))
}

func appendTimestamp(b []byte, ts *timestamppb.Timestamp) []byte {
	b = appendVarint(b, 1, uint64(ts.GetSeconds()))
	return appendVarint(b, 2, int32Wire(ts.GetNanos()))
}

func unmarshalTimestamp(fd field) (*timestamppb.Timestamp, error) {
	raw, err := fd.bytes()
	if err != nil {
		return nil, err
	}
	ts := &timestamppb.Timestamp{}
	err = decode("Timestamp", raw, func(e field) (err error) {
		switch e.num {
		case 1:
			ts.Seconds, err = e.int64()
		case 2:
			ts.Nanos, err = e.int32()
		}
		return
	})
	return ts, err
}

// Size returns the encoded length of m
func (m *SubscribeUpdate) Size() int {
	n := sizeStrings(1, m.Filters)
	if m.CreatedAt != nil {
		n += sizeEmbedded(fieldCreatedAt, sizeTimestamp(m.CreatedAt))
	}
	if m.UpdateOneof != nil {
		n += sizeEmbedded(m.UpdateOneof.updateField(), m.UpdateOneof.Size())
	}
	return n
}

// MarshalAppend appends the encoding of m to b
func (m *SubscribeUpdate) MarshalAppend(b []byte) []byte {
	b = appendStrings(b, 1, m.Filters)
	if m.CreatedAt != nil {
		b = protowire.AppendTag(b, fieldCreatedAt, protowire.BytesType)
		b = protowire.AppendVarint(b, uint64(sizeTimestamp(m.CreatedAt)))
		b = appendTimestamp(b, m.CreatedAt)
	}
	if m.UpdateOneof != nil {
		b = appendEmbedded(b, m.UpdateOneof.updateField(), m.UpdateOneof)
	}
	return b
}

// Unmarshal decodes b into m and keeps a copy of b
func (m *SubscribeUpdate) Unmarshal(b []byte) error {
	*m = SubscribeUpdate{wire: append(make([]byte, 0, len(b)), b...)}
	return decode("SubscribeUpdate", b, func(fd field) error {
		var variant UpdateOneof
		switch fd.num {
		case 1:
			v, err := fd.string()
			m.Filters = append(m.Filters, v)
			return err
		case fieldCreatedAt:
			ts, err := unmarshalTimestamp(fd)
			m.CreatedAt = ts
			return err
		case fieldAccount:
			variant = &SubscribeUpdateAccount{}
		case fieldSlot:
			variant = &SubscribeUpdateSlot{}
		case fieldTransaction:
			variant = &SubscribeUpdateTransaction{}
		case fieldTransactionStatus:
			variant = &SubscribeUpdateTransactionStatus{}
		case fieldBlock:
			variant = &SubscribeUpdateBlock{}
		case fieldPing:
			variant = &SubscribeUpdatePing{}
		case fieldPong:
			variant = &SubscribeUpdatePong{}
		case fieldBlockMeta:
			variant = &SubscribeUpdateBlockMeta{}
		case fieldEntry:
			variant = &SubscribeUpdateEntry{}
		default:
			return nil
		}
		if err := fd.message(variant); err != nil {
			return err
		}
		m.UpdateOneof = variant
		return nil
	})
}

// Size returns the encoded length of m
func (m *SubscribeUpdateAccount) Size() int {
	n := 0
	if m.Account != nil {
		n += sizeEmbedded(1, m.Account.Size())
	}
	return n + sizeVarint(2, m.Slot) + sizeBool(3, m.IsStartup)
}

// MarshalAppend appends the encoding of m to b
func (m *SubscribeUpdateAccount) MarshalAppend(b []byte) []byte {
	if m.Account != nil {
		b = appendEmbedded(b, 1, m.Account)
	}
	b = appendVarint(b, 2, m.Slot)
	return appendBool(b, 3, m.IsStartup)
}

// Unmarshal decodes b into m
func (m *SubscribeUpdateAccount) Unmarshal(b []byte) error {
	*m = SubscribeUpdateAccount{}
	return decode("SubscribeUpdateAccount", b, func(fd field) (err error) {
		switch fd.num {
		case 1:
			m.Account = &SubscribeUpdateAccountInfo{}
			err = fd.message(m.Account)
		case 2:
			m.Slot, err = fd.uint64()
		case 3:
			m.IsStartup, err = fd.bool()
		}
		return
	})
}

// Size returns the encoded length of m
func (m *SubscribeUpdateAccountInfo) Size() int {
	return sizeBytes(1, m.Pubkey) +
		sizeVarint(2, m.Lamports) +
		sizeBytes(3, m.Owner) +
		sizeBool(4, m.Executable) +
		sizeVarint(5, m.RentEpoch) +
		sizeBytes(6, m.Data) +
		sizeVarint(7, m.WriteVersion) +
		sizeOptBytes(8, m.TxnSignature)
}

// MarshalAppend appends the encoding of m to b
func (m *SubscribeUpdateAccountInfo) MarshalAppend(b []byte) []byte {
	b = appendBytes(b, 1, m.Pubkey)
	b = appendVarint(b, 2, m.Lamports)
	b = appendBytes(b, 3, m.Owner)
	b = appendBool(b, 4, m.Executable)
	b = appendVarint(b, 5, m.RentEpoch)
	b = appendBytes(b, 6, m.Data)
	b = appendVarint(b, 7, m.WriteVersion)
	return appendOptBytes(b, 8, m.TxnSignature)
}

// Unmarshal decodes b into m
func (m *SubscribeUpdateAccountInfo) Unmarshal(b []byte) error {
	*m = SubscribeUpdateAccountInfo{}
	return decode("SubscribeUpdateAccountInfo", b, func(fd field) (err error) {
		switch fd.num {
		case 1:
			m.Pubkey, err = fd.bytes()
		case 2:
			m.Lamports, err = fd.uint64()
		case 3:
			m.Owner, err = fd.bytes()
		case 4:
			m.Executable, err = fd.bool()
		case 5:
			m.RentEpoch, err = fd.uint64()
		case 6:
			m.Data, err = fd.bytes()
		case 7:
			m.WriteVersion, err = fd.uint64()
		case 8:
			m.TxnSignature, err = fd.bytes()
		}
		return
	})
}

// Size returns the encoded length of m
func (m *SubscribeUpdateSlot) Size() int {
	return sizeVarint(1, m.Slot) +
		sizeOptVarint(2, m.Parent) +
		sizeVarint(3, int32Wire(int32(m.Status))) +
		sizeOptString(4, m.DeadError)
}

// MarshalAppend appends the encoding of m to b
func (m *SubscribeUpdateSlot) MarshalAppend(b []byte) []byte {
	b = appendVarint(b, 1, m.Slot)
	b = appendOptVarint(b, 2, m.Parent)
	b = appendVarint(b, 3, int32Wire(int32(m.Status)))
	return appendOptString(b, 4, m.DeadError)
}

// Unmarshal decodes b into m
func (m *SubscribeUpdateSlot) Unmarshal(b []byte) error {
	*m = SubscribeUpdateSlot{}
	return decode("SubscribeUpdateSlot", b, func(fd field) error {
		switch fd.num {
		case 1:
			v, err := fd.uint64()
			m.Slot = v
			return err
		case 2:
			v, err := fd.uint64()
			m.Parent = &v
			return err
		case 3:
			v, err := fd.int32()
			m.Status = SlotStatus(v)
			return err
		case 4:
			v, err := fd.string()
			m.DeadError = &v
			return err
		}
		return nil
	})
}

// Size returns the encoded length of m
func (m *SubscribeUpdateTransaction) Size() int {
	n := 0
	if m.Transaction != nil {
		n += sizeEmbedded(1, m.Transaction.Size())
	}
	return n + sizeVarint(2, m.Slot)
}

// MarshalAppend appends the encoding of m to b
func (m *SubscribeUpdateTransaction) MarshalAppend(b []byte) []byte {
	if m.Transaction != nil {
		b = appendEmbedded(b, 1, m.Transaction)
	}
	return appendVarint(b, 2, m.Slot)
}

// Unmarshal decodes b into m
func (m *SubscribeUpdateTransaction) Unmarshal(b []byte) error {
	*m = SubscribeUpdateTransaction{}
	return decode("SubscribeUpdateTransaction", b, func(fd field) (err error) {
		switch fd.num {
		case 1:
			m.Transaction = &SubscribeUpdateTransactionInfo{}
			err = fd.message(m.Transaction)
		case 2:
			m.Slot, err = fd.uint64()
		}
		return
	})
}

// Size returns the encoded length of m
func (m *SubscribeUpdateTransactionInfo) Size() int {
	return sizeBytes(1, m.Signature) +
		sizeBool(2, m.IsVote) +
		sizeOptBytes(3, m.Transaction) +
		sizeOptBytes(4, m.Meta) +
		sizeVarint(5, m.Index)
}

// MarshalAppend appends the encoding of m to b
func (m *SubscribeUpdateTransactionInfo) MarshalAppend(b []byte) []byte {
	b = appendBytes(b, 1, m.Signature)
	b = appendBool(b, 2, m.IsVote)
	b = appendOptBytes(b, 3, m.Transaction)
	b = appendOptBytes(b, 4, m.Meta)
	return appendVarint(b, 5, m.Index)
}

// Unmarshal decodes b into m
func (m *SubscribeUpdateTransactionInfo) Unmarshal(b []byte) error {
	*m = SubscribeUpdateTransactionInfo{}
	return decode("SubscribeUpdateTransactionInfo", b, func(fd field) (err error) {
		switch fd.num {
		case 1:
			m.Signature, err = fd.bytes()
		case 2:
			m.IsVote, err = fd.bool()
		case 3:
			m.Transaction, err = fd.bytes()
		case 4:
			m.Meta, err = fd.bytes()
		case 5:
			m.Index, err = fd.uint64()
		}
		return
	})
}

// Size returns the encoded length of m
func (m *SubscribeUpdateTransactionStatus) Size() int {
	n := sizeVarint(1, m.Slot) +
		sizeBytes(2, m.Signature) +
		sizeBool(3, m.IsVote) +
		sizeVarint(4, m.Index)
	if m.Err != nil {
		n += sizeEmbedded(5, m.Err.Size())
	}
	return n
}

// MarshalAppend appends the encoding of m to b
func (m *SubscribeUpdateTransactionStatus) MarshalAppend(b []byte) []byte {
	b = appendVarint(b, 1, m.Slot)
	b = appendBytes(b, 2, m.Signature)
	b = appendBool(b, 3, m.IsVote)
	b = appendVarint(b, 4, m.Index)
	if m.Err != nil {
		b = appendEmbedded(b, 5, m.Err)
	}
	return b
}

// Unmarshal decodes b into m
func (m *SubscribeUpdateTransactionStatus) Unmarshal(b []byte) error {
	*m = SubscribeUpdateTransactionStatus{}
	return decode("SubscribeUpdateTransactionStatus", b, func(fd field) (err error) {
		switch fd.num {
		case 1:
			m.Slot, err = fd.uint64()
		case 2:
			m.Signature, err = fd.bytes()
		case 3:
			m.IsVote, err = fd.bool()
		case 4:
			m.Index, err = fd.uint64()
		case 5:
			m.Err = &TransactionError{}
			err = fd.message(m.Err)
		}
		return
	})
}

// Size returns the encoded length of m
func (m *TransactionError) Size() int {
	return sizeBytes(1, m.Err)
}

// MarshalAppend appends the encoding of m to b
func (m *TransactionError) MarshalAppend(b []byte) []byte {
	return appendBytes(b, 1, m.Err)
}

// Unmarshal decodes b into m
func (m *TransactionError) Unmarshal(b []byte) error {
	*m = TransactionError{}
	return decode("TransactionError", b, func(fd field) (err error) {
		if fd.num == 1 {
			m.Err, err = fd.bytes()
		}
		return
	})
}

// Size returns the encoded length of m
func (m *SubscribeUpdateBlock) Size() int {
	n := sizeVarint(1, m.Slot) + sizeString(2, m.Blockhash)
	if m.Rewards != nil {
		n += sizeEmbedded(3, m.Rewards.Size())
	}
	if m.BlockTime != nil {
		n += sizeEmbedded(4, m.BlockTime.Size())
	}
	if m.BlockHeight != nil {
		n += sizeEmbedded(5, m.BlockHeight.Size())
	}
	n += sizeVarint(7, m.ParentSlot) +
		sizeString(8, m.ParentBlockhash) +
		sizeVarint(9, m.ExecutedTransactionCount)
	for _, tx := range m.Transactions {
		n += sizeEmbedded(6, tx.Size())
	}
	n += sizeVarint(10, m.UpdatedAccountCount)
	for _, account := range m.Accounts {
		n += sizeEmbedded(11, account.Size())
	}
	n += sizeVarint(12, m.EntriesCount)
	for _, entry := range m.Entries {
		n += sizeEmbedded(13, entry.Size())
	}
	return n
}

// MarshalAppend appends the encoding of m to b
func (m *SubscribeUpdateBlock) MarshalAppend(b []byte) []byte {
	b = appendVarint(b, 1, m.Slot)
	b = appendString(b, 2, m.Blockhash)
	if m.Rewards != nil {
		b = appendEmbedded(b, 3, m.Rewards)
	}
	if m.BlockTime != nil {
		b = appendEmbedded(b, 4, m.BlockTime)
	}
	if m.BlockHeight != nil {
		b = appendEmbedded(b, 5, m.BlockHeight)
	}
	b = appendVarint(b, 7, m.ParentSlot)
	b = appendString(b, 8, m.ParentBlockhash)
	b = appendVarint(b, 9, m.ExecutedTransactionCount)
	for _, tx := range m.Transactions {
		b = appendEmbedded(b, 6, tx)
	}
	b = appendVarint(b, 10, m.UpdatedAccountCount)
	for _, account := range m.Accounts {
		b = appendEmbedded(b, 11, account)
	}
	b = appendVarint(b, 12, m.EntriesCount)
	for _, entry := range m.Entries {
		b = appendEmbedded(b, 13, entry)
	}
	return b
}

// Unmarshal decodes b into m
func (m *SubscribeUpdateBlock) Unmarshal(b []byte) error {
	*m = SubscribeUpdateBlock{}
	return decode("SubscribeUpdateBlock", b, func(fd field) (err error) {
		switch fd.num {
		case 1:
			m.Slot, err = fd.uint64()
		case 2:
			m.Blockhash, err = fd.string()
		case 3:
			m.Rewards = &Rewards{}
			err = fd.message(m.Rewards)
		case 4:
			m.BlockTime = &UnixTimestamp{}
			err = fd.message(m.BlockTime)
		case 5:
			m.BlockHeight = &BlockHeight{}
			err = fd.message(m.BlockHeight)
		case 7:
			m.ParentSlot, err = fd.uint64()
		case 8:
			m.ParentBlockhash, err = fd.string()
		case 9:
			m.ExecutedTransactionCount, err = fd.uint64()
		case 6:
			tx := &SubscribeUpdateTransactionInfo{}
			err = fd.message(tx)
			m.Transactions = append(m.Transactions, tx)
		case 10:
			m.UpdatedAccountCount, err = fd.uint64()
		case 11:
			account := &SubscribeUpdateAccountInfo{}
			err = fd.message(account)
			m.Accounts = append(m.Accounts, account)
		case 12:
			m.EntriesCount, err = fd.uint64()
		case 13:
			entry := &SubscribeUpdateEntry{}
			err = fd.message(entry)
			m.Entries = append(m.Entries, entry)
		}
		return
	})
}

// Size returns the encoded length of m
func (m *SubscribeUpdateBlockMeta) Size() int {
	n := sizeVarint(1, m.Slot) + sizeString(2, m.Blockhash)
	if m.Rewards != nil {
		n += sizeEmbedded(3, m.Rewards.Size())
	}
	if m.BlockTime != nil {
		n += sizeEmbedded(4, m.BlockTime.Size())
	}
	if m.BlockHeight != nil {
		n += sizeEmbedded(5, m.BlockHeight.Size())
	}
	return n + sizeVarint(6, m.ParentSlot) +
		sizeString(7, m.ParentBlockhash) +
		sizeVarint(8, m.ExecutedTransactionCount) +
		sizeVarint(9, m.EntriesCount)
}

// MarshalAppend appends the encoding of m to b
func (m *SubscribeUpdateBlockMeta) MarshalAppend(b []byte) []byte {
	b = appendVarint(b, 1, m.Slot)
	b = appendString(b, 2, m.Blockhash)
	if m.Rewards != nil {
		b = appendEmbedded(b, 3, m.Rewards)
	}
	if m.BlockTime != nil {
		b = appendEmbedded(b, 4, m.BlockTime)
	}
	if m.BlockHeight != nil {
		b = appendEmbedded(b, 5, m.BlockHeight)
	}
	b = appendVarint(b, 6, m.ParentSlot)
	b = appendString(b, 7, m.ParentBlockhash)
	b = appendVarint(b, 8, m.ExecutedTransactionCount)
	return appendVarint(b, 9, m.EntriesCount)
}

// Unmarshal decodes b into m
func (m *SubscribeUpdateBlockMeta) Unmarshal(b []byte) error {
	*m = SubscribeUpdateBlockMeta{}
	return decode("SubscribeUpdateBlockMeta", b, func(fd field) (err error) {
		switch fd.num {
		case 1:
			m.Slot, err = fd.uint64()
		case 2:
			m.Blockhash, err = fd.string()
		case 3:
			m.Rewards = &Rewards{}
			err = fd.message(m.Rewards)
		case 4:
			m.BlockTime = &UnixTimestamp{}
			err = fd.message(m.BlockTime)
		case 5:
			m.BlockHeight = &BlockHeight{}
			err = fd.message(m.BlockHeight)
		case 6:
			m.ParentSlot, err = fd.uint64()
		case 7:
			m.ParentBlockhash, err = fd.string()
		case 8:
			m.ExecutedTransactionCount, err = fd.uint64()
		case 9:
			m.EntriesCount, err = fd.uint64()
		}
		return
	})
}

// Size returns the encoded length of m
func (m *SubscribeUpdateEntry) Size() int {
	return sizeVarint(1, m.Slot) +
		sizeVarint(2, m.Index) +
		sizeVarint(3, m.NumHashes) +
		sizeBytes(4, m.Hash) +
		sizeVarint(5, m.ExecutedTransactionCount) +
		sizeVarint(6, m.StartingTransactionIndex)
}

// MarshalAppend appends the encoding of m to b
func (m *SubscribeUpdateEntry) MarshalAppend(b []byte) []byte {
	b = appendVarint(b, 1, m.Slot)
	b = appendVarint(b, 2, m.Index)
	b = appendVarint(b, 3, m.NumHashes)
	b = appendBytes(b, 4, m.Hash)
	b = appendVarint(b, 5, m.ExecutedTransactionCount)
	return appendVarint(b, 6, m.StartingTransactionIndex)
}

// Unmarshal decodes b into m
func (m *SubscribeUpdateEntry) Unmarshal(b []byte) error {
	*m = SubscribeUpdateEntry{}
	return decode("SubscribeUpdateEntry", b, func(fd field) (err error) {
		switch fd.num {
		case 1:
			m.Slot, err = fd.uint64()
		case 2:
			m.Index, err = fd.uint64()
		case 3:
			m.NumHashes, err = fd.uint64()
		case 4:
			m.Hash, err = fd.bytes()
		case 5:
			m.ExecutedTransactionCount, err = fd.uint64()
		case 6:
			m.StartingTransactionIndex, err = fd.uint64()
		}
		return
	})
}

// Size returns the encoded length of m
func (m *SubscribeUpdatePing) Size() int { return 0 }

// MarshalAppend appends the encoding of m to b
func (m *SubscribeUpdatePing) MarshalAppend(b []byte) []byte { return b }

// Unmarshal decodes b into m
func (m *SubscribeUpdatePing) Unmarshal(b []byte) error {
	return decode("SubscribeUpdatePing", b, func(field) error { return nil })
}

// Size returns the encoded length of m
func (m *SubscribeUpdatePong) Size() int {
	return sizeVarint(1, int32Wire(m.Id))
}

// MarshalAppend appends the encoding of m to b
func (m *SubscribeUpdatePong) MarshalAppend(b []byte) []byte {
	return appendVarint(b, 1, int32Wire(m.Id))
}

// Unmarshal decodes b into m
func (m *SubscribeUpdatePong) Unmarshal(b []byte) error {
	*m = SubscribeUpdatePong{}
	return decode("SubscribeUpdatePong", b, func(fd field) (err error) {
		if fd.num == 1 {
			m.Id, err = fd.int32()
		}
		return
	})
}

// Size returns the encoded length of m
func (m *Rewards) Size() int {
	n := 0
	for _, r := range m.Rewards {
		n += sizeEmbedded(1, r.Size())
	}
	if m.NumPartitions != nil {
		n += sizeEmbedded(2, m.NumPartitions.Size())
	}
	return n
}

// MarshalAppend appends the encoding of m to b
func (m *Rewards) MarshalAppend(b []byte) []byte {
	for _, r := range m.Rewards {
		b = appendEmbedded(b, 1, r)
	}
	if m.NumPartitions != nil {
		b = appendEmbedded(b, 2, m.NumPartitions)
	}
	return b
}

// Unmarshal decodes b into m
func (m *Rewards) Unmarshal(b []byte) error {
	*m = Rewards{}
	return decode("Rewards", b, func(fd field) (err error) {
		switch fd.num {
		case 1:
			r := &Reward{}
			err = fd.message(r)
			m.Rewards = append(m.Rewards, r)
		case 2:
			m.NumPartitions = &NumPartitions{}
			err = fd.message(m.NumPartitions)
		}
		return
	})
}

// Size returns the encoded length of m
func (m *Reward) Size() int {
	return sizeString(1, m.Pubkey) +
		sizeVarint(2, uint64(m.Lamports)) +
		sizeVarint(3, m.PostBalance) +
		sizeVarint(4, int32Wire(int32(m.RewardType))) +
		sizeString(5, m.Commission)
}

// MarshalAppend appends the encoding of m to b
func (m *Reward) MarshalAppend(b []byte) []byte {
	b = appendString(b, 1, m.Pubkey)
	b = appendVarint(b, 2, uint64(m.Lamports))
	b = appendVarint(b, 3, m.PostBalance)
	b = appendVarint(b, 4, int32Wire(int32(m.RewardType)))
	return appendString(b, 5, m.Commission)
}

// Unmarshal decodes b into m
func (m *Reward) Unmarshal(b []byte) error {
	*m = Reward{}
	return decode("Reward", b, func(fd field) error {
		switch fd.num {
		case 1:
			v, err := fd.string()
			m.Pubkey = v
			return err
		case 2:
			v, err := fd.int64()
			m.Lamports = v
			return err
		case 3:
			v, err := fd.uint64()
			m.PostBalance = v
			return err
		case 4:
			v, err := fd.int32()
			m.RewardType = RewardType(v)
			return err
		case 5:
			v, err := fd.string()
			m.Commission = v
			return err
		}
		return nil
	})
}

// Size returns the encoded length of m
func (m *NumPartitions) Size() int {
	return sizeVarint(1, m.NumPartitions)
}

// MarshalAppend appends the encoding of m to b
func (m *NumPartitions) MarshalAppend(b []byte) []byte {
	return appendVarint(b, 1, m.NumPartitions)
}

// Unmarshal decodes b into m
func (m *NumPartitions) Unmarshal(b []byte) error {
	*m = NumPartitions{}
	return decode("NumPartitions", b, func(fd field) (err error) {
		if fd.num == 1 {
			m.NumPartitions, err = fd.uint64()
		}
		return
	})
}

// Size returns the encoded length of m
func (m *UnixTimestamp) Size() int {
	return sizeVarint(1, uint64(m.Timestamp))
}

// MarshalAppend appends the encoding of m to b
func (m *UnixTimestamp) MarshalAppend(b []byte) []byte {
	return appendVarint(b, 1, uint64(m.Timestamp))
}

// Unmarshal decodes b into m
func (m *UnixTimestamp) Unmarshal(b []byte) error {
	*m = UnixTimestamp{}
	return decode("UnixTimestamp", b, func(fd field) (err error) {
		if fd.num == 1 {
			m.Timestamp, err = fd.int64()
		}
		return
	})
}

// Size returns the encoded length of m
func (m *BlockHeight) Size() int {
	return sizeVarint(1, m.BlockHeight)
}

// MarshalAppend appends the encoding of m to b
func (m *BlockHeight) MarshalAppend(b []byte) []byte {
	return appendVarint(b, 1, m.BlockHeight)
}

// Unmarshal decodes b into m
func (m *BlockHeight) Unmarshal(b []byte) error {
	*m = BlockHeight{}
	return decode("BlockHeight", b, func(fd field) (err error) {
		if fd.num == 1 {
			m.BlockHeight, err = fd.uint64()
		}
		return
	})
}
