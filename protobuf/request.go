package protobuf

import (
	"maps"
	"slices"

	"google.golang.org/protobuf/encoding/protowire"
)

// SubscribeRequest configures which updates the server streams back.
// An empty map for a category clears that category.
type SubscribeRequest struct {
	Accounts           map[string]*SubscribeRequestFilterAccounts
	Slots              map[string]*SubscribeRequestFilterSlots
	Transactions       map[string]*SubscribeRequestFilterTransactions
	TransactionsStatus map[string]*SubscribeRequestFilterTransactions
	Blocks             map[string]*SubscribeRequestFilterBlocks
	BlocksMeta         map[string]*SubscribeRequestFilterBlocksMeta
	Entry              map[string]*SubscribeRequestFilterEntry
	Commitment         *CommitmentLevel
	AccountsDataSlice  []*SubscribeRequestAccountsDataSlice
	Ping               *SubscribeRequestPing
	FromSlot           *uint64
}

// SubscribeRequestFilterAccounts selects account updates
type SubscribeRequestFilterAccounts struct {
	Account              []string
	Owner                []string
	Filters              []*SubscribeRequestFilterAccountsFilter
	NonemptyTxnSignature *bool
}

// SubscribeRequestFilterAccountsFilter wraps exactly one AccountsFilter variant
type SubscribeRequestFilterAccountsFilter struct {
	Filter AccountsFilter
}

// AccountsFilter is one of AccountsFilterMemcmp, AccountsFilterDatasize,
// AccountsFilterTokenAccountState or AccountsFilterLamports
type AccountsFilter interface {
	isAccountsFilter()
}

// AccountsFilterMemcmp matches account data at an offset
type AccountsFilterMemcmp struct {
	Memcmp *SubscribeRequestFilterAccountsFilterMemcmp
}

// AccountsFilterDatasize matches the account data length
type AccountsFilterDatasize struct {
	Datasize uint64
}

// AccountsFilterTokenAccountState matches initialized SPL token accounts
type AccountsFilterTokenAccountState struct {
	TokenAccountState bool
}

// AccountsFilterLamports compares the account balance
type AccountsFilterLamports struct {
	Lamports *SubscribeRequestFilterAccountsFilterLamports
}

func (*AccountsFilterMemcmp) isAccountsFilter()            {}
func (*AccountsFilterDatasize) isAccountsFilter()          {}
func (*AccountsFilterTokenAccountState) isAccountsFilter() {}
func (*AccountsFilterLamports) isAccountsFilter()          {}

// MemcmpEncoding selects how Memcmp data is carried; the value is the field number
type MemcmpEncoding protowire.Number

// MemcmpEncoding values
const (
	MemcmpEncodingNone   MemcmpEncoding = 0
	MemcmpEncodingBytes  MemcmpEncoding = 2
	MemcmpEncodingBase58 MemcmpEncoding = 3
	MemcmpEncodingBase64 MemcmpEncoding = 4
)

// SubscribeRequestFilterAccountsFilterMemcmp compares Data with the account data at Offset.
// For base58 and base64 encodings Data holds the encoded text.
type SubscribeRequestFilterAccountsFilterMemcmp struct {
	Offset   uint64
	Encoding MemcmpEncoding
	Data     []byte
}

// LamportsOp is the comparison applied by a lamports filter; the value is the field number
type LamportsOp protowire.Number

// LamportsOp values
const (
	LamportsOpNone LamportsOp = 0
	LamportsOpEq   LamportsOp = 1
	LamportsOpNe   LamportsOp = 2
	LamportsOpLt   LamportsOp = 3
	LamportsOpGt   LamportsOp = 4
)

// SubscribeRequestFilterAccountsFilterLamports compares lamports with Value using Op
type SubscribeRequestFilterAccountsFilterLamports struct {
	Op    LamportsOp
	Value uint64
}

// SubscribeRequestFilterSlots selects slot updates
type SubscribeRequestFilterSlots struct {
	FilterByCommitment *bool
	InterslotUpdates   *bool
}

// SubscribeRequestFilterTransactions selects transaction and transaction status updates
type SubscribeRequestFilterTransactions struct {
	Vote            *bool
	Failed          *bool
	Signature       *string
	AccountInclude  []string
	AccountExclude  []string
	AccountRequired []string
}

// SubscribeRequestFilterBlocks selects block updates
type SubscribeRequestFilterBlocks struct {
	AccountInclude      []string
	IncludeTransactions *bool
	IncludeAccounts     *bool
	IncludeEntries      *bool
}

// SubscribeRequestFilterBlocksMeta selects block meta updates
type SubscribeRequestFilterBlocksMeta struct{}

// SubscribeRequestFilterEntry selects entry updates
type SubscribeRequestFilterEntry struct{}

// SubscribeRequestAccountsDataSlice trims account data to Length bytes starting at Offset
type SubscribeRequestAccountsDataSlice struct {
	Offset uint64
	Length uint64
}

// SubscribeRequestPing asks the server to answer with a pong carrying Id
type SubscribeRequestPing struct {
	Id int32
}

// map helpers; keys are written in sorted order so equal requests encode equally

func sizeMap[V Message](num protowire.Number, m map[string]V) int {
	n := 0
	for k, v := range m {
		entry := sizeString(1, k) + sizeEmbedded(2, v.Size())
		n += sizeEmbedded(num, entry)
	}
	return n
}

func appendMap[V Message](b []byte, num protowire.Number, m map[string]V) []byte {
	for _, k := range slices.Sorted(maps.Keys(m)) {
		v := m[k]
		entry := sizeString(1, k) + sizeEmbedded(2, v.Size())
		b = protowire.AppendTag(b, num, protowire.BytesType)
		b = protowire.AppendVarint(b, uint64(entry))
		b = appendString(b, 1, k)
		b = appendEmbedded(b, 2, v)
	}
	return b
}

func unmarshalMapEntry[T any, P interface {
	*T
	Message
}](fd field, dst *map[string]P) error {
	raw, err := fd.bytes()
	if err != nil {
		return err
	}
	var key string
	val := P(new(T))
	err = decode(fd.msg+" map entry", raw, func(e field) (err error) {
		switch e.num {
		case 1:
			key, err = e.string()
		case 2:
			err = e.message(val)
		}
		return
	})
	if err != nil {
		return err
	}
	if *dst == nil {
		*dst = make(map[string]P)
	}
	(*dst)[key] = val
	return nil
}

// Size returns the encoded length of m
func (m *SubscribeRequest) Size() int {
	n := sizeMap(1, m.Accounts) +
		sizeMap(2, m.Slots) +
		sizeMap(3, m.Transactions) +
		sizeMap(10, m.TransactionsStatus) +
		sizeMap(4, m.Blocks) +
		sizeMap(5, m.BlocksMeta) +
		sizeMap(8, m.Entry)
	if m.Commitment != nil {
		n += protowire.SizeTag(6) + protowire.SizeVarint(int32Wire(int32(*m.Commitment)))
	}
	for _, s := range m.AccountsDataSlice {
		n += sizeEmbedded(7, s.Size())
	}
	if m.Ping != nil {
		n += sizeEmbedded(9, m.Ping.Size())
	}
	n += sizeOptVarint(11, m.FromSlot)
	return n
}

// MarshalAppend appends the encoding of m to b
func (m *SubscribeRequest) MarshalAppend(b []byte) []byte {
	b = appendMap(b, 1, m.Accounts)
	b = appendMap(b, 2, m.Slots)
	b = appendMap(b, 3, m.Transactions)
	b = appendMap(b, 10, m.TransactionsStatus)
	b = appendMap(b, 4, m.Blocks)
	b = appendMap(b, 5, m.BlocksMeta)
	b = appendMap(b, 8, m.Entry)
	if m.Commitment != nil {
		b = appendVarintAlways(b, 6, int32Wire(int32(*m.Commitment)))
	}
	for _, s := range m.AccountsDataSlice {
		b = appendEmbedded(b, 7, s)
	}
	if m.Ping != nil {
		b = appendEmbedded(b, 9, m.Ping)
	}
	return appendOptVarint(b, 11, m.FromSlot)
}

// Unmarshal decodes b into m
func (m *SubscribeRequest) Unmarshal(b []byte) error {
	*m = SubscribeRequest{}
	return decode("SubscribeRequest", b, func(fd field) error {
		switch fd.num {
		case 1:
			return unmarshalMapEntry(fd, &m.Accounts)
		case 2:
			return unmarshalMapEntry(fd, &m.Slots)
		case 3:
			return unmarshalMapEntry(fd, &m.Transactions)
		case 10:
			return unmarshalMapEntry(fd, &m.TransactionsStatus)
		case 4:
			return unmarshalMapEntry(fd, &m.Blocks)
		case 5:
			return unmarshalMapEntry(fd, &m.BlocksMeta)
		case 8:
			return unmarshalMapEntry(fd, &m.Entry)
		case 6:
			v, err := fd.int32()
			if err != nil {
				return err
			}
			c := CommitmentLevel(v)
			m.Commitment = &c
		case 7:
			s := &SubscribeRequestAccountsDataSlice{}
			if err := fd.message(s); err != nil {
				return err
			}
			m.AccountsDataSlice = append(m.AccountsDataSlice, s)
		case 9:
			m.Ping = &SubscribeRequestPing{}
			return fd.message(m.Ping)
		case 11:
			v, err := fd.uint64()
			if err != nil {
				return err
			}
			m.FromSlot = &v
		}
		return nil
	})
}

// Size returns the encoded length of m
func (m *SubscribeRequestFilterAccounts) Size() int {
	n := sizeStrings(2, m.Account) + sizeStrings(3, m.Owner)
	for _, f := range m.Filters {
		n += sizeEmbedded(4, f.Size())
	}
	return n + sizeOptBool(5, m.NonemptyTxnSignature)
}

// MarshalAppend appends the encoding of m to b
func (m *SubscribeRequestFilterAccounts) MarshalAppend(b []byte) []byte {
	b = appendStrings(b, 2, m.Account)
	b = appendStrings(b, 3, m.Owner)
	for _, f := range m.Filters {
		b = appendEmbedded(b, 4, f)
	}
	return appendOptBool(b, 5, m.NonemptyTxnSignature)
}

// Unmarshal decodes b into m
func (m *SubscribeRequestFilterAccounts) Unmarshal(b []byte) error {
	*m = SubscribeRequestFilterAccounts{}
	return decode("SubscribeRequestFilterAccounts", b, func(fd field) error {
		switch fd.num {
		case 2:
			v, err := fd.string()
			m.Account = append(m.Account, v)
			return err
		case 3:
			v, err := fd.string()
			m.Owner = append(m.Owner, v)
			return err
		case 4:
			f := &SubscribeRequestFilterAccountsFilter{}
			if err := fd.message(f); err != nil {
				return err
			}
			m.Filters = append(m.Filters, f)
		case 5:
			v, err := fd.bool()
			m.NonemptyTxnSignature = &v
			return err
		}
		return nil
	})
}

// Size returns the encoded length of m
func (m *SubscribeRequestFilterAccountsFilter) Size() int {
	switch f := m.Filter.(type) {
	case *AccountsFilterMemcmp:
		return sizeEmbedded(1, f.Memcmp.Size())
	case *AccountsFilterDatasize:
		return protowire.SizeTag(2) + protowire.SizeVarint(f.Datasize)
	case *AccountsFilterTokenAccountState:
		return protowire.SizeTag(3) + 1
	case *AccountsFilterLamports:
		return sizeEmbedded(4, f.Lamports.Size())
	}
	return 0
}

// MarshalAppend appends the encoding of m to b
func (m *SubscribeRequestFilterAccountsFilter) MarshalAppend(b []byte) []byte {
	switch f := m.Filter.(type) {
	case *AccountsFilterMemcmp:
		return appendEmbedded(b, 1, f.Memcmp)
	case *AccountsFilterDatasize:
		return appendVarintAlways(b, 2, f.Datasize)
	case *AccountsFilterTokenAccountState:
		return appendVarintAlways(b, 3, protowire.EncodeBool(f.TokenAccountState))
	case *AccountsFilterLamports:
		return appendEmbedded(b, 4, f.Lamports)
	}
	return b
}

// Unmarshal decodes b into m
func (m *SubscribeRequestFilterAccountsFilter) Unmarshal(b []byte) error {
	*m = SubscribeRequestFilterAccountsFilter{}
	return decode("SubscribeRequestFilterAccountsFilter", b, func(fd field) error {
		switch fd.num {
		case 1:
			memcmp := &SubscribeRequestFilterAccountsFilterMemcmp{}
			m.Filter = &AccountsFilterMemcmp{Memcmp: memcmp}
			return fd.message(memcmp)
		case 2:
			v, err := fd.uint64()
			m.Filter = &AccountsFilterDatasize{Datasize: v}
			return err
		case 3:
			v, err := fd.bool()
			m.Filter = &AccountsFilterTokenAccountState{TokenAccountState: v}
			return err
		case 4:
			lamports := &SubscribeRequestFilterAccountsFilterLamports{}
			m.Filter = &AccountsFilterLamports{Lamports: lamports}
			return fd.message(lamports)
		}
		return nil
	})
}

// Size returns the encoded length of m
func (m *SubscribeRequestFilterAccountsFilterMemcmp) Size() int {
	n := sizeVarint(1, m.Offset)
	if m.Encoding != MemcmpEncodingNone {
		n += protowire.SizeTag(protowire.Number(m.Encoding)) + protowire.SizeBytes(len(m.Data))
	}
	return n
}

// MarshalAppend appends the encoding of m to b
func (m *SubscribeRequestFilterAccountsFilterMemcmp) MarshalAppend(b []byte) []byte {
	b = appendVarint(b, 1, m.Offset)
	if m.Encoding != MemcmpEncodingNone {
		b = appendBytesAlways(b, protowire.Number(m.Encoding), m.Data)
	}
	return b
}

// Unmarshal decodes b into m
func (m *SubscribeRequestFilterAccountsFilterMemcmp) Unmarshal(b []byte) error {
	*m = SubscribeRequestFilterAccountsFilterMemcmp{}
	return decode("SubscribeRequestFilterAccountsFilterMemcmp", b, func(fd field) (err error) {
		switch fd.num {
		case 1:
			m.Offset, err = fd.uint64()
		case 2, 3, 4:
			m.Encoding = MemcmpEncoding(fd.num)
			m.Data, err = fd.bytes()
		}
		return
	})
}

// Size returns the encoded length of m
func (m *SubscribeRequestFilterAccountsFilterLamports) Size() int {
	if m.Op == LamportsOpNone {
		return 0
	}
	return protowire.SizeTag(protowire.Number(m.Op)) + protowire.SizeVarint(m.Value)
}

// MarshalAppend appends the encoding of m to b
func (m *SubscribeRequestFilterAccountsFilterLamports) MarshalAppend(b []byte) []byte {
	if m.Op == LamportsOpNone {
		return b
	}
	return appendVarintAlways(b, protowire.Number(m.Op), m.Value)
}

// Unmarshal decodes b into m
func (m *SubscribeRequestFilterAccountsFilterLamports) Unmarshal(b []byte) error {
	*m = SubscribeRequestFilterAccountsFilterLamports{}
	return decode("SubscribeRequestFilterAccountsFilterLamports", b, func(fd field) (err error) {
		switch fd.num {
		case 1, 2, 3, 4:
			m.Op = LamportsOp(fd.num)
			m.Value, err = fd.uint64()
		}
		return
	})
}

// Size returns the encoded length of m
func (m *SubscribeRequestFilterSlots) Size() int {
	return sizeOptBool(1, m.FilterByCommitment) + sizeOptBool(2, m.InterslotUpdates)
}

// MarshalAppend appends the encoding of m to b
func (m *SubscribeRequestFilterSlots) MarshalAppend(b []byte) []byte {
	b = appendOptBool(b, 1, m.FilterByCommitment)
	return appendOptBool(b, 2, m.InterslotUpdates)
}

// Unmarshal decodes b into m
func (m *SubscribeRequestFilterSlots) Unmarshal(b []byte) error {
	*m = SubscribeRequestFilterSlots{}
	return decode("SubscribeRequestFilterSlots", b, func(fd field) error {
		switch fd.num {
		case 1:
			v, err := fd.bool()
			m.FilterByCommitment = &v
			return err
		case 2:
			v, err := fd.bool()
			m.InterslotUpdates = &v
			return err
		}
		return nil
	})
}

// Size returns the encoded length of m
func (m *SubscribeRequestFilterTransactions) Size() int {
	return sizeOptBool(1, m.Vote) +
		sizeOptBool(2, m.Failed) +
		sizeOptString(5, m.Signature) +
		sizeStrings(3, m.AccountInclude) +
		sizeStrings(4, m.AccountExclude) +
		sizeStrings(6, m.AccountRequired)
}

// MarshalAppend appends the encoding of m to b
func (m *SubscribeRequestFilterTransactions) MarshalAppend(b []byte) []byte {
	b = appendOptBool(b, 1, m.Vote)
	b = appendOptBool(b, 2, m.Failed)
	b = appendOptString(b, 5, m.Signature)
	b = appendStrings(b, 3, m.AccountInclude)
	b = appendStrings(b, 4, m.AccountExclude)
	return appendStrings(b, 6, m.AccountRequired)
}

// Unmarshal decodes b into m
func (m *SubscribeRequestFilterTransactions) Unmarshal(b []byte) error {
	*m = SubscribeRequestFilterTransactions{}
	return decode("SubscribeRequestFilterTransactions", b, func(fd field) error {
		switch fd.num {
		case 1:
			v, err := fd.bool()
			m.Vote = &v
			return err
		case 2:
			v, err := fd.bool()
			m.Failed = &v
			return err
		case 5:
			v, err := fd.string()
			m.Signature = &v
			return err
		case 3:
			v, err := fd.string()
			m.AccountInclude = append(m.AccountInclude, v)
			return err
		case 4:
			v, err := fd.string()
			m.AccountExclude = append(m.AccountExclude, v)
			return err
		case 6:
			v, err := fd.string()
			m.AccountRequired = append(m.AccountRequired, v)
			return err
		}
		return nil
	})
}

// Size returns the encoded length of m
func (m *SubscribeRequestFilterBlocks) Size() int {
	return sizeStrings(1, m.AccountInclude) +
		sizeOptBool(2, m.IncludeTransactions) +
		sizeOptBool(3, m.IncludeAccounts) +
		sizeOptBool(4, m.IncludeEntries)
}

// MarshalAppend appends the encoding of m to b
func (m *SubscribeRequestFilterBlocks) MarshalAppend(b []byte) []byte {
	b = appendStrings(b, 1, m.AccountInclude)
	b = appendOptBool(b, 2, m.IncludeTransactions)
	b = appendOptBool(b, 3, m.IncludeAccounts)
	return appendOptBool(b, 4, m.IncludeEntries)
}

// Unmarshal decodes b into m
func (m *SubscribeRequestFilterBlocks) Unmarshal(b []byte) error {
	*m = SubscribeRequestFilterBlocks{}
	return decode("SubscribeRequestFilterBlocks", b, func(fd field) error {
		switch fd.num {
		case 1:
			v, err := fd.string()
			m.AccountInclude = append(m.AccountInclude, v)
			return err
		case 2:
			v, err := fd.bool()
			m.IncludeTransactions = &v
			return err
		case 3:
			v, err := fd.bool()
			m.IncludeAccounts = &v
			return err
		case 4:
			v, err := fd.bool()
			m.IncludeEntries = &v
			return err
		}
		return nil
	})
}

// Size returns the encoded length of m
func (m *SubscribeRequestFilterBlocksMeta) Size() int { return 0 }

// MarshalAppend appends the encoding of m to b
func (m *SubscribeRequestFilterBlocksMeta) MarshalAppend(b []byte) []byte { return b }

// Unmarshal decodes b into m
func (m *SubscribeRequestFilterBlocksMeta) Unmarshal(b []byte) error {
	return decode("SubscribeRequestFilterBlocksMeta", b, func(field) error { return nil })
}

// Size returns the encoded length of m
func (m *SubscribeRequestFilterEntry) Size() int { return 0 }

// MarshalAppend appends the encoding of m to b
func (m *SubscribeRequestFilterEntry) MarshalAppend(b []byte) []byte { return b }

// Unmarshal decodes b into m
func (m *SubscribeRequestFilterEntry) Unmarshal(b []byte) error {
	return decode("SubscribeRequestFilterEntry", b, func(field) error { return nil })
}

// Size returns the encoded length of m
func (m *SubscribeRequestAccountsDataSlice) Size() int {
	return sizeVarint(1, m.Offset) + sizeVarint(2, m.Length)
}

// MarshalAppend appends the encoding of m to b
func (m *SubscribeRequestAccountsDataSlice) MarshalAppend(b []byte) []byte {
	b = appendVarint(b, 1, m.Offset)
	return appendVarint(b, 2, m.Length)
}

// Unmarshal decodes b into m
func (m *SubscribeRequestAccountsDataSlice) Unmarshal(b []byte) error {
	*m = SubscribeRequestAccountsDataSlice{}
	return decode("SubscribeRequestAccountsDataSlice", b, func(fd field) (err error) {
		switch fd.num {
		case 1:
			m.Offset, err = fd.uint64()
		case 2:
			m.Length, err = fd.uint64()
		}
		return
	})
}

// Size returns the encoded length of m
func (m *SubscribeRequestPing) Size() int {
	return sizeVarint(1, int32Wire(m.Id))
}

// MarshalAppend appends the encoding of m to b
func (m *SubscribeRequestPing) MarshalAppend(b []byte) []byte {
	return appendVarint(b, 1, int32Wire(m.Id))
}

// Unmarshal decodes b into m
func (m *SubscribeRequestPing) Unmarshal(b []byte) error {
	*m = SubscribeRequestPing{}
	return decode("SubscribeRequestPing", b, func(fd field) (err error) {
		if fd.num == 1 {
			m.Id, err = fd.int32()
		}
		return
	})
}
