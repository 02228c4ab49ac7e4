package filter

import pb "github.com/bloXroute-Labs/geyser-client/protobuf"

// AccountsOptions selects account updates
type AccountsOptions struct {
	Enabled              bool
	Addresses            []string
	AddressFile          string
	Owners               []string
	Memcmp               []string // "offset,base58 data"
	Datasize             *uint64
	TokenAccountState    bool
	Lamports             []string // "eq|ne|lt|gt:value"
	NonemptyTxnSignature *bool
	DataSlice            []string // "offset,length"
}

// SlotsOptions selects slot updates
type SlotsOptions struct {
	Enabled            bool
	FilterByCommitment *bool
	InterslotUpdates   *bool
}

// TransactionsOptions selects transaction or transaction status updates
type TransactionsOptions struct {
	Enabled         bool
	Vote            *bool
	Failed          *bool
	Signature       *string
	AccountInclude  []string
	AccountExclude  []string
	AccountRequired []string
}

// BlocksOptions selects block updates
type BlocksOptions struct {
	Enabled             bool
	AccountInclude      []string
	IncludeTransactions *bool
	IncludeAccounts     *bool
	IncludeEntries      *bool
}

// Options is everything a subscribe request is built from
type Options struct {
	Accounts           AccountsOptions
	Slots              SlotsOptions
	Transactions       TransactionsOptions
	TransactionsStatus TransactionsOptions
	Entries            bool
	Blocks             BlocksOptions
	BlocksMeta         bool

	Commitment *pb.CommitmentLevel
	FromSlot   *uint64
	Ping       *int32
}

// Empty reports whether no category is enabled
func (o *Options) Empty() bool {
	return !o.Accounts.Enabled &&
		!o.Slots.Enabled &&
		!o.Transactions.Enabled &&
		!o.TransactionsStatus.Enabled &&
		!o.Entries &&
		!o.Blocks.Enabled &&
		!o.BlocksMeta
}
