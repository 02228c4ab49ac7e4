// Package filter turns user supplied subscription options into a validated SubscribeRequest.
package filter

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	geyserclient "github.com/bloXroute-Labs/geyser-client"
	pb "github.com/bloXroute-Labs/geyser-client/protobuf"
	"github.com/bloXroute-Labs/geyser-client/types"
	"github.com/mr-tron/base58"
)

const (
	pubkeyLen    = 32
	signatureLen = 64
)

var lamportsOps = map[string]pb.LamportsOp{
	"eq": pb.LamportsOpEq,
	"ne": pb.LamportsOpNe,
	"lt": pb.LamportsOpLt,
	"gt": pb.LamportsOpGt,
}

// Build converts opts into a subscribe request. Every category map is present;
// disabled categories are empty. Any malformed option yields a validation error.
func Build(opts *Options) (*pb.SubscribeRequest, error) {
	req := emptyRequest()
	label := geyserclient.FilterLabel

	if opts.Accounts.Enabled {
		accounts, err := buildAccounts(&opts.Accounts)
		if err != nil {
			return nil, err
		}
		req.Accounts[label] = accounts
	}

	if opts.Slots.Enabled {
		req.Slots[label] = &pb.SubscribeRequestFilterSlots{
			FilterByCommitment: opts.Slots.FilterByCommitment,
			InterslotUpdates:   opts.Slots.InterslotUpdates,
		}
	}

	if opts.Transactions.Enabled {
		transactions, err := buildTransactions("transactions", &opts.Transactions)
		if err != nil {
			return nil, err
		}
		req.Transactions[label] = transactions
	}

	if opts.TransactionsStatus.Enabled {
		transactions, err := buildTransactions("transactions-status", &opts.TransactionsStatus)
		if err != nil {
			return nil, err
		}
		req.TransactionsStatus[label] = transactions
	}

	if opts.Entries {
		req.Entry[label] = &pb.SubscribeRequestFilterEntry{}
	}

	if opts.Blocks.Enabled {
		if err := validateAddresses("blocks-account-include", opts.Blocks.AccountInclude); err != nil {
			return nil, err
		}
		req.Blocks[label] = &pb.SubscribeRequestFilterBlocks{
			AccountInclude:      opts.Blocks.AccountInclude,
			IncludeTransactions: opts.Blocks.IncludeTransactions,
			IncludeAccounts:     opts.Blocks.IncludeAccounts,
			IncludeEntries:      opts.Blocks.IncludeEntries,
		}
	}

	if opts.BlocksMeta {
		req.BlocksMeta[label] = &pb.SubscribeRequestFilterBlocksMeta{}
	}

	for _, s := range opts.Accounts.DataSlice {
		slice, err := parseDataSlice(s)
		if err != nil {
			return nil, err
		}
		req.AccountsDataSlice = append(req.AccountsDataSlice, slice)
	}

	if opts.Ping != nil {
		req.Ping = &pb.SubscribeRequestPing{Id: *opts.Ping}
	}
	req.Commitment = opts.Commitment
	req.FromSlot = opts.FromSlot

	return req, nil
}

// SlotsOnly is the resubscribe request: slot updates with default options, every
// other category cleared and no commitment, ping or from_slot
func SlotsOnly() *pb.SubscribeRequest {
	req := emptyRequest()
	req.Slots[geyserclient.FilterLabel] = &pb.SubscribeRequestFilterSlots{}
	return req
}

func emptyRequest() *pb.SubscribeRequest {
	return &pb.SubscribeRequest{
		Accounts:           map[string]*pb.SubscribeRequestFilterAccounts{},
		Slots:              map[string]*pb.SubscribeRequestFilterSlots{},
		Transactions:       map[string]*pb.SubscribeRequestFilterTransactions{},
		TransactionsStatus: map[string]*pb.SubscribeRequestFilterTransactions{},
		Blocks:             map[string]*pb.SubscribeRequestFilterBlocks{},
		BlocksMeta:         map[string]*pb.SubscribeRequestFilterBlocksMeta{},
		Entry:              map[string]*pb.SubscribeRequestFilterEntry{},
	}
}

func buildAccounts(opts *AccountsOptions) (*pb.SubscribeRequestFilterAccounts, error) {
	addresses := append([]string(nil), opts.Addresses...)
	if opts.AddressFile != "" {
		fromFile, err := readAddressFile(opts.AddressFile)
		if err != nil {
			return nil, err
		}
		addresses = append(addresses, fromFile...)
	}
	if err := validateAddresses("accounts-account", addresses); err != nil {
		return nil, err
	}
	if err := validateAddresses("accounts-owner", opts.Owners); err != nil {
		return nil, err
	}

	var filters []*pb.SubscribeRequestFilterAccountsFilter
	for _, s := range opts.Memcmp {
		memcmp, err := parseMemcmp(s)
		if err != nil {
			return nil, err
		}
		filters = append(filters, &pb.SubscribeRequestFilterAccountsFilter{Filter: &pb.AccountsFilterMemcmp{Memcmp: memcmp}})
	}
	if opts.Datasize != nil {
		filters = append(filters, &pb.SubscribeRequestFilterAccountsFilter{Filter: &pb.AccountsFilterDatasize{Datasize: *opts.Datasize}})
	}
	if opts.TokenAccountState {
		filters = append(filters, &pb.SubscribeRequestFilterAccountsFilter{Filter: &pb.AccountsFilterTokenAccountState{TokenAccountState: true}})
	}
	for _, s := range opts.Lamports {
		lamports, err := parseLamports(s)
		if err != nil {
			return nil, err
		}
		filters = append(filters, &pb.SubscribeRequestFilterAccountsFilter{Filter: &pb.AccountsFilterLamports{Lamports: lamports}})
	}

	return &pb.SubscribeRequestFilterAccounts{
		Account:              addresses,
		Owner:                opts.Owners,
		Filters:              filters,
		NonemptyTxnSignature: opts.NonemptyTxnSignature,
	}, nil
}

func buildTransactions(name string, opts *TransactionsOptions) (*pb.SubscribeRequestFilterTransactions, error) {
	if opts.Signature != nil {
		if err := validateBase58(name+"-signature", *opts.Signature, signatureLen); err != nil {
			return nil, err
		}
	}
	for suffix, addrs := range map[string][]string{
		"-account-include":  opts.AccountInclude,
		"-account-exclude":  opts.AccountExclude,
		"-account-required": opts.AccountRequired,
	} {
		if err := validateAddresses(name+suffix, addrs); err != nil {
			return nil, err
		}
	}

	return &pb.SubscribeRequestFilterTransactions{
		Vote:            opts.Vote,
		Failed:          opts.Failed,
		Signature:       opts.Signature,
		AccountInclude:  opts.AccountInclude,
		AccountExclude:  opts.AccountExclude,
		AccountRequired: opts.AccountRequired,
	}, nil
}

// parseMemcmp parses "offset,data" where data is base58 text
func parseMemcmp(s string) (*pb.SubscribeRequestFilterAccountsFilterMemcmp, error) {
	offsetStr, data, ok := strings.Cut(s, ",")
	if !ok {
		return nil, types.NewValidationError("memcmp", fmt.Errorf("invalid memcmp %q, expected offset,data", s))
	}
	offset, err := strconv.ParseUint(offsetStr, 10, 64)
	if err != nil {
		return nil, types.NewValidationError("memcmp", fmt.Errorf("invalid offset %q in memcmp %q", offsetStr, s))
	}
	data = strings.TrimSpace(data)
	if _, err = base58.Decode(data); err != nil {
		return nil, types.NewValidationError("memcmp", fmt.Errorf("invalid base58 data %q in memcmp %q", data, s))
	}
	return &pb.SubscribeRequestFilterAccountsFilterMemcmp{
		Offset:   offset,
		Encoding: pb.MemcmpEncodingBase58,
		Data:     []byte(data),
	}, nil
}

// parseLamports parses "cmp:value" with cmp one of eq, ne, lt, gt
func parseLamports(s string) (*pb.SubscribeRequestFilterAccountsFilterLamports, error) {
	cmp, valueStr, ok := strings.Cut(s, ":")
	if !ok {
		return nil, types.NewValidationError("lamports", fmt.Errorf("invalid lamports %q, expected cmp:value", s))
	}
	value, err := strconv.ParseUint(valueStr, 10, 64)
	if err != nil {
		return nil, types.NewValidationError("lamports", fmt.Errorf("invalid lamports value: %s", valueStr))
	}
	op, ok := lamportsOps[cmp]
	if !ok {
		return nil, types.NewValidationError("lamports", fmt.Errorf("invalid lamports filter: %s", cmp))
	}
	return &pb.SubscribeRequestFilterAccountsFilterLamports{Op: op, Value: value}, nil
}

// parseDataSlice parses "offset,length"
func parseDataSlice(s string) (*pb.SubscribeRequestAccountsDataSlice, error) {
	offsetStr, lengthStr, ok := strings.Cut(s, ",")
	if !ok {
		return nil, types.NewValidationError("data-slice", fmt.Errorf("invalid data_slice %q, expected offset,length", s))
	}
	offset, errOffset := strconv.ParseUint(offsetStr, 10, 64)
	length, errLength := strconv.ParseUint(lengthStr, 10, 64)
	if errOffset != nil || errLength != nil {
		return nil, types.NewValidationError("data-slice", fmt.Errorf("invalid data_slice %q", s))
	}
	return &pb.SubscribeRequestAccountsDataSlice{Offset: offset, Length: length}, nil
}

func readAddressFile(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, types.NewValidationError("accounts-account-path", err)
	}
	var addresses []string
	if err = json.Unmarshal(content, &addresses); err != nil {
		return nil, types.NewValidationError("accounts-account-path", fmt.Errorf("%s is not a JSON array of addresses: %w", path, err))
	}
	return addresses, nil
}

func validateAddresses(name string, addrs []string) error {
	for _, addr := range addrs {
		if err := validateBase58(name, addr, pubkeyLen); err != nil {
			return err
		}
	}
	return nil
}

func validateBase58(name, s string, size int) error {
	decoded, err := base58.Decode(s)
	if err != nil {
		return types.NewValidationError(name, fmt.Errorf("%q is not base58: %w", s, err))
	}
	if len(decoded) != size {
		return types.NewValidationError(name, fmt.Errorf("%q decodes to %d bytes, expected %d", s, len(decoded), size))
	}
	return nil
}

// ValidateBlockhash checks that s is a base58 encoded 32 byte hash
func ValidateBlockhash(s string) error {
	return validateBase58("blockhash", s, pubkeyLen)
}
