package filter

import (
	"os"
	"path/filepath"
	"testing"

	pb "github.com/bloXroute-Labs/geyser-client/protobuf"
	"github.com/bloXroute-Labs/geyser-client/types"
	"github.com/bloXroute-Labs/geyser-client/utils/ptr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	wsol  = "So11111111111111111111111111111111111111112"
	token = "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"
)

func requireValidationError(t *testing.T, err error) {
	require.Error(t, err)
	assert.Equal(t, types.ErrorTypeValidation, types.ErrorTypeOf(err))
}

func TestBuild_Memcmp(t *testing.T) {
	req, err := Build(&Options{Accounts: AccountsOptions{Enabled: true, Memcmp: []string{"10,abc"}}})
	require.NoError(t, err)

	filters := req.Accounts["client"].Filters
	require.Len(t, filters, 1)
	memcmp, ok := filters[0].Filter.(*pb.AccountsFilterMemcmp)
	require.True(t, ok)
	assert.Equal(t, uint64(10), memcmp.Memcmp.Offset)
	assert.Equal(t, pb.MemcmpEncodingBase58, memcmp.Memcmp.Encoding)
	assert.Equal(t, "abc", string(memcmp.Memcmp.Data))
}

func TestBuild_MemcmpTrimsData(t *testing.T) {
	req, err := Build(&Options{Accounts: AccountsOptions{Enabled: true, Memcmp: []string{"0, abc "}}})
	require.NoError(t, err)
	memcmp := req.Accounts["client"].Filters[0].Filter.(*pb.AccountsFilterMemcmp)
	assert.Equal(t, "abc", string(memcmp.Memcmp.Data))
}

func TestBuild_MemcmpInvalid(t *testing.T) {
	for _, memcmp := range []string{"abc", "x,abc", "-1,abc", "10,0OIl"} {
		_, err := Build(&Options{Accounts: AccountsOptions{Enabled: true, Memcmp: []string{memcmp}}})
		requireValidationError(t, err)
		assert.Contains(t, err.Error(), "memcmp")
	}
}

func TestBuild_Lamports(t *testing.T) {
	req, err := Build(&Options{Accounts: AccountsOptions{Enabled: true, Lamports: []string{"gt:100", "eq:0"}}})
	require.NoError(t, err)

	filters := req.Accounts["client"].Filters
	require.Len(t, filters, 2)
	assert.Equal(t, &pb.SubscribeRequestFilterAccountsFilterLamports{Op: pb.LamportsOpGt, Value: 100}, filters[0].Filter.(*pb.AccountsFilterLamports).Lamports)
	assert.Equal(t, &pb.SubscribeRequestFilterAccountsFilterLamports{Op: pb.LamportsOpEq, Value: 0}, filters[1].Filter.(*pb.AccountsFilterLamports).Lamports)
}

func TestBuild_LamportsInvalid(t *testing.T) {
	tests := map[string]string{
		"foo:100":       "invalid lamports filter: foo",
		"gt:notanumber": "invalid lamports value: notanumber",
		"gt100":         "expected cmp:value",
	}
	for lamports, msg := range tests {
		_, err := Build(&Options{Accounts: AccountsOptions{Enabled: true, Lamports: []string{lamports}}})
		requireValidationError(t, err)
		assert.Contains(t, err.Error(), msg)
	}
}

func TestBuild_DataSlice(t *testing.T) {
	req, err := Build(&Options{Accounts: AccountsOptions{DataSlice: []string{"0,32", "64,8"}}})
	require.NoError(t, err)
	assert.Equal(t, []*pb.SubscribeRequestAccountsDataSlice{{Offset: 0, Length: 32}, {Offset: 64, Length: 8}}, req.AccountsDataSlice)

	for _, slice := range []string{"32", "a,1", "1,b"} {
		_, err = Build(&Options{Accounts: AccountsOptions{DataSlice: []string{slice}}})
		requireValidationError(t, err)
	}
}

func TestBuild_AccountsFilters(t *testing.T) {
	req, err := Build(&Options{Accounts: AccountsOptions{
		Enabled:              true,
		Addresses:            []string{wsol},
		Owners:               []string{token},
		Datasize:             ptr.New(uint64(165)),
		TokenAccountState:    true,
		NonemptyTxnSignature: ptr.New(true),
	}})
	require.NoError(t, err)

	accounts := req.Accounts["client"]
	assert.Equal(t, []string{wsol}, accounts.Account)
	assert.Equal(t, []string{token}, accounts.Owner)
	assert.Equal(t, ptr.New(true), accounts.NonemptyTxnSignature)
	require.Len(t, accounts.Filters, 2)
	assert.Equal(t, &pb.AccountsFilterDatasize{Datasize: 165}, accounts.Filters[0].Filter)
	assert.Equal(t, &pb.AccountsFilterTokenAccountState{TokenAccountState: true}, accounts.Filters[1].Filter)
}

func TestBuild_AddressFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.json")
	require.NoError(t, os.WriteFile(path, []byte(`["`+token+`"]`), 0o600))

	req, err := Build(&Options{Accounts: AccountsOptions{Enabled: true, Addresses: []string{wsol}, AddressFile: path}})
	require.NoError(t, err)
	assert.Equal(t, []string{wsol, token}, req.Accounts["client"].Account)

	require.NoError(t, os.WriteFile(path, []byte(`{"address":"`+token+`"}`), 0o600))
	_, err = Build(&Options{Accounts: AccountsOptions{Enabled: true, AddressFile: path}})
	requireValidationError(t, err)

	_, err = Build(&Options{Accounts: AccountsOptions{Enabled: true, AddressFile: filepath.Join(t.TempDir(), "missing.json")}})
	requireValidationError(t, err)
}

func TestBuild_InvalidAddresses(t *testing.T) {
	_, err := Build(&Options{Accounts: AccountsOptions{Enabled: true, Addresses: []string{"not-base58!"}}})
	requireValidationError(t, err)

	_, err = Build(&Options{Transactions: TransactionsOptions{Enabled: true, AccountInclude: []string{"abc"}}})
	requireValidationError(t, err)

	_, err = Build(&Options{TransactionsStatus: TransactionsOptions{Enabled: true, Signature: ptr.New(wsol)}})
	requireValidationError(t, err)
}

func TestBuild_DisabledCategoriesAreEmpty(t *testing.T) {
	commitment := pb.CommitmentLevelFinalized
	req, err := Build(&Options{
		Slots:      SlotsOptions{Enabled: true, InterslotUpdates: ptr.New(true)},
		BlocksMeta: true,
		Commitment: &commitment,
		FromSlot:   ptr.New(uint64(42)),
		Ping:       ptr.New(int32(7)),
	})
	require.NoError(t, err)

	assert.Equal(t, ptr.New(true), req.Slots["client"].InterslotUpdates)
	assert.Len(t, req.BlocksMeta, 1)
	assert.Empty(t, req.Accounts)
	assert.NotNil(t, req.Accounts)
	assert.Empty(t, req.Transactions)
	assert.Empty(t, req.TransactionsStatus)
	assert.Empty(t, req.Blocks)
	assert.Empty(t, req.Entry)
	assert.Equal(t, &commitment, req.Commitment)
	assert.Equal(t, ptr.New(uint64(42)), req.FromSlot)
	assert.Equal(t, &pb.SubscribeRequestPing{Id: 7}, req.Ping)
}

func TestBuild_Transactions(t *testing.T) {
	req, err := Build(&Options{
		Transactions: TransactionsOptions{Enabled: true, Vote: ptr.New(false), Failed: ptr.New(true), AccountRequired: []string{token}},
		Blocks:       BlocksOptions{Enabled: true, AccountInclude: []string{wsol}, IncludeTransactions: ptr.New(true)},
		Entries:      true,
	})
	require.NoError(t, err)

	tx := req.Transactions["client"]
	assert.Equal(t, ptr.New(false), tx.Vote)
	assert.Equal(t, ptr.New(true), tx.Failed)
	assert.Equal(t, []string{token}, tx.AccountRequired)
	assert.Equal(t, []string{wsol}, req.Blocks["client"].AccountInclude)
	assert.Len(t, req.Entry, 1)
}

func TestSlotsOnly(t *testing.T) {
	req := SlotsOnly()

	assert.Equal(t, map[string]*pb.SubscribeRequestFilterSlots{"client": {}}, req.Slots)
	assert.Empty(t, req.Accounts)
	assert.Empty(t, req.Transactions)
	assert.Empty(t, req.TransactionsStatus)
	assert.Empty(t, req.Blocks)
	assert.Empty(t, req.BlocksMeta)
	assert.Empty(t, req.Entry)
	assert.Empty(t, req.AccountsDataSlice)
	assert.Nil(t, req.Commitment)
	assert.Nil(t, req.Ping)
	assert.Nil(t, req.FromSlot)
}

func TestOptions_Empty(t *testing.T) {
	assert.True(t, (&Options{}).Empty())
	assert.False(t, (&Options{Entries: true}).Empty())
}

func TestValidateBlockhash(t *testing.T) {
	require.NoError(t, ValidateBlockhash("4sGjMW1sUnHzSxGspuhpqLDx6wiyjNtZAMdL4VZHirAn"))
	requireValidationError(t, ValidateBlockhash("0OIl"))
	requireValidationError(t, ValidateBlockhash("abc"))
}
