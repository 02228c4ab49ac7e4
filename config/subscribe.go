package config

import (
	"github.com/bloXroute-Labs/geyser-client/filter"
	"github.com/bloXroute-Labs/geyser-client/utils"
	"github.com/bloXroute-Labs/geyser-client/utils/ptr"
	"github.com/urfave/cli/v2"
)

// Subscribe represents the settings of the subscribe command
type Subscribe struct {
	Options   filter.Options
	Resub     uint
	Stats     bool
	Verify    bool
	VerifyDir string
}

// NewSubscribeFromCLI builds subscribe configuration from the CLI context.
// The commitment comes from the global configuration.
func NewSubscribeFromCLI(ctx *cli.Context, grpcConfig *GRPC) *Subscribe {
	sub := &Subscribe{
		Resub:     ctx.Uint(utils.ResubFlag.Name),
		Verify:    ctx.Bool(utils.VerifyEncodingFlag.Name),
		VerifyDir: ctx.Path(utils.VerifyDirFlag.Name),
	}
	sub.Stats = ctx.Bool(utils.StatsFlag.Name) || sub.Verify

	opts := &sub.Options
	opts.Accounts = filter.AccountsOptions{
		Enabled:              ctx.Bool(utils.AccountsFlag.Name),
		Addresses:            ctx.StringSlice(utils.AccountsAccountFlag.Name),
		AddressFile:          ctx.Path(utils.AccountsAccountPathFlag.Name),
		Owners:               ctx.StringSlice(utils.AccountsOwnerFlag.Name),
		Memcmp:               ctx.StringSlice(utils.AccountsMemcmpFlag.Name),
		Datasize:             optUint64(ctx, utils.AccountsDatasizeFlag),
		TokenAccountState:    ctx.Bool(utils.AccountsTokenAccountStateFlag.Name),
		Lamports:             ctx.StringSlice(utils.AccountsLamportsFlag.Name),
		NonemptyTxnSignature: optBool(ctx, utils.AccountsNonemptyTxnSignatureFlag),
		DataSlice:            ctx.StringSlice(utils.AccountsDataSliceFlag.Name),
	}
	opts.Slots = filter.SlotsOptions{
		Enabled:            ctx.Bool(utils.SlotsFlag.Name),
		FilterByCommitment: optBool(ctx, utils.SlotsFilterByCommitmentFlag),
		InterslotUpdates:   optBool(ctx, utils.SlotsInterslotUpdatesFlag),
	}
	opts.Transactions = filter.TransactionsOptions{
		Enabled:         ctx.Bool(utils.TransactionsFlag.Name),
		Vote:            optBool(ctx, utils.TransactionsVoteFlag),
		Failed:          optBool(ctx, utils.TransactionsFailedFlag),
		Signature:       optString(ctx, utils.TransactionsSignatureFlag),
		AccountInclude:  ctx.StringSlice(utils.TransactionsAccountIncludeFlag.Name),
		AccountExclude:  ctx.StringSlice(utils.TransactionsAccountExcludeFlag.Name),
		AccountRequired: ctx.StringSlice(utils.TransactionsAccountRequiredFlag.Name),
	}
	opts.TransactionsStatus = filter.TransactionsOptions{
		Enabled:         ctx.Bool(utils.TransactionsStatusFlag.Name),
		Vote:            optBool(ctx, utils.TransactionsStatusVoteFlag),
		Failed:          optBool(ctx, utils.TransactionsStatusFailedFlag),
		Signature:       optString(ctx, utils.TransactionsStatusSignatureFlag),
		AccountInclude:  ctx.StringSlice(utils.TransactionsStatusAccountIncludeFlag.Name),
		AccountExclude:  ctx.StringSlice(utils.TransactionsStatusAccountExcludeFlag.Name),
		AccountRequired: ctx.StringSlice(utils.TransactionsStatusAccountRequiredFlag.Name),
	}
	opts.Entries = ctx.Bool(utils.EntriesFlag.Name)
	opts.Blocks = filter.BlocksOptions{
		Enabled:             ctx.Bool(utils.BlocksFlag.Name),
		AccountInclude:      ctx.StringSlice(utils.BlocksAccountIncludeFlag.Name),
		IncludeTransactions: optBool(ctx, utils.BlocksIncludeTransactionsFlag),
		IncludeAccounts:     optBool(ctx, utils.BlocksIncludeAccountsFlag),
		IncludeEntries:      optBool(ctx, utils.BlocksIncludeEntriesFlag),
	}
	opts.BlocksMeta = ctx.Bool(utils.BlocksMetaFlag.Name)

	opts.Commitment = ptr.New(grpcConfig.Commitment)
	opts.FromSlot = optUint64(ctx, utils.FromSlotFlag)
	if ctx.IsSet(utils.PingFlag.Name) {
		opts.Ping = ptr.New(int32(ctx.Int(utils.PingFlag.Name)))
	}

	return sub
}

func optBool(ctx *cli.Context, flag *cli.BoolFlag) *bool {
	if !ctx.IsSet(flag.Name) {
		return nil
	}
	return ptr.New(ctx.Bool(flag.Name))
}

func optString(ctx *cli.Context, flag *cli.StringFlag) *string {
	if !ctx.IsSet(flag.Name) {
		return nil
	}
	return ptr.New(ctx.String(flag.Name))
}

func optUint64(ctx *cli.Context, flag *cli.Uint64Flag) *uint64 {
	if !ctx.IsSet(flag.Name) {
		return nil
	}
	return ptr.New(ctx.Uint64(flag.Name))
}
