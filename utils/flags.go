package utils

import (
	geyserclient "github.com/bloXroute-Labs/geyser-client"
	"github.com/urfave/cli/v2"
)

// CLI flag variable definitions
var (
	EndpointFlag = &cli.StringFlag{
		Name:    "endpoint",
		Usage:   "Geyser service endpoint, http:// endpoints are dialed without TLS",
		Aliases: []string{"e"},
		Value:   geyserclient.DefaultEndpoint,
	}
	XTokenFlag = &cli.StringFlag{
		Name:    "x-token",
		Usage:   "access token sent as x-token metadata with every call",
		EnvVars: []string{"GEYSER_X_TOKEN"},
		Value:   geyserclient.DefaultXToken,
	}
	CACertificateFlag = &cli.PathFlag{
		Name:  "ca-certificate",
		Usage: "path of a PEM certificate authority file trusted in addition to the system roots",
	}
	ConnectTimeoutFlag = &cli.Int64Flag{
		Name:  "connect-timeout-ms",
		Usage: "timeout for establishing the connection",
		Value: geyserclient.DefaultConnectTimeout.Milliseconds(),
	}
	TimeoutFlag = &cli.Int64Flag{
		Name:  "timeout-ms",
		Usage: "timeout applied to each one-shot request",
		Value: geyserclient.DefaultRequestTimeout.Milliseconds(),
	}
	KeepAliveIntervalFlag = &cli.Int64Flag{
		Name:  "http2-keep-alive-interval-ms",
		Usage: "interval of http2 keepalive pings, 0 disables them",
	}
	KeepAliveTimeoutFlag = &cli.Int64Flag{
		Name:  "keep-alive-timeout-ms",
		Usage: "time to wait for a keepalive ack before closing the connection",
		Value: 20000,
	}
	KeepAliveWhileIdleFlag = &cli.BoolFlag{
		Name:  "keep-alive-while-idle",
		Usage: "send keepalive pings without active streams",
	}
	InitialConnWindowSizeFlag = &cli.IntFlag{
		Name:  "initial-connection-window-size",
		Usage: "connection level http2 flow control window, 0 keeps the default",
	}
	InitialStreamWindowSizeFlag = &cli.IntFlag{
		Name:  "initial-stream-window-size",
		Usage: "stream level http2 flow control window, 0 keeps the default",
	}
	MaxDecodingMessageSizeFlag = &cli.IntFlag{
		Name:  "max-decoding-message-size",
		Usage: "max message size before decoding, full blocks can be super large",
		Value: geyserclient.MaxDecodingMessageSize,
	}
	CommitmentFlag = &cli.StringFlag{
		Name:  "commitment",
		Usage: "commitment level: processed, confirmed or finalized",
		Value: "processed",
	}
	CompressionFlag = &cli.StringFlag{
		Name:  "compression",
		Usage: "compression of the stream: gzip or zstd, none when omitted",
	}
	BackoffInitialFlag = &cli.Int64Flag{
		Name:  "backoff-initial-ms",
		Usage: "first reconnect delay",
		Value: geyserclient.BackoffInitialInterval.Milliseconds(),
	}
	BackoffMaxFlag = &cli.Int64Flag{
		Name:  "backoff-max-ms",
		Usage: "cap of a single reconnect delay",
		Value: geyserclient.BackoffMaxInterval.Milliseconds(),
	}
	LogLevelFlag = &cli.StringFlag{
		Name:  "log-level",
		Usage: "log level for stdout",
		Value: "info",
	}
	LogFileLevelFlag = &cli.StringFlag{
		Name:  "log-file-level",
		Usage: "log level for the log file",
		Value: "debug",
	}
	LogFileFlag = &cli.StringFlag{
		Name:  "log-file",
		Usage: "path of the log file, no file logging when omitted",
	}
	LogMaxSizeFlag = &cli.IntFlag{
		Name:  "log-max-size",
		Usage: "maximum size in megabytes of the log file before it gets rotated",
		Value: 100,
	}
	LogMaxBackupsFlag = &cli.IntFlag{
		Name:  "log-max-backups",
		Usage: "maximum number of old log files to retain",
		Value: 10,
	}
	LogMaxAgeFlag = &cli.IntFlag{
		Name:  "log-max-age",
		Usage: "maximum number of days to retain a log file",
		Value: 10,
	}
	FluentdHostFlag = &cli.StringFlag{
		Name:  "fluentd-host",
		Usage: "fluentd host, log records are also sent to it when set",
	}

	AccountsFlag = &cli.BoolFlag{
		Name:  "accounts",
		Usage: "subscribe on accounts updates",
	}
	AccountsNonemptyTxnSignatureFlag = &cli.BoolFlag{
		Name:  "accounts-nonempty-txn-signature",
		Usage: "filter by presence of field txn_signature",
	}
	AccountsAccountFlag = &cli.StringSliceFlag{
		Name:  "accounts-account",
		Usage: "filter by account pubkey",
	}
	AccountsAccountPathFlag = &cli.PathFlag{
		Name:  "accounts-account-path",
		Usage: "path to a JSON array of account addresses",
	}
	AccountsOwnerFlag = &cli.StringSliceFlag{
		Name:  "accounts-owner",
		Usage: "filter by owner pubkey",
	}
	AccountsMemcmpFlag = &cli.StringSliceFlag{
		Name:  "accounts-memcmp",
		Usage: "filter by offset and data, format: `offset,data in base58`",
	}
	AccountsDatasizeFlag = &cli.Uint64Flag{
		Name:  "accounts-datasize",
		Usage: "filter by data size",
	}
	AccountsTokenAccountStateFlag = &cli.BoolFlag{
		Name:  "accounts-token-account-state",
		Usage: "filter valid token accounts",
	}
	AccountsLamportsFlag = &cli.StringSliceFlag{
		Name:  "accounts-lamports",
		Usage: "filter by lamports, format: `eq:42` / `ne:42` / `lt:42` / `gt:42`",
	}
	AccountsDataSliceFlag = &cli.StringSliceFlag{
		Name:  "accounts-data-slice",
		Usage: "receive only part of updated data account, format: `offset,size`",
	}
	SlotsFlag = &cli.BoolFlag{
		Name:  "slots",
		Usage: "subscribe on slots updates",
	}
	SlotsFilterByCommitmentFlag = &cli.BoolFlag{
		Name:  "slots-filter-by-commitment",
		Usage: "filter slots by commitment",
	}
	SlotsInterslotUpdatesFlag = &cli.BoolFlag{
		Name:  "slots-interslot-updates",
		Usage: "subscribe on interslot slot updates",
	}
	TransactionsFlag = &cli.BoolFlag{
		Name:  "transactions",
		Usage: "subscribe on transactions updates",
	}
	TransactionsVoteFlag = &cli.BoolFlag{
		Name:  "transactions-vote",
		Usage: "filter vote transactions",
	}
	TransactionsFailedFlag = &cli.BoolFlag{
		Name:  "transactions-failed",
		Usage: "filter failed transactions",
	}
	TransactionsSignatureFlag = &cli.StringFlag{
		Name:  "transactions-signature",
		Usage: "filter by transaction signature",
	}
	TransactionsAccountIncludeFlag = &cli.StringSliceFlag{
		Name:  "transactions-account-include",
		Usage: "filter included account in transactions",
	}
	TransactionsAccountExcludeFlag = &cli.StringSliceFlag{
		Name:  "transactions-account-exclude",
		Usage: "filter excluded account in transactions",
	}
	TransactionsAccountRequiredFlag = &cli.StringSliceFlag{
		Name:  "transactions-account-required",
		Usage: "filter required account in transactions",
	}
	TransactionsStatusFlag = &cli.BoolFlag{
		Name:  "transactions-status",
		Usage: "subscribe on transactions_status updates",
	}
	TransactionsStatusVoteFlag = &cli.BoolFlag{
		Name:  "transactions-status-vote",
		Usage: "filter vote transactions for transactions_status",
	}
	TransactionsStatusFailedFlag = &cli.BoolFlag{
		Name:  "transactions-status-failed",
		Usage: "filter failed transactions for transactions_status",
	}
	TransactionsStatusSignatureFlag = &cli.StringFlag{
		Name:  "transactions-status-signature",
		Usage: "filter by transaction signature for transactions_status",
	}
	TransactionsStatusAccountIncludeFlag = &cli.StringSliceFlag{
		Name:  "transactions-status-account-include",
		Usage: "filter included account in transactions for transactions_status",
	}
	TransactionsStatusAccountExcludeFlag = &cli.StringSliceFlag{
		Name:  "transactions-status-account-exclude",
		Usage: "filter excluded account in transactions for transactions_status",
	}
	TransactionsStatusAccountRequiredFlag = &cli.StringSliceFlag{
		Name:  "transactions-status-account-required",
		Usage: "filter required account in transactions for transactions_status",
	}
	EntriesFlag = &cli.BoolFlag{
		Name:  "entries",
		Usage: "subscribe on entries updates",
	}
	BlocksFlag = &cli.BoolFlag{
		Name:  "blocks",
		Usage: "subscribe on block updates",
	}
	BlocksAccountIncludeFlag = &cli.StringSliceFlag{
		Name:  "blocks-account-include",
		Usage: "filter included account in transactions",
	}
	BlocksIncludeTransactionsFlag = &cli.BoolFlag{
		Name:  "blocks-include-transactions",
		Usage: "include transactions to block message",
	}
	BlocksIncludeAccountsFlag = &cli.BoolFlag{
		Name:  "blocks-include-accounts",
		Usage: "include accounts to block message",
	}
	BlocksIncludeEntriesFlag = &cli.BoolFlag{
		Name:  "blocks-include-entries",
		Usage: "include entries to block message",
	}
	BlocksMetaFlag = &cli.BoolFlag{
		Name:  "blocks-meta",
		Usage: "subscribe on block meta updates (without transactions)",
	}
	FromSlotFlag = &cli.Uint64Flag{
		Name:  "from-slot",
		Usage: "re-send messages from slot",
	}
	PingFlag = &cli.IntFlag{
		Name:  "ping",
		Usage: "send ping in subscribe request",
	}
	ResubFlag = &cli.UintFlag{
		Name:  "resub",
		Usage: "resubscribe (only to slots) after this many messages, 0 never",
	}
	StatsFlag = &cli.BoolFlag{
		Name:  "stats",
		Usage: "show total stat instead of messages",
	}
	VerifyEncodingFlag = &cli.BoolFlag{
		Name:  "verify-encoding",
		Usage: "re-encode every message with two encoders and report differences, implies --stats",
	}
	VerifyDirFlag = &cli.PathFlag{
		Name:  "verify-dir",
		Usage: "directory receiving messages whose encodings differ",
		Value: geyserclient.VerifyDir,
	}

	CountFlag = &cli.IntFlag{
		Name:    "count",
		Usage:   "ping count echoed by the server",
		Aliases: []string{"c"},
	}
	BlockhashFlag = &cli.StringFlag{
		Name:     "blockhash",
		Usage:    "blockhash to check",
		Aliases:  []string{"b"},
		Required: true,
	}
)

// SubscribeFlags are the flags of the subscribe command
var SubscribeFlags = []cli.Flag{
	AccountsFlag,
	AccountsNonemptyTxnSignatureFlag,
	AccountsAccountFlag,
	AccountsAccountPathFlag,
	AccountsOwnerFlag,
	AccountsMemcmpFlag,
	AccountsDatasizeFlag,
	AccountsTokenAccountStateFlag,
	AccountsLamportsFlag,
	AccountsDataSliceFlag,
	SlotsFlag,
	SlotsFilterByCommitmentFlag,
	SlotsInterslotUpdatesFlag,
	TransactionsFlag,
	TransactionsVoteFlag,
	TransactionsFailedFlag,
	TransactionsSignatureFlag,
	TransactionsAccountIncludeFlag,
	TransactionsAccountExcludeFlag,
	TransactionsAccountRequiredFlag,
	TransactionsStatusFlag,
	TransactionsStatusVoteFlag,
	TransactionsStatusFailedFlag,
	TransactionsStatusSignatureFlag,
	TransactionsStatusAccountIncludeFlag,
	TransactionsStatusAccountExcludeFlag,
	TransactionsStatusAccountRequiredFlag,
	EntriesFlag,
	BlocksFlag,
	BlocksAccountIncludeFlag,
	BlocksIncludeTransactionsFlag,
	BlocksIncludeAccountsFlag,
	BlocksIncludeEntriesFlag,
	BlocksMetaFlag,
	FromSlotFlag,
	PingFlag,
	ResubFlag,
	StatsFlag,
	VerifyEncodingFlag,
	VerifyDirFlag,
}

// GlobalFlags are accepted by every command
var GlobalFlags = []cli.Flag{
	EndpointFlag,
	XTokenFlag,
	CACertificateFlag,
	ConnectTimeoutFlag,
	TimeoutFlag,
	KeepAliveIntervalFlag,
	KeepAliveTimeoutFlag,
	KeepAliveWhileIdleFlag,
	InitialConnWindowSizeFlag,
	InitialStreamWindowSizeFlag,
	MaxDecodingMessageSizeFlag,
	CommitmentFlag,
	CompressionFlag,
	BackoffInitialFlag,
	BackoffMaxFlag,
	LogLevelFlag,
	LogFileLevelFlag,
	LogFileFlag,
	LogMaxSizeFlag,
	LogMaxBackupsFlag,
	LogMaxAgeFlag,
	FluentdHostFlag,
}
