package geyserclient

import "time"

// DefaultEndpoint is the Geyser endpoint used when --endpoint is omitted
const DefaultEndpoint = "https://solana-rpc.parafi.tech:10443"

// DefaultXToken is the access token sent with every call when --x-token is omitted
const DefaultXToken = "10443"

// FilterLabel is the single key every filter map of a subscribe request is stored under
const FilterLabel = "client"

// PongID - id carried by the ping-ack sent in reply to a server ping
const PongID = int32(1)

// VerifyDir - directory receiving divergent encodings in verify mode
const VerifyDir = "grpc-client-verify"

// MaxDecodingMessageSize - default maximum size of a received message
const MaxDecodingMessageSize = 1024 * 1024 * 1024

// DefaultConnectTimeout - time allowed to establish the transport
const DefaultConnectTimeout = 10 * time.Second

// DefaultRequestTimeout - deadline applied to one-shot queries
const DefaultRequestTimeout = 10 * time.Second

// BackoffInitialInterval - first reconnect delay
const BackoffInitialInterval = 500 * time.Millisecond

// BackoffMultiplier - growth factor of consecutive reconnect delays
const BackoffMultiplier = 1.5

// BackoffMaxInterval - cap applied to a single reconnect delay
const BackoffMaxInterval = 60 * time.Second

// StatsRenderInterval - minimum time between two renders of the stats table
const StatsRenderInterval = time.Second

// MaxPrintedValueLen - strings longer than this are truncated by the update printer
const MaxPrintedValueLen = 100

// CloseLoggerKey - context key holding the function flushing the logger
const CloseLoggerKey = contextKey("closeLogger")

type contextKey string
