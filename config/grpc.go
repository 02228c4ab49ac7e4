package config

import (
	"fmt"
	"os"
	"time"

	pb "github.com/bloXroute-Labs/geyser-client/protobuf"
	"github.com/bloXroute-Labs/geyser-client/types"
	"github.com/bloXroute-Labs/geyser-client/utils"
	"github.com/urfave/cli/v2"
)

// Compression names accepted by --compression
const (
	CompressionNone = ""
	CompressionGzip = "gzip"
	CompressionZstd = "zstd"
)

// GRPC represents the connection settings of the Geyser client
type GRPC struct {
	Endpoint      string
	XToken        string
	CACertificate []byte

	ConnectTimeout time.Duration
	Timeout        time.Duration

	KeepAliveInterval  time.Duration
	KeepAliveTimeout   time.Duration
	KeepAliveWhileIdle bool

	InitialConnWindowSize   int32
	InitialStreamWindowSize int32
	MaxDecodingMessageSize  int

	Compression string
	Commitment  pb.CommitmentLevel

	BackoffInitial time.Duration
	BackoffMax     time.Duration
}

// NewGRPCFromCLI builds GRPC configuration from the CLI context
func NewGRPCFromCLI(ctx *cli.Context) (*GRPC, error) {
	commitment, err := pb.ParseCommitmentLevel(ctx.String(utils.CommitmentFlag.Name))
	if err != nil {
		return nil, types.NewValidationError("commitment", err)
	}

	compression := ctx.String(utils.CompressionFlag.Name)
	switch compression {
	case CompressionNone, CompressionGzip, CompressionZstd:
	default:
		return nil, types.NewValidationError("compression", fmt.Errorf("unsupported compression %q", compression))
	}

	grpcConfig := GRPC{
		Endpoint:                ctx.String(utils.EndpointFlag.Name),
		XToken:                  ctx.String(utils.XTokenFlag.Name),
		ConnectTimeout:          time.Duration(ctx.Int64(utils.ConnectTimeoutFlag.Name)) * time.Millisecond,
		Timeout:                 time.Duration(ctx.Int64(utils.TimeoutFlag.Name)) * time.Millisecond,
		KeepAliveInterval:       time.Duration(ctx.Int64(utils.KeepAliveIntervalFlag.Name)) * time.Millisecond,
		KeepAliveTimeout:        time.Duration(ctx.Int64(utils.KeepAliveTimeoutFlag.Name)) * time.Millisecond,
		KeepAliveWhileIdle:      ctx.Bool(utils.KeepAliveWhileIdleFlag.Name),
		InitialConnWindowSize:   int32(ctx.Int(utils.InitialConnWindowSizeFlag.Name)),
		InitialStreamWindowSize: int32(ctx.Int(utils.InitialStreamWindowSizeFlag.Name)),
		MaxDecodingMessageSize:  ctx.Int(utils.MaxDecodingMessageSizeFlag.Name),
		Compression:             compression,
		Commitment:              commitment,
		BackoffInitial:          time.Duration(ctx.Int64(utils.BackoffInitialFlag.Name)) * time.Millisecond,
		BackoffMax:              time.Duration(ctx.Int64(utils.BackoffMaxFlag.Name)) * time.Millisecond,
	}

	if path := ctx.Path(utils.CACertificateFlag.Name); path != "" {
		grpcConfig.CACertificate, err = os.ReadFile(path)
		if err != nil {
			return nil, types.NewValidationError("ca-certificate", err)
		}
	}

	return &grpcConfig, nil
}
