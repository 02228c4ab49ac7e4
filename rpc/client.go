package rpc

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"

	"github.com/bloXroute-Labs/geyser-client/config"
	log "github.com/bloXroute-Labs/geyser-client/logger"
	pb "github.com/bloXroute-Labs/geyser-client/protobuf"
	"github.com/bloXroute-Labs/geyser-client/types"
	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
)

// GeyserService is the full name of the Geyser gRPC service
const GeyserService = "geyser.Geyser"

// SubscribeMethod is the bidirectional streaming method updates are received on
const SubscribeMethod = "/" + GeyserService + "/Subscribe"

var subscribeStreamDesc = grpc.StreamDesc{
	StreamName:    "Subscribe",
	ServerStreams: true,
	ClientStreams: true,
}

//go:generate mockgen -destination ../test/mock/subscribe_client_mock.go -package mock . SubscribeClient

// SubscribeClient is the client side of a Subscribe stream
type SubscribeClient interface {
	Send(*pb.SubscribeRequest) error
	Recv() (*pb.SubscribeUpdate, error)
	CloseSend() error
}

// Client is a connection to a Geyser service
type Client struct {
	conn    *grpc.ClientConn
	health  grpc_health_v1.HealthClient
	grpcCfg *config.GRPC
}

// Target converts an endpoint to a dial target and reports whether TLS is used.
// Endpoints without a scheme are treated as https.
func Target(endpoint string) (target string, host string, secure bool, err error) {
	if !strings.Contains(endpoint, "://") {
		endpoint = "https://" + endpoint
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", "", false, types.NewValidationError("endpoint", err)
	}

	var defaultPort string
	switch u.Scheme {
	case "https":
		secure, defaultPort = true, "443"
	case "http":
		defaultPort = "80"
	default:
		return "", "", false, types.NewValidationError("endpoint", fmt.Errorf("unsupported scheme %q in %v", u.Scheme, endpoint))
	}

	host = u.Hostname()
	if host == "" {
		return "", "", false, types.NewValidationError("endpoint", fmt.Errorf("no host in %v", endpoint))
	}
	port := u.Port()
	if port == "" {
		port = defaultPort
	}
	return "passthrough:///" + net.JoinHostPort(host, port), host, secure, nil
}

// DialOptions builds the dial options described by the configuration
func DialOptions(grpcConfig *config.GRPC) (string, []grpc.DialOption, error) {
	target, host, secure, err := Target(grpcConfig.Endpoint)
	if err != nil {
		return "", nil, err
	}

	var opts []grpc.DialOption
	if secure {
		roots, err := x509.SystemCertPool()
		if err != nil {
			roots = x509.NewCertPool()
		}
		if len(grpcConfig.CACertificate) > 0 && !roots.AppendCertsFromPEM(grpcConfig.CACertificate) {
			return "", nil, types.NewValidationError("ca-certificate", errors.New("no certificate found in PEM data"))
		}
		opts = append(opts, grpc.WithTransportCredentials(credentials.NewTLS(&tls.Config{
			RootCAs:    roots,
			ServerName: host,
			MinVersion: tls.VersionTLS12,
		})))
	} else {
		opts = append(opts, grpc.WithTransportCredentials(insecure.NewCredentials()))
	}

	opts = append(opts, NewXTokenCredentials(grpcConfig.XToken)...)

	if grpcConfig.KeepAliveInterval > 0 {
		opts = append(opts, grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                grpcConfig.KeepAliveInterval,
			Timeout:             grpcConfig.KeepAliveTimeout,
			PermitWithoutStream: grpcConfig.KeepAliveWhileIdle,
		}))
	}
	if grpcConfig.InitialConnWindowSize > 0 {
		opts = append(opts, grpc.WithInitialConnWindowSize(grpcConfig.InitialConnWindowSize))
	}
	if grpcConfig.InitialStreamWindowSize > 0 {
		opts = append(opts, grpc.WithInitialWindowSize(grpcConfig.InitialStreamWindowSize))
	}

	callOpts := []grpc.CallOption{grpc.ForceCodec(pb.Codec{})}
	if grpcConfig.MaxDecodingMessageSize > 0 {
		callOpts = append(callOpts, grpc.MaxCallRecvMsgSize(grpcConfig.MaxDecodingMessageSize))
	}
	if grpcConfig.Compression != config.CompressionNone {
		callOpts = append(callOpts, grpc.UseCompressor(grpcConfig.Compression))
	}
	opts = append(opts, grpc.WithDefaultCallOptions(callOpts...))

	return target, opts, nil
}

// Dial connects to the Geyser service and waits until the connection is ready.
// extra options are applied after the configured ones.
func Dial(ctx context.Context, grpcConfig *config.GRPC, extra ...grpc.DialOption) (*Client, error) {
	target, opts, err := DialOptions(grpcConfig)
	if err != nil {
		return nil, err
	}

	conn, err := grpc.NewClient(target, append(opts, extra...)...)
	if err != nil {
		return nil, types.NewValidationError("dial", err)
	}

	if err = waitForReady(ctx, conn, grpcConfig); err != nil {
		_ = conn.Close()
		return nil, err
	}

	log.Debugf("connected to %v", grpcConfig.Endpoint)
	return &Client{
		conn:    conn,
		health:  grpc_health_v1.NewHealthClient(conn),
		grpcCfg: grpcConfig,
	}, nil
}

func waitForReady(ctx context.Context, conn *grpc.ClientConn, grpcConfig *config.GRPC) error {
	if grpcConfig.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, grpcConfig.ConnectTimeout)
		defer cancel()
	}

	conn.Connect()
	for {
		state := conn.GetState()
		switch state {
		case connectivity.Ready:
			return nil
		case connectivity.TransientFailure, connectivity.Shutdown:
			return types.NewTransportError("connect", fmt.Errorf("connection to %v is %v", grpcConfig.Endpoint, state))
		}
		if !conn.WaitForStateChange(ctx, state) {
			return types.NewTransportError("connect", fmt.Errorf("connection to %v not ready: %w", grpcConfig.Endpoint, ctx.Err()))
		}
	}
}

// Close closes the underlying connection
func (c *Client) Close() error {
	return c.conn.Close()
}

// Subscribe opens a bidirectional Subscribe stream bound to ctx
func (c *Client) Subscribe(ctx context.Context) (SubscribeClient, error) {
	stream, err := c.conn.NewStream(ctx, &subscribeStreamDesc, SubscribeMethod)
	if err != nil {
		return nil, types.NewTransportError("subscribe", err)
	}
	return &subscribeClient{ClientStream: stream}, nil
}

type subscribeClient struct {
	grpc.ClientStream
}

func (x *subscribeClient) Send(m *pb.SubscribeRequest) error {
	return x.ClientStream.SendMsg(m)
}

func (x *subscribeClient) Recv() (*pb.SubscribeUpdate, error) {
	m := new(pb.SubscribeUpdate)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *Client) invoke(ctx context.Context, method string, req, resp pb.Message) error {
	if c.grpcCfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.grpcCfg.Timeout)
		defer cancel()
	}
	if err := c.conn.Invoke(ctx, "/"+GeyserService+"/"+method, req, resp); err != nil {
		return types.NewTransportError(method, err)
	}
	return nil
}

// Ping asks the service to echo count
func (c *Client) Ping(ctx context.Context, count int32) (*pb.PongResponse, error) {
	resp := new(pb.PongResponse)
	return resp, c.invoke(ctx, "Ping", &pb.PingRequest{Count: count}, resp)
}

// GetLatestBlockhash returns the latest blockhash at the given commitment
func (c *Client) GetLatestBlockhash(ctx context.Context, commitment *pb.CommitmentLevel) (*pb.GetLatestBlockhashResponse, error) {
	resp := new(pb.GetLatestBlockhashResponse)
	return resp, c.invoke(ctx, "GetLatestBlockhash", &pb.GetLatestBlockhashRequest{Commitment: commitment}, resp)
}

// GetBlockHeight returns the block height at the given commitment
func (c *Client) GetBlockHeight(ctx context.Context, commitment *pb.CommitmentLevel) (*pb.GetBlockHeightResponse, error) {
	resp := new(pb.GetBlockHeightResponse)
	return resp, c.invoke(ctx, "GetBlockHeight", &pb.GetBlockHeightRequest{Commitment: commitment}, resp)
}

// GetSlot returns the slot at the given commitment
func (c *Client) GetSlot(ctx context.Context, commitment *pb.CommitmentLevel) (*pb.GetSlotResponse, error) {
	resp := new(pb.GetSlotResponse)
	return resp, c.invoke(ctx, "GetSlot", &pb.GetSlotRequest{Commitment: commitment}, resp)
}

// IsBlockhashValid checks whether blockhash can still be used by transactions
func (c *Client) IsBlockhashValid(ctx context.Context, blockhash string, commitment *pb.CommitmentLevel) (*pb.IsBlockhashValidResponse, error) {
	resp := new(pb.IsBlockhashValidResponse)
	return resp, c.invoke(ctx, "IsBlockhashValid", &pb.IsBlockhashValidRequest{Blockhash: blockhash, Commitment: commitment}, resp)
}

// GetVersion returns the version of the service
func (c *Client) GetVersion(ctx context.Context) (*pb.GetVersionResponse, error) {
	resp := new(pb.GetVersionResponse)
	return resp, c.invoke(ctx, "GetVersion", &pb.GetVersionRequest{}, resp)
}

// SubscribeReplayInfo returns the first slot updates can be replayed from
func (c *Client) SubscribeReplayInfo(ctx context.Context) (*pb.SubscribeReplayInfoResponse, error) {
	resp := new(pb.SubscribeReplayInfoResponse)
	return resp, c.invoke(ctx, "SubscribeReplayInfo", &pb.SubscribeReplayInfoRequest{}, resp)
}

// HealthCheck queries the standard health service for the Geyser service
func (c *Client) HealthCheck(ctx context.Context) (*grpc_health_v1.HealthCheckResponse, error) {
	if c.grpcCfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.grpcCfg.Timeout)
		defer cancel()
	}
	resp, err := c.health.Check(ctx, &grpc_health_v1.HealthCheckRequest{Service: GeyserService})
	if err != nil {
		return nil, types.NewTransportError("health check", err)
	}
	return resp, nil
}

// HealthWatch streams health status changes of the Geyser service
func (c *Client) HealthWatch(ctx context.Context) (grpc_health_v1.Health_WatchClient, error) {
	stream, err := c.health.Watch(ctx, &grpc_health_v1.HealthCheckRequest{Service: GeyserService})
	if err != nil {
		return nil, types.NewTransportError("health watch", err)
	}
	return stream, nil
}
