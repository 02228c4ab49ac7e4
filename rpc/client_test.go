package rpc_test

import (
	"context"
	"errors"
	"testing"
	"time"

	geyserclient "github.com/bloXroute-Labs/geyser-client"
	"github.com/bloXroute-Labs/geyser-client/config"
	pb "github.com/bloXroute-Labs/geyser-client/protobuf"
	"github.com/bloXroute-Labs/geyser-client/rpc"
	"github.com/bloXroute-Labs/geyser-client/test/bxmock"
	"github.com/bloXroute-Labs/geyser-client/types"
	"github.com/bloXroute-Labs/geyser-client/utils/ptr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

const testToken = "secret-token"

func testConfig(token string) *config.GRPC {
	return &config.GRPC{
		Endpoint:               "http://bufnet",
		XToken:                 token,
		ConnectTimeout:         5 * time.Second,
		Timeout:                5 * time.Second,
		MaxDecodingMessageSize: geyserclient.MaxDecodingMessageSize,
	}
}

func startServer(t *testing.T) *bxmock.MockGeyserServer {
	server := bxmock.NewMockGeyserServer(testToken)
	server.Start()
	t.Cleanup(server.Stop)
	return server
}

func dial(t *testing.T, server *bxmock.MockGeyserServer, cfg *config.GRPC) *rpc.Client {
	client, err := rpc.Dial(context.Background(), cfg, server.DialOption())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestTarget(t *testing.T) {
	tests := []struct {
		endpoint string
		target   string
		host     string
		secure   bool
	}{
		{"https://solana-rpc.parafi.tech:10443", "passthrough:///solana-rpc.parafi.tech:10443", "solana-rpc.parafi.tech", true},
		{"https://example.com", "passthrough:///example.com:443", "example.com", true},
		{"http://127.0.0.1:10000", "passthrough:///127.0.0.1:10000", "127.0.0.1", false},
		{"http://localhost", "passthrough:///localhost:80", "localhost", false},
		{"example.com:10443", "passthrough:///example.com:10443", "example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.endpoint, func(t *testing.T) {
			target, host, secure, err := rpc.Target(tt.endpoint)
			require.NoError(t, err)
			assert.Equal(t, tt.target, target)
			assert.Equal(t, tt.host, host)
			assert.Equal(t, tt.secure, secure)
		})
	}
}

func TestTarget_Invalid(t *testing.T) {
	for _, endpoint := range []string{"ftp://example.com", "https://", "http://:80"} {
		_, _, _, err := rpc.Target(endpoint)
		require.Error(t, err, endpoint)
		assert.Equal(t, types.ErrorTypeValidation, types.ErrorTypeOf(err), endpoint)
	}
}

func TestDialOptions_InvalidCACertificate(t *testing.T) {
	cfg := testConfig(testToken)
	cfg.Endpoint = "https://example.com"
	cfg.CACertificate = []byte("not a pem")

	_, _, err := rpc.DialOptions(cfg)
	require.Error(t, err)
	assert.True(t, types.IsPermanent(err))
}

func TestClient_OneShotCalls(t *testing.T) {
	server := startServer(t)
	client := dial(t, server, testConfig(testToken))
	ctx := context.Background()
	commitment := ptr.New(pb.CommitmentLevelConfirmed)

	pong, err := client.Ping(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int32(7), pong.Count)

	blockhash, err := client.GetLatestBlockhash(ctx, commitment)
	require.NoError(t, err)
	assert.Equal(t, bxmock.MockBlockhash, blockhash.Blockhash)
	assert.Equal(t, bxmock.MockSlot, blockhash.Slot)

	height, err := client.GetBlockHeight(ctx, commitment)
	require.NoError(t, err)
	assert.Equal(t, bxmock.MockBlockHeight, height.BlockHeight)

	slot, err := client.GetSlot(ctx, commitment)
	require.NoError(t, err)
	assert.Equal(t, bxmock.MockSlot, slot.Slot)

	valid, err := client.IsBlockhashValid(ctx, bxmock.MockBlockhash, commitment)
	require.NoError(t, err)
	assert.True(t, valid.Valid)

	valid, err = client.IsBlockhashValid(ctx, "11111111111111111111111111111111", commitment)
	require.NoError(t, err)
	assert.False(t, valid.Valid)

	ver, err := client.GetVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, bxmock.MockVersion, ver.Version)

	replay, err := client.SubscribeReplayInfo(ctx)
	require.NoError(t, err)
	require.NotNil(t, replay.FirstAvailable)
	assert.Equal(t, bxmock.MockSlot, *replay.FirstAvailable)
}

func TestClient_Health(t *testing.T) {
	server := startServer(t)
	client := dial(t, server, testConfig(testToken))

	resp, err := client.HealthCheck(context.Background())
	require.NoError(t, err)
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_SERVING, resp.Status)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	watch, err := client.HealthWatch(ctx)
	require.NoError(t, err)

	msg, err := watch.Recv()
	require.NoError(t, err)
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_SERVING, msg.Status)

	server.SetServingStatus(grpc_health_v1.HealthCheckResponse_NOT_SERVING)
	msg, err = watch.Recv()
	require.NoError(t, err)
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_NOT_SERVING, msg.Status)
}

func TestClient_WrongToken(t *testing.T) {
	server := startServer(t)
	client := dial(t, server, testConfig("wrong"))

	_, err := client.GetSlot(context.Background(), nil)
	require.Error(t, err)
	assert.Equal(t, types.ErrorTypeTransport, types.ErrorTypeOf(err))
	assert.Equal(t, codes.Unauthenticated, status.Code(errors.Unwrap(err)))
}

func TestClient_Subscribe(t *testing.T) {
	server := startServer(t)
	server.Updates = []*pb.SubscribeUpdate{
		bxmock.NewSlotUpdate(100, pb.SlotStatusConfirmed),
		bxmock.NewPingUpdate(),
	}
	client := dial(t, server, testConfig(testToken))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	stream, err := client.Subscribe(ctx)
	require.NoError(t, err)

	req := &pb.SubscribeRequest{
		Slots:      map[string]*pb.SubscribeRequestFilterSlots{geyserclient.FilterLabel: {}},
		Commitment: ptr.New(pb.CommitmentLevelConfirmed),
	}
	require.NoError(t, stream.Send(req))

	update, err := stream.Recv()
	require.NoError(t, err)
	slot, ok := update.UpdateOneof.(*pb.SubscribeUpdateSlot)
	require.True(t, ok)
	assert.Equal(t, uint64(100), slot.Slot)
	assert.Equal(t, pb.Marshal(update), update.WireBytes())

	update, err = stream.Recv()
	require.NoError(t, err)
	assert.IsType(t, &pb.SubscribeUpdatePing{}, update.UpdateOneof)

	require.NoError(t, stream.CloseSend())
	require.Eventually(t, func() bool { return len(server.Requests()) == 1 }, time.Second, 10*time.Millisecond)
	assert.Equal(t, pb.Marshal(req), pb.Marshal(server.Requests()[0]))
}

func TestClient_Compression(t *testing.T) {
	for _, compression := range []string{config.CompressionGzip, config.CompressionZstd} {
		t.Run(compression, func(t *testing.T) {
			server := startServer(t)
			cfg := testConfig(testToken)
			cfg.Compression = compression
			client := dial(t, server, cfg)

			pong, err := client.Ping(context.Background(), 3)
			require.NoError(t, err)
			assert.Equal(t, int32(3), pong.Count)
		})
	}
}

func TestDial_ConnectTimeout(t *testing.T) {
	cfg := testConfig(testToken)
	cfg.Endpoint = "http://127.0.0.1:1"
	cfg.ConnectTimeout = 200 * time.Millisecond

	_, err := rpc.Dial(context.Background(), cfg)
	require.Error(t, err)
	assert.Equal(t, types.ErrorTypeTransport, types.ErrorTypeOf(err))
}

func TestDial_TLSWithCACertificate(t *testing.T) {
	cert, err := bxmock.NewTLSCertificate("bufnet")
	require.NoError(t, err)

	server := bxmock.NewMockGeyserServer(testToken)
	server.StartTLS(cert.Certificate)
	t.Cleanup(server.Stop)

	cfg := testConfig(testToken)
	cfg.Endpoint = "https://bufnet"
	cfg.CACertificate = cert.PEM

	client := dial(t, server, cfg)
	resp, err := client.GetSlot(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, bxmock.MockSlot, resp.Slot)
}

func TestDial_TLSUntrustedCertificate(t *testing.T) {
	cert, err := bxmock.NewTLSCertificate("bufnet")
	require.NoError(t, err)

	server := bxmock.NewMockGeyserServer(testToken)
	server.StartTLS(cert.Certificate)
	t.Cleanup(server.Stop)

	cfg := testConfig(testToken)
	cfg.Endpoint = "https://bufnet"
	cfg.ConnectTimeout = time.Second

	_, err = rpc.Dial(context.Background(), cfg, server.DialOption())
	require.Error(t, err)
	assert.Equal(t, types.ErrorTypeTransport, types.ErrorTypeOf(err))
}

func TestClient_ConcurrentCalls(t *testing.T) {
	server := startServer(t)
	client := dial(t, server, testConfig(testToken))

	g, ctx := errgroup.WithContext(context.Background())
	for i := int32(1); i <= 8; i++ {
		count := i
		g.Go(func() error {
			resp, err := client.Ping(ctx, count)
			if err != nil {
				return err
			}
			if resp.Count != count {
				return errors.New("ping answered with another count")
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
