package bxmock

import (
	"context"
	"crypto/tls"
	"errors"
	"io"
	"net"
	"sync"

	pb "github.com/bloXroute-Labs/geyser-client/protobuf"
	"github.com/bloXroute-Labs/geyser-client/rpc"
	"github.com/bloXroute-Labs/geyser-client/utils/ptr"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

const bufSize = 1024 * 1024

// Values answered by the one-shot calls of MockGeyserServer
const (
	MockSlot        = uint64(250_000_000)
	MockBlockHeight = uint64(230_000_000)
	MockBlockhash   = "5eykt4UsFv8P8NJdTREpY1vzqKqZKvdpKuc147dw2N9d"
	MockVersion     = "{\"version\":\"mock\"}"
)

// MockGeyserServer is an in-process Geyser service listening on a bufconn listener
type MockGeyserServer struct {
	rpc.UnimplementedGeyserServer

	// XToken is required on every call when not empty
	XToken string
	// Updates are sent on each stream after the initial request was received
	Updates []*pb.SubscribeUpdate
	// OnSubscribe replaces the default stream handling when set
	OnSubscribe func(stream rpc.SubscribeServer) error

	listener *bufconn.Listener
	server   *grpc.Server
	health   *health.Server

	mu       sync.Mutex
	requests []*pb.SubscribeRequest
	streams  int
}

// NewMockGeyserServer creates a server requiring xToken, empty disables auth
func NewMockGeyserServer(xToken string) *MockGeyserServer {
	return &MockGeyserServer{XToken: xToken}
}

// Start begins serving plaintext in the background
func (s *MockGeyserServer) Start() {
	s.start()
}

// StartTLS begins serving in the background with cert as the server certificate
func (s *MockGeyserServer) StartTLS(cert tls.Certificate) {
	s.start(grpc.Creds(credentials.NewServerTLSFromCert(&cert)))
}

func (s *MockGeyserServer) start(extra ...grpc.ServerOption) {
	s.listener = bufconn.Listen(bufSize)
	opts := []grpc.ServerOption{
		grpc.ForceServerCodec(pb.Codec{}),
		grpc.ChainUnaryInterceptor(s.authenticate),
		grpc.ChainStreamInterceptor(s.authenticateStream),
	}
	s.server = grpc.NewServer(append(opts, extra...)...)
	rpc.RegisterGeyserServer(s.server, s)

	s.health = health.NewServer()
	s.health.SetServingStatus(rpc.GeyserService, grpc_health_v1.HealthCheckResponse_SERVING)
	grpc_health_v1.RegisterHealthServer(s.server, s.health)

	go func() {
		_ = s.server.Serve(s.listener)
	}()
}

// Stop stops the server and closes every open stream
func (s *MockGeyserServer) Stop() {
	s.health.Shutdown()
	s.server.Stop()
}

// DialOption routes the client connection to the in-process listener
func (s *MockGeyserServer) DialOption() grpc.DialOption {
	return grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return s.listener.DialContext(ctx)
	})
}

// SetServingStatus changes the status reported by the health service
func (s *MockGeyserServer) SetServingStatus(servingStatus grpc_health_v1.HealthCheckResponse_ServingStatus) {
	s.health.SetServingStatus(rpc.GeyserService, servingStatus)
}

// Requests returns every subscribe request received so far
func (s *MockGeyserServer) Requests() []*pb.SubscribeRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*pb.SubscribeRequest(nil), s.requests...)
}

// Streams returns the number of Subscribe streams opened so far
func (s *MockGeyserServer) Streams() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.streams
}

// RecordRequest stores a request received by a custom OnSubscribe handler
func (s *MockGeyserServer) RecordRequest(req *pb.SubscribeRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, req)
}

// Subscribe records the requests of the stream and sends Updates after the first one
func (s *MockGeyserServer) Subscribe(stream rpc.SubscribeServer) error {
	s.mu.Lock()
	s.streams++
	s.mu.Unlock()

	if s.OnSubscribe != nil {
		return s.OnSubscribe(stream)
	}

	req, err := stream.Recv()
	if err != nil {
		return err
	}
	s.RecordRequest(req)

	for _, update := range s.Updates {
		if err = stream.Send(update); err != nil {
			return err
		}
	}

	for {
		req, err = stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		s.RecordRequest(req)
	}
}

// Ping echoes the count
func (s *MockGeyserServer) Ping(_ context.Context, req *pb.PingRequest) (*pb.PongResponse, error) {
	return &pb.PongResponse{Count: req.Count}, nil
}

// GetLatestBlockhash answers MockBlockhash
func (s *MockGeyserServer) GetLatestBlockhash(context.Context, *pb.GetLatestBlockhashRequest) (*pb.GetLatestBlockhashResponse, error) {
	return &pb.GetLatestBlockhashResponse{Slot: MockSlot, Blockhash: MockBlockhash, LastValidBlockHeight: MockBlockHeight + 150}, nil
}

// GetBlockHeight answers MockBlockHeight
func (s *MockGeyserServer) GetBlockHeight(context.Context, *pb.GetBlockHeightRequest) (*pb.GetBlockHeightResponse, error) {
	return &pb.GetBlockHeightResponse{BlockHeight: MockBlockHeight}, nil
}

// GetSlot answers MockSlot
func (s *MockGeyserServer) GetSlot(context.Context, *pb.GetSlotRequest) (*pb.GetSlotResponse, error) {
	return &pb.GetSlotResponse{Slot: MockSlot}, nil
}

// IsBlockhashValid reports only MockBlockhash as valid
func (s *MockGeyserServer) IsBlockhashValid(_ context.Context, req *pb.IsBlockhashValidRequest) (*pb.IsBlockhashValidResponse, error) {
	return &pb.IsBlockhashValidResponse{Slot: MockSlot, Valid: req.Blockhash == MockBlockhash}, nil
}

// GetVersion answers MockVersion
func (s *MockGeyserServer) GetVersion(context.Context, *pb.GetVersionRequest) (*pb.GetVersionResponse, error) {
	return &pb.GetVersionResponse{Version: MockVersion}, nil
}

// SubscribeReplayInfo answers MockSlot as the first replayable slot
func (s *MockGeyserServer) SubscribeReplayInfo(context.Context, *pb.SubscribeReplayInfoRequest) (*pb.SubscribeReplayInfoResponse, error) {
	return &pb.SubscribeReplayInfoResponse{FirstAvailable: ptr.New(MockSlot)}, nil
}

func (s *MockGeyserServer) checkToken(ctx context.Context) error {
	if s.XToken == "" {
		return nil
	}
	token, err := rpc.ReadXToken(ctx)
	if err != nil {
		return status.Error(codes.Unauthenticated, err.Error())
	}
	if token != s.XToken {
		return status.Error(codes.Unauthenticated, "provided x-token was incorrect")
	}
	return nil
}

func (s *MockGeyserServer) authenticate(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if err := s.checkToken(ctx); err != nil {
		return nil, err
	}
	return handler(ctx, req)
}

func (s *MockGeyserServer) authenticateStream(srv any, ss grpc.ServerStream, _ *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	if err := s.checkToken(ss.Context()); err != nil {
		return err
	}
	return handler(srv, ss)
}
