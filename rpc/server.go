package rpc

import (
	"context"

	pb "github.com/bloXroute-Labs/geyser-client/protobuf"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// GeyserServer is the server side of the Geyser service
type GeyserServer interface {
	Subscribe(SubscribeServer) error
	SubscribeReplayInfo(context.Context, *pb.SubscribeReplayInfoRequest) (*pb.SubscribeReplayInfoResponse, error)
	Ping(context.Context, *pb.PingRequest) (*pb.PongResponse, error)
	GetLatestBlockhash(context.Context, *pb.GetLatestBlockhashRequest) (*pb.GetLatestBlockhashResponse, error)
	GetBlockHeight(context.Context, *pb.GetBlockHeightRequest) (*pb.GetBlockHeightResponse, error)
	GetSlot(context.Context, *pb.GetSlotRequest) (*pb.GetSlotResponse, error)
	IsBlockhashValid(context.Context, *pb.IsBlockhashValidRequest) (*pb.IsBlockhashValidResponse, error)
	GetVersion(context.Context, *pb.GetVersionRequest) (*pb.GetVersionResponse, error)
}

// SubscribeServer is the server side of a Subscribe stream
type SubscribeServer interface {
	Send(*pb.SubscribeUpdate) error
	Recv() (*pb.SubscribeRequest, error)
	grpc.ServerStream
}

// UnimplementedGeyserServer answers every call with codes.Unimplemented
type UnimplementedGeyserServer struct{}

func (UnimplementedGeyserServer) Subscribe(SubscribeServer) error {
	return status.Error(codes.Unimplemented, "method Subscribe not implemented")
}

func (UnimplementedGeyserServer) SubscribeReplayInfo(context.Context, *pb.SubscribeReplayInfoRequest) (*pb.SubscribeReplayInfoResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SubscribeReplayInfo not implemented")
}

func (UnimplementedGeyserServer) Ping(context.Context, *pb.PingRequest) (*pb.PongResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Ping not implemented")
}

func (UnimplementedGeyserServer) GetLatestBlockhash(context.Context, *pb.GetLatestBlockhashRequest) (*pb.GetLatestBlockhashResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetLatestBlockhash not implemented")
}

func (UnimplementedGeyserServer) GetBlockHeight(context.Context, *pb.GetBlockHeightRequest) (*pb.GetBlockHeightResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetBlockHeight not implemented")
}

func (UnimplementedGeyserServer) GetSlot(context.Context, *pb.GetSlotRequest) (*pb.GetSlotResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetSlot not implemented")
}

func (UnimplementedGeyserServer) IsBlockhashValid(context.Context, *pb.IsBlockhashValidRequest) (*pb.IsBlockhashValidResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method IsBlockhashValid not implemented")
}

func (UnimplementedGeyserServer) GetVersion(context.Context, *pb.GetVersionRequest) (*pb.GetVersionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetVersion not implemented")
}

// RegisterGeyserServer registers srv on s.
// s must be created with grpc.ForceServerCodec(pb.Codec{}).
func RegisterGeyserServer(s grpc.ServiceRegistrar, srv GeyserServer) {
	s.RegisterService(&geyserServiceDesc, srv)
}

var geyserServiceDesc = grpc.ServiceDesc{
	ServiceName: GeyserService,
	HandlerType: (*GeyserServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "SubscribeReplayInfo", Handler: unaryHandler("SubscribeReplayInfo", GeyserServer.SubscribeReplayInfo)},
		{MethodName: "Ping", Handler: unaryHandler("Ping", GeyserServer.Ping)},
		{MethodName: "GetLatestBlockhash", Handler: unaryHandler("GetLatestBlockhash", GeyserServer.GetLatestBlockhash)},
		{MethodName: "GetBlockHeight", Handler: unaryHandler("GetBlockHeight", GeyserServer.GetBlockHeight)},
		{MethodName: "GetSlot", Handler: unaryHandler("GetSlot", GeyserServer.GetSlot)},
		{MethodName: "IsBlockhashValid", Handler: unaryHandler("IsBlockhashValid", GeyserServer.IsBlockhashValid)},
		{MethodName: "GetVersion", Handler: unaryHandler("GetVersion", GeyserServer.GetVersion)},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    subscribeStreamDesc.StreamName,
			Handler:       subscribeHandler,
			ServerStreams: true,
			ClientStreams: true,
		},
	},
}

func unaryHandler[Req any, PReq interface {
	*Req
	pb.Message
}, Resp pb.Message](method string, call func(GeyserServer, context.Context, PReq) (Resp, error)) grpc.MethodHandler {
	fullMethod := "/" + GeyserService + "/" + method
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := PReq(new(Req))
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(GeyserServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(GeyserServer), ctx, req.(PReq))
		}
		return interceptor(ctx, in, info, handler)
	}
}

func subscribeHandler(srv any, stream grpc.ServerStream) error {
	return srv.(GeyserServer).Subscribe(&subscribeServer{ServerStream: stream})
}

type subscribeServer struct {
	grpc.ServerStream
}

func (x *subscribeServer) Send(m *pb.SubscribeUpdate) error {
	return x.ServerStream.SendMsg(m)
}

func (x *subscribeServer) Recv() (*pb.SubscribeRequest, error) {
	m := new(pb.SubscribeRequest)
	if err := x.ServerStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}
