package rpc

import (
	"context"
	"errors"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// XTokenHeader is the metadata key carrying the access token
const XTokenHeader = "x-token"

type xTokenCredentials struct {
	token string
}

func (xc xTokenCredentials) GetRequestMetadata(ctx context.Context, uri ...string) (map[string]string, error) {
	return map[string]string{
		XTokenHeader: xc.token,
	}, nil
}

// RequireTransportSecurity is false so the token is also sent over plain http:// endpoints
func (xc xTokenCredentials) RequireTransportSecurity() bool {
	return false
}

// NewXTokenCredentials constructs the per-call x-token auth scheme.
// An empty token sends no credentials.
func NewXTokenCredentials(token string) []grpc.DialOption {
	if token == "" {
		return nil
	}
	return []grpc.DialOption{grpc.WithPerRPCCredentials(xTokenCredentials{token: token})}
}

// ReadXToken reads the access token from the RPC connection context
func ReadXToken(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", errors.New("could not read metadata from context")
	}

	values := md.Get(XTokenHeader)
	if len(values) == 0 {
		return "", errors.New("no x-token was provided")
	}
	return values[0], nil
}
