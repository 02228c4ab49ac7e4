package rpc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/metadata"
)

const token = "d2ab93ba-1a8b-4187-994e-c63896c936e3"

func TestXTokenCredentials(t *testing.T) {
	md, err := xTokenCredentials{token: token}.GetRequestMetadata(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"x-token": token}, md)
	assert.False(t, xTokenCredentials{}.RequireTransportSecurity())
}

func TestNewXTokenCredentials_Empty(t *testing.T) {
	assert.Empty(t, NewXTokenCredentials(""))
	assert.Len(t, NewXTokenCredentials(token), 1)
}

func TestReadXToken(t *testing.T) {
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(XTokenHeader, token))
	got, err := ReadXToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, token, got)

	_, err = ReadXToken(context.Background())
	assert.Error(t, err)

	_, err = ReadXToken(metadata.NewIncomingContext(context.Background(), metadata.MD{}))
	assert.Error(t, err)
}
