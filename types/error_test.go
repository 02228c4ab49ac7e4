package types

import (
	"errors"
	"fmt"
	"testing"

	pb "github.com/bloXroute-Labs/geyser-client/protobuf"
	"github.com/stretchr/testify/assert"
)

func TestErrorTypeOf(t *testing.T) {
	cause := errors.New("boom")

	validation := fmt.Errorf("building request: %w", NewValidationError("memcmp", cause))
	assert.Equal(t, ErrorTypeValidation, ErrorTypeOf(validation))
	assert.True(t, IsPermanent(validation))
	assert.ErrorIs(t, validation, cause)
	assert.Equal(t, "building request: memcmp: boom", validation.Error())

	assert.Equal(t, ErrorTypeProtocol, ErrorTypeOf(NewProtocolError("recv", cause)))
	assert.False(t, IsPermanent(NewProtocolError("recv", cause)))
	assert.Equal(t, ErrorTypeTransport, ErrorTypeOf(cause))
	assert.False(t, IsPermanent(nil))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, AccountKind, KindOf(&pb.SubscribeUpdateAccount{}))
	assert.Equal(t, BlockMetaKind, KindOf(&pb.SubscribeUpdateBlockMeta{}))
	assert.Equal(t, UnknownKind, KindOf(nil))
	assert.True(t, KindOf(&pb.SubscribeUpdatePing{}).IsControl())
	assert.False(t, TransactionStatusKind.IsControl())
}
