package protobuf_test

import (
	"encoding/hex"
	"testing"

	pb "github.com/bloXroute-Labs/geyser-client/protobuf"
	"github.com/bloXroute-Labs/geyser-client/test/bxmock"
	"github.com/bloXroute-Labs/geyser-client/test/fixtures"
	"github.com/bloXroute-Labs/geyser-client/utils/ptr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func decodeHex(t *testing.T, s string) []byte {
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestSubscribeUpdate_DecodeFixture(t *testing.T) {
	raw := decodeHex(t, fixtures.PongUpdate)

	update := &pb.SubscribeUpdate{}
	require.NoError(t, update.Unmarshal(raw))

	assert.Equal(t, []string{"client"}, update.Filters)
	assert.Equal(t, bxmock.CreatedAt, update.CreatedAt.AsTime())
	pong, ok := update.UpdateOneof.(*pb.SubscribeUpdatePong)
	require.True(t, ok)
	assert.Equal(t, int32(1), pong.Id)
	assert.Equal(t, raw, update.WireBytes())

	// re-encoding reproduces the server bytes
	assert.Equal(t, raw, pb.Marshal(update))
}

func TestSubscribeUpdate_UnknownVariant(t *testing.T) {
	update := &pb.SubscribeUpdate{}
	require.NoError(t, update.Unmarshal(decodeHex(t, fixtures.UnknownVariantUpdate)))
	assert.Nil(t, update.UpdateOneof)
	assert.Nil(t, update.CreatedAt)
}

func TestSubscribeUpdate_SizeMatchesMarshal(t *testing.T) {
	updates := map[string]*pb.SubscribeUpdate{
		"account":            bxmock.NewAccountUpdate(100),
		"slot":               bxmock.NewSlotUpdate(100, pb.SlotStatusDead),
		"transaction":        bxmock.NewTransactionUpdate(100),
		"transaction status": bxmock.NewTransactionStatusUpdate(100),
		"entry":              bxmock.NewEntryUpdate(100),
		"block meta":         bxmock.NewBlockMetaUpdate(100),
		"block":              bxmock.NewBlockUpdate(100),
		"ping":               bxmock.NewPingUpdate(),
		"pong":               bxmock.NewPongUpdate(-1),
	}

	for name, update := range updates {
		t.Run(name, func(t *testing.T) {
			b := pb.Marshal(update)
			assert.Len(t, b, update.Size())

			decoded := &pb.SubscribeUpdate{}
			require.NoError(t, decoded.Unmarshal(b))
			assert.Equal(t, b, pb.Marshal(decoded))
			assert.IsType(t, update.UpdateOneof, decoded.UpdateOneof)
		})
	}
}

func TestSubscribeUpdateAccountInfo_EmptySignatureIsPresent(t *testing.T) {
	info := &pb.SubscribeUpdateAccountInfo{Pubkey: bxmock.GenerateBytes(32), TxnSignature: []byte{}}

	decoded := &pb.SubscribeUpdateAccountInfo{}
	require.NoError(t, decoded.Unmarshal(pb.Marshal(info)))
	assert.NotNil(t, decoded.TxnSignature)
	assert.Empty(t, decoded.TxnSignature)

	info.TxnSignature = nil
	require.NoError(t, decoded.Unmarshal(pb.Marshal(info)))
	assert.Nil(t, decoded.TxnSignature)
}

func TestSubscribeUpdateSlot_ZeroParentIsPresent(t *testing.T) {
	slot := &pb.SubscribeUpdateSlot{Slot: 1, Parent: ptr.New(uint64(0)), Status: pb.SlotStatusFinalized}

	decoded := &pb.SubscribeUpdateSlot{}
	require.NoError(t, decoded.Unmarshal(pb.Marshal(slot)))
	require.NotNil(t, decoded.Parent)
	assert.Equal(t, uint64(0), *decoded.Parent)
	assert.Equal(t, pb.SlotStatusFinalized, decoded.Status)
}

func TestUnmarshal_WireTypeMismatch(t *testing.T) {
	// field 2 (lamports) sent as length delimited
	err := (&pb.SubscribeUpdateAccountInfo{}).Unmarshal([]byte{0x12, 0x01, 0x00})
	var wireErr *pb.WireTypeError
	require.ErrorAs(t, err, &wireErr)
	assert.Equal(t, "SubscribeUpdateAccountInfo", wireErr.Message)
}

func TestUnmarshal_Truncated(t *testing.T) {
	raw := decodeHex(t, fixtures.PongUpdate)
	assert.Error(t, (&pb.SubscribeUpdate{}).Unmarshal(raw[:len(raw)-1]))
}

func TestSubscribeRequest_PongEncoding(t *testing.T) {
	req := &pb.SubscribeRequest{Ping: &pb.SubscribeRequestPing{Id: 1}}
	assert.Equal(t, decodeHex(t, fixtures.PongRequest), pb.Marshal(req))
}

func TestSubscribeRequest_RoundTrip(t *testing.T) {
	commitment := pb.CommitmentLevelConfirmed
	req := &pb.SubscribeRequest{
		Accounts: map[string]*pb.SubscribeRequestFilterAccounts{
			"client": {
				Account: []string{"So11111111111111111111111111111111111111112"},
				Owner:   []string{"TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"},
				Filters: []*pb.SubscribeRequestFilterAccountsFilter{
					{Filter: &pb.AccountsFilterMemcmp{Memcmp: &pb.SubscribeRequestFilterAccountsFilterMemcmp{
						Offset: 10, Encoding: pb.MemcmpEncodingBase58, Data: []byte("abc"),
					}}},
					{Filter: &pb.AccountsFilterDatasize{Datasize: 0}},
					{Filter: &pb.AccountsFilterTokenAccountState{TokenAccountState: true}},
					{Filter: &pb.AccountsFilterLamports{Lamports: &pb.SubscribeRequestFilterAccountsFilterLamports{
						Op: pb.LamportsOpGt, Value: 100,
					}}},
				},
				NonemptyTxnSignature: ptr.New(false),
			},
		},
		Slots:              map[string]*pb.SubscribeRequestFilterSlots{"client": {FilterByCommitment: ptr.New(true)}},
		Transactions:       map[string]*pb.SubscribeRequestFilterTransactions{},
		TransactionsStatus: map[string]*pb.SubscribeRequestFilterTransactions{"client": {Vote: ptr.New(false), Signature: ptr.New("sig")}},
		Blocks:             map[string]*pb.SubscribeRequestFilterBlocks{"client": {IncludeEntries: ptr.New(true)}},
		BlocksMeta:         map[string]*pb.SubscribeRequestFilterBlocksMeta{"client": {}},
		Entry:              map[string]*pb.SubscribeRequestFilterEntry{"client": {}},
		Commitment:         &commitment,
		AccountsDataSlice:  []*pb.SubscribeRequestAccountsDataSlice{{Offset: 0, Length: 32}},
		FromSlot:           ptr.New(uint64(250000000)),
	}

	b := pb.Marshal(req)
	assert.Len(t, b, req.Size())

	decoded := &pb.SubscribeRequest{}
	require.NoError(t, decoded.Unmarshal(b))

	// empty maps are not carried on the wire
	req.Transactions = nil
	assert.Equal(t, req, decoded)
}

func TestCodec(t *testing.T) {
	codec := pb.Codec{}
	assert.Equal(t, "proto", codec.Name())

	_, err := codec.Marshal("ping")
	assert.Error(t, err)
	assert.Error(t, codec.Unmarshal(nil, new(string)))

	// generated messages go through the proto runtime
	ts := timestamppb.New(bxmock.CreatedAt)
	b, err := codec.Marshal(ts)
	require.NoError(t, err)
	decodedTs := &timestamppb.Timestamp{}
	require.NoError(t, codec.Unmarshal(b, decodedTs))
	assert.Equal(t, bxmock.CreatedAt, decodedTs.AsTime())

	b, err = codec.Marshal(&pb.PingRequest{Count: 3})
	require.NoError(t, err)
	pong := &pb.PongResponse{}
	require.NoError(t, codec.Unmarshal(b, pong))
	assert.Equal(t, int32(3), pong.Count)
}
