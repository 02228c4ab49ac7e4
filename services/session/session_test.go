package session_test

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/bloXroute-Labs/geyser-client/filter"
	pb "github.com/bloXroute-Labs/geyser-client/protobuf"
	"github.com/bloXroute-Labs/geyser-client/services/dispatch"
	"github.com/bloXroute-Labs/geyser-client/services/session"
	"github.com/bloXroute-Labs/geyser-client/services/verify"
	"github.com/bloXroute-Labs/geyser-client/test/bxmock"
	"github.com/bloXroute-Labs/geyser-client/test/mock"
	"github.com/bloXroute-Labs/geyser-client/types"
	"github.com/bloXroute-Labs/geyser-client/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	request = &pb.SubscribeRequest{Slots: map[string]*pb.SubscribeRequestFilterSlots{"client": {}}}
	pong    = &pb.SubscribeRequest{Ping: &pb.SubscribeRequestPing{Id: 1}}
)

type fixture struct {
	ctrl       *gomock.Controller
	subscriber *mock.MockSubscriber
	stream     *mock.MockSubscribeClient
	printer    *mock.MockPrinter
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		ctrl:       ctrl,
		subscriber: mock.NewMockSubscriber(ctrl),
		stream:     mock.NewMockSubscribeClient(ctrl),
		printer:    mock.NewMockPrinter(ctrl),
	}
	f.subscriber.EXPECT().Subscribe(gomock.Any()).Return(f.stream, nil)
	return f
}

func (f *fixture) recv(u *pb.SubscribeUpdate) *gomock.Call {
	return f.stream.EXPECT().Recv().Return(bxmock.Decoded(u), nil)
}

func (f *fixture) recvErr(err error) *gomock.Call {
	return f.stream.EXPECT().Recv().Return(nil, err)
}

func TestSession_PongSentBeforeNextRecv(t *testing.T) {
	f := newFixture(t)
	gomock.InOrder(
		f.stream.EXPECT().Send(request).Return(nil),
		f.recv(bxmock.NewPingUpdate()),
		f.stream.EXPECT().Send(pong).Return(nil).Times(1),
		f.recv(bxmock.NewPongUpdate(1)),
		f.recvErr(io.EOF),
	)

	s := session.New(session.Config{}, f.printer)
	err := s.Run(context.Background(), f.subscriber, request)

	require.Error(t, err)
	assert.Equal(t, types.ErrorTypeTransport, types.ErrorTypeOf(err))
	assert.Equal(t, uint64(2), s.Counters().PingPong.Messages)
	assert.Zero(t, s.Counters().Index)
}

func TestSession_PongSendFailure(t *testing.T) {
	f := newFixture(t)
	gomock.InOrder(
		f.stream.EXPECT().Send(request).Return(nil),
		f.recv(bxmock.NewPingUpdate()),
		f.stream.EXPECT().Send(pong).Return(errors.New("broken pipe")),
	)

	err := session.New(session.Config{}, f.printer).Run(context.Background(), f.subscriber, request)
	assert.Equal(t, types.ErrorTypeTransport, types.ErrorTypeOf(err))
}

func TestSession_ResubscribeOnce(t *testing.T) {
	f := newFixture(t)
	f.printer.EXPECT().PrintUpdate(gomock.Any()).Times(5)
	gomock.InOrder(
		f.stream.EXPECT().Send(request).Return(nil),
		f.recv(bxmock.NewSlotUpdate(1, pb.SlotStatusProcessed)),
		f.recv(bxmock.NewPingUpdate()),
		f.stream.EXPECT().Send(pong).Return(nil),
		f.recv(bxmock.NewSlotUpdate(2, pb.SlotStatusProcessed)),
		f.recv(bxmock.NewEntryUpdate(2)),
		f.stream.EXPECT().Send(filter.SlotsOnly()).Return(nil).Times(1),
		f.recv(bxmock.NewSlotUpdate(3, pb.SlotStatusProcessed)),
		f.recv(bxmock.NewSlotUpdate(4, pb.SlotStatusProcessed)),
		f.recvErr(io.EOF),
	)

	s := session.New(session.Config{Resub: 3}, f.printer)
	err := s.Run(context.Background(), f.subscriber, request)

	assert.Equal(t, types.ErrorTypeTransport, types.ErrorTypeOf(err))
	assert.Equal(t, uint64(5), s.Counters().Index)
}

func TestSession_DisplayMode(t *testing.T) {
	f := newFixture(t)
	var records []*dispatch.Record
	f.printer.EXPECT().PrintUpdate(gomock.Any()).Do(func(r *dispatch.Record) { records = append(records, r) }).Times(2)
	gomock.InOrder(
		f.stream.EXPECT().Send(request).Return(nil),
		f.recv(bxmock.NewAccountUpdate(7)),
		f.recv(bxmock.NewBlockMetaUpdate(700)),
		f.recvErr(io.EOF),
	)

	_ = session.New(session.Config{}, f.printer).Run(context.Background(), f.subscriber, request)

	require.Len(t, records, 2)
	assert.Equal(t, types.AccountKind, records[0].Kind)
	assert.Equal(t, types.BlockMetaKind, records[1].Kind)
}

func TestSession_StatsMode(t *testing.T) {
	f := newFixture(t)
	var last session.Stats
	f.printer.EXPECT().PrintStats(gomock.Any()).Do(func(s session.Stats) { last = s }).Times(3)
	slot := bxmock.NewSlotUpdate(1, pb.SlotStatusProcessed)
	tx := bxmock.NewTransactionUpdate(1)
	gomock.InOrder(
		f.stream.EXPECT().Send(request).Return(nil),
		f.recv(slot),
		f.recv(tx),
		f.recv(bxmock.NewPongUpdate(1)),
		f.recvErr(io.EOF),
	)

	_ = session.New(session.Config{Stats: true}, f.printer).Run(context.Background(), f.subscriber, request)

	assert.Equal(t, uint64(1), last.Kinds[types.SlotKind].Messages)
	assert.Equal(t, uint64(len(pb.Marshal(slot))), last.Kinds[types.SlotKind].Bytes)
	assert.Equal(t, uint64(1), last.Kinds[types.TransactionKind].Messages)
	assert.Equal(t, uint64(1), last.PingPong.Messages)
	assert.Equal(t, uint64(3), last.Total.Messages)
	assert.Nil(t, last.Verify)
}

func TestSession_VerifyModeImpliesStats(t *testing.T) {
	f := newFixture(t)
	dir := t.TempDir()
	var last session.Stats
	f.printer.EXPECT().PrintStats(gomock.Any()).Do(func(s session.Stats) { last = s }).Times(1)
	gomock.InOrder(
		f.stream.EXPECT().Send(request).Return(nil),
		f.recv(bxmock.NewBlockUpdate(100)),
		f.recvErr(io.EOF),
	)

	verifier := verify.NewVerifier(dir, utils.NewMockClock())
	s := session.New(session.Config{Verify: true}, f.printer, session.WithVerifier(verifier))
	_ = s.Run(context.Background(), f.subscriber, request)

	require.NotNil(t, last.Verify)
	assert.Zero(t, last.Verify.Mismatches)
}

// lastByteFlipper changes the last byte of the reference encoding
type lastByteFlipper struct {
	verify.ReferenceEncoder
}

func (f lastByteFlipper) Encode(u *pb.SubscribeUpdate) []byte {
	b := f.ReferenceEncoder.Encode(u)
	b[len(b)-1] ^= 0xff
	return b
}

func TestSession_VerifierResetOnRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	subscriber := mock.NewMockSubscriber(ctrl)
	stream := mock.NewMockSubscribeClient(ctrl)
	printer := mock.NewMockPrinter(ctrl)
	var last session.Stats
	printer.EXPECT().PrintStats(gomock.Any()).Do(func(s session.Stats) { last = s }).Times(2)
	subscriber.EXPECT().Subscribe(gomock.Any()).Return(stream, nil).Times(2)
	stream.EXPECT().Send(request).Return(nil).Times(2)
	gomock.InOrder(
		stream.EXPECT().Recv().Return(bxmock.Decoded(bxmock.NewSlotUpdate(1, pb.SlotStatusProcessed)), nil),
		stream.EXPECT().Recv().Return(nil, io.EOF),
		stream.EXPECT().Recv().Return(bxmock.Decoded(bxmock.NewSlotUpdate(2, pb.SlotStatusProcessed)), nil),
		stream.EXPECT().Recv().Return(nil, io.EOF),
	)

	clock := utils.NewMockClock()
	verifier := verify.NewVerifier(t.TempDir(), clock, verify.WithEncoders(verify.PrimaryEncoder{}, lastByteFlipper{}))
	s := session.New(session.Config{Verify: true}, printer, session.WithVerifier(verifier), session.WithClock(clock))

	_ = s.Run(context.Background(), subscriber, request)
	require.NotNil(t, last.Verify)
	assert.Equal(t, uint64(1), last.Verify.Mismatches)

	_ = s.Run(context.Background(), subscriber, request)
	require.NotNil(t, last.Verify)
	assert.Equal(t, uint64(1), last.Total.Messages)
	assert.Equal(t, uint64(1), last.Verify.Mismatches)
	assert.Equal(t, uint64(1), verifier.Mismatches())
}

func TestSession_ProtocolErrors(t *testing.T) {
	noVariant := bxmock.NewSlotUpdate(1, pb.SlotStatusProcessed)
	noVariant.UpdateOneof = nil
	badPubkey := bxmock.NewAccountUpdate(1)
	badPubkey.UpdateOneof.(*pb.SubscribeUpdateAccount).Account.Owner = []byte{1}

	for name, u := range map[string]*pb.SubscribeUpdate{"no variant": noVariant, "bad pubkey": badPubkey} {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t)
			gomock.InOrder(
				f.stream.EXPECT().Send(request).Return(nil),
				f.recv(u),
			)

			err := session.New(session.Config{}, f.printer).Run(context.Background(), f.subscriber, request)
			assert.Equal(t, types.ErrorTypeProtocol, types.ErrorTypeOf(err))
		})
	}
}

func TestSession_RecvErrors(t *testing.T) {
	tests := map[string]struct {
		err      error
		expected types.ErrorType
	}{
		"eof":         {io.EOF, types.ErrorTypeTransport},
		"unavailable": {status.Error(codes.Unavailable, "connection reset"), types.ErrorTypeTransport},
		"codec":       {status.Error(codes.Internal, "grpc: failed to unmarshal the received message"), types.ErrorTypeProtocol},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t)
			gomock.InOrder(
				f.stream.EXPECT().Send(request).Return(nil),
				f.recvErr(tt.err),
			)

			err := session.New(session.Config{}, f.printer).Run(context.Background(), f.subscriber, request)
			require.Error(t, err)
			assert.Equal(t, tt.expected, types.ErrorTypeOf(err))
		})
	}
}

func TestSession_ContextCancelled(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	gomock.InOrder(
		f.stream.EXPECT().Send(request).Return(nil),
		f.stream.EXPECT().Recv().DoAndReturn(func() (*pb.SubscribeUpdate, error) {
			cancel()
			return nil, status.Error(codes.Canceled, "context canceled")
		}),
	)

	err := session.New(session.Config{}, f.printer).Run(ctx, f.subscriber, request)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSession_SubscribeFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	subscriber := mock.NewMockSubscriber(ctrl)
	subscriber.EXPECT().Subscribe(gomock.Any()).Return(nil, types.NewTransportError("subscribe", errors.New("refused")))

	err := session.New(session.Config{}, mock.NewMockPrinter(ctrl)).Run(context.Background(), subscriber, request)
	assert.Equal(t, types.ErrorTypeTransport, types.ErrorTypeOf(err))
}

func TestSession_CountersResetOnRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	subscriber := mock.NewMockSubscriber(ctrl)
	stream := mock.NewMockSubscribeClient(ctrl)
	printer := mock.NewMockPrinter(ctrl)
	printer.EXPECT().PrintUpdate(gomock.Any()).AnyTimes()
	subscriber.EXPECT().Subscribe(gomock.Any()).Return(stream, nil).Times(2)
	stream.EXPECT().Send(request).Return(nil).Times(2)
	gomock.InOrder(
		stream.EXPECT().Recv().Return(bxmock.Decoded(bxmock.NewSlotUpdate(1, pb.SlotStatusProcessed)), nil),
		stream.EXPECT().Recv().Return(bxmock.Decoded(bxmock.NewSlotUpdate(2, pb.SlotStatusProcessed)), nil),
		stream.EXPECT().Recv().Return(nil, io.EOF),
		stream.EXPECT().Recv().Return(bxmock.Decoded(bxmock.NewSlotUpdate(3, pb.SlotStatusProcessed)), nil),
		stream.EXPECT().Recv().Return(nil, io.EOF),
	)

	clock := utils.NewMockClock()
	s := session.New(session.Config{}, printer, session.WithClock(clock))
	_ = s.Run(context.Background(), subscriber, request)
	assert.Equal(t, uint64(2), s.Counters().Index)
	firstRun := s.Counters().RunID

	clock.IncTime(time.Second)
	_ = s.Run(context.Background(), subscriber, request)
	assert.NotEqual(t, firstRun, s.Counters().RunID)
	assert.Equal(t, uint64(1), s.Counters().Index)
	assert.Equal(t, uint64(1), s.Counters().Total.Messages)
	assert.Equal(t, clock.Now(), s.Counters().Started)
}
