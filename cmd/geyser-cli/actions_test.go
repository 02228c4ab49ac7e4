package main

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	geyserclient "github.com/bloXroute-Labs/geyser-client"
	"github.com/bloXroute-Labs/geyser-client/config"
	"github.com/bloXroute-Labs/geyser-client/filter"
	log "github.com/bloXroute-Labs/geyser-client/logger"
	"github.com/bloXroute-Labs/geyser-client/metrics"
	pb "github.com/bloXroute-Labs/geyser-client/protobuf"
	"github.com/bloXroute-Labs/geyser-client/rpc"
	"github.com/bloXroute-Labs/geyser-client/services/display"
	"github.com/bloXroute-Labs/geyser-client/test/bxmock"
	"github.com/bloXroute-Labs/geyser-client/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/ext"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/mocktracer"
)

const testToken = "secret-token"

type immediateTimer struct {
	c chan time.Time
}

func newImmediateTimer() *immediateTimer {
	return &immediateTimer{c: make(chan time.Time, 1)}
}

func (t *immediateTimer) Start(time.Duration) { t.c <- time.Now() }
func (t *immediateTimer) Stop()               {}
func (t *immediateTimer) C() <-chan time.Time { return t.c }

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newTestRunner(t *testing.T, server *bxmock.MockGeyserServer) (*runner, *syncBuffer) {
	out := &syncBuffer{}
	grpcConfig := &config.GRPC{
		Endpoint:               "http://bufnet",
		XToken:                 testToken,
		ConnectTimeout:         5 * time.Second,
		Timeout:                5 * time.Second,
		MaxDecodingMessageSize: geyserclient.MaxDecodingMessageSize,
		Commitment:             pb.CommitmentLevelConfirmed,
		BackoffInitial:         time.Millisecond,
		BackoffMax:             time.Millisecond,
	}
	r := newRunner(grpcConfig, display.New(out), &metrics.NoOpExporter{})
	r.dialOptions = append(r.dialOptions, server.DialOption())
	r.timer = newImmediateTimer()
	return r, out
}

func startServer(t *testing.T) *bxmock.MockGeyserServer {
	server := bxmock.NewMockGeyserServer(testToken)
	server.Start()
	t.Cleanup(server.Stop)
	return server
}

func TestRunner_Queries(t *testing.T) {
	tests := []struct {
		name string
		a    action
		want []string
	}{
		{name: "health check", a: action{kind: actionHealthCheck}, want: []string{"Health Check Result", "Status: SERVING"}},
		{name: "ping", a: action{kind: actionPing, count: 7}, want: []string{"Ping", "Count: 7"}},
		{name: "latest blockhash", a: action{kind: actionGetLatestBlockhash}, want: []string{
			"Latest Blockhash", "Slot: 250000000", "Blockhash: " + bxmock.MockBlockhash, "Last Valid Block Height: 230000150",
		}},
		{name: "block height", a: action{kind: actionGetBlockHeight}, want: []string{"Block Height: 230000000"}},
		{name: "slot", a: action{kind: actionGetSlot}, want: []string{"Current Slot", "Slot: 250000000"}},
		{name: "blockhash valid", a: action{kind: actionIsBlockhashValid, blockhash: bxmock.MockBlockhash}, want: []string{"Blockhash Validation", "Valid: true"}},
		{name: "version", a: action{kind: actionGetVersion}, want: []string{"Version: " + bxmock.MockVersion}},
		{name: "replay info", a: action{kind: actionSubscribeReplayInfo}, want: []string{"First Available: 250000000"}},
	}

	server := startServer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, out := newTestRunner(t, server)
			require.NoError(t, r.run(context.Background(), tt.a))
			for _, want := range tt.want {
				assert.Contains(t, out.String(), want)
			}
		})
	}
}

func TestRunner_QueryTraced(t *testing.T) {
	mt := mocktracer.Start()
	defer mt.Stop()

	server := startServer(t)
	r, _ := newTestRunner(t, server)
	require.NoError(t, r.run(context.Background(), action{kind: actionGetSlot}))

	spans := mt.FinishedSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, metrics.OperationQuery, spans[0].OperationName())
	assert.Equal(t, "Query: get-slot", spans[0].Tag(ext.ResourceName))
	assert.Nil(t, spans[0].Tag(ext.Error))
}

func TestRunner_InvalidBlockhashNeverConnects(t *testing.T) {
	server := startServer(t)
	r, out := newTestRunner(t, server)

	err := r.run(context.Background(), action{kind: actionIsBlockhashValid, blockhash: "not-a-hash"})
	require.Error(t, err)
	assert.Equal(t, types.ErrorTypeValidation, types.ErrorTypeOf(err))
	assert.Empty(t, out.String())
}

func TestRunner_InvalidConnectionSettingsNeverConnect(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*config.GRPC)
	}{
		{name: "unsupported scheme", modify: func(c *config.GRPC) { c.Endpoint = "ftp://bufnet" }},
		{name: "no host", modify: func(c *config.GRPC) { c.Endpoint = "http://:10000" }},
		{name: "bad ca certificate", modify: func(c *config.GRPC) {
			c.Endpoint = "https://bufnet"
			c.CACertificate = []byte("not a certificate")
		}},
	}

	server := startServer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			global := log.NewGlobal()
			r, out := newTestRunner(t, server)
			tt.modify(r.grpcConfig)

			err := r.run(context.Background(), action{kind: actionGetSlot})
			require.Error(t, err)
			assert.Equal(t, types.ErrorTypeValidation, types.ErrorTypeOf(err))
			assert.Empty(t, out.String())
			assert.Empty(t, global.Messages())
		})
	}
}

func TestRunner_InvalidFilterNeverConnects(t *testing.T) {
	server := startServer(t)
	r, _ := newTestRunner(t, server)

	sub := &config.Subscribe{Options: filter.Options{
		Accounts: filter.AccountsOptions{Enabled: true, Addresses: []string{"0OIl"}},
	}}
	err := r.run(context.Background(), action{kind: actionSubscribe, subscribe: sub})
	require.Error(t, err)
	assert.Equal(t, types.ErrorTypeValidation, types.ErrorTypeOf(err))
	assert.Equal(t, 0, server.Streams())
}

func TestRunner_SubscribeReconnects(t *testing.T) {
	server := startServer(t)
	r, out := newTestRunner(t, server)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	streams := 0
	server.OnSubscribe = func(stream rpc.SubscribeServer) error {
		req, err := stream.Recv()
		if err != nil {
			return err
		}
		server.RecordRequest(req)

		mu.Lock()
		streams++
		n := streams
		mu.Unlock()

		if n == 2 {
			cancel()
			<-stream.Context().Done()
			return stream.Context().Err()
		}
		if err = stream.Send(bxmock.NewSlotUpdate(100, pb.SlotStatusConfirmed)); err != nil {
			return err
		}
		return status.Error(codes.Unavailable, "node restarting")
	}

	sub := &config.Subscribe{Options: filter.Options{Slots: filter.SlotsOptions{Enabled: true}}}
	err := r.run(ctx, action{kind: actionSubscribe, subscribe: sub})
	assert.ErrorIs(t, err, context.Canceled)

	assert.Equal(t, 2, server.Streams())
	requests := server.Requests()
	require.Len(t, requests, 2)
	assert.Equal(t, requests[0].Slots, requests[1].Slots)
	assert.Contains(t, out.String(), "Update Type: SLOT")
}
