package session

import (
	"context"
	"io"

	geyserclient "github.com/bloXroute-Labs/geyser-client"
	"github.com/bloXroute-Labs/geyser-client/filter"
	log "github.com/bloXroute-Labs/geyser-client/logger"
	"github.com/bloXroute-Labs/geyser-client/metrics"
	pb "github.com/bloXroute-Labs/geyser-client/protobuf"
	"github.com/bloXroute-Labs/geyser-client/rpc"
	"github.com/bloXroute-Labs/geyser-client/services/dispatch"
	"github.com/bloXroute-Labs/geyser-client/services/verify"
	"github.com/bloXroute-Labs/geyser-client/types"
	"github.com/bloXroute-Labs/geyser-client/utils"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

//go:generate mockgen -destination ../../test/mock/session_mock.go -package mock . Subscriber,Printer

// Subscriber opens Subscribe streams
type Subscriber interface {
	Subscribe(ctx context.Context) (rpc.SubscribeClient, error)
}

// Printer displays what a session receives
type Printer interface {
	PrintUpdate(record *dispatch.Record)
	PrintStats(stats Stats)
}

// Config selects what a session does with data updates
type Config struct {
	// Resub is the number of data messages after which the subscription is replaced by
	// a slots only one, 0 never
	Resub uint64
	// Stats renders counters instead of updates
	Stats bool
	// Verify runs every update through the encoding verifier, it implies Stats
	Verify bool
}

// Session drives one subscription stream
type Session struct {
	cfg      Config
	printer  Printer
	verifier *verify.Verifier
	exporter metrics.Exporter
	clock    utils.Clock

	counters *Counters
}

// Option configures a Session
type Option func(*Session)

// WithVerifier sets the verifier used in verify mode
func WithVerifier(verifier *verify.Verifier) Option {
	return func(s *Session) {
		s.verifier = verifier
	}
}

// WithExporter sets the metrics exporter
func WithExporter(exporter metrics.Exporter) Option {
	return func(s *Session) {
		s.exporter = exporter
	}
}

// WithClock sets the clock used for elapsed time
func WithClock(clock utils.Clock) Option {
	return func(s *Session) {
		s.clock = clock
	}
}

// New creates a session
func New(cfg Config, printer Printer, opts ...Option) *Session {
	if cfg.Verify {
		cfg.Stats = true
	}
	s := &Session{
		cfg:      cfg,
		printer:  printer,
		exporter: &metrics.NoOpExporter{},
		clock:    utils.RealClock{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.cfg.Verify && s.verifier == nil {
		s.verifier = verify.NewVerifier(geyserclient.VerifyDir, s.clock, verify.WithExporter(s.exporter))
	}
	return s
}

// Counters returns the counters of the last run
func (s *Session) Counters() *Counters {
	return s.counters
}

// Run opens a stream, sends request and processes updates until the stream fails or ctx is done.
// Counters and verifier totals start from zero on every run.
func (s *Session) Run(ctx context.Context, subscriber Subscriber, request *pb.SubscribeRequest) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.counters = newCounters(s.clock.Now())
	if s.verifier != nil {
		s.verifier.Reset()
	}

	stream, err := subscriber.Subscribe(ctx)
	if err != nil {
		return err
	}
	if err = stream.Send(request); err != nil {
		return types.NewTransportError("send subscribe request", err)
	}
	log.WithFields(log.Fields{"run": s.counters.RunID, "resub": s.cfg.Resub, "stats": s.cfg.Stats, "verify": s.cfg.Verify}).Info("stream opened")

	for {
		update, err := stream.Recv()
		if err != nil {
			return recvError(ctx, err)
		}
		if err = s.handle(stream, update); err != nil {
			return err
		}
	}
}

func recvError(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if errors.Is(err, io.EOF) {
		return types.NewTransportError("recv", errors.New("stream closed"))
	}
	if status.Code(err) == codes.Internal {
		return types.NewProtocolError("recv", err)
	}
	return types.NewTransportError("recv", err)
}

func (s *Session) handle(stream rpc.SubscribeClient, update *pb.SubscribeUpdate) error {
	kind := types.KindOf(update.UpdateOneof)
	if kind == types.UnknownKind {
		return types.NewProtocolError("recv", errors.New("update not found in the message"))
	}

	size := len(update.WireBytes())
	if size == 0 {
		size = update.Size()
	}
	s.counters.add(kind, size)
	s.exporter.IncrUpdate(string(kind), size)

	switch kind {
	case types.PingKind:
		// load balancers in front of the service expect client pings to keep the stream alive
		if err := stream.Send(&pb.SubscribeRequest{Ping: &pb.SubscribeRequestPing{Id: geyserclient.PongID}}); err != nil {
			return types.NewTransportError("send pong", err)
		}
		s.exporter.IncrPongSent()
		s.printStats()
		return nil
	case types.PongKind:
		s.printStats()
		return nil
	}

	if s.cfg.Verify {
		s.verifier.Verify(update)
	}

	if s.cfg.Stats {
		s.printStats()
	} else {
		record, err := dispatch.Dispatch(update)
		if err != nil {
			return err
		}
		s.printer.PrintUpdate(record)
	}

	s.counters.Index++
	if s.cfg.Resub > 0 && s.counters.Index == s.cfg.Resub {
		if err := stream.Send(filter.SlotsOnly()); err != nil {
			return types.NewTransportError("resubscribe", errors.WithMessage(err, "failed to send slots only request"))
		}
		s.exporter.IncrResubscribe()
		log.WithField("run", s.counters.RunID).Infof("resubscribed to slots after %v messages", s.counters.Index)
	}
	return nil
}

func (s *Session) printStats() {
	if !s.cfg.Stats {
		return
	}
	stats := s.counters.snapshot(s.clock.Now())
	if s.cfg.Verify {
		stats.Verify = &VerifyStats{Ratio: s.verifier.Ratio(), Mismatches: s.verifier.Mismatches()}
	}
	s.printer.PrintStats(stats)
}
