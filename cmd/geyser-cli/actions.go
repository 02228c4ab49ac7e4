package main

import (
	"context"
	"errors"
	"io"

	"github.com/bloXroute-Labs/geyser-client/config"
	"github.com/bloXroute-Labs/geyser-client/filter"
	log "github.com/bloXroute-Labs/geyser-client/logger"
	"github.com/bloXroute-Labs/geyser-client/metrics"
	"github.com/bloXroute-Labs/geyser-client/rpc"
	"github.com/bloXroute-Labs/geyser-client/services/display"
	"github.com/bloXroute-Labs/geyser-client/services/session"
	"github.com/bloXroute-Labs/geyser-client/services/supervisor"
	"github.com/bloXroute-Labs/geyser-client/services/verify"
	"github.com/bloXroute-Labs/geyser-client/types"
	"github.com/bloXroute-Labs/geyser-client/utils"
	"github.com/cenkalti/backoff/v4"
	"google.golang.org/grpc"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"
)

type actionKind int

const (
	actionSubscribe actionKind = iota
	actionHealthCheck
	actionHealthWatch
	actionSubscribeReplayInfo
	actionPing
	actionGetLatestBlockhash
	actionGetBlockHeight
	actionGetSlot
	actionIsBlockhashValid
	actionGetVersion
)

var actionNames = map[actionKind]string{
	actionSubscribe:           "subscribe",
	actionHealthCheck:         "health-check",
	actionHealthWatch:         "health-watch",
	actionSubscribeReplayInfo: "subscribe-replay-info",
	actionPing:                "ping",
	actionGetLatestBlockhash:  "get-latest-blockhash",
	actionGetBlockHeight:      "get-block-height",
	actionGetSlot:             "get-slot",
	actionIsBlockhashValid:    "is-blockhash-valid",
	actionGetVersion:          "get-version",
}

func (k actionKind) String() string {
	return actionNames[k]
}

// action is what one invocation of the client does once connected
type action struct {
	kind      actionKind
	subscribe *config.Subscribe
	blockhash string
	count     int32
}

// runner executes actions under the reconnect supervisor
type runner struct {
	grpcConfig  *config.GRPC
	display     *display.Display
	exporter    metrics.Exporter
	clock       utils.Clock
	dialOptions []grpc.DialOption
	timer       backoff.Timer
}

func newRunner(grpcConfig *config.GRPC, d *display.Display, exporter metrics.Exporter) *runner {
	return &runner{
		grpcConfig: grpcConfig,
		display:    d,
		exporter:   exporter,
		clock:      utils.RealClock{},
	}
}

// run validates a, then connects and executes it until it completes, fails permanently or
// ctx is done. Validation errors are returned before any connection attempt.
func (r *runner) run(ctx context.Context, a action) error {
	execute, err := r.prepare(a)
	if err != nil {
		return err
	}

	opts := []supervisor.Option{
		supervisor.WithClock(r.clock),
		supervisor.WithExporter(r.exporter),
		supervisor.WithBackOff(func() backoff.BackOff {
			return supervisor.NewExponentialBackOff(r.grpcConfig.BackoffInitial, r.grpcConfig.BackoffMax)
		}),
	}
	if r.timer != nil {
		opts = append(opts, supervisor.WithTimer(r.timer))
	}

	return supervisor.New(r.grpcConfig.Endpoint, opts...).Run(ctx, func(ctx context.Context) error {
		client, err := rpc.Dial(ctx, r.grpcConfig, r.dialOptions...)
		if err != nil {
			return err
		}
		defer func() {
			if err := client.Close(); err != nil {
				log.Debugf("failed to close connection: %v", err)
			}
		}()
		log.Info("connected")

		return execute(ctx, client)
	})
}

type executeFunc func(ctx context.Context, client *rpc.Client) error

func (r *runner) prepare(a action) (executeFunc, error) {
	// endpoint and CA certificate errors are permanent, report them before connecting
	if _, _, err := rpc.DialOptions(r.grpcConfig); err != nil {
		return nil, err
	}
	commitment := &r.grpcConfig.Commitment

	switch a.kind {
	case actionSubscribe:
		return r.prepareSubscribe(a.subscribe)
	case actionHealthCheck:
		return query(r, a.kind, "Health Check Result", func(ctx context.Context, client *rpc.Client) (*display.QueryResult, error) {
			resp, err := client.HealthCheck(ctx)
			if err != nil {
				return nil, err
			}
			return healthCheckResult(resp), nil
		}), nil
	case actionHealthWatch:
		return r.healthWatch, nil
	case actionSubscribeReplayInfo:
		return query(r, a.kind, "Subscribe Replay Info", func(ctx context.Context, client *rpc.Client) (*display.QueryResult, error) {
			resp, err := client.SubscribeReplayInfo(ctx)
			if err != nil {
				return nil, err
			}
			return replayInfoResult(resp), nil
		}), nil
	case actionPing:
		return query(r, a.kind, "Ping", func(ctx context.Context, client *rpc.Client) (*display.QueryResult, error) {
			resp, err := client.Ping(ctx, a.count)
			if err != nil {
				return nil, err
			}
			return pongResult(resp), nil
		}), nil
	case actionGetLatestBlockhash:
		return query(r, a.kind, "Latest Blockhash", func(ctx context.Context, client *rpc.Client) (*display.QueryResult, error) {
			resp, err := client.GetLatestBlockhash(ctx, commitment)
			if err != nil {
				return nil, err
			}
			return latestBlockhashResult(resp), nil
		}), nil
	case actionGetBlockHeight:
		return query(r, a.kind, "Block Height", func(ctx context.Context, client *rpc.Client) (*display.QueryResult, error) {
			resp, err := client.GetBlockHeight(ctx, commitment)
			if err != nil {
				return nil, err
			}
			return blockHeightResult(resp), nil
		}), nil
	case actionGetSlot:
		return query(r, a.kind, "Current Slot", func(ctx context.Context, client *rpc.Client) (*display.QueryResult, error) {
			resp, err := client.GetSlot(ctx, commitment)
			if err != nil {
				return nil, err
			}
			return slotResult(resp), nil
		}), nil
	case actionIsBlockhashValid:
		if err := filter.ValidateBlockhash(a.blockhash); err != nil {
			return nil, err
		}
		return query(r, a.kind, "Blockhash Validation", func(ctx context.Context, client *rpc.Client) (*display.QueryResult, error) {
			resp, err := client.IsBlockhashValid(ctx, a.blockhash, commitment)
			if err != nil {
				return nil, err
			}
			return blockhashValidResult(resp), nil
		}), nil
	case actionGetVersion:
		return query(r, a.kind, "Version", func(ctx context.Context, client *rpc.Client) (*display.QueryResult, error) {
			resp, err := client.GetVersion(ctx)
			if err != nil {
				return nil, err
			}
			return versionResult(resp), nil
		}), nil
	}
	return nil, types.NewValidationError("action", errors.New("unknown action"))
}

func query(r *runner, kind actionKind, title string, call func(ctx context.Context, client *rpc.Client) (*display.QueryResult, error)) executeFunc {
	return func(ctx context.Context, client *rpc.Client) (err error) {
		span, ctx := tracer.StartSpanFromContext(ctx, metrics.OperationQuery, metrics.QueryResourceName(kind.String()))
		defer func() { span.Finish(tracer.WithError(err)) }()

		result, err := call(ctx, client)
		r.exporter.IncrQuery(kind.String(), err == nil)
		if err != nil {
			return err
		}
		r.display.PrintQuery(title, result)
		return nil
	}
}

func (r *runner) prepareSubscribe(sub *config.Subscribe) (executeFunc, error) {
	request, err := filter.Build(&sub.Options)
	if err != nil {
		return nil, err
	}

	opts := []session.Option{session.WithExporter(r.exporter), session.WithClock(r.clock)}
	if sub.Verify {
		verifier := verify.NewVerifier(sub.VerifyDir, r.clock, verify.WithExporter(r.exporter))
		opts = append(opts, session.WithVerifier(verifier))
	}

	s := session.New(session.Config{
		Resub:  uint64(sub.Resub),
		Stats:  sub.Stats,
		Verify: sub.Verify,
	}, r.display, opts...)

	return func(ctx context.Context, client *rpc.Client) error {
		return s.Run(ctx, client, request)
	}, nil
}

func (r *runner) healthWatch(ctx context.Context, client *rpc.Client) error {
	stream, err := client.HealthWatch(ctx)
	if err != nil {
		return err
	}
	log.Info("stream opened")

	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			log.Info("stream closed")
			return nil
		}
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return types.NewTransportError("health-watch", err)
		}
		log.Infof("new message: %v", resp.GetStatus())
		r.display.PrintQuery("Health Watch", healthCheckResult(resp))
	}
}
