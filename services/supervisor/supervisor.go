package supervisor

import (
	"context"
	"time"

	geyserclient "github.com/bloXroute-Labs/geyser-client"
	log "github.com/bloXroute-Labs/geyser-client/logger"
	"github.com/bloXroute-Labs/geyser-client/metrics"
	"github.com/bloXroute-Labs/geyser-client/types"
	"github.com/bloXroute-Labs/geyser-client/utils"
	"github.com/cenkalti/backoff/v4"
)

// Attempt connects and does the work of one cycle. Returning nil finishes the supervisor.
type Attempt func(ctx context.Context) error

// Supervisor repeats an attempt with exponential backoff until it succeeds, fails permanently or
// its context is done
type Supervisor struct {
	endpoint   string
	newBackOff func() backoff.BackOff
	timer      backoff.Timer
	exporter   metrics.Exporter
}

// Option configures a Supervisor
type Option func(*Supervisor)

// WithBackOff replaces the backoff policy
func WithBackOff(newBackOff func() backoff.BackOff) Option {
	return func(s *Supervisor) {
		s.newBackOff = newBackOff
	}
}

// WithTimer replaces the timer waiting between attempts
func WithTimer(timer backoff.Timer) Option {
	return func(s *Supervisor) {
		s.timer = timer
	}
}

// WithClock waits between attempts on timers of clock
func WithClock(clock utils.Clock) Option {
	return func(s *Supervisor) {
		s.timer = utils.BackoffTimer(clock)
	}
}

// WithExporter counts reconnects
func WithExporter(exporter metrics.Exporter) Option {
	return func(s *Supervisor) {
		s.exporter = exporter
	}
}

// NewExponentialBackOff returns an unbounded exponential backoff growing by BackoffMultiplier from
// initial up to max
func NewExponentialBackOff(initial, max time.Duration) *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = initial
	b.Multiplier = geyserclient.BackoffMultiplier
	b.MaxInterval = max
	b.MaxElapsedTime = 0
	b.Reset()
	return b
}

// New creates a supervisor for endpoint with the default backoff policy
func New(endpoint string, opts ...Option) *Supervisor {
	s := &Supervisor{
		endpoint: endpoint,
		newBackOff: func() backoff.BackOff {
			return NewExponentialBackOff(geyserclient.BackoffInitialInterval, geyserclient.BackoffMaxInterval)
		},
		exporter: &metrics.NoOpExporter{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run executes attempt until it returns nil or a permanent error, or ctx is done
func (s *Supervisor) Run(ctx context.Context, attempt Attempt) error {
	firstAttempt := true

	operation := func() error {
		if firstAttempt {
			firstAttempt = false
			log.Infof("connecting to %v", s.endpoint)
		} else {
			log.Info("retry to connect to the server")
		}

		err := attempt(ctx)
		if err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return backoff.Permanent(ctx.Err())
		}
		if types.IsPermanent(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	notify := func(err error, next time.Duration) {
		log.Errorf("failed to connect: %v, retry in %v", err, next)
		s.exporter.IncrReconnect(types.ErrorTypeOf(err).String())
	}

	return backoff.RetryNotifyWithTimer(operation, backoff.WithContext(s.newBackOff(), ctx), notify, s.timer)
}
