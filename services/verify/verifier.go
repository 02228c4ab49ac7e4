package verify

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strconv"

	log "github.com/bloXroute-Labs/geyser-client/logger"
	"github.com/bloXroute-Labs/geyser-client/metrics"
	pb "github.com/bloXroute-Labs/geyser-client/protobuf"
	"github.com/bloXroute-Labs/geyser-client/utils"
)

// Checks reported on a mismatch
const (
	CheckWireLength    = "wire_length"
	CheckEncoderLength = "encoder_length"
	CheckWireBytes     = "wire_bytes"
	CheckEncoderBytes  = "encoder_bytes"
)

const (
	artifactPermissions  = 0o644
	directoryPermissions = 0o755
	// maxArtifactSuffix bounds the names tried when artifacts share a timestamp
	maxArtifactSuffix = 1000
)

// Result is the outcome of verifying one update
type Result struct {
	// Failed lists the checks that did not hold, empty when the encodings agree
	Failed []string
	// Path is the artifact written for a mismatch, empty when nothing was written
	Path string
}

// Match reports whether every check held
func (r Result) Match() bool {
	return len(r.Failed) == 0
}

// Verifier re-encodes received updates with two encoders and compares the results
// with each other and with the bytes received
type Verifier struct {
	primary   Encoder
	reference Encoder
	dir       string
	clock     utils.Clock
	exporter  metrics.Exporter

	primaryNanos   int64
	referenceNanos int64
	mismatches     uint64
}

// Option configures a Verifier
type Option func(*Verifier)

// WithEncoders replaces the primary and reference encoders
func WithEncoders(primary, reference Encoder) Option {
	return func(v *Verifier) {
		v.primary = primary
		v.reference = reference
	}
}

// WithExporter reports mismatches to exporter
func WithExporter(exporter metrics.Exporter) Option {
	return func(v *Verifier) {
		v.exporter = exporter
	}
}

// NewVerifier creates a verifier writing mismatching messages into dir
func NewVerifier(dir string, clock utils.Clock, opts ...Option) *Verifier {
	v := &Verifier{
		primary:   PrimaryEncoder{},
		reference: ReferenceEncoder{},
		dir:       dir,
		clock:     clock,
		exporter:  &metrics.NoOpExporter{},
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Verify runs the checks on u. On a mismatch the primary encoding is saved as an artifact.
// Failing to save it is logged and does not fail the check.
func (v *Verifier) Verify(u *pb.SubscribeUpdate) Result {
	wire := u.WireBytes()

	start := v.clock.Now()
	primary := v.primary.Encode(u)
	v.primaryNanos += v.clock.Now().Sub(start).Nanoseconds()

	start = v.clock.Now()
	reference := v.reference.Encode(u)
	v.referenceNanos += v.clock.Now().Sub(start).Nanoseconds()

	var result Result
	if len(wire) != len(primary) {
		result.Failed = append(result.Failed, CheckWireLength)
	}
	if len(primary) != len(reference) {
		result.Failed = append(result.Failed, CheckEncoderLength)
	}
	if !bytes.Equal(wire, primary) {
		result.Failed = append(result.Failed, CheckWireBytes)
	}
	if !bytes.Equal(primary, reference) {
		result.Failed = append(result.Failed, CheckEncoderBytes)
	}
	if result.Match() {
		return result
	}

	v.mismatches++
	for _, check := range result.Failed {
		v.exporter.IncrVerifyMismatch(check)
	}

	path, err := v.save(primary)
	if err != nil {
		log.Errorf("failed to save unmatched message: %v", err)
		return result
	}
	result.Path = path
	log.WithField("checks", result.Failed).Warnf("found unmatched message, saved to %v", path)
	return result
}

// save writes encoded into a new file named after the current time. A name already taken
// gets a numeric suffix, existing artifacts are never overwritten.
func (v *Verifier) save(encoded []byte) (string, error) {
	if err := os.MkdirAll(v.dir, directoryPermissions); err != nil {
		return "", err
	}

	name := strconv.FormatInt(v.clock.Now().UnixNano(), 10)
	path := filepath.Join(v.dir, name)
	for i := 1; ; i++ {
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, artifactPermissions)
		if errors.Is(err, os.ErrExist) && i < maxArtifactSuffix {
			path = filepath.Join(v.dir, name+"-"+strconv.Itoa(i))
			continue
		}
		if err != nil {
			return "", err
		}
		if _, err = f.Write(encoded); err != nil {
			_ = f.Close()
			return "", err
		}
		return path, f.Close()
	}
}

// Reset clears the timings and the mismatch count
func (v *Verifier) Reset() {
	v.primaryNanos = 0
	v.referenceNanos = 0
	v.mismatches = 0
}

// Ratio returns the time spent by the reference encoder as a percentage of the primary encoder
func (v *Verifier) Ratio() float64 {
	if v.primaryNanos == 0 {
		return 0
	}
	return 100 * float64(v.referenceNanos) / float64(v.primaryNanos)
}

// Mismatches returns the number of updates that failed a check
func (v *Verifier) Mismatches() uint64 {
	return v.mismatches
}
