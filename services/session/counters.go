package session

import (
	"time"

	"github.com/bloXroute-Labs/geyser-client/types"
	"github.com/google/uuid"
)

// Counter is the number of messages of a category and their encoded size
type Counter struct {
	Messages uint64
	Bytes    uint64
}

func (c *Counter) add(size int) {
	c.Messages++
	c.Bytes += uint64(size)
}

// Counters are the statistics of one session. Pings and pongs share a counter.
type Counters struct {
	// RunID identifies the stream in logs
	RunID    string
	Kinds    map[types.UpdateKind]*Counter
	PingPong Counter
	Total    Counter
	Started  time.Time
	// Index is the number of data messages processed, it drives the resubscription
	Index uint64
}

func newCounters(started time.Time) *Counters {
	c := &Counters{
		RunID:   uuid.NewString(),
		Kinds:   make(map[types.UpdateKind]*Counter, len(types.DataKinds)),
		Started: started,
	}
	for _, kind := range types.DataKinds {
		c.Kinds[kind] = &Counter{}
	}
	return c
}

func (c *Counters) add(kind types.UpdateKind, size int) {
	if kind.IsControl() {
		c.PingPong.add(size)
	} else if counter, ok := c.Kinds[kind]; ok {
		counter.add(size)
	}
	c.Total.add(size)
}

// Stats is a snapshot of the session statistics handed to the printer
type Stats struct {
	Kinds    map[types.UpdateKind]Counter
	PingPong Counter
	Total    Counter
	Elapsed  time.Duration
	// Verify is set in verify mode
	Verify *VerifyStats
}

// VerifyStats reports the encoding verifier
type VerifyStats struct {
	// Ratio is the reference encoder time as a percentage of the primary encoder time
	Ratio      float64
	Mismatches uint64
}

func (c *Counters) snapshot(now time.Time) Stats {
	stats := Stats{
		Kinds:    make(map[types.UpdateKind]Counter, len(c.Kinds)),
		PingPong: c.PingPong,
		Total:    c.Total,
		Elapsed:  now.Sub(c.Started),
	}
	for kind, counter := range c.Kinds {
		stats.Kinds[kind] = *counter
	}
	return stats
}
