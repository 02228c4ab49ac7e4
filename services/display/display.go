package display

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
	"unicode"
	"unicode/utf8"

	geyserclient "github.com/bloXroute-Labs/geyser-client"
	"github.com/bloXroute-Labs/geyser-client/services/dispatch"
	"github.com/bloXroute-Labs/geyser-client/services/session"
	"github.com/bloXroute-Labs/geyser-client/types"
	"github.com/bloXroute-Labs/geyser-client/utils"
	"github.com/dustin/go-humanize"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

const lineWidth = 80

var (
	separator = strings.Repeat("=", lineWidth)
	divider   = strings.Repeat("-", lineWidth)
)

var categoryLabels = map[types.UpdateKind]string{
	types.AccountKind:           "accounts",
	types.SlotKind:              "slots",
	types.TransactionKind:       "transactions",
	types.TransactionStatusKind: "transactions statuses",
	types.EntryKind:             "entries",
	types.BlockMetaKind:         "blocks meta",
	types.BlockKind:             "blocks",
}

// QueryResult holds the rows of a one-shot query in display order
type QueryResult = orderedmap.OrderedMap[string, string]

// NewQueryResult returns an empty QueryResult
func NewQueryResult() *QueryResult {
	return orderedmap.New[string, string]()
}

// Display writes updates, statistics and query results to a terminal
type Display struct {
	mu    sync.Mutex
	out   io.Writer
	clock utils.Clock

	statsInterval  time.Duration
	lastStats      time.Time
	statsRendered  bool
	renderedFrames int
}

// Option configures a Display
type Option func(*Display)

// WithClock sets the clock throttling the statistics
func WithClock(clock utils.Clock) Option {
	return func(d *Display) {
		d.clock = clock
	}
}

// WithStatsInterval sets the minimum time between two statistics renders
func WithStatsInterval(interval time.Duration) Option {
	return func(d *Display) {
		d.statsInterval = interval
	}
}

// New creates a Display writing to out
func New(out io.Writer, opts ...Option) *Display {
	d := &Display{
		out:           out,
		clock:         utils.RealClock{},
		statsInterval: geyserclient.StatsRenderInterval,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// PrintUpdate writes a data update, one line per field
func (d *Display) PrintUpdate(record *dispatch.Record) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var b strings.Builder
	b.WriteString("\n" + separator + "\n")
	fmt.Fprintf(&b, "Update Type: %s\n", strings.ToUpper(string(record.Kind)))
	fmt.Fprintf(&b, "Filters: %s\n", strings.Join(record.Filters, ", "))
	fmt.Fprintf(&b, "Timestamp: %s\n", Timestamp(record.CreatedAt))
	b.WriteString(divider + "\n")
	if record.Fields != nil {
		for pair := record.Fields.Oldest(); pair != nil; pair = pair.Next() {
			fmt.Fprintf(&b, "  %s: %s\n", pair.Key, FormatValue(pair.Value))
		}
	}
	b.WriteString(separator + "\n")

	_, _ = io.WriteString(d.out, b.String())
}

// PrintStats writes the session counters. Renders closer than the stats interval to the
// previous one are skipped.
func (d *Display) PrintStats(stats session.Stats) {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.clock.Now()
	if d.statsRendered && now.Sub(d.lastStats) < d.statsInterval {
		return
	}
	d.statsRendered = true
	d.lastStats = now
	d.renderedFrames++

	_, _ = io.WriteString(d.out, RenderStats(stats))
}

// PrintQuery writes the result of a one-shot query
func (d *Display) PrintQuery(title string, result *QueryResult) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var b strings.Builder
	b.WriteString("\n" + separator + "\n")
	b.WriteString(title + "\n")
	b.WriteString(divider + "\n")
	for pair := result.Oldest(); pair != nil; pair = pair.Next() {
		fmt.Fprintf(&b, "  %s: %s\n", capitalize(pair.Key), pair.Value)
	}
	b.WriteString(separator + "\n")

	_, _ = io.WriteString(d.out, b.String())
}

// RenderedFrames is the number of statistics renders written so far
func (d *Display) RenderedFrames() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.renderedFrames
}

// RenderStats formats a statistics snapshot
func RenderStats(stats session.Stats) string {
	var b strings.Builder
	b.WriteString("\n" + divider + "\n")
	for _, kind := range types.DataKinds {
		writeCounter(&b, categoryLabels[kind], stats.Kinds[kind])
	}
	writeCounter(&b, "ping/pong", stats.PingPong)
	writeCounter(&b, "total", stats.Total)

	elapsed := stats.Elapsed.Truncate(time.Millisecond)
	rate := 0.0
	if seconds := stats.Elapsed.Seconds(); seconds > 0 {
		rate = float64(stats.Total.Messages) / seconds
	}
	fmt.Fprintf(&b, "%-22s %s (%s msg/s)\n", "elapsed", elapsed, humanize.CommafWithDigits(rate, 1))

	if stats.Verify != nil {
		fmt.Fprintf(&b, "%-22s %.2f%% (mismatches %s)\n", "verify", stats.Verify.Ratio, humanize.Comma(int64(stats.Verify.Mismatches)))
	}
	return b.String()
}

func writeCounter(b *strings.Builder, label string, c session.Counter) {
	fmt.Fprintf(b, "%-22s %s / %s\n", label, humanize.Comma(int64(c.Messages)), humanize.Bytes(c.Bytes))
}

// Timestamp formats t as unix seconds and zero padded microseconds
func Timestamp(t time.Time) string {
	return fmt.Sprintf("%d.%06d", t.Unix(), t.Nanosecond()/int(time.Microsecond))
}

// FormatValue renders a field value on a single line. Strings longer than MaxPrintedValueLen
// are truncated.
func FormatValue(v any) string {
	switch value := v.(type) {
	case nil:
		return "null"
	case string:
		if len(value) > geyserclient.MaxPrintedValueLen {
			return fmt.Sprintf("%s... (truncated, %d chars)", value[:geyserclient.MaxPrintedValueLen], len(value))
		}
		return value
	case bool, int, int32, int64, uint, uint32, uint64, float64:
		return fmt.Sprint(value)
	}
	encoded, err := json.Marshal(v)
	if err != nil {
		return "N/A"
	}
	return string(encoded)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
