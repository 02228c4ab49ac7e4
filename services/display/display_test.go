package display

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/bloXroute-Labs/geyser-client/services/dispatch"
	"github.com/bloXroute-Labs/geyser-client/services/session"
	"github.com/bloXroute-Labs/geyser-client/types"
	"github.com/bloXroute-Labs/geyser-client/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

func TestTimestamp(t *testing.T) {
	assert.Equal(t, "1700000000.000042", Timestamp(time.Unix(1700000000, 42_500)))
	assert.Equal(t, "1700000000.123456", Timestamp(time.Unix(1700000000, 123_456_789)))
}

func TestFormatValue(t *testing.T) {
	long := strings.Repeat("ab", 60)

	nested := orderedmap.New[string, any]()
	nested.Set("lamports", uint64(5))
	nested.Set("owner", "11111111111111111111111111111111")

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "nil", value: nil, want: "null"},
		{name: "short string", value: "abc", want: "abc"},
		{name: "long string", value: long, want: long[:100] + "... (truncated, 120 chars)"},
		{name: "uint64", value: uint64(18446744073709551615), want: "18446744073709551615"},
		{name: "bool", value: true, want: "true"},
		{name: "nested", value: nested, want: `{"lamports":5,"owner":"11111111111111111111111111111111"}`},
		{name: "list", value: []any{uint64(1), "x"}, want: `[1,"x"]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatValue(tt.value))
		})
	}
}

func TestDisplay_PrintUpdate(t *testing.T) {
	var out bytes.Buffer
	d := New(&out)

	fields := orderedmap.New[string, any]()
	fields.Set("slot", uint64(100))
	fields.Set("parent", nil)
	fields.Set("status", "confirmed")
	fields.Set("deadError", nil)

	d.PrintUpdate(&dispatch.Record{
		Kind:      types.SlotKind,
		CreatedAt: time.Unix(1700000000, 1_000),
		Filters:   []string{"client", "other"},
		Fields:    fields,
	})

	lines := strings.Split(strings.TrimPrefix(out.String(), "\n"), "\n")
	require.Len(t, lines, 11)
	assert.Equal(t, separator, lines[0])
	assert.Equal(t, "Update Type: SLOT", lines[1])
	assert.Equal(t, "Filters: client, other", lines[2])
	assert.Equal(t, "Timestamp: 1700000000.000001", lines[3])
	assert.Equal(t, divider, lines[4])
	assert.Equal(t, "  slot: 100", lines[5])
	assert.Equal(t, "  parent: null", lines[6])
	assert.Equal(t, "  status: confirmed", lines[7])
	assert.Equal(t, "  deadError: null", lines[8])
	assert.Equal(t, separator, lines[9])
	assert.Equal(t, "", lines[10])
}

func TestDisplay_PrintStatsThrottled(t *testing.T) {
	var out bytes.Buffer
	clock := utils.NewMockClock()
	clock.SetTime(time.Unix(1700000000, 0))
	d := New(&out, WithClock(clock), WithStatsInterval(time.Second))

	stats := session.Stats{Kinds: map[types.UpdateKind]session.Counter{}}

	d.PrintStats(stats)
	assert.Equal(t, 1, d.RenderedFrames())

	clock.IncTime(300 * time.Millisecond)
	d.PrintStats(stats)
	clock.IncTime(300 * time.Millisecond)
	d.PrintStats(stats)
	assert.Equal(t, 1, d.RenderedFrames())

	clock.IncTime(400 * time.Millisecond)
	d.PrintStats(stats)
	assert.Equal(t, 2, d.RenderedFrames())

	assert.Equal(t, 2, strings.Count(out.String(), "ping/pong"))
}

func TestRenderStats(t *testing.T) {
	stats := session.Stats{
		Kinds: map[types.UpdateKind]session.Counter{
			types.AccountKind: {Messages: 1234, Bytes: 1500},
			types.SlotKind:    {Messages: 3, Bytes: 60},
		},
		PingPong: session.Counter{Messages: 2, Bytes: 8},
		Total:    session.Counter{Messages: 1239, Bytes: 1568},
		Elapsed:  2 * time.Second,
		Verify:   &session.VerifyStats{Ratio: 87.654, Mismatches: 0},
	}

	rendered := RenderStats(stats)
	assert.Contains(t, rendered, row("accounts", "1,234 / 1.5 kB\n"))
	assert.Contains(t, rendered, row("slots", "3 / 60 B\n"))
	assert.Contains(t, rendered, row("blocks meta", "0 / 0 B\n"))
	assert.Contains(t, rendered, row("ping/pong", "2 / 8 B\n"))
	assert.Contains(t, rendered, row("total", "1,239 / 1.6 kB\n"))
	assert.Contains(t, rendered, row("elapsed", "2s"))
	assert.Contains(t, rendered, row("verify", "87.65% (mismatches 0)\n"))

	stats.Verify = nil
	assert.NotContains(t, RenderStats(stats), "verify")
}

func row(label, value string) string {
	return fmt.Sprintf("%-22s %s", label, value)
}

func TestDisplay_PrintQuery(t *testing.T) {
	var out bytes.Buffer
	d := New(&out)

	result := NewQueryResult()
	result.Set("slot", "100")
	result.Set("blockhash", "4sGjMW1sUnHzSxGspuhpqLDx6wiyjNtZAMdL4VZHirAn")

	d.PrintQuery("Latest Blockhash", result)

	assert.Equal(t, "\n"+separator+"\nLatest Blockhash\n"+divider+
		"\n  Slot: 100\n  Blockhash: 4sGjMW1sUnHzSxGspuhpqLDx6wiyjNtZAMdL4VZHirAn\n"+separator+"\n", out.String())
}
