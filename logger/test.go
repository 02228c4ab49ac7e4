package logger

import (
	"io"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Discard creates an entry dropping everything, for tests
func Discard() *Entry {
	return &Entry{ee: zerolog.New(io.Discard)}
}

// TestEntry is a record captured by GlobalTest
type TestEntry struct {
	Level   string
	Message string
}

// GlobalTest captures the records of the global logger
type GlobalTest struct {
	mu      sync.RWMutex
	entries []TestEntry
}

// NewGlobal routes the global logger to a new GlobalTest
func NewGlobal() *GlobalTest {
	gt := &GlobalTest{}

	w := newWriter(io.Discard, fileLayout, false)
	w.FormatPrepare = func(m map[string]interface{}) error {
		entry := TestEntry{}
		entry.Level, _ = m[zerolog.LevelFieldName].(string)
		entry.Message, _ = m[zerolog.MessageFieldName].(string)
		gt.add(entry)
		return nil
	}

	lw := &levelWriter{
		WriteCloser: w,
		minLevel:    zerolog.TraceLevel,
		maxLevel:    zerolog.FatalLevel,
		systemLevel: zerolog.TraceLevel,
	}

	initConfigMutex.Lock()
	defer initConfigMutex.Unlock()

	log.Logger = log.Output(lw)

	return gt
}

func (g *GlobalTest) add(entry TestEntry) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.entries = append(g.entries, entry)
}

// LastEntry returns the last captured record or nil
func (g *GlobalTest) LastEntry() *TestEntry {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if len(g.entries) == 0 {
		return nil
	}
	entry := g.entries[len(g.entries)-1]
	return &entry
}

// AllEntries returns a copy of every captured record
func (g *GlobalTest) AllEntries() []TestEntry {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return append([]TestEntry(nil), g.entries...)
}

// Messages returns the messages of every captured record in order
func (g *GlobalTest) Messages() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	messages := make([]string, 0, len(g.entries))
	for _, entry := range g.entries {
		messages = append(messages, entry.Message)
	}
	return messages
}

// Reset drops every captured record
func (g *GlobalTest) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.entries = nil
}
