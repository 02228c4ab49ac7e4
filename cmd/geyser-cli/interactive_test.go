package main

import (
	"testing"

	"github.com/bloXroute-Labs/geyser-client/config"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wsol = "So11111111111111111111111111111111111111112"

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func typeText(text string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)}
}

func send(p *prompt, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = p.Update(msg)
	}
	return cmd
}

// down moves the cursor n rows
func down(n int) []tea.Msg {
	msgs := make([]tea.Msg, n)
	for i := range msgs {
		msgs[i] = keyDown
	}
	return msgs
}

func TestPrompt_HealthCheck(t *testing.T) {
	p := newPrompt(&config.Subscribe{})
	send(p, down(2)...)
	cmd := send(p, keyEnter)

	require.True(t, p.done)
	require.NotNil(t, cmd)
	assert.Equal(t, actionHealthCheck, p.result.kind)
}

func TestPrompt_CursorStaysInRange(t *testing.T) {
	p := newPrompt(&config.Subscribe{})
	send(p, keyUp, keyUp)
	assert.Equal(t, 0, p.cursor)
	send(p, down(10)...)
	assert.Equal(t, 2, p.cursor)
	assert.Contains(t, p.View(), "> "+choiceHealth)
}

func TestPrompt_IsBlockhashValid(t *testing.T) {
	p := newPrompt(&config.Subscribe{})
	send(p, keyDown, keyEnter)
	send(p, down(3)...)
	send(p, keyEnter)

	assert.Contains(t, p.View(), "Enter blockhash to validate:")
	send(p, typeText(" 5eykt4UsFv8P8NJdTREpY1vzqKqZKvdpKuc147dw2N9d "), keyEnter)

	require.True(t, p.done)
	assert.Equal(t, actionIsBlockhashValid, p.result.kind)
	assert.Equal(t, "5eykt4UsFv8P8NJdTREpY1vzqKqZKvdpKuc147dw2N9d", p.result.blockhash)
}

func TestPrompt_Accounts(t *testing.T) {
	base := &config.Subscribe{Resub: 5}
	p := newPrompt(base)
	send(p, keyEnter, keyEnter)

	send(p, typeText(wsol+", ,"+wsol), keyEnter)
	require.False(t, p.done)
	send(p, keyEnter)

	require.True(t, p.done)
	assert.Equal(t, actionSubscribe, p.result.kind)
	require.Same(t, base, p.result.subscribe)
	opts := p.result.subscribe.Options
	assert.True(t, opts.Accounts.Enabled)
	assert.Equal(t, []string{wsol, wsol}, opts.Accounts.Addresses)
	assert.Empty(t, opts.Accounts.Owners)
	assert.Equal(t, uint(5), p.result.subscribe.Resub)
}

func TestPrompt_Transactions(t *testing.T) {
	p := newPrompt(&config.Subscribe{})
	send(p, keyEnter, keyDown, keyEnter)

	send(p, typeText(wsol), keyEnter)
	send(p, keyDown, keyEnter)
	send(p, down(2)...)
	send(p, keyEnter)

	require.True(t, p.done)
	opts := p.result.subscribe.Options
	assert.True(t, opts.Transactions.Enabled)
	assert.Equal(t, []string{wsol}, opts.Transactions.AccountInclude)
	require.NotNil(t, opts.Transactions.Vote)
	assert.False(t, *opts.Transactions.Vote)
	assert.Nil(t, opts.Transactions.Failed)
}

func TestPrompt_Blocks(t *testing.T) {
	p := newPrompt(&config.Subscribe{})
	send(p, keyEnter)
	send(p, down(3)...)
	send(p, keyEnter)
	send(p, keyEnter, keyDown, keyEnter)

	require.True(t, p.done)
	opts := p.result.subscribe.Options
	assert.True(t, opts.Blocks.Enabled)
	assert.True(t, *opts.Blocks.IncludeTransactions)
	assert.False(t, *opts.Blocks.IncludeAccounts)
}

func TestPrompt_CategoriesWithoutQuestions(t *testing.T) {
	tests := []struct {
		name   string
		row    int
		verify func(t *testing.T, sub *config.Subscribe)
	}{
		{name: "slots", row: 2, verify: func(t *testing.T, sub *config.Subscribe) { assert.True(t, sub.Options.Slots.Enabled) }},
		{name: "entries", row: 4, verify: func(t *testing.T, sub *config.Subscribe) { assert.True(t, sub.Options.Entries) }},
		{name: "block meta", row: 5, verify: func(t *testing.T, sub *config.Subscribe) { assert.True(t, sub.Options.BlocksMeta) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPrompt(&config.Subscribe{})
			send(p, keyEnter)
			send(p, down(tt.row)...)
			send(p, keyEnter)

			require.True(t, p.done)
			assert.Equal(t, actionSubscribe, p.result.kind)
			assert.False(t, p.result.subscribe.Options.Empty())
			tt.verify(t, p.result.subscribe)
		})
	}
}

func TestPrompt_Cancel(t *testing.T) {
	p := newPrompt(&config.Subscribe{})
	cmd := send(p, keyEsc)

	require.NotNil(t, cmd)
	assert.True(t, p.canceled)
	assert.False(t, p.done)
	assert.Empty(t, p.View())
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Nil(t, splitList(" , "))
	assert.Equal(t, []string{"a", "b"}, splitList(" a,b ,"))
}
