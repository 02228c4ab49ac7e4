package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bloXroute-Labs/geyser-client/config"
	"github.com/bloXroute-Labs/geyser-client/types"
	"github.com/bloXroute-Labs/geyser-client/utils/ptr"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	choiceIndex  = "Index Data (Subscribe)"
	choiceQuery  = "Query Commands"
	choiceHealth = "Health Check"

	choiceLatestBlockhash  = "Get Latest Blockhash"
	choiceBlockHeight      = "Get Block Height"
	choiceSlot             = "Get Slot"
	choiceIsBlockhashValid = "Is Blockhash Valid"

	choiceAccounts     = "Accounts"
	choiceTransactions = "Transactions"
	choiceSlots        = "Slots"
	choiceBlocks       = "Blocks"
	choiceEntries      = "Entries"
	choiceBlockMeta    = "Block Meta"

	choiceYes = "Yes"
	choiceNo  = "No"
	choiceAll = "All"
)

var errPromptCanceled = errors.New("interactive prompt canceled")

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	hintStyle     = lipgloss.NewStyle().Faint(true)
)

type promptKeys struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

var defaultPromptKeys = promptKeys{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "esc"),
		key.WithHelp("esc", "quit"),
	),
}

// step is one question of the prompt. A step without choices reads free text.
type step struct {
	title   string
	choices []string
	apply   func(p *prompt, answer string)
}

// prompt asks the questions selecting an action, it produces the same options the flags do
type prompt struct {
	keys   promptKeys
	steps  []step
	cursor int
	input  textinput.Model

	subscribe *config.Subscribe
	result    action
	done      bool
	canceled  bool
}

func newPrompt(base *config.Subscribe) *prompt {
	input := textinput.New()
	input.Prompt = "> "
	input.Focus()

	p := &prompt{
		keys:      defaultPromptKeys,
		input:     input,
		subscribe: base,
	}
	p.push(step{
		title:   "What would you like to do?",
		choices: []string{choiceIndex, choiceQuery, choiceHealth},
		apply:   (*prompt).applyMain,
	})
	return p
}

func (p *prompt) push(s ...step) {
	p.steps = append(p.steps, s...)
}

func (p *prompt) current() *step {
	if len(p.steps) == 0 {
		return nil
	}
	return &p.steps[0]
}

func (p *prompt) finish(a action) {
	p.result = a
	p.done = true
}

func (p *prompt) applyMain(answer string) {
	switch answer {
	case choiceQuery:
		p.push(step{
			title:   "Select a query command:",
			choices: []string{choiceLatestBlockhash, choiceBlockHeight, choiceSlot, choiceIsBlockhashValid},
			apply:   (*prompt).applyQuery,
		})
	case choiceHealth:
		p.finish(action{kind: actionHealthCheck})
	case choiceIndex:
		p.push(step{
			title:   "What would you like to index?",
			choices: []string{choiceAccounts, choiceTransactions, choiceSlots, choiceBlocks, choiceEntries, choiceBlockMeta},
			apply:   (*prompt).applyCategory,
		})
	}
}

func (p *prompt) applyQuery(answer string) {
	switch answer {
	case choiceLatestBlockhash:
		p.finish(action{kind: actionGetLatestBlockhash})
	case choiceBlockHeight:
		p.finish(action{kind: actionGetBlockHeight})
	case choiceSlot:
		p.finish(action{kind: actionGetSlot})
	case choiceIsBlockhashValid:
		p.push(step{
			title: "Enter blockhash to validate:",
			apply: func(p *prompt, blockhash string) {
				p.finish(action{kind: actionIsBlockhashValid, blockhash: strings.TrimSpace(blockhash)})
			},
		})
	}
}

func (p *prompt) applyCategory(answer string) {
	opts := &p.subscribe.Options
	switch answer {
	case choiceAccounts:
		opts.Accounts.Enabled = true
		p.push(
			step{
				title: "Enter account pubkey(s) to monitor (comma-separated, or press Enter for all):",
				apply: func(p *prompt, s string) { opts.Accounts.Addresses = splitList(s) },
			},
			step{
				title: "Enter owner pubkey(s) to filter by (comma-separated, or press Enter to skip):",
				apply: func(p *prompt, s string) { opts.Accounts.Owners = splitList(s) },
			},
		)
	case choiceTransactions:
		opts.Transactions.Enabled = true
		p.push(
			step{
				title: "Enter account pubkey(s) to include in transactions (comma-separated, or press Enter to skip):",
				apply: func(p *prompt, s string) { opts.Transactions.AccountInclude = splitList(s) },
			},
			step{
				title:   "Include vote transactions?",
				choices: []string{choiceYes, choiceNo, choiceAll},
				apply:   func(p *prompt, s string) { opts.Transactions.Vote = triState(s) },
			},
			step{
				title:   "Include failed transactions?",
				choices: []string{choiceYes, choiceNo, choiceAll},
				apply:   func(p *prompt, s string) { opts.Transactions.Failed = triState(s) },
			},
		)
	case choiceSlots:
		opts.Slots.Enabled = true
	case choiceBlocks:
		opts.Blocks.Enabled = true
		p.push(
			step{
				title:   "Include transactions in blocks?",
				choices: []string{choiceYes, choiceNo},
				apply:   func(p *prompt, s string) { opts.Blocks.IncludeTransactions = ptr.New(s == choiceYes) },
			},
			step{
				title:   "Include accounts in blocks?",
				choices: []string{choiceYes, choiceNo},
				apply:   func(p *prompt, s string) { opts.Blocks.IncludeAccounts = ptr.New(s == choiceYes) },
			},
		)
	case choiceEntries:
		opts.Entries = true
	case choiceBlockMeta:
		opts.BlocksMeta = true
	}
}

// Init implements tea.Model
func (p *prompt) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (p *prompt) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}
	if key.Matches(keyMsg, p.keys.Quit) {
		p.canceled = true
		return p, tea.Quit
	}

	s := p.current()
	if s == nil {
		return p, tea.Quit
	}

	if s.choices == nil {
		if keyMsg.Type == tea.KeyEnter {
			return p, p.answer(p.input.Value())
		}
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd
	}

	switch {
	case key.Matches(keyMsg, p.keys.Up):
		if p.cursor > 0 {
			p.cursor--
		}
	case key.Matches(keyMsg, p.keys.Down):
		if p.cursor < len(s.choices)-1 {
			p.cursor++
		}
	case key.Matches(keyMsg, p.keys.Select):
		return p, p.answer(s.choices[p.cursor])
	}
	return p, nil
}

func (p *prompt) answer(answer string) tea.Cmd {
	s := p.steps[0]
	p.steps = p.steps[1:]
	p.cursor = 0
	p.input.SetValue("")

	s.apply(p, answer)

	if p.done {
		return tea.Quit
	}
	if len(p.steps) == 0 {
		p.finish(action{kind: actionSubscribe, subscribe: p.subscribe})
		return tea.Quit
	}
	return nil
}

// View implements tea.Model
func (p *prompt) View() string {
	s := p.current()
	if p.done || p.canceled || s == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(s.title) + "\n\n")
	if s.choices == nil {
		b.WriteString(p.input.View() + "\n")
	} else {
		for i, choice := range s.choices {
			if i == p.cursor {
				b.WriteString(selectedStyle.Render("> "+choice) + "\n")
			} else {
				b.WriteString("  " + choice + "\n")
			}
		}
	}
	b.WriteString("\n" + hintStyle.Render(fmt.Sprintf("%s %s • %s %s",
		p.keys.Select.Help().Key, p.keys.Select.Help().Desc,
		p.keys.Quit.Help().Key, p.keys.Quit.Help().Desc)) + "\n")
	return b.String()
}

// runPrompt runs the interactive prompt on in and out. base carries the subscribe settings
// the selected categories are added to.
func runPrompt(base *config.Subscribe, in io.Reader, out io.Writer) (action, error) {
	_, _ = fmt.Fprintln(out, "\nWelcome to the Solana Geyser client")

	p := newPrompt(base)
	model, err := tea.NewProgram(p, tea.WithInput(in), tea.WithOutput(out)).Run()
	if err != nil {
		return action{}, fmt.Errorf("interactive prompt failed: %w", err)
	}

	p = model.(*prompt)
	if p.canceled || !p.done {
		return action{}, types.NewValidationError("index", errPromptCanceled)
	}
	return p.result, nil
}

func splitList(s string) []string {
	var list []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	return list
}

func triState(answer string) *bool {
	switch answer {
	case choiceYes:
		return ptr.New(true)
	case choiceNo:
		return ptr.New(false)
	}
	return nil
}
