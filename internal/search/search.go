// Package search implements the terminal search overlay: a popup with a
// query input and the results of the search provider.
package search

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/trackersearch/internal/keymap"
	"github.com/llehouerou/trackersearch/internal/provider"
	"github.com/llehouerou/trackersearch/internal/tracker"
)

// Provider is what the overlay needs from a search provider.
type Provider interface {
	Normalize(ctx context.Context, terms []string) ([]tracker.Result, error)
	DescribeResult(r tracker.Result) provider.ResultMeta
	Activate(ctx context.Context, id string) error
}

// resultsMsg carries the outcome of one query. seq identifies the query so
// that answers to outdated queries are dropped.
type resultsMsg struct {
	seq   int
	items []Item
	err   error
}

// activatedMsg reports the outcome of opening a result.
type activatedMsg struct {
	item Item
	err  error
}

// Model is the search overlay.
type Model struct {
	ctx      context.Context
	provider Provider

	input   textinput.Model
	query   string
	seq     int
	items   []Item
	err     error
	loading bool

	cursor int
	offset int
	width  int
	height int

	selected *Item
	canceled bool
}

// New creates an overlay searching with p. ctx bounds every query and
// activation.
func New(ctx context.Context, p Provider) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Search files..."
	ti.CharLimit = 256
	ti.Focus()

	return Model{
		ctx:      ctx,
		provider: p,
		input:    ti,
	}
}

// SetQuery sets the initial query. Its search starts with Init.
func (m *Model) SetQuery(query string) {
	m.input.SetValue(query)
	m.input.CursorEnd()
	m.query = m.input.Value()
	m.loading = strings.TrimSpace(m.query) != ""
}

// Selected returns the result that was opened, if any.
func (m Model) Selected() (Item, bool) {
	if m.selected == nil {
		return Item{}, false
	}
	return *m.selected, true
}

// Canceled reports whether the user left without opening a result.
func (m Model) Canceled() bool {
	return m.canceled
}

// Items returns the displayed results.
func (m Model) Items() []Item {
	return m.items
}

// Err returns the last query or activation error.
func (m Model) Err() error {
	return m.err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if strings.TrimSpace(m.query) == "" {
		return textinput.Blink
	}
	return tea.Batch(textinput.Blink, m.searchCmd(m.seq, m.query))
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(m.popupWidth()-6, 1)
		m.adjustOffset()
		return m, nil

	case resultsMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.loading = false
		m.err = msg.err
		m.items = msg.items
		if m.cursor >= len(m.items) {
			m.cursor = max(0, len(m.items)-1)
		}
		m.adjustOffset()
		return m, nil

	case activatedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		item := msg.item
		m.selected = &item
		return m, tea.Quit

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

var bindings = keymap.NewResolver(keymap.Overlay)

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch bindings.Resolve(msg.String()) {
	case keymap.ActionQuit:
		m.canceled = true
		return m, tea.Quit

	case keymap.ActionOpen:
		if m.cursor >= len(m.items) {
			return m, nil
		}
		return m, m.activateCmd(m.items[m.cursor])

	case keymap.ActionMoveUp:
		m.moveCursor(-1)
		return m, nil

	case keymap.ActionMoveDown:
		m.moveCursor(1)
		return m, nil

	case keymap.ActionPageUp:
		m.moveCursor(-m.visibleHeight())
		return m, nil

	case keymap.ActionPageDown:
		m.moveCursor(m.visibleHeight())
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() == m.query {
		return m, cmd
	}
	return m, tea.Batch(cmd, m.requery())
}

func (m *Model) moveCursor(delta int) {
	if len(m.items) == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), len(m.items)-1)
	m.adjustOffset()
}

// requery starts a search for the current input.
func (m *Model) requery() tea.Cmd {
	m.query = m.input.Value()
	m.seq++
	m.cursor = 0
	m.offset = 0
	m.loading = strings.TrimSpace(m.query) != ""
	return m.searchCmd(m.seq, m.query)
}

func (m Model) searchCmd(seq int, query string) tea.Cmd {
	ctx, p := m.ctx, m.provider
	terms := strings.Fields(query)
	return func() tea.Msg {
		if len(terms) == 0 {
			return resultsMsg{seq: seq}
		}
		results, err := p.Normalize(ctx, terms)
		if err != nil {
			return resultsMsg{seq: seq, err: err}
		}
		return resultsMsg{seq: seq, items: newItems(p, results)}
	}
}

func (m Model) activateCmd(item Item) tea.Cmd {
	ctx, p := m.ctx, m.provider
	return func() tea.Msg {
		return activatedMsg{item: item, err: p.Activate(ctx, item.Result.ID)}
	}
}

func (m *Model) adjustOffset() {
	visible := m.visibleHeight()
	if visible <= 0 {
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
}
