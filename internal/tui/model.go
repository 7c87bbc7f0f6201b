// Package tui implements the interactive ledger using bubbletea: a locked
// screen, a quick-entry screen, the home feed with the budget waterline,
// and the category stats view.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/lightledger/internal/ledger"
	"github.com/Veraticus/lightledger/internal/llm"
	"github.com/Veraticus/lightledger/internal/model"
)

// State represents the current screen.
type State int

const (
	// StateLocked is the initial screen; nothing is shown until unlock.
	StateLocked State = iota
	// StateEntry is the quick-entry form.
	StateEntry
	// StateHome is the feed with budget waterline and recent records.
	StateHome
	// StateStats is the per-category breakdown.
	StateStats
)

// entryFocus tracks which part of the entry form receives keystrokes.
type entryFocus int

const (
	focusAmount entryFocus = iota
	focusNote
	focusSemantic
)

// Config holds everything the TUI needs. Dispatcher may be nil when no
// parser is configured; the semantic field then shows a hint instead.
type Config struct {
	Store      *ledger.Store
	Dispatcher *llm.Dispatcher
}

// Model holds the TUI state.
type Model struct {
	store       *ledger.Store
	dispatcher  *llm.Dispatcher
	categories  []model.Category
	noteInput   textinput.Model
	semInput    textinput.Model
	budgetInput textinput.Model
	amount      string
	status      string
	keymap      KeyMap
	state       State
	focus       entryFocus
	catIndex    int
	width       int
	height      int
	editBudget  bool
	parsing     bool
	quitting    bool
}

// New creates the TUI model in the locked state.
func New(cfg Config) Model {
	note := textinput.New()
	note.Placeholder = "备注..."
	note.CharLimit = 60

	sem := textinput.New()
	sem.Placeholder = "语义识别 (如: 晚餐50)"
	sem.CharLimit = 60

	budget := textinput.New()
	budget.Placeholder = "6000"
	budget.CharLimit = 12

	return Model{
		store:       cfg.Store,
		dispatcher:  cfg.Dispatcher,
		state:       StateLocked,
		keymap:      DefaultKeyMap(),
		categories:  model.Categories(),
		amount:      keypadClear(),
		noteInput:   note,
		semInput:    sem,
		budgetInput: budget,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Run starts the TUI and blocks until it exits.
func Run(ctx context.Context, cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// resetEntry clears the entry form and discards any in-flight parse.
func (m *Model) resetEntry() {
	m.amount = keypadClear()
	m.noteInput.SetValue("")
	m.semInput.SetValue("")
	m.catIndex = 0
	m.focus = focusAmount
	m.noteInput.Blur()
	m.semInput.Blur()
	m.parsing = false
	m.status = ""
	if m.dispatcher != nil {
		m.dispatcher.Invalidate()
	}
}

func (m *Model) selectedCategory() model.Category {
	return m.categories[m.catIndex]
}
