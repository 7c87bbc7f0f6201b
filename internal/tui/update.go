package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/lightledger/internal/common"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case parseResultMsg:
		return m.applyParseResult(msg)

	case tea.KeyMsg:
		if key.Matches(msg, m.keymap.ForceQuit) {
			m.quitting = true
			return m, tea.Quit
		}

		switch m.state {
		case StateLocked:
			return m.updateLocked(msg)
		case StateEntry:
			return m.updateEntry(msg)
		case StateHome:
			return m.updateHome(msg)
		case StateStats:
			return m.updateStats(msg)
		}
	}

	return m, nil
}

func (m Model) updateLocked(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Unlock):
		m.state = StateHome
	case key.Matches(msg, m.keymap.NewRecord):
		m.resetEntry()
		m.state = StateEntry
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editBudget {
		return m.updateBudgetOverlay(msg)
	}

	switch {
	case key.Matches(msg, m.keymap.NewRecord):
		m.resetEntry()
		m.state = StateEntry
	case key.Matches(msg, m.keymap.Stats):
		m.state = StateStats
	case key.Matches(msg, m.keymap.Lock):
		m.state = StateLocked
	case key.Matches(msg, m.keymap.EditBudget):
		m.editBudget = true
		m.budgetInput.SetValue(strconv.FormatFloat(m.store.Budget().Total, 'f', -1, 64))
		m.budgetInput.Focus()
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateBudgetOverlay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Confirm):
		// An unparseable value coerces to 0, same as the store would.
		value, err := strconv.ParseFloat(strings.TrimSpace(m.budgetInput.Value()), 64)
		if err != nil {
			value = 0
		}
		m.store.SetBudgetTotal(context.Background(), value)
		m.editBudget = false
		m.budgetInput.Blur()
		return m, nil
	case key.Matches(msg, m.keymap.Back):
		m.editBudget = false
		m.budgetInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.budgetInput, cmd = m.budgetInput.Update(msg)
	return m, cmd
}

func (m Model) updateStats(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Back), key.Matches(msg, m.keymap.Quit):
		m.state = StateHome
	}
	return m, nil
}

func (m Model) updateEntry(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Back):
		// Cancel: back to home, discard the form and any in-flight parse.
		m.resetEntry()
		m.state = StateHome
		return m, nil

	case key.Matches(msg, m.keymap.NextField):
		m.cycleFocus()
		return m, nil

	case key.Matches(msg, m.keymap.PrevCat):
		m.catIndex = (m.catIndex + len(m.categories) - 1) % len(m.categories)
		return m, nil

	case key.Matches(msg, m.keymap.NextCat):
		m.catIndex = (m.catIndex + 1) % len(m.categories)
		return m, nil

	case key.Matches(msg, m.keymap.ParseText):
		return m.dispatchParse()

	case key.Matches(msg, m.keymap.Confirm):
		if m.focus == focusSemantic {
			return m.dispatchParse()
		}
		return m.confirmEntry()
	}

	switch m.focus {
	case focusAmount:
		m.handleKeypad(msg)
		return m, nil
	case focusNote:
		var cmd tea.Cmd
		m.noteInput, cmd = m.noteInput.Update(msg)
		return m, cmd
	case focusSemantic:
		var cmd tea.Cmd
		m.semInput, cmd = m.semInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// confirmEntry admits the form through the store gate. A refused amount
// leaves the form on screen; a successful add returns to home.
func (m Model) confirmEntry() (tea.Model, tea.Cmd) {
	amount, err := strconv.ParseFloat(m.amount, 64)
	if err != nil {
		m.status = "金额无效"
		return m, nil
	}

	_, ok := m.store.AddRecord(context.Background(), amount, m.selectedCategory().ID, m.noteInput.Value())
	if !ok {
		m.status = "金额无效"
		return m, nil
	}

	m.resetEntry()
	m.state = StateHome
	return m, nil
}

func (m *Model) handleKeypad(msg tea.KeyMsg) {
	switch msg.String() {
	case "backspace":
		m.amount = keypadDelete(m.amount)
	case "c":
		m.amount = keypadClear()
	default:
		s := msg.String()
		if len(s) == 1 && (s == "." || (s[0] >= '0' && s[0] <= '9')) {
			m.amount = keypadAppend(m.amount, s)
		}
	}
}

func (m *Model) cycleFocus() {
	m.noteInput.Blur()
	m.semInput.Blur()
	switch m.focus {
	case focusAmount:
		m.focus = focusNote
		m.noteInput.Focus()
	case focusNote:
		m.focus = focusSemantic
		m.semInput.Focus()
	default:
		m.focus = focusAmount
	}
}

// dispatchParse kicks off a semantic parse of the free-text field. The
// dispatcher guarantees a superseded request's result never lands here.
func (m Model) dispatchParse() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.semInput.Value())
	if m.dispatcher == nil || input == "" || m.parsing {
		return m, nil
	}

	m.parsing = true
	m.status = "识别中..."
	dispatcher := m.dispatcher

	return m, func() tea.Msg {
		return parseResultMsg{result: dispatcher.Dispatch(context.Background(), input)}
	}
}

// applyParseResult applies a completed parse to the form, unless the user
// has since left the entry screen or the result is stale.
func (m Model) applyParseResult(msg parseResultMsg) (tea.Model, tea.Cmd) {
	if msg.result.Stale || m.state != StateEntry {
		return m, nil
	}

	m.parsing = false

	if msg.result.Err != nil {
		if common.IsRecoverable(msg.result.Err) {
			m.status = "没有识别结果"
		} else {
			m.status = "识别失败"
		}
		return m, nil
	}

	suggestion := msg.result.Suggestion
	m.amount = strconv.FormatFloat(suggestion.Amount, 'f', -1, 64)
	m.noteInput.SetValue(suggestion.Note)
	for i, cat := range m.categories {
		if cat.ID == suggestion.Category {
			m.catIndex = i
			break
		}
	}
	m.status = ""
	return m, nil
}
