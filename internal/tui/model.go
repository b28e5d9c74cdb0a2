// Package tui implements the interactive menu over the category and expense stores.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// State represents the current screen of the menu.
type State int

const (
	StateMenu State = iota
	StateInput
	StateRunning
	StateResult
)

// Model holds the menu state.
type Model struct {
	ctx      context.Context
	inputErr error
	result   resultMsg
	config   Config
	keymap   KeyMap
	help     help.Model
	input    textinput.Model
	actions  []action
	values   []string
	cursor   int
	current  int
	state    State
	quitting bool
}

func newModel(ctx context.Context, cfg Config) Model {
	input := textinput.New()
	input.CharLimit = 256
	input.Width = 40

	return Model{
		ctx:     ctx,
		config:  cfg,
		keymap:  DefaultKeyMap(),
		help:    help.New(),
		input:   input,
		actions: defaultActions(time.Now),
		state:   StateMenu,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.Width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case resultMsg:
		m.result = msg
		m.state = StateResult
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keymap.ForceQuit) {
			m.quitting = true
			return m, tea.Quit
		}

		switch m.state {
		case StateMenu:
			return m.updateMenu(msg)
		case StateInput:
			return m.updateInput(msg)
		case StateResult:
			return m.updateResult(msg)
		case StateRunning:
			return m, nil
		}
	}

	if m.state == StateInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// quitIndex is the cursor position of the trailing quit entry.
func (m Model) quitIndex() int {
	return len(m.actions)
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keymap.Down):
		if m.cursor < m.quitIndex() {
			m.cursor++
		}

	case key.Matches(msg, m.keymap.Select):
		if m.cursor == m.quitIndex() {
			m.quitting = true
			return m, tea.Quit
		}
		return m.start(m.cursor)
	}

	return m, nil
}

// start begins the action at index, prompting for its first field or
// running it straight away when it takes none.
func (m Model) start(index int) (tea.Model, tea.Cmd) {
	m.current = index
	m.values = nil
	m.inputErr = nil

	if len(m.actions[index].fields) == 0 {
		m.state = StateRunning
		return m, m.run()
	}

	m.state = StateInput
	m.prepareField()
	return m, textinput.Blink
}

func (m *Model) prepareField() {
	f := m.actions[m.current].fields[len(m.values)]
	m.input.Reset()
	m.input.Placeholder = f.placeholder
	m.input.Prompt = f.label + ": "
	m.input.Focus()
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Back):
		m.input.Blur()
		m.state = StateMenu
		m.inputErr = nil
		return m, nil

	case key.Matches(msg, m.keymap.Select):
		fields := m.actions[m.current].fields
		value, err := fields[len(m.values)].parse(m.input.Value())
		if err != nil {
			m.inputErr = err
			return m, nil
		}

		m.inputErr = nil
		m.values = append(m.values, value)
		if len(m.values) < len(fields) {
			m.prepareField()
			return m, nil
		}

		m.input.Blur()
		m.state = StateRunning
		return m, m.run()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Select), key.Matches(msg, m.keymap.Back):
		m.state = StateMenu
		m.result = resultMsg{}
	}
	return m, nil
}

// run executes the current action off the update loop.
func (m Model) run() tea.Cmd {
	a := m.actions[m.current]
	ctx, cfg := m.ctx, m.config
	values := append([]string(nil), m.values...)

	return func() tea.Msg {
		return a.run(ctx, cfg, values)
	}
}
