package views

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"trinket/internal/adapters/tui/styles"
	"trinket/internal/application/coordinator"
	"trinket/internal/domain"
)

// HiddenKeyMap defines key bindings for the idle view
type HiddenKeyMap struct {
	Add    key.Binding
	Get    key.Binding
	Reload key.Binding
	Quit   key.Binding
}

var HiddenKeys = HiddenKeyMap{
	Add: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add"),
	),
	Get: key.NewBinding(
		key.WithKeys("g", "/"),
		key.WithHelp("g", "get"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// HiddenModel is shown while no snippet interaction is active
type HiddenModel struct {
	ViewState
	coord      *coordinator.Coordinator
	triggerDir string
}

// NewHiddenModel creates a new idle view model
func NewHiddenModel(coord *coordinator.Coordinator, triggerDir string) *HiddenModel {
	return &HiddenModel{
		coord:      coord,
		triggerDir: triggerDir,
	}
}

// Update handles messages for the idle view. The add and get keys act like
// the corresponding hotkeys.
func (m *HiddenModel) Update(msg tea.Msg) (*HiddenModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, HiddenKeys.Quit):
		return m, tea.Quit

	case key.Matches(keyMsg, HiddenKeys.Add):
		m.ClearMessage()
		m.coord.HandleEvent(domain.HotkeyAdd)

	case key.Matches(keyMsg, HiddenKeys.Get):
		m.ClearMessage()
		m.coord.HandleEvent(domain.HotkeyGet)

	case key.Matches(keyMsg, HiddenKeys.Reload):
		if err := m.coord.Reload(); err != nil {
			m.SetMessage("Reload failed: "+err.Error(), true)
		} else {
			m.SetMessage(fmt.Sprintf("Loaded %d snippets", len(m.coord.Snippets())), false)
		}
	}
	return m, nil
}

// View renders the idle view
func (m *HiddenModel) View() string {
	return NewPanel("").
		Add(styles.Banner.Render("trinket")).
		Add(
			styles.Subtitle.Render(fmt.Sprintf("%d snippets • waiting for a hotkey", len(m.coord.Snippets()))),
			styles.Hint.Render("Bind `trinket trigger add` and `trinket trigger get` to global hotkeys."),
			field("Triggers", m.triggerDir),
		).
		Status(m.Message, m.MessageErr).
		Keys(HiddenKeys.Add, HiddenKeys.Get, HiddenKeys.Reload, HiddenKeys.Quit).
		Render()
}
