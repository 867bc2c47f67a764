package views

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"trinket/internal/adapters/tui/styles"
	"trinket/internal/application/coordinator"
)

// AddKeyMap defines key bindings for the add view
type AddKeyMap struct {
	Save   key.Binding
	Cancel key.Binding
	Editor key.Binding
}

var AddKeys = AddKeyMap{
	Save: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "save and close"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Editor: key.NewBinding(
		key.WithKeys("ctrl+e"),
		key.WithHelp("ctrl+e", "open $EDITOR"),
	),
}

// AddModel is the model for composing a new snippet
type AddModel struct {
	ViewState
	coord     *coordinator.Coordinator
	input     textarea.Model
	hasEditor bool
}

// NewAddModel creates a new add view model
func NewAddModel(coord *coordinator.Coordinator, hasEditor bool) *AddModel {
	ta := textarea.New()
	ta.Placeholder = "Type or paste the snippet..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.SetHeight(10)

	return &AddModel{
		coord:     coord,
		input:     ta,
		hasEditor: hasEditor,
	}
}

// Focus focuses the text area, keeping any unsaved draft
func (m *AddModel) Focus() tea.Cmd {
	return m.input.Focus()
}

// Reset clears the draft
func (m *AddModel) Reset() {
	m.input.Reset()
	m.ClearMessage()
}

// Value returns the current draft
func (m *AddModel) Value() string {
	return m.input.Value()
}

// SetValue replaces the draft, e.g. with text returned from $EDITOR
func (m *AddModel) SetValue(text string) {
	m.input.SetValue(text)
}

// SetSize updates the view dimensions
func (m *AddModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.input.SetWidth(max(width-8, 20))
	m.input.SetHeight(max(height-12, 3))
}

// Update handles messages for the add view
func (m *AddModel) Update(msg tea.Msg) (*AddModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, AddKeys.Save):
			return m, m.save()

		case key.Matches(msg, AddKeys.Cancel):
			m.coord.Cancel()
			m.Reset()
			return m, nil

		case key.Matches(msg, AddKeys.Editor):
			if !m.hasEditor {
				m.SetMessage("No editor found: set $EDITOR", true)
				return m, nil
			}
			draft := m.input.Value()
			return m, func() tea.Msg {
				return OpenEditorMsg{Draft: draft}
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *AddModel) save() tea.Cmd {
	snippet, err := m.coord.Save(m.input.Value())
	if err != nil {
		// Keep the draft so the user can retry
		m.SetMessage("Save failed: "+err.Error(), true)
		return nil
	}

	m.Reset()
	if snippet == nil {
		return nil
	}
	return status("Snippet saved", false)
}

// View renders the add view
func (m *AddModel) View() string {
	help := []key.Binding{AddKeys.Save, AddKeys.Cancel}
	if m.hasEditor {
		help = append(help, AddKeys.Editor)
	}

	return NewPanel("Add New Snippet").
		Add(styles.InputBox.Render(m.input.View())).
		Status(m.Message, m.MessageErr).
		Keys(help...).
		Render()
}
