package views

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"trinket/internal/adapters/tui/styles"
	"trinket/internal/application/coordinator"
	"trinket/internal/domain"
)

// DateFormat is the timestamp column format of the result list
const DateFormat = "01/02 15:04"

// GetKeyMap defines key bindings for the get view
type GetKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Select  key.Binding
	Dismiss key.Binding
	Pick    key.Binding
}

var GetKeys = GetKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "copy"),
	),
	Dismiss: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
	Pick: key.NewBinding(
		key.WithKeys("alt+1", "alt+2", "alt+3", "alt+4", "alt+5", "alt+6", "alt+7", "alt+8", "alt+9"),
		key.WithHelp("alt+1-9", "copy row"),
	),
}

// GetModel is the model for searching and copying a snippet
type GetModel struct {
	ViewState
	coord     *coordinator.Coordinator
	input     textinput.Model
	paginator *Paginator
}

// NewGetModel creates a new get view model
func NewGetModel(coord *coordinator.Coordinator) *GetModel {
	input := textinput.New()
	input.Placeholder = "Search..."
	input.Prompt = "Search: "

	return &GetModel{
		coord:     coord,
		input:     input,
		paginator: NewPaginator(10),
	}
}

// Reset clears the query for a fresh session
func (m *GetModel) Reset() {
	m.input.SetValue("")
	m.paginator.Reset()
	m.ClearMessage()
}

// Focus focuses the search input
func (m *GetModel) Focus() tea.Cmd {
	return m.input.Focus()
}

// SetSize updates the view dimensions
func (m *GetModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.input.Width = max(width-16, 10)
	// Title, input, counter and help take about ten lines
	m.paginator.SetPageSize(max(height-10, 3))
}

// Update handles messages for the get view
func (m *GetModel) Update(msg tea.Msg) (*GetModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, GetKeys.Dismiss):
			m.coord.Dismiss()
			return m, nil

		case key.Matches(msg, GetKeys.Up):
			m.coord.MoveUp()
			return m, nil

		case key.Matches(msg, GetKeys.Down):
			m.coord.MoveDown()
			return m, nil

		case key.Matches(msg, GetKeys.Select):
			return m, m.copied(m.coord.Accept())

		case key.Matches(msg, GetKeys.Pick):
			row := m.pageStart() + int(msg.Runes[0]-'1')
			return m, m.copied(m.coord.Choose(row))
		}
	}

	var cmd tea.Cmd
	prev := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if query := m.input.Value(); query != prev {
		m.coord.SetQuery(query)
	}
	return m, cmd
}

func (m *GetModel) pageStart() int {
	if g, ok := m.coord.Session(); ok {
		m.paginator.Sync(len(g.Filtered), g.Selected)
	}
	start, _ := m.paginator.VisibleRange()
	return start
}

// copied reports the outcome of a selection once the session has closed
func (m *GetModel) copied(err error) tea.Cmd {
	if m.coord.Mode().Kind() != coordinator.KindHidden {
		return nil
	}
	if err != nil {
		return status("Copy failed: "+err.Error(), true)
	}
	return status("Copied to clipboard", false)
}

// View renders the get view
func (m *GetModel) View() string {
	p := NewPanel("Get Snippet").
		Add(styles.InputBox.Render(m.input.View()))

	g, ok := m.coord.Session()
	if !ok {
		return p.Render()
	}

	snippets := m.coord.Snippets()
	switch {
	case len(snippets) == 0:
		p.Note("No snippets saved yet")
	case len(g.Filtered) == 0:
		p.Note("No results found")
	default:
		m.paginator.Sync(len(g.Filtered), g.Selected)
		start, end := m.paginator.VisibleRange()

		counter := styles.Subtitle.Render(fmt.Sprintf("%d of %d", len(g.Filtered), len(snippets)))
		if m.paginator.TotalPages() > 1 {
			counter += styles.Hint.Render(fmt.Sprintf("  page %d/%d", m.paginator.CurrentPage(), m.paginator.TotalPages()))
		}

		rows := []string{counter, ""}
		for row := start; row < end; row++ {
			snippet := snippets[g.Filtered[row]]
			rows = append(rows, RenderRow(snippet, g.Query, row == g.Selected, m.Width))
		}
		p.Add(rows...)
	}

	return p.Status(m.Message, m.MessageErr).
		Keys(GetKeys.Up, GetKeys.Down, GetKeys.Select, GetKeys.Pick, GetKeys.Dismiss).
		Render()
}

// RenderRow renders one result line: local creation time, then the preview
// with query matches highlighted
func RenderRow(snippet domain.Snippet, query string, selected bool, width int) string {
	base := styles.RowNormal
	if selected {
		base = styles.RowSelected
	}

	preview := snippet.Preview
	if width > 0 {
		// Date column, padding and margins
		preview = truncate(preview, max(width-20, 10))
	}

	date := styles.RowDate.Render(snippet.Created.Local().Format(DateFormat))
	return date + RenderHighlighted(preview, domain.Highlight(preview, query), base)
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return strings.TrimRightFunc(string(runes[:limit-1]), unicode.IsSpace) + "…"
}
