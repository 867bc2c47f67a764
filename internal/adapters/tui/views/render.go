package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"trinket/internal/adapters/tui/styles"
	"trinket/internal/domain"
)

// Panel assembles one screen of the overlay. Sections are separated by a
// blank line, the key help goes last, and the whole panel is padded.
type Panel struct {
	sections []string
	keys     string
}

// NewPanel starts a panel under heading; an empty heading is omitted
func NewPanel(heading string) *Panel {
	p := &Panel{}
	if heading != "" {
		p.sections = append(p.sections, styles.Title.Render(heading))
	}
	return p
}

// Add appends a section made of lines
func (p *Panel) Add(lines ...string) *Panel {
	p.sections = append(p.sections, strings.Join(lines, "\n"))
	return p
}

// Note appends a muted one-line section
func (p *Panel) Note(text string) *Panel {
	return p.Add(styles.Hint.Render(text))
}

// Status appends the last action's outcome, if any
func (p *Panel) Status(text string, isErr bool) *Panel {
	if text == "" {
		return p
	}
	style := styles.StatusOK
	if isErr {
		style = styles.StatusErr
	}
	return p.Add(style.Render(text))
}

// Keys sets the key help line
func (p *Panel) Keys(bindings ...key.Binding) *Panel {
	parts := make([]string, len(bindings))
	for i, b := range bindings {
		h := b.Help()
		parts[i] = styles.KeyName.Render(h.Key) + " " + styles.KeyDesc.Render(h.Desc)
	}
	p.keys = strings.Join(parts, styles.KeySeparator.String())
	return p
}

// Render returns the finished panel
func (p *Panel) Render() string {
	parts := append([]string(nil), p.sections...)
	if p.keys != "" {
		parts = append(parts, p.keys)
	}
	return styles.App.Render(strings.Join(parts, "\n\n"))
}

func field(label, value string) string {
	return styles.FieldLabel.Render(label+":") + " " + value
}

// RenderHighlighted renders text with the given match spans in the search
// match style and everything else in base
func RenderHighlighted(text string, spans []domain.Span, base lipgloss.Style) string {
	if len(spans) == 0 {
		return base.Render(text)
	}

	var b strings.Builder
	pos := 0
	for _, sp := range spans {
		if sp.Start < pos || sp.End > len(text) || sp.Start >= sp.End {
			continue
		}
		if sp.Start > pos {
			b.WriteString(base.Render(text[pos:sp.Start]))
		}
		b.WriteString(styles.SearchMatch.Render(text[sp.Start:sp.End]))
		pos = sp.End
	}
	if pos < len(text) {
		b.WriteString(base.Render(text[pos:]))
	}
	return b.String()
}
