// Package coordinator owns the overlay's state machine. It merges hotkey
// events with the user's save, cancel, select and dismiss actions into a
// single active mode, and owns the in-memory snippet list.
//
// A Coordinator is not safe for concurrent use; the presentation loop that
// drives it is its only owner.
package coordinator

import (
	"github.com/sirupsen/logrus"

	"trinket/internal/application"
	"trinket/internal/domain"
	"trinket/internal/logging"
	"trinket/internal/ports"
)

// Coordinator drives mode transitions
type Coordinator struct {
	repo   ports.SnippetRepository
	clip   ports.ClipboardSink
	events <-chan domain.HotkeyEvent
	log    logrus.FieldLogger

	snippets []domain.Snippet
	mode     Mode
}

// New creates a coordinator in Hidden mode over the initially loaded
// snippets, which must already be sorted newest first.
func New(
	repo ports.SnippetRepository,
	clip ports.ClipboardSink,
	events <-chan domain.HotkeyEvent,
	snippets []domain.Snippet,
	log logrus.FieldLogger,
) *Coordinator {
	if log == nil {
		log = logging.Nop()
	}
	return &Coordinator{
		repo:     repo,
		clip:     clip,
		events:   events,
		log:      log.WithField("component", "coordinator"),
		snippets: snippets,
		mode:     Hidden{},
	}
}

// Mode returns the active mode
func (c *Coordinator) Mode() Mode {
	return c.mode
}

// Snippets returns the in-memory snippet list, newest first. Callers must
// not modify it.
func (c *Coordinator) Snippets() []domain.Snippet {
	return c.snippets
}

// Session returns the get session when one is active
func (c *Coordinator) Session() (*GettingSnippet, bool) {
	g, ok := c.mode.(*GettingSnippet)
	return g, ok
}

// Tick applies at most one pending hotkey event without blocking and
// reports whether one was applied.
func (c *Coordinator) Tick() bool {
	select {
	case ev, ok := <-c.events:
		if !ok {
			c.log.Warn("hotkey channel closed")
			c.events = nil
			return false
		}
		c.HandleEvent(ev)
		return true
	default:
		return false
	}
}

// HandleEvent applies a hotkey event. Hotkeys win over whatever mode is
// active; a get event always starts a fresh session.
func (c *Coordinator) HandleEvent(ev domain.HotkeyEvent) {
	switch ev {
	case domain.HotkeyAdd:
		c.setMode(AddingSnippet{})
	case domain.HotkeyGet:
		c.setMode(c.newSession())
	default:
		c.log.WithField("event", ev).Warn("ignoring unknown hotkey event")
	}
}

func (c *Coordinator) newSession() *GettingSnippet {
	return &GettingSnippet{
		Filtered:     domain.Search("", c.snippets),
		focusPending: true,
	}
}

// Save persists text and returns to Hidden. Empty text is treated as a
// cancel and writes nothing; whitespace-only text is saved. On a store failure the error is returned, the
// mode stays AddingSnippet and the list is left untouched.
func (c *Coordinator) Save(text string) (*domain.Snippet, error) {
	if c.mode.Kind() != KindAdding {
		return nil, nil
	}
	if err := application.ValidateContent(text); err != nil {
		c.log.Debug("empty snippet, cancelling")
		c.setMode(Hidden{})
		return nil, nil
	}

	snippet, err := c.repo.Save(text)
	if err != nil {
		c.log.WithError(err).Error("failed to save snippet")
		return nil, err
	}

	c.snippets = append([]domain.Snippet{*snippet}, c.snippets...)
	c.log.WithField("id", snippet.ID).Info("snippet saved")
	c.setMode(Hidden{})
	return snippet, nil
}

// Cancel abandons the snippet being added
func (c *Coordinator) Cancel() {
	if c.mode.Kind() == KindAdding {
		c.setMode(Hidden{})
	}
}

// SetQuery refilters the get session for query
func (c *Coordinator) SetQuery(query string) {
	g, ok := c.Session()
	if !ok {
		return
	}
	prev := len(g.Filtered)
	g.Query = query
	g.Filtered = domain.Search(query, c.snippets)
	g.clampSelection(prev)
}

// MoveUp moves the selection one row towards the top
func (c *Coordinator) MoveUp() {
	if g, ok := c.Session(); ok && g.Selected > 0 {
		g.Selected--
	}
}

// MoveDown moves the selection one row towards the bottom
func (c *Coordinator) MoveDown() {
	if g, ok := c.Session(); ok && g.Selected < len(g.Filtered)-1 {
		g.Selected++
	}
}

// Selected returns the snippet under the selection, if any
func (c *Coordinator) Selected() (*domain.Snippet, bool) {
	g, ok := c.Session()
	if !ok || g.Selected < 0 || g.Selected >= len(g.Filtered) {
		return nil, false
	}
	return &c.snippets[g.Filtered[g.Selected]], true
}

// Accept selects the highlighted row
func (c *Coordinator) Accept() error {
	g, ok := c.Session()
	if !ok {
		return nil
	}
	return c.Choose(g.Selected)
}

// Choose copies the snippet at filtered row to the clipboard and returns to
// Hidden. An empty list or an out of range row changes nothing. A clipboard
// failure is returned but the transition still happens.
func (c *Coordinator) Choose(row int) error {
	g, ok := c.Session()
	if !ok || row < 0 || row >= len(g.Filtered) {
		return nil
	}

	snippet := c.snippets[g.Filtered[row]]
	c.setMode(Hidden{})

	if err := c.clip.WriteText(snippet.Content); err != nil {
		c.log.WithError(err).WithField("id", snippet.ID).Error("failed to copy snippet to clipboard")
		return err
	}
	c.log.WithField("id", snippet.ID).Info("snippet copied to clipboard")
	return nil
}

// Dismiss closes the get session without touching the clipboard
func (c *Coordinator) Dismiss() {
	if c.mode.Kind() == KindGetting {
		c.setMode(Hidden{})
	}
}

// ConsumeFocusRequest reports true once per get session, telling the
// presentation layer to focus the search input.
func (c *Coordinator) ConsumeFocusRequest() bool {
	g, ok := c.Session()
	if !ok || !g.focusPending {
		return false
	}
	g.focusPending = false
	return true
}

// Reload replaces the snippet list with a fresh load from the store. An
// active get session is refiltered against the new list.
func (c *Coordinator) Reload() error {
	snippets, err := c.repo.LoadAll()
	if err != nil {
		c.log.WithError(err).Error("failed to reload snippets")
		return err
	}
	c.snippets = snippets

	if g, ok := c.Session(); ok {
		prev := len(g.Filtered)
		g.Filtered = domain.Search(g.Query, c.snippets)
		g.clampSelection(prev)
	}
	c.log.WithField("count", len(snippets)).Debug("snippets reloaded")
	return nil
}

func (c *Coordinator) setMode(m Mode) {
	if c.mode.Kind() != m.Kind() {
		c.log.WithFields(logrus.Fields{
			"from": c.mode.Kind(),
			"to":   m.Kind(),
		}).Debug("mode changed")
	}
	c.mode = m
}
