package tui

import (
	"errors"
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trinket/internal/adapters/tui/views"
	"trinket/internal/application/coordinator"
	"trinket/internal/domain"
)

type stubRepo struct {
	saved []string
}

func (r *stubRepo) Initialize() error { return nil }

func (r *stubRepo) Save(content string) (*domain.Snippet, error) {
	r.saved = append(r.saved, content)
	return &domain.Snippet{
		ID:      fmt.Sprintf("n%d", len(r.saved)),
		Content: content,
		Preview: domain.MakePreview(content),
		Created: time.Now(),
	}, nil
}

func (r *stubRepo) LoadAll() ([]domain.Snippet, error) { return nil, nil }

func (r *stubRepo) Get(id string) (*domain.Snippet, error) {
	return nil, errors.New("not found")
}

type stubClipboard struct {
	text string
}

func (c *stubClipboard) WriteText(text string) error {
	c.text = text
	return nil
}

type harness struct {
	app    *App
	coord  *coordinator.Coordinator
	repo   *stubRepo
	clip   *stubClipboard
	events chan domain.HotkeyEvent
}

func newHarness(contents ...string) *harness {
	h := &harness{
		repo:   &stubRepo{},
		clip:   &stubClipboard{},
		events: make(chan domain.HotkeyEvent, 4),
	}
	snippets := make([]domain.Snippet, len(contents))
	for i, c := range contents {
		snippets[i] = domain.Snippet{
			ID:      fmt.Sprintf("s%d", i),
			Content: c,
			Preview: domain.MakePreview(c),
			Created: time.Date(2025, 3, 4, 5, 6, 0, 0, time.Local),
		}
	}
	h.coord = coordinator.New(h.repo, h.clip, h.events, snippets, nil)
	h.app = NewApp(h.coord, Options{PollInterval: time.Millisecond, TriggerDir: "/tmp/triggers"})
	h.app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return h
}

func (h *harness) keys(s string) {
	for _, r := range s {
		h.app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func (h *harness) press(t tea.KeyType) {
	h.app.Update(tea.KeyMsg{Type: t})
}

func TestApp_StartsHidden(t *testing.T) {
	h := newHarness("one")

	assert.Equal(t, coordinator.KindHidden, h.coord.Mode().Kind())
	assert.Contains(t, h.app.View(), "waiting for a hotkey")
	assert.Contains(t, h.app.View(), "/tmp/triggers")
}

func TestApp_TickAppliesHotkey(t *testing.T) {
	h := newHarness("one")
	h.events <- domain.HotkeyGet

	h.app.Update(tickMsg(time.Now()))

	assert.Equal(t, coordinator.KindGetting, h.coord.Mode().Kind())
	assert.Contains(t, h.app.View(), "Get Snippet")
	assert.False(t, h.coord.ConsumeFocusRequest(), "the app consumes the focus request")
}

func TestApp_GetFlowCopiesSelection(t *testing.T) {
	h := newHarness("alpha notes", "beta notes", "alphabet soup")

	h.keys("g")
	require.Equal(t, coordinator.KindGetting, h.coord.Mode().Kind())

	h.keys("alpha")
	g, ok := h.coord.Session()
	require.True(t, ok)
	assert.Equal(t, "alpha", g.Query)
	assert.Equal(t, []int{0, 2}, g.Filtered)

	view := h.app.View()
	assert.Contains(t, view, "2 of 3")
	assert.Contains(t, view, "03/04 05:06")

	h.press(tea.KeyDown)
	h.press(tea.KeyEnter)

	assert.Equal(t, "alphabet soup", h.clip.text)
	assert.Equal(t, coordinator.KindHidden, h.coord.Mode().Kind())
}

func TestApp_GetDismiss(t *testing.T) {
	h := newHarness("alpha")

	h.keys("g")
	h.press(tea.KeyEsc)

	assert.Equal(t, coordinator.KindHidden, h.coord.Mode().Kind())
	assert.Empty(t, h.clip.text)
}

func TestApp_NewGetSessionClearsQuery(t *testing.T) {
	h := newHarness("alpha", "beta")

	h.keys("g")
	h.keys("zzz")
	assert.Contains(t, h.app.View(), "No results found")

	h.events <- domain.HotkeyGet
	h.app.Update(tickMsg(time.Now()))

	g, ok := h.coord.Session()
	require.True(t, ok)
	assert.Equal(t, "", g.Query)
	assert.NotContains(t, h.app.View(), "zzz")
	assert.Contains(t, h.app.View(), "2 of 2")
}

func TestApp_AddFlowSaves(t *testing.T) {
	h := newHarness()

	h.keys("a")
	require.Equal(t, coordinator.KindAdding, h.coord.Mode().Kind())
	assert.Contains(t, h.app.View(), "Add New Snippet")

	h.keys("remember this")
	h.press(tea.KeyCtrlS)

	assert.Equal(t, []string{"remember this"}, h.repo.saved)
	assert.Equal(t, coordinator.KindHidden, h.coord.Mode().Kind())
	require.Len(t, h.coord.Snippets(), 1)
}

func TestApp_AddCancelWritesNothing(t *testing.T) {
	h := newHarness()

	h.keys("a")
	h.keys("throwaway")
	h.press(tea.KeyEsc)

	assert.Empty(t, h.repo.saved)
	assert.Equal(t, coordinator.KindHidden, h.coord.Mode().Kind())

	// The next session starts empty
	h.keys("a")
	h.press(tea.KeyCtrlS)
	assert.Empty(t, h.repo.saved)
}

func TestApp_HotkeyInterruptsAdd(t *testing.T) {
	h := newHarness("existing")

	h.keys("a")
	h.keys("draft")
	h.events <- domain.HotkeyGet
	h.app.Update(tickMsg(time.Now()))

	assert.Equal(t, coordinator.KindGetting, h.coord.Mode().Kind())
	assert.Empty(t, h.repo.saved)
}

func TestApp_StatusMessageShownWhenHidden(t *testing.T) {
	h := newHarness()

	h.app.Update(views.StatusMsg{Text: "Copied to clipboard"})

	assert.Contains(t, h.app.View(), "Copied to clipboard")
}
