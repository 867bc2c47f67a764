package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"trinket/internal/adapters/editor"
	"trinket/internal/adapters/tui/views"
	"trinket/internal/application/coordinator"
	"trinket/internal/logging"
	"trinket/internal/ports"
)

// Options configures the overlay
type Options struct {
	PollInterval time.Duration
	TriggerDir   string
	Editor       ports.EditorOpener // nil disables the $EDITOR key
	Log          logrus.FieldLogger
}

type tickMsg time.Time

type editorFinishedMsg struct {
	path string
	err  error
}

// App is the main TUI application model. It drives the coordinator from
// the bubbletea loop and shows the view for the active mode.
type App struct {
	coord    *coordinator.Coordinator
	editor   ports.EditorOpener
	interval time.Duration
	log      logrus.FieldLogger

	hidden *views.HiddenModel
	add    *views.AddModel
	get    *views.GetModel

	lastKind coordinator.Kind
	session  *coordinator.GettingSnippet

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(coord *coordinator.Coordinator, opts Options) *App {
	if opts.PollInterval <= 0 {
		opts.PollInterval = 50 * time.Millisecond
	}
	if opts.Log == nil {
		opts.Log = logging.Nop()
	}
	return &App{
		coord:    coord,
		editor:   opts.Editor,
		interval: opts.PollInterval,
		log:      opts.Log.WithField("component", "tui"),
		hidden:   views.NewHiddenModel(coord, opts.TriggerDir),
		add:      views.NewAddModel(coord, opts.Editor != nil),
		get:      views.NewGetModel(coord),
		lastKind: coord.Mode().Kind(),
	}
}

// Init starts polling for hotkey events
func (a *App) Init() tea.Cmd {
	return a.tick()
}

func (a *App) tick() tea.Cmd {
	return tea.Tick(a.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		a.coord.Tick()
		return a, tea.Batch(a.tick(), a.sync())

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.hidden.SetSize(msg.Width, msg.Height)
		a.add.SetSize(msg.Width, msg.Height)
		a.get.SetSize(msg.Width, msg.Height)
		return a, nil

	case views.StatusMsg:
		a.hidden.SetMessage(msg.Text, msg.IsErr)
		return a, nil

	case views.OpenEditorMsg:
		return a, a.openEditor(msg.Draft)

	case editorFinishedMsg:
		a.editorFinished(msg)
		return a, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.coord.Mode().Kind() {
	case coordinator.KindAdding:
		_, cmd = a.add.Update(msg)
	case coordinator.KindGetting:
		_, cmd = a.get.Update(msg)
	default:
		_, cmd = a.hidden.Update(msg)
	}

	return a, tea.Batch(cmd, a.sync())
}

// sync prepares the view of a newly entered mode
func (a *App) sync() tea.Cmd {
	kind := a.coord.Mode().Kind()
	changed := kind != a.lastKind
	a.lastKind = kind

	var cmd tea.Cmd
	switch kind {
	case coordinator.KindAdding:
		if changed {
			cmd = a.add.Focus()
		}
	case coordinator.KindGetting:
		g, _ := a.coord.Session()
		if g != a.session {
			a.session = g
			a.get.Reset()
		}
		if a.coord.ConsumeFocusRequest() {
			cmd = a.get.Focus()
		}
	default:
		a.session = nil
	}
	return cmd
}

func (a *App) openEditor(draft string) tea.Cmd {
	if a.editor == nil {
		return nil
	}

	path, err := editor.NewDraft(draft)
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: err}
		}
	}

	cmd, err := a.editor.Command(path)
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{path: path, err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{path: path, err: err}
	})
}

func (a *App) editorFinished(msg editorFinishedMsg) {
	if msg.path == "" {
		a.log.WithError(msg.err).Error("failed to create draft")
		a.add.SetMessage("Editor failed: "+msg.err.Error(), true)
		return
	}

	text, err := editor.ReadDraft(msg.path)
	if msg.err != nil {
		a.log.WithError(msg.err).Error("editor exited with error")
		a.add.SetMessage("Editor failed: "+msg.err.Error(), true)
		return
	}
	if err != nil {
		a.log.WithError(err).Error("failed to read draft")
		a.add.SetMessage(err.Error(), true)
		return
	}

	// A hotkey may have switched modes while the editor was open
	if a.coord.Mode().Kind() == coordinator.KindAdding {
		a.add.SetValue(text)
		a.add.ClearMessage()
	}
}

// View renders the current view
func (a *App) View() string {
	switch a.coord.Mode().Kind() {
	case coordinator.KindAdding:
		return a.add.View()
	case coordinator.KindGetting:
		return a.get.View()
	default:
		return a.hidden.View()
	}
}
