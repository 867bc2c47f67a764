// Package hotkey bridges OS-level hotkeys into the overlay's event channel.
//
// Global hotkeys are bound by the desktop environment to `trinket trigger
// add` or `trinket trigger get`. Those commands drop a file named after the
// event into the trigger directory, and a running overlay picks it up with
// fsnotify and removes it again.
package hotkey

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"

	"trinket/internal/domain"
	"trinket/internal/logging"
	"trinket/internal/ports"
)

// TriggerListener turns trigger files into hotkey events
type TriggerListener struct {
	dir   string
	log   logrus.FieldLogger
	ready chan struct{}
}

// Ensure TriggerListener implements HotkeyListener
var _ ports.HotkeyListener = (*TriggerListener)(nil)

// NewTriggerListener creates a listener watching dir
func NewTriggerListener(dir string, log logrus.FieldLogger) *TriggerListener {
	if log == nil {
		log = logging.Nop()
	}
	return &TriggerListener{
		dir:   dir,
		log:   log.WithField("component", "hotkey"),
		ready: make(chan struct{}),
	}
}

// Dir returns the watched trigger directory
func (l *TriggerListener) Dir() string {
	return l.dir
}

// Ready is closed once Listen is watching the trigger directory
func (l *TriggerListener) Ready() <-chan struct{} {
	return l.ready
}

// Listen watches the trigger directory until ctx is done and must be called
// at most once per listener. Triggers left over from before the listener
// started are discarded. Sends never block: when events is full the trigger
// is dropped and logged.
func (l *TriggerListener) Listen(ctx context.Context, events chan<- domain.HotkeyEvent) error {
	if err := os.MkdirAll(l.dir, 0700); err != nil {
		return fmt.Errorf("failed to create trigger directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(l.dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", l.dir, err)
	}
	l.discardStale()
	close(l.ready)

	l.log.WithField("dir", l.dir).Debug("listening for triggers")

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Write) {
				continue
			}
			event, ok := l.consume(ev.Name)
			if !ok {
				continue
			}

			select {
			case events <- event:
				l.log.WithField("event", event).Debug("trigger received")
			default:
				l.log.WithField("event", event).Warn("event channel is full, dropped trigger")
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			l.log.WithError(err).Error("fsnotify watcher error")
		}
	}
}

// consume removes a trigger file and reports its event. A Create and a
// Write for the same trigger yield a single event because only the first
// removal succeeds.
func (l *TriggerListener) consume(path string) (domain.HotkeyEvent, bool) {
	event, err := domain.ParseHotkeyEvent(filepath.Base(path))
	if err != nil {
		return 0, false
	}

	if err := os.Remove(path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			l.log.WithError(err).WithField("path", path).Warn("failed to remove trigger file")
		}
		return 0, false
	}
	return event, true
}

func (l *TriggerListener) discardStale() {
	for _, event := range []domain.HotkeyEvent{domain.HotkeyAdd, domain.HotkeyGet} {
		path := filepath.Join(l.dir, event.String())
		if err := os.Remove(path); err == nil {
			l.log.WithField("event", event).Debug("discarded stale trigger")
		}
	}
}

// Fire drops the trigger file for event into dir. The file is renamed into
// place so the listener only ever sees a complete trigger.
func Fire(dir string, event domain.HotkeyEvent) error {
	if event != domain.HotkeyAdd && event != domain.HotkeyGet {
		return fmt.Errorf("cannot fire %s event", event)
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create trigger directory: %w", err)
	}

	f, err := os.CreateTemp(dir, ".fire-*")
	if err != nil {
		return fmt.Errorf("failed to create trigger: %w", err)
	}
	tempPath := f.Name()

	_, werr := f.WriteString(strconv.FormatInt(time.Now().UnixNano(), 10))
	cerr := f.Close()
	if werr != nil || cerr != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to write trigger: %w", errors.Join(werr, cerr))
	}

	if err := os.Rename(tempPath, filepath.Join(dir, event.String())); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to fire trigger: %w", err)
	}
	return nil
}
