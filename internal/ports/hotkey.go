package ports

import (
	"context"

	"trinket/internal/domain"
)

// HotkeyListener converts OS-level triggers into hotkey events.
// Listen blocks until ctx is cancelled or the listener fails.
type HotkeyListener interface {
	Listen(ctx context.Context, events chan<- domain.HotkeyEvent) error
}
