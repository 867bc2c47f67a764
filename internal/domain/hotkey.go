package domain

import "fmt"

// HotkeyEvent is the signal a hotkey sends to switch the active mode
type HotkeyEvent int

const (
	HotkeyAdd HotkeyEvent = iota + 1
	HotkeyGet
)

func (e HotkeyEvent) String() string {
	switch e {
	case HotkeyAdd:
		return "add"
	case HotkeyGet:
		return "get"
	default:
		return "unknown"
	}
}

// ParseHotkeyEvent parses "add" or "get"
func ParseHotkeyEvent(s string) (HotkeyEvent, error) {
	switch s {
	case "add":
		return HotkeyAdd, nil
	case "get":
		return HotkeyGet, nil
	default:
		return 0, fmt.Errorf("unknown hotkey event: %q (expected add or get)", s)
	}
}
