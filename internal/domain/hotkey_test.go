package domain

import "testing"

func TestParseHotkeyEvent(t *testing.T) {
	tests := []struct {
		input    string
		expected HotkeyEvent
		wantErr  bool
	}{
		{"add", HotkeyAdd, false},
		{"get", HotkeyGet, false},
		{"ADD", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ev, err := ParseHotkeyEvent(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHotkeyEvent(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if ev != tt.expected {
				t.Errorf("ParseHotkeyEvent(%q) = %v, expected %v", tt.input, ev, tt.expected)
			}
			if !tt.wantErr && ev.String() != tt.input {
				t.Errorf("String() = %q, expected %q", ev.String(), tt.input)
			}
		})
	}
}
