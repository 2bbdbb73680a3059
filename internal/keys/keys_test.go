package keys

import "testing"

func TestKeyStrings(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"Up", Up, "up"},
		{"Down", Down, "down"},
		{"Left", Left, "left"},
		{"Right", Right, "right"},
		{"PgUp", PgUp, "pgup"},
		{"PgDown", PgDown, "pgdown"},
		{"Home", Home, "home"},
		{"End", End, "end"},
		{"Enter", Enter, "enter"},
		{"Tab", Tab, "tab"},
		{"ShiftTab", ShiftTab, "shift+tab"},
		{"Space", Space, "space"},
		{"Backspace", Backspace, "backspace"},
		{"Escape", Escape, "esc"},
		{"CtrlC", CtrlC, "ctrl+c"},
		{"CtrlW", CtrlW, "ctrl+w"},
		{"CtrlY", CtrlY, "ctrl+y"},
		{"CtrlR", CtrlR, "ctrl+r"},
		{"CtrlT", CtrlT, "ctrl+t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("keys.%s = %q, want %q", tt.name, tt.got, tt.want)
			}
		})
	}
}
