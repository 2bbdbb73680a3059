// Package keys holds the string forms of Bubble Tea v2 key presses used by
// cptui's key handlers.
//
// Each value is computed from tea.KeyPressMsg{...}.String() so handlers can
// compare against msg.String() without hardcoding names like "esc".
// Printable single-character keys ("n", "i", "?") are compared directly.
package keys

import tea "charm.land/bubbletea/v2"

// Navigation
var (
	Up     = tea.KeyPressMsg{Code: tea.KeyUp}.String()
	Down   = tea.KeyPressMsg{Code: tea.KeyDown}.String()
	Left   = tea.KeyPressMsg{Code: tea.KeyLeft}.String()
	Right  = tea.KeyPressMsg{Code: tea.KeyRight}.String()
	PgUp   = tea.KeyPressMsg{Code: tea.KeyPgUp}.String()
	PgDown = tea.KeyPressMsg{Code: tea.KeyPgDown}.String()
	Home   = tea.KeyPressMsg{Code: tea.KeyHome}.String()
	End    = tea.KeyPressMsg{Code: tea.KeyEnd}.String()
)

// Actions
var (
	Enter     = tea.KeyPressMsg{Code: tea.KeyEnter}.String()
	Tab       = tea.KeyPressMsg{Code: tea.KeyTab}.String()
	ShiftTab  = (tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}).String()
	Space     = tea.KeyPressMsg{Code: tea.KeySpace}.String()
	Backspace = tea.KeyPressMsg{Code: tea.KeyBackspace}.String()
	Escape    = tea.KeyPressMsg{Code: tea.KeyEscape}.String()
)

// Ctrl combinations
var (
	CtrlC = (tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}).String()
	CtrlW = (tea.KeyPressMsg{Code: 'w', Mod: tea.ModCtrl}).String()
	CtrlY = (tea.KeyPressMsg{Code: 'y', Mod: tea.ModCtrl}).String()
	CtrlR = (tea.KeyPressMsg{Code: 'r', Mod: tea.ModCtrl}).String()
	CtrlT = (tea.KeyPressMsg{Code: 't', Mod: tea.ModCtrl}).String()
)
