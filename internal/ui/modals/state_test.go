package modals

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
)

// =============================================================================
// HelpState Tests
// =============================================================================

func testSections() []HelpSection {
	return []HelpSection{
		{
			Title: "Navigation",
			Shortcuts: []HelpShortcut{
				{Key: "tab", Desc: "switch pane"},
				{Key: "up/down", Desc: "navigate"},
			},
		},
		{
			Title: "Project",
			Shortcuts: []HelpShortcut{
				{Key: "enter", Desc: "open file"},
				{Key: "y", Desc: "copy project URL"},
			},
		},
	}
}

func TestNewHelpState_SelectsFirstShortcut(t *testing.T) {
	state := NewHelpState(testSections())

	sel := state.Selected()
	if sel == nil {
		t.Fatal("expected a shortcut to be selected")
	}
	if sel.Key != "tab" {
		t.Errorf("expected first shortcut 'tab', got %q", sel.Key)
	}
}

func TestHelpState_Title(t *testing.T) {
	state := NewHelpState(nil)
	if state.Title() != "Keyboard Shortcuts" {
		t.Errorf("expected title 'Keyboard Shortcuts', got '%s'", state.Title())
	}
}

func TestHelpState_Navigation(t *testing.T) {
	state := NewHelpState(testSections())

	newState, _ := state.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s := newState.(*HelpState)
	if sel := s.Selected(); sel == nil || sel.Key != "up/down" {
		t.Errorf("expected 'up/down' after moving down, got %+v", sel)
	}
}

func TestHelpState_Render(t *testing.T) {
	state := NewHelpState(testSections())
	state.SetSize(60, 20)

	out := ansi.Strip(state.Render())
	for _, want := range []string{"Keyboard Shortcuts", "Navigation", "switch pane"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected render to contain %q", want)
		}
	}
}

func TestHelpState_SetSizeMinimum(t *testing.T) {
	state := NewHelpState(testSections())
	state.SetSize(10, 2)
	if state.list.Height() != 1 {
		t.Errorf("expected list height clamped to 1, got %d", state.list.Height())
	}
}

// =============================================================================
// Progress Tests
// =============================================================================

func TestProgress_Lifecycle(t *testing.T) {
	var p Progress
	if p.Busy() {
		t.Fatal("new progress should be idle")
	}
	if p.View() != "" {
		t.Errorf("idle view should be empty, got %q", p.View())
	}

	if cmd := p.Start("Creating project..."); cmd == nil {
		t.Error("Start should return a tick command")
	}
	if !p.Busy() {
		t.Error("expected busy after Start")
	}
	if !strings.Contains(ansi.Strip(p.View()), "Creating project...") {
		t.Errorf("expected progress text in view, got %q", p.View())
	}

	p.SetText("Importing...")
	if p.Text != "Importing..." {
		t.Errorf("SetText while busy should update text, got %q", p.Text)
	}

	p.Fail("Error: bad zip")
	if p.Busy() {
		t.Error("expected idle after Fail")
	}
	if !strings.Contains(ansi.Strip(p.View()), "bad zip") {
		t.Errorf("expected error in view, got %q", p.View())
	}
	if cmd := p.Tick(ProgressTickMsg{}); cmd != nil {
		t.Error("tick should stop once idle")
	}

	p.SetText("ignored")
	if p.Text != "" {
		t.Errorf("SetText while idle should be ignored, got %q", p.Text)
	}
}

func TestProgress_StartClearsError(t *testing.T) {
	var p Progress
	p.Invalid("You must enter a project name.")
	if p.Busy() {
		t.Error("Invalid must not mark busy")
	}
	p.Start("x")
	if p.Err != "" {
		t.Errorf("Start should clear the error, got %q", p.Err)
	}
}

func TestProgress_IgnoresForeignTicks(t *testing.T) {
	var a, b Progress
	tick, ok := a.Start("Creating...")().(ProgressTickMsg)
	if !ok {
		t.Fatal("Start should produce a spinner tick")
	}
	b.Start("Importing...")

	if cmd := b.Tick(tick); cmd != nil {
		t.Error("a tick from another spinner should be ignored")
	}
	if cmd := a.Tick(tick); cmd == nil {
		t.Error("own tick should schedule the next frame")
	}
}
