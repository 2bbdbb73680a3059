package ui

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/cloudpebble/cptui/internal/sidebar"
)

func newTestTree() *sidebar.Tree {
	t := sidebar.NewTree()
	t.InitSections("native")
	t.AddSourceFile(sidebar.SourceFile{ID: 1, Name: "main.c", Target: "app"}, nil)
	t.AddSourceFile(sidebar.SourceFile{ID: 2, Name: "ui/window.c", Target: "app"}, nil)
	t.AddSourceFile(sidebar.SourceFile{ID: 3, Name: "index.js", Target: "pkjs"}, nil)
	return t
}

func newTestSidebar() *Sidebar {
	s := NewSidebar()
	s.SetTree(newTestTree())
	s.SetSize(30, 20)
	return s
}

func press(text string) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: -1, Text: text}
}

func TestSidebar_Navigation(t *testing.T) {
	s := newTestSidebar()

	if sel := s.Selected(); sel == nil || sel.Kind != sidebar.KindSection {
		t.Fatalf("expected cursor on first section, got %+v", sel)
	}

	s.Update(press("j"))
	s.Update(press("j"))
	if sel := s.Selected(); sel.Label != "window.c" {
		t.Errorf("expected window.c after folder, got %q", sel.Label)
	}

	s.Update(press("k"))
	if sel := s.Selected(); sel.Kind != sidebar.KindFolder {
		t.Errorf("expected folder, got %q", sel.Label)
	}

	s.Update(press("G"))
	if sel := s.Selected(); sel.Label != "index.js" {
		t.Errorf("expected last row index.js, got %q", sel.Label)
	}
	s.Update(press("j"))
	if sel := s.Selected(); sel.Label != "index.js" {
		t.Errorf("cursor moved past the end: %q", sel.Label)
	}
}

func TestSidebar_EnterTogglesFolder(t *testing.T) {
	s := newTestSidebar()
	s.Update(press("j")) // ui folder

	before := len(s.Tree().Visible())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("toggling a folder should not emit a command")
	}
	if got := len(s.Tree().Visible()); got != before-1 {
		t.Errorf("expected folder contents hidden, rows %d -> %d", before, got)
	}
}

func TestSidebar_EnterActivatesFile(t *testing.T) {
	s := newTestSidebar()
	if !s.Select(sidebar.SourceFileID(1)) {
		t.Fatal("Select failed")
	}

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected activation command")
	}
	msg, ok := cmd().(SidebarActivateMsg)
	if !ok {
		t.Fatalf("expected SidebarActivateMsg, got %T", cmd())
	}
	if msg.Entry.ID != sidebar.SourceFileID(1) {
		t.Errorf("activated %q", msg.Entry.ID)
	}
}

func TestSidebar_UnfocusedIgnoresKeys(t *testing.T) {
	s := newTestSidebar()
	s.SetFocused(false)
	s.Update(press("j"))
	if s.Selected().Kind != sidebar.KindSection {
		t.Error("unfocused sidebar should not move")
	}
}

func TestSidebar_View(t *testing.T) {
	s := newTestSidebar()
	s.Tree().SetIcon(sidebar.SourceFileID(1), "●")

	plain := ansi.Strip(s.View())
	for _, want := range []string{"App", "main.c", "●", "ui", "window.c", "PebbleKit JS", addNewLabel} {
		if !strings.Contains(plain, want) {
			t.Errorf("expected view to contain %q\n%s", want, plain)
		}
	}
	if strings.Count(plain, addNewLabel) != 1 {
		t.Errorf("expected exactly one add-new affordance")
	}
}

func TestSidebar_Popover(t *testing.T) {
	s := newTestSidebar()
	s.Select(sidebar.SourceFileID(3))
	s.Tree().SetPopover(sidebar.SourceFileID(3), "PebbleKit JS entry point")

	if plain := ansi.Strip(s.View()); !strings.Contains(plain, "PebbleKit JS entry point") {
		t.Error("expected popover for selected entry")
	}
}

func TestTruncateLabel(t *testing.T) {
	tests := []struct {
		label string
		width int
		want  string
	}{
		{"main.c", 10, "main.c"},
		{"a-very-long-file-name.c", 8, "a-very-…"},
		{"héllo", 5, "héllo"},
		{"anything", 0, ""},
	}
	for _, tt := range tests {
		if got := truncateLabel(tt.label, tt.width); got != tt.want {
			t.Errorf("truncateLabel(%q, %d) = %q, want %q", tt.label, tt.width, got, tt.want)
		}
	}
}
