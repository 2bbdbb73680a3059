package ui

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/cloudpebble/cptui/internal/api"
)

func TestProjectList_States(t *testing.T) {
	p := NewProjectList()
	p.SetSize(60, 20)

	p.SetLoading()
	if !strings.Contains(ansi.Strip(p.View()), "Loading projects") {
		t.Error("expected loading text")
	}

	p.SetProjects(nil)
	if !strings.Contains(ansi.Strip(p.View()), "No projects yet") {
		t.Error("expected empty text")
	}

	p.SetError("Error: network error")
	if !strings.Contains(ansi.Strip(p.View()), "network error") {
		t.Error("expected error text")
	}
}

func TestProjectList_Selection(t *testing.T) {
	p := NewProjectList()
	p.SetSize(60, 20)
	build := "2026-10-01"
	p.SetProjects([]api.ProjectSummary{
		{ID: 1, Name: "Alpha", AppVersionLabel: "1.0"},
		{ID: 2, Name: "Beta", LatestSuccessfulBuild: &build},
	})

	if p.Len() != 2 {
		t.Fatalf("expected 2 projects, got %d", p.Len())
	}
	sel, ok := p.Selected()
	if !ok || sel.ID != 1 {
		t.Fatalf("expected Alpha selected, got %+v", sel)
	}

	p.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	sel, _ = p.Selected()
	if sel.ID != 2 {
		t.Errorf("expected Beta after down, got %+v", sel)
	}

	plain := ansi.Strip(p.View())
	for _, want := range []string{"Projects (2)", "Alpha", "v1.0", "never built"} {
		if !strings.Contains(plain, want) {
			t.Errorf("expected list to contain %q\n%s", want, plain)
		}
	}
}

func TestProjectList_SelectedEmpty(t *testing.T) {
	p := NewProjectList()
	if _, ok := p.Selected(); ok {
		t.Error("expected no selection in empty list")
	}
}
