package modals

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/cloudpebble/cptui/internal/templates"
)

var testAlloy = []templates.Option{
	{Label: "watchfaces / Digital", Value: "digital"},
	{Label: "apps / Hello", Value: "hello"},
}

func TestNewCreateProjectState_Defaults(t *testing.T) {
	s := NewCreateProjectState([]string{"4.3", "3"}, testAlloy)

	f := s.GetForm()
	if f.Type != "native" {
		t.Errorf("expected default type native, got %q", f.Type)
	}
	if f.SDK != "4.3" {
		t.Errorf("expected first SDK version, got %q", f.SDK)
	}
	if f.Template != templates.NativeTemplates[0].ID {
		t.Errorf("expected default native template, got %d", f.Template)
	}
	if f.AlloyTemplate != "digital" {
		t.Errorf("expected first alloy template, got %q", f.AlloyTemplate)
	}
	if s.PreferredWidth() != ModalWidthWide {
		t.Errorf("expected wide modal")
	}
}

func TestCreateProjectState_TypeVisibility(t *testing.T) {
	tests := []struct {
		projectType string
		sdk         bool
		template    bool
		alloy       bool
	}{
		{"native", true, true, false},
		{"alloy", false, false, true},
		{"rocky", false, false, false},
		{"package", false, false, false},
		{"pebblejs", false, false, false},
		{"simplyjs", false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.projectType, func(t *testing.T) {
			s := NewCreateProjectState([]string{"4.3"}, testAlloy)
			s.SetProjectType(tt.projectType)

			if s.SDKVisible() != tt.sdk {
				t.Errorf("SDKVisible() = %v, want %v", s.SDKVisible(), tt.sdk)
			}
			if s.TemplateVisible() != tt.template {
				t.Errorf("TemplateVisible() = %v, want %v", s.TemplateVisible(), tt.template)
			}
			if s.AlloyVisible() != tt.alloy {
				t.Errorf("AlloyVisible() = %v, want %v", s.AlloyVisible(), tt.alloy)
			}
			if !tt.template && s.GetForm().Template != 0 {
				t.Errorf("expected template reset to 0, got %d", s.GetForm().Template)
			}
		})
	}
}

func TestCreateProjectState_EmptyCatalogFallsBack(t *testing.T) {
	s := NewCreateProjectState(nil, nil)
	if s.GetForm().AlloyTemplate != templates.DefaultID {
		t.Errorf("expected default alloy template, got %q", s.GetForm().AlloyTemplate)
	}
	if s.GetForm().SDK != "" {
		t.Errorf("expected empty SDK, got %q", s.GetForm().SDK)
	}
}

func TestCreateProjectState_BusyIgnoresKeys(t *testing.T) {
	s := NewCreateProjectState([]string{"4.3"}, testAlloy)
	s.Progress.Start("Creating project...")

	before := s.GetForm()
	_, cmd := s.Update(tea.KeyPressMsg{Code: -1, Text: "x"})
	if cmd != nil {
		t.Error("expected no command while busy")
	}
	if s.GetForm() != before {
		t.Error("form values changed while busy")
	}
	if !s.IsBusy() {
		t.Error("expected busy")
	}

	_, cmd = s.Update(ProgressTickMsg{})
	if cmd == nil {
		t.Error("expected spinner to keep ticking while busy")
	}
}

func TestCreateProjectState_Render(t *testing.T) {
	s := NewCreateProjectState([]string{"4.3"}, testAlloy)
	out := ansi.Strip(s.Render())
	if !strings.Contains(out, "New Project") {
		t.Error("expected title in render")
	}

	s.Progress.Fail("Error: name taken")
	if !strings.Contains(ansi.Strip(s.Render()), "name taken") {
		t.Error("expected inline error in render")
	}
}
