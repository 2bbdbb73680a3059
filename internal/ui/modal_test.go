package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/cloudpebble/cptui/internal/project"
	"github.com/cloudpebble/cptui/internal/ui/modals"
)

func TestModal_ShowHide(t *testing.T) {
	modal := NewModal()
	if modal.IsVisible() {
		t.Error("New modal should not be visible")
	}

	modal.Show(NewPasswordLoginState())
	if !modal.IsVisible() {
		t.Error("Modal should be visible after Show")
	}

	modal.Hide()
	if modal.IsVisible() || modal.State != nil {
		t.Error("Modal should not be visible after Hide")
	}
}

func TestModal_IsBusy(t *testing.T) {
	modal := NewModal()
	if modal.IsBusy() {
		t.Error("hidden modal cannot be busy")
	}

	state := NewImportProjectState([]string{"4.3"}, project.Prefill{})
	modal.Show(state)
	if modal.IsBusy() {
		t.Error("idle modal reported busy")
	}
	state.Progress.Start("Importing...")
	if !modal.IsBusy() {
		t.Error("expected busy modal")
	}

	modal.Show(NewHelpState(nil))
	if modal.IsBusy() {
		t.Error("help modal is never busy")
	}
}

func TestModal_View(t *testing.T) {
	modal := NewModal()
	if modal.View(100, 40) != "" {
		t.Error("hidden modal should render nothing")
	}

	modal.Show(NewCreateProjectState([]string{"4.3"}, nil))
	plain := ansi.Strip(modal.View(120, 50))
	if !strings.Contains(plain, "New Project") {
		t.Errorf("expected modal title in view")
	}
}

func TestSetTheme_RefreshesModalStyles(t *testing.T) {
	SetTheme(ThemeLight)
	defer SetTheme(DefaultTheme)

	if modals.ColorPrimary != ColorPrimary {
		t.Error("modal palette not refreshed")
	}
	if modals.ModalWidthWide != ModalWidthWide {
		t.Errorf("modal width = %d, want %d", modals.ModalWidthWide, ModalWidthWide)
	}
	if CurrentTheme().ChromaStyle != "github" {
		t.Errorf("unexpected chroma style %q", CurrentTheme().ChromaStyle)
	}
}
