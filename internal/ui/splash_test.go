package ui

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/cloudpebble/cptui/internal/auth"
	"github.com/cloudpebble/cptui/internal/ui/modals"
)

func TestSplash_SelectProvider(t *testing.T) {
	s := NewSplash()
	s.SetSize(80, 30)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected select command")
	}
	msg := cmd().(SplashSelectMsg)
	if msg.Password || msg.Provider.ID != auth.Providers[0].ID {
		t.Errorf("expected first provider, got %+v", msg)
	}
}

func TestSplash_SelectPassword(t *testing.T) {
	s := NewSplash()
	s.Update(press("k")) // wraps to the last button

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	msg := cmd().(SplashSelectMsg)
	if !msg.Password {
		t.Errorf("expected password button, got %+v", msg)
	}
}

func TestSplash_DisabledWhileBusy(t *testing.T) {
	s := NewSplash()
	s.SetSize(80, 30)
	s.Start("Signing in with Google...")

	if _, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter}); cmd != nil {
		t.Error("buttons should be disabled while busy")
	}
	if _, cmd := s.Update(modals.ProgressTickMsg{}); cmd == nil {
		t.Error("expected spinner to keep ticking")
	}
	if !strings.Contains(ansi.Strip(s.View()), "Signing in with Google") {
		t.Error("expected progress text")
	}

	s.Done("Error: popup closed")
	if s.Busy() {
		t.Error("expected buttons re-enabled after failure")
	}
	if _, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter}); cmd == nil {
		t.Error("expected buttons to work again")
	}
	if !strings.Contains(ansi.Strip(s.View()), "popup closed") {
		t.Error("expected error under buttons")
	}

	s.Start("again")
	s.Done("")
	if s.Busy() || s.Err() != "" {
		t.Error("expected clean state after success")
	}
}
