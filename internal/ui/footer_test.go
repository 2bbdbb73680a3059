package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
)

func TestFooter_Bindings(t *testing.T) {
	f := NewFooter()
	f.SetWidth(200)

	plain := ansi.Strip(f.View())
	if !strings.Contains(plain, "enter: sign in") {
		t.Errorf("splash bindings missing: %q", plain)
	}

	f.SetBindings(ProjectBindings)
	plain = ansi.Strip(f.View())
	for _, want := range []string{"n: new project", "i: import"} {
		if !strings.Contains(plain, want) {
			t.Errorf("missing %q in %q", want, plain)
		}
	}
}

func TestFooter_Flash(t *testing.T) {
	f := NewFooter()
	f.SetWidth(80)
	f.SetFlash("Copied project URL", FlashSuccess)

	plain := ansi.Strip(f.View())
	if !strings.Contains(plain, "Copied project URL") {
		t.Errorf("flash not shown: %q", plain)
	}
	if strings.Contains(plain, "sign in") {
		t.Error("bindings should be hidden while a flash shows")
	}

	if !f.ClearFlashIfExpired(time.Now()) {
		t.Error("flash expired too early")
	}
	if f.ClearFlashIfExpired(time.Now().Add(FlashDuration + time.Second)) {
		t.Error("flash should have expired")
	}
	if f.Flash() != "" {
		t.Errorf("Flash() = %q after expiry", f.Flash())
	}
}

func TestFooter_TruncatesToWidth(t *testing.T) {
	f := NewFooter()
	f.SetWidth(30)
	f.SetBindings(IDEBindings)
	for _, line := range strings.Split(f.View(), "\n") {
		if w := ansi.StringWidth(line); w > 30 {
			t.Errorf("line width %d exceeds 30", w)
		}
	}
}
