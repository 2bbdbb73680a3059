package cmd

import (
	"bytes"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cloudpebble/cptui/internal/config"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"lowercase y", "y\n", true},
		{"uppercase Y", "Y\n", true},
		{"lowercase yes", "yes\n", true},
		{"mixed case Yes", "Yes\n", true},
		{"lowercase n", "n\n", false},
		{"empty input", "\n", false},
		{"random text", "maybe\n", false},
		{"y with spaces", "  y  \n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := confirm(strings.NewReader(tt.input), io.Discard, "Test?")
			if result != tt.expected {
				t.Errorf("confirm(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestConfirm_EOF(t *testing.T) {
	if confirm(strings.NewReader(""), io.Discard, "Test?") {
		t.Error("confirm(EOF) = true, want false")
	}
}

func savedSession(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.json")
	sess, err := config.LoadSession(path)
	if err != nil {
		t.Fatal(err)
	}
	sess.Update("https://ide.test", "dev", "", "password", []*http.Cookie{{Name: "sessionid", Value: "x"}})
	if err := sess.Save(); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLogout_ConfirmedClearsSession(t *testing.T) {
	path := savedSession(t)
	var out bytes.Buffer

	if err := runLogoutWithReader(strings.NewReader("y\n"), &out, path); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("session file should be removed")
	}
	if !strings.Contains(out.String(), "Logged out.") {
		t.Errorf("output = %q", out.String())
	}
}

func TestLogout_AbortKeepsSession(t *testing.T) {
	path := savedSession(t)
	var out bytes.Buffer

	if err := runLogoutWithReader(strings.NewReader("n\n"), &out, path); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("session file should remain: %v", err)
	}
	if !strings.Contains(out.String(), "Aborted.") {
		t.Errorf("output = %q", out.String())
	}
}

func TestLogout_NotLoggedIn(t *testing.T) {
	var out bytes.Buffer
	path := filepath.Join(t.TempDir(), "session.json")

	if err := runLogoutWithReader(strings.NewReader(""), &out, path); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if !strings.Contains(out.String(), "Not logged in.") {
		t.Errorf("output = %q", out.String())
	}
}
