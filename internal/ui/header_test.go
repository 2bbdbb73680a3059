package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestHeader_View(t *testing.T) {
	tests := []struct {
		name    string
		project string
		user    string
		want    []string
	}{
		{"title only", "", "", []string{"cloudpebble"}},
		{"project", "Watchface", "", []string{"cloudpebble", "Watchface"}},
		{"project and user", "Watchface", "kat", []string{"Watchface", "(kat)"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHeader()
			h.SetWidth(60)
			h.SetProjectName(tt.project)
			h.SetUser(tt.user)

			plain := ansi.Strip(h.View())
			for _, w := range tt.want {
				if !strings.Contains(plain, w) {
					t.Errorf("header %q missing %q", plain, w)
				}
			}
			if got := ansi.StringWidth(plain); got != 60 {
				t.Errorf("width = %d, want 60", got)
			}
		})
	}
}

func TestHeader_NarrowWidth(t *testing.T) {
	h := NewHeader()
	h.SetWidth(5)
	h.SetProjectName("A very long project name")
	if !strings.Contains(ansi.Strip(h.View()), "A very long project name") {
		t.Error("content should not be dropped when narrower than the title")
	}
}

func TestParseHexColor(t *testing.T) {
	r, g, b := parseHexColor("#7C3AED")
	if r != 0x7C || g != 0x3A || b != 0xED {
		t.Errorf("got %d %d %d", r, g, b)
	}
	r, g, b = parseHexColor("bogus")
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("bogus color parsed as %d %d %d", r, g, b)
	}
}
