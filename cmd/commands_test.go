package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cloudpebble/cptui/internal/api"
)

func TestReadPassword(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"hunter2\n", "hunter2"},
		{"hunter2\r\n", "hunter2"},
		{"no-newline", "no-newline"},
		{"", ""},
	}
	for _, tt := range tests {
		got, err := readPassword(strings.NewReader(tt.input))
		if err != nil {
			t.Fatalf("readPassword(%q): %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("readPassword(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestProjectTable(t *testing.T) {
	build := "2026-01-02"
	out := projectTable([]api.ProjectSummary{
		{ID: 12, Name: "Faces", AppVersionLabel: "1.0", LatestSuccessfulBuild: &build},
		{ID: 13, Name: "Worker"},
	})
	for _, want := range []string{"ID", "NAME", "12", "Faces", "2026-01-02", "Worker", "-"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestPrintState_OncePerStatus(t *testing.T) {
	var buf bytes.Buffer
	report := printState(&buf)

	report(api.TaskState{Status: api.TaskPending})
	report(api.TaskState{Status: api.TaskPending})
	report(api.TaskState{Status: api.TaskSuccess})

	if got := strings.Count(buf.String(), "\n"); got != 2 {
		t.Errorf("expected 2 lines, got %d: %q", got, buf.String())
	}
}
