package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/cloudpebble/cptui/internal/api"
)

func strPtr(s string) *string { return &s }

func TestInfoPane_View(t *testing.T) {
	info := &api.ProjectInfo{
		Name:               "Watchface",
		Type:               "native",
		SDKVersion:         "3",
		AppIsWatchface:     true,
		AppUUID:            "1b7c4d2e",
		SupportedPlatforms: []string{"basalt", "chalk"},
		SourceFiles:        []api.SourceFile{{ID: 1, Name: "main.c"}},
		GitHub:             api.GitHubLink{Repo: strPtr("octo/face"), Branch: strPtr("master")},
	}
	p := NewInfoPane(info, "https://cloudpebble.net/ide/project/7")
	p.SetSize(70, 30)

	plain := ansi.Strip(p.View())
	for _, want := range []string{"Settings", "Watchface", "basalt, chalk", "octo/face", "ide/project/7"} {
		if !strings.Contains(plain, want) {
			t.Errorf("expected info view to contain %q\n%s", want, plain)
		}
	}
}

func TestInfoPane_NoGitHub(t *testing.T) {
	p := NewInfoPane(&api.ProjectInfo{Name: "x"}, "")
	p.SetSize(60, 30)
	if plain := ansi.Strip(p.View()); strings.Contains(plain, "GitHub") {
		t.Error("GitHub rows shown for unlinked project")
	}
}

func TestInfoPane_NilInfo(t *testing.T) {
	if NewInfoPane(nil, "").View() != "" {
		t.Error("expected empty view")
	}
}

func TestResourcePane_View(t *testing.T) {
	p := NewResourcePane(api.Resource{
		FileName:    "images/logo.png",
		Kind:        "png",
		Identifiers: []string{"IMAGE_LOGO"},
		Variants:    [][]string{{}, {"color"}},
	})
	p.SetSize(60, 20)

	plain := ansi.Strip(p.View())
	for _, want := range []string{"images/logo.png", "IMAGE_LOGO", "(default)", "color"} {
		if !strings.Contains(plain, want) {
			t.Errorf("expected resource view to contain %q\n%s", want, plain)
		}
	}
}
