package app

import (
	"testing"

	"github.com/cloudpebble/cptui/internal/config"
	"github.com/cloudpebble/cptui/internal/ui"
)

func TestNew_DefaultThemeInitialization(t *testing.T) {
	_ = New(Options{Config: &config.Config{}, Service: newFakeService()})

	if got := ui.CurrentThemeName(); got != ui.DefaultTheme {
		t.Errorf("expected default theme %q, got %q", ui.DefaultTheme, got)
	}
}

func TestNew_ConfiguredTheme(t *testing.T) {
	defer ui.SetTheme(ui.DefaultTheme)

	cfg := testConfig()
	cfg.Theme = string(ui.ThemeLight)
	_ = New(Options{Config: cfg, Service: newFakeService()})

	if got := ui.CurrentThemeName(); got != ui.ThemeLight {
		t.Errorf("expected theme %q, got %q", ui.ThemeLight, got)
	}
}

func TestInit_ScreenDependsOnSession(t *testing.T) {
	tests := []struct {
		name    string
		session bool
		want    Screen
		wantCmd bool
	}{
		{"signed out", false, ScreenSplash, false},
		{"signed in", true, ScreenProjects, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newFakeService()
			svc.session = tt.session
			m := testModel(t, svc)

			cmd := m.Init()
			if m.Screen() != tt.want {
				t.Errorf("screen = %s, want %s", m.Screen(), tt.want)
			}
			if (cmd != nil) != tt.wantCmd {
				t.Errorf("cmd != nil is %v, want %v", cmd != nil, tt.wantCmd)
			}
		})
	}
}

func TestInit_ImportPathOpensPrefilledDialog(t *testing.T) {
	svc := newFakeService()
	svc.session = true
	m := New(Options{
		Config:     testConfig(),
		Service:    svc,
		ImportPath: "/ide/import/github/pebble/pebble-faces/develop",
	})
	m.Init()

	s, ok := m.modal.State.(*ui.ImportProjectState)
	if !ok {
		t.Fatalf("expected import dialog, got %T", m.modal.State)
	}
	if s.Tab != ui.ImportTabGitHub {
		t.Errorf("expected GitHub tab, got %v", s.Tab)
	}
	form := s.GitHubForm()
	if form.URL != "github.com/pebble/pebble-faces" || form.Branch != "develop" || form.Name != "pebble" {
		t.Errorf("unexpected prefill %+v", form)
	}

	// The prefill is consumed once.
	m.modal.Hide()
	m.enterProjects()
	if m.modal.IsVisible() {
		t.Error("prefill should only open the dialog once")
	}
}

func TestNew_MalformedImportPathIgnored(t *testing.T) {
	m := New(Options{Config: testConfig(), Service: newFakeService(), ImportPath: "/ide/import/gitlab/x"})
	if m.prefill != nil {
		t.Errorf("expected no prefill, got %+v", m.prefill)
	}
}

func TestCtrlCQuits(t *testing.T) {
	m := testModel(t, newFakeService())
	ctx := m.ctx

	_, cmd := m.Update(keyPress("ctrl+c"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if ctx.Err() == nil {
		t.Error("root context should be cancelled on quit")
	}
}

func TestSDKVersions_DefaultFirst(t *testing.T) {
	m := testModel(t, newFakeService())
	m.cfg.DefaultSDK = "3"
	m.cfg.SDKVersions = []string{"4.3", "3", "2"}

	got := m.sdkVersions()
	want := []string{"3", "4.3", "2"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestView_UsesAltScreenOnEachScreen(t *testing.T) {
	m := testModel(t, newFakeService())
	for _, s := range []Screen{ScreenSplash, ScreenProjects, ScreenIDE} {
		m.setScreen(s)
		if v := m.View(); !v.AltScreen {
			t.Errorf("%s: expected alt screen view", s)
		}
	}
}
