package cmd

import (
	"testing"
)

func TestPersistentFlagsExist(t *testing.T) {
	for _, name := range []string{"server", "config", "debug", "theme", "lang", "default-sdk"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("--%s flag not found", name)
		}
	}
}

func TestDebugFlagDefaultFalse(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("debug")
	if flag == nil {
		t.Fatal("--debug flag not found")
	}
	if flag.DefValue != "false" {
		t.Errorf("--debug default = %q, want %q", flag.DefValue, "false")
	}
}

func TestImportGitHubFlagOnRootOnly(t *testing.T) {
	if rootCmd.Flags().Lookup("import-github") == nil {
		t.Fatal("--import-github flag not found")
	}
	if rootCmd.PersistentFlags().Lookup("import-github") != nil {
		t.Error("--import-github should not be inherited by subcommands")
	}
}

func TestSubcommandsRegistered(t *testing.T) {
	want := map[string]bool{"login": false, "projects": false, "import": false, "logout": false}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}

	var subs []string
	for _, c := range importCmd.Commands() {
		subs = append(subs, c.Name())
	}
	if len(subs) != 2 {
		t.Errorf("import subcommands = %v, want github and zip", subs)
	}
}

func TestVersionTemplate(t *testing.T) {
	origV, origC, origD := version, commit, date
	defer SetVersionInfo(origV, origC, origD)

	SetVersionInfo("1.2.3", "none", "")
	if got := versionTemplate(); got != "cptui 1.2.3\n" {
		t.Errorf("versionTemplate() = %q", got)
	}

	SetVersionInfo("1.2.3", "abc123", "2026-01-01")
	if got := versionTemplate(); got != "cptui 1.2.3\n  commit: abc123\n  built:  2026-01-01\n" {
		t.Errorf("versionTemplate() = %q", got)
	}
}

func TestInitConfig_DebugToggle(t *testing.T) {
	orig := debugMode
	defer func() { debugMode = orig; initConfig() }()

	debugMode = true
	// Should not panic
	initConfig()
}
