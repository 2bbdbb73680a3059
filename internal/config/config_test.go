package config

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudpebble/cptui/internal/errors"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("CPTUI_HOME", dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultServer, cfg.Server)
	assert.Equal(t, DefaultSDK, cfg.DefaultSDK)
	assert.Equal(t, []string{DefaultSDK}, cfg.SDKVersions)
	assert.Equal(t, time.Second, cfg.PollInterval)
	assert.Equal(t, 10*time.Minute, cfg.PollTimeout)
	assert.True(t, cfg.Notifications)
	assert.Equal(t, "en", cfg.Language)
	assert.Empty(t, cfg.FileUsed)
	assert.Equal(t, DefaultServer+DefaultAuthPath, cfg.Firebase.AuthURL)
}

func TestLoad_Precedence(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server: https://file.example.com/
theme: nord
poll_interval: 2s
firebase:
  api_key: from-file
`), 0644))

	t.Setenv("CPTUI_THEME", "dracula")
	t.Setenv("CPTUI_FIREBASE_API_KEY", "from-env")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("server", "", "")
	flags.String("lang", "", "")
	flags.Bool("debug", false, "")
	require.NoError(t, flags.Parse([]string{"--lang", "es", "--debug"}))

	cfg, err := Load("", flags)
	require.NoError(t, err)

	assert.Equal(t, path, cfg.FileUsed)
	assert.Equal(t, "https://file.example.com", cfg.Server, "trailing slash trimmed, unset flag ignored")
	assert.Equal(t, "dracula", cfg.Theme, "env overrides file")
	assert.Equal(t, "from-env", cfg.Firebase.APIKey)
	assert.Equal(t, "es", cfg.Language, "flag overrides defaults")
	assert.Equal(t, 2*time.Second, cfg.PollInterval)
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	isolate(t)

	_, err := Load("/nonexistent/cptui.yaml", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.KindConfig))
}

func TestLoad_DefaultSDKAddedToVersions(t *testing.T) {
	isolate(t)
	t.Setenv("CPTUI_DEFAULT_SDK", "4.3")

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"4.3", DefaultSDK}, cfg.SDKVersions)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Server:       "https://example.com",
			PollInterval: time.Second,
			PollTimeout:  time.Minute,
			Prefetch:     2,
			SDKVersions:  []string{DefaultSDK},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"bad scheme", func(c *Config) { c.Server = "ftp://example.com" }, true},
		{"no host", func(c *Config) { c.Server = "https://" }, true},
		{"zero interval", func(c *Config) { c.PollInterval = 0 }, true},
		{"timeout below interval", func(c *Config) { c.PollTimeout = time.Millisecond }, true},
		{"no prefetch", func(c *Config) { c.Prefetch = 0 }, true},
		{"no sdks", func(c *Config) { c.SDKVersions = nil }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.True(t, errors.Is(err, errors.KindInvalid), "got %v", err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSession_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")

	s, err := LoadSession(path)
	require.NoError(t, err)
	assert.False(t, s.LoggedIn("https://example.com"))

	s.Update("https://example.com", "katharine", "k@example.com", "github.com", []*http.Cookie{
		{Name: "sessionid", Value: "abc", Path: "/"},
		{Name: "csrftoken", Value: "tok", Path: "/"},
	})
	require.NoError(t, s.Save())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := LoadSession(path)
	require.NoError(t, err)
	assert.True(t, loaded.LoggedIn("https://example.com"))
	assert.False(t, loaded.LoggedIn("https://other.example.com"))
	assert.Equal(t, "katharine", loaded.DisplayName())
	assert.Len(t, loaded.HTTPCookies(), 2)

	require.NoError(t, loaded.Clear())
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
	assert.Empty(t, loaded.HTTPCookies())
}

func TestSession_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	_, err := LoadSession(path)
	assert.True(t, errors.Is(err, errors.KindConfig))
}
