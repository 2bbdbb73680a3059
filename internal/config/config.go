// Package config loads cptui settings and persists the login session.
//
// Settings are layered with koanf. The order from lowest to highest
// precedence is: built-in defaults, the YAML config file, CPTUI_* env
// vars, then explicitly set flags.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/cloudpebble/cptui/internal/errors"
)

const (
	// EnvPrefix is stripped from environment variables before mapping to keys.
	EnvPrefix = "CPTUI_"

	// DefaultServer is the IDE host used when nothing else is configured.
	DefaultServer = "https://cloudpebble.repebble.com"

	// DefaultSDK is the SDK version offered first in project forms.
	DefaultSDK = "4.9.127"

	// DefaultAuthPath is the server page that hosts the sign-in popup.
	DefaultAuthPath = "/accounts/firebase/popup"

	configFileName  = "config.yaml"
	sessionFileName = "session.json"
)

// Firebase holds the identity platform settings used by federated login.
type Firebase struct {
	APIKey      string `koanf:"api_key"`
	AuthURL     string `koanf:"auth_url"`
	IdentityURL string `koanf:"identity_url"`
}

// Config is the resolved set of cptui settings.
type Config struct {
	Server        string        `koanf:"server"`
	Theme         string        `koanf:"theme"`
	Language      string        `koanf:"language"`
	DefaultSDK    string        `koanf:"default_sdk"`
	SDKVersions   []string      `koanf:"sdk_versions"`
	PollInterval  time.Duration `koanf:"poll_interval"`
	PollTimeout   time.Duration `koanf:"poll_timeout"`
	Notifications bool          `koanf:"notifications"`
	TemplatesFile string        `koanf:"templates_file"`
	Prefetch      int           `koanf:"prefetch"`
	Firebase      Firebase      `koanf:"firebase"`

	// FileUsed is the config file that was read, if any.
	FileUsed string `koanf:"-"`
}

func defaults() map[string]any {
	return map[string]any{
		"server":                DefaultServer,
		"theme":                 "dark-purple",
		"language":              "en",
		"default_sdk":           DefaultSDK,
		"sdk_versions":          []string{DefaultSDK},
		"poll_interval":         "1s",
		"poll_timeout":          "10m",
		"notifications":         true,
		"templates_file":        "",
		"prefetch":              4,
		"firebase.api_key":      "",
		"firebase.auth_url":     "",
		"firebase.identity_url": "https://identitytoolkit.googleapis.com/v1",
	}
}

// Dir returns ~/.cptui, or $CPTUI_HOME when set.
func Dir() (string, error) {
	if d := os.Getenv("CPTUI_HOME"); d != "" {
		return d, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cptui"), nil
}

// DefaultPath returns the config file path used when --config is not given.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// DefaultSessionPath returns where the login session is stored.
func DefaultSessionPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, sessionFileName), nil
}

// envKey maps CPTUI_FIREBASE_API_KEY to firebase.api_key and
// CPTUI_POLL_TIMEOUT to poll_timeout.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if rest, ok := strings.CutPrefix(key, "firebase_"); ok {
		return "firebase." + rest
	}
	return key
}

// flagKeys maps CLI flag names to config keys. Flags absent here are not config.
var flagKeys = map[string]string{
	"server":      "server",
	"theme":       "theme",
	"lang":        "language",
	"default-sdk": "default_sdk",
}

// Load resolves configuration. cfgFile may be empty, in which case the
// default path is read if it exists. flags may be nil.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, errors.ConfigLoadFailed("defaults", err)
	}

	explicit := cfgFile != ""
	if !explicit {
		if p, err := DefaultPath(); err == nil {
			cfgFile = p
		}
	}
	var used string
	if cfgFile != "" {
		if _, err := os.Stat(cfgFile); err == nil {
			if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
				return nil, errors.ConfigLoadFailed(cfgFile, err)
			}
			used = cfgFile
		} else if explicit {
			return nil, errors.ConfigLoadFailed(cfgFile, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.ConfigLoadFailed("environment", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			key, ok := flagKeys[f.Name]
			if !ok || !f.Changed {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, errors.ConfigLoadFailed("flags", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.ConfigLoadFailed("decode", err)
	}
	cfg.FileUsed = used
	cfg.Server = strings.TrimRight(cfg.Server, "/")
	if cfg.Firebase.AuthURL == "" {
		cfg.Firebase.AuthURL = cfg.Server + DefaultAuthPath
	}
	if cfg.DefaultSDK != "" && !slices.Contains(cfg.SDKVersions, cfg.DefaultSDK) {
		cfg.SDKVersions = append([]string{cfg.DefaultSDK}, cfg.SDKVersions...)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the resolved settings are usable.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Server)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return errors.ConfigInvalid(fmt.Sprintf("server must be an http(s) URL, got %q", c.Server))
	}
	if c.PollInterval <= 0 {
		return errors.ConfigInvalid("poll_interval must be positive")
	}
	if c.PollTimeout < c.PollInterval {
		return errors.ConfigInvalid("poll_timeout must be at least poll_interval")
	}
	if c.Prefetch < 1 {
		return errors.ConfigInvalid("prefetch must be at least 1")
	}
	if len(c.SDKVersions) == 0 {
		return errors.ConfigInvalid("sdk_versions must not be empty")
	}
	return nil
}
