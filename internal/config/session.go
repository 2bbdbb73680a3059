package config

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/cloudpebble/cptui/internal/errors"
)

// Cookie is a persisted server cookie.
type Cookie struct {
	Name    string    `json:"name"`
	Value   string    `json:"value"`
	Path    string    `json:"path,omitempty"`
	Expires time.Time `json:"expires,omitempty"`
}

// Session is the logged-in state written to ~/.cptui/session.json.
type Session struct {
	Server   string    `json:"server"`
	Username string    `json:"username,omitempty"`
	Email    string    `json:"email,omitempty"`
	Provider string    `json:"provider,omitempty"`
	Cookies  []Cookie  `json:"cookies"`
	SavedAt  time.Time `json:"saved_at"`

	mu       sync.RWMutex
	filePath string
}

// LoadSession reads the session at path. A missing file yields an empty session.
func LoadSession(path string) (*Session, error) {
	s := &Session{Cookies: []Cookie{}, filePath: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}
	if err := json.Unmarshal(data, s); err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}
	if s.Cookies == nil {
		s.Cookies = []Cookie{}
	}
	return s, nil
}

// LoggedIn reports whether the session carries a session cookie for server.
func (s *Session) LoggedIn(server string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.Server != server {
		return false
	}
	for _, c := range s.Cookies {
		if c.Name == "sessionid" && c.Value != "" {
			return true
		}
	}
	return false
}

// Update replaces the stored cookies and identity for server.
func (s *Session) Update(server, username, email, provider string, cookies []*http.Cookie) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Server = server
	s.Username = username
	s.Email = email
	s.Provider = provider
	s.Cookies = s.Cookies[:0]
	for _, c := range cookies {
		s.Cookies = append(s.Cookies, Cookie{Name: c.Name, Value: c.Value, Path: c.Path, Expires: c.Expires})
	}
	s.SavedAt = time.Now()
}

// HTTPCookies converts the stored cookies back for a cookie jar.
func (s *Session) HTTPCookies() []*http.Cookie {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*http.Cookie, 0, len(s.Cookies))
	for _, c := range s.Cookies {
		out = append(out, &http.Cookie{Name: c.Name, Value: c.Value, Path: c.Path, Expires: c.Expires})
	}
	return out
}

// DisplayName returns the username, falling back to the email.
func (s *Session) DisplayName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.Username != "" {
		return s.Username
	}
	return s.Email
}

// Save writes the session with owner-only permissions.
func (s *Session) Save() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := os.MkdirAll(filepath.Dir(s.filePath), 0700); err != nil {
		return errors.ConfigSaveFailed(s.filePath, err)
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return errors.ConfigSaveFailed(s.filePath, err)
	}
	if err := os.WriteFile(s.filePath, data, 0600); err != nil {
		return errors.ConfigSaveFailed(s.filePath, err)
	}
	return nil
}

// Clear forgets all session state and removes the file.
func (s *Session) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Server, s.Username, s.Email, s.Provider = "", "", "", ""
	s.Cookies = []Cookie{}
	if err := os.Remove(s.filePath); err != nil && !os.IsNotExist(err) {
		return errors.ConfigSaveFailed(s.filePath, err)
	}
	return nil
}
