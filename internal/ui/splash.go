package ui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/cloudpebble/cptui/internal/auth"
	"github.com/cloudpebble/cptui/internal/keys"
	"github.com/cloudpebble/cptui/internal/ui/modals"
)

// SplashSelectMsg is sent when a sign-in button is pressed. Provider is the
// zero value for the password button.
type SplashSelectMsg struct {
	Provider auth.Provider
	Password bool
}

const passwordButtonLabel = "Username & password"

// Splash is the sign-in screen. Its buttons are disabled while a sign-in
// is in flight.
type Splash struct {
	cursor   int
	progress modals.Progress
	width    int
	height   int
}

func NewSplash() *Splash {
	return &Splash{}
}

// SetSize sets the screen dimensions
func (s *Splash) SetSize(width, height int) {
	s.width = width
	s.height = height
}

func (s *Splash) buttonCount() int { return len(auth.Providers) + 1 }

// Busy reports whether a sign-in is in flight.
func (s *Splash) Busy() bool { return s.progress.Busy() }

// Start disables the buttons and shows text with a spinner.
func (s *Splash) Start(text string) tea.Cmd { return s.progress.Start(text) }

// Done re-enables the buttons. A non-empty errText is shown beneath them.
func (s *Splash) Done(errText string) {
	s.progress.Fail(errText)
}

// Err returns the message shown under the buttons.
func (s *Splash) Err() string { return s.progress.Err }

func (s *Splash) Update(msg tea.Msg) (*Splash, tea.Cmd) {
	switch msg := msg.(type) {
	case modals.ProgressTickMsg:
		return s, s.progress.Tick(msg)
	case tea.KeyPressMsg:
		if s.Busy() {
			return s, nil
		}
		switch msg.String() {
		case keys.Up, keys.Left, keys.ShiftTab, "k", "h":
			s.cursor = (s.cursor + s.buttonCount() - 1) % s.buttonCount()
		case keys.Down, keys.Right, keys.Tab, "j", "l":
			s.cursor = (s.cursor + 1) % s.buttonCount()
		case keys.Enter, keys.Space:
			sel := SplashSelectMsg{Password: s.cursor == len(auth.Providers)}
			if !sel.Password {
				sel.Provider = auth.Providers[s.cursor]
			}
			return s, func() tea.Msg { return sel }
		}
	}
	return s, nil
}

func (s *Splash) View() string {
	busy := s.Busy()
	labels := make([]string, 0, s.buttonCount())
	for _, p := range auth.Providers {
		labels = append(labels, "Sign in with "+p.Label)
	}
	labels = append(labels, passwordButtonLabel)

	buttons := make([]string, len(labels))
	for i, l := range labels {
		style := ButtonStyle
		switch {
		case busy:
			style = ButtonDisabledStyle
		case i == s.cursor:
			style = ButtonFocusedStyle
		}
		buttons[i] = style.Render(l)
	}

	parts := []string{
		SplashTitleStyle.Render("CloudPebble"),
		lipgloss.NewStyle().Foreground(ColorTextMuted).Render("Sign in to continue"),
		"",
		strings.Join(buttons, "\n"),
	}
	if status := s.progress.View(); status != "" {
		parts = append(parts, "", status)
	}
	content := lipgloss.JoinVertical(lipgloss.Center, parts...)
	return lipgloss.Place(s.width, s.height, lipgloss.Center, lipgloss.Center, content)
}
