package modals

import (
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
)

// =============================================================================
// PasswordLoginState - State for the username/password sign-in modal
// =============================================================================

type PasswordLoginState struct {
	username string
	password string
	form     *huh.Form
	Progress Progress
}

func (*PasswordLoginState) modalState() {}

func (s *PasswordLoginState) Title() string { return "Sign in with password" }

func (s *PasswordLoginState) Help() string {
	if s.Progress.Busy() {
		return "Signing in..."
	}
	return "Tab: next field  Enter: sign in  Esc: cancel"
}

func (s *PasswordLoginState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	body := s.form.View()
	if s.Progress.Busy() {
		body = lipgloss.NewStyle().Faint(true).Render(body)
	}
	parts := []string{title, body}
	if status := s.Progress.View(); status != "" {
		parts = append(parts, status)
	}
	parts = append(parts, ModalHelpStyle.Render(s.Help()))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (s *PasswordLoginState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	if tick, ok := msg.(ProgressTickMsg); ok {
		return s, s.Progress.Tick(tick)
	}
	if s.Progress.Busy() {
		return s, nil
	}
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}

func (s *PasswordLoginState) IsBusy() bool { return s.Progress.Busy() }

// Credentials returns the entered username and password.
func (s *PasswordLoginState) Credentials() (string, string) {
	return s.username, s.password
}

func NewPasswordLoginState() *PasswordLoginState {
	s := &PasswordLoginState{}
	s.form = newModalForm(ModalWidth-10,
		huh.NewGroup(
			huh.NewInput().
				Title("Username").
				CharLimit(ModalInputCharLimit).
				Value(&s.username),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				CharLimit(ModalInputCharLimit).
				Value(&s.password),
		),
	)
	return s
}
