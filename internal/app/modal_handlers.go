package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/cloudpebble/cptui/internal/auth"
	"github.com/cloudpebble/cptui/internal/keys"
	"github.com/cloudpebble/cptui/internal/logger"
	"github.com/cloudpebble/cptui/internal/ui"
)

// handleModalKey handles key presses while a modal is visible.
func (m *Model) handleModalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch s := m.modal.State.(type) {
	case *ui.HelpState:
		if s.IsFiltering() {
			break
		}
		switch key {
		case keys.Escape, "?", "q":
			m.modal.Hide()
			return m, nil
		case keys.Enter:
			return m.runHelpSelection(s.Selected())
		}

	case *ui.ProviderChooserState:
		switch key {
		case keys.Enter:
			m.answerChooser(s.Selected(), nil)
			return m, nil
		case keys.Escape:
			m.answerChooser(auth.Provider{}, auth.ErrPopupClosed)
			return m, nil
		}

	case *ui.CreateProjectState:
		if key == keys.Enter && !s.IsBusy() {
			return m, m.submitCreate(s)
		}

	case *ui.ImportProjectState:
		if key == keys.Enter && !s.IsBusy() {
			return m, m.submitImport(s)
		}

	case *ui.PasswordLoginState:
		if key == keys.Enter && !s.IsBusy() {
			return m, m.passwordLogin(s)
		}
	}

	if key == keys.Escape {
		// A busy dialog stays up until its request resolves.
		if m.modal.IsBusy() {
			logger.Debug("App: ignoring escape while request is in flight")
			return m, nil
		}
		m.modal.Hide()
		return m, nil
	}

	_, cmd := m.modal.Update(msg)
	return m, cmd
}
