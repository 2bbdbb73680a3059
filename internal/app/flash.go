package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/cloudpebble/cptui/internal/errors"
	"github.com/cloudpebble/cptui/internal/ui"
)

// ShowFlash displays a flash message in the footer and returns a command to start the auto-dismiss timer
func (m *Model) ShowFlash(text string, flashType ui.FlashType) tea.Cmd {
	m.footer.SetFlash(text, flashType)
	return ui.FlashTick()
}

// ShowFlashError displays an error flash message
func (m *Model) ShowFlashError(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashError)
}

// ShowFlashInfo displays an info flash message
func (m *Model) ShowFlashInfo(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashInfo)
}

// ShowFlashSuccess displays a success flash message
func (m *Model) ShowFlashSuccess(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashSuccess)
}

// flashErr reports err in the footer according to its kind. Cancelled
// errors are dropped.
func (m *Model) flashErr(err error) tea.Cmd {
	if err == nil || errors.Is(err, errors.KindCancelled) {
		return nil
	}
	return m.ShowFlashError(errorText(err))
}

// errorText is the user-facing text of a failed request.
func errorText(err error) string {
	return errors.Message(err)
}
