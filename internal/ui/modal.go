package ui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/cloudpebble/cptui/internal/ui/modals"
)

// Type aliases so the app layer can refer to modal states through ui.
type (
	ModalState           = modals.ModalState
	HelpState            = modals.HelpState
	HelpShortcut         = modals.HelpShortcut
	HelpSection          = modals.HelpSection
	CreateProjectState   = modals.CreateProjectState
	ImportProjectState   = modals.ImportProjectState
	ProviderChooserState = modals.ProviderChooserState
	PasswordLoginState   = modals.PasswordLoginState
	ProgressTickMsg      = modals.ProgressTickMsg
	ImportTab            = modals.ImportTab
)

const (
	ImportTabArchive = modals.ImportTabArchive
	ImportTabGitHub  = modals.ImportTabGitHub
)

var (
	NewHelpState            = modals.NewHelpState
	NewCreateProjectState   = modals.NewCreateProjectState
	NewImportProjectState   = modals.NewImportProjectState
	NewProviderChooserState = modals.NewProviderChooserState
	NewPasswordLoginState   = modals.NewPasswordLoginState
)

// RefreshModalStyles pushes the current theme into the modals package.
func RefreshModalStyles() {
	modals.SetStyles(
		ModalTitleStyle, ModalHelpStyle, SidebarItemStyle, SidebarSelectedStyle, StatusErrorStyle, StatusLoadingStyle,
		ColorPrimary, ColorSecondary, ColorText, ColorTextMuted, ColorTextInverse, ColorWarning,
		ModalInputWidth, ModalInputCharLimit, ModalWidth, ModalWidthWide,
	)
}

// Modal represents a popup dialog with type-safe state management.
// The State field is nil when no modal is visible.
type Modal struct {
	State ModalState
}

// NewModal creates a new modal
func NewModal() *Modal {
	return &Modal{}
}

// Show displays a modal with the given state
func (m *Modal) Show(state ModalState) {
	m.State = state
}

// Hide hides the modal
func (m *Modal) Hide() {
	m.State = nil
}

// IsVisible returns whether the modal is visible
func (m *Modal) IsVisible() bool {
	return m.State != nil
}

// IsBusy reports whether the visible modal is waiting on a request.
func (m *Modal) IsBusy() bool {
	b, ok := m.State.(modals.Busy)
	return ok && b.IsBusy()
}

// Update handles messages by delegating to the current state
func (m *Modal) Update(msg tea.Msg) (*Modal, tea.Cmd) {
	if m.State == nil {
		return m, nil
	}
	var cmd tea.Cmd
	m.State, cmd = m.State.Update(msg)
	return m, cmd
}

// View renders the modal centered on a screen of the given size.
func (m *Modal) View(screenWidth, screenHeight int) string {
	if m.State == nil {
		return ""
	}

	width := ModalWidth
	if pw, ok := m.State.(modals.ModalWithPreferredWidth); ok {
		width = pw.PreferredWidth()
	}
	width = min(width, screenWidth-2)
	if sized, ok := m.State.(modals.ModalWithSize); ok {
		sized.SetSize(width-4, screenHeight-6)
	}

	modal := ModalStyle.Width(width).Render(m.State.Render())

	return lipgloss.Place(
		screenWidth, screenHeight,
		lipgloss.Center, lipgloss.Center,
		modal,
	)
}
