package modals

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/cloudpebble/cptui/internal/auth"
)

// =============================================================================
// ProviderChooserState - State for the account-linking dialog
// =============================================================================

// ProviderChooserState asks which provider already owns an account so the
// pending credential can be linked to it.
type ProviderChooserState struct {
	Email    string
	options  []auth.Provider
	selected string
	form     *huh.Form
}

func (*ProviderChooserState) modalState() {}

func (s *ProviderChooserState) Title() string { return "Link Accounts" }

func (s *ProviderChooserState) Help() string {
	return "up/down: choose  Enter: sign in  Esc: cancel"
}

func (s *ProviderChooserState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	intro := lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Width(ModalWidth - 6).
		Render(fmt.Sprintf("An account already exists for %s. Sign in with the provider you used before to link them.", s.Email))
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, intro, "", s.form.View(), help)
}

func (s *ProviderChooserState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}

// Selected returns the highlighted provider.
func (s *ProviderChooserState) Selected() auth.Provider {
	for _, p := range s.options {
		if p.ID == s.selected {
			return p
		}
	}
	if len(s.options) > 0 {
		return s.options[0]
	}
	return auth.Provider{}
}

// Options returns the providers offered.
func (s *ProviderChooserState) Options() []auth.Provider { return s.options }

// NewProviderChooserState builds the dialog for email over options.
func NewProviderChooserState(email string, options []auth.Provider) *ProviderChooserState {
	s := &ProviderChooserState{Email: email, options: options}
	opts := make([]huh.Option[string], len(options))
	for i, p := range options {
		opts[i] = huh.NewOption(p.Label, p.ID)
	}
	if len(options) > 0 {
		s.selected = options[0].ID
	}
	s.form = newModalForm(ModalWidth-10,
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Provider").
				Options(opts...).
				Value(&s.selected),
		),
	)
	return s
}
