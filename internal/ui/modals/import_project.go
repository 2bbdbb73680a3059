package modals

import (
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/cloudpebble/cptui/internal/keys"
	"github.com/cloudpebble/cptui/internal/project"
)

// =============================================================================
// ImportProjectState - State for the Import modal (zip archive or GitHub)
// =============================================================================

// ImportTab selects the import source.
type ImportTab int

const (
	ImportTabArchive ImportTab = iota
	ImportTabGitHub
)

var importTabLabels = []string{"Zip archive", "GitHub"}

type ImportProjectState struct {
	Tab ImportTab

	archive project.ArchiveForm
	github  project.GitHubForm

	archiveForm *huh.Form
	githubForm  *huh.Form

	Progress Progress
}

func (*ImportProjectState) modalState() {}

func (s *ImportProjectState) PreferredWidth() int { return ModalWidthWide }

func (s *ImportProjectState) Title() string { return "Import Project" }

func (s *ImportProjectState) Help() string {
	if s.Progress.Busy() {
		return "Importing..."
	}
	return "Ctrl+T: switch source  Tab: next field  Enter: import  Esc: cancel"
}

func (s *ImportProjectState) Render() string {
	busy := s.Progress.Busy()
	title := ModalTitleStyle.Render(s.Title())
	tabs := renderTabs(importTabLabels, int(s.Tab), busy)
	body := s.activeForm().View()
	if busy {
		body = lipgloss.NewStyle().Faint(true).Render(body)
	}
	parts := []string{title, tabs, "", body}
	if status := s.Progress.View(); status != "" {
		parts = append(parts, status)
	}
	parts = append(parts, ModalHelpStyle.Render(s.Help()))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (s *ImportProjectState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	if tick, ok := msg.(ProgressTickMsg); ok {
		return s, s.Progress.Tick(tick)
	}
	if s.Progress.Busy() {
		return s, nil
	}
	if key, ok := msg.(tea.KeyPressMsg); ok && key.String() == keys.CtrlT {
		s.SwitchTab()
		return s, nil
	}
	var cmd tea.Cmd
	if s.Tab == ImportTabGitHub {
		s.githubForm, cmd = huhFormUpdate(s.githubForm, msg)
	} else {
		s.archiveForm, cmd = huhFormUpdate(s.archiveForm, msg)
	}
	return s, cmd
}

func (s *ImportProjectState) IsBusy() bool { return s.Progress.Busy() }

// SwitchTab toggles between the archive and GitHub sources, clearing any
// inline error from the previous tab.
func (s *ImportProjectState) SwitchTab() {
	if s.Progress.Busy() {
		return
	}
	if s.Tab == ImportTabGitHub {
		s.Tab = ImportTabArchive
	} else {
		s.Tab = ImportTabGitHub
	}
	s.Progress.Err = ""
}

func (s *ImportProjectState) activeForm() *huh.Form {
	if s.Tab == ImportTabGitHub {
		return s.githubForm
	}
	return s.archiveForm
}

// ArchiveForm returns the zip import values.
func (s *ImportProjectState) ArchiveForm() project.ArchiveForm { return s.archive }

// GitHubForm returns the GitHub import values.
func (s *ImportProjectState) GitHubForm() project.GitHubForm { return s.github }

// NewImportProjectState builds the import modal. A non-empty prefill
// (from an /ide/import/github/ link) opens on the GitHub tab with its
// fields filled in.
func NewImportProjectState(sdkVersions []string, prefill project.Prefill) *ImportProjectState {
	s := &ImportProjectState{}
	if len(sdkVersions) > 0 {
		s.archive.SDK = sdkVersions[0]
		s.github.SDK = sdkVersions[0]
	}
	if prefill != (project.Prefill{}) {
		s.Tab = ImportTabGitHub
		s.github.Name = prefill.Name
		s.github.URL = prefill.URL
		s.github.Branch = prefill.Branch
	}

	sdkOptions := func() []huh.Option[string] {
		opts := make([]huh.Option[string], len(sdkVersions))
		for i, v := range sdkVersions {
			opts[i] = huh.NewOption(v, v)
		}
		return opts
	}

	s.archiveForm = newModalForm(ModalWidthWide-10,
		huh.NewGroup(
			huh.NewInput().
				Title("Project name").
				CharLimit(ModalInputCharLimit).
				Value(&s.archive.Name),
			huh.NewInput().
				Title("Zip file").
				Description("Path to a project archive on this machine").
				Placeholder("~/Downloads/project.zip").
				CharLimit(ModalInputCharLimit).
				Value(&s.archive.Path),
			huh.NewSelect[string]().
				Title("SDK version").
				Options(sdkOptions()...).
				Value(&s.archive.SDK),
		),
	)

	s.githubForm = newModalForm(ModalWidthWide-10,
		huh.NewGroup(
			huh.NewInput().
				Title("Project name").
				CharLimit(ModalInputCharLimit).
				Value(&s.github.Name),
			huh.NewInput().
				Title("Repository").
				Placeholder("github.com/owner/repo").
				CharLimit(ModalInputCharLimit).
				Value(&s.github.URL),
			huh.NewInput().
				Title("Branch").
				Placeholder(project.DefaultBranch).
				CharLimit(ModalInputCharLimit).
				Value(&s.github.Branch),
			huh.NewSelect[string]().
				Title("SDK version").
				Options(sdkOptions()...).
				Value(&s.github.SDK),
			huh.NewConfirm().
				Title("Link the repository to the project").
				Affirmative("Yes").
				Negative("No").
				Value(&s.github.AddRemote),
		),
	)
	return s
}
