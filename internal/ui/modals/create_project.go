package modals

import (
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/cloudpebble/cptui/internal/project"
	"github.com/cloudpebble/cptui/internal/templates"
)

// =============================================================================
// CreateProjectState - State for the New Project modal
// =============================================================================

var projectTypeLabels = map[string]string{
	"native":   "Pebble C SDK",
	"alloy":    "Alloy (JavaScript SDK)",
	"rocky":    "Rocky.js",
	"package":  "Pebble Package",
	"pebblejs": "Pebble.js (beta)",
	"simplyjs": "Simply.js",
}

type CreateProjectState struct {
	name          string
	projectType   string
	sdk           string
	template      int
	alloyTemplate string

	form     *huh.Form
	Progress Progress
}

func (*CreateProjectState) modalState() {}

func (s *CreateProjectState) PreferredWidth() int { return ModalWidthWide }

func (s *CreateProjectState) Title() string { return "New Project" }

func (s *CreateProjectState) Help() string {
	if s.Progress.Busy() {
		return "Creating project..."
	}
	return "Tab: next field  Enter: create  Esc: cancel"
}

func (s *CreateProjectState) Render() string {
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

func (s *CreateProjectState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	if tick, ok := msg.(ProgressTickMsg); ok {
		return s, s.Progress.Tick(tick)
	}
	if s.Progress.Busy() {
		return s, nil
	}
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	s.applyType()
	return s, cmd
}

func (s *CreateProjectState) IsBusy() bool { return s.Progress.Busy() }

// applyType resets the native template for project types that do not use it.
func (s *CreateProjectState) applyType() {
	if s.projectType != "native" {
		s.template = 0
	}
}

// ProjectType returns the selected project type.
func (s *CreateProjectState) ProjectType() string { return s.projectType }

// SDKVisible reports whether the SDK version select is shown.
func (s *CreateProjectState) SDKVisible() bool { return s.projectType == "native" }

// TemplateVisible reports whether the native template select is shown.
func (s *CreateProjectState) TemplateVisible() bool { return s.projectType == "native" }

// AlloyVisible reports whether the alloy template select is shown.
func (s *CreateProjectState) AlloyVisible() bool { return s.projectType == "alloy" }

// SetProjectType sets the type and applies its field visibility.
func (s *CreateProjectState) SetProjectType(t string) {
	s.projectType = t
	s.applyType()
}

// GetForm returns the submitted values.
func (s *CreateProjectState) GetForm() project.CreateForm {
	return project.CreateForm{
		Name:          s.name,
		Type:          s.projectType,
		Template:      s.template,
		SDK:           s.sdk,
		AlloyTemplate: s.alloyTemplate,
	}
}

// NewCreateProjectState builds the New Project form. alloy lists the
// JavaScript SDK starter templates, already flattened for display.
func NewCreateProjectState(sdkVersions []string, alloy []templates.Option) *CreateProjectState {
	s := &CreateProjectState{projectType: "native", template: templates.NativeTemplates[0].ID}
	if len(sdkVersions) > 0 {
		s.sdk = sdkVersions[0]
	}
	s.alloyTemplate = templates.DefaultID
	if len(alloy) > 0 {
		s.alloyTemplate = alloy[0].Value
	}

	typeOptions := make([]huh.Option[string], len(project.Types))
	for i, t := range project.Types {
		typeOptions[i] = huh.NewOption(projectTypeLabels[t], t)
	}
	sdkOptions := make([]huh.Option[string], len(sdkVersions))
	for i, v := range sdkVersions {
		sdkOptions[i] = huh.NewOption(v, v)
	}
	templateOptions := make([]huh.Option[int], len(templates.NativeTemplates))
	for i, t := range templates.NativeTemplates {
		templateOptions[i] = huh.NewOption(t.Label, t.ID)
	}
	alloyOptions := make([]huh.Option[string], len(alloy))
	for i, t := range alloy {
		alloyOptions[i] = huh.NewOption(t.Label, t.Value)
	}
	if len(alloyOptions) == 0 {
		alloyOptions = []huh.Option[string]{huh.NewOption(templates.DefaultID, templates.DefaultID)}
	}

	s.form = newModalForm(ModalWidthWide-10,
		huh.NewGroup(
			huh.NewInput().
				Title("Project name").
				CharLimit(ModalInputCharLimit).
				Value(&s.name),
			huh.NewSelect[string]().
				Title("Project type").
				Options(typeOptions...).
				Value(&s.projectType),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("SDK version").
				Options(sdkOptions...).
				Value(&s.sdk),
		).WithHideFunc(func() bool { return !s.SDKVisible() }),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Template").
				Options(templateOptions...).
				Value(&s.template),
		).WithHideFunc(func() bool { return !s.TemplateVisible() }),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Template").
				Description("Starter code for the JavaScript SDK").
				Options(alloyOptions...).
				Height(min(len(alloyOptions), 8)+1).
				Value(&s.alloyTemplate),
		).WithHideFunc(func() bool { return !s.AlloyVisible() }),
	)
	return s
}
