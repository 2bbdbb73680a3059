package ui

import (
	"fmt"
	"io"

	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/cloudpebble/cptui/internal/api"
)

type projectItem struct {
	project api.ProjectSummary
}

func (i projectItem) FilterValue() string { return i.project.Name }

type projectDelegate struct{}

func (d projectDelegate) Height() int                             { return 2 }
func (d projectDelegate) Spacing() int                            { return 0 }
func (d projectDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d projectDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	p, ok := item.(projectItem)
	if !ok {
		return
	}
	width := m.Width() - 2

	detail := p.project.PackageName
	if v := p.project.AppVersionLabel; v != "" {
		if detail != "" {
			detail += "  "
		}
		detail += "v" + v
	}
	if p.project.LatestSuccessfulBuild == nil {
		detail += "  (never built)"
	}

	nameStyle := SidebarItemStyle
	prefix := "  "
	if index == m.Index() {
		nameStyle = SidebarSelectedStyle
		prefix = "> "
	}
	name := nameStyle.Render(prefix + truncateLabel(p.project.Name, width))
	desc := lipgloss.NewStyle().Foreground(ColorTextMuted).PaddingLeft(2).
		Render("  " + truncateLabel(detail, width-2))
	fmt.Fprint(w, name+"\n"+desc)
}

// ProjectList is the project picker.
type ProjectList struct {
	list    list.Model
	loaded  bool
	loading bool
	err     string
	width   int
	height  int
}

// NewProjectList creates an empty project list.
func NewProjectList() *ProjectList {
	l := list.New(nil, projectDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowPagination(true)
	l.DisableQuitKeybindings()
	l.SetFilteringEnabled(true)
	return &ProjectList{list: l}
}

// SetSize sets the list dimensions
func (p *ProjectList) SetSize(width, height int) {
	p.width = width
	p.height = height
	ctx := GetViewContext()
	p.list.SetSize(ctx.InnerWidth(width), max(ctx.InnerHeight(height)-TitleHeight, 1))
}

// SetLoading marks the list as waiting on the server.
func (p *ProjectList) SetLoading() {
	p.loading = true
	p.err = ""
}

// SetError shows err in place of the list.
func (p *ProjectList) SetError(err string) {
	p.loading = false
	p.err = err
}

// SetProjects replaces the listed projects.
func (p *ProjectList) SetProjects(projects []api.ProjectSummary) tea.Cmd {
	p.loading = false
	p.loaded = true
	p.err = ""
	items := make([]list.Item, len(projects))
	for i, pr := range projects {
		items[i] = projectItem{project: pr}
	}
	return p.list.SetItems(items)
}

// Len returns the number of projects.
func (p *ProjectList) Len() int { return len(p.list.Items()) }

// Selected returns the highlighted project.
func (p *ProjectList) Selected() (api.ProjectSummary, bool) {
	it, ok := p.list.SelectedItem().(projectItem)
	if !ok {
		return api.ProjectSummary{}, false
	}
	return it.project, true
}

// IsFiltering reports whether the user is typing a filter, during which
// single-letter shortcuts belong to the list.
func (p *ProjectList) IsFiltering() bool { return p.list.SettingFilter() }

func (p *ProjectList) Update(msg tea.Msg) (*ProjectList, tea.Cmd) {
	var cmd tea.Cmd
	p.list, cmd = p.list.Update(msg)
	return p, cmd
}

func (p *ProjectList) View() string {
	var body string
	muted := lipgloss.NewStyle().Foreground(ColorTextMuted).Italic(true)
	switch {
	case p.err != "":
		body = StatusErrorStyle.Render(p.err)
	case p.loading && !p.loaded:
		body = StatusLoadingStyle.Render("Loading projects...")
	case p.loaded && p.Len() == 0:
		body = muted.Render("No projects yet. Press n to create one or i to import.")
	default:
		body = p.list.View()
	}
	title := PanelTitleStyle.Render(fmt.Sprintf("Projects (%d)", p.Len()))
	return PanelFocusedStyle.Width(p.width).Height(p.height).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, body))
}
