package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/cloudpebble/cptui/internal/api"
)

type infoRow struct {
	label string
	value string
}

func renderInfoRows(rows []infoRow, width int) string {
	labelWidth := 0
	for _, r := range rows {
		labelWidth = max(labelWidth, lipgloss.Width(r.label))
	}
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		value := r.value
		if value == "" {
			value = "-"
		}
		label := InfoLabelStyle.Width(labelWidth + 2).Render(r.label)
		lines = append(lines, label+InfoValueStyle.Render(truncateLabel(value, width-labelWidth-2)))
	}
	return strings.Join(lines, "\n")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// InfoPane shows a project's settings.
type InfoPane struct {
	info   *api.ProjectInfo
	url    string
	width  int
	height int
}

// NewInfoPane creates the settings pane for info. url is the project's web
// address.
func NewInfoPane(info *api.ProjectInfo, url string) *InfoPane {
	return &InfoPane{info: info, url: url}
}

// SetSize sets the pane dimensions
func (p *InfoPane) SetSize(width, height int) {
	p.width = width
	p.height = height
}

func (p *InfoPane) rows() []infoRow {
	i := p.info
	kind := "App"
	if i.AppIsWatchface {
		kind = "Watchface"
	}
	platforms := i.AppPlatforms
	if platforms == "" {
		platforms = strings.Join(i.SupportedPlatforms, ", ")
	}
	rows := []infoRow{
		{"Name", i.Name},
		{"Type", i.Type},
		{"SDK", i.SDKVersion},
		{"Kind", kind},
		{"Short name", i.AppShortName},
		{"Long name", i.AppLongName},
		{"Company", i.AppCompanyName},
		{"Version", i.AppVersionLabel},
		{"UUID", i.AppUUID},
		{"Platforms", platforms},
		{"Modified", i.LastModified},
		{"Sources", fmt.Sprint(len(i.SourceFiles))},
		{"Resources", fmt.Sprint(len(i.Resources))},
	}
	if repo := deref(i.GitHub.Repo); repo != "" {
		rows = append(rows,
			infoRow{"GitHub", repo},
			infoRow{"Branch", deref(i.GitHub.Branch)},
			infoRow{"Last sync", deref(i.GitHub.LastSync)},
			infoRow{"Auto build", yesNo(i.GitHub.AutoBuild)},
		)
	}
	if p.url != "" {
		rows = append(rows, infoRow{"URL", p.url})
	}
	return rows
}

func (p *InfoPane) View() string {
	if p.info == nil {
		return ""
	}
	inner := GetViewContext().InnerWidth(p.width)
	body := lipgloss.JoinVertical(lipgloss.Left,
		PanelTitleStyle.Render("Settings"),
		renderInfoRows(p.rows(), inner),
	)
	return PanelStyle.Width(p.width).Height(p.height).Render(body)
}

// ResourcePane shows one resource's metadata.
type ResourcePane struct {
	res    api.Resource
	width  int
	height int
}

func NewResourcePane(res api.Resource) *ResourcePane {
	return &ResourcePane{res: res}
}

// SetSize sets the pane dimensions
func (p *ResourcePane) SetSize(width, height int) {
	p.width = width
	p.height = height
}

func (p *ResourcePane) View() string {
	inner := GetViewContext().InnerWidth(p.width)
	rows := []infoRow{
		{"File", p.res.FileName},
		{"Kind", p.res.Kind},
		{"Identifiers", strings.Join(p.res.Identifiers, ", ")},
	}
	for i, v := range p.res.Variants {
		label := ""
		if i == 0 {
			label = "Variants"
		}
		tags := strings.Join(v, ", ")
		if tags == "" {
			tags = "(default)"
		}
		rows = append(rows, infoRow{label, tags})
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		PanelTitleStyle.Render(truncateLabel(p.res.FileName, inner)),
		renderInfoRows(rows, inner),
	)
	return PanelStyle.Width(p.width).Height(p.height).Render(body)
}
