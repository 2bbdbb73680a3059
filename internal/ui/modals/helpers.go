package modals

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// RenderSelectableList renders a simple list with selection highlighting.
// disabled items are drawn muted and never highlighted.
func RenderSelectableList(items []string, selectedIndex int, disabled bool) string {
	var b strings.Builder
	for i, item := range items {
		style := SidebarItemStyle
		prefix := "  "
		switch {
		case disabled:
			style = style.Foreground(ColorTextMuted)
		case i == selectedIndex:
			style = SidebarSelectedStyle
			prefix = "> "
		}
		b.WriteString(style.Render(prefix+item) + "\n")
	}
	return b.String()
}

// TruncateString truncates a string to maxWidth cells with an ellipsis
func TruncateString(s string, maxWidth int) string {
	return ansi.Truncate(s, maxWidth, "…")
}

// renderTabs draws a tab strip with the active tab underlined.
func renderTabs(labels []string, active int, disabled bool) string {
	parts := make([]string, len(labels))
	for i, l := range labels {
		style := lipgloss.NewStyle().Padding(0, 1).Foreground(ColorTextMuted)
		if i == active {
			style = style.Foreground(ColorPrimary).Bold(true).Underline(true)
		}
		if disabled && i != active {
			style = style.Faint(true)
		}
		parts[i] = style.Render(l)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// renderStatus draws the progress line or inline error under a form.
func renderStatus(spinnerView, progress, errText string) string {
	switch {
	case progress != "":
		return StatusLoadingStyle.Render(spinnerView + " " + progress)
	case errText != "":
		return StatusErrorStyle.Render(errText)
	}
	return ""
}
