package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
)

const headerTitle = " cloudpebble"

// Header represents the top header bar
type Header struct {
	width       int
	projectName string
	user        string
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetProjectName sets the open project shown on the right
func (h *Header) SetProjectName(name string) {
	h.projectName = name
}

// SetUser sets the signed-in user shown on the right, muted
func (h *Header) SetUser(user string) {
	h.user = user
}

// View renders the header
func (h *Header) View() string {
	var right string
	if h.projectName != "" {
		right = h.projectName
	}
	if h.user != "" {
		if right != "" {
			right += " "
		}
		right += "(" + h.user + ")"
	}
	if right != "" {
		right += " "
	}

	pad := max(h.width-runewidth.StringWidth(headerTitle)-runewidth.StringWidth(right), 0)
	content := headerTitle + strings.Repeat(" ", pad) + right
	return h.renderGradient(content)
}

// parseHexColor parses a hex color string (e.g., "#7C3AED") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient fades the background from the primary color to the theme
// background. The user portion is muted.
func (h *Header) renderGradient(content string) string {
	if content == "" {
		return ""
	}

	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.Primary)
	endR, endG, endB := parseHexColor(theme.Bg)
	textColor := lipgloss.Color(theme.Text)
	mutedColor := lipgloss.Color(theme.TextMuted)

	runes := []rune(content)
	mutedFrom := -1
	if h.user != "" {
		if i := strings.LastIndex(content, "("+h.user+")"); i >= 0 {
			mutedFrom = len([]rune(content[:i]))
		}
	}

	var b strings.Builder
	for i, r := range runes {
		t := float64(i) / float64(len(runes))
		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		style := lipgloss.NewStyle().
			Background(lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))).
			Bold(i < len(headerTitle))
		if mutedFrom >= 0 && i >= mutedFrom {
			style = style.Foreground(mutedColor)
		} else {
			style = style.Foreground(textColor)
		}
		b.WriteString(style.Render(string(r)))
	}
	return b.String()
}
