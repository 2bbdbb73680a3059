package ui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/cloudpebble/cptui/internal/keys"
	"github.com/cloudpebble/cptui/internal/sidebar"
)

// SidebarActivateMsg is sent when the user opens a sidebar entry.
type SidebarActivateMsg struct {
	Entry *sidebar.Entry
}

const addNewLabel = "+ Add new"

// Sidebar renders a project tree with a cursor over its visible rows.
type Sidebar struct {
	tree         *sidebar.Tree
	cursor       int
	scrollOffset int
	width        int
	height       int
	focused      bool
}

// NewSidebar creates a sidebar over an empty tree.
func NewSidebar() *Sidebar {
	return &Sidebar{tree: sidebar.NewTree(), focused: true}
}

// SetTree replaces the tree and resets the cursor.
func (s *Sidebar) SetTree(t *sidebar.Tree) {
	s.tree = t
	s.cursor = 0
	s.scrollOffset = 0
}

// Tree returns the tree being displayed.
func (s *Sidebar) Tree() *sidebar.Tree { return s.tree }

// SetSize sets the sidebar dimensions
func (s *Sidebar) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Width returns the sidebar width
func (s *Sidebar) Width() int { return s.width }

// SetFocused sets the focus state
func (s *Sidebar) SetFocused(focused bool) { s.focused = focused }

// IsFocused returns the focus state
func (s *Sidebar) IsFocused() bool { return s.focused }

// Selected returns the entry under the cursor, or nil when the tree is empty.
func (s *Sidebar) Selected() *sidebar.Entry {
	rows := s.tree.Visible()
	if len(rows) == 0 {
		return nil
	}
	s.cursor = min(s.cursor, len(rows)-1)
	return rows[s.cursor].Entry
}

// Select moves the cursor to id if it is visible.
func (s *Sidebar) Select(id string) bool {
	for i, r := range s.tree.Visible() {
		if r.Entry.ID == id {
			s.cursor = i
			return true
		}
	}
	return false
}

func (s *Sidebar) Update(msg tea.Msg) (*Sidebar, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok || !s.focused {
		return s, nil
	}
	rows := s.tree.Visible()
	switch key.String() {
	case keys.Up, "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case keys.Down, "j":
		if s.cursor < len(rows)-1 {
			s.cursor++
		}
	case keys.Home, "g":
		s.cursor = 0
	case keys.End, "G":
		s.cursor = max(len(rows)-1, 0)
	case keys.Enter, keys.Space:
		e := s.Selected()
		if e == nil {
			return s, nil
		}
		switch e.Kind {
		case sidebar.KindFolder, sidebar.KindSection:
			s.tree.ToggleFolder(e.ID)
			return s, nil
		}
		return s, func() tea.Msg { return SidebarActivateMsg{Entry: e} }
	}
	return s, nil
}

// truncateLabel fits label into width cells, counting graphemes so that
// combined characters are never split.
func truncateLabel(label string, width int) string {
	if width <= 0 {
		return ""
	}
	if uniseg.StringWidth(label) <= width {
		return label
	}
	return runewidth.Truncate(label, width, "…")
}

func (s *Sidebar) renderRow(r sidebar.Row, selected bool, width int) string {
	e := r.Entry
	indent := strings.Repeat("  ", r.Depth)

	var prefix string
	switch e.Kind {
	case sidebar.KindSection, sidebar.KindFolder:
		prefix = sidebar.GlyphExpanded + " "
		if !e.Expanded {
			prefix = sidebar.GlyphCollapsed + " "
		}
	default:
		prefix = "  "
	}

	var icon string
	if e.Icon != "" {
		icon = " " + e.Icon
	}
	// Row styles pad one cell on each side.
	avail := width - 2 - runewidth.StringWidth(indent+prefix) - uniseg.StringWidth(icon)
	label := truncateLabel(e.Label, avail)

	style := SidebarItemStyle
	switch {
	case selected && s.focused:
		style = SidebarSelectedStyle
	case e.Active:
		style = SidebarActiveStyle
	case e.Kind == sidebar.KindSection:
		style = SidebarSectionStyle
	case e.Kind == sidebar.KindFolder:
		style = SidebarFolderStyle
	}
	line := indent + prefix + label
	if icon != "" && !(selected && s.focused) {
		return style.Render(line) + SidebarIconStyle.Render(icon)
	}
	return style.Render(line + icon)
}

// View renders the sidebar
func (s *Sidebar) View() string {
	ctx := GetViewContext()

	style := PanelStyle
	if s.focused {
		style = PanelFocusedStyle
	}
	innerWidth := ctx.InnerWidth(s.width)
	innerHeight := ctx.InnerHeight(s.height)

	rows := s.tree.Visible()
	var lines []string
	selectedLine := 0
	selected := s.Selected()
	for i, r := range rows {
		isSelected := i == s.cursor
		if isSelected {
			selectedLine = len(lines)
		}
		lines = append(lines, s.renderRow(r, isSelected, innerWidth))
		if r.Entry.Kind == sidebar.KindSection && r.Entry.AddNew && r.Entry.Expanded {
			lines = append(lines, SidebarAddNewStyle.Render("  "+addNewLabel))
		}
	}

	var popover string
	if selected != nil && selected.Popover != "" {
		popover = lipgloss.NewStyle().Foreground(ColorTextMuted).Italic(true).
			Render(truncateLabel(selected.Popover, innerWidth))
		innerHeight--
	}

	if len(lines) == 0 {
		lines = []string{lipgloss.NewStyle().Foreground(ColorTextMuted).Italic(true).Render("No files.")}
	}

	// Keep the cursor row on screen.
	visible := max(innerHeight, 1)
	if selectedLine < s.scrollOffset {
		s.scrollOffset = selectedLine
	} else if selectedLine >= s.scrollOffset+visible {
		s.scrollOffset = selectedLine - visible + 1
	}
	s.scrollOffset = max(0, min(s.scrollOffset, len(lines)-visible))
	lines = lines[s.scrollOffset:]
	if len(lines) > visible {
		lines = lines[:visible]
	}

	content := strings.Join(lines, "\n")
	if popover != "" {
		content = lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.PlaceVertical(innerHeight, lipgloss.Top, content), popover)
	}
	return style.Width(s.width).Height(s.height).Render(content)
}
