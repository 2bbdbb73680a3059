package app

import (
	"slices"

	tea "charm.land/bubbletea/v2"

	"github.com/cloudpebble/cptui/internal/keys"
	"github.com/cloudpebble/cptui/internal/logger"
	"github.com/cloudpebble/cptui/internal/project"
	"github.com/cloudpebble/cptui/internal/ui"
)

// Shortcut represents a keyboard shortcut with its metadata and handler.
// The registry drives both key dispatch and the help modal.
type Shortcut struct {
	Key         string                              // The key binding (e.g., "n", "ctrl+r")
	DisplayKey  string                              // Display name in help; defaults to Key
	Description string                              // Human-readable description
	Category    string                              // Section for help modal grouping
	Screens     []Screen                            // Screens the shortcut applies to; empty means all
	Handler     func(m *Model) (tea.Model, tea.Cmd) // Action to perform
	Condition   func(m *Model) bool                 // Optional extra condition
}

// Categories for organizing shortcuts in the help modal
const (
	CategoryProjects   = "Projects"
	CategoryNavigation = "Navigation"
	CategoryGeneral    = "General"
)

var categoryOrder = []string{
	CategoryProjects,
	CategoryNavigation,
	CategoryGeneral,
}

// ShortcutRegistry is the central registry of all keyboard shortcuts.
var ShortcutRegistry = []Shortcut{
	// Projects
	{
		Key:         keys.Enter,
		DisplayKey:  "Enter",
		Description: "Open selected project",
		Category:    CategoryProjects,
		Screens:     []Screen{ScreenProjects},
		Handler:     shortcutOpenProject,
		Condition:   func(m *Model) bool { return m.projects.Len() > 0 },
	},
	{
		Key:         "n",
		Description: "Create new project",
		Category:    CategoryProjects,
		Screens:     []Screen{ScreenProjects},
		Handler:     shortcutNewProject,
	},
	{
		Key:         "i",
		Description: "Import project",
		Category:    CategoryProjects,
		Screens:     []Screen{ScreenProjects},
		Handler:     shortcutImportProject,
	},
	{
		Key:         "r",
		Description: "Refresh project list",
		Category:    CategoryProjects,
		Screens:     []Screen{ScreenProjects},
		Handler:     shortcutRefresh,
	},
	{
		Key:         "L",
		Description: "Sign out",
		Category:    CategoryProjects,
		Screens:     []Screen{ScreenProjects},
		Handler:     shortcutSignOut,
	},

	// Navigation
	{
		Key:         keys.Tab,
		DisplayKey:  "Tab",
		Description: "Switch between sidebar and pane",
		Category:    CategoryNavigation,
		Screens:     []Screen{ScreenIDE},
		Handler:     shortcutToggleFocus,
	},
	{
		Key:         "y",
		Description: "Copy project URL",
		Category:    CategoryNavigation,
		Screens:     []Screen{ScreenIDE},
		Handler:     shortcutCopyURL,
	},
	{
		Key:         keys.Escape,
		DisplayKey:  "Esc",
		Description: "Back to projects",
		Category:    CategoryNavigation,
		Screens:     []Screen{ScreenIDE},
		Handler:     shortcutLeaveIDE,
	},

	// General
	{
		Key:         "q",
		Description: "Quit",
		Category:    CategoryGeneral,
		Screens:     []Screen{ScreenSplash, ScreenProjects},
		Handler:     func(m *Model) (tea.Model, tea.Cmd) { return m.quit() },
	},
}

// The help shortcut lists the registry, so it is added here to avoid an
// initialization cycle.
func init() {
	ShortcutRegistry = append(ShortcutRegistry, Shortcut{
		Key:         "?",
		Description: "Show this help",
		Category:    CategoryGeneral,
		Screens:     []Screen{ScreenProjects, ScreenIDE},
		Handler:     shortcutHelp,
	})
}

func (m *Model) isShortcutApplicable(s Shortcut) bool {
	if len(s.Screens) > 0 && !slices.Contains(s.Screens, m.screen) {
		return false
	}
	return s.Condition == nil || s.Condition(m)
}

// lookupShortcut finds the applicable shortcut bound to key.
func lookupShortcut(m *Model, key string) (Shortcut, bool) {
	for _, s := range ShortcutRegistry {
		if s.Key == key && m.isShortcutApplicable(s) {
			logger.Debug("Shortcut: %q on %s", key, m.screen)
			return s, true
		}
	}
	return Shortcut{}, false
}

// helpSections groups the shortcuts that apply right now by category.
func (m *Model) helpSections() []ui.HelpSection {
	categories := make(map[string][]ui.HelpShortcut)
	for _, s := range ShortcutRegistry {
		if s.Handler == nil || !m.isShortcutApplicable(s) {
			continue
		}
		displayKey := s.DisplayKey
		if displayKey == "" {
			displayKey = s.Key
		}
		categories[s.Category] = append(categories[s.Category], ui.HelpShortcut{
			Key:  displayKey,
			Desc: s.Description,
		})
	}

	var sections []ui.HelpSection
	for _, cat := range categoryOrder {
		if shortcuts := categories[cat]; len(shortcuts) > 0 {
			sections = append(sections, ui.HelpSection{Title: cat, Shortcuts: shortcuts})
		}
	}
	return sections
}

// runHelpSelection executes the shortcut picked in the help modal.
func (m *Model) runHelpSelection(sel *ui.HelpShortcut) (tea.Model, tea.Cmd) {
	m.modal.Hide()
	if sel == nil {
		return m, nil
	}
	for _, s := range ShortcutRegistry {
		display := s.DisplayKey
		if display == "" {
			display = s.Key
		}
		if display == sel.Key && s.Description == sel.Desc && m.isShortcutApplicable(s) {
			return s.Handler(m)
		}
	}
	return m, nil
}

// =============================================================================
// Shortcut Handlers
// =============================================================================

func shortcutOpenProject(m *Model) (tea.Model, tea.Cmd) {
	p, ok := m.projects.Selected()
	if !ok {
		return m, nil
	}
	return m, m.openProject(p.ID)
}

func shortcutNewProject(m *Model) (tea.Model, tea.Cmd) {
	return m, m.openCreateModal()
}

func shortcutImportProject(m *Model) (tea.Model, tea.Cmd) {
	return m, m.openImportModal(project.Prefill{})
}

func shortcutRefresh(m *Model) (tea.Model, tea.Cmd) {
	m.projects.SetLoading()
	return m, m.loadProjects()
}

func shortcutSignOut(m *Model) (tea.Model, tea.Cmd) {
	return m, m.signOut(false)
}

func shortcutToggleFocus(m *Model) (tea.Model, tea.Cmd) {
	m.toggleFocus()
	return m, nil
}

func shortcutCopyURL(m *Model) (tea.Model, tea.Cmd) {
	return m, m.copyProjectURL()
}

func shortcutLeaveIDE(m *Model) (tea.Model, tea.Cmd) {
	return m, m.leaveIDE()
}

func shortcutHelp(m *Model) (tea.Model, tea.Cmd) {
	m.modal.Show(ui.NewHelpState(m.helpSections()))
	return m, nil
}
