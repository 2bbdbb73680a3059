// Package ui provides the visual components of the cptui terminal IDE.
//
// # Layout
//
// The IDE screen is organized as follows:
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header (1 line)                                     │
//	├──────────────┬──────────────────────────────────────┤
//	│              │                                      │
//	│   Sidebar    │         Active pane                  │
//	│   (1/4)      │   (editor, settings or resource)     │
//	│              │                                      │
//	├──────────────┴──────────────────────────────────────┤
//	│ Footer (1 line)                                     │
//	└─────────────────────────────────────────────────────┘
//
// The splash and project list screens replace the body between header and
// footer.
//
// # Components
//
// ViewContext holds the layout calculations; all sizes go through it.
//
// Sidebar renders a sidebar.Tree with a cursor. Enter toggles folders and
// sends SidebarActivateMsg for files and items.
//
// Editor is a read-only, syntax highlighted source pane. It implements the
// suspend and restore hooks of sidebar.PaneManager so each file keeps its
// scroll position.
//
// InfoPane and ResourcePane show project settings and resource details.
//
// ProjectList and Splash are the project picker and sign-in screens.
//
// Modal hosts the dialogs in the modals subpackage.
//
// # Styles
//
// Styles live in styles.go and are rebuilt from the active Theme by
// SetTheme, which also pushes the palette into the modals package.
package ui
