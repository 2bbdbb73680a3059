// Package sidebar holds the IDE's navigation state without any rendering:
// the PaneManager, which decides which pane occupies the main region, and
// the Tree, which organizes source files, folders and resources into
// per-target sections.
//
// Both types are plain owned values. Nothing here is global, so every test
// (and every open project) gets its own instance.
package sidebar
