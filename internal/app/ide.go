package app

import (
	"strings"
	"sync"

	tea "charm.land/bubbletea/v2"
	"golang.org/x/sync/errgroup"

	"github.com/cloudpebble/cptui/internal/api"
	"github.com/cloudpebble/cptui/internal/clipboard"
	"github.com/cloudpebble/cptui/internal/errors"
	"github.com/cloudpebble/cptui/internal/logger"
	"github.com/cloudpebble/cptui/internal/sidebar"
	"github.com/cloudpebble/cptui/internal/ui"
)

const (
	settingsEntryID    = "settings"
	defaultPrefetch    = 4
	readOnlyIcon       = "◆"
	projectItemSection = "project"
)

// ideState is the open project.
type ideState struct {
	projectID int
	info      *api.ProjectInfo
	tree      *sidebar.Tree
	sources   map[string]api.SourceFile
	resources map[string]api.Resource
	// contents holds source bodies by file id, filled by prefetch and by
	// on-demand loads.
	contents map[int]string
	// loading is the entry whose body is being fetched for display.
	loading string
}

// openProject loads a project for the IDE screen.
func (m *Model) openProject(id int) tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		info, err := svc.ProjectInfo(ctx, id)
		return ProjectLoadedMsg{ProjectID: id, Info: info, Err: err}
	}
}

// buildTree lays out info's sources, resources and settings item.
func buildTree(info *api.ProjectInfo) (*sidebar.Tree, map[string]api.SourceFile, map[string]api.Resource) {
	tree := sidebar.NewTree()
	tree.InitSections(info.Type)

	sources := make(map[string]api.SourceFile, len(info.SourceFiles))
	for _, f := range info.SourceFiles {
		e := tree.AddSourceFile(sidebar.SourceFile{ID: f.ID, Name: f.Name, Target: f.Target}, nil)
		sources[e.ID] = f
		if f.FilePath != "" && f.FilePath != f.Name {
			tree.SetPopover(e.ID, f.FilePath)
		}
		if !f.IsEditable || f.IsBinary {
			tree.SetIcon(e.ID, readOnlyIcon)
		}
	}

	resources := make(map[string]api.Resource, len(info.Resources))
	for _, r := range info.Resources {
		e := tree.AddResource(sidebar.Resource{ID: r.ID, FileName: r.FileName, Kind: r.Kind}, nil)
		resources[e.ID] = r
		if len(r.Identifiers) > 0 {
			tree.SetPopover(e.ID, strings.Join(r.Identifiers, ", "))
		}
	}

	tree.AddItem(projectItemSection, settingsEntryID, "Settings", nil)
	return tree, sources, resources
}

func (m *Model) handleProjectLoaded(msg ProjectLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		logger.Warn("App: loading project %d failed: %v", msg.ProjectID, msg.Err)
		return m, m.flashErr(msg.Err)
	}
	if msg.Info == nil {
		return m, m.flashErr(errors.E(errors.Op("app.openProject"), errors.KindNotFound, "project not found"))
	}

	if m.panes != nil {
		m.panes.Reset()
	}
	tree, sources, resources := buildTree(msg.Info)
	m.ide = &ideState{
		projectID: msg.ProjectID,
		info:      msg.Info,
		tree:      tree,
		sources:   sources,
		resources: resources,
		contents:  make(map[int]string),
	}
	m.sidebar.SetTree(tree)
	m.panes = sidebar.NewPaneManager(tree)
	m.focus = FocusSidebar
	m.header.SetProjectName(msg.Info.Name)
	m.setScreen(ScreenIDE)

	openSettings := m.openEntryByID(settingsEntryID)
	m.applyFocus()
	return m, tea.Batch(openSettings, m.prefetchSources(msg.ProjectID, msg.Info.SourceFiles))
}

// prefetchSources loads text source bodies in the background, a few at a
// time.
func (m *Model) prefetchSources(projectID int, files []api.SourceFile) tea.Cmd {
	limit := m.cfg.Prefetch
	if limit <= 0 {
		limit = defaultPrefetch
	}
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		var (
			mu  sync.Mutex
			out = make(map[int]string, len(files))
		)
		g := new(errgroup.Group)
		g.SetLimit(limit)
		for _, f := range files {
			if f.IsBinary {
				continue
			}
			g.Go(func() error {
				src, err := svc.LoadSource(ctx, projectID, f.ID)
				if err != nil {
					logger.Debug("App: prefetch of %s failed: %v", f.Name, err)
					return err
				}
				mu.Lock()
				out[f.ID] = src.Source
				mu.Unlock()
				return nil
			})
		}
		err := g.Wait()
		return SourcesPrefetchedMsg{ProjectID: projectID, Sources: out, Err: err}
	}
}

func (m *Model) handleSourcesPrefetched(msg SourcesPrefetchedMsg) (tea.Model, tea.Cmd) {
	if m.ide == nil || m.ide.projectID != msg.ProjectID {
		return m, nil
	}
	for id, body := range msg.Sources {
		if _, ok := m.ide.contents[id]; !ok {
			m.ide.contents[id] = body
		}
	}
	logger.Debug("App: prefetched %d sources for project %d", len(msg.Sources), msg.ProjectID)
	return m, nil
}

func (m *Model) openEntryByID(id string) tea.Cmd {
	if m.ide == nil {
		return nil
	}
	e, ok := m.ide.tree.Get(id)
	if !ok {
		return nil
	}
	return m.openEntry(e)
}

// openEntry shows the pane for e. A pane suspended earlier for the same
// entry is restored as it was; otherwise a new one is built.
func (m *Model) openEntry(e *sidebar.Entry) tea.Cmd {
	if m.ide == nil || e == nil {
		return nil
	}
	if e.OnClick != nil {
		e.OnClick()
	}
	if e.ID == m.panes.ActiveID() {
		return nil
	}
	m.ide.loading = ""

	m.panes.SuspendActive()
	if m.panes.Restore(e.ID) {
		m.resizeActivePane()
		m.applyFocus()
		return nil
	}

	switch {
	case e.ID == settingsEntryID:
		m.setPane(ui.NewInfoPane(m.ide.info, m.projectURL()), e.ID)
	case m.ide.resources[e.ID].FileName != "":
		m.setPane(ui.NewResourcePane(m.ide.resources[e.ID]), e.ID)
	default:
		f, ok := m.ide.sources[e.ID]
		if !ok {
			return nil
		}
		if body, ok := m.ide.contents[f.ID]; ok {
			m.setPane(ui.NewEditor(e.ID, f.Name, body), e.ID)
			return nil
		}
		m.ide.loading = e.ID
		return m.loadSource(f)
	}
	return nil
}

func (m *Model) setPane(p sidebar.Pane, id string) {
	m.panes.SetActivePane(p, sidebar.Options{ID: id})
	m.resizeActivePane()
	m.applyFocus()
}

func (m *Model) loadSource(f api.SourceFile) tea.Cmd {
	ctx, svc, projectID := m.ctx, m.svc, m.ide.projectID
	return func() tea.Msg {
		src, err := svc.LoadSource(ctx, projectID, f.ID)
		if err != nil {
			return SourceLoadedMsg{ProjectID: projectID, File: f, Err: err}
		}
		return SourceLoadedMsg{ProjectID: projectID, File: f, Source: src.Source}
	}
}

func (m *Model) handleSourceLoaded(msg SourceLoadedMsg) (tea.Model, tea.Cmd) {
	if m.ide == nil || m.ide.projectID != msg.ProjectID {
		return m, nil
	}
	id := sidebar.SourceFileID(msg.File.ID)
	if msg.Err != nil {
		if m.ide.loading == id {
			m.ide.loading = ""
		}
		return m, m.flashErr(msg.Err)
	}
	m.ide.contents[msg.File.ID] = msg.Source
	// Only show it if the user has not moved on.
	if m.ide.loading == id {
		m.ide.loading = ""
		m.setPane(ui.NewEditor(id, msg.File.Name, msg.Source), id)
	}
	return m, nil
}

// leaveIDE returns to the project list, discarding every pane.
func (m *Model) leaveIDE() tea.Cmd {
	m.panes.Reset()
	m.ide = nil
	m.sidebar.SetTree(sidebar.NewTree())
	m.panes = sidebar.NewPaneManager(m.sidebar.Tree())
	return m.enterProjects()
}

// copyProjectURL puts the open project's address on the clipboard.
func (m *Model) copyProjectURL() tea.Cmd {
	url := m.projectURL()
	if url == "" {
		return nil
	}
	return func() tea.Msg {
		return ClipboardResultMsg{Text: url, Err: clipboard.WriteText(url)}
	}
}
