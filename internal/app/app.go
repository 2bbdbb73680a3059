package app

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/cloudpebble/cptui/internal/api"
	"github.com/cloudpebble/cptui/internal/auth"
	"github.com/cloudpebble/cptui/internal/config"
	"github.com/cloudpebble/cptui/internal/i18n"
	"github.com/cloudpebble/cptui/internal/keys"
	"github.com/cloudpebble/cptui/internal/logger"
	"github.com/cloudpebble/cptui/internal/project"
	"github.com/cloudpebble/cptui/internal/sidebar"
	"github.com/cloudpebble/cptui/internal/templates"
	"github.com/cloudpebble/cptui/internal/ui"
)

// Screen is the top-level view being shown.
type Screen int

const (
	ScreenSplash Screen = iota
	ScreenProjects
	ScreenIDE
)

// String returns a human-readable name for the screen
func (s Screen) String() string {
	switch s {
	case ScreenSplash:
		return "Splash"
	case ScreenProjects:
		return "Projects"
	case ScreenIDE:
		return "IDE"
	default:
		return "Unknown"
	}
}

// Focus represents which IDE panel is focused
type Focus int

const (
	FocusSidebar Focus = iota
	FocusPane
)

// Model is the main Bubble Tea model
type Model struct {
	cfg      *config.Config
	session  *config.Session
	svc      Service
	popup    auth.Popup
	identity auth.IdentityService
	importer *project.Importer
	loc      *i18n.Localizer
	catalog  []templates.Template
	prefill  *project.Prefill

	header   *ui.Header
	footer   *ui.Footer
	modal    *ui.Modal
	splash   *ui.Splash
	projects *ui.ProjectList
	sidebar  *ui.Sidebar
	panes    *sidebar.PaneManager

	screen Screen
	focus  Focus
	width  int
	height int

	// Root context for requests; cancelled on quit.
	ctx    context.Context
	cancel context.CancelFunc
	// cancelRequest releases the sign-in or import context in flight, if any.
	cancelRequest context.CancelFunc
	// chooser is the pending account-linking question, if any.
	chooser *chooseRequest

	ide *ideState
}

// New creates a new app model
func New(opts Options) *Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = &config.Config{Server: config.DefaultServer, DefaultSDK: config.DefaultSDK}
	}
	if cfg.Theme != "" {
		ui.SetThemeByName(cfg.Theme)
	}
	loc := opts.Localizer
	if loc == nil {
		loc = i18n.New(cfg.Language)
	}

	ctx, cancel := context.WithCancel(context.Background())
	m := &Model{
		cfg:      cfg,
		session:  opts.Session,
		svc:      opts.Service,
		popup:    opts.Popup,
		identity: opts.Identity,
		importer: project.NewImporter(opts.Service, project.NewValidator(loc)),
		loc:      loc,
		catalog:  opts.Templates,
		header:   ui.NewHeader(),
		footer:   ui.NewFooter(),
		modal:    ui.NewModal(),
		splash:   ui.NewSplash(),
		projects: ui.NewProjectList(),
		sidebar:  ui.NewSidebar(),
		ctx:      ctx,
		cancel:   cancel,
	}
	m.panes = sidebar.NewPaneManager(m.sidebar.Tree())

	if opts.ImportPath != "" {
		if p, ok := project.ParseImportPath(opts.ImportPath); ok {
			m.prefill = &p
		} else {
			logger.Warn("ignoring malformed import path %q", opts.ImportPath)
		}
	}
	if m.session != nil {
		m.header.SetUser(m.session.DisplayName())
	}
	return m
}

// Screen returns the screen being shown.
func (m *Model) Screen() Screen { return m.screen }

func (m *Model) setScreen(s Screen) {
	if m.screen != s {
		logger.Debug("App: screen %s -> %s", m.screen, s)
		m.screen = s
	}
	switch s {
	case ScreenSplash:
		m.footer.SetBindings(ui.SplashBindings)
		m.header.SetProjectName("")
	case ScreenProjects:
		m.footer.SetBindings(ui.ProjectBindings)
		m.header.SetProjectName("")
	case ScreenIDE:
		m.footer.SetBindings(ui.IDEBindings)
	}
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	if m.svc != nil && m.svc.HasSession() {
		return m.enterProjects()
	}
	m.setScreen(ScreenSplash)
	return nil
}

// enterProjects shows the project list and reloads it.
func (m *Model) enterProjects() tea.Cmd {
	m.setScreen(ScreenProjects)
	m.projects.SetLoading()
	cmds := []tea.Cmd{m.loadProjects()}
	if m.prefill != nil {
		cmds = append(cmds, m.openImportModal(*m.prefill))
		m.prefill = nil
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case ui.FlashTickMsg:
		if m.footer.ClearFlashIfExpired(time.Time(msg)) {
			return m, ui.FlashTick()
		}
		return m, nil

	case ui.ProgressTickMsg:
		if m.modal.IsVisible() {
			_, cmd := m.modal.Update(msg)
			return m, cmd
		}
		if m.screen == ScreenSplash {
			_, cmd := m.splash.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case ui.SplashSelectMsg:
		return m.handleSplashSelect(msg)
	case SignedInMsg:
		return m.handleSignedIn(msg)
	case ChooseProviderMsg:
		return m.handleChooseProvider(msg)
	case ProjectsLoadedMsg:
		return m.handleProjectsLoaded(msg)
	case TaskProgressMsg:
		return m.handleTaskProgress(msg)
	case ProjectCreatedMsg:
		return m.handleProjectCreated(msg)
	case ProjectLoadedMsg:
		return m.handleProjectLoaded(msg)
	case SourcesPrefetchedMsg:
		return m.handleSourcesPrefetched(msg)
	case SourceLoadedMsg:
		return m.handleSourceLoaded(msg)
	case ui.SidebarActivateMsg:
		return m, m.openEntry(msg.Entry)
	case ClipboardResultMsg:
		if msg.Err != nil {
			return m, m.flashErr(msg.Err)
		}
		return m, m.ShowFlashSuccess(m.loc.T(i18n.MsgCopied))
	}

	// Anything else (mouse, paste, blink) goes to whatever has focus.
	if m.modal.IsVisible() {
		_, cmd := m.modal.Update(msg)
		return m, cmd
	}
	return m, m.updateFocused(msg)
}

func (m *Model) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.screen {
	case ScreenSplash:
		_, cmd = m.splash.Update(msg)
	case ScreenProjects:
		_, cmd = m.projects.Update(msg)
	case ScreenIDE:
		if m.focus == FocusSidebar {
			_, cmd = m.sidebar.Update(msg)
		} else if ed, ok := m.panes.Active().(*ui.Editor); ok {
			_, cmd = ed.Update(msg)
		}
	}
	return cmd
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == keys.CtrlC {
		return m.quit()
	}
	if m.modal.IsVisible() {
		return m.handleModalKey(msg)
	}
	if m.screen == ScreenProjects && m.projects.IsFiltering() {
		_, cmd := m.projects.Update(msg)
		return m, cmd
	}
	if sc, ok := lookupShortcut(m, key); ok {
		return sc.Handler(m)
	}
	return m, m.updateFocused(msg)
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	if m.cancelRequest != nil {
		m.cancelRequest()
	}
	m.cancel()
	return m, tea.Quit
}

func (m *Model) toggleFocus() {
	if m.focus == FocusSidebar {
		m.focus = FocusPane
	} else {
		m.focus = FocusSidebar
	}
	m.applyFocus()
}

func (m *Model) applyFocus() {
	m.sidebar.SetFocused(m.focus == FocusSidebar)
	if ed, ok := m.panes.Active().(*ui.Editor); ok {
		ed.SetFocused(m.focus == FocusPane)
	}
}

// sdkVersions lists the SDK choices with the configured default first.
func (m *Model) sdkVersions() []string {
	out := []string{}
	if m.cfg.DefaultSDK != "" {
		out = append(out, m.cfg.DefaultSDK)
	}
	for _, v := range m.cfg.SDKVersions {
		if v != m.cfg.DefaultSDK {
			out = append(out, v)
		}
	}
	return out
}

func (m *Model) updateSizes() {
	ctx := ui.GetViewContext()
	ctx.UpdateTerminalSize(m.width, m.height)

	m.header.SetWidth(ctx.TerminalWidth)
	m.footer.SetWidth(ctx.TerminalWidth)
	m.splash.SetSize(ctx.TerminalWidth, ctx.ContentHeight)
	m.projects.SetSize(ctx.TerminalWidth, ctx.ContentHeight)
	m.sidebar.SetSize(ctx.SidebarWidth, ctx.ContentHeight)
	m.resizeActivePane()
}

type sizedPane interface {
	SetSize(width, height int)
}

func (m *Model) resizeActivePane() {
	if p, ok := m.panes.Active().(sizedPane); ok {
		ctx := ui.GetViewContext()
		p.SetSize(ctx.PaneWidth, ctx.ContentHeight)
	}
}

// View renders the app
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion

	if m.width == 0 || m.height == 0 {
		v.SetContent("Loading...")
		return v
	}

	var body string
	switch m.screen {
	case ScreenSplash:
		body = m.splash.View()
	case ScreenProjects:
		body = m.projects.View()
	case ScreenIDE:
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar.View(), m.paneView())
	}

	view := lipgloss.JoinVertical(lipgloss.Left, m.header.View(), body, m.footer.View())

	if m.modal.IsVisible() {
		bgStyle := lipgloss.NewStyle().Background(lipgloss.Color("#000000"))
		v.SetContent(lipgloss.Place(
			m.width, m.height,
			lipgloss.Center, lipgloss.Center,
			m.modal.View(m.width, m.height),
			lipgloss.WithWhitespaceStyle(bgStyle),
		))
		return v
	}

	v.SetContent(view)
	return v
}

func (m *Model) paneView() string {
	ctx := ui.GetViewContext()
	if p := m.panes.Active(); p != nil {
		if out := p.View(); out != "" {
			return out
		}
	}
	hint := lipgloss.NewStyle().Foreground(ui.ColorTextMuted).Italic(true).
		Render("Select a file in the sidebar to open it.")
	return ui.PanelStyle.Width(ctx.PaneWidth).Height(ctx.ContentHeight).Render(hint)
}

// projectURL returns the web address of the open project.
func (m *Model) projectURL() string {
	if m.ide == nil || m.svc == nil {
		return ""
	}
	return m.svc.ProjectURL(m.ide.projectID)
}

var _ Service = (*api.Client)(nil)
