package app

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/cloudpebble/cptui/internal/api"
	"github.com/cloudpebble/cptui/internal/errors"
	"github.com/cloudpebble/cptui/internal/i18n"
	"github.com/cloudpebble/cptui/internal/logger"
	"github.com/cloudpebble/cptui/internal/notification"
	"github.com/cloudpebble/cptui/internal/project"
	"github.com/cloudpebble/cptui/internal/templates"
	"github.com/cloudpebble/cptui/internal/ui"
)

func (m *Model) loadProjects() tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		projects, err := svc.ListProjects(ctx)
		return ProjectsLoadedMsg{Projects: projects, Err: err}
	}
}

func (m *Model) handleProjectsLoaded(msg ProjectsLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		logger.Warn("App: loading projects failed: %v", msg.Err)
		if errors.Is(msg.Err, errors.KindAuth) {
			return m, m.signOut(true)
		}
		m.projects.SetError(errorText(msg.Err))
		return m, nil
	}
	return m, m.projects.SetProjects(msg.Projects)
}

// signOut forgets the saved session and returns to the splash screen.
// expired is set when the server rejected the session.
func (m *Model) signOut(expired bool) tea.Cmd {
	if m.session != nil {
		if err := m.session.Clear(); err != nil {
			logger.Error("App: failed to clear session: %v", err)
		}
	}
	m.header.SetUser("")
	m.setScreen(ScreenSplash)
	if expired {
		return m.ShowFlashError("Your session has expired; please sign in again")
	}
	return m.ShowFlashInfo("Signed out")
}

func (m *Model) openCreateModal() tea.Cmd {
	alloy := templates.Flatten(templates.Group(m.catalog, m.loc.T(i18n.MsgDefaultWatchface)))
	m.modal.Show(ui.NewCreateProjectState(m.sdkVersions(), alloy))
	return nil
}

func (m *Model) openImportModal(prefill project.Prefill) tea.Cmd {
	m.modal.Show(ui.NewImportProjectState(m.sdkVersions(), prefill))
	return nil
}

func (m *Model) submitCreate(s *ui.CreateProjectState) tea.Cmd {
	form := s.GetForm()
	if err := m.importer.Validator().Create(form.Name); err != nil {
		s.Progress.Invalid(errors.Message(err))
		return nil
	}
	ctx := m.startRequest()
	im := m.importer
	create := func() tea.Msg {
		id, err := im.Create(ctx, form)
		return ProjectCreatedMsg{ProjectID: id, Name: form.Name, Err: err}
	}
	return tea.Batch(s.Progress.Start(m.loc.T(i18n.MsgCreating)), create)
}

func (m *Model) submitImport(s *ui.ImportProjectState) tea.Cmd {
	v := m.importer.Validator()
	var (
		name string
		run  func(ctx context.Context, onState func(api.TaskState)) (int, error)
	)
	switch s.Tab {
	case ui.ImportTabGitHub:
		form := s.GitHubForm()
		if _, err := v.GitHub(form.Name, form.URL, form.Branch); err != nil {
			s.Progress.Invalid(errors.Message(err))
			return nil
		}
		name = form.Name
		run = func(ctx context.Context, onState func(api.TaskState)) (int, error) {
			return m.importer.ImportGitHub(ctx, form, onState)
		}
	default:
		form := s.ArchiveForm()
		if err := v.Archive(form.Name, form.Path); err != nil {
			s.Progress.Invalid(errors.Message(err))
			return nil
		}
		name = form.Name
		run = func(ctx context.Context, onState func(api.TaskState)) (int, error) {
			return m.importer.ImportArchive(ctx, form, onState)
		}
	}

	ctx := m.startRequest()
	states := make(chan api.TaskState, 8)
	onState := func(st api.TaskState) {
		select {
		case states <- st:
		default:
		}
	}
	doImport := func() tea.Msg {
		defer close(states)
		id, err := run(ctx, onState)
		return ProjectCreatedMsg{ProjectID: id, Name: name, Imported: true, Err: err}
	}
	return tea.Batch(s.Progress.Start(m.loc.T(i18n.MsgImporting)), doImport, listenTaskStates(states))
}

func listenTaskStates(ch <-chan api.TaskState) tea.Cmd {
	return func() tea.Msg {
		st, ok := <-ch
		if !ok {
			return nil
		}
		return TaskProgressMsg{State: st, ch: ch}
	}
}

func (m *Model) handleTaskProgress(msg TaskProgressMsg) (tea.Model, tea.Cmd) {
	if s, ok := m.modal.State.(*ui.ImportProjectState); ok {
		s.Progress.SetText(fmt.Sprintf("%s (%s)", m.loc.T(i18n.MsgWaitingTask), msg.State.Status))
	}
	return m, listenTaskStates(msg.ch)
}

// progressOf returns the progress of the visible create or import modal.
func (m *Model) progressOf() interface{ Fail(string) } {
	switch s := m.modal.State.(type) {
	case *ui.CreateProjectState:
		return &s.Progress
	case *ui.ImportProjectState:
		return &s.Progress
	}
	return nil
}

func (m *Model) handleProjectCreated(msg ProjectCreatedMsg) (tea.Model, tea.Cmd) {
	m.endRequest()
	if msg.Err != nil {
		logger.Warn("App: create/import of %q failed: %v", msg.Name, msg.Err)
		text := ""
		if !errors.Is(msg.Err, errors.KindCancelled) {
			text = errorText(msg.Err)
		}
		if p := m.progressOf(); p != nil {
			p.Fail(text)
			return m, nil
		}
		return m, m.flashErr(msg.Err)
	}

	m.modal.Hide()
	cmds := []tea.Cmd{m.loadProjects(), m.openProject(msg.ProjectID)}
	if msg.Imported {
		text := m.loc.T(i18n.MsgImportComplete, msg.Name)
		cmds = append(cmds, m.ShowFlashSuccess(text))
		if m.cfg.Notifications {
			cmds = append(cmds, func() tea.Msg {
				if err := notification.ImportCompleted(text); err != nil {
					logger.Warn("App: notification failed: %v", err)
				}
				return nil
			})
		}
	}
	return m, tea.Batch(cmds...)
}
