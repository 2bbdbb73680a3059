package app

import (
	"github.com/cloudpebble/cptui/internal/api"
	"github.com/cloudpebble/cptui/internal/auth"
)

// SignedInMsg is sent when a sign-in attempt ends.
type SignedInMsg struct {
	Result   auth.Result
	Username string
	Err      error
}

// ProjectsLoadedMsg carries the project list.
type ProjectsLoadedMsg struct {
	Projects []api.ProjectSummary
	Err      error
}

// ProjectCreatedMsg is sent when a create or import request finishes.
// Imported is set for imports, which trigger a desktop notification.
type ProjectCreatedMsg struct {
	ProjectID int
	Name      string
	Imported  bool
	Err       error
}

// TaskProgressMsg reports an intermediate import task state.
type TaskProgressMsg struct {
	State api.TaskState
	ch    <-chan api.TaskState
}

// ProjectLoadedMsg carries a project's details for the IDE screen.
type ProjectLoadedMsg struct {
	ProjectID int
	Info      *api.ProjectInfo
	Err       error
}

// SourceLoadedMsg carries one source file body.
type SourceLoadedMsg struct {
	ProjectID int
	File      api.SourceFile
	Source    string
	Err       error
}

// SourcesPrefetchedMsg carries the bodies fetched in the background after
// a project opens.
type SourcesPrefetchedMsg struct {
	ProjectID int
	Sources   map[int]string
	Err       error
}

// ChooseProviderMsg asks the user which provider owns an account.
type ChooseProviderMsg struct {
	req chooseRequest
}

// ClipboardResultMsg reports a copy to the clipboard.
type ClipboardResultMsg struct {
	Text string
	Err  error
}
