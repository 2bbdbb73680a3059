package project

import (
	"context"
	"log/slog"

	"github.com/cloudpebble/cptui/internal/api"
	"github.com/cloudpebble/cptui/internal/errors"
	"github.com/cloudpebble/cptui/internal/logger"
)

// Service is the server surface the flows need. *api.Client implements it.
type Service interface {
	CreateProject(ctx context.Context, req api.CreateProjectRequest) (int, error)
	ImportGitHub(ctx context.Context, req api.GitHubImportRequest) (api.ImportStarted, error)
	ImportArchive(ctx context.Context, req api.ArchiveImportRequest) (api.ImportStarted, error)
	PollTask(ctx context.Context, taskID string, onState func(api.TaskState)) (api.TaskState, error)
}

// CreateForm is the new-project dialog's input.
type CreateForm struct {
	Name          string
	Type          string
	Template      int
	SDK           string
	AlloyTemplate string
}

// GitHubForm is the GitHub import tab's input.
type GitHubForm struct {
	Name      string
	URL       string
	Branch    string
	SDK       string
	AddRemote bool
}

// ArchiveForm is the zip import tab's input.
type ArchiveForm struct {
	Name string
	Path string
	SDK  string
}

// Importer runs create and import flows. Each method returns the project
// id only once the project is ready to open; for imports that means the
// server task has reported SUCCESS.
type Importer struct {
	svc Service
	v   *Validator
	log *slog.Logger
}

// NewImporter returns an Importer over svc.
func NewImporter(svc Service, v *Validator) *Importer {
	if v == nil {
		v = NewValidator(nil)
	}
	return &Importer{svc: svc, v: v, log: logger.WithComponent("importer")}
}

// Validator returns the validator used for form checks.
func (im *Importer) Validator() *Validator { return im.v }

// Create validates and creates a project.
func (im *Importer) Create(ctx context.Context, f CreateForm) (int, error) {
	if err := im.v.Create(f.Name); err != nil {
		return 0, err
	}
	req := api.CreateProjectRequest{
		Name:     f.Name,
		Template: f.Template,
		Type:     f.Type,
		SDK:      f.SDK,
	}
	if f.Type == "alloy" {
		req.AlloyTemplate = f.AlloyTemplate
	}
	return im.svc.CreateProject(ctx, req)
}

// ImportGitHub validates the form, starts the import and waits for it.
func (im *Importer) ImportGitHub(ctx context.Context, f GitHubForm, onState func(api.TaskState)) (int, error) {
	repo, err := im.v.GitHub(f.Name, f.URL, f.Branch)
	if err != nil {
		return 0, err
	}
	started, err := im.svc.ImportGitHub(ctx, api.GitHubImportRequest{
		Name:      f.Name,
		Repo:      f.URL,
		Branch:    repo.Branch,
		SDK:       f.SDK,
		AddRemote: f.AddRemote,
	})
	if err != nil {
		return 0, err
	}
	return im.wait(ctx, started, onState)
}

// ImportArchive validates the form, uploads the archive and waits for it.
func (im *Importer) ImportArchive(ctx context.Context, f ArchiveForm, onState func(api.TaskState)) (int, error) {
	if err := im.v.Archive(f.Name, f.Path); err != nil {
		return 0, err
	}
	started, err := im.svc.ImportArchive(ctx, api.ArchiveImportRequest{Name: f.Name, SDK: f.SDK, Path: f.Path})
	if err != nil {
		return 0, err
	}
	return im.wait(ctx, started, onState)
}

func (im *Importer) wait(ctx context.Context, started api.ImportStarted, onState func(api.TaskState)) (int, error) {
	im.log.Debug("waiting for import", "task", started.TaskID, "project", started.ProjectID)
	if _, err := im.svc.PollTask(ctx, started.TaskID, onState); err != nil {
		return 0, errors.E(errors.Op("project.Import"), err)
	}
	im.log.Info("import finished", "project", started.ProjectID)
	return started.ProjectID, nil
}
