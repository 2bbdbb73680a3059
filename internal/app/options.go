package app

import (
	"context"
	"net/http"

	"github.com/cloudpebble/cptui/internal/api"
	"github.com/cloudpebble/cptui/internal/auth"
	"github.com/cloudpebble/cptui/internal/config"
	"github.com/cloudpebble/cptui/internal/i18n"
	"github.com/cloudpebble/cptui/internal/project"
	"github.com/cloudpebble/cptui/internal/templates"
)

// Service is the IDE server as the app uses it. *api.Client implements it.
type Service interface {
	project.Service
	auth.TokenExchanger
	auth.PasswordAuthenticator

	ListProjects(ctx context.Context) ([]api.ProjectSummary, error)
	ProjectInfo(ctx context.Context, id int) (*api.ProjectInfo, error)
	LoadSource(ctx context.Context, projectID, fileID int) (*api.Source, error)
	ProjectURL(id int) string
	BaseURL() string
	Cookies() []*http.Cookie
	HasSession() bool
}

// Options wires a Model.
type Options struct {
	Config  *config.Config
	Session *config.Session
	Service Service

	// Popup and Identity drive federated sign-in. Without them only
	// password login is available.
	Popup    auth.Popup
	Identity auth.IdentityService

	Localizer *i18n.Localizer
	Templates []templates.Template

	// ImportPath is an /ide/import/github/... path that opens a prefilled
	// import dialog once the project list is shown.
	ImportPath string
}
