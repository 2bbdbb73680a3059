package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/cloudpebble/cptui/internal/errors"
)

// ProjectPath returns the IDE path for a project.
func ProjectPath(id int) string {
	return "/ide/project/" + strconv.Itoa(id)
}

// ProjectURL returns the absolute IDE URL for a project.
func (c *Client) ProjectURL(id int) string {
	return c.resolve(ProjectPath(id))
}

// ListProjects returns the logged-in user's projects.
func (c *Client) ListProjects(ctx context.Context) ([]ProjectSummary, error) {
	var resp struct {
		Projects []ProjectSummary `json:"projects"`
	}
	if err := c.get(ctx, "api.ListProjects", "/ide/projects", &resp); err != nil {
		return nil, err
	}
	return resp.Projects, nil
}

// CreateProject creates a project and returns its id.
func (c *Client) CreateProject(ctx context.Context, req CreateProjectRequest) (int, error) {
	form := url.Values{
		"name":     {req.Name},
		"template": {strconv.Itoa(req.Template)},
		"type":     {req.Type},
		"sdk":      {req.SDK},
	}
	if req.Type == "alloy" {
		form.Set("alloy_template", req.AlloyTemplate)
	}

	var resp struct {
		ID int `json:"id"`
	}
	if err := c.postForm(ctx, "api.CreateProject", "/ide/project/create", form, &resp); err != nil {
		return 0, err
	}
	if resp.ID == 0 {
		return 0, errors.E(errors.Op("api.CreateProject"), errors.KindNetwork, "server did not return a project id")
	}
	c.log.Info("created project", "id", resp.ID, "type", req.Type)
	return resp.ID, nil
}

// ProjectInfo loads a project's metadata, files and resources.
func (c *Client) ProjectInfo(ctx context.Context, id int) (*ProjectInfo, error) {
	var info ProjectInfo
	if err := c.get(ctx, "api.ProjectInfo", ProjectPath(id)+"/info", &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// LoadSource fetches a source file's contents.
func (c *Client) LoadSource(ctx context.Context, projectID, fileID int) (*Source, error) {
	var src Source
	path := fmt.Sprintf("%s/source/%d/load", ProjectPath(projectID), fileID)
	if err := c.get(ctx, "api.LoadSource", path, &src); err != nil {
		return nil, err
	}
	return &src, nil
}
