package api

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cloudpebble/cptui/internal/errors"
)

// ImportGitHub starts importing a GitHub repository. The returned task must
// be polled before the project is usable.
func (c *Client) ImportGitHub(ctx context.Context, req GitHubImportRequest) (ImportStarted, error) {
	form := url.Values{
		"name":       {req.Name},
		"repo":       {req.Repo},
		"branch":     {req.Branch},
		"sdk":        {req.SDK},
		"add_remote": {strconv.FormatBool(req.AddRemote)},
	}

	var resp ImportStarted
	if err := c.postForm(ctx, "api.ImportGitHub", "/ide/import/github", form, &resp); err != nil {
		return ImportStarted{}, err
	}
	c.log.Info("github import started", "repo", req.Repo, "branch", req.Branch, "task", resp.TaskID)
	return resp, nil
}

// ImportArchive uploads a zip archive as a new project.
func (c *Client) ImportArchive(ctx context.Context, req ArchiveImportRequest) (ImportStarted, error) {
	const op = errors.Op("api.ImportArchive")

	f, err := os.Open(req.Path)
	if err != nil {
		return ImportStarted{}, errors.E(op, errors.KindIO, err)
	}
	defer f.Close()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range map[string]string{"name": req.Name, "sdk": req.SDK} {
		if err := w.WriteField(k, v); err != nil {
			return ImportStarted{}, errors.E(op, errors.KindIO, err)
		}
	}
	part, err := w.CreateFormFile("archive", filepath.Base(req.Path))
	if err != nil {
		return ImportStarted{}, errors.E(op, errors.KindIO, err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return ImportStarted{}, errors.E(op, errors.KindIO, err)
	}
	if err := w.Close(); err != nil {
		return ImportStarted{}, errors.E(op, errors.KindIO, err)
	}

	var resp ImportStarted
	if err := c.do(ctx, op, http.MethodPost, "/ide/import/zip", buf.Bytes(), w.FormDataContentType(), &resp); err != nil {
		return ImportStarted{}, err
	}
	c.log.Info("zip import started", "file", filepath.Base(req.Path), "size", buf.Len(), "task", resp.TaskID)
	return resp, nil
}
