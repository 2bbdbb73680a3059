// Package project validates and runs the create and import flows. Every
// check here happens before any request is sent.
package project

import (
	"archive/zip"
	"regexp"
	"strings"

	"github.com/cloudpebble/cptui/internal/errors"
	"github.com/cloudpebble/cptui/internal/i18n"
)

// DefaultBranch is used when a GitHub import names no branch.
const DefaultBranch = "master"

// githubURL matches the same repository URLs the server accepts.
var githubURL = regexp.MustCompile(`^(?:https?://|git@|git://)?(?:www\.)?github\.com[/:]([\w.-]+)/([\w.-]+?)(?:\.git|/|$)`)

// Types are the project types offered when creating a project.
var Types = []string{"native", "alloy", "rocky", "package", "pebblejs", "simplyjs"}

// GitHubRepo is a parsed import URL.
type GitHubRepo struct {
	Owner  string
	Repo   string
	Branch string
}

// Validator checks form input and reports failures in the user's language.
type Validator struct {
	L *i18n.Localizer
}

// NewValidator returns a Validator for l. A nil l reports in English.
func NewValidator(l *i18n.Localizer) *Validator {
	return &Validator{L: l}
}

func (v *Validator) fail(op errors.Op, key string, args ...any) error {
	return errors.Validation(op, v.L.T(key, args...))
}

// Create checks a new project's name. Only the empty string is rejected.
func (v *Validator) Create(name string) error {
	if name == "" {
		return v.fail("project.ValidateCreate", i18n.MsgEnterName)
	}
	return nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Archive checks a zip import: a non-blank name and a readable zip file.
func (v *Validator) Archive(name, path string) error {
	const op = errors.Op("project.ValidateArchive")
	if blank(name) {
		return v.fail(op, i18n.MsgSpecifyName)
	}
	if path == "" {
		return v.fail(op, i18n.MsgUploadZip)
	}
	r, err := zip.OpenReader(path)
	if err != nil {
		return v.fail(op, i18n.MsgNotZip, path)
	}
	r.Close()
	return nil
}

// GitHub checks a GitHub import and returns the parsed repository with
// the branch defaulted.
func (v *Validator) GitHub(name, url, branch string) (GitHubRepo, error) {
	const op = errors.Op("project.ValidateGitHub")
	if blank(name) {
		return GitHubRepo{}, v.fail(op, i18n.MsgSpecifyName)
	}
	repo, ok := ParseGitHubURL(url)
	if !ok {
		return GitHubRepo{}, v.fail(op, i18n.MsgGitHubURL)
	}
	if branch != "" {
		repo.Branch = branch
	}
	return repo, nil
}

// ParseGitHubURL reads owner and repository from url. Branch is set to
// DefaultBranch.
func ParseGitHubURL(url string) (GitHubRepo, bool) {
	m := githubURL.FindStringSubmatch(url)
	if m == nil {
		return GitHubRepo{}, false
	}
	return GitHubRepo{Owner: m[1], Repo: m[2], Branch: DefaultBranch}, true
}

// Prefill is import form data derived from an IDE URL path.
type Prefill struct {
	Name   string
	URL    string
	Branch string
}

// ParseImportPath reads /ide/import/github/<owner>/<repo>[/<branch...>].
// Runs of slashes are collapsed first. The name is prefilled with the
// owner segment.
func ParseImportPath(path string) (Prefill, bool) {
	for strings.Contains(path, "//") {
		path = strings.ReplaceAll(path, "//", "/")
	}
	if !strings.HasPrefix(path, "/ide/import/github/") {
		return Prefill{}, false
	}
	parts := strings.Split(strings.TrimPrefix(path, "/"), "/")
	if len(parts) < 5 || parts[3] == "" || parts[4] == "" {
		return Prefill{}, false
	}

	p := Prefill{
		Name: parts[3],
		URL:  "github.com/" + parts[3] + "/" + parts[4],
	}
	if len(parts) > 5 {
		p.Branch = strings.Join(parts[5:], "/")
	}
	return p, true
}
