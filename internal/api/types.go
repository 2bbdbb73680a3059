package api

import "strconv"

// ProjectSummary is one row of the project list.
type ProjectSummary struct {
	ID                    int     `json:"id"`
	Name                  string  `json:"name"`
	PackageName           string  `json:"package_name,omitempty"`
	AppVersionLabel       string  `json:"app_version_label"`
	LatestSuccessfulBuild *string `json:"latest_successful_build"`
}

// SourceFile describes a project source file.
type SourceFile struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Target       string  `json:"target"`
	FilePath     string  `json:"file_path"`
	IsBinary     bool    `json:"is_binary"`
	IsEditable   bool    `json:"is_editable"`
	LastModified float64 `json:"lastModified"`
}

// Resource describes a project resource file.
type Resource struct {
	ID          int        `json:"id"`
	FileName    string     `json:"file_name"`
	Kind        string     `json:"kind"`
	Identifiers []string   `json:"identifiers"`
	Variants    [][]string `json:"variants"`
}

// GitHubLink is the repository a project syncs with.
type GitHubLink struct {
	Repo      *string `json:"repo"`
	Branch    *string `json:"branch"`
	LastSync  *string `json:"last_sync"`
	AutoBuild bool    `json:"auto_build"`
	AutoPull  bool    `json:"auto_pull"`
}

// ProjectInfo is the detail view of a project.
type ProjectInfo struct {
	Type               string       `json:"type"`
	Name               string       `json:"name"`
	LastModified       string       `json:"last_modified"`
	AppUUID            string       `json:"app_uuid"`
	AppCompanyName     string       `json:"app_company_name"`
	AppShortName       string       `json:"app_short_name"`
	AppLongName        string       `json:"app_long_name"`
	AppVersionLabel    string       `json:"app_version_label"`
	AppIsWatchface     bool         `json:"app_is_watchface"`
	SDKVersion         string       `json:"sdk_version"`
	AppPlatforms       string       `json:"app_platforms"`
	SupportedPlatforms []string     `json:"supported_platforms"`
	SourceFiles        []SourceFile `json:"source_files"`
	Resources          []Resource   `json:"resources"`
	GitHub             GitHubLink   `json:"github"`
	HasEmbeddedJS      bool         `json:"has_embeddedjs"`
}

// Source is a loaded source file body.
type Source struct {
	Source      string  `json:"source"`
	Modified    float64 `json:"modified"`
	FoldedLines []int   `json:"folded_lines"`
}

// TaskStatus is the state of a background server job.
type TaskStatus string

const (
	TaskPending TaskStatus = "PENDING"
	TaskStarted TaskStatus = "STARTED"
	TaskRetry   TaskStatus = "RETRY"
	TaskSuccess TaskStatus = "SUCCESS"
	TaskFailure TaskStatus = "FAILURE"
)

// Done reports whether the task has finished either way.
func (s TaskStatus) Done() bool {
	return s == TaskSuccess || s == TaskFailure
}

// TaskState is one poll result.
type TaskState struct {
	Status TaskStatus `json:"status"`
	Result any        `json:"result"`
}

// ResultString renders the task result for display.
func (t TaskState) ResultString() string {
	switch r := t.Result.(type) {
	case nil:
		return ""
	case string:
		return r
	case float64:
		return strconv.FormatFloat(r, 'f', -1, 64)
	default:
		return ""
	}
}

// ImportStarted is returned by both import endpoints.
type ImportStarted struct {
	TaskID    string `json:"task_id"`
	ProjectID int    `json:"project_id"`
}

// CreateProjectRequest is the create form.
type CreateProjectRequest struct {
	Name          string
	Template      int
	Type          string
	SDK           string
	AlloyTemplate string
}

// GitHubImportRequest is the GitHub import form.
type GitHubImportRequest struct {
	Name      string
	Repo      string
	Branch    string
	SDK       string
	AddRemote bool
}

// ArchiveImportRequest is the zip import form.
type ArchiveImportRequest struct {
	Name string
	SDK  string
	Path string
}
