package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/cloudpebble/cptui/internal/api"
	"github.com/cloudpebble/cptui/internal/errors"
	"github.com/cloudpebble/cptui/internal/i18n"
	"github.com/cloudpebble/cptui/internal/logger"
	"github.com/cloudpebble/cptui/internal/notification"
	"github.com/cloudpebble/cptui/internal/project"
)

var (
	importName      string
	importBranch    string
	importSDK       string
	importAddRemote bool
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a project from GitHub or a zip archive",
	Long: `Imports a project and waits for the server to finish processing it.

The project URL is printed when the import succeeds.`,
}

var importGitHubCmd = &cobra.Command{
	Use:   "github <url>",
	Short: "Import a GitHub repository",
	Args:  cobra.ExactArgs(1),
	RunE:  runImportGitHub,
}

var importZipCmd = &cobra.Command{
	Use:   "zip <file>",
	Short: "Import a zip archive",
	Args:  cobra.ExactArgs(1),
	RunE:  runImportZip,
}

func init() {
	for _, c := range []*cobra.Command{importGitHubCmd, importZipCmd} {
		c.Flags().StringVarP(&importName, "name", "n", "", "Project name")
		c.Flags().StringVar(&importSDK, "sdk", "", "SDK version (default from config)")
	}
	importGitHubCmd.Flags().StringVarP(&importBranch, "branch", "b", "", "Branch to import (default "+project.DefaultBranch+")")
	importGitHubCmd.Flags().BoolVar(&importAddRemote, "add-remote", false, "Link the project to the repository")
	importZipCmd.MarkFlagRequired("name")

	importCmd.AddCommand(importGitHubCmd, importZipCmd)
	rootCmd.AddCommand(importCmd)
}

// importer builds the import flow for the loaded environment.
func (e *env) importer() *project.Importer {
	return project.NewImporter(e.client, project.NewValidator(i18n.New(e.cfg.Language)))
}

func (e *env) sdk() string {
	if importSDK != "" {
		return importSDK
	}
	return e.cfg.DefaultSDK
}

func runImportGitHub(cmd *cobra.Command, args []string) error {
	initCLILog(cmd)
	defer logger.Close()

	e, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	if err := e.requireSession(); err != nil {
		return err
	}

	form := project.GitHubForm{
		Name:      importName,
		URL:       args[0],
		Branch:    importBranch,
		SDK:       e.sdk(),
		AddRemote: importAddRemote,
	}
	if form.Name == "" {
		// Default the name to the repository the way the import URL does.
		if repo, ok := project.ParseGitHubURL(form.URL); ok {
			form.Name = repo.Repo
		}
	}

	out := cmd.OutOrStdout()
	id, err := e.importer().ImportGitHub(context.Background(), form, printState(out))
	return e.reportImport(out, form.Name, id, err)
}

func runImportZip(cmd *cobra.Command, args []string) error {
	initCLILog(cmd)
	defer logger.Close()

	e, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	if err := e.requireSession(); err != nil {
		return err
	}

	form := project.ArchiveForm{Name: importName, Path: args[0], SDK: e.sdk()}
	out := cmd.OutOrStdout()
	id, err := e.importer().ImportArchive(context.Background(), form, printState(out))
	return e.reportImport(out, form.Name, id, err)
}

// printState reports each change of task status once.
func printState(w io.Writer) func(api.TaskState) {
	var last api.TaskStatus
	return func(st api.TaskState) {
		if st.Status != last {
			fmt.Fprintf(w, "Task %s\n", st.Status)
			last = st.Status
		}
	}
}

func (e *env) reportImport(w io.Writer, name string, id int, err error) error {
	if err != nil {
		return fmt.Errorf("import failed: %s", errors.Message(err))
	}
	msg := i18n.New(e.cfg.Language).T(i18n.MsgImportComplete, name)
	fmt.Fprintln(w, msg)
	fmt.Fprintln(w, e.client.ProjectURL(id))
	if e.cfg.Notifications {
		if err := notification.ImportCompleted(msg); err != nil {
			logger.Warn("notification failed: %v", err)
		}
	}
	return nil
}
