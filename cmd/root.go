package cmd

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/cloudpebble/cptui/internal/app"
	"github.com/cloudpebble/cptui/internal/auth"
	"github.com/cloudpebble/cptui/internal/clipboard"
	"github.com/cloudpebble/cptui/internal/i18n"
	"github.com/cloudpebble/cptui/internal/logger"
	"github.com/cloudpebble/cptui/internal/templates"
)

var (
	cfgFile               string
	debugMode             bool
	importPath            string
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "cptui",
	Short: "Terminal client for the CloudPebble IDE",
	Long: `cptui signs in to a CloudPebble server, lists your projects, creates and
imports new ones, and browses project sources and resources in the terminal.

Run without a subcommand to start the interactive UI.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "Config file (default ~/.cptui/config.yaml)")
	pf.String("server", "", "IDE server URL")
	pf.String("theme", "", "Color theme")
	pf.String("lang", "", "Interface language (en, es)")
	pf.String("default-sdk", "", "SDK version offered first in project forms")
	pf.BoolVar(&debugMode, "debug", false, "Enable debug logging")

	rootCmd.Flags().StringVar(&importPath, "import-github", "",
		"Open a prefilled GitHub import, e.g. /ide/import/github/<owner>/<repo>[/<branch>]")
}

func initConfig() {
	logger.SetDebug(debugMode)
}

// Execute runs the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("cptui %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("cptui %s\n", version)
}

func runTUI(cmd *cobra.Command, args []string) error {
	if err := logger.Init(logger.DefaultLogPath); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
	}
	defer logger.Close()

	e, err := loadEnv(cmd)
	if err != nil {
		return err
	}

	if err := clipboard.Init(); err != nil {
		logger.Warn("clipboard unavailable: %v", err)
	}
	catalog, err := templates.LoadCatalog(e.cfg.TemplatesFile)
	if err != nil {
		logger.Warn("ignoring template catalog: %v", err)
	}

	opts := app.Options{
		Config:     e.cfg,
		Session:    e.session,
		Service:    e.client,
		Localizer:  i18n.New(e.cfg.Language),
		Templates:  catalog,
		ImportPath: importPath,
	}
	if e.cfg.Firebase.APIKey != "" {
		opts.Popup = auth.NewBrowserPopup(e.cfg.Firebase.AuthURL)
		opts.Identity = auth.NewIdentityClient(e.cfg.Firebase.IdentityURL, e.cfg.Firebase.APIKey, nil)
	} else {
		logger.Info("no firebase api key configured; federated sign-in disabled")
	}

	p := tea.NewProgram(app.New(opts))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
