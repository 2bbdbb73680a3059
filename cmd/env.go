package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cloudpebble/cptui/internal/api"
	"github.com/cloudpebble/cptui/internal/config"
	"github.com/cloudpebble/cptui/internal/logger"
)

// env is what every command needs: settings, the saved session and a
// client that carries the session's cookies.
type env struct {
	cfg     *config.Config
	session *config.Session
	client  *api.Client
}

func loadEnv(cmd *cobra.Command) (*env, error) {
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	if cfg.FileUsed != "" {
		logger.Debug("config loaded from %s", cfg.FileUsed)
	}

	sessPath, err := config.DefaultSessionPath()
	if err != nil {
		return nil, fmt.Errorf("error locating session: %w", err)
	}
	sess, err := config.LoadSession(sessPath)
	if err != nil {
		return nil, fmt.Errorf("error loading session: %w", err)
	}

	opts := []api.Option{api.WithPolling(cfg.PollInterval, cfg.PollTimeout)}
	// Cookies saved for another server are not sent.
	if sess.Server == cfg.Server {
		opts = append(opts, api.WithCookies(sess.HTTPCookies()))
	}
	client, err := api.New(cfg.Server, opts...)
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, session: sess, client: client}, nil
}

// initCLILog points logging at a per-command file for headless runs.
func initCLILog(cmd *cobra.Command) {
	if err := logger.Init(logger.CLILogPath(cmd.Name())); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
	}
}

// requireSession fails early when there is nothing to authenticate with.
func (e *env) requireSession() error {
	if !e.session.LoggedIn(e.cfg.Server) {
		return fmt.Errorf("not logged in to %s; run `cptui login` first", e.cfg.Server)
	}
	return nil
}

// saveSession stores the client's cookies after a successful login.
func (e *env) saveSession(username, provider string) error {
	e.session.Update(e.cfg.Server, username, "", provider, e.client.Cookies())
	return e.session.Save()
}
