package cmd

import (
	"bufio"
	stderrors "errors"
	"context"
	"fmt"
	"io"
	"strings"

	"charm.land/huh/v2"
	"github.com/spf13/cobra"

	"github.com/cloudpebble/cptui/internal/auth"
	"github.com/cloudpebble/cptui/internal/errors"
	"github.com/cloudpebble/cptui/internal/logger"
)

var (
	loginUsername      string
	loginPasswordStdin bool
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in with a username and password",
	Long: `Signs in to the configured server and saves the session so later commands
and the interactive UI start signed in.

Missing credentials are prompted for. Use --password-stdin to pipe the
password in from a script.`,
	Args: cobra.NoArgs,
	RunE: runLogin,
}

func init() {
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "Account username")
	loginCmd.Flags().BoolVar(&loginPasswordStdin, "password-stdin", false, "Read the password from stdin")
	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	initCLILog(cmd)
	defer logger.Close()

	e, err := loadEnv(cmd)
	if err != nil {
		return err
	}

	username, password := loginUsername, ""
	if loginPasswordStdin {
		if password, err = readPassword(cmd.InOrStdin()); err != nil {
			return err
		}
	}
	if username == "" || password == "" {
		if err := promptCredentials(&username, &password); err != nil {
			return err
		}
	}
	if err := auth.ValidatePassword(username, password); err != nil {
		return fmt.Errorf("%s", errors.Message(err))
	}

	if err := auth.PasswordLogin(context.Background(), e.client, username, password); err != nil {
		return fmt.Errorf("login failed: %s", errors.Message(err))
	}
	if err := e.saveSession(username, "password"); err != nil {
		return fmt.Errorf("error saving session: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Logged in to %s as %s\n", e.cfg.Server, username)
	return nil
}

// readPassword takes the first line of r.
func readPassword(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("error reading password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func promptCredentials(username, password *string) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Username").Value(username),
			huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(password),
		),
	)
	if err := form.Run(); err != nil {
		if stderrors.Is(err, huh.ErrUserAborted) {
			return fmt.Errorf("aborted")
		}
		return err
	}
	return nil
}
