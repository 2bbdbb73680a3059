package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cloudpebble/cptui/internal/config"
	"github.com/cloudpebble/cptui/internal/logger"
)

var (
	skipConfirm bool
	clearLogs   bool
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the saved session",
	Long: `Removes the saved session so the next run starts at the sign-in screen.

With --logs the debug log files are removed too. It will prompt for
confirmation before proceeding unless the --yes flag is used.`,
	Args: cobra.NoArgs,
	RunE: runLogout,
}

func init() {
	logoutCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	logoutCmd.Flags().BoolVar(&clearLogs, "logs", false, "Also remove log files")
	rootCmd.AddCommand(logoutCmd)
}

func runLogout(cmd *cobra.Command, args []string) error {
	path, err := config.DefaultSessionPath()
	if err != nil {
		return fmt.Errorf("error locating session: %w", err)
	}
	return runLogoutWithReader(cmd.InOrStdin(), cmd.OutOrStdout(), path)
}

// runLogoutWithReader allows injecting input and a session path for testing
func runLogoutWithReader(input io.Reader, out io.Writer, sessionPath string) error {
	sess, err := config.LoadSession(sessionPath)
	if err != nil {
		return fmt.Errorf("error loading session: %w", err)
	}

	signedIn := sess.Server != ""
	if !signedIn && !clearLogs {
		fmt.Fprintln(out, "Not logged in.")
		return nil
	}

	fmt.Fprintln(out, "This will remove:")
	if signedIn {
		fmt.Fprintf(out, "  - the session for %s (%s)\n", sess.Server, sess.DisplayName())
	}
	if clearLogs {
		fmt.Fprintln(out, "  - all cptui log files in /tmp")
	}

	if !skipConfirm {
		if !confirm(input, out, "Continue?") {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	if err := sess.Clear(); err != nil {
		return fmt.Errorf("error clearing session: %w", err)
	}
	if signedIn {
		fmt.Fprintln(out, "Logged out.")
	}

	if clearLogs {
		logger.Close()
		n, err := logger.ClearLogs()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: error clearing logs: %v\n", err)
		}
		fmt.Fprintf(out, "Removed %d log file(s).\n", n)
	}
	return nil
}

// confirm prompts the user for y/n confirmation
func confirm(input io.Reader, out io.Writer, prompt string) bool {
	reader := bufio.NewReader(input)
	fmt.Fprintf(out, "%s [y/N]: ", prompt)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
