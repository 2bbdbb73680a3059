package cmd

import (
	"context"
	"fmt"
	"strconv"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"

	"github.com/cloudpebble/cptui/internal/api"
	"github.com/cloudpebble/cptui/internal/errors"
	"github.com/cloudpebble/cptui/internal/logger"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List your projects",
	Args:  cobra.NoArgs,
	RunE:  runProjects,
}

func init() {
	rootCmd.AddCommand(projectsCmd)
}

func runProjects(cmd *cobra.Command, args []string) error {
	initCLILog(cmd)
	defer logger.Close()

	e, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	if err := e.requireSession(); err != nil {
		return err
	}

	projects, err := e.client.ListProjects(context.Background())
	if err != nil {
		return fmt.Errorf("error listing projects: %s", errors.Message(err))
	}
	if len(projects) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No projects.")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), projectTable(projects))
	return nil
}

func projectTable(projects []api.ProjectSummary) string {
	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "NAME", "VERSION", "LAST BUILD").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
	for _, p := range projects {
		build := "-"
		if p.LatestSuccessfulBuild != nil {
			build = *p.LatestSuccessfulBuild
		}
		t.Row(strconv.Itoa(p.ID), p.Name, p.AppVersionLabel, build)
	}
	return t.String()
}
