package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/localport/internal/cli"
	"github.com/bnema/localport/internal/cli/styles"
	"github.com/bnema/localport/internal/logging"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show version and build information",
	Long:  `Display version, build info, repository URL, and contributors.`,
	RunE:  runAbout,
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}

func runAbout(_ *cobra.Command, _ []string) error {
	a := GetApp()
	if a == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewAboutRenderer(a.Theme)
	fmt.Fprintln(a.Stdout(), renderer.Render(a.BuildInfo, storageRow(a)))
	return nil
}

func storageRow(a *cli.App) styles.AboutRow {
	row := styles.AboutRow{Icon: styles.IconDatabase, Key: "History"}
	status, err := a.Storage(a.Ctx())
	switch {
	case err != nil:
		logging.FromContext(a.Ctx()).Warn().Err(err).Msg("failed to inspect history database")
		row.Value = fmt.Sprintf("%s (unreadable)", status.Path)
	case !status.Created:
		row.Value = fmt.Sprintf("%s (not created yet)", status.Path)
	default:
		row.Value = fmt.Sprintf("%s (schema v%d)", status.Path, status.Version)
	}
	return row
}
