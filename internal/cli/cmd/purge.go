package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/localport/internal/cli/styles"
)

var purgeYes bool

var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Forget every remembered port",
	Long: `Clear the remembered port list.

Asks for confirmation unless --yes is given.`,
	Args: cobra.NoArgs,
	RunE: runPurge,
}

func init() {
	rootCmd.AddCommand(purgeCmd)
	purgeCmd.Flags().BoolVarP(&purgeYes, "yes", "y", false, "skip confirmation prompt")
}

func runPurge(_ *cobra.Command, _ []string) error {
	a := GetApp()
	if a == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := a.Ctx()
	theme := a.Theme

	ports, err := a.History.FetchUsedPorts(ctx)
	if err != nil {
		return err
	}
	if len(ports) == 0 {
		fmt.Fprintln(a.Stdout(), theme.Subtle.Render("Nothing to purge."))
		return nil
	}

	if !purgeYes {
		confirm := styles.NewConfirm(theme, fmt.Sprintf("Forget %d remembered ports?", len(ports)))
		final, err := tea.NewProgram(confirm).Run()
		if err != nil {
			return fmt.Errorf("run confirmation: %w", err)
		}
		if result, ok := final.(styles.ConfirmModel); !ok || !result.Result() {
			fmt.Fprintln(a.Stdout(), theme.Subtle.Render("Canceled."))
			return nil
		}
	}

	if err := a.History.ClearUsedPorts(ctx); err != nil {
		return err
	}
	fmt.Fprintf(a.Stdout(), "%s Forgot %d ports\n", theme.Success.Render(styles.IconCheck), len(ports))
	return nil
}
