package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/localport/internal/cli/styles"
)

var portsJSON bool

var portsCmd = &cobra.Command{
	Use:   "ports",
	Short: "List remembered ports, most recent first",
	Args:  cobra.NoArgs,
	RunE:  runPorts,
}

func init() {
	rootCmd.AddCommand(portsCmd)
	portsCmd.Flags().BoolVar(&portsJSON, "json", false, "output as JSON")
}

func runPorts(_ *cobra.Command, _ []string) error {
	a := GetApp()
	if a == nil {
		return fmt.Errorf("app not initialized")
	}

	ports, err := a.History.FetchUsedPorts(a.Ctx())
	if err != nil {
		return err
	}

	out := a.Stdout()
	if portsJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(ports)
	}

	if len(ports) == 0 {
		fmt.Fprintln(out, a.Theme.Subtle.Render("No remembered ports yet. Try 'localport open 8080'."))
		return nil
	}

	icon := a.Theme.Highlight.Render(styles.IconPlug)
	for _, p := range ports {
		fmt.Fprintf(out, "%s %s %s\n", icon, a.Theme.Normal.Render(p.String()),
			a.Theme.Subtle.Render(p.URL(a.Config.Omnibox.Scheme, a.Config.Omnibox.Host)))
	}
	return nil
}
