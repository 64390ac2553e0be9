package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/localport/internal/cli/styles"
	"github.com/bnema/localport/internal/infrastructure/config"
)

var (
	configPath   bool
	configSchema bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Print the effective configuration as TOML.

The file lives at $XDG_CONFIG_HOME/localport/config.toml and is created with
defaults on first run. LOCALPORT_* environment variables override it.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().BoolVar(&configPath, "path", false, "print the config file path only")
	configCmd.Flags().BoolVar(&configSchema, "schema", false, "print the JSON schema of the config file")
}

func runConfig(_ *cobra.Command, _ []string) error {
	a := GetApp()
	if a == nil {
		return fmt.Errorf("app not initialized")
	}
	out := a.Stdout()

	path, err := config.GetConfigFile()
	if err != nil {
		return err
	}
	if a.Manager != nil {
		path = a.Manager.GetConfigFile()
	}

	switch {
	case configPath:
		fmt.Fprintln(out, path)
		return nil
	case configSchema:
		data, err := json.MarshalIndent(config.Schema(), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal schema: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	renderer := styles.NewConfigRenderer(a.Theme)
	body, err := config.EncodeOrdered(a.Config)
	if err != nil {
		fmt.Fprintln(out, renderer.RenderError(err))
		return err
	}
	fmt.Fprint(out, renderer.RenderConfig(path, body))
	return nil
}
