// Package cmd provides Cobra CLI commands for localport.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/localport/internal/cli"
	"github.com/bnema/localport/internal/domain/build"
	"github.com/bnema/localport/internal/infrastructure/config"
)

var (
	app       *cli.App
	buildInfo build.Info
	verbose   bool
	backend   string

	rootCmd = &cobra.Command{
		Use:   "localport",
		Short: "Open localhost ports from the address bar",
		Long: `localport turns a port number into https://localhost:<port>.

It remembers the ports you open, suggests them back as you type, and can open
a new tab right next to the current one, keeping its tab group.

The browser is reached over the Chrome DevTools protocol by default. Start
Chromium with --remote-debugging-port=9222, or set browser.backend to
"system" to hand URLs to the desktop opener instead.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "__complete":
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.Options{Verbose: verbose && cmd.Name() != "omnibox"})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "write logs to stderr")
	rootCmd.PersistentFlags().StringVar(&backend, "backend", "", `browser backend: "cdp", "system" or "memory" (default from config)`)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

func selectedBackend() config.BrowserBackend {
	return config.BrowserBackend(backend)
}
