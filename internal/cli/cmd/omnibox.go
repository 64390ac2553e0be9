package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/localport/internal/application/port"
	"github.com/bnema/localport/internal/cli"
	"github.com/bnema/localport/internal/cli/model"
	"github.com/bnema/localport/internal/cli/styles"
	"github.com/bnema/localport/internal/infrastructure/config"
	"github.com/bnema/localport/internal/infrastructure/desktop"
	"github.com/bnema/localport/internal/logging"
)

var omniboxCmd = &cobra.Command{
	Use:   "omnibox",
	Short: "Interactive address bar for localhost ports",
	Long: `Type a port and press enter to open it in the active tab.

Remembered ports are suggested as you type. Use the arrows to pick one,
ctrl+d to forget it, and ctrl+t to open a blank tab next to the active one.
Theme changes in the config file apply live.`,
	Args: cobra.NoArgs,
	RunE: runOmnibox,
}

func init() {
	rootCmd.AddCommand(omniboxCmd)
}

func runOmnibox(_ *cobra.Command, _ []string) error {
	a := GetApp()
	if a == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx, cancel := context.WithCancel(logging.WithComponent(a.Ctx(), "omnibox"))
	defer cancel()

	bridge := model.NewBridge()
	var notifier port.Notifier = desktop.DisabledNotifier{}
	if a.Config.Notifications.Enabled {
		notifier = model.NewNotifier(bridge, desktopNotifier(a.Config))
	}
	s, err := a.NewSession(ctx, cli.SessionOptions{
		Sink:     bridge,
		Notifier: notifier,
		Backend:  selectedBackend(),
	})
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	m := model.NewOmniboxModel(ctx, a.Theme, s.Loop, s.Omnibox.Session())
	p := tea.NewProgram(m, tea.WithContext(ctx))
	bridge.Attach(p)

	if a.Manager != nil {
		a.Manager.OnConfigChange(func(cfg *config.Config) {
			p.Send(model.ThemeMsg{Theme: styles.NewTheme(cfg)})
		})
		if err := a.Manager.Watch(); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("config watch disabled")
		}
	}

	return s.Run(ctx, func(context.Context) error {
		_, err := p.Run()
		if err != nil && ctx.Err() == nil {
			return fmt.Errorf("run omnibox: %w", err)
		}
		return nil
	})
}

// desktopNotifier returns the desktop notifier when wanted and available.
// Console output would tear the terminal UI, so there is no console fallback.
func desktopNotifier(cfg *config.Config) port.Notifier {
	if !cfg.Notifications.Desktop {
		return nil
	}
	iconDir, _ := config.GetConfigDir()
	n := desktop.NewNotifier(iconDir)
	if !n.Available() {
		return nil
	}
	return n
}
