package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/localport/internal/application/port"
	"github.com/bnema/localport/internal/cli"
	"github.com/bnema/localport/internal/cli/styles"
	"github.com/bnema/localport/internal/domain/entity"
)

var suggestJSON bool

var openCmd = &cobra.Command{
	Use:   "open <port>",
	Short: "Navigate the current tab to localhost:<port>",
	Long: `Navigate the active tab to https://localhost:<port>.

If a remembered port contains the text, the most recent one wins. Otherwise
the port is remembered for next time. Invalid input shows a notification and
changes nothing.

Examples:
  localport open 8080
  localport open 300     # opens 3000 when 3000 was used before`,
	Args: cobra.ExactArgs(1),
	RunE: runOpen,
}

var suggestCmd = &cobra.Command{
	Use:   "suggest <text>",
	Short: "Show remembered ports matching text",
	Args:  cobra.ExactArgs(1),
	RunE:  runSuggest,
}

var forgetCmd = &cobra.Command{
	Use:   "forget <text>",
	Short: "Forget remembered ports that text ends with",
	Long: `Forget every remembered port whose digits end the given text.

Example:
  localport forget 3000   # forgets 3000, and also 0, 00 or 000 if stored`,
	Args: cobra.ExactArgs(1),
	RunE: runForget,
}

var newTabCmd = &cobra.Command{
	Use:   "new-tab",
	Short: "Open a blank tab next to the active one, in the same group",
	Args:  cobra.NoArgs,
	RunE:  runNewTab,
}

func init() {
	rootCmd.AddCommand(openCmd, suggestCmd, forgetCmd, newTabCmd)
	suggestCmd.Flags().BoolVar(&suggestJSON, "json", false, "output as JSON")
}

func withSession(sink port.SuggestionSink, fn func(ctx context.Context, s *cli.Session) error) error {
	a := GetApp()
	if a == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := a.Ctx()

	s, err := a.NewSession(ctx, cli.SessionOptions{Sink: sink, Backend: selectedBackend()})
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	return s.Run(ctx, func(ctx context.Context) error {
		return fn(ctx, s)
	})
}

func runOpen(_ *cobra.Command, args []string) error {
	return withSession(cli.DiscardSink{}, func(ctx context.Context, s *cli.Session) error {
		out, err := s.Loop.InputEntered(ctx, args[0]).Wait(ctx)
		if err != nil {
			return err
		}
		if out.Invalid != nil {
			return out.Invalid
		}
		theme := GetApp().Theme
		fmt.Fprintf(GetApp().Stdout(), "%s %s\n", theme.Success.Render(styles.IconArrow), out.URL)
		return nil
	})
}

type suggestionJSON struct {
	Content     string `json:"content"`
	Description string `json:"description"`
	Match       string `json:"match"`
	Deletable   bool   `json:"deletable"`
	Default     bool   `json:"default"`
}

func newSuggestionJSON(sg entity.Suggestion, isDefault bool) suggestionJSON {
	return suggestionJSON{
		Content:     sg.Content,
		Description: sg.Description.Markup(),
		Match:       sg.Description.Highlighted(),
		Deletable:   sg.Deletable,
		Default:     isDefault,
	}
}

func runSuggest(_ *cobra.Command, args []string) error {
	a := GetApp()
	if a == nil {
		return fmt.Errorf("app not initialized")
	}

	var sink port.SuggestionSink = cli.NewPrintSink(a.Stdout(), a.Theme)
	if suggestJSON {
		sink = cli.DiscardSink{}
	}

	return withSession(sink, func(ctx context.Context, s *cli.Session) error {
		out, err := s.Loop.InputChanged(ctx, args[0]).Wait(ctx)
		if err != nil {
			return err
		}
		if !suggestJSON {
			return nil
		}

		list := make([]suggestionJSON, 0, 1+len(out.Dropdown))
		if out.Default != nil {
			list = append(list, newSuggestionJSON(*out.Default, true))
		}
		for _, sg := range out.Dropdown {
			list = append(list, newSuggestionJSON(sg, false))
		}

		enc := json.NewEncoder(a.Stdout())
		enc.SetIndent("", "  ")
		return enc.Encode(list)
	})
}

func runForget(_ *cobra.Command, args []string) error {
	return withSession(cli.DiscardSink{}, func(ctx context.Context, s *cli.Session) error {
		if _, err := s.Loop.SuggestionDeleted(ctx, args[0]).Wait(ctx); err != nil {
			return err
		}
		theme := GetApp().Theme
		fmt.Fprintf(GetApp().Stdout(), "%s forgot ports ending %s\n", theme.Success.Render(styles.IconTrash), args[0])
		return nil
	})
}

func runNewTab(_ *cobra.Command, _ []string) error {
	return withSession(cli.DiscardSink{}, func(ctx context.Context, s *cli.Session) error {
		out, err := s.Loop.ActionClicked(ctx).Wait(ctx)
		if err != nil {
			if errors.Is(err, port.ErrUnsupported) {
				return fmt.Errorf("%w (use the cdp backend)", err)
			}
			return err
		}
		theme := GetApp().Theme
		line := fmt.Sprintf("%s tab %s at index %d", theme.Success.Render(styles.IconTab), out.Tab.ID, out.Tab.Index)
		if out.Grouped {
			line += fmt.Sprintf(" in group %d", out.Tab.GroupID)
		}
		fmt.Fprintln(GetApp().Stdout(), line)
		return nil
	})
}
