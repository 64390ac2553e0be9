package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/localport/internal/domain/build"
)

// AboutRow is an extra key/value line under the build info.
type AboutRow struct {
	Icon  string
	Key   string
	Value string
}

// AboutRenderer renders build info in fastfetch style.
type AboutRenderer struct {
	theme *Theme
}

// NewAboutRenderer creates a new about renderer with the given theme.
func NewAboutRenderer(theme *Theme) *AboutRenderer {
	return &AboutRenderer{theme: theme}
}

// Render renders build info with the logo on the left.
func (r *AboutRenderer) Render(info build.Info, extra ...AboutRow) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, r.renderLogo(), "   ", r.renderInfoLines(info, extra))
}

func (r *AboutRenderer) renderLogo() string {
	logoStyle := lipgloss.NewStyle().Foreground(r.theme.Accent).Bold(true)

	logo := `██████▄
██   ██
██████▀
██
██`

	return logoStyle.MarginTop(1).MarginLeft(2).Render(logo)
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}

func (r *AboutRenderer) renderInfoLines(info build.Info, extra []AboutRow) string {
	keyStyle := r.theme.Subtle
	valStyle := r.theme.Highlight
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	row := func(icon, key, val string) string {
		return fmt.Sprintf("%s %s %s", iconStyle.Render(icon), keyStyle.Render(key), valStyle.Render(orUnknown(val)))
	}

	lines := []string{
		r.theme.Title.Render("localport"),
		row(IconVersion, "Version", info.Version),
		row(IconGitBranch, "Commit", info.Commit),
		row(IconCalendar, "Built", info.BuildDate),
		row(IconGo, "Go", info.GoVersion),
	}
	for _, e := range extra {
		lines = append(lines, row(e.Icon, e.Key, e.Value))
	}
	lines = append(lines,
		"",
		fmt.Sprintf("%s %s", iconStyle.Render(IconGithub), keyStyle.Render(build.RepoURL())),
		fmt.Sprintf(
			"%s %s %s",
			iconStyle.Render(IconHeart),
			keyStyle.Render("Made with love by"),
			valStyle.Render(strings.Join(build.Contributors(), ", ")),
		),
	)

	return strings.Join(lines, "\n")
}
