package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders config output with styled text.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderConfig renders the config file path followed by its TOML content.
func (r *ConfigRenderer) RenderConfig(path string, body []byte) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	var sb strings.Builder
	fmt.Fprintf(&sb, "\n  %s Config %s\n\n", iconStyle.Render(IconConfig), r.theme.Subtle.Render(path))
	for _, line := range strings.Split(strings.TrimRight(string(body), "\n"), "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "["):
			sb.WriteString("  " + r.theme.Highlight.Render(line))
		case strings.Contains(line, "="):
			k, v, _ := strings.Cut(line, "=")
			sb.WriteString("  " + r.theme.Normal.Render(k) + "=" + r.theme.Subtle.Render(v))
		default:
			sb.WriteString("  " + line)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf(
		"\n  %s Config error: %v\n",
		iconStyle.Render(IconX),
		err,
	)
}
