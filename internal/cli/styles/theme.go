// Package styles provides reusable lipgloss-based TUI components.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/localport/internal/domain/entity"
	"github.com/bnema/localport/internal/infrastructure/config"
)

// Theme holds lipgloss colors and styles derived from config.
type Theme struct {
	// Base colors (from config.Palette)
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Accent lipgloss.Color
	Match  lipgloss.Color
	Border lipgloss.Color
	Error  lipgloss.Color

	// Pre-built styles
	Title      lipgloss.Style
	Normal     lipgloss.Style
	Subtle     lipgloss.Style
	Highlight  lipgloss.Style
	ErrorStyle lipgloss.Style
	Success    lipgloss.Style

	// Suggestion segments
	SegmentDim   lipgloss.Style
	SegmentMatch lipgloss.Style

	ListItem         lipgloss.Style
	ListItemSelected lipgloss.Style

	Input        lipgloss.Style
	InputFocused lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	Box    lipgloss.Style
	Status lipgloss.Style
}

// NewTheme creates a Theme from config, falling back to the default palette
// for any color left empty.
func NewTheme(cfg *config.Config) *Theme {
	p := config.DefaultConfig().Appearance.Palette
	if cfg != nil {
		p = mergePalette(p, cfg.Appearance.Palette)
	}
	return NewThemeFromPalette(p)
}

func mergePalette(base, override config.Palette) config.Palette {
	pick := func(a, b string) string {
		if b != "" {
			return b
		}
		return a
	}
	return config.Palette{
		Accent: pick(base.Accent, override.Accent),
		Text:   pick(base.Text, override.Text),
		Muted:  pick(base.Muted, override.Muted),
		Match:  pick(base.Match, override.Match),
		Error:  pick(base.Error, override.Error),
		Border: pick(base.Border, override.Border),
	}
}

// NewThemeFromPalette creates a Theme from a Palette.
func NewThemeFromPalette(p config.Palette) *Theme {
	t := &Theme{
		Text:   lipgloss.Color(p.Text),
		Muted:  lipgloss.Color(p.Muted),
		Accent: lipgloss.Color(p.Accent),
		Match:  lipgloss.Color(p.Match),
		Border: lipgloss.Color(p.Border),
		Error:  lipgloss.Color(p.Error),
	}
	t.buildStyles()
	return t
}

// buildStyles creates all derived lipgloss styles.
func (t *Theme) buildStyles() {
	t.Title = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true)

	t.Normal = lipgloss.NewStyle().
		Foreground(t.Text)

	t.Subtle = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Highlight = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	t.Success = lipgloss.NewStyle().
		Foreground(t.Accent)

	t.SegmentDim = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.SegmentMatch = lipgloss.NewStyle().
		Foreground(t.Match).
		Bold(true)

	t.ListItem = lipgloss.NewStyle().
		Foreground(t.Text).
		PaddingLeft(2)

	t.ListItemSelected = lipgloss.NewStyle().
		Foreground(t.Accent).
		PaddingLeft(1).
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderForeground(t.Accent).
		Bold(true)

	t.Input = lipgloss.NewStyle().
		Foreground(t.Text).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)

	t.InputFocused = t.Input.
		BorderForeground(t.Accent)

	t.HelpKey = lipgloss.NewStyle().
		Foreground(t.Accent)

	t.HelpDesc = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Box = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)

	t.Status = lipgloss.NewStyle().
		Foreground(t.Muted).
		Italic(true)
}

// RenderDescription renders a suggestion description with the segment styles.
func (t *Theme) RenderDescription(d entity.SuggestionDescription) string {
	var out string
	for _, seg := range d {
		switch seg.Style {
		case entity.SegmentDim:
			out += t.SegmentDim.Render(seg.Text)
		case entity.SegmentMatch:
			out += t.SegmentMatch.Render(seg.Text)
		default:
			out += t.Normal.Render(seg.Text)
		}
	}
	return out
}

// InputBox wraps a text input in a styled box.
func (t *Theme) InputBox(input string, focused bool) string {
	style := t.Input
	if focused {
		style = t.InputFocused
	}
	return style.Render(input)
}
