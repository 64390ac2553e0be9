package cli

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/bnema/localport/internal/application/port"
	"github.com/bnema/localport/internal/cli/styles"
	"github.com/bnema/localport/internal/domain/entity"
)

// PrintSink renders suggestions as lines on a writer.
type PrintSink struct {
	mu    sync.Mutex
	w     io.Writer
	theme *styles.Theme
}

var _ port.SuggestionSink = (*PrintSink)(nil)

// NewPrintSink writes to w using theme.
func NewPrintSink(w io.Writer, theme *styles.Theme) *PrintSink {
	return &PrintSink{w: w, theme: theme}
}

func (p *PrintSink) SetDefaultSuggestion(_ context.Context, desc entity.SuggestionDescription) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.w, "%s %s\n", p.theme.Highlight.Render(styles.IconArrow), p.theme.RenderDescription(desc))
}

func (p *PrintSink) Suggest(_ context.Context, suggestions []entity.Suggestion) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, s := range suggestions {
		fmt.Fprintf(p.w, "  %s\n", p.theme.RenderDescription(s.Description))
	}
}

// DiscardSink drops suggestions. Used by commands that only enter text.
type DiscardSink struct{}

var _ port.SuggestionSink = DiscardSink{}

func (DiscardSink) SetDefaultSuggestion(context.Context, entity.SuggestionDescription) {}

func (DiscardSink) Suggest(context.Context, []entity.Suggestion) {}
