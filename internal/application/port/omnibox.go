package port

import (
	"context"

	"github.com/bnema/localport/internal/domain/entity"
)

// SuggestionSink receives suggestion output for the address bar.
type SuggestionSink interface {
	// SetDefaultSuggestion shows desc inline, outside the dropdown.
	SetDefaultSuggestion(ctx context.Context, desc entity.SuggestionDescription)

	// Suggest offers the dropdown list.
	Suggest(ctx context.Context, suggestions []entity.Suggestion)
}
