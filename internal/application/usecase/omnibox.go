package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/localport/internal/application/port"
	"github.com/bnema/localport/internal/domain/entity"
	"github.com/bnema/localport/internal/logging"
)

// OmniboxConfig controls how ports become navigation targets.
type OmniboxConfig struct {
	Scheme           string // default "https"
	Host             string // default "localhost"
	NotificationIcon string
}

// OmniboxUseCase reacts to address-bar events: entered, changed,
// suggestion deleted, and active tab changes.
type OmniboxUseCase struct {
	history  *PortHistoryUseCase
	tabs     port.TabManager
	notifier port.Notifier
	sink     port.SuggestionSink
	session  *entity.SessionContext
	cfg      OmniboxConfig
}

// NewOmniboxUseCase creates the omnibox controller.
func NewOmniboxUseCase(
	history *PortHistoryUseCase,
	tabs port.TabManager,
	notifier port.Notifier,
	sink port.SuggestionSink,
	cfg OmniboxConfig,
) *OmniboxUseCase {
	if cfg.Scheme == "" {
		cfg.Scheme = entity.DefaultScheme
	}
	if cfg.Host == "" {
		cfg.Host = entity.DefaultHost
	}
	if cfg.NotificationIcon == "" {
		cfg.NotificationIcon = entity.DefaultNotificationIcon
	}
	return &OmniboxUseCase{
		history:  history,
		tabs:     tabs,
		notifier: notifier,
		sink:     sink,
		session:  entity.NewSessionContext(),
		cfg:      cfg,
	}
}

// Session exposes the controller-owned session context.
func (uc *OmniboxUseCase) Session() *entity.SessionContext {
	return uc.session
}

// InputEnteredOutput describes what happened when the user committed text.
type InputEnteredOutput struct {
	Port           entity.Port
	URL            string
	TabID          entity.TabID // Empty when the host's active tab was targeted
	FromSuggestion bool         // A stored port overrode the typed one
	Recorded       bool         // The typed port was added to the history

	// Invalid is set (wrapping entity.ErrInvalidPortInput) when the text was
	// rejected. Nothing else happened in that case.
	Invalid error
}

// InputEntered validates text, resolves it against stored ports and
// navigates the current tab.
func (uc *OmniboxUseCase) InputEntered(ctx context.Context, text string) (*InputEnteredOutput, error) {
	log := logging.FromContext(ctx)
	log.Debug().Str("text", text).Msg("omnibox input entered")

	p, err := entity.ValidatePortInput(text)
	if err != nil {
		uc.notifyInvalid(ctx, text)
		return &InputEnteredOutput{Invalid: err}, nil
	}

	out := &InputEnteredOutput{Port: p}

	// Suggestions match on the raw text, not the parsed number.
	suggestions, err := uc.history.GetSuggestionPorts(ctx, text)
	if err != nil {
		return nil, err
	}

	if len(suggestions) > 0 {
		out.Port = suggestions[0]
		out.FromSuggestion = true
	} else {
		if err := uc.history.AddUsedPort(ctx, p); err != nil {
			return nil, err
		}
		out.Recorded = true
	}

	out.URL = out.Port.URL(uc.cfg.Scheme, uc.cfg.Host)
	tabID, _, _ := uc.session.CurrentTab()
	out.TabID = tabID

	ctx = logging.WithURL(logging.WithTabID(ctx, string(tabID)), out.URL)
	if err := uc.tabs.UpdateTabURL(ctx, tabID, out.URL); err != nil {
		return nil, fmt.Errorf("failed to navigate tab: %w", err)
	}

	logging.FromContext(ctx).Info().
		Bool("from_suggestion", out.FromSuggestion).
		Msg("navigated to local port")

	return out, nil
}

func (uc *OmniboxUseCase) notifyInvalid(ctx context.Context, text string) {
	log := logging.FromContext(ctx)
	log.Debug().Str("text", text).Msg("rejected omnibox input")

	n := entity.NewInvalidPortNotification(text, uc.cfg.NotificationIcon)
	if err := uc.notifier.Notify(ctx, n); err != nil {
		log.Warn().Err(err).Msg("failed to show invalid port notification")
	}
}

// InputChangedOutput holds the suggestions produced while typing.
type InputChangedOutput struct {
	Default  *entity.Suggestion  // Shown inline; nil when nothing matched
	Dropdown []entity.Suggestion // Remaining matches, possibly empty
}

// InputChanged computes suggestions for text and pushes them to the sink.
// Unparseable text produces nothing and leaves the previous default alone.
func (uc *OmniboxUseCase) InputChanged(ctx context.Context, text string) (*InputChangedOutput, error) {
	log := logging.FromContext(ctx)

	out := &InputChangedOutput{}
	if _, err := entity.ParsePort(text); err != nil {
		log.Debug().Str("text", text).Msg("ignoring non-numeric omnibox input")
		return out, nil
	}

	ports, err := uc.history.GetSuggestionPorts(ctx, text)
	if err != nil {
		return nil, err
	}
	if len(ports) == 0 {
		return out, nil
	}

	suggestions := make([]entity.Suggestion, 0, len(ports))
	for _, p := range ports {
		suggestions = append(suggestions, entity.NewPortSuggestion(p, uc.cfg.Host, text))
	}

	first := suggestions[0]
	out.Default = &first
	uc.sink.SetDefaultSuggestion(ctx, first.Description)

	if rest := suggestions[1:]; len(rest) > 0 {
		out.Dropdown = rest
		uc.sink.Suggest(ctx, rest)
	}

	log.Debug().
		Str("text", text).
		Str("default", first.Content).
		Int("dropdown", len(out.Dropdown)).
		Msg("omnibox suggestions")

	return out, nil
}

// DeleteSuggestion forgets the ports matching a deleted suggestion's text.
func (uc *OmniboxUseCase) DeleteSuggestion(ctx context.Context, text string) error {
	logging.FromContext(ctx).Debug().Str("text", text).Msg("omnibox suggestion deleted")
	return uc.history.RemoveUsedPort(ctx, text)
}

// TabActivated records the new navigation target.
func (uc *OmniboxUseCase) TabActivated(ctx context.Context, a entity.TabActivation) {
	uc.session.Activate(a)
	logging.FromContext(ctx).Debug().
		Str("tab_id", string(a.TabID)).
		Str("window_id", string(a.WindowID)).
		Msg("active tab changed")
}

// IsInvalidInput reports whether err marks rejected omnibox text.
func IsInvalidInput(err error) bool {
	return errors.Is(err, entity.ErrInvalidPortInput)
}
