package model

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/localport/internal/application/port"
	"github.com/bnema/localport/internal/domain/entity"
	"github.com/bnema/localport/internal/logging"
)

// Bridge forwards host output into a running bubbletea program. Messages
// sent before a program is attached are dropped.
type Bridge struct {
	mu   sync.RWMutex
	send func(tea.Msg)
}

var _ port.SuggestionSink = (*Bridge)(nil)

// NewBridge creates a detached bridge.
func NewBridge() *Bridge {
	return &Bridge{}
}

// Attach routes messages to p.
func (b *Bridge) Attach(p *tea.Program) {
	b.AttachFunc(p.Send)
}

// AttachFunc routes messages to fn.
func (b *Bridge) AttachFunc(fn func(tea.Msg)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.send = fn
}

// Send delivers msg to the attached program.
func (b *Bridge) Send(msg tea.Msg) {
	b.mu.RLock()
	send := b.send
	b.mu.RUnlock()
	if send != nil {
		send(msg)
	}
}

func (b *Bridge) SetDefaultSuggestion(_ context.Context, desc entity.SuggestionDescription) {
	b.Send(defaultSuggestionMsg{desc: desc})
}

func (b *Bridge) Suggest(_ context.Context, suggestions []entity.Suggestion) {
	b.Send(suggestMsg{suggestions: append([]entity.Suggestion(nil), suggestions...)})
}

// Notifier shows notifications in the omnibox status line and forwards them
// to next when set.
type Notifier struct {
	bridge *Bridge
	next   port.Notifier
}

var _ port.Notifier = (*Notifier)(nil)

// NewNotifier creates a status-line notifier. next may be nil.
func NewNotifier(bridge *Bridge, next port.Notifier) *Notifier {
	return &Notifier{bridge: bridge, next: next}
}

func (n *Notifier) Notify(ctx context.Context, notification entity.Notification) error {
	n.bridge.Send(notificationMsg{notification: notification})
	if n.next == nil {
		return nil
	}
	if err := n.next.Notify(ctx, notification); err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("forwarded notification failed")
	}
	return nil
}
