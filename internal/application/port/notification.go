package port

import (
	"context"

	"github.com/bnema/localport/internal/domain/entity"
)

// Notifier shows user-visible notifications through the host
// (desktop notification daemon, TUI status line, ...).
type Notifier interface {
	Notify(ctx context.Context, n entity.Notification) error
}
