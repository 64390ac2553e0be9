package port

import (
	"context"
	"errors"

	"github.com/bnema/localport/internal/domain/entity"
)

// ErrUnsupported is returned by hosts that cannot perform a capability.
var ErrUnsupported = errors.New("operation not supported by browser host")

// ErrNoActiveTab is returned when a window has no active tab.
var ErrNoActiveTab = errors.New("no active tab")

// TabManager is the host's tab and window manager.
type TabManager interface {
	// CurrentWindow returns the focused window.
	CurrentWindow(ctx context.Context) (entity.WindowID, error)

	// QueryTabs lists tabs matching q, ordered by window then index.
	QueryTabs(ctx context.Context, q entity.TabQuery) ([]entity.BrowserTab, error)

	// UpdateTabURL navigates a tab. An empty id targets the active tab of
	// the current window.
	UpdateTabURL(ctx context.Context, id entity.TabID, url string) error

	// CreateTab opens a tab and returns it.
	CreateTab(ctx context.Context, params entity.CreateTabParams) (entity.BrowserTab, error)

	// GroupTabs adds tabs to an existing group.
	GroupTabs(ctx context.Context, group entity.GroupID, ids ...entity.TabID) error

	// Activations delivers active-tab changes. The channel is closed when
	// the host shuts down.
	Activations() <-chan entity.TabActivation
}
