package desktop

import (
	"context"
	"fmt"

	"github.com/bnema/localport/internal/application/port"
	"github.com/bnema/localport/internal/domain/entity"
	"github.com/bnema/localport/internal/logging"
)

// Launcher is a tab host backed by the default browser. It can only open
// URLs: it has no view of windows, tabs or groups.
type Launcher struct {
	binary      string
	run         runFunc
	activations chan entity.TabActivation
}

var _ port.TabManager = (*Launcher)(nil)

// NewLauncher detects xdg-open (Linux) or open (macOS).
func NewLauncher() *Launcher {
	var binary string
	if currentOS() == "darwin" {
		binary = lookPath("open")
	} else {
		binary = lookPath("xdg-open", "gio")
	}

	activations := make(chan entity.TabActivation)
	close(activations)

	return &Launcher{binary: binary, run: runCommand, activations: activations}
}

func (l *Launcher) CurrentWindow(context.Context) (entity.WindowID, error) {
	return "", fmt.Errorf("current window: %w", port.ErrUnsupported)
}

func (l *Launcher) QueryTabs(context.Context, entity.TabQuery) ([]entity.BrowserTab, error) {
	return nil, fmt.Errorf("query tabs: %w", port.ErrUnsupported)
}

// UpdateTabURL opens url in the default browser. The tab id is ignored: the
// browser decides where the page goes.
func (l *Launcher) UpdateTabURL(ctx context.Context, id entity.TabID, url string) error {
	if l.binary == "" {
		return fmt.Errorf("no URL opener found (xdg-open, gio, open): %w", port.ErrUnsupported)
	}

	args := []string{url}
	if isGio(l.binary) {
		args = []string{"open", url}
	}
	if err := l.run(ctx, l.binary, args...); err != nil {
		return fmt.Errorf("failed to open %s: %w", url, err)
	}

	logging.FromContext(ctx).Debug().
		Str("url", url).
		Str("requested_tab", string(id)).
		Msg("opened URL in default browser")
	return nil
}

func (l *Launcher) CreateTab(context.Context, entity.CreateTabParams) (entity.BrowserTab, error) {
	return entity.BrowserTab{}, fmt.Errorf("create tab: %w", port.ErrUnsupported)
}

func (l *Launcher) GroupTabs(context.Context, entity.GroupID, ...entity.TabID) error {
	return fmt.Errorf("group tabs: %w", port.ErrUnsupported)
}

// Activations is closed immediately: the launcher never observes tabs.
func (l *Launcher) Activations() <-chan entity.TabActivation {
	return l.activations
}

func isGio(binary string) bool {
	n := len(binary)
	return n >= 3 && binary[n-3:] == "gio"
}
