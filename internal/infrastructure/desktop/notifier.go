package desktop

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sync"

	"github.com/bnema/localport/internal/application/port"
	"github.com/bnema/localport/internal/domain/entity"
	"github.com/bnema/localport/internal/logging"
)

// Notifier shows notifications with notify-send on Linux and osascript on
// macOS.
type Notifier struct {
	goos    string
	binary  string
	iconDir string
	run     runFunc
}

var _ port.Notifier = (*Notifier)(nil)

// NewNotifier detects the notification tool. Relative icon paths are
// resolved against iconDir.
func NewNotifier(iconDir string) *Notifier {
	n := &Notifier{goos: currentOS(), iconDir: iconDir, run: runCommand}
	switch n.goos {
	case "darwin":
		n.binary = lookPath("osascript")
	default:
		n.binary = lookPath("notify-send")
	}
	return n
}

// Available reports whether a notification tool was found.
func (n *Notifier) Available() bool {
	return n.binary != ""
}

func (n *Notifier) Notify(ctx context.Context, notification entity.Notification) error {
	if !n.Available() {
		return fmt.Errorf("desktop notifications: %w", port.ErrUnsupported)
	}

	title := sanitize(notification.Title)
	body := sanitize(notification.Message)

	var err error
	switch n.goos {
	case "darwin":
		script := fmt.Sprintf("display notification %q with title %q", body, title)
		err = n.run(ctx, n.binary, "-e", script)
	default:
		args := []string{"--app-name=localport"}
		if icon := n.iconPath(notification.IconURL); icon != "" {
			args = append(args, "--icon="+icon)
		}
		args = append(args, "--", title, body)
		err = n.run(ctx, n.binary, args...)
	}
	if err != nil {
		return fmt.Errorf("failed to show notification: %w", err)
	}

	logging.FromContext(ctx).Debug().Str("title", title).Msg("desktop notification sent")
	return nil
}

func (n *Notifier) iconPath(icon string) string {
	if icon == "" || filepath.IsAbs(icon) || n.iconDir == "" {
		return icon
	}
	return filepath.Join(n.iconDir, filepath.Clean(icon))
}

// ConsoleNotifier writes notifications as text lines. Used when desktop
// notifications are disabled or unavailable, and by the CLI.
type ConsoleNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

var _ port.Notifier = (*ConsoleNotifier)(nil)

// NewConsoleNotifier writes to w.
func NewConsoleNotifier(w io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{w: w}
}

func (c *ConsoleNotifier) Notify(ctx context.Context, notification entity.Notification) error {
	logging.FromContext(ctx).Warn().
		Str("title", notification.Title).
		Str("message", notification.Message).
		Msg("notification")

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, err := fmt.Fprintf(c.w, "%s %s\n", notification.Title, notification.Message); err != nil {
		return fmt.Errorf("failed to write notification: %w", err)
	}
	return nil
}

// FallbackNotifier tries primary and falls back to secondary on error.
type FallbackNotifier struct {
	primary   port.Notifier
	secondary port.Notifier
}

var _ port.Notifier = (*FallbackNotifier)(nil)

// NewFallbackNotifier chains two notifiers.
func NewFallbackNotifier(primary, secondary port.Notifier) *FallbackNotifier {
	return &FallbackNotifier{primary: primary, secondary: secondary}
}

func (f *FallbackNotifier) Notify(ctx context.Context, notification entity.Notification) error {
	err := f.primary.Notify(ctx, notification)
	if err == nil {
		return nil
	}
	logging.FromContext(ctx).Debug().Err(err).Msg("primary notifier failed, falling back")
	return f.secondary.Notify(ctx, notification)
}

// DisabledNotifier drops notifications, only logging them.
type DisabledNotifier struct{}

var _ port.Notifier = DisabledNotifier{}

func (DisabledNotifier) Notify(ctx context.Context, notification entity.Notification) error {
	logging.FromContext(ctx).Info().
		Str("title", notification.Title).
		Str("message", notification.Message).
		Msg("notification suppressed")
	return nil
}
