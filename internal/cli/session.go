package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/localport/internal/application/dispatcher"
	"github.com/bnema/localport/internal/application/port"
	"github.com/bnema/localport/internal/application/usecase"
	"github.com/bnema/localport/internal/infrastructure/browser/chrome"
	"github.com/bnema/localport/internal/infrastructure/browser/memory"
	"github.com/bnema/localport/internal/infrastructure/config"
	"github.com/bnema/localport/internal/infrastructure/desktop"
	"github.com/bnema/localport/internal/logging"
)

// SessionOptions selects the adapters behind one omnibox session.
type SessionOptions struct {
	// Sink receives suggestions. Required.
	Sink port.SuggestionSink
	// Notifier overrides the notifier built from config.
	Notifier port.Notifier
	// Backend overrides browser.backend from config.
	Backend config.BrowserBackend
}

// Session is the event loop with its controllers and host adapters.
type Session struct {
	Omnibox  *usecase.OmniboxUseCase
	Adjacent *usecase.OpenAdjacentTabUseCase
	Loop     *dispatcher.Loop
	Tabs     port.TabManager

	closers []io.Closer
}

// NewSession connects to the tab host and builds the event loop.
func (a *App) NewSession(ctx context.Context, opts SessionOptions) (*Session, error) {
	if opts.Sink == nil {
		return nil, errors.New("session needs a suggestion sink")
	}
	log := logging.FromContext(ctx)

	backend := opts.Backend
	if backend == "" {
		backend = a.Config.Browser.Backend
	}

	s := &Session{}
	tabs, err := a.newTabManager(ctx, backend)
	if err != nil {
		return nil, err
	}
	s.Tabs = tabs
	if c, ok := tabs.(io.Closer); ok {
		s.closers = append(s.closers, c)
	}

	notifier := opts.Notifier
	if notifier == nil {
		notifier = a.newNotifier()
	}

	s.Omnibox = usecase.NewOmniboxUseCase(a.History, tabs, notifier, opts.Sink, usecase.OmniboxConfig{
		Scheme:           a.Config.Omnibox.Scheme,
		Host:             a.Config.Omnibox.Host,
		NotificationIcon: a.Config.Notifications.Icon,
	})
	s.Adjacent = usecase.NewOpenAdjacentTabUseCase(tabs)
	s.Loop = dispatcher.New(s.Omnibox, s.Adjacent, tabs.Activations(), dispatcher.Config{})

	log.Debug().Str("backend", string(backend)).Msg("omnibox session ready")
	return s, nil
}

func (a *App) newTabManager(ctx context.Context, backend config.BrowserBackend) (port.TabManager, error) {
	switch backend {
	case config.BrowserBackendMemory:
		return memory.New(), nil
	case config.BrowserBackendSystem:
		return desktop.NewLauncher(), nil
	case config.BrowserBackendCDP, "":
		host, err := chrome.Connect(ctx, chrome.Config{
			Endpoint: a.Config.Browser.CDPURL,
			Timeout:  a.Config.Browser.Timeout(),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to browser (is it running with --remote-debugging-port?): %w", err)
		}
		return host, nil
	default:
		return nil, fmt.Errorf("unknown browser backend %q", backend)
	}
}

func (a *App) newNotifier() port.Notifier {
	n := a.Config.Notifications
	if !n.Enabled {
		return desktop.DisabledNotifier{}
	}
	console := desktop.NewConsoleNotifier(os.Stderr)
	if !n.Desktop {
		return console
	}
	iconDir, _ := config.GetConfigDir()
	return desktop.NewFallbackNotifier(desktop.NewNotifier(iconDir), console)
}

// Close disconnects the tab host.
func (s *Session) Close() error {
	var errs []error
	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Run starts the event loop, calls fn, and stops the loop once fn returns.
func (s *Session) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	loopCtx, stop := context.WithCancel(ctx)
	defer stop()

	g, gctx := errgroup.WithContext(loopCtx)
	g.Go(func() error { return s.Loop.Run(gctx) })

	fnErr := fn(ctx)
	stop()
	loopErr := g.Wait()

	if fnErr != nil {
		return fnErr
	}
	return loopErr
}
