package chrome

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/chromedp/cdproto/browser"
	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/target"
	"github.com/chromedp/chromedp"

	"github.com/bnema/localport/internal/logging"
)

// pageTarget is a top-level page as reported by the browser.
type pageTarget struct {
	ID       string
	WindowID string
	URL      string
}

// protocol is the subset of the DevTools protocol the host relies on.
type protocol interface {
	Pages(ctx context.Context) ([]pageTarget, error)
	Create(ctx context.Context, url string) (string, error)
	Activate(ctx context.Context, id string) error
	Navigate(ctx context.Context, id, url string) error
	Visible(ctx context.Context, id string) (bool, error)
	OnDestroyed(fn func(id string))
	Close() error
}

// devtools talks to a running Chromium over a remote debugging endpoint.
type devtools struct {
	browserCtx  context.Context
	cancelAlloc context.CancelFunc
	cancelCtx   context.CancelFunc
	timeout     time.Duration
}

func dial(ctx context.Context, endpoint string, timeout time.Duration) (*devtools, error) {
	log := logging.FromContext(ctx)

	// The allocator outlives ctx: it is torn down by Close.
	allocCtx, cancelAlloc := chromedp.NewRemoteAllocator(context.Background(), endpoint)
	browserCtx, cancelCtx := chromedp.NewContext(allocCtx)
	d := &devtools{
		browserCtx:  browserCtx,
		cancelAlloc: cancelAlloc,
		cancelCtx:   cancelCtx,
		timeout:     timeout,
	}

	// Targets allocates the browser connection without opening a tab. It must
	// run on browserCtx since the connection lives as long as that context.
	done := make(chan error, 1)
	go func() {
		_, err := chromedp.Targets(browserCtx)
		done <- err
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case err := <-done:
		if err != nil {
			_ = d.Close()
			return nil, fmt.Errorf("failed to connect to %s: %w", endpoint, err)
		}
	case <-timer.C:
		_ = d.Close()
		return nil, fmt.Errorf("failed to connect to %s: timed out after %s", endpoint, timeout)
	case <-ctx.Done():
		_ = d.Close()
		return nil, ctx.Err()
	}

	exec, cancel := d.executor(ctx)
	defer cancel()
	if err := target.SetDiscoverTargets(true).Do(exec); err != nil {
		_ = d.Close()
		return nil, fmt.Errorf("failed to enable target discovery: %w", err)
	}

	log.Debug().Str("endpoint", endpoint).Msg("connected to browser")
	return d, nil
}

func (d *devtools) executor(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	return cdp.WithExecutor(ctx, chromedp.FromContext(d.browserCtx).Browser), cancel
}

func (d *devtools) Pages(ctx context.Context) ([]pageTarget, error) {
	exec, cancel := d.executor(ctx)
	defer cancel()

	infos, err := target.GetTargets().Do(exec)
	if err != nil {
		return nil, fmt.Errorf("failed to list targets: %w", err)
	}

	pages := make([]pageTarget, 0, len(infos))
	for _, info := range infos {
		if info.Type != "page" || info.Subtype != "" {
			continue
		}
		windowID, _, err := browser.GetWindowForTarget().WithTargetID(info.TargetID).Do(exec)
		if err != nil {
			// The target may have closed between the two calls.
			logging.FromContext(ctx).Debug().Err(err).Str("target", string(info.TargetID)).Msg("skipping target without window")
			continue
		}
		pages = append(pages, pageTarget{
			ID:       string(info.TargetID),
			WindowID: strconv.FormatInt(int64(windowID), 10),
			URL:      info.URL,
		})
	}
	return pages, nil
}

func (d *devtools) Create(ctx context.Context, url string) (string, error) {
	exec, cancel := d.executor(ctx)
	defer cancel()

	id, err := target.CreateTarget(url).Do(exec)
	if err != nil {
		return "", fmt.Errorf("failed to create target: %w", err)
	}
	return string(id), nil
}

func (d *devtools) Activate(ctx context.Context, id string) error {
	exec, cancel := d.executor(ctx)
	defer cancel()

	if err := target.ActivateTarget(target.ID(id)).Do(exec); err != nil {
		return fmt.Errorf("failed to activate target %s: %w", id, err)
	}
	return nil
}

// Navigate attaches to the page, navigates, and detaches again without
// closing the tab.
func (d *devtools) Navigate(ctx context.Context, id, url string) error {
	log := logging.FromContext(ctx)

	tabCtx, cancelTab := chromedp.NewContext(d.browserCtx, chromedp.WithTargetID(target.ID(id)))
	defer func() {
		d.release(ctx, tabCtx)
		cancelTab()
	}()

	runCtx, cancelRun := context.WithTimeout(tabCtx, d.timeout)
	defer cancelRun()

	err := chromedp.Run(runCtx, chromedp.ActionFunc(func(ctx context.Context) error {
		_, _, errorText, _, err := page.Navigate(url).Do(ctx)
		if err != nil {
			return err
		}
		if errorText != "" {
			// Nothing listening on the port yet is a normal outcome.
			log.Debug().Str("url", url).Str("reason", errorText).Msg("page load failed")
		}
		return nil
	}))
	if err != nil {
		return fmt.Errorf("failed to navigate target %s: %w", id, err)
	}
	return nil
}

// Visible reports whether the page is the one shown in its window.
func (d *devtools) Visible(ctx context.Context, id string) (bool, error) {
	tabCtx, cancelTab := chromedp.NewContext(d.browserCtx, chromedp.WithTargetID(target.ID(id)))
	defer func() {
		d.release(ctx, tabCtx)
		cancelTab()
	}()

	runCtx, cancelRun := context.WithTimeout(tabCtx, d.timeout)
	defer cancelRun()

	var state string
	if err := chromedp.Run(runCtx, chromedp.Evaluate(`document.visibilityState`, &state)); err != nil {
		return false, fmt.Errorf("failed to read visibility of target %s: %w", id, err)
	}
	return state == "visible", nil
}

// release detaches the session so that cancelling tabCtx leaves the tab open.
func (d *devtools) release(ctx context.Context, tabCtx context.Context) {
	c := chromedp.FromContext(tabCtx)
	if c == nil || c.Target == nil {
		return
	}
	if sid := c.Target.SessionID; sid != "" {
		exec, cancel := d.executor(context.WithoutCancel(ctx))
		if err := target.DetachFromTarget().WithSessionID(sid).Do(exec); err != nil {
			logging.FromContext(ctx).Debug().Err(err).Msg("failed to detach from target")
		}
		cancel()
	}
	c.Target = nil
}

func (d *devtools) OnDestroyed(fn func(id string)) {
	chromedp.ListenBrowser(d.browserCtx, func(ev any) {
		if e, ok := ev.(*target.EventTargetDestroyed); ok {
			fn(string(e.TargetID))
		}
	})
}

func (d *devtools) Close() error {
	d.cancelCtx()
	d.cancelAlloc()
	if err := d.browserCtx.Err(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
