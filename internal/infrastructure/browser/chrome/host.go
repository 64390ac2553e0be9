// Package chrome drives a Chromium-based browser over the DevTools protocol.
//
// The protocol has no notion of tab strip position, tab groups, or focus
// changes. The host therefore keeps that state itself: tabs it learns about
// are appended to their window's strip, tabs it creates are inserted at the
// requested index, and groups live only in this process. The active tab of a
// window is found once by asking each page for its visibility state, and is
// tracked from then on.
package chrome

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/bnema/localport/internal/application/port"
	"github.com/bnema/localport/internal/domain/entity"
	"github.com/bnema/localport/internal/logging"
)

const (
	blankURL        = "about:blank"
	activationQueue = 16
)

// ErrNoWindows is returned when the browser has no open page.
var ErrNoWindows = errors.New("browser has no open windows")

// Config holds the remote debugging endpoint settings.
type Config struct {
	Endpoint string
	Timeout  time.Duration
}

// Host implements port.TabManager on top of a DevTools connection.
type Host struct {
	proto protocol

	mu      sync.Mutex
	order   map[entity.WindowID][]entity.TabID
	window  map[entity.TabID]entity.WindowID
	urls    map[entity.TabID]string
	groups  map[entity.TabID]entity.GroupID
	active  map[entity.WindowID]entity.TabID
	probed  map[entity.WindowID]bool
	focused entity.WindowID

	activations chan entity.TabActivation
	closed      bool
}

var _ port.TabManager = (*Host)(nil)

// Connect dials the browser and returns a host bound to it.
func Connect(ctx context.Context, cfg Config) (*Host, error) {
	d, err := dial(ctx, cfg.Endpoint, cfg.Timeout)
	if err != nil {
		return nil, err
	}
	return newHost(d), nil
}

func newHost(p protocol) *Host {
	h := &Host{
		proto:       p,
		order:       make(map[entity.WindowID][]entity.TabID),
		window:      make(map[entity.TabID]entity.WindowID),
		urls:        make(map[entity.TabID]string),
		groups:      make(map[entity.TabID]entity.GroupID),
		active:      make(map[entity.WindowID]entity.TabID),
		probed:      make(map[entity.WindowID]bool),
		activations: make(chan entity.TabActivation, activationQueue),
	}
	p.OnDestroyed(func(id string) {
		h.mu.Lock()
		defer h.mu.Unlock()
		h.forgetLocked(entity.TabID(id))
	})
	return h
}

// sync reconciles local bookkeeping with the browser's page list, then looks
// up the visible tab of windows seen for the first time.
func (h *Host) sync(ctx context.Context) error {
	pages, err := h.proto.Pages(ctx)
	if err != nil {
		return err
	}
	h.probeActive(ctx, h.reconcile(pages))
	return nil
}

// reconcile applies pages and returns the strips of windows whose active tab
// has not been probed yet.
func (h *Host) reconcile(pages []pageTarget) map[entity.WindowID][]entity.TabID {
	h.mu.Lock()
	defer h.mu.Unlock()

	seen := make(map[entity.TabID]entity.WindowID, len(pages))
	for _, p := range pages {
		id := entity.TabID(p.ID)
		win := entity.WindowID(p.WindowID)
		seen[id] = win
		h.urls[id] = p.URL
		if prev, ok := h.window[id]; ok && prev == win {
			continue
		}
		if _, ok := h.window[id]; ok {
			h.removeFromStripLocked(id)
		}
		h.window[id] = win
		h.order[win] = append(h.order[win], id)
	}
	for id := range h.window {
		if _, ok := seen[id]; !ok {
			h.forgetLocked(id)
		}
	}

	var pending map[entity.WindowID][]entity.TabID
	for win, strip := range h.order {
		if _, ok := h.active[win]; ok || h.probed[win] {
			continue
		}
		h.probed[win] = true
		if pending == nil {
			pending = make(map[entity.WindowID][]entity.TabID)
		}
		pending[win] = slices.Clone(strip)
	}
	return pending
}

// probeActive records the first visible tab of each window as its active tab.
// The lock is not held while the browser is queried.
func (h *Host) probeActive(ctx context.Context, strips map[entity.WindowID][]entity.TabID) {
	log := logging.FromContext(ctx)
	for win, strip := range strips {
		for _, id := range strip {
			visible, err := h.proto.Visible(ctx, string(id))
			if err != nil {
				log.Debug().Err(err).Str("tab", string(id)).Msg("failed to read page visibility")
				continue
			}
			if !visible {
				continue
			}
			h.mu.Lock()
			if _, ok := h.active[win]; !ok && h.window[id] == win {
				h.active[win] = id
			}
			h.mu.Unlock()
			break
		}
	}
}

func (h *Host) removeFromStripLocked(id entity.TabID) {
	win, ok := h.window[id]
	if !ok {
		return
	}
	strip := h.order[win]
	for i, tid := range strip {
		if tid == id {
			h.order[win] = append(strip[:i:i], strip[i+1:]...)
			break
		}
	}
	if len(h.order[win]) == 0 {
		delete(h.order, win)
		delete(h.probed, win)
	}
	if h.active[win] == id {
		delete(h.active, win)
		delete(h.probed, win)
	}
}

func (h *Host) forgetLocked(id entity.TabID) {
	h.removeFromStripLocked(id)
	delete(h.window, id)
	delete(h.urls, id)
	delete(h.groups, id)
}

// currentWindowLocked returns the focused window, falling back to the window
// of the first known page.
func (h *Host) currentWindowLocked() (entity.WindowID, error) {
	if _, ok := h.order[h.focused]; ok {
		return h.focused, nil
	}
	var first entity.WindowID
	for win := range h.order {
		if first == "" || compareWindows(win, first) < 0 {
			first = win
		}
	}
	if first == "" {
		return "", ErrNoWindows
	}
	return first, nil
}

// activeLocked returns the active tab of win, falling back to its first tab
// when no page reported itself visible.
func (h *Host) activeLocked(win entity.WindowID) (entity.TabID, bool) {
	if id, ok := h.active[win]; ok {
		return id, true
	}
	strip := h.order[win]
	if len(strip) == 0 {
		return "", false
	}
	return strip[0], true
}

// CurrentWindow returns the focused window.
func (h *Host) CurrentWindow(ctx context.Context) (entity.WindowID, error) {
	if err := h.sync(ctx); err != nil {
		return "", err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.currentWindowLocked()
}

// QueryTabs lists tabs matching q ordered by window then index.
func (h *Host) QueryTabs(ctx context.Context, q entity.TabQuery) ([]entity.BrowserTab, error) {
	if err := h.sync(ctx); err != nil {
		return nil, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	windows := make([]entity.WindowID, 0, len(h.order))
	for win := range h.order {
		windows = append(windows, win)
	}
	slices.SortFunc(windows, compareWindows)

	var out []entity.BrowserTab
	for _, win := range windows {
		active, _ := h.activeLocked(win)
		for i, id := range h.order[win] {
			group, ok := h.groups[id]
			if !ok {
				group = entity.NoGroup
			}
			tab := entity.BrowserTab{
				ID:       id,
				WindowID: win,
				Index:    i,
				GroupID:  group,
				URL:      h.urls[id],
				Active:   id == active,
			}
			if q.Matches(tab) {
				out = append(out, tab)
			}
		}
	}
	return out, nil
}

// UpdateTabURL navigates a tab. An empty id targets the active tab of the
// current window.
func (h *Host) UpdateTabURL(ctx context.Context, id entity.TabID, url string) error {
	if id == "" {
		if err := h.sync(ctx); err != nil {
			return err
		}
		h.mu.Lock()
		win, err := h.currentWindowLocked()
		if err == nil {
			var ok bool
			if id, ok = h.activeLocked(win); !ok {
				err = port.ErrNoActiveTab
			}
		}
		h.mu.Unlock()
		if err != nil {
			return err
		}
	}

	if err := h.proto.Navigate(ctx, string(id), url); err != nil {
		return err
	}

	h.mu.Lock()
	if _, ok := h.window[id]; ok {
		h.urls[id] = url
	}
	h.mu.Unlock()

	logging.FromContext(ctx).Debug().Str("tab", string(id)).Str("url", url).Msg("tab navigated")
	return nil
}

// CreateTab opens a tab and records it at params.Index of its window. The
// browser decides which window receives it; the bookkeeping follows the
// browser on the next sync.
func (h *Host) CreateTab(ctx context.Context, params entity.CreateTabParams) (entity.BrowserTab, error) {
	url := params.URL
	if url == "" {
		url = blankURL
	}

	// The index refers to the current strip, which must be known first.
	if err := h.sync(ctx); err != nil {
		return entity.BrowserTab{}, err
	}

	raw, err := h.proto.Create(ctx, url)
	if err != nil {
		return entity.BrowserTab{}, err
	}
	id := entity.TabID(raw)

	h.mu.Lock()
	win := params.WindowID
	if win == "" {
		if win, err = h.currentWindowLocked(); err != nil {
			h.mu.Unlock()
			return entity.BrowserTab{}, err
		}
	}
	h.removeFromStripLocked(id)
	strip := h.order[win]
	index := params.Index
	if index < 0 || index > len(strip) {
		index = len(strip)
	}
	strip = append(strip, "")
	copy(strip[index+1:], strip[index:])
	strip[index] = id
	h.order[win] = strip
	h.window[id] = win
	h.urls[id] = url
	h.active[win] = id
	h.focused = win
	h.emitLocked(entity.TabActivation{TabID: id, WindowID: win})
	h.mu.Unlock()

	return entity.BrowserTab{
		ID:       id,
		WindowID: win,
		Index:    index,
		GroupID:  entity.NoGroup,
		URL:      url,
		Active:   true,
	}, nil
}

// GroupTabs assigns tabs to group.
func (h *Host) GroupTabs(_ context.Context, group entity.GroupID, ids ...entity.TabID) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, id := range ids {
		if _, ok := h.window[id]; !ok {
			return fmt.Errorf("unknown tab %q", id)
		}
	}
	for _, id := range ids {
		h.groups[id] = group
	}
	return nil
}

// Activate brings id to the front and reports it as the active tab.
func (h *Host) Activate(ctx context.Context, id entity.TabID) error {
	if err := h.proto.Activate(ctx, string(id)); err != nil {
		return err
	}
	if err := h.sync(ctx); err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	win, ok := h.window[id]
	if !ok {
		return fmt.Errorf("unknown tab %q", id)
	}
	h.active[win] = id
	h.focused = win
	h.emitLocked(entity.TabActivation{TabID: id, WindowID: win})
	return nil
}

// Activations delivers active-tab changes made through this host.
func (h *Host) Activations() <-chan entity.TabActivation {
	return h.activations
}

func (h *Host) emitLocked(a entity.TabActivation) {
	if h.closed {
		return
	}
	select {
	case h.activations <- a:
	default:
	}
}

// Close disconnects from the browser. Open tabs are left alone.
func (h *Host) Close() error {
	h.mu.Lock()
	if !h.closed {
		h.closed = true
		close(h.activations)
	}
	h.mu.Unlock()
	return h.proto.Close()
}

// compareWindows orders numeric window ids numerically.
func compareWindows(a, b entity.WindowID) int {
	if c := cmp.Compare(len(a), len(b)); c != 0 {
		return c
	}
	return cmp.Compare(a, b)
}
