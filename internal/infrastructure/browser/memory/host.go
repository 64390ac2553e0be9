// Package memory provides an in-process tab host used by the interactive
// omnibox when no real browser is attached, and by tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/bnema/localport/internal/application/port"
	"github.com/bnema/localport/internal/domain/entity"
	"github.com/bnema/localport/internal/logging"
)

const (
	blankURL        = "about:blank"
	activationQueue = 16
)

type tab struct {
	id     entity.TabID
	window entity.WindowID
	index  int
	group  entity.GroupID
	url    string
}

// Host keeps tabs and windows in memory.
type Host struct {
	mu          sync.Mutex
	tabs        map[entity.TabID]*tab
	active      map[entity.WindowID]entity.TabID
	current     entity.WindowID
	nextID      int
	activations chan entity.TabActivation
	closed      bool
}

var _ port.TabManager = (*Host)(nil)

// New creates a host with one window holding one blank, active tab.
func New() *Host {
	h := &Host{
		tabs:        make(map[entity.TabID]*tab),
		active:      make(map[entity.WindowID]entity.TabID),
		current:     "1",
		activations: make(chan entity.TabActivation, activationQueue),
	}
	first := h.newTabLocked("1", 0, blankURL)
	h.active["1"] = first.id
	return h
}

func (h *Host) newTabLocked(window entity.WindowID, index int, url string) *tab {
	h.nextID++
	t := &tab{
		id:     entity.TabID(strconv.Itoa(h.nextID)),
		window: window,
		index:  index,
		group:  entity.NoGroup,
		url:    url,
	}
	h.tabs[t.id] = t
	return t
}

func (h *Host) snapshot(t *tab) entity.BrowserTab {
	return entity.BrowserTab{
		ID:       t.id,
		WindowID: t.window,
		Index:    t.index,
		GroupID:  t.group,
		URL:      t.url,
		Active:   h.active[t.window] == t.id,
	}
}

// CurrentWindow returns the focused window.
func (h *Host) CurrentWindow(_ context.Context) (entity.WindowID, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current, nil
}

// QueryTabs lists tabs matching q ordered by window then index.
func (h *Host) QueryTabs(_ context.Context, q entity.TabQuery) ([]entity.BrowserTab, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.queryLocked(q), nil
}

func (h *Host) queryLocked(q entity.TabQuery) []entity.BrowserTab {
	out := make([]entity.BrowserTab, 0, len(h.tabs))
	for _, t := range h.tabs {
		bt := h.snapshot(t)
		if q.Matches(bt) {
			out = append(out, bt)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].WindowID != out[j].WindowID {
			return out[i].WindowID < out[j].WindowID
		}
		return out[i].Index < out[j].Index
	})
	return out
}

// UpdateTabURL navigates a tab. An empty id targets the active tab of the
// current window.
func (h *Host) UpdateTabURL(ctx context.Context, id entity.TabID, url string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if id == "" {
		id = h.active[h.current]
		if id == "" {
			return port.ErrNoActiveTab
		}
	}
	t, ok := h.tabs[id]
	if !ok {
		return fmt.Errorf("unknown tab %q", id)
	}
	t.url = url
	logging.FromContext(ctx).Debug().Str("tab", string(id)).Str("url", url).Msg("tab navigated")
	return nil
}

// CreateTab inserts a tab at params.Index, shifting later tabs right. The new
// tab becomes active.
func (h *Host) CreateTab(_ context.Context, params entity.CreateTabParams) (entity.BrowserTab, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	window := params.WindowID
	if window == "" {
		window = h.current
	}
	count := 0
	for _, t := range h.tabs {
		if t.window == window {
			count++
		}
	}
	index := params.Index
	if index < 0 || index > count {
		index = count
	}
	for _, t := range h.tabs {
		if t.window == window && t.index >= index {
			t.index++
		}
	}

	url := params.URL
	if url == "" {
		url = blankURL
	}
	t := h.newTabLocked(window, index, url)
	h.active[window] = t.id
	h.current = window
	h.emitLocked(entity.TabActivation{TabID: t.id, WindowID: window})
	return h.snapshot(t), nil
}

// GroupTabs assigns tabs to group.
func (h *Host) GroupTabs(_ context.Context, group entity.GroupID, ids ...entity.TabID) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, id := range ids {
		if _, ok := h.tabs[id]; !ok {
			return fmt.Errorf("unknown tab %q", id)
		}
	}
	for _, id := range ids {
		h.tabs[id].group = group
	}
	return nil
}

// Activate makes id the active tab of its window and focuses that window.
func (h *Host) Activate(id entity.TabID) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	t, ok := h.tabs[id]
	if !ok {
		return fmt.Errorf("unknown tab %q", id)
	}
	h.active[t.window] = id
	h.current = t.window
	h.emitLocked(entity.TabActivation{TabID: id, WindowID: t.window})
	return nil
}

// Tabs returns every tab ordered by window then index.
func (h *Host) Tabs() []entity.BrowserTab {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.queryLocked(entity.TabQuery{})
}

// Activations delivers active-tab changes. Events are dropped when nobody
// drains the channel.
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

// Close closes the activation channel.
func (h *Host) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.closed {
		h.closed = true
		close(h.activations)
	}
	return nil
}
