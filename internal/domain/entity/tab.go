package entity

import "sync"

// TabID identifies a browser tab within its host.
type TabID string

// WindowID identifies a browser window within its host.
type WindowID string

// GroupID identifies a tab group. Negative values mean "not grouped".
type GroupID int

// NoGroup marks a tab that belongs to no group.
const NoGroup GroupID = -1

// IsGrouped reports whether the id refers to an actual group.
func (g GroupID) IsGrouped() bool {
	return g >= 0
}

// BrowserTab is a host tab as seen by this application.
type BrowserTab struct {
	ID       TabID
	WindowID WindowID
	Index    int // Position in the window's tab strip (0-indexed)
	GroupID  GroupID
	URL      string
	Active   bool
}

// TabQuery filters tabs returned by a host.
type TabQuery struct {
	WindowID   WindowID // Empty matches every window
	ActiveOnly bool
}

// Matches reports whether tab satisfies the query.
func (q TabQuery) Matches(tab BrowserTab) bool {
	if q.WindowID != "" && tab.WindowID != q.WindowID {
		return false
	}
	if q.ActiveOnly && !tab.Active {
		return false
	}
	return true
}

// CreateTabParams describes a tab to open.
type CreateTabParams struct {
	WindowID WindowID
	Index    int
	URL      string // Empty opens a blank tab
}

// TabActivation is emitted by a host whenever the active tab changes.
type TabActivation struct {
	TabID    TabID
	WindowID WindowID
}

// SessionContext holds the transient state shared between omnibox events:
// the tab that navigation targets. It is refreshed on every activation.
type SessionContext struct {
	mu       sync.RWMutex
	tabID    TabID
	windowID WindowID
}

// NewSessionContext creates an empty session context.
func NewSessionContext() *SessionContext {
	return &SessionContext{}
}

// Activate records the newly active tab.
func (s *SessionContext) Activate(a TabActivation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tabID = a.TabID
	s.windowID = a.WindowID
}

// CurrentTab returns the last activated tab. ok is false before any activation.
func (s *SessionContext) CurrentTab() (id TabID, windowID WindowID, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tabID, s.windowID, s.tabID != ""
}
