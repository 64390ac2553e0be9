package chrome

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/localport/internal/domain/entity"
	"github.com/bnema/localport/internal/logging"
)

type fakeProtocol struct {
	mu         sync.Mutex
	pages      []pageTarget
	nextID     int
	navigated  map[string]string
	activated  []string
	destroyed  func(id string)
	pagesErr   error
	createErr  error
	navigateFn func(id, url string) error
	visible    map[string]bool
	visibleErr error
	probed     []string
	closed     bool
}

func newFakeProtocol(pages ...pageTarget) *fakeProtocol {
	return &fakeProtocol{pages: pages, nextID: 100, navigated: map[string]string{}}
}

func (f *fakeProtocol) Pages(context.Context) ([]pageTarget, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.pagesErr != nil {
		return nil, f.pagesErr
	}
	return append([]pageTarget(nil), f.pages...), nil
}

func (f *fakeProtocol) Create(_ context.Context, url string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return "", f.createErr
	}
	f.nextID++
	id := strconv.Itoa(f.nextID)
	win := "1"
	if len(f.pages) > 0 {
		win = f.pages[0].WindowID
	}
	f.pages = append(f.pages, pageTarget{ID: id, WindowID: win, URL: url})
	return id, nil
}

func (f *fakeProtocol) Activate(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.activated = append(f.activated, id)
	return nil
}

func (f *fakeProtocol) Navigate(_ context.Context, id, url string) error {
	if f.navigateFn != nil {
		if err := f.navigateFn(id, url); err != nil {
			return err
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.navigated[id] = url
	for i := range f.pages {
		if f.pages[i].ID == id {
			f.pages[i].URL = url
		}
	}
	return nil
}

func (f *fakeProtocol) Visible(_ context.Context, id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.probed = append(f.probed, id)
	if f.visibleErr != nil {
		return false, f.visibleErr
	}
	return f.visible[id], nil
}

func (f *fakeProtocol) OnDestroyed(fn func(id string)) {
	f.destroyed = fn
}

func (f *fakeProtocol) Close() error {
	f.closed = true
	return nil
}

func (f *fakeProtocol) destroy(id string) {
	f.mu.Lock()
	for i := range f.pages {
		if f.pages[i].ID == id {
			f.pages = append(f.pages[:i], f.pages[i+1:]...)
			break
		}
	}
	f.mu.Unlock()
	f.destroyed(id)
}

func testCtx() context.Context {
	return logging.WithContext(context.Background(), logging.NewFromConfigValues("debug", "console"))
}

func twoWindows() *fakeProtocol {
	return newFakeProtocol(
		pageTarget{ID: "A", WindowID: "2", URL: "https://example.com"},
		pageTarget{ID: "B", WindowID: "10", URL: "about:blank"},
		pageTarget{ID: "C", WindowID: "2", URL: "https://localhost:3000"},
	)
}

func TestQueryTabs_OrdersByWindowThenIndex(t *testing.T) {
	h := newHost(twoWindows())

	tabs, err := h.QueryTabs(testCtx(), entity.TabQuery{})
	require.NoError(t, err)
	require.Len(t, tabs, 3)

	assert.Equal(t, entity.TabID("A"), tabs[0].ID)
	assert.Equal(t, 0, tabs[0].Index)
	assert.True(t, tabs[0].Active)
	assert.Equal(t, entity.TabID("C"), tabs[1].ID)
	assert.Equal(t, 1, tabs[1].Index)
	assert.False(t, tabs[1].Active)
	assert.Equal(t, entity.TabID("B"), tabs[2].ID)
	assert.Equal(t, entity.WindowID("10"), tabs[2].WindowID)
	assert.Equal(t, entity.NoGroup, tabs[2].GroupID)
}

func TestQueryTabs_FiltersByQuery(t *testing.T) {
	h := newHost(twoWindows())

	tabs, err := h.QueryTabs(testCtx(), entity.TabQuery{WindowID: "10", ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, tabs, 1)
	assert.Equal(t, entity.TabID("B"), tabs[0].ID)
}

func TestQueryTabs_ListError(t *testing.T) {
	p := twoWindows()
	p.pagesErr = errors.New("socket closed")
	h := newHost(p)

	_, err := h.QueryTabs(testCtx(), entity.TabQuery{})
	assert.ErrorContains(t, err, "socket closed")
}

func TestCurrentWindow(t *testing.T) {
	h := newHost(twoWindows())
	win, err := h.CurrentWindow(testCtx())
	require.NoError(t, err)
	assert.Equal(t, entity.WindowID("2"), win)

	empty := newHost(newFakeProtocol())
	_, err = empty.CurrentWindow(testCtx())
	assert.ErrorIs(t, err, ErrNoWindows)
}

func TestUpdateTabURL_EmptyIDUsesActiveTab(t *testing.T) {
	p := twoWindows()
	h := newHost(p)

	require.NoError(t, h.UpdateTabURL(testCtx(), "", "https://localhost:8080"))
	assert.Equal(t, "https://localhost:8080", p.navigated["A"])
}

func TestUpdateTabURL_ExplicitID(t *testing.T) {
	p := twoWindows()
	h := newHost(p)

	require.NoError(t, h.UpdateTabURL(testCtx(), "C", "https://localhost:9000"))
	assert.Equal(t, "https://localhost:9000", p.navigated["C"])
}

func TestUpdateTabURL_NoWindows(t *testing.T) {
	h := newHost(newFakeProtocol())
	err := h.UpdateTabURL(testCtx(), "", "https://localhost:1")
	assert.ErrorIs(t, err, ErrNoWindows)
}

func TestUpdateTabURL_NavigateError(t *testing.T) {
	p := twoWindows()
	p.navigateFn = func(string, string) error { return errors.New("detached") }
	h := newHost(p)

	err := h.UpdateTabURL(testCtx(), "A", "https://localhost:1")
	assert.ErrorContains(t, err, "detached")
}

func TestCreateTab_InsertsAtIndexAndActivates(t *testing.T) {
	p := twoWindows()
	h := newHost(p)
	ctx := testCtx()

	created, err := h.CreateTab(ctx, entity.CreateTabParams{WindowID: "2", Index: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, created.Index)
	assert.True(t, created.Active)
	assert.Equal(t, "about:blank", created.URL)

	select {
	case a := <-h.Activations():
		assert.Equal(t, entity.TabActivation{TabID: created.ID, WindowID: "2"}, a)
	default:
		t.Fatal("expected an activation")
	}

	tabs, err := h.QueryTabs(ctx, entity.TabQuery{WindowID: "2"})
	require.NoError(t, err)
	require.Len(t, tabs, 3)
	assert.Equal(t, []entity.TabID{"A", created.ID, "C"}, []entity.TabID{tabs[0].ID, tabs[1].ID, tabs[2].ID})
	assert.True(t, tabs[1].Active)
}

func TestSync_VisiblePageBecomesActive(t *testing.T) {
	p := twoWindows()
	p.visible = map[string]bool{"C": true}
	h := newHost(p)
	ctx := testCtx()

	tabs, err := h.QueryTabs(ctx, entity.TabQuery{WindowID: "2"})
	require.NoError(t, err)
	require.Len(t, tabs, 2)
	assert.False(t, tabs[0].Active)
	assert.True(t, tabs[1].Active)

	require.NoError(t, h.UpdateTabURL(ctx, "", "https://localhost:8080"))
	assert.Equal(t, "https://localhost:8080", p.navigated["C"])
}

func TestSync_ProbesEachWindowOnce(t *testing.T) {
	p := twoWindows()
	h := newHost(p)
	ctx := testCtx()

	_, err := h.QueryTabs(ctx, entity.TabQuery{})
	require.NoError(t, err)
	first := len(p.probed)
	assert.ElementsMatch(t, []string{"A", "C", "B"}, p.probed)

	_, err = h.QueryTabs(ctx, entity.TabQuery{})
	require.NoError(t, err)
	assert.Len(t, p.probed, first)
}

func TestSync_VisibilityErrorFallsBackToFirstTab(t *testing.T) {
	p := twoWindows()
	p.visibleErr = errors.New("detached")
	h := newHost(p)

	tabs, err := h.QueryTabs(testCtx(), entity.TabQuery{WindowID: "2", ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, tabs, 1)
	assert.Equal(t, entity.TabID("A"), tabs[0].ID)
}

func TestCreateTab_ListErrorCreatesNothing(t *testing.T) {
	p := twoWindows()
	p.pagesErr = errors.New("gone")
	h := newHost(p)

	_, err := h.CreateTab(testCtx(), entity.CreateTabParams{WindowID: "2", Index: 1})
	assert.ErrorContains(t, err, "gone")
	assert.Equal(t, 100, p.nextID)
}

func TestCreateTab_Error(t *testing.T) {
	p := twoWindows()
	p.createErr = errors.New("refused")
	h := newHost(p)

	_, err := h.CreateTab(testCtx(), entity.CreateTabParams{Index: 0})
	assert.ErrorContains(t, err, "refused")
}

func TestGroupTabs(t *testing.T) {
	h := newHost(twoWindows())
	ctx := testCtx()
	_, err := h.QueryTabs(ctx, entity.TabQuery{})
	require.NoError(t, err)

	require.NoError(t, h.GroupTabs(ctx, 3, "A", "C"))
	assert.Error(t, h.GroupTabs(ctx, 3, "Z"))

	tabs, err := h.QueryTabs(ctx, entity.TabQuery{WindowID: "2"})
	require.NoError(t, err)
	for _, tab := range tabs {
		assert.Equal(t, entity.GroupID(3), tab.GroupID)
	}
}

func TestActivate(t *testing.T) {
	p := twoWindows()
	h := newHost(p)
	ctx := testCtx()

	require.NoError(t, h.Activate(ctx, "C"))
	assert.Equal(t, []string{"C"}, p.activated)

	a := <-h.Activations()
	assert.Equal(t, entity.TabActivation{TabID: "C", WindowID: "2"}, a)

	active, err := h.QueryTabs(ctx, entity.TabQuery{WindowID: "2", ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, entity.TabID("C"), active[0].ID)

	require.NoError(t, h.Activate(ctx, "B"))
	win, err := h.CurrentWindow(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.WindowID("10"), win)
}

func TestDestroyedTabsArePruned(t *testing.T) {
	p := twoWindows()
	h := newHost(p)
	ctx := testCtx()

	require.NoError(t, h.Activate(ctx, "C"))
	require.NoError(t, h.GroupTabs(ctx, 1, "C"))
	p.destroy("C")

	tabs, err := h.QueryTabs(ctx, entity.TabQuery{WindowID: "2"})
	require.NoError(t, err)
	require.Len(t, tabs, 1)
	assert.Equal(t, entity.TabID("A"), tabs[0].ID)
	assert.True(t, tabs[0].Active)
	assert.Error(t, h.GroupTabs(ctx, 1, "C"))
}

func TestClose(t *testing.T) {
	p := twoWindows()
	h := newHost(p)

	require.NoError(t, h.Close())
	require.NoError(t, h.Close())
	assert.True(t, p.closed)

	_, ok := <-h.Activations()
	assert.False(t, ok)
}
