package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/localport/internal/application/port"
	"github.com/bnema/localport/internal/domain/entity"
)

func TestNew_StartsWithOneActiveBlankTab(t *testing.T) {
	h := New()

	tabs := h.Tabs()
	require.Len(t, tabs, 1)
	assert.Equal(t, entity.TabID("1"), tabs[0].ID)
	assert.Equal(t, "about:blank", tabs[0].URL)
	assert.True(t, tabs[0].Active)
	assert.Equal(t, entity.NoGroup, tabs[0].GroupID)

	win, err := h.CurrentWindow(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.WindowID("1"), win)
}

func TestUpdateTabURL_EmptyIDTargetsActiveTab(t *testing.T) {
	h := New()
	ctx := context.Background()

	require.NoError(t, h.UpdateTabURL(ctx, "", "https://localhost:8080"))

	active, err := h.QueryTabs(ctx, entity.TabQuery{ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "https://localhost:8080", active[0].URL)
}

func TestUpdateTabURL_UnknownTab(t *testing.T) {
	h := New()
	err := h.UpdateTabURL(context.Background(), "42", "https://localhost:1")
	assert.Error(t, err)
}

func TestUpdateTabURL_NoActiveTab(t *testing.T) {
	h := New()
	h.active = map[entity.WindowID]entity.TabID{}
	err := h.UpdateTabURL(context.Background(), "", "https://localhost:1")
	assert.ErrorIs(t, err, port.ErrNoActiveTab)
}

func TestCreateTab_InsertsAndShifts(t *testing.T) {
	h := New()
	ctx := context.Background()

	second, err := h.CreateTab(ctx, entity.CreateTabParams{WindowID: "1", Index: 1})
	require.NoError(t, err)
	third, err := h.CreateTab(ctx, entity.CreateTabParams{WindowID: "1", Index: 1, URL: "https://localhost:3000"})
	require.NoError(t, err)

	tabs := h.Tabs()
	require.Len(t, tabs, 3)
	assert.Equal(t, entity.TabID("1"), tabs[0].ID)
	assert.Equal(t, third.ID, tabs[1].ID)
	assert.Equal(t, second.ID, tabs[2].ID)
	assert.Equal(t, 2, tabs[2].Index)
	assert.True(t, tabs[1].Active)
	assert.Equal(t, "https://localhost:3000", tabs[1].URL)
	assert.Equal(t, "about:blank", tabs[2].URL)
}

func TestCreateTab_ClampsIndex(t *testing.T) {
	h := New()
	created, err := h.CreateTab(context.Background(), entity.CreateTabParams{Index: 99})
	require.NoError(t, err)
	assert.Equal(t, 1, created.Index)
	assert.Equal(t, entity.WindowID("1"), created.WindowID)
}

func TestCreateTab_EmitsActivation(t *testing.T) {
	h := New()
	created, err := h.CreateTab(context.Background(), entity.CreateTabParams{WindowID: "1", Index: 1})
	require.NoError(t, err)

	select {
	case a := <-h.Activations():
		assert.Equal(t, entity.TabActivation{TabID: created.ID, WindowID: "1"}, a)
	default:
		t.Fatal("expected an activation")
	}
}

func TestGroupTabs(t *testing.T) {
	h := New()
	ctx := context.Background()

	require.NoError(t, h.GroupTabs(ctx, 4, "1"))
	assert.Equal(t, entity.GroupID(4), h.Tabs()[0].GroupID)

	assert.Error(t, h.GroupTabs(ctx, 4, "1", "nope"))
	assert.Equal(t, entity.GroupID(4), h.Tabs()[0].GroupID)
}

func TestActivate(t *testing.T) {
	h := New()
	ctx := context.Background()
	created, err := h.CreateTab(ctx, entity.CreateTabParams{Index: 1})
	require.NoError(t, err)
	<-h.Activations()

	require.NoError(t, h.Activate("1"))
	a := <-h.Activations()
	assert.Equal(t, entity.TabID("1"), a.TabID)

	active, err := h.QueryTabs(ctx, entity.TabQuery{ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.NotEqual(t, created.ID, active[0].ID)

	assert.Error(t, h.Activate("nope"))
}

func TestClose_ClosesActivations(t *testing.T) {
	h := New()
	require.NoError(t, h.Close())
	require.NoError(t, h.Close())

	_, ok := <-h.Activations()
	assert.False(t, ok)

	// Emitting after close must not panic.
	require.NoError(t, h.Activate("1"))
}
