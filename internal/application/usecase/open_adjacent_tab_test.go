package usecase_test

import (
	"errors"
	"testing"

	"github.com/bnema/localport/internal/application/port"
	portmocks "github.com/bnema/localport/internal/application/port/mocks"
	"github.com/bnema/localport/internal/application/usecase"
	"github.com/bnema/localport/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOpenAdjacentTab_UngroupedTab(t *testing.T) {
	ctx := testContext()
	tabs := portmocks.NewMockTabManager(t)

	tabs.EXPECT().CurrentWindow(mock.Anything).Return(entity.WindowID("1"), nil)
	tabs.EXPECT().QueryTabs(mock.Anything, entity.TabQuery{WindowID: "1", ActiveOnly: true}).
		Return([]entity.BrowserTab{{ID: "5", WindowID: "1", Index: 2, GroupID: entity.NoGroup, Active: true}}, nil)
	tabs.EXPECT().CreateTab(mock.Anything, entity.CreateTabParams{WindowID: "1", Index: 3}).
		Return(entity.BrowserTab{ID: "9", WindowID: "1", Index: 3, GroupID: entity.NoGroup}, nil)

	out, err := usecase.NewOpenAdjacentTabUseCase(tabs).Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.TabID("9"), out.Tab.ID)
	assert.Equal(t, 3, out.Tab.Index)
	assert.False(t, out.Grouped)
	tabs.AssertNotCalled(t, "GroupTabs", mock.Anything, mock.Anything, mock.Anything)
}

func TestOpenAdjacentTab_JoinsActiveGroup(t *testing.T) {
	ctx := testContext()
	tabs := portmocks.NewMockTabManager(t)

	tabs.EXPECT().CurrentWindow(mock.Anything).Return(entity.WindowID("1"), nil)
	tabs.EXPECT().QueryTabs(mock.Anything, mock.Anything).
		Return([]entity.BrowserTab{{ID: "5", WindowID: "1", Index: 0, GroupID: 0, Active: true}}, nil)
	tabs.EXPECT().CreateTab(mock.Anything, entity.CreateTabParams{WindowID: "1", Index: 1}).
		Return(entity.BrowserTab{ID: "9", WindowID: "1", Index: 1, GroupID: entity.NoGroup}, nil)
	tabs.EXPECT().GroupTabs(mock.Anything, entity.GroupID(0), entity.TabID("9")).Return(nil)

	out, err := usecase.NewOpenAdjacentTabUseCase(tabs).Execute(ctx)
	require.NoError(t, err)
	assert.True(t, out.Grouped)
	assert.Equal(t, entity.GroupID(0), out.Tab.GroupID)
}

func TestOpenAdjacentTab_NoActiveTab(t *testing.T) {
	ctx := testContext()
	tabs := portmocks.NewMockTabManager(t)

	tabs.EXPECT().CurrentWindow(mock.Anything).Return(entity.WindowID("1"), nil)
	tabs.EXPECT().QueryTabs(mock.Anything, mock.Anything).Return(nil, nil)

	_, err := usecase.NewOpenAdjacentTabUseCase(tabs).Execute(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, port.ErrNoActiveTab))
}

func TestOpenAdjacentTab_HostErrorsPropagate(t *testing.T) {
	ctx := testContext()
	tabs := portmocks.NewMockTabManager(t)

	tabs.EXPECT().CurrentWindow(mock.Anything).Return(entity.WindowID(""), errors.New("browser gone"))

	_, err := usecase.NewOpenAdjacentTabUseCase(tabs).Execute(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get current window")
}
