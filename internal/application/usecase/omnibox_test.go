package usecase_test

import (
	"context"
	"errors"
	"testing"

	portmocks "github.com/bnema/localport/internal/application/port/mocks"
	"github.com/bnema/localport/internal/application/usecase"
	"github.com/bnema/localport/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type omniboxFixture struct {
	store    *memoryStore
	tabs     *portmocks.MockTabManager
	notifier *portmocks.MockNotifier
	sink     *portmocks.MockSuggestionSink
	uc       *usecase.OmniboxUseCase
}

func newOmniboxFixture(t *testing.T, ports ...entity.Port) *omniboxFixture {
	t.Helper()
	f := &omniboxFixture{
		store:    newMemoryStore(ports...),
		tabs:     portmocks.NewMockTabManager(t),
		notifier: portmocks.NewMockNotifier(t),
		sink:     portmocks.NewMockSuggestionSink(t),
	}
	history := usecase.NewPortHistoryUseCase(f.store, 0)
	f.uc = usecase.NewOmniboxUseCase(history, f.tabs, f.notifier, f.sink, usecase.OmniboxConfig{})
	return f
}

func TestOmnibox_InputEntered_EmptyStoreRecordsAndNavigates(t *testing.T) {
	ctx := testContext()
	f := newOmniboxFixture(t)
	f.uc.TabActivated(ctx, entity.TabActivation{TabID: "12", WindowID: "1"})

	f.tabs.EXPECT().UpdateTabURL(mock.Anything, entity.TabID("12"), "https://localhost:8080").Return(nil)

	out, err := f.uc.InputEntered(ctx, "8080")
	require.NoError(t, err)
	require.NoError(t, out.Invalid)

	assert.Equal(t, entity.Port(8080), out.Port)
	assert.Equal(t, "https://localhost:8080", out.URL)
	assert.True(t, out.Recorded)
	assert.False(t, out.FromSuggestion)
	assert.Equal(t, []entity.Port{8080}, f.store.ports(t))
}

func TestOmnibox_InputEntered_FirstSuggestionWins(t *testing.T) {
	ctx := testContext()
	f := newOmniboxFixture(t, 3000, 8080)

	// No activation yet: the host's active tab is targeted.
	f.tabs.EXPECT().UpdateTabURL(mock.Anything, entity.TabID(""), "https://localhost:3000").Return(nil)

	out, err := f.uc.InputEntered(ctx, "300")
	require.NoError(t, err)
	assert.Equal(t, entity.Port(3000), out.Port)
	assert.True(t, out.FromSuggestion)
	assert.False(t, out.Recorded)
	assert.Equal(t, 0, f.store.sets, "a matched suggestion must not touch storage")
}

func TestOmnibox_InputEntered_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"above max", "99999"},
		{"not a number", "localhost"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext()
			f := newOmniboxFixture(t, 3000)

			f.notifier.EXPECT().Notify(mock.Anything, entity.Notification{
				Title:   "Invalid Port !!!",
				Message: "'" + tt.text + "' is not a valid port",
				IconURL: entity.DefaultNotificationIcon,
			}).Return(nil)

			out, err := f.uc.InputEntered(ctx, tt.text)
			require.NoError(t, err)
			require.Error(t, out.Invalid)
			assert.True(t, usecase.IsInvalidInput(out.Invalid))
			assert.Empty(t, out.URL)
			assert.Equal(t, 0, f.store.sets)
			f.tabs.AssertNotCalled(t, "UpdateTabURL", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestOmnibox_InputEntered_NotifierFailureIsNotFatal(t *testing.T) {
	ctx := testContext()
	f := newOmniboxFixture(t)
	f.notifier.EXPECT().Notify(mock.Anything, mock.Anything).Return(errors.New("no daemon"))

	out, err := f.uc.InputEntered(ctx, "nope")
	require.NoError(t, err)
	assert.Error(t, out.Invalid)
}

func TestOmnibox_InputEntered_NoLowerBound(t *testing.T) {
	ctx := testContext()
	f := newOmniboxFixture(t)
	f.tabs.EXPECT().UpdateTabURL(mock.Anything, entity.TabID(""), "https://localhost:0").Return(nil)

	out, err := f.uc.InputEntered(ctx, "0")
	require.NoError(t, err)
	assert.NoError(t, out.Invalid)
	assert.Equal(t, entity.Port(0), out.Port)
}

func TestOmnibox_InputEntered_NavigationErrorPropagates(t *testing.T) {
	ctx := testContext()
	f := newOmniboxFixture(t)
	f.tabs.EXPECT().UpdateTabURL(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("tab closed"))

	_, err := f.uc.InputEntered(ctx, "8080")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to navigate tab")
}

func TestOmnibox_InputChanged_SingleMatchSetsDefaultOnly(t *testing.T) {
	ctx := testContext()
	f := newOmniboxFixture(t, 3000)

	f.sink.EXPECT().SetDefaultSuggestion(mock.Anything, mock.AnythingOfType("entity.SuggestionDescription")).
		Run(func(_ context.Context, desc entity.SuggestionDescription) {
			assert.Equal(t, "300", desc.Highlighted())
			assert.Equal(t, "localhost:3000", desc.Text())
		}).
		Return()

	out, err := f.uc.InputChanged(ctx, "300")
	require.NoError(t, err)
	require.NotNil(t, out.Default)
	assert.Equal(t, "3000", out.Default.Content)
	assert.True(t, out.Default.Deletable)
	assert.Empty(t, out.Dropdown)
	f.sink.AssertNotCalled(t, "Suggest", mock.Anything, mock.Anything)
}

func TestOmnibox_InputChanged_RestGoesToDropdown(t *testing.T) {
	ctx := testContext()
	f := newOmniboxFixture(t, 3000, 8080, 3001, 13000)

	f.sink.EXPECT().SetDefaultSuggestion(mock.Anything, mock.Anything).Return()
	f.sink.EXPECT().Suggest(mock.Anything, mock.Anything).
		Run(func(_ context.Context, suggestions []entity.Suggestion) {
			require.Len(t, suggestions, 2)
			assert.Equal(t, "3001", suggestions[0].Content)
			assert.Equal(t, "13000", suggestions[1].Content)
		}).
		Return()

	out, err := f.uc.InputChanged(ctx, "300")
	require.NoError(t, err)
	assert.Equal(t, "3000", out.Default.Content)
	assert.Len(t, out.Dropdown, 2)
}

func TestOmnibox_InputChanged_NothingForUnparseableOrUnmatched(t *testing.T) {
	ctx := testContext()
	f := newOmniboxFixture(t, 3000)

	out, err := f.uc.InputChanged(ctx, "abc")
	require.NoError(t, err)
	assert.Nil(t, out.Default)

	out, err = f.uc.InputChanged(ctx, "9")
	require.NoError(t, err)
	assert.Nil(t, out.Default)
	assert.Empty(t, out.Dropdown)

	f.sink.AssertNotCalled(t, "SetDefaultSuggestion", mock.Anything, mock.Anything)
}

func TestOmnibox_DeleteSuggestion(t *testing.T) {
	ctx := testContext()
	f := newOmniboxFixture(t, 3000, 8080)

	require.NoError(t, f.uc.DeleteSuggestion(ctx, "3000"))
	assert.Equal(t, []entity.Port{8080}, f.store.ports(t))
}

func TestOmnibox_TabActivatedUpdatesSession(t *testing.T) {
	ctx := testContext()
	f := newOmniboxFixture(t)

	f.uc.TabActivated(ctx, entity.TabActivation{TabID: "a", WindowID: "w"})
	f.uc.TabActivated(ctx, entity.TabActivation{TabID: "b", WindowID: "w"})

	id, win, ok := f.uc.Session().CurrentTab()
	assert.True(t, ok)
	assert.Equal(t, entity.TabID("b"), id)
	assert.Equal(t, entity.WindowID("w"), win)
}
