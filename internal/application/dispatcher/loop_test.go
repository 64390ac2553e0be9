package dispatcher_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/bnema/localport/internal/application/dispatcher"
	portmocks "github.com/bnema/localport/internal/application/port/mocks"
	"github.com/bnema/localport/internal/application/usecase"
	"github.com/bnema/localport/internal/domain/entity"
	"github.com/bnema/localport/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

type kv struct {
	mu   sync.Mutex
	data map[string][]byte
}

func (s *kv) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *kv) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

type fixture struct {
	store   *kv
	tabs    *portmocks.MockTabManager
	sink    *portmocks.MockSuggestionSink
	omnibox *usecase.OmniboxUseCase
	loop    *dispatcher.Loop
}

func newFixture(t *testing.T, activations <-chan entity.TabActivation) *fixture {
	t.Helper()
	f := &fixture{
		store: &kv{data: map[string][]byte{}},
		tabs:  portmocks.NewMockTabManager(t),
		sink:  portmocks.NewMockSuggestionSink(t),
	}
	history := usecase.NewPortHistoryUseCase(f.store, 0)
	f.omnibox = usecase.NewOmniboxUseCase(history, f.tabs, portmocks.NewMockNotifier(t), f.sink, usecase.OmniboxConfig{})
	f.loop = dispatcher.New(f.omnibox, usecase.NewOpenAdjacentTabUseCase(f.tabs), activations, dispatcher.Config{})
	return f
}

func (f *fixture) start(t *testing.T) (context.Context, func()) {
	t.Helper()
	ctx, cancel := context.WithCancel(testContext())
	errCh := make(chan error, 1)
	go func() { errCh <- f.loop.Run(ctx) }()
	return ctx, func() {
		cancel()
		select {
		case err := <-errCh:
			assert.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Error("event loop did not stop")
		}
	}
}

func TestLoop_EventsRunInArrivalOrder(t *testing.T) {
	f := newFixture(t, nil)
	ctx := testContext()

	f.tabs.EXPECT().UpdateTabURL(mock.Anything, entity.TabID("7"), "https://localhost:8080").Return(nil)
	f.sink.EXPECT().SetDefaultSuggestion(mock.Anything, mock.Anything).Return()

	// Queued before the loop starts; the loop must keep this order.
	activated := f.loop.TabActivated(ctx, entity.TabActivation{TabID: "7", WindowID: "1"})
	entered := f.loop.InputEntered(ctx, "8080")
	changed := f.loop.InputChanged(ctx, "808")

	_, stop := f.start(t)
	defer stop()

	waitCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	_, err := activated.Wait(waitCtx)
	require.NoError(t, err)

	out, err := entered.Wait(waitCtx)
	require.NoError(t, err)
	assert.Equal(t, entity.TabID("7"), out.TabID)
	assert.True(t, out.Recorded)

	sugg, err := changed.Wait(waitCtx)
	require.NoError(t, err)
	require.NotNil(t, sugg.Default)
	assert.Equal(t, "8080", sugg.Default.Content)
}

func TestLoop_SuggestionDeleted(t *testing.T) {
	f := newFixture(t, nil)
	raw, _ := json.Marshal([]entity.Port{3000, 8080})
	f.store.data[usecase.UsedPortsKey] = raw

	ctx, stop := f.start(t)
	defer stop()

	_, err := f.loop.SuggestionDeleted(ctx, "3000").Wait(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, "[8080]", string(f.store.data[usecase.UsedPortsKey]))
}

func TestLoop_ActionClicked(t *testing.T) {
	f := newFixture(t, nil)
	f.tabs.EXPECT().CurrentWindow(mock.Anything).Return(entity.WindowID("1"), nil)
	f.tabs.EXPECT().QueryTabs(mock.Anything, mock.Anything).
		Return([]entity.BrowserTab{{ID: "a", WindowID: "1", Index: 4, GroupID: entity.NoGroup, Active: true}}, nil)
	f.tabs.EXPECT().CreateTab(mock.Anything, entity.CreateTabParams{WindowID: "1", Index: 5}).
		Return(entity.BrowserTab{ID: "b", WindowID: "1", Index: 5, GroupID: entity.NoGroup}, nil)

	ctx, stop := f.start(t)
	defer stop()

	out, err := f.loop.ActionClicked(ctx).Wait(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.TabID("b"), out.Tab.ID)
}

func TestLoop_ForwardsHostActivations(t *testing.T) {
	activations := make(chan entity.TabActivation)
	f := newFixture(t, activations)

	_, stop := f.start(t)
	defer stop()

	activations <- entity.TabActivation{TabID: "42", WindowID: "3"}

	require.Eventually(t, func() bool {
		id, _, ok := f.omnibox.Session().CurrentTab()
		return ok && id == "42"
	}, 2*time.Second, 10*time.Millisecond)

	close(activations)
}

func TestLoop_StoppedLoopRejectsEvents(t *testing.T) {
	f := newFixture(t, nil)
	_, stop := f.start(t)
	stop()

	ctx := testContext()
	_, err := f.loop.InputEntered(ctx, "8080").Wait(ctx)
	assert.ErrorIs(t, err, dispatcher.ErrStopped)
}

func TestLoop_QueuedEventsFailWhenStopped(t *testing.T) {
	f := newFixture(t, nil)
	ctx := testContext()

	pending := f.loop.InputChanged(ctx, "80")

	runCtx, cancel := context.WithCancel(ctx)
	cancel()
	require.NoError(t, f.loop.Run(runCtx))

	select {
	case <-pending.Done():
	case <-time.After(time.Second):
		t.Fatal("queued event was not resolved")
	}
	_, err := pending.Wait(ctx)
	assert.Error(t, err)
}

func TestLoop_RunTwice(t *testing.T) {
	f := newFixture(t, nil)
	ctx, stop := f.start(t)
	defer stop()

	_, err := f.loop.TabActivated(ctx, entity.TabActivation{TabID: "1"}).Wait(ctx)
	require.NoError(t, err)

	assert.Error(t, f.loop.Run(ctx))
}

func TestPending_WaitHonoursContext(t *testing.T) {
	f := newFixture(t, nil)
	pending := f.loop.InputChanged(testContext(), "80")

	ctx, cancel := context.WithTimeout(testContext(), 20*time.Millisecond)
	defer cancel()

	_, err := pending.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
