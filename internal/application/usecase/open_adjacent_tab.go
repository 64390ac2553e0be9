package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/localport/internal/application/port"
	"github.com/bnema/localport/internal/domain/entity"
	"github.com/bnema/localport/internal/logging"
)

// OpenAdjacentTabUseCase opens an empty tab right after the active one,
// keeping it in the active tab's group.
type OpenAdjacentTabUseCase struct {
	tabs port.TabManager
}

// NewOpenAdjacentTabUseCase creates the toolbar action use case.
func NewOpenAdjacentTabUseCase(tabs port.TabManager) *OpenAdjacentTabUseCase {
	return &OpenAdjacentTabUseCase{tabs: tabs}
}

// OpenAdjacentTabOutput contains the created tab.
type OpenAdjacentTabOutput struct {
	Tab     entity.BrowserTab
	Grouped bool
}

// Execute performs the action for the current window.
func (uc *OpenAdjacentTabUseCase) Execute(ctx context.Context) (*OpenAdjacentTabOutput, error) {
	log := logging.FromContext(ctx)

	windowID, err := uc.tabs.CurrentWindow(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current window: %w", err)
	}

	tabs, err := uc.tabs.QueryTabs(ctx, entity.TabQuery{WindowID: windowID, ActiveOnly: true})
	if err != nil {
		return nil, fmt.Errorf("failed to query active tab: %w", err)
	}
	if len(tabs) == 0 {
		return nil, fmt.Errorf("window %s: %w", windowID, port.ErrNoActiveTab)
	}
	active := tabs[0]

	created, err := uc.tabs.CreateTab(ctx, entity.CreateTabParams{
		WindowID: windowID,
		Index:    active.Index + 1,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create tab: %w", err)
	}

	out := &OpenAdjacentTabOutput{Tab: created}
	if active.GroupID.IsGrouped() {
		if err := uc.tabs.GroupTabs(ctx, active.GroupID, created.ID); err != nil {
			return nil, fmt.Errorf("failed to add tab to group: %w", err)
		}
		out.Tab.GroupID = active.GroupID
		out.Grouped = true
	}

	log.Info().
		Str("window_id", string(windowID)).
		Str("tab_id", string(created.ID)).
		Int("index", created.Index).
		Int("group_id", int(out.Tab.GroupID)).
		Msg("adjacent tab opened")

	return out, nil
}
