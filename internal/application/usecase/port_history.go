package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bnema/localport/internal/application/port"
	"github.com/bnema/localport/internal/domain/entity"
	"github.com/bnema/localport/internal/logging"
)

// UsedPortsKey is the key-value slot holding the used-port list.
const UsedPortsKey = "usedPorts"

// DefaultSuggestionLimit caps how many stored ports are suggested.
const DefaultSuggestionLimit = 3

// PortHistoryUseCase manages the persisted, newest-first list of used ports.
type PortHistoryUseCase struct {
	store port.KeyValueStore
	limit int
}

// NewPortHistoryUseCase creates the port history use case.
// A non-positive limit falls back to DefaultSuggestionLimit.
func NewPortHistoryUseCase(store port.KeyValueStore, limit int) *PortHistoryUseCase {
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}
	return &PortHistoryUseCase{
		store: store,
		limit: limit,
	}
}

// FetchUsedPorts returns the stored list, or an empty list if nothing was stored yet.
func (uc *PortHistoryUseCase) FetchUsedPorts(ctx context.Context) (entity.UsedPortList, error) {
	raw, found, err := uc.store.Get(ctx, UsedPortsKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read used ports: %w", err)
	}
	if !found || len(raw) == 0 {
		return entity.UsedPortList{}, nil
	}

	var ports []entity.Port
	if err := json.Unmarshal(raw, &ports); err != nil {
		return nil, fmt.Errorf("failed to decode used ports: %w", err)
	}
	return entity.UsedPortList(ports).Dedupe(), nil
}

// AddUsedPort moves p to the front of the list, inserting it if absent.
func (uc *PortHistoryUseCase) AddUsedPort(ctx context.Context, p entity.Port) error {
	log := logging.FromContext(ctx)

	ports, err := uc.FetchUsedPorts(ctx)
	if err != nil {
		return err
	}

	updated := ports.Prepend(p)
	if err := uc.save(ctx, updated); err != nil {
		return err
	}

	log.Info().Int("port", int(p)).Int("stored", len(updated)).Msg("used port recorded")
	return nil
}

// GetSuggestionPorts returns stored ports whose decimal form contains text,
// in stored order, capped at the configured limit.
func (uc *PortHistoryUseCase) GetSuggestionPorts(ctx context.Context, text string) (entity.UsedPortList, error) {
	log := logging.FromContext(ctx)

	ports, err := uc.FetchUsedPorts(ctx)
	if err != nil {
		return nil, err
	}

	matches := ports.Matching(text, uc.limit)
	log.Debug().Str("text", text).Int("matches", len(matches)).Msg("suggestion ports")
	return matches, nil
}

// RemoveUsedPort drops every stored port whose decimal form text ends with.
func (uc *PortHistoryUseCase) RemoveUsedPort(ctx context.Context, text string) error {
	log := logging.FromContext(ctx)

	ports, err := uc.FetchUsedPorts(ctx)
	if err != nil {
		return err
	}

	filtered := ports.WithoutSuffixesOf(text)
	if err := uc.save(ctx, filtered); err != nil {
		return err
	}

	log.Info().
		Str("text", text).
		Int("removed", len(ports)-len(filtered)).
		Msg("used ports removed")
	return nil
}

// ClearUsedPorts forgets every stored port.
func (uc *PortHistoryUseCase) ClearUsedPorts(ctx context.Context) error {
	if err := uc.save(ctx, entity.UsedPortList{}); err != nil {
		return err
	}
	logging.FromContext(ctx).Info().Msg("used ports cleared")
	return nil
}

func (uc *PortHistoryUseCase) save(ctx context.Context, ports entity.UsedPortList) error {
	raw, err := json.Marshal([]entity.Port(ports))
	if err != nil {
		return fmt.Errorf("failed to encode used ports: %w", err)
	}
	if err := uc.store.Set(ctx, UsedPortsKey, raw); err != nil {
		return fmt.Errorf("failed to save used ports: %w", err)
	}
	return nil
}
