package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"gamelog/internal/logger"
	"gamelog/internal/model"
)

// GameListRepository persists the whole game collection as one JSON array in a
// single storage slot.
type GameListRepository interface {
	// Load returns the stored collection. A missing, empty or unreadable slot
	// yields an empty collection; only database failures are errors.
	Load(ctx context.Context) ([]model.Game, error)
	// Save overwrites the slot with the full collection.
	Save(ctx context.Context, games []model.Game) error
}

type gameListRepository struct {
	slots SlotRepository
	key   string
}

func NewGameListRepository(slots SlotRepository, key string) GameListRepository {
	return &gameListRepository{slots: slots, key: key}
}

func (r *gameListRepository) Load(ctx context.Context) ([]model.Game, error) {
	slot, err := r.slots.Get(ctx, r.key)
	if err != nil {
		return nil, fmt.Errorf("load game list: %w", err)
	}
	if slot == nil || strings.TrimSpace(slot.Value) == "" {
		return []model.Game{}, nil
	}

	var stored []model.Game
	if err := json.Unmarshal([]byte(slot.Value), &stored); err != nil {
		logger.Warn("game list unreadable, starting empty",
			"module", "repository", "action", "load", "resource", "game_list", "result", "failed",
			"key", r.key, "error", err)
		return []model.Game{}, nil
	}

	games := make([]model.Game, 0, len(stored))
	seen := make(map[int64]struct{}, len(stored))
	for _, g := range stored {
		if _, dup := seen[g.ID]; dup {
			logger.Warn("duplicate game id dropped",
				"module", "repository", "action", "load", "resource", "game_list", "result", "skipped",
				"key", r.key, "id", g.ID)
			continue
		}
		seen[g.ID] = struct{}{}
		games = append(games, g)
	}

	logger.Debug("game list loaded", "module", "repository", "action", "load", "resource", "game_list", "result", "ok", "key", r.key, "count", len(games))
	return games, nil
}

func (r *gameListRepository) Save(ctx context.Context, games []model.Game) error {
	if games == nil {
		games = []model.Game{}
	}
	payload, err := json.Marshal(games)
	if err != nil {
		return fmt.Errorf("encode game list: %w", err)
	}
	if err := r.slots.Set(ctx, r.key, string(payload)); err != nil {
		return fmt.Errorf("save game list: %w", err)
	}
	return nil
}
