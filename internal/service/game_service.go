package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"gamelog/internal/logger"
	"gamelog/internal/model"
)

// ImportResult summarizes a collection import.
type ImportResult struct {
	Imported int `json:"imported"`
}

// GameService is the use-case boundary the presentation layer talks to.
type GameService interface {
	// List returns the collection ordered for display.
	List(ctx context.Context, mode SortMode) []model.Game
	Get(ctx context.Context, id int64) (model.Game, error)
	Create(ctx context.Context, form GameForm) (model.Game, error)
	// Update validates form and replaces the game with the given id. It
	// returns ErrNotFound when the store reported no match.
	Update(ctx context.Context, id int64, form GameForm) (model.Game, error)
	// Delete is idempotent: removing an unknown id is not an error.
	Delete(ctx context.Context, id int64) error
	Export(ctx context.Context) ([]byte, error)
	// Import replaces the collection with the JSON array read from reader.
	// Nothing is changed unless every game validates.
	Import(ctx context.Context, reader io.Reader) (ImportResult, error)
}

type gameService struct {
	store     GameStore
	validator *Validator
	sorter    Sorter
}

func NewGameService(store GameStore, validator *Validator, sorter Sorter) GameService {
	return &gameService{
		store:     store,
		validator: validator,
		sorter:    sorter,
	}
}

func (s *gameService) List(ctx context.Context, mode SortMode) []model.Game {
	return s.sorter.View(s.store.List(), mode)
}

func (s *gameService) Get(ctx context.Context, id int64) (model.Game, error) {
	game, ok := s.store.Get(id)
	if !ok {
		return model.Game{}, ErrNotFound
	}
	return game, nil
}

func (s *gameService) Create(ctx context.Context, form GameForm) (model.Game, error) {
	game, err := s.validator.Validate(form, nil)
	if err != nil {
		logger.Debug("game rejected", "module", "service", "action", "create", "resource", "game", "result", "failed", "error", err)
		return model.Game{}, err
	}

	created, err := s.store.Add(ctx, game)
	if err != nil {
		logger.Error("game create failed", "module", "service", "action", "create", "resource", "game", "result", "failed", "error", err)
		return model.Game{}, err
	}
	logger.Info("game created", "module", "service", "action", "create", "resource", "game", "result", "ok", "id", created.ID)
	return created, nil
}

func (s *gameService) Update(ctx context.Context, id int64, form GameForm) (model.Game, error) {
	game, err := s.validator.Validate(form, &id)
	if err != nil {
		logger.Debug("game rejected", "module", "service", "action", "update", "resource", "game", "result", "failed", "id", id, "error", err)
		return model.Game{}, err
	}

	found, err := s.store.Update(ctx, id, game)
	if err != nil {
		logger.Error("game update failed", "module", "service", "action", "update", "resource", "game", "result", "failed", "id", id, "error", err)
		return model.Game{}, err
	}
	if !found {
		logger.Debug("game update skipped", "module", "service", "action", "update", "resource", "game", "result", "skipped", "id", id)
		return model.Game{}, ErrNotFound
	}
	logger.Info("game updated", "module", "service", "action", "update", "resource", "game", "result", "ok", "id", id)
	return game, nil
}

func (s *gameService) Delete(ctx context.Context, id int64) error {
	removed, err := s.store.Remove(ctx, id)
	if err != nil {
		logger.Error("game delete failed", "module", "service", "action", "delete", "resource", "game", "result", "failed", "id", id, "error", err)
		return err
	}
	result := "ok"
	if !removed {
		result = "skipped"
	}
	logger.Info("game deleted", "module", "service", "action", "delete", "resource", "game", "result", result, "id", id)
	return nil
}

func (s *gameService) Export(ctx context.Context) ([]byte, error) {
	payload, err := json.MarshalIndent(s.store.List(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode export: %w", err)
	}
	return payload, nil
}

func (s *gameService) Import(ctx context.Context, reader io.Reader) (ImportResult, error) {
	var incoming []model.Game
	if err := json.NewDecoder(reader).Decode(&incoming); err != nil {
		return ImportResult{}, fmt.Errorf("decode import: %w", ErrInvalid)
	}

	games := make([]model.Game, 0, len(incoming))
	for i, g := range incoming {
		var existingID *int64
		if g.ID != 0 {
			existingID = &g.ID
		}
		valid, err := s.validator.Validate(FormFromGame(g), existingID)
		if err != nil {
			return ImportResult{}, fmt.Errorf("import game %d: %w", i, err)
		}
		games = append(games, valid)
	}

	if err := s.store.Replace(ctx, games); err != nil {
		logger.Error("game import failed", "module", "service", "action", "import", "resource", "game", "result", "failed", "error", err)
		return ImportResult{}, err
	}
	logger.Info("games imported", "module", "service", "action", "import", "resource", "game", "result", "ok", "count", len(games))
	return ImportResult{Imported: len(games)}, nil
}
