package service

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"gamelog/internal/logger"
	"gamelog/internal/model"
	"gamelog/internal/repository"
)

// GameStore is the ordered in-memory game collection. Every mutation is
// written through to the repository before it becomes visible, and
// mutations run one at a time.
type GameStore interface {
	// List returns a copy of the collection in insertion order.
	List() []model.Game
	Get(id int64) (model.Game, bool)
	// Add appends game, assigning a fresh id when it has none or its id is taken.
	Add(ctx context.Context, game model.Game) (model.Game, error)
	// Update replaces the game with the given id, keeping that id. It reports
	// false when no game matched; the collection is persisted either way.
	Update(ctx context.Context, id int64, game model.Game) (bool, error)
	// Remove deletes the game with the given id and reports whether one was
	// removed. The collection is persisted either way.
	Remove(ctx context.Context, id int64) (bool, error)
	// Replace swaps in a whole new collection, applying the Add id rules.
	Replace(ctx context.Context, games []model.Game) error
}

type gameStore struct {
	mu    sync.Mutex
	games []model.Game
	repo  repository.GameListRepository
	ids   IDGenerator
}

// NewGameStore loads the persisted collection and returns a store over it.
func NewGameStore(ctx context.Context, repo repository.GameListRepository, ids IDGenerator) (GameStore, error) {
	games, err := repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	if games == nil {
		games = []model.Game{}
	}
	logger.Info("game store loaded", "module", "service", "action", "load", "resource", "game", "result", "ok", "count", len(games))
	return &gameStore{games: games, repo: repo, ids: ids}, nil
}

func (s *gameStore) List() []model.Game {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.games)
}

func (s *gameStore) Get(id int64) (model.Game, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(id); i >= 0 {
		return s.games[i], true
	}
	return model.Game{}, false
}

func (s *gameStore) Add(ctx context.Context, game model.Game) (model.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if game.ID == 0 || s.indexOf(game.ID) >= 0 {
		game.ID = s.freshID(s.games)
	}

	next := append(slices.Clone(s.games), game)
	if err := s.commit(ctx, next); err != nil {
		return model.Game{}, err
	}
	return game, nil
}

func (s *gameStore) Update(ctx context.Context, id int64, game model.Game) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := slices.Clone(s.games)
	i := s.indexOf(id)
	if i >= 0 {
		game.ID = id
		next[i] = game
	}
	if err := s.commit(ctx, next); err != nil {
		return false, err
	}
	return i >= 0, nil
}

func (s *gameStore) Remove(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := slices.DeleteFunc(slices.Clone(s.games), func(g model.Game) bool {
		return g.ID == id
	})
	removed := len(next) < len(s.games)
	if err := s.commit(ctx, next); err != nil {
		return false, err
	}
	return removed, nil
}

func (s *gameStore) Replace(ctx context.Context, games []model.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]model.Game, 0, len(games))
	seen := make(map[int64]struct{}, len(games))
	for _, g := range games {
		if _, dup := seen[g.ID]; g.ID == 0 || dup {
			g.ID = s.freshID(next)
		}
		seen[g.ID] = struct{}{}
		next = append(next, g)
	}
	return s.commit(ctx, next)
}

// commit persists next and only then makes it the current collection.
func (s *gameStore) commit(ctx context.Context, next []model.Game) error {
	if err := s.repo.Save(ctx, next); err != nil {
		return fmt.Errorf("persist games: %w", err)
	}
	s.games = next
	return nil
}

func (s *gameStore) indexOf(id int64) int {
	return slices.IndexFunc(s.games, func(g model.Game) bool {
		return g.ID == id
	})
}

// freshID draws ids until one is unused in games.
func (s *gameStore) freshID(games []model.Game) int64 {
	for {
		id := s.ids.NextID()
		taken := slices.ContainsFunc(games, func(g model.Game) bool {
			return g.ID == id
		})
		if id != 0 && !taken {
			return id
		}
	}
}
