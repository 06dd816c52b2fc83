package service_test

import (
	"context"
	"testing"

	"gamelog/internal/repository"
	"gamelog/internal/repository/testutil"
	"gamelog/internal/service"
)

// seqIDs hands out 1, 2, 3, ...
type seqIDs struct {
	next int64
}

func (s *seqIDs) NextID() int64 {
	s.next++
	return s.next
}

// fixedIDs replays ids in order, then repeats the last one.
type fixedIDs struct {
	ids []int64
}

func (f *fixedIDs) NextID() int64 {
	id := f.ids[0]
	if len(f.ids) > 1 {
		f.ids = f.ids[1:]
	}
	return id
}

func newSQLiteStore(t *testing.T) (service.GameStore, repository.GameListRepository) {
	t.Helper()
	db := testutil.NewTestDB(t)
	repo := repository.NewGameListRepository(repository.NewSlotRepository(db), "gameList")
	store, err := service.NewGameStore(context.Background(), repo, &seqIDs{})
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return store, repo
}

func int64Ptr(v int64) *int64 {
	return &v
}
