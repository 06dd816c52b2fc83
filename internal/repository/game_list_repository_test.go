package repository_test

import (
	"context"
	"errors"
	"testing"

	"gamelog/internal/model"
	"gamelog/internal/repository"
	"gamelog/internal/repository/mock"
	"gamelog/internal/repository/testutil"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testKey = "gameList"

func TestGameListRepository_RoundTrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewGameListRepository(repository.NewSlotRepository(db), testKey)
	ctx := context.Background()

	games := []model.Game{
		{ID: 3, Name: "Celeste", Rating: 9, Date: "2024-04-01", Review: ""},
		{ID: 1, Name: "Hades", Rating: 8.5, Date: "2023-11-12", Review: "one more run"},
		{ID: 2, Name: "Tetris", Rating: 10, Date: "1989-06-14", Review: "timeless"},
	}
	require.NoError(t, repo.Save(ctx, games))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, games, loaded)
}

func TestGameListRepository_LoadEmptySlot(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewGameListRepository(repository.NewSlotRepository(db), testKey)

	loaded, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, loaded)
	require.Empty(t, loaded)
}

func TestGameListRepository_LoadGarbageDegradesToEmpty(t *testing.T) {
	cases := map[string]string{
		"not json":   "{{{",
		"object":     `{"id":1}`,
		"blank":      "   ",
		"json null":  "null",
		"wrong type": `[{"id":"abc"}]`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			db := testutil.NewTestDB(t)
			testutil.SeedSlot(t, db, testKey, raw)
			repo := repository.NewGameListRepository(repository.NewSlotRepository(db), testKey)

			loaded, err := repo.Load(context.Background())
			require.NoError(t, err)
			require.NotNil(t, loaded)
			require.Empty(t, loaded)
		})
	}
}

func TestGameListRepository_LoadLegacyLayout(t *testing.T) {
	db := testutil.NewTestDB(t)
	// Timestamp ids and a missing review field.
	testutil.SeedSlot(t, db, testKey, `[{"id":1711929600000,"name":"Celeste","rating":9,"date":"2024-04-01"}]`)
	repo := repository.NewGameListRepository(repository.NewSlotRepository(db), testKey)

	loaded, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, []model.Game{
		{ID: 1711929600000, Name: "Celeste", Rating: 9, Date: "2024-04-01"},
	}, loaded)
}

func TestGameListRepository_LoadDropsDuplicateIDs(t *testing.T) {
	db := testutil.NewTestDB(t)
	testutil.SeedSlot(t, db, testKey, `[{"id":1,"name":"A","rating":1,"date":"2024-01-01"},{"id":1,"name":"B","rating":2,"date":"2024-01-02"}]`)
	repo := repository.NewGameListRepository(repository.NewSlotRepository(db), testKey)

	loaded, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	require.Equal(t, "A", loaded[0].Name)
}

func TestGameListRepository_SaveNilWritesEmptyArray(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewGameListRepository(repository.NewSlotRepository(db), testKey)

	require.NoError(t, repo.Save(context.Background(), nil))
	require.Equal(t, "[]", testutil.ReadSlot(t, db, testKey))
}

func TestGameListRepository_SaveLayout(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewGameListRepository(repository.NewSlotRepository(db), testKey)

	require.NoError(t, repo.Save(context.Background(), []model.Game{
		{ID: 42, Name: "Celeste", Rating: 9, Date: "2024-04-01"},
	}))
	require.JSONEq(t,
		`[{"id":42,"name":"Celeste","rating":9,"date":"2024-04-01","review":""}]`,
		testutil.ReadSlot(t, db, testKey),
	)
}

func TestGameListRepository_LoadSlotError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	slots := mock.NewMockSlotRepository(ctrl)
	repo := repository.NewGameListRepository(slots, testKey)
	ctx := context.Background()
	dbErr := errors.New("disk gone")

	slots.EXPECT().Get(ctx, testKey).Return(nil, dbErr)

	_, err := repo.Load(ctx)
	require.ErrorIs(t, err, dbErr)
}

func TestGameListRepository_SaveSlotError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	slots := mock.NewMockSlotRepository(ctrl)
	repo := repository.NewGameListRepository(slots, testKey)
	ctx := context.Background()
	dbErr := errors.New("readonly")

	slots.EXPECT().Set(ctx, testKey, `[{"id":1,"name":"A","rating":5,"date":"2024-01-01","review":""}]`).Return(dbErr)

	err := repo.Save(ctx, []model.Game{{ID: 1, Name: "A", Rating: 5, Date: "2024-01-01"}})
	require.ErrorIs(t, err, dbErr)
}

func TestGameListRepository_UsesConfiguredKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	slots := mock.NewMockSlotRepository(ctrl)
	repo := repository.NewGameListRepository(slots, "custom")
	ctx := context.Background()

	slots.EXPECT().Get(ctx, "custom").Return(&model.Slot{Key: "custom", Value: `[]`}, nil)

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Empty(t, loaded)
}
