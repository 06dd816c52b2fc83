package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"golang.org/x/text/language"

	"gamelog/internal/model"
	"gamelog/internal/service"

	"github.com/stretchr/testify/require"
)

func newGameService(t *testing.T) service.GameService {
	t.Helper()
	store, _ := newSQLiteStore(t)
	return service.NewGameService(store, service.NewValidator(&seqIDs{next: 100}), service.NewSorter(language.English))
}

func TestGameService_CreateSingleEntry(t *testing.T) {
	svc := newGameService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, service.GameForm{Name: "Celeste", Rating: "9", Date: "2024-04-01", Review: ""})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	byName := svc.List(ctx, service.SortByName)
	require.Equal(t, []model.Game{created}, byName)
	require.Equal(t, []model.Game{created}, svc.List(ctx, service.SortByRating))
}

func TestGameService_RatingOrder(t *testing.T) {
	svc := newGameService(t)
	ctx := context.Background()

	low, err := svc.Create(ctx, service.GameForm{Name: "Low", Rating: "5", Date: "2024-01-01"})
	require.NoError(t, err)
	high, err := svc.Create(ctx, service.GameForm{Name: "High", Rating: "8", Date: "2024-01-02"})
	require.NoError(t, err)

	sorted := svc.List(ctx, service.SortByRating)
	require.Equal(t, []model.Game{high, low}, sorted)
}

func TestGameService_CreateInvalid(t *testing.T) {
	svc := newGameService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, service.GameForm{Name: "Celeste", Rating: "11", Date: "2024-04-01"})
	var verr *service.ValidationError
	require.True(t, errors.As(err, &verr))
	require.Equal(t, service.FieldErrors{Rating: true}, verr.Fields)
	require.Empty(t, svc.List(ctx, service.SortByName))
}

func TestGameService_UpdateAndGet(t *testing.T) {
	svc := newGameService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, service.GameForm{Name: "Hades", Rating: "8", Date: "2023-11-12"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, service.GameForm{Name: "Hades II", Rating: "9.5", Date: "2024-05-06", Review: " early access "})
	require.NoError(t, err)
	require.Equal(t, model.Game{ID: created.ID, Name: "Hades II", Rating: 9.5, Date: "2024-05-06", Review: "early access"}, updated)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, updated, got)
	require.Len(t, svc.List(ctx, service.SortByName), 1)
}

func TestGameService_UpdateUnknown(t *testing.T) {
	svc := newGameService(t)

	_, err := svc.Update(context.Background(), 404, service.GameForm{Name: "X", Rating: "1", Date: "2024-01-01"})
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestGameService_UpdateInvalid(t *testing.T) {
	svc := newGameService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, service.GameForm{Name: "Hades", Rating: "8", Date: "2023-11-12"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, created.ID, service.GameForm{Name: "", Rating: "8", Date: "2023-11-12"})
	require.ErrorIs(t, err, service.ErrInvalid)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created, got)
}

func TestGameService_GetUnknown(t *testing.T) {
	svc := newGameService(t)

	_, err := svc.Get(context.Background(), 1)
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestGameService_DeleteIdempotent(t *testing.T) {
	svc := newGameService(t)
	ctx := context.Background()

	keep, _ := svc.Create(ctx, service.GameForm{Name: "Keep", Rating: "5", Date: "2024-01-01"})
	drop, _ := svc.Create(ctx, service.GameForm{Name: "Drop", Rating: "5", Date: "2024-01-01"})

	require.NoError(t, svc.Delete(ctx, drop.ID))
	require.NoError(t, svc.Delete(ctx, drop.ID))
	require.Equal(t, []model.Game{keep}, svc.List(ctx, service.SortByName))
}

func TestGameService_ExportImportRoundTrip(t *testing.T) {
	source := newGameService(t)
	ctx := context.Background()

	_, _ = source.Create(ctx, service.GameForm{Name: "Celeste", Rating: "9", Date: "2024-04-01"})
	_, _ = source.Create(ctx, service.GameForm{Name: "Hades", Rating: "8.5", Date: "2023-11-12", Review: "one more run"})

	payload, err := source.Export(ctx)
	require.NoError(t, err)

	var exported []model.Game
	require.NoError(t, json.Unmarshal(payload, &exported))
	require.Len(t, exported, 2)

	target := newGameService(t)
	result, err := target.Import(ctx, strings.NewReader(string(payload)))
	require.NoError(t, err)
	require.Equal(t, 2, result.Imported)
	require.Equal(t, exported, target.List(ctx, service.SortMode("")))
}

func TestGameService_ImportNormalizesAndAssignsIDs(t *testing.T) {
	svc := newGameService(t)
	ctx := context.Background()

	result, err := svc.Import(ctx, strings.NewReader(`[{"name":"  Tetris ","rating":10,"date":"1989-06-14","review":" classic "}]`))
	require.NoError(t, err)
	require.Equal(t, 1, result.Imported)

	list := svc.List(ctx, service.SortByName)
	require.Len(t, list, 1)
	require.NotZero(t, list[0].ID)
	require.Equal(t, "Tetris", list[0].Name)
	require.Equal(t, "classic", list[0].Review)
}

func TestGameService_ImportRejectsInvalidWithoutChanges(t *testing.T) {
	svc := newGameService(t)
	ctx := context.Background()

	existing, _ := svc.Create(ctx, service.GameForm{Name: "Keep", Rating: "5", Date: "2024-01-01"})

	_, err := svc.Import(ctx, strings.NewReader(`[{"id":1,"name":"ok","rating":5,"date":"2024-01-01"},{"id":2,"name":"","rating":12,"date":"2024-01-01"}]`))
	require.ErrorIs(t, err, service.ErrInvalid)
	var verr *service.ValidationError
	require.True(t, errors.As(err, &verr))
	require.Equal(t, service.FieldErrors{Name: true, Rating: true}, verr.Fields)

	_, err = svc.Import(ctx, strings.NewReader(`not json`))
	require.ErrorIs(t, err, service.ErrInvalid)

	require.Equal(t, []model.Game{existing}, svc.List(ctx, service.SortByName))
}
