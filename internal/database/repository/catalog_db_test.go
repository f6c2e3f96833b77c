package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/modernapp/internal/database"
	"github.com/jask/modernapp/internal/database/repository"
)

func newRepo(t *testing.T) (*repository.CatalogRepo, context.Context) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	db, err := database.OpenCatalog(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return repository.NewCatalogRepo(db), ctx
}

func TestCatalogGet(t *testing.T) {
	repo, ctx := newRepo(t)

	item, err := repo.Get(ctx, 5)
	require.NoError(t, err)
	require.Equal(t, "Gadget E", item.Name)

	_, err = repo.Get(ctx, 42)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCatalogUpsertAndCount(t *testing.T) {
	repo, ctx := newRepo(t)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, len(database.DefaultCatalog), n)

	require.NoError(t, repo.Upsert(ctx, repository.CatalogItem{ID: 2, Name: "Service B2", Description: "renamed"}))
	require.NoError(t, repo.Upsert(ctx, repository.CatalogItem{ID: 7, Name: "Extra G"}))

	n, err = repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 7, n)

	item, err := repo.Get(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, "Service B2", item.Name)
	require.Equal(t, repository.FallbackImageURL, item.ImageRef())
}
