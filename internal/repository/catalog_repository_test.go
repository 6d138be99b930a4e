package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walker-cleaning/site-api/internal/apperror"
	"github.com/walker-cleaning/site-api/internal/domain/catalog"
)

func TestServiceRepository_CRUD(t *testing.T) {
	repo := NewGormServiceRepository(newTestDB(t))
	ctx := context.Background()

	svc := catalog.Service{
		Title:       "Deep Cleaning",
		Description: "Full-home deep clean",
		Images:      []string{"deep-1.jpg"},
		Icon:        "🧽",
	}
	require.NoError(t, repo.Create(ctx, &svc))
	assert.NotZero(t, svc.ID)

	found, err := repo.FindByID(ctx, svc.ID)
	require.NoError(t, err)
	assert.Equal(t, "Deep Cleaning", found.Title)
	assert.Equal(t, []string{"deep-1.jpg"}, found.Images)
	assert.Equal(t, "🧽", found.Icon)

	svc.Title = "Premium Deep Cleaning"
	svc.Images = []string{"deep-1.jpg", "deep-2.jpg"}
	require.NoError(t, repo.Update(ctx, &svc))

	found, err = repo.FindByID(ctx, svc.ID)
	require.NoError(t, err)
	assert.Equal(t, "Premium Deep Cleaning", found.Title)
	assert.Len(t, found.Images, 2)

	require.NoError(t, repo.Delete(ctx, svc.ID))
	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestServiceRepository_ListInsertionOrder(t *testing.T) {
	repo := NewGormServiceRepository(newTestDB(t))
	ctx := context.Background()

	for _, title := range []string{"First", "Second", "Third"} {
		svc := catalog.Service{Title: title}
		require.NoError(t, repo.Create(ctx, &svc))
	}

	services, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, services, 3)
	assert.Equal(t, "First", services[0].Title)
	assert.Equal(t, "Third", services[2].Title)
}

func TestPackageRepository_CRUD(t *testing.T) {
	repo := NewGormPackageRepository(newTestDB(t))
	ctx := context.Background()

	pkg := catalog.Package{
		Title:    "Starter Package",
		Includes: []string{"Kitchen", "Bathroom"},
	}
	require.NoError(t, repo.Create(ctx, &pkg))
	assert.NotZero(t, pkg.ID)

	found, err := repo.FindByID(ctx, pkg.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Kitchen", "Bathroom"}, found.Includes)

	require.NoError(t, repo.Delete(ctx, pkg.ID))

	err = repo.Delete(ctx, pkg.ID)
	var appErr *apperror.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperror.KindNotFound, appErr.Kind)
}
