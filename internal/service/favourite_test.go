package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzawadzki/ludoteka-api/internal/service"
)

func TestFavouriteService_AddAndRemove(t *testing.T) {
	repo := newFakeFavouriteRepo()
	svc := service.NewFavouriteService(repo)

	require.NoError(t, svc.Add(context.Background(), 7, 3))
	// Adding twice is a no-op, not an error.
	require.NoError(t, svc.Add(context.Background(), 7, 3))

	set, err := repo.GameIDSet(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, set[3])

	require.NoError(t, svc.Remove(context.Background(), 7, 3))

	set, err = repo.GameIDSet(context.Background(), 7)
	require.NoError(t, err)
	assert.False(t, set[3])
}
