package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzawadzki/ludoteka-api/internal/domain"
	"github.com/mzawadzki/ludoteka-api/internal/service"
)

func validGame() domain.BoardGame {
	return domain.BoardGame{
		Title:       "Carcassonne",
		Weight:      900,
		MinPlayers:  2,
		MaxPlayers:  5,
		MinPlaytime: 30,
		MaxPlaytime: 45,
	}
}

func TestCatalogueService_SaveGame_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.BoardGame)
		wantErr error
	}{
		{"valid", func(g *domain.BoardGame) {}, nil},
		{"equal player bounds", func(g *domain.BoardGame) {
			g.MinPlayers = 4
			g.MaxPlayers = 4
		}, nil},
		{"inverted player bounds", func(g *domain.BoardGame) {
			g.MinPlayers = 5
			g.MaxPlayers = 2
		}, service.ErrInvalidPlayerRange},
		{"equal playtime bounds", func(g *domain.BoardGame) {
			g.MinPlaytime = 60
			g.MaxPlaytime = 60
		}, nil},
		{"inverted playtime bounds", func(g *domain.BoardGame) {
			g.MinPlaytime = 90
			g.MaxPlaytime = 30
		}, service.ErrInvalidPlaytimeRange},
		{"zero weight", func(g *domain.BoardGame) {
			g.Weight = 0
		}, service.ErrInvalidWeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := service.NewCatalogueService(newFakeCatalogueRepo(), newFakeFavouriteRepo())

			game := validGame()
			tt.mutate(&game)

			_, err := svc.SaveGame(context.Background(), game)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestCatalogueService_SaveGame_InsertAssignsID(t *testing.T) {
	svc := service.NewCatalogueService(newFakeCatalogueRepo(), newFakeFavouriteRepo())

	created, err := svc.SaveGame(context.Background(), validGame())
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
}

func TestCatalogueService_SaveGame_UpdateUnknownID(t *testing.T) {
	svc := service.NewCatalogueService(newFakeCatalogueRepo(), newFakeFavouriteRepo())

	game := validGame()
	game.ID = 99

	_, err := svc.SaveGame(context.Background(), game)
	assert.ErrorIs(t, err, service.ErrGameNotFound)
}

func TestCatalogueService_SaveGame_Update(t *testing.T) {
	existing := validGame()
	existing.ID = 1
	svc := service.NewCatalogueService(newFakeCatalogueRepo(existing), newFakeFavouriteRepo())

	existing.Title = "Carcassonne: Big Box"
	updated, err := svc.SaveGame(context.Background(), existing)
	require.NoError(t, err)
	assert.Equal(t, "Carcassonne: Big Box", updated.Title)
}

func TestCatalogueService_ListGames_MarksFavourites(t *testing.T) {
	first := validGame()
	first.ID = 1
	second := validGame()
	second.ID = 2
	second.Title = "Azul"

	favs := newFakeFavouriteRepo()
	require.NoError(t, favs.Save(context.Background(), domain.Favourite{UserID: 7, GameID: 2}))

	svc := service.NewCatalogueService(newFakeCatalogueRepo(first, second), favs)

	listings, err := svc.ListGames(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, listings, 2)

	// Ordered by title.
	assert.Equal(t, uint(2), listings[0].ID)
	assert.True(t, listings[0].IsFavourite)
	assert.Equal(t, uint(1), listings[1].ID)
	assert.False(t, listings[1].IsFavourite)
}

func TestCatalogueService_GetGame_NotFound(t *testing.T) {
	svc := service.NewCatalogueService(newFakeCatalogueRepo(), newFakeFavouriteRepo())

	_, err := svc.GetGame(context.Background(), 99)
	assert.ErrorIs(t, err, service.ErrGameNotFound)
}

func TestCatalogueService_DeleteGame(t *testing.T) {
	existing := validGame()
	existing.ID = 1
	svc := service.NewCatalogueService(newFakeCatalogueRepo(existing), newFakeFavouriteRepo())

	require.NoError(t, svc.DeleteGame(context.Background(), 1))

	_, err := svc.GetGame(context.Background(), 1)
	assert.ErrorIs(t, err, service.ErrGameNotFound)
}
