package repository

import (
	"context"
	"fmt"

	"github.com/mzawadzki/ludoteka-api/internal/domain"
	"github.com/mzawadzki/ludoteka-api/internal/repository/dao"
)

type FavouriteDAO interface {
	Save(ctx context.Context, fav dao.Favourite) error
	Delete(ctx context.Context, userID, gameID uint) error
	ListGameIDs(ctx context.Context, userID uint) ([]uint, error)
}

type FavouriteRepository struct {
	dao FavouriteDAO
}

func NewFavouriteRepository(dao FavouriteDAO) *FavouriteRepository {
	return &FavouriteRepository{
		dao: dao,
	}
}

func (r *FavouriteRepository) Save(ctx context.Context, fav domain.Favourite) error {
	if err := r.dao.Save(ctx, dao.Favourite{UserID: fav.UserID, GameID: fav.GameID}); err != nil {
		return fmt.Errorf("r.dao.Save -> %w", err)
	}

	return nil
}

func (r *FavouriteRepository) Delete(ctx context.Context, userID, gameID uint) error {
	if err := r.dao.Delete(ctx, userID, gameID); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

// GameIDSet returns the user's bookmarked game ids as a set, the building
// block for the is_favourite flag on listings.
func (r *FavouriteRepository) GameIDSet(ctx context.Context, userID uint) (map[uint]bool, error) {
	ids, err := r.dao.ListGameIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListGameIDs -> %w", err)
	}

	set := make(map[uint]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}

	return set, nil
}
