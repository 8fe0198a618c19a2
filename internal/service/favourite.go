package service

import (
	"context"
	"fmt"

	"github.com/mzawadzki/ludoteka-api/internal/domain"
)

type FavouriteRepository interface {
	Save(ctx context.Context, fav domain.Favourite) error
	Delete(ctx context.Context, userID, gameID uint) error
	GameIDSet(ctx context.Context, userID uint) (map[uint]bool, error)
}

type FavouriteService struct {
	repo FavouriteRepository
}

func NewFavouriteService(repo FavouriteRepository) *FavouriteService {
	return &FavouriteService{
		repo: repo,
	}
}

// Add bookmarks a game for the user. Adding an existing favourite is a
// no-op.
func (s *FavouriteService) Add(ctx context.Context, userID, gameID uint) error {
	if err := s.repo.Save(ctx, domain.Favourite{UserID: userID, GameID: gameID}); err != nil {
		return fmt.Errorf("s.repo.Save -> %w", err)
	}

	return nil
}

func (s *FavouriteService) Remove(ctx context.Context, userID, gameID uint) error {
	if err := s.repo.Delete(ctx, userID, gameID); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
