package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mzawadzki/ludoteka-api/internal/domain"
	"github.com/mzawadzki/ludoteka-api/internal/repository"
)

var (
	ErrGameNotFound = repository.ErrGameNotFound

	ErrInvalidPlayerRange   = errors.New("min_players cannot be greater than max_players")
	ErrInvalidPlaytimeRange = errors.New("min_playtime cannot be greater than max_playtime")
	ErrInvalidWeight        = errors.New("weight cannot be equal to 0")
)

type CatalogueRepository interface {
	Create(ctx context.Context, game domain.BoardGame) (domain.BoardGame, error)
	Update(ctx context.Context, game domain.BoardGame) (domain.BoardGame, error)
	FindByID(ctx context.Context, id uint) (domain.BoardGame, error)
	ListWithRentalStatus(ctx context.Context) ([]domain.GameListing, error)
	ListAdmin(ctx context.Context) ([]domain.GameAdminListing, error)
	Delete(ctx context.Context, id uint) error
}

// FavouriteReader is the read side of the favourites relation, used to mark
// listings.
type FavouriteReader interface {
	GameIDSet(ctx context.Context, userID uint) (map[uint]bool, error)
}

type CatalogueService struct {
	repo CatalogueRepository
	favs FavouriteReader
}

func NewCatalogueService(repo CatalogueRepository, favs FavouriteReader) *CatalogueService {
	return &CatalogueService{
		repo: repo,
		favs: favs,
	}
}

// validateBoardGame checks the catalogue invariants before any save. It
// fails fast on the first violated rule; equal bounds are fine.
func validateBoardGame(game domain.BoardGame) error {
	if game.MinPlayers > game.MaxPlayers {
		return ErrInvalidPlayerRange
	}
	if game.MinPlaytime > game.MaxPlaytime {
		return ErrInvalidPlaytimeRange
	}
	if game.Weight == 0 {
		return ErrInvalidWeight
	}

	return nil
}

// SaveGame validates and persists a game. A zero id inserts a new record
// with an auto-assigned id, a nonzero id updates an existing one.
func (s *CatalogueService) SaveGame(ctx context.Context, game domain.BoardGame) (domain.BoardGame, error) {
	if err := validateBoardGame(game); err != nil {
		return domain.BoardGame{}, err
	}

	if game.ID == 0 {
		created, err := s.repo.Create(ctx, game)
		if err != nil {
			return domain.BoardGame{}, fmt.Errorf("s.repo.Create -> %w", err)
		}

		return created, nil
	}

	if _, err := s.repo.FindByID(ctx, game.ID); err != nil {
		if errors.Is(err, repository.ErrGameNotFound) {
			return domain.BoardGame{}, ErrGameNotFound
		}

		return domain.BoardGame{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	updated, err := s.repo.Update(ctx, game)
	if err != nil {
		return domain.BoardGame{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *CatalogueService) GetGame(ctx context.Context, id uint) (domain.BoardGame, error) {
	game, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.BoardGame{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return game, nil
}

// ListGames returns the user-facing catalogue ordered by title, with each
// game's rental status and the caller's favourite flag.
func (s *CatalogueService) ListGames(ctx context.Context, userID uint) ([]domain.GameListing, error) {
	listings, err := s.repo.ListWithRentalStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListWithRentalStatus -> %w", err)
	}

	favs, err := s.favs.GameIDSet(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("s.favs.GameIDSet -> %w", err)
	}

	for i := range listings {
		listings[i].IsFavourite = favs[listings[i].ID]
	}

	return listings, nil
}

// ListGamesAdmin returns full records with active rentals attached.
func (s *CatalogueService) ListGamesAdmin(ctx context.Context) ([]domain.GameAdminListing, error) {
	listings, err := s.repo.ListAdmin(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListAdmin -> %w", err)
	}

	return listings, nil
}

// DeleteGame removes a game; dependent rentals, history entries and
// favourites cascade at the storage layer.
func (s *CatalogueService) DeleteGame(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
