package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/mzawadzki/ludoteka-api/internal/domain"
	"github.com/mzawadzki/ludoteka-api/internal/repository/dao"
)

var ErrGameNotFound = dao.ErrGameNotFound

type BoardGameDAO interface {
	Insert(ctx context.Context, game dao.BoardGame) (dao.BoardGame, error)
	Update(ctx context.Context, game dao.BoardGame) (dao.BoardGame, error)
	FindByID(ctx context.Context, id uint) (dao.BoardGame, error)
	ListWithRentalStatus(ctx context.Context) ([]dao.GameRow, error)
	ListOrderedByTitle(ctx context.Context) ([]dao.BoardGame, error)
	Delete(ctx context.Context, id uint) error
}

type BoardGameRepository struct {
	dao       BoardGameDAO
	rentalDAO RentalQueryDAO
}

// RentalQueryDAO is the slice of the rental DAO the catalogue needs for its
// admin listing.
type RentalQueryDAO interface {
	FindByGameID(ctx context.Context, gameID uint) (dao.Rental, error)
}

func NewBoardGameRepository(dao BoardGameDAO, rentalDAO RentalQueryDAO) *BoardGameRepository {
	return &BoardGameRepository{
		dao:       dao,
		rentalDAO: rentalDAO,
	}
}

func (r *BoardGameRepository) Create(ctx context.Context, game domain.BoardGame) (domain.BoardGame, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(game))
	if err != nil {
		return domain.BoardGame{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *BoardGameRepository) Update(ctx context.Context, game domain.BoardGame) (domain.BoardGame, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(game))
	if err != nil {
		return domain.BoardGame{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *BoardGameRepository) FindByID(ctx context.Context, id uint) (domain.BoardGame, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.BoardGame{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

// ListWithRentalStatus returns the user-facing catalogue: every game by
// title with its rental return date when rented.
func (r *BoardGameRepository) ListWithRentalStatus(ctx context.Context) ([]domain.GameListing, error) {
	rows, err := r.dao.ListWithRentalStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListWithRentalStatus -> %w", err)
	}

	listings := make([]domain.GameListing, len(rows))
	for i, row := range rows {
		listings[i] = domain.GameListing{
			ID:            row.ID,
			Title:         row.Title,
			PhotoFilename: row.PhotoFilename,
			MinPlayers:    row.MinPlayers,
			MaxPlayers:    row.MaxPlayers,
			MinPlaytime:   row.MinPlaytime,
			MaxPlaytime:   row.MaxPlaytime,
			ReturnDate:    row.ReturnDate,
		}
	}

	return listings, nil
}

// ListAdmin returns full game records, each paired with its active rental.
func (r *BoardGameRepository) ListAdmin(ctx context.Context) ([]domain.GameAdminListing, error) {
	games, err := r.dao.ListOrderedByTitle(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListOrderedByTitle -> %w", err)
	}

	listings := make([]domain.GameAdminListing, len(games))
	for i, g := range games {
		listings[i] = domain.GameAdminListing{BoardGame: r.daoToDomain(g)}

		rental, err := r.rentalDAO.FindByGameID(ctx, g.ID)
		if err != nil {
			if errors.Is(err, dao.ErrRentalNotFound) {
				continue
			}

			return nil, fmt.Errorf("r.rentalDAO.FindByGameID -> %w", err)
		}

		listings[i].Rental = &domain.Rental{
			ID:            rental.ID,
			GameID:        rental.GameID,
			UserID:        rental.UserID,
			RentalDate:    rental.RentalDate,
			ReturnDate:    rental.ReturnDate,
			PickedUp:      rental.PickedUp,
			ExtensionDate: rental.ExtensionDate,
		}
	}

	return listings, nil
}

func (r *BoardGameRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *BoardGameRepository) domainToDao(g domain.BoardGame) dao.BoardGame {
	var info *string
	if g.AdditionalInfo != "" {
		i := g.AdditionalInfo
		info = &i
	}

	return dao.BoardGame{
		ID:             g.ID,
		Title:          g.Title,
		Weight:         g.Weight,
		PhotoFilename:  g.PhotoFilename,
		MinPlayers:     g.MinPlayers,
		MaxPlayers:     g.MaxPlayers,
		MinPlaytime:    g.MinPlaytime,
		MaxPlaytime:    g.MaxPlaytime,
		AdditionalInfo: info,
	}
}

func (r *BoardGameRepository) daoToDomain(g dao.BoardGame) domain.BoardGame {
	info := ""
	if g.AdditionalInfo != nil {
		info = *g.AdditionalInfo
	}

	return domain.BoardGame{
		ID:             g.ID,
		Title:          g.Title,
		Weight:         g.Weight,
		PhotoFilename:  g.PhotoFilename,
		MinPlayers:     g.MinPlayers,
		MaxPlayers:     g.MaxPlayers,
		MinPlaytime:    g.MinPlaytime,
		MaxPlaytime:    g.MaxPlaytime,
		AdditionalInfo: info,
	}
}
