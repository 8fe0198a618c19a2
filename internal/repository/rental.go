package repository

import (
	"context"
	"fmt"

	"github.com/mzawadzki/ludoteka-api/internal/domain"
	"github.com/mzawadzki/ludoteka-api/internal/repository/dao"
)

var (
	ErrRentalNotFound       = dao.ErrRentalNotFound
	ErrGameAlreadyRented    = dao.ErrGameAlreadyRented
	ErrHistoryEntryNotFound = dao.ErrHistoryEntryNotFound
)

type RentalDAO interface {
	Insert(ctx context.Context, rental dao.Rental) (dao.Rental, error)
	Update(ctx context.Context, rental dao.Rental) (dao.Rental, error)
	FindByID(ctx context.Context, id uint) (dao.Rental, error)
	ListAll(ctx context.Context) ([]dao.RentalRow, error)
	ListByUser(ctx context.Context, userID uint) ([]dao.RentalRow, error)
	Delete(ctx context.Context, id uint) error
	Archive(ctx context.Context, id uint) error
	ListHistory(ctx context.Context) ([]dao.HistoryRow, error)
	ListHistoryByUser(ctx context.Context, userID uint) ([]dao.HistoryRow, error)
	DeleteHistoryEntry(ctx context.Context, id uint) error
}

type RentalRepository struct {
	dao RentalDAO
}

func NewRentalRepository(dao RentalDAO) *RentalRepository {
	return &RentalRepository{
		dao: dao,
	}
}

func (r *RentalRepository) Create(ctx context.Context, rental domain.Rental) (domain.Rental, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(rental))
	if err != nil {
		return domain.Rental{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *RentalRepository) Update(ctx context.Context, rental domain.Rental) (domain.Rental, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(rental))
	if err != nil {
		return domain.Rental{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *RentalRepository) FindByID(ctx context.Context, id uint) (domain.Rental, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Rental{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *RentalRepository) ListAll(ctx context.Context) ([]domain.RentalListing, error) {
	rows, err := r.dao.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListAll -> %w", err)
	}

	return r.rowsToListings(rows), nil
}

func (r *RentalRepository) ListByUser(ctx context.Context, userID uint) ([]domain.RentalListing, error) {
	rows, err := r.dao.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListByUser -> %w", err)
	}

	return r.rowsToListings(rows), nil
}

func (r *RentalRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *RentalRepository) Archive(ctx context.Context, id uint) error {
	if err := r.dao.Archive(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Archive -> %w", err)
	}

	return nil
}

func (r *RentalRepository) ListHistory(ctx context.Context) ([]domain.HistoryListing, error) {
	rows, err := r.dao.ListHistory(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListHistory -> %w", err)
	}

	return r.historyRowsToListings(rows), nil
}

func (r *RentalRepository) ListHistoryByUser(ctx context.Context, userID uint) ([]domain.HistoryListing, error) {
	rows, err := r.dao.ListHistoryByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListHistoryByUser -> %w", err)
	}

	return r.historyRowsToListings(rows), nil
}

func (r *RentalRepository) DeleteHistoryEntry(ctx context.Context, id uint) error {
	if err := r.dao.DeleteHistoryEntry(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteHistoryEntry -> %w", err)
	}

	return nil
}

func (r *RentalRepository) rowsToListings(rows []dao.RentalRow) []domain.RentalListing {
	listings := make([]domain.RentalListing, len(rows))
	for i, row := range rows {
		listings[i] = domain.RentalListing{
			Rental: domain.Rental{
				ID:            row.ID,
				GameID:        row.GameID,
				UserID:        row.UserID,
				RentalDate:    row.RentalDate,
				ReturnDate:    row.ReturnDate,
				PickedUp:      row.PickedUp,
				ExtensionDate: row.ExtensionDate,
			},
			Title:         row.Title,
			PhotoFilename: row.PhotoFilename,
			Name:          row.Name,
			Surname:       row.Surname,
		}
	}

	return listings
}

func (r *RentalRepository) historyRowsToListings(rows []dao.HistoryRow) []domain.HistoryListing {
	listings := make([]domain.HistoryListing, len(rows))
	for i, row := range rows {
		listings[i] = domain.HistoryListing{
			HistoryEntry: domain.HistoryEntry{
				ID:         row.ID,
				GameID:     row.GameID,
				UserID:     row.UserID,
				RentalDate: row.RentalDate,
				ReturnDate: row.ReturnDate,
				PickedUp:   row.PickedUp,
			},
			Title:         row.Title,
			PhotoFilename: row.PhotoFilename,
			Name:          row.Name,
			Surname:       row.Surname,
		}
	}

	return listings
}

func (r *RentalRepository) domainToDao(rental domain.Rental) dao.Rental {
	return dao.Rental{
		ID:            rental.ID,
		GameID:        rental.GameID,
		UserID:        rental.UserID,
		RentalDate:    rental.RentalDate,
		ReturnDate:    rental.ReturnDate,
		PickedUp:      rental.PickedUp,
		ExtensionDate: rental.ExtensionDate,
	}
}

func (r *RentalRepository) daoToDomain(rental dao.Rental) domain.Rental {
	return domain.Rental{
		ID:            rental.ID,
		GameID:        rental.GameID,
		UserID:        rental.UserID,
		RentalDate:    rental.RentalDate,
		ReturnDate:    rental.ReturnDate,
		PickedUp:      rental.PickedUp,
		ExtensionDate: rental.ExtensionDate,
	}
}
