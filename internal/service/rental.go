package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mzawadzki/ludoteka-api/internal/authz"
	"github.com/mzawadzki/ludoteka-api/internal/domain"
	"github.com/mzawadzki/ludoteka-api/internal/repository"
)

var (
	ErrRentalNotFound       = repository.ErrRentalNotFound
	ErrGameAlreadyRented    = repository.ErrGameAlreadyRented
	ErrHistoryEntryNotFound = repository.ErrHistoryEntryNotFound

	ErrInvalidDate        = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrNoExtensionPending = errors.New("no extension request pending")
)

type RentalRepository interface {
	Create(ctx context.Context, rental domain.Rental) (domain.Rental, error)
	Update(ctx context.Context, rental domain.Rental) (domain.Rental, error)
	FindByID(ctx context.Context, id uint) (domain.Rental, error)
	ListAll(ctx context.Context) ([]domain.RentalListing, error)
	ListByUser(ctx context.Context, userID uint) ([]domain.RentalListing, error)
	Delete(ctx context.Context, id uint) error
	Archive(ctx context.Context, id uint) error
	ListHistory(ctx context.Context) ([]domain.HistoryListing, error)
	ListHistoryByUser(ctx context.Context, userID uint) ([]domain.HistoryListing, error)
	DeleteHistoryEntry(ctx context.Context, id uint) error
}

// RentalService drives the rental lifecycle: reservation, pickup, extension
// request/acceptance/withdrawal and archival into history. Route-level
// privileges are enforced by the middleware; the ownership rules that need
// the loaded rental are enforced here.
type RentalService struct {
	repo RentalRepository
	favs FavouriteReader
}

func NewRentalService(repo RentalRepository, favs FavouriteReader) *RentalService {
	return &RentalService{
		repo: repo,
		favs: favs,
	}
}

func parseDate(value string) (time.Time, error) {
	date, err := time.Parse(domain.DateLayout, value)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}

	return date, nil
}

// SaveRental reserves a game (id 0) or updates an existing rental. A
// non-admin always rents for themselves and may only touch their own
// rentals; only an admin may set a foreign user id. Updating a rental
// clears any pending extension request.
func (s *RentalService) SaveRental(ctx context.Context, id *authz.Identity, rentalID, gameID, userID uint, rentalDate, returnDate string) (domain.Rental, error) {
	rentedFrom, err := parseDate(rentalDate)
	if err != nil {
		return domain.Rental{}, err
	}
	rentedUntil, err := parseDate(returnDate)
	if err != nil {
		return domain.Rental{}, err
	}

	if userID == 0 {
		userID = id.UserID
	}
	if err = authz.Check(id, authz.SelfOrAdmin, userID); err != nil {
		return domain.Rental{}, err
	}

	if rentalID == 0 {
		created, err := s.repo.Create(ctx, domain.Rental{
			GameID:     gameID,
			UserID:     userID,
			RentalDate: rentedFrom,
			ReturnDate: rentedUntil,
		})
		if err != nil {
			if errors.Is(err, repository.ErrGameAlreadyRented) {
				return domain.Rental{}, ErrGameAlreadyRented
			}

			return domain.Rental{}, fmt.Errorf("s.repo.Create -> %w", err)
		}

		return created, nil
	}

	rental, err := s.repo.FindByID(ctx, rentalID)
	if err != nil {
		if errors.Is(err, repository.ErrRentalNotFound) {
			return domain.Rental{}, ErrRentalNotFound
		}

		return domain.Rental{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	if err = authz.Check(id, authz.SelfOrAdmin, rental.UserID); err != nil {
		return domain.Rental{}, err
	}

	rental.GameID = gameID
	rental.UserID = userID
	rental.RentalDate = rentedFrom
	rental.ReturnDate = rentedUntil
	rental.ExtensionDate = nil

	updated, err := s.repo.Update(ctx, rental)
	if err != nil {
		if errors.Is(err, repository.ErrGameAlreadyRented) {
			return domain.Rental{}, ErrGameAlreadyRented
		}

		return domain.Rental{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// MarkPickedUp records that the renter collected the game.
func (s *RentalService) MarkPickedUp(ctx context.Context, rentalID uint) (domain.Rental, error) {
	rental, err := s.repo.FindByID(ctx, rentalID)
	if err != nil {
		if errors.Is(err, repository.ErrRentalNotFound) {
			return domain.Rental{}, ErrRentalNotFound
		}

		return domain.Rental{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	rental.PickedUp = true
	updated, err := s.repo.Update(ctx, rental)
	if err != nil {
		return domain.Rental{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// RequestExtension files a return-date extension request on the rental.
// Only the owner or an admin may file one.
func (s *RentalService) RequestExtension(ctx context.Context, id *authz.Identity, rentalID uint, newDate string) (domain.Rental, error) {
	rental, err := s.repo.FindByID(ctx, rentalID)
	if err != nil {
		if errors.Is(err, repository.ErrRentalNotFound) {
			return domain.Rental{}, ErrRentalNotFound
		}

		return domain.Rental{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if err = authz.Check(id, authz.SelfOrAdmin, rental.UserID); err != nil {
		return domain.Rental{}, err
	}

	extension, err := parseDate(newDate)
	if err != nil {
		return domain.Rental{}, err
	}

	rental.ExtensionDate = &extension
	updated, err := s.repo.Update(ctx, rental)
	if err != nil {
		return domain.Rental{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// AcceptExtension replaces the return date with the requested extension
// date and clears the request. The route is admin-only.
func (s *RentalService) AcceptExtension(ctx context.Context, rentalID uint) (domain.Rental, error) {
	rental, err := s.repo.FindByID(ctx, rentalID)
	if err != nil {
		if errors.Is(err, repository.ErrRentalNotFound) {
			return domain.Rental{}, ErrRentalNotFound
		}

		return domain.Rental{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if rental.ExtensionDate == nil {
		return domain.Rental{}, ErrNoExtensionPending
	}

	rental.ReturnDate = *rental.ExtensionDate
	rental.ExtensionDate = nil

	updated, err := s.repo.Update(ctx, rental)
	if err != nil {
		return domain.Rental{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// WithdrawExtension clears a pending extension request, leaving the return
// date untouched. Same ownership rule as filing one.
func (s *RentalService) WithdrawExtension(ctx context.Context, id *authz.Identity, rentalID uint) (domain.Rental, error) {
	rental, err := s.repo.FindByID(ctx, rentalID)
	if err != nil {
		if errors.Is(err, repository.ErrRentalNotFound) {
			return domain.Rental{}, ErrRentalNotFound
		}

		return domain.Rental{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if err = authz.Check(id, authz.SelfOrAdmin, rental.UserID); err != nil {
		return domain.Rental{}, err
	}

	rental.ExtensionDate = nil
	updated, err := s.repo.Update(ctx, rental)
	if err != nil {
		return domain.Rental{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// ArchiveRental moves the rental into history. A non-admin may archive only
// their own rental and only while it has not been picked up; an admin may
// archive any rental. The move is all-or-nothing.
func (s *RentalService) ArchiveRental(ctx context.Context, id *authz.Identity, rentalID uint) error {
	rental, err := s.repo.FindByID(ctx, rentalID)
	if err != nil {
		if errors.Is(err, repository.ErrRentalNotFound) {
			return ErrRentalNotFound
		}

		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if !id.IsAdmin {
		if rental.UserID != id.UserID || rental.PickedUp {
			return authz.ErrForbidden
		}
	}

	if err = s.repo.Archive(ctx, rentalID); err != nil {
		return fmt.Errorf("s.repo.Archive -> %w", err)
	}

	return nil
}

func (s *RentalService) DeleteRental(ctx context.Context, rentalID uint) error {
	if err := s.repo.Delete(ctx, rentalID); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

// ListRentals returns every active rental with game and renter details,
// ordered by rental date.
func (s *RentalService) ListRentals(ctx context.Context) ([]domain.RentalListing, error) {
	listings, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListAll -> %w", err)
	}

	return listings, nil
}

// ListUserRentals returns one user's active rentals. markFavourites adds the
// caller's favourite flag; admin views of foreign users skip it.
func (s *RentalService) ListUserRentals(ctx context.Context, userID uint, markFavourites bool) ([]domain.RentalListing, error) {
	listings, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListByUser -> %w", err)
	}

	if markFavourites {
		favs, err := s.favs.GameIDSet(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("s.favs.GameIDSet -> %w", err)
		}
		for i := range listings {
			listings[i].IsFavourite = favs[listings[i].GameID]
		}
	}

	return listings, nil
}

func (s *RentalService) ListHistory(ctx context.Context) ([]domain.HistoryListing, error) {
	listings, err := s.repo.ListHistory(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListHistory -> %w", err)
	}

	return listings, nil
}

func (s *RentalService) ListUserHistory(ctx context.Context, userID uint, markFavourites bool) ([]domain.HistoryListing, error) {
	listings, err := s.repo.ListHistoryByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListHistoryByUser -> %w", err)
	}

	if markFavourites {
		favs, err := s.favs.GameIDSet(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("s.favs.GameIDSet -> %w", err)
		}
		for i := range listings {
			listings[i].IsFavourite = favs[listings[i].GameID]
		}
	}

	return listings, nil
}

func (s *RentalService) DeleteHistoryEntry(ctx context.Context, id uint) error {
	if err := s.repo.DeleteHistoryEntry(ctx, id); err != nil {
		return fmt.Errorf("s.repo.DeleteHistoryEntry -> %w", err)
	}

	return nil
}
