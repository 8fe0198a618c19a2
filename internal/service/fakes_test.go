package service_test

import (
	"context"
	"sort"

	"github.com/mzawadzki/ludoteka-api/internal/domain"
	"github.com/mzawadzki/ludoteka-api/internal/repository"
)

// fakeUserRepo is an in-memory stand-in for the user repository. It mirrors
// the storage layer's sentinel behaviour so service error paths can be
// exercised without a database.
type fakeUserRepo struct {
	users map[uint]domain.User
}

func newFakeUserRepo(users ...domain.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[uint]domain.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}

	return repo
}

func (r *fakeUserRepo) emailTaken(email string, exceptID uint) bool {
	for _, u := range r.users {
		if u.Email == email && u.ID != exceptID {
			return true
		}
	}

	return false
}

func (r *fakeUserRepo) Create(_ context.Context, user domain.User) (domain.User, error) {
	if r.emailTaken(user.Email, user.ID) {
		return domain.User{}, repository.ErrUserEmailExists
	}

	r.users[user.ID] = user

	return user, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user domain.User) (domain.User, error) {
	if _, ok := r.users[user.ID]; !ok {
		return domain.User{}, repository.ErrUserNotFound
	}
	if r.emailTaken(user.Email, user.ID) {
		return domain.User{}, repository.ErrUserEmailExists
	}

	r.users[user.ID] = user

	return user, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uint) (domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return domain.User{}, repository.ErrUserNotFound
	}

	return user, nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]domain.User, error) {
	users := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].Surname < users[j].Surname
	})

	return users, nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.users[id]; !ok {
		return repository.ErrUserNotFound
	}

	delete(r.users, id)

	return nil
}

type fakeCatalogueRepo struct {
	games  map[uint]domain.BoardGame
	nextID uint
}

func newFakeCatalogueRepo(games ...domain.BoardGame) *fakeCatalogueRepo {
	repo := &fakeCatalogueRepo{games: make(map[uint]domain.BoardGame)}
	for _, g := range games {
		repo.games[g.ID] = g
		if g.ID > repo.nextID {
			repo.nextID = g.ID
		}
	}

	return repo
}

func (r *fakeCatalogueRepo) Create(_ context.Context, game domain.BoardGame) (domain.BoardGame, error) {
	r.nextID++
	game.ID = r.nextID
	r.games[game.ID] = game

	return game, nil
}

func (r *fakeCatalogueRepo) Update(_ context.Context, game domain.BoardGame) (domain.BoardGame, error) {
	if _, ok := r.games[game.ID]; !ok {
		return domain.BoardGame{}, repository.ErrGameNotFound
	}

	r.games[game.ID] = game

	return game, nil
}

func (r *fakeCatalogueRepo) FindByID(_ context.Context, id uint) (domain.BoardGame, error) {
	game, ok := r.games[id]
	if !ok {
		return domain.BoardGame{}, repository.ErrGameNotFound
	}

	return game, nil
}

func (r *fakeCatalogueRepo) ListWithRentalStatus(_ context.Context) ([]domain.GameListing, error) {
	listings := make([]domain.GameListing, 0, len(r.games))
	for _, g := range r.games {
		listings = append(listings, domain.GameListing{
			ID:            g.ID,
			Title:         g.Title,
			PhotoFilename: g.PhotoFilename,
			MinPlayers:    g.MinPlayers,
			MaxPlayers:    g.MaxPlayers,
			MinPlaytime:   g.MinPlaytime,
			MaxPlaytime:   g.MaxPlaytime,
		})
	}
	sort.Slice(listings, func(i, j int) bool {
		return listings[i].Title < listings[j].Title
	})

	return listings, nil
}

func (r *fakeCatalogueRepo) ListAdmin(_ context.Context) ([]domain.GameAdminListing, error) {
	listings := make([]domain.GameAdminListing, 0, len(r.games))
	for _, g := range r.games {
		listings = append(listings, domain.GameAdminListing{BoardGame: g})
	}
	sort.Slice(listings, func(i, j int) bool {
		return listings[i].Title < listings[j].Title
	})

	return listings, nil
}

func (r *fakeCatalogueRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.games[id]; !ok {
		return repository.ErrGameNotFound
	}

	delete(r.games, id)

	return nil
}

// fakeRentalRepo keeps active rentals and history in memory. archiveErr
// injects a storage failure into Archive so the all-or-nothing behaviour can
// be asserted.
type fakeRentalRepo struct {
	rentals    map[uint]domain.Rental
	history    map[uint]domain.HistoryEntry
	nextID     uint
	archiveErr error
}

func newFakeRentalRepo(rentals ...domain.Rental) *fakeRentalRepo {
	repo := &fakeRentalRepo{
		rentals: make(map[uint]domain.Rental),
		history: make(map[uint]domain.HistoryEntry),
	}
	for _, r2 := range rentals {
		repo.rentals[r2.ID] = r2
		if r2.ID > repo.nextID {
			repo.nextID = r2.ID
		}
	}

	return repo
}

func (r *fakeRentalRepo) gameRented(gameID, exceptID uint) bool {
	for _, rental := range r.rentals {
		if rental.GameID == gameID && rental.ID != exceptID {
			return true
		}
	}

	return false
}

func (r *fakeRentalRepo) Create(_ context.Context, rental domain.Rental) (domain.Rental, error) {
	if r.gameRented(rental.GameID, 0) {
		return domain.Rental{}, repository.ErrGameAlreadyRented
	}

	r.nextID++
	rental.ID = r.nextID
	r.rentals[rental.ID] = rental

	return rental, nil
}

func (r *fakeRentalRepo) Update(_ context.Context, rental domain.Rental) (domain.Rental, error) {
	if _, ok := r.rentals[rental.ID]; !ok {
		return domain.Rental{}, repository.ErrRentalNotFound
	}
	if r.gameRented(rental.GameID, rental.ID) {
		return domain.Rental{}, repository.ErrGameAlreadyRented
	}

	r.rentals[rental.ID] = rental

	return rental, nil
}

func (r *fakeRentalRepo) FindByID(_ context.Context, id uint) (domain.Rental, error) {
	rental, ok := r.rentals[id]
	if !ok {
		return domain.Rental{}, repository.ErrRentalNotFound
	}

	return rental, nil
}

func (r *fakeRentalRepo) ListAll(_ context.Context) ([]domain.RentalListing, error) {
	listings := make([]domain.RentalListing, 0, len(r.rentals))
	for _, rental := range r.rentals {
		listings = append(listings, domain.RentalListing{Rental: rental})
	}
	sort.Slice(listings, func(i, j int) bool {
		return listings[i].RentalDate.Before(listings[j].RentalDate)
	})

	return listings, nil
}

func (r *fakeRentalRepo) ListByUser(_ context.Context, userID uint) ([]domain.RentalListing, error) {
	listings := make([]domain.RentalListing, 0)
	for _, rental := range r.rentals {
		if rental.UserID == userID {
			listings = append(listings, domain.RentalListing{Rental: rental})
		}
	}
	sort.Slice(listings, func(i, j int) bool {
		return listings[i].RentalDate.Before(listings[j].RentalDate)
	})

	return listings, nil
}

func (r *fakeRentalRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.rentals[id]; !ok {
		return repository.ErrRentalNotFound
	}

	delete(r.rentals, id)

	return nil
}

func (r *fakeRentalRepo) Archive(_ context.Context, id uint) error {
	rental, ok := r.rentals[id]
	if !ok {
		return repository.ErrRentalNotFound
	}
	if r.archiveErr != nil {
		return r.archiveErr
	}

	r.history[rental.ID] = domain.HistoryEntry{
		ID:         rental.ID,
		GameID:     rental.GameID,
		UserID:     rental.UserID,
		RentalDate: rental.RentalDate,
		ReturnDate: rental.ReturnDate,
		PickedUp:   rental.PickedUp,
	}
	delete(r.rentals, id)

	return nil
}

func (r *fakeRentalRepo) ListHistory(_ context.Context) ([]domain.HistoryListing, error) {
	listings := make([]domain.HistoryListing, 0, len(r.history))
	for _, entry := range r.history {
		listings = append(listings, domain.HistoryListing{HistoryEntry: entry})
	}
	sort.Slice(listings, func(i, j int) bool {
		return listings[i].ReturnDate.After(listings[j].ReturnDate)
	})

	return listings, nil
}

func (r *fakeRentalRepo) ListHistoryByUser(_ context.Context, userID uint) ([]domain.HistoryListing, error) {
	listings := make([]domain.HistoryListing, 0)
	for _, entry := range r.history {
		if entry.UserID == userID {
			listings = append(listings, domain.HistoryListing{HistoryEntry: entry})
		}
	}
	sort.Slice(listings, func(i, j int) bool {
		return listings[i].ReturnDate.After(listings[j].ReturnDate)
	})

	return listings, nil
}

func (r *fakeRentalRepo) DeleteHistoryEntry(_ context.Context, id uint) error {
	if _, ok := r.history[id]; !ok {
		return repository.ErrHistoryEntryNotFound
	}

	delete(r.history, id)

	return nil
}

// fakeFavouriteRepo maps user ids to their favourite game ids.
type fakeFavouriteRepo struct {
	favourites map[uint]map[uint]bool
}

func newFakeFavouriteRepo() *fakeFavouriteRepo {
	return &fakeFavouriteRepo{favourites: make(map[uint]map[uint]bool)}
}

func (r *fakeFavouriteRepo) Save(_ context.Context, fav domain.Favourite) error {
	if r.favourites[fav.UserID] == nil {
		r.favourites[fav.UserID] = make(map[uint]bool)
	}
	r.favourites[fav.UserID][fav.GameID] = true

	return nil
}

func (r *fakeFavouriteRepo) Delete(_ context.Context, userID, gameID uint) error {
	delete(r.favourites[userID], gameID)

	return nil
}

func (r *fakeFavouriteRepo) GameIDSet(_ context.Context, userID uint) (map[uint]bool, error) {
	set := make(map[uint]bool, len(r.favourites[userID]))
	for gameID := range r.favourites[userID] {
		set[gameID] = true
	}

	return set, nil
}
