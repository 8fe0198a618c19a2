package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrRentalNotFound       = errors.New("rental not found")
	ErrGameAlreadyRented    = errors.New("game is already rented")
	ErrHistoryEntryNotFound = errors.New("rental history entry not found")
)

// Rental is an active rental. The unique index on GameID enforces one
// active rental per game.
type Rental struct {
	ID uint `gorm:"primaryKey"`

	GameID uint      `gorm:"uniqueIndex;not null"`
	Game   BoardGame `gorm:"foreignKey:GameID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	UserID uint      `gorm:"not null"`
	User   User      `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	RentalDate time.Time `gorm:"type:date;not null"`
	ReturnDate time.Time `gorm:"type:date;not null"`
	PickedUp   bool      `gorm:"not null;default:false"`

	// Pending extension request, nil when none.
	ExtensionDate *time.Time `gorm:"type:date"`
}

// RentalHistory keeps the id the rental had while active, so the key is not
// auto-generated.
type RentalHistory struct {
	ID uint `gorm:"primaryKey;autoIncrement:false"`

	GameID uint      `gorm:"not null"`
	Game   BoardGame `gorm:"foreignKey:GameID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	UserID uint      `gorm:"not null"`
	User   User      `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	RentalDate time.Time `gorm:"type:date;not null"`
	ReturnDate time.Time `gorm:"type:date;not null"`
	PickedUp   bool      `gorm:"not null"`
}

// RentalRow is a rental joined with its game and renter for overviews.
type RentalRow struct {
	ID            uint
	GameID        uint
	UserID        uint
	RentalDate    time.Time
	ReturnDate    time.Time
	PickedUp      bool
	ExtensionDate *time.Time
	Title         string
	PhotoFilename string
	Name          string
	Surname       string
}

// HistoryRow is the same shape for archived rentals, without the pending
// extension.
type HistoryRow struct {
	ID            uint
	GameID        uint
	UserID        uint
	RentalDate    time.Time
	ReturnDate    time.Time
	PickedUp      bool
	Title         string
	PhotoFilename string
	Name          string
	Surname       string
}

type RentalDAO struct {
	db *gorm.DB
}

func NewRentalDAO(db *gorm.DB) *RentalDAO {
	return &RentalDAO{
		db: db,
	}
}

func (d *RentalDAO) Insert(ctx context.Context, rental Rental) (Rental, error) {
	result := d.db.WithContext(ctx).Create(&rental)
	if result.Error != nil {
		return Rental{}, mapRentalError(result.Error)
	}

	return rental, nil
}

func (d *RentalDAO) Update(ctx context.Context, rental Rental) (Rental, error) {
	result := d.db.WithContext(ctx).Save(&rental)
	if result.Error != nil {
		return Rental{}, mapRentalError(result.Error)
	}

	return rental, nil
}

func mapRentalError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) &&
		pgErr.Code == pgerrcode.UniqueViolation &&
		strings.Contains(pgErr.Message, "idx_rentals_game_id") {
		return ErrGameAlreadyRented
	}

	return err
}

func (d *RentalDAO) FindByID(ctx context.Context, id uint) (Rental, error) {
	var rental Rental

	result := d.db.WithContext(ctx).First(&rental, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Rental{}, ErrRentalNotFound
		}

		return Rental{}, result.Error
	}

	return rental, nil
}

func (d *RentalDAO) FindByGameID(ctx context.Context, gameID uint) (Rental, error) {
	var rental Rental

	result := d.db.WithContext(ctx).First(&rental, "game_id = ?", gameID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Rental{}, ErrRentalNotFound
		}

		return Rental{}, result.Error
	}

	return rental, nil
}

func (d *RentalDAO) ListAll(ctx context.Context) ([]RentalRow, error) {
	var rows []RentalRow

	result := d.db.WithContext(ctx).
		Model(&Rental{}).
		Select("rentals.id, rentals.game_id, rentals.user_id, rentals.rental_date, " +
			"rentals.return_date, rentals.picked_up, rentals.extension_date, " +
			"board_games.title, board_games.photo_filename, users.name, users.surname").
		Joins("JOIN board_games ON board_games.id = rentals.game_id").
		Joins("JOIN users ON users.id = rentals.user_id").
		Order("rentals.rental_date ASC").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}

func (d *RentalDAO) ListByUser(ctx context.Context, userID uint) ([]RentalRow, error) {
	var rows []RentalRow

	result := d.db.WithContext(ctx).
		Model(&Rental{}).
		Select("rentals.id, rentals.game_id, rentals.user_id, rentals.rental_date, "+
			"rentals.return_date, rentals.picked_up, rentals.extension_date, "+
			"board_games.title, board_games.photo_filename").
		Joins("JOIN board_games ON board_games.id = rentals.game_id").
		Where("rentals.user_id = ?", userID).
		Order("rentals.rental_date ASC").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}

func (d *RentalDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Rental{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRentalNotFound
	}

	return nil
}

// Archive moves a rental into the history table. The insert and the delete
// run in one transaction: on any failure the active rental stays untouched.
func (d *RentalDAO) Archive(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rental Rental
		if err := tx.First(&rental, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRentalNotFound
			}

			return err
		}

		entry := RentalHistory{
			ID:         rental.ID,
			GameID:     rental.GameID,
			UserID:     rental.UserID,
			RentalDate: rental.RentalDate,
			ReturnDate: rental.ReturnDate,
			PickedUp:   rental.PickedUp,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}

		return tx.Delete(&Rental{}, rental.ID).Error
	})
}

func (d *RentalDAO) ListHistory(ctx context.Context) ([]HistoryRow, error) {
	var rows []HistoryRow

	result := d.db.WithContext(ctx).
		Model(&RentalHistory{}).
		Select("rental_histories.id, rental_histories.game_id, rental_histories.user_id, " +
			"rental_histories.rental_date, rental_histories.return_date, rental_histories.picked_up, " +
			"board_games.title, board_games.photo_filename, users.name, users.surname").
		Joins("JOIN board_games ON board_games.id = rental_histories.game_id").
		Joins("JOIN users ON users.id = rental_histories.user_id").
		Order("rental_histories.return_date DESC").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}

func (d *RentalDAO) ListHistoryByUser(ctx context.Context, userID uint) ([]HistoryRow, error) {
	var rows []HistoryRow

	result := d.db.WithContext(ctx).
		Model(&RentalHistory{}).
		Select("rental_histories.id, rental_histories.game_id, rental_histories.user_id, "+
			"rental_histories.rental_date, rental_histories.return_date, rental_histories.picked_up, "+
			"board_games.title, board_games.photo_filename").
		Joins("JOIN board_games ON board_games.id = rental_histories.game_id").
		Where("rental_histories.user_id = ?", userID).
		Order("rental_histories.return_date DESC").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}

func (d *RentalDAO) DeleteHistoryEntry(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&RentalHistory{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrHistoryEntryNotFound
	}

	return nil
}
