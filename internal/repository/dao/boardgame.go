package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrGameNotFound = errors.New("board game not found")

type BoardGame struct {
	ID uint `gorm:"primaryKey"`

	Title         string `gorm:"not null"`
	Weight        uint16 `gorm:"not null"`
	PhotoFilename string `gorm:"not null"`

	MinPlayers  uint8  `gorm:"not null"`
	MaxPlayers  uint8  `gorm:"not null"`
	MinPlaytime uint16 `gorm:"not null"`
	MaxPlaytime uint16 `gorm:"not null"`

	AdditionalInfo *string `gorm:"type:text"`
}

// GameRow is the catalogue listing shape: the game joined with the active
// rental's return date, if any.
type GameRow struct {
	ID            uint
	Title         string
	PhotoFilename string
	MinPlayers    uint8
	MaxPlayers    uint8
	MinPlaytime   uint16
	MaxPlaytime   uint16
	ReturnDate    *time.Time
}

type BoardGameDAO struct {
	db *gorm.DB
}

func NewBoardGameDAO(db *gorm.DB) *BoardGameDAO {
	return &BoardGameDAO{
		db: db,
	}
}

func (d *BoardGameDAO) Insert(ctx context.Context, game BoardGame) (BoardGame, error) {
	result := d.db.WithContext(ctx).Create(&game)
	if result.Error != nil {
		return BoardGame{}, result.Error
	}

	return game, nil
}

func (d *BoardGameDAO) Update(ctx context.Context, game BoardGame) (BoardGame, error) {
	result := d.db.WithContext(ctx).Save(&game)
	if result.Error != nil {
		return BoardGame{}, result.Error
	}

	return game, nil
}

func (d *BoardGameDAO) FindByID(ctx context.Context, id uint) (BoardGame, error) {
	var game BoardGame

	result := d.db.WithContext(ctx).First(&game, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return BoardGame{}, ErrGameNotFound
		}

		return BoardGame{}, result.Error
	}

	return game, nil
}

// ListWithRentalStatus returns every game ordered by title, each with the
// return date of its active rental when one exists.
func (d *BoardGameDAO) ListWithRentalStatus(ctx context.Context) ([]GameRow, error) {
	var rows []GameRow

	result := d.db.WithContext(ctx).
		Model(&BoardGame{}).
		Select("board_games.id, board_games.title, board_games.photo_filename, " +
			"board_games.min_players, board_games.max_players, " +
			"board_games.min_playtime, board_games.max_playtime, " +
			"rentals.return_date").
		Joins("LEFT JOIN rentals ON rentals.game_id = board_games.id").
		Order("board_games.title ASC").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}

func (d *BoardGameDAO) ListOrderedByTitle(ctx context.Context) ([]BoardGame, error) {
	var games []BoardGame

	result := d.db.WithContext(ctx).Order("title ASC").Find(&games)
	if result.Error != nil {
		return nil, result.Error
	}

	return games, nil
}

// Delete removes the game; rentals, history entries and favourites cascade
// at the storage layer.
func (d *BoardGameDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&BoardGame{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGameNotFound
	}

	return nil
}
