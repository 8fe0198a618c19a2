package dao

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Favourite is a pure membership relation on a composite key.
type Favourite struct {
	UserID uint `gorm:"primaryKey;autoIncrement:false"`
	User   User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	GameID uint      `gorm:"primaryKey;autoIncrement:false"`
	Game   BoardGame `gorm:"foreignKey:GameID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

type FavouriteDAO struct {
	db *gorm.DB
}

func NewFavouriteDAO(db *gorm.DB) *FavouriteDAO {
	return &FavouriteDAO{
		db: db,
	}
}

// Save marks a game as a favourite. Saving an existing membership is a no-op.
func (d *FavouriteDAO) Save(ctx context.Context, fav Favourite) error {
	result := d.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&fav)

	return result.Error
}

func (d *FavouriteDAO) Delete(ctx context.Context, userID, gameID uint) error {
	result := d.db.WithContext(ctx).
		Where("user_id = ? AND game_id = ?", userID, gameID).
		Delete(&Favourite{})

	return result.Error
}

// ListGameIDs returns the ids of every game the user has bookmarked.
func (d *FavouriteDAO) ListGameIDs(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint

	result := d.db.WithContext(ctx).
		Model(&Favourite{}).
		Where("user_id = ?", userID).
		Pluck("game_id", &ids)
	if result.Error != nil {
		return nil, result.Error
	}

	return ids, nil
}
