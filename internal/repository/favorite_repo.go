package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/anonimax/anonimax-server/internal/model"
)

var ErrAlreadyFavorited = errors.New("profile already favorited")

type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

func (r *FavoriteRepository) Add(fav *model.Favorite) error {
	var existing model.Favorite
	err := r.db.Where("user_id = ? AND target_anonimax_id = ?", fav.UserID, fav.TargetAnonimaxID).
		First(&existing).Error
	if err == nil {
		return ErrAlreadyFavorited
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return r.db.Create(fav).Error
}

func (r *FavoriteRepository) Remove(userID int64, targetAnonimaxID string) error {
	result := r.db.Where("user_id = ? AND target_anonimax_id = ?", userID, targetAnonimaxID).
		Delete(&model.Favorite{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *FavoriteRepository) ListByUser(userID int64) ([]model.Favorite, error) {
	var favorites []model.Favorite
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&favorites).Error
	return favorites, err
}

func (r *FavoriteRepository) Exists(userID int64, targetAnonimaxID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Favorite{}).
		Where("user_id = ? AND target_anonimax_id = ?", userID, targetAnonimaxID).
		Count(&count).Error
	return count > 0, err
}
