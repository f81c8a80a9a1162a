package repository

import (
	"context"

	"mediahub/internal/api/models"

	"gorm.io/gorm"
)

type FavoriteRepository interface {
	Add(ctx context.Context, fav *models.Favorite) error
	Remove(ctx context.Context, username string, mediaID int64) (bool, error)
	Exists(ctx context.Context, username string, mediaID int64) (bool, error)
	ListByUser(ctx context.Context, username string) ([]models.Favorite, error)
	CountByUser(ctx context.Context, username string) (int64, error)
}

// favoriteRepository is the GORM implementation of FavoriteRepository.
type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Add(ctx context.Context, fav *models.Favorite) error {
	return r.db.WithContext(ctx).Create(fav).Error
}

func (r *favoriteRepository) Remove(ctx context.Context, username string, mediaID int64) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("username = ? AND media_id = ?", username, mediaID).
		Delete(&models.Favorite{})
	return result.RowsAffected > 0, result.Error
}

func (r *favoriteRepository) Exists(ctx context.Context, username string, mediaID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Favorite{}).
		Where("username = ? AND media_id = ?", username, mediaID).
		Count(&count).Error
	return count > 0, err
}

func (r *favoriteRepository) ListByUser(ctx context.Context, username string) ([]models.Favorite, error) {
	var favorites []models.Favorite
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		Preload("Media").
		Order("created_at DESC").
		Find(&favorites).Error
	if err != nil {
		return nil, err
	}
	return favorites, nil
}

func (r *favoriteRepository) CountByUser(ctx context.Context, username string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Favorite{}).
		Where("username = ?", username).
		Count(&count).Error
	return count, err
}
