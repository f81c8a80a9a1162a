package repository

import (
	"context"
	"fmt"

	"mediahub/internal/api/models"

	"gorm.io/gorm"
)

// MediaSearchFilters holds the optional search criteria. Zero values mean
// "no filter" for that field.
type MediaSearchFilters struct {
	Title          string
	Genre          string
	MediaType      models.MediaType
	MinRating      float64
	AgeRestriction int
}

type MediaRepository interface {
	Create(ctx context.Context, m *models.MediaEntry) error
	Update(ctx context.Context, m *models.MediaEntry) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*models.MediaEntry, error)
	GetByIDs(ctx context.Context, ids []int64) ([]models.MediaEntry, error)
	GetAll(ctx context.Context, page, pageSize int) ([]models.MediaEntry, int64, error)
	Search(ctx context.Context, filters MediaSearchFilters) ([]models.MediaEntry, error)
	GetUnratedBy(ctx context.Context, username string) ([]models.MediaEntry, error)
	Exists(ctx context.Context, id int64) (bool, error)
	CountByCreator(ctx context.Context, username string) (int64, error)
	UpdateAverageRating(ctx context.Context, id int64, value float64) error
}

// mediaRepository is the GORM implementation of MediaRepository.
type mediaRepository struct {
	db *gorm.DB
}

func NewMediaRepository(db *gorm.DB) MediaRepository {
	return &mediaRepository{db: db}
}

func (r *mediaRepository) Create(ctx context.Context, m *models.MediaEntry) error {
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("create media: %w", err)
	}
	// GORM populates m.ID and m.CreatedAt
	return nil
}

func (r *mediaRepository) Update(ctx context.Context, m *models.MediaEntry) error {
	// Select the writable columns explicitly so the derived average_rating
	// column can never be smuggled in through a media edit.
	err := r.db.WithContext(ctx).Model(m).
		Select("title", "description", "media_type", "release_year", "genres", "age_restriction").
		Updates(m).Error
	if err != nil {
		return fmt.Errorf("update media: %w", err)
	}
	return nil
}

func (r *mediaRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&models.MediaEntry{}, id).Error; err != nil {
		return fmt.Errorf("delete media: %w", err)
	}
	return nil
}

func (r *mediaRepository) GetByID(ctx context.Context, id int64) (*models.MediaEntry, error) {
	var m models.MediaEntry
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *mediaRepository) GetByIDs(ctx context.Context, ids []int64) ([]models.MediaEntry, error) {
	var list []models.MediaEntry
	if len(ids) == 0 {
		return list, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *mediaRepository) GetAll(ctx context.Context, page, pageSize int) ([]models.MediaEntry, int64, error) {
	var list []models.MediaEntry
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.MediaEntry{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := r.db.WithContext(ctx).
		Order("created_at desc").
		Limit(pageSize).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

// Search applies the non-zero filters. Title and genre are case-insensitive
// partial matches.
func (r *mediaRepository) Search(ctx context.Context, filters MediaSearchFilters) ([]models.MediaEntry, error) {
	var list []models.MediaEntry
	q := r.db.WithContext(ctx).Model(&models.MediaEntry{})

	if filters.Title != "" {
		q = q.Where("title ILIKE ?", "%"+filters.Title+"%")
	}
	if filters.Genre != "" {
		q = q.Where("genres ILIKE ?", "%"+filters.Genre+"%")
	}
	if filters.MediaType != "" {
		q = q.Where("media_type = ?", filters.MediaType)
	}
	if filters.MinRating > 0 {
		q = q.Where("average_rating >= ?", filters.MinRating)
	}
	if filters.AgeRestriction > 0 {
		q = q.Where("age_restriction <= ?", filters.AgeRestriction)
	}

	if err := q.Order("average_rating desc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// GetUnratedBy returns every media entry the user has not rated yet, the
// candidate set for recommendations.
func (r *mediaRepository) GetUnratedBy(ctx context.Context, username string) ([]models.MediaEntry, error) {
	var list []models.MediaEntry
	sub := r.db.Model(&models.Rating{}).Select("media_id").Where("username = ?", username)
	if err := r.db.WithContext(ctx).Where("id NOT IN (?)", sub).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *mediaRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.MediaEntry{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *mediaRepository) CountByCreator(ctx context.Context, username string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.MediaEntry{}).
		Where("creator = ?", username).
		Count(&count).Error
	return count, err
}

// UpdateAverageRating is the only write path for the derived average. It is
// called by the rating service after every mutation that can change the
// confirmed set.
func (r *mediaRepository) UpdateAverageRating(ctx context.Context, id int64, value float64) error {
	err := r.db.WithContext(ctx).Model(&models.MediaEntry{}).
		Where("id = ?", id).
		Update("average_rating", value).Error
	if err != nil {
		return fmt.Errorf("update average rating: %w", err)
	}
	return nil
}
