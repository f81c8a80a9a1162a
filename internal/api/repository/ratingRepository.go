package repository

import (
	"context"

	"mediahub/internal/api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LeaderboardRow is one aggregated leaderboard entry as it comes back from
// the ratings/users join. Rank is assigned by the service layer.
type LeaderboardRow struct {
	Username    string `json:"username"`
	RatingCount int    `json:"rating_count"`
}

type RatingRepository interface {
	Upsert(ctx context.Context, rating *models.Rating) error
	GetByID(ctx context.Context, id int64) (*models.Rating, error)
	GetByMediaAndUser(ctx context.Context, mediaID int64, username string) (*models.Rating, error)
	GetByMedia(ctx context.Context, mediaID int64, confirmedOnly bool) ([]models.Rating, error)
	GetByUser(ctx context.Context, username string) ([]models.Rating, error)
	Delete(ctx context.Context, id int64) (bool, error)
	UpdateComment(ctx context.Context, id int64, comment string) (bool, error)
	IncrementLikes(ctx context.Context, id int64) (bool, error)
	Confirm(ctx context.Context, id int64) (bool, error)
	AverageConfirmed(ctx context.Context, mediaID int64) (float64, error)
	CountByUser(ctx context.Context, username string) (int64, error)
	AverageStarsByUser(ctx context.Context, username string) (float64, error)
	LeaderboardCounts(ctx context.Context, limit int) ([]LeaderboardRow, error)
}

// ratingRepository is the GORM implementation of RatingRepository.
type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// Upsert inserts a rating or, when the (media_id, username) pair already
// exists, overwrites stars and comment on the existing row in one statement.
// Likes and created_at are left alone; confirmed is reset because a changed
// rating goes back through moderation.
func (r *ratingRepository) Upsert(ctx context.Context, rating *models.Rating) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "media_id"}, {Name: "username"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"stars":      rating.Stars,
			"comment":    rating.Comment,
			"confirmed":  false,
			"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(rating).Error
}

func (r *ratingRepository) GetByID(ctx context.Context, id int64) (*models.Rating, error) {
	var rating models.Rating
	if err := r.db.WithContext(ctx).First(&rating, id).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *ratingRepository) GetByMediaAndUser(ctx context.Context, mediaID int64, username string) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.WithContext(ctx).
		Where("media_id = ? AND username = ?", mediaID, username).
		First(&rating).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *ratingRepository) GetByMedia(ctx context.Context, mediaID int64, confirmedOnly bool) ([]models.Rating, error) {
	var ratings []models.Rating
	q := r.db.WithContext(ctx).Where("media_id = ?", mediaID)
	if confirmedOnly {
		q = q.Where("confirmed = ?", true)
	}
	if err := q.Order("created_at DESC").Find(&ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *ratingRepository) GetByUser(ctx context.Context, username string) ([]models.Rating, error) {
	var ratings []models.Rating
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		Order("created_at DESC").
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *ratingRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&models.Rating{}, id)
	return result.RowsAffected > 0, result.Error
}

// UpdateComment replaces the comment text and sends the rating back through
// moderation. Stars and likes are untouched.
func (r *ratingRepository) UpdateComment(ctx context.Context, id int64, comment string) (bool, error) {
	result := r.db.WithContext(ctx).Model(&models.Rating{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"comment":   comment,
			"confirmed": false,
		})
	return result.RowsAffected > 0, result.Error
}

func (r *ratingRepository) IncrementLikes(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).Model(&models.Rating{}).
		Where("id = ?", id).
		Update("likes", gorm.Expr("likes + 1"))
	return result.RowsAffected > 0, result.Error
}

func (r *ratingRepository) Confirm(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).Model(&models.Rating{}).
		Where("id = ?", id).
		Update("confirmed", true)
	return result.RowsAffected > 0, result.Error
}

// AverageConfirmed calculates the mean star score over confirmed ratings for
// a media entry. Returns 0 when no confirmed rating exists.
func (r *ratingRepository) AverageConfirmed(ctx context.Context, mediaID int64) (float64, error) {
	var avg struct {
		Average float64
	}
	err := r.db.WithContext(ctx).Model(&models.Rating{}).
		Select("COALESCE(AVG(stars), 0) as average").
		Where("media_id = ? AND confirmed = ?", mediaID, true).
		Scan(&avg).Error
	if err != nil {
		return 0, err
	}
	return avg.Average, nil
}

func (r *ratingRepository) CountByUser(ctx context.Context, username string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Rating{}).
		Where("username = ?", username).
		Count(&count).Error
	return count, err
}

func (r *ratingRepository) AverageStarsByUser(ctx context.Context, username string) (float64, error) {
	var avg struct {
		Average float64
	}
	err := r.db.WithContext(ctx).Model(&models.Rating{}).
		Select("COALESCE(AVG(stars), 0) as average").
		Where("username = ?", username).
		Scan(&avg).Error
	if err != nil {
		return 0, err
	}
	return avg.Average, nil
}

// LeaderboardCounts returns users ordered by how many ratings they authored,
// most active first. The LEFT JOIN keeps users with zero ratings in the list.
func (r *ratingRepository) LeaderboardCounts(ctx context.Context, limit int) ([]LeaderboardRow, error) {
	var rows []LeaderboardRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT u.username, COUNT(r.id) AS rating_count
		FROM users u
		LEFT JOIN ratings r ON u.username = r.username
		GROUP BY u.username
		ORDER BY rating_count DESC
		LIMIT ?`, limit).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
