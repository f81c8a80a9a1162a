package service

import (
	"context"
	"errors"
	"fmt"

	"mediahub/internal/api/models"
	"mediahub/internal/api/repository"

	"gorm.io/gorm"
)

var (
	ErrInvalidStars   = errors.New("stars must be between 1 and 5")
	ErrRatingNotFound = errors.New("rating not found")
	ErrNotRatingOwner = errors.New("you can only modify your own ratings")
)

// RatingService owns the rating lifecycle: one rating per user per media,
// the moderation flow, and keeping the media's average in sync with the
// confirmed ratings.
type RatingService interface {
	Submit(ctx context.Context, mediaID int64, username string, stars int, comment string) (*models.Rating, error)
	Delete(ctx context.Context, ratingID int64, username string) (bool, error)
	UpdateComment(ctx context.Context, ratingID int64, username, newComment string) (bool, error)
	DeleteComment(ctx context.Context, ratingID int64, username string) (bool, error)
	Like(ctx context.Context, ratingID int64) (bool, error)
	Confirm(ctx context.Context, ratingID int64) (bool, error)
	GetByID(ctx context.Context, ratingID int64) (*models.Rating, error)
	GetByMedia(ctx context.Context, mediaID int64, confirmedOnly bool) ([]models.Rating, error)
	GetHistory(ctx context.Context, username string) ([]models.Rating, error)
	GetUserRatingForMedia(ctx context.Context, mediaID int64, username string) (*models.Rating, error)
}

type ratingService struct {
	ratingRepo repository.RatingRepository
	mediaRepo  repository.MediaRepository
}

func NewRatingService(ratingRepo repository.RatingRepository, mediaRepo repository.MediaRepository) RatingService {
	return &ratingService{
		ratingRepo: ratingRepo,
		mediaRepo:  mediaRepo,
	}
}

// Submit creates the user's rating for a media entry, or overwrites stars and
// comment when one exists already. An overwritten rating keeps its likes but
// loses its confirmed status, since changed content goes back through
// moderation. The media's average is recomputed afterwards.
func (s *ratingService) Submit(ctx context.Context, mediaID int64, username string, stars int, comment string) (*models.Rating, error) {
	if stars < 1 || stars > 5 {
		return nil, ErrInvalidStars
	}

	rating := &models.Rating{
		MediaID:   mediaID,
		Username:  username,
		Stars:     stars,
		Comment:   comment,
		Confirmed: false,
		Likes:     0,
	}

	// Single-statement upsert on the (media_id, username) unique constraint.
	// No read-then-branch, so concurrent submits for the same pair just race
	// to last-writer-wins inside the database.
	if err := s.ratingRepo.Upsert(ctx, rating); err != nil {
		return nil, fmt.Errorf("submit rating: %w", err)
	}

	// Reload to pick up the server-assigned id, preserved likes and timestamps.
	saved, err := s.ratingRepo.GetByMediaAndUser(ctx, mediaID, username)
	if err != nil {
		return nil, fmt.Errorf("reload rating: %w", err)
	}

	if err := s.refreshMediaAverage(ctx, mediaID); err != nil {
		return nil, err
	}

	return saved, nil
}

// Delete removes a rating. Only the owner may delete, and the media's average
// is recomputed because a confirmed rating may have left the set.
func (s *ratingService) Delete(ctx context.Context, ratingID int64, username string) (bool, error) {
	rating, err := s.ratingRepo.GetByID(ctx, ratingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrRatingNotFound
		}
		return false, err
	}

	if rating.Username != username {
		return false, ErrNotRatingOwner
	}

	deleted, err := s.ratingRepo.Delete(ctx, ratingID)
	if err != nil {
		return false, err
	}

	if deleted {
		if err := s.refreshMediaAverage(ctx, rating.MediaID); err != nil {
			return true, err
		}
	}

	return deleted, nil
}

// UpdateComment replaces the comment text only. The rating loses its
// confirmed status (edited comments need re-moderation) but stars are
// unchanged, so the media's average is deliberately not recomputed.
func (s *ratingService) UpdateComment(ctx context.Context, ratingID int64, username, newComment string) (bool, error) {
	rating, err := s.ratingRepo.GetByID(ctx, ratingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrRatingNotFound
		}
		return false, err
	}

	if rating.Username != username {
		return false, ErrNotRatingOwner
	}

	return s.ratingRepo.UpdateComment(ctx, ratingID, newComment)
}

// DeleteComment clears the comment while keeping the stars.
func (s *ratingService) DeleteComment(ctx context.Context, ratingID int64, username string) (bool, error) {
	return s.UpdateComment(ctx, ratingID, username, "")
}

// Like increments the like counter. Anyone may like a rating; a like on a
// rating that no longer exists is a harmless no-op reported as false.
func (s *ratingService) Like(ctx context.Context, ratingID int64) (bool, error) {
	return s.ratingRepo.IncrementLikes(ctx, ratingID)
}

// Confirm releases a rating from moderation. There is no un-confirm path.
// A confirmed rating starts counting toward the media's average, so the
// average is recomputed. Confirming twice is idempotent.
func (s *ratingService) Confirm(ctx context.Context, ratingID int64) (bool, error) {
	confirmed, err := s.ratingRepo.Confirm(ctx, ratingID)
	if err != nil || !confirmed {
		return false, err
	}

	rating, err := s.ratingRepo.GetByID(ctx, ratingID)
	if err != nil {
		return true, err
	}
	if err := s.refreshMediaAverage(ctx, rating.MediaID); err != nil {
		return true, err
	}

	return true, nil
}

func (s *ratingService) GetByID(ctx context.Context, ratingID int64) (*models.Rating, error) {
	rating, err := s.ratingRepo.GetByID(ctx, ratingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRatingNotFound
		}
		return nil, err
	}
	return rating, nil
}

func (s *ratingService) GetByMedia(ctx context.Context, mediaID int64, confirmedOnly bool) ([]models.Rating, error) {
	return s.ratingRepo.GetByMedia(ctx, mediaID, confirmedOnly)
}

func (s *ratingService) GetHistory(ctx context.Context, username string) ([]models.Rating, error) {
	return s.ratingRepo.GetByUser(ctx, username)
}

func (s *ratingService) GetUserRatingForMedia(ctx context.Context, mediaID int64, username string) (*models.Rating, error) {
	rating, err := s.ratingRepo.GetByMediaAndUser(ctx, mediaID, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRatingNotFound
		}
		return nil, err
	}
	return rating, nil
}

// refreshMediaAverage re-aggregates the mean star score over the confirmed
// ratings of a media entry (0 when none) and persists it. Always a full
// recompute, never incremental.
func (s *ratingService) refreshMediaAverage(ctx context.Context, mediaID int64) error {
	avg, err := s.ratingRepo.AverageConfirmed(ctx, mediaID)
	if err != nil {
		return fmt.Errorf("average ratings: %w", err)
	}
	return s.mediaRepo.UpdateAverageRating(ctx, mediaID, avg)
}
