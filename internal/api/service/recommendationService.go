package service

import (
	"context"
	"errors"
	"sort"
	"strings"

	"mediahub/internal/api/models"
	"mediahub/internal/api/repository"
)

var ErrInvalidLimit = errors.New("limit must be greater than 0")

// likedThreshold is the minimum star score for a rating to seed
// recommendations.
const likedThreshold = 4

// RecommendationService suggests media a user has not rated yet, based on
// genre overlap with media the user rated highly.
type RecommendationService interface {
	Recommend(ctx context.Context, username string, limit int) ([]models.MediaEntry, error)
}

type recommendationService struct {
	ratingRepo repository.RatingRepository
	mediaRepo  repository.MediaRepository
}

func NewRecommendationService(ratingRepo repository.RatingRepository, mediaRepo repository.MediaRepository) RecommendationService {
	return &recommendationService{
		ratingRepo: ratingRepo,
		mediaRepo:  mediaRepo,
	}
}

// Recommend returns up to limit unrated media entries whose genres overlap
// with some media the user rated with likedThreshold stars or more, best
// average first. A user with no highly rated media gets an empty list.
func (s *recommendationService) Recommend(ctx context.Context, username string, limit int) ([]models.MediaEntry, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	ratings, err := s.ratingRepo.GetByUser(ctx, username)
	if err != nil {
		return nil, err
	}

	likedIDs := make([]int64, 0, len(ratings))
	for _, r := range ratings {
		if r.Stars >= likedThreshold {
			likedIDs = append(likedIDs, r.MediaID)
		}
	}
	if len(likedIDs) == 0 {
		return []models.MediaEntry{}, nil
	}

	likedMedia, err := s.mediaRepo.GetByIDs(ctx, likedIDs)
	if err != nil {
		return nil, err
	}

	candidates, err := s.mediaRepo.GetUnratedBy(ctx, username)
	if err != nil {
		return nil, err
	}

	matched := make([]models.MediaEntry, 0, len(candidates))
	for _, candidate := range candidates {
		for _, liked := range likedMedia {
			if genresOverlap(candidate.Genres, liked.Genres) {
				matched = append(matched, candidate)
				break
			}
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].AverageRating > matched[j].AverageRating
	})

	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

// genresOverlap applies the symmetric first-genre heuristic: the leading
// comma-delimited token of either side must appear somewhere in the other
// side's full genre string. Media without genres never match.
func genresOverlap(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(b, firstGenreToken(a)) || strings.Contains(a, firstGenreToken(b))
}

// firstGenreToken returns the genre string up to the first comma.
func firstGenreToken(genres string) string {
	if i := strings.Index(genres, ","); i >= 0 {
		return genres[:i]
	}
	return genres
}
