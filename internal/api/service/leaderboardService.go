package service

import (
	"context"

	"mediahub/internal/api/dto"
	"mediahub/internal/api/repository"
)

// LeaderboardService ranks users by how many ratings they have authored,
// confirmed or not.
type LeaderboardService interface {
	Leaderboard(ctx context.Context, limit int) ([]dto.LeaderboardEntry, error)
}

type leaderboardService struct {
	ratingRepo repository.RatingRepository
}

func NewLeaderboardService(ratingRepo repository.RatingRepository) LeaderboardService {
	return &leaderboardService{ratingRepo: ratingRepo}
}

// Leaderboard returns the most active raters, rank 1 first. Ties keep the
// order the rows come back in.
func (s *leaderboardService) Leaderboard(ctx context.Context, limit int) ([]dto.LeaderboardEntry, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	rows, err := s.ratingRepo.LeaderboardCounts(ctx, limit)
	if err != nil {
		return nil, err
	}

	entries := make([]dto.LeaderboardEntry, 0, len(rows))
	for i, row := range rows {
		entries = append(entries, dto.LeaderboardEntry{
			Rank:        i + 1,
			Username:    row.Username,
			RatingCount: row.RatingCount,
		})
	}
	return entries, nil
}
