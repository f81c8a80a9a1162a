package service

import (
	"context"
	"errors"

	"mediahub/internal/api/dto"
	"mediahub/internal/api/repository"

	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

// UserService serves user profiles with activity stats.
type UserService interface {
	GetProfile(ctx context.Context, username string) (*dto.UserProfileResponse, error)
}

type userService struct {
	userRepo     repository.UserRepository
	mediaRepo    repository.MediaRepository
	ratingRepo   repository.RatingRepository
	favoriteRepo repository.FavoriteRepository
}

func NewUserService(
	userRepo repository.UserRepository,
	mediaRepo repository.MediaRepository,
	ratingRepo repository.RatingRepository,
	favoriteRepo repository.FavoriteRepository,
) UserService {
	return &userService{
		userRepo:     userRepo,
		mediaRepo:    mediaRepo,
		ratingRepo:   ratingRepo,
		favoriteRepo: favoriteRepo,
	}
}

func (s *userService) GetProfile(ctx context.Context, username string) (*dto.UserProfileResponse, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	mediaCount, err := s.mediaRepo.CountByCreator(ctx, username)
	if err != nil {
		return nil, err
	}
	ratingCount, err := s.ratingRepo.CountByUser(ctx, username)
	if err != nil {
		return nil, err
	}
	favoriteCount, err := s.favoriteRepo.CountByUser(ctx, username)
	if err != nil {
		return nil, err
	}
	averageStars, err := s.ratingRepo.AverageStarsByUser(ctx, username)
	if err != nil {
		return nil, err
	}

	return &dto.UserProfileResponse{
		Username:      user.Username,
		Email:         user.Email,
		Role:          user.Role,
		CreatedAt:     user.CreatedAt,
		LastLogin:     user.LastLogin,
		MediaCount:    mediaCount,
		RatingCount:   ratingCount,
		FavoriteCount: favoriteCount,
		AverageStars:  averageStars,
	}, nil
}
