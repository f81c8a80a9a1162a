package service

import (
	"context"
	"errors"

	"mediahub/internal/api/models"
	"mediahub/internal/api/repository"
)

var (
	ErrAlreadyFavorite = errors.New("media already in favorites")
	ErrNotFavorite     = errors.New("media not in favorites")
)

type FavoriteService interface {
	Add(ctx context.Context, username string, mediaID int64) error
	Remove(ctx context.Context, username string, mediaID int64) error
	List(ctx context.Context, username string) ([]models.Favorite, error)
}

type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	mediaRepo    repository.MediaRepository
}

func NewFavoriteService(favoriteRepo repository.FavoriteRepository, mediaRepo repository.MediaRepository) FavoriteService {
	return &favoriteService{
		favoriteRepo: favoriteRepo,
		mediaRepo:    mediaRepo,
	}
}

func (s *favoriteService) Add(ctx context.Context, username string, mediaID int64) error {
	exists, err := s.mediaRepo.Exists(ctx, mediaID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrMediaNotFound
	}

	alreadyFav, err := s.favoriteRepo.Exists(ctx, username, mediaID)
	if err != nil {
		return err
	}
	if alreadyFav {
		return ErrAlreadyFavorite
	}

	return s.favoriteRepo.Add(ctx, &models.Favorite{
		Username: username,
		MediaID:  mediaID,
	})
}

func (s *favoriteService) Remove(ctx context.Context, username string, mediaID int64) error {
	removed, err := s.favoriteRepo.Remove(ctx, username, mediaID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrNotFavorite
	}
	return nil
}

func (s *favoriteService) List(ctx context.Context, username string) ([]models.Favorite, error) {
	return s.favoriteRepo.ListByUser(ctx, username)
}
