package service

import (
	"context"
	"errors"
	"strings"

	"mediahub/internal/api/models"
	"mediahub/internal/api/repository"

	"gorm.io/gorm"
)

var (
	ErrMediaNotFound    = errors.New("media not found")
	ErrNotMediaCreator  = errors.New("you can only modify your own media entries")
	ErrTitleRequired    = errors.New("title cannot be empty")
	ErrInvalidMediaType = errors.New("media type must be movie, series or game")
)

type MediaService interface {
	Create(ctx context.Context, media *models.MediaEntry, creator string) (*models.MediaEntry, error)
	Update(ctx context.Context, id int64, media *models.MediaEntry, username string) (*models.MediaEntry, error)
	Delete(ctx context.Context, id int64, username string) error
	GetByID(ctx context.Context, id int64) (*models.MediaEntry, error)
	GetAll(ctx context.Context, page, pageSize int) ([]models.MediaEntry, int64, error)
	Search(ctx context.Context, filters repository.MediaSearchFilters) ([]models.MediaEntry, error)
}

type mediaService struct {
	mediaRepo repository.MediaRepository
}

func NewMediaService(mediaRepo repository.MediaRepository) MediaService {
	return &mediaService{mediaRepo: mediaRepo}
}

func (s *mediaService) Create(ctx context.Context, media *models.MediaEntry, creator string) (*models.MediaEntry, error) {
	if strings.TrimSpace(media.Title) == "" {
		return nil, ErrTitleRequired
	}
	if !media.MediaType.Valid() {
		return nil, ErrInvalidMediaType
	}

	// Creator comes from the authenticated caller, never from the payload.
	media.Creator = creator
	media.AverageRating = 0

	if err := s.mediaRepo.Create(ctx, media); err != nil {
		return nil, err
	}
	return media, nil
}

// Update overwrites the editable fields of a media entry. Only the creator
// may update; the derived average is not an editable field.
func (s *mediaService) Update(ctx context.Context, id int64, media *models.MediaEntry, username string) (*models.MediaEntry, error) {
	existing, err := s.mediaRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMediaNotFound
		}
		return nil, err
	}

	if existing.Creator != username {
		return nil, ErrNotMediaCreator
	}

	if strings.TrimSpace(media.Title) == "" {
		return nil, ErrTitleRequired
	}
	if !media.MediaType.Valid() {
		return nil, ErrInvalidMediaType
	}

	media.ID = id
	media.Creator = existing.Creator
	if err := s.mediaRepo.Update(ctx, media); err != nil {
		return nil, err
	}
	return s.mediaRepo.GetByID(ctx, id)
}

func (s *mediaService) Delete(ctx context.Context, id int64, username string) error {
	existing, err := s.mediaRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMediaNotFound
		}
		return err
	}

	if existing.Creator != username {
		return ErrNotMediaCreator
	}

	return s.mediaRepo.Delete(ctx, id)
}

func (s *mediaService) GetByID(ctx context.Context, id int64) (*models.MediaEntry, error) {
	media, err := s.mediaRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMediaNotFound
		}
		return nil, err
	}
	return media, nil
}

func (s *mediaService) GetAll(ctx context.Context, page, pageSize int) ([]models.MediaEntry, int64, error) {
	return s.mediaRepo.GetAll(ctx, page, pageSize)
}

func (s *mediaService) Search(ctx context.Context, filters repository.MediaSearchFilters) ([]models.MediaEntry, error) {
	return s.mediaRepo.Search(ctx, filters)
}
