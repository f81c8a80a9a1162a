package service

import (
	"context"

	"mediahub/internal/api/models"
	"mediahub/internal/api/repository"

	"github.com/stretchr/testify/mock"
)

// MockRatingRepository mocks the RatingRepository interface
type MockRatingRepository struct {
	mock.Mock
}

func (m *MockRatingRepository) Upsert(ctx context.Context, rating *models.Rating) error {
	args := m.Called(ctx, rating)
	return args.Error(0)
}

func (m *MockRatingRepository) GetByID(ctx context.Context, id int64) (*models.Rating, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rating), args.Error(1)
}

func (m *MockRatingRepository) GetByMediaAndUser(ctx context.Context, mediaID int64, username string) (*models.Rating, error) {
	args := m.Called(ctx, mediaID, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rating), args.Error(1)
}

func (m *MockRatingRepository) GetByMedia(ctx context.Context, mediaID int64, confirmedOnly bool) ([]models.Rating, error) {
	args := m.Called(ctx, mediaID, confirmedOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Rating), args.Error(1)
}

func (m *MockRatingRepository) GetByUser(ctx context.Context, username string) ([]models.Rating, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Rating), args.Error(1)
}

func (m *MockRatingRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRatingRepository) UpdateComment(ctx context.Context, id int64, comment string) (bool, error) {
	args := m.Called(ctx, id, comment)
	return args.Bool(0), args.Error(1)
}

func (m *MockRatingRepository) IncrementLikes(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRatingRepository) Confirm(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRatingRepository) AverageConfirmed(ctx context.Context, mediaID int64) (float64, error) {
	args := m.Called(ctx, mediaID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockRatingRepository) CountByUser(ctx context.Context, username string) (int64, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRatingRepository) AverageStarsByUser(ctx context.Context, username string) (float64, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockRatingRepository) LeaderboardCounts(ctx context.Context, limit int) ([]repository.LeaderboardRow, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.LeaderboardRow), args.Error(1)
}

// MockMediaRepository mocks the MediaRepository interface
type MockMediaRepository struct {
	mock.Mock
}

func (m *MockMediaRepository) Create(ctx context.Context, media *models.MediaEntry) error {
	args := m.Called(ctx, media)
	return args.Error(0)
}

func (m *MockMediaRepository) Update(ctx context.Context, media *models.MediaEntry) error {
	args := m.Called(ctx, media)
	return args.Error(0)
}

func (m *MockMediaRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMediaRepository) GetByID(ctx context.Context, id int64) (*models.MediaEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MediaEntry), args.Error(1)
}

func (m *MockMediaRepository) GetByIDs(ctx context.Context, ids []int64) ([]models.MediaEntry, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MediaEntry), args.Error(1)
}

func (m *MockMediaRepository) GetAll(ctx context.Context, page, pageSize int) ([]models.MediaEntry, int64, error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.MediaEntry), args.Get(1).(int64), args.Error(2)
}

func (m *MockMediaRepository) Search(ctx context.Context, filters repository.MediaSearchFilters) ([]models.MediaEntry, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MediaEntry), args.Error(1)
}

func (m *MockMediaRepository) GetUnratedBy(ctx context.Context, username string) ([]models.MediaEntry, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MediaEntry), args.Error(1)
}

func (m *MockMediaRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockMediaRepository) CountByCreator(ctx context.Context, username string) (int64, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMediaRepository) UpdateAverageRating(ctx context.Context, id int64, value float64) error {
	args := m.Called(ctx, id, value)
	return args.Error(0)
}

// MockFavoriteRepository mocks the FavoriteRepository interface
type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) Add(ctx context.Context, fav *models.Favorite) error {
	args := m.Called(ctx, fav)
	return args.Error(0)
}

func (m *MockFavoriteRepository) Remove(ctx context.Context, username string, mediaID int64) (bool, error) {
	args := m.Called(ctx, username, mediaID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavoriteRepository) Exists(ctx context.Context, username string, mediaID int64) (bool, error) {
	args := m.Called(ctx, username, mediaID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavoriteRepository) ListByUser(ctx context.Context, username string) ([]models.Favorite, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Favorite), args.Error(1)
}

func (m *MockFavoriteRepository) CountByUser(ctx context.Context, username string) (int64, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(int64), args.Error(1)
}
