package service

import (
	"context"
	"testing"

	"mediahub/internal/api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestSubmit_InvalidStars(t *testing.T) {
	mockRatingRepo := new(MockRatingRepository)
	mockMediaRepo := new(MockMediaRepository)
	ratingService := NewRatingService(mockRatingRepo, mockMediaRepo)

	for _, stars := range []int{0, 6, -1, 100} {
		rating, err := ratingService.Submit(context.Background(), 1, "alice", stars, "bad")
		assert.Equal(t, ErrInvalidStars, err)
		assert.Nil(t, rating)
	}

	// Repos must not be touched on validation failure
	mockRatingRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestSubmit_BoundaryStarsAccepted(t *testing.T) {
	for _, stars := range []int{1, 5} {
		mockRatingRepo := new(MockRatingRepository)
		mockMediaRepo := new(MockMediaRepository)
		ratingService := NewRatingService(mockRatingRepo, mockMediaRepo)

		saved := &models.Rating{ID: 7, MediaID: 1, Username: "alice", Stars: stars}
		mockRatingRepo.On("Upsert", mock.Anything, mock.AnythingOfType("*models.Rating")).Return(nil)
		mockRatingRepo.On("GetByMediaAndUser", mock.Anything, int64(1), "alice").Return(saved, nil)
		mockRatingRepo.On("AverageConfirmed", mock.Anything, int64(1)).Return(0.0, nil)
		mockMediaRepo.On("UpdateAverageRating", mock.Anything, int64(1), 0.0).Return(nil)

		rating, err := ratingService.Submit(context.Background(), 1, "alice", stars, "")

		assert.NoError(t, err)
		assert.Equal(t, stars, rating.Stars)
		mockRatingRepo.AssertExpectations(t)
		mockMediaRepo.AssertExpectations(t)
	}
}

func TestSubmit_UpsertResetsConfirmed(t *testing.T) {
	mockRatingRepo := new(MockRatingRepository)
	mockMediaRepo := new(MockMediaRepository)
	ratingService := NewRatingService(mockRatingRepo, mockMediaRepo)

	// The previously confirmed row comes back unconfirmed with its likes kept
	saved := &models.Rating{ID: 7, MediaID: 3, Username: "alice", Stars: 2, Confirmed: false, Likes: 12}
	mockRatingRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(r *models.Rating) bool {
		return r.MediaID == 3 && r.Username == "alice" && r.Stars == 2 && !r.Confirmed
	})).Return(nil)
	mockRatingRepo.On("GetByMediaAndUser", mock.Anything, int64(3), "alice").Return(saved, nil)
	mockRatingRepo.On("AverageConfirmed", mock.Anything, int64(3)).Return(4.5, nil)
	mockMediaRepo.On("UpdateAverageRating", mock.Anything, int64(3), 4.5).Return(nil)

	rating, err := ratingService.Submit(context.Background(), 3, "alice", 2, "changed my mind")

	assert.NoError(t, err)
	assert.False(t, rating.Confirmed)
	assert.Equal(t, 12, rating.Likes)
	mockRatingRepo.AssertExpectations(t)
	mockMediaRepo.AssertExpectations(t)
}

func TestDelete_Success(t *testing.T) {
	mockRatingRepo := new(MockRatingRepository)
	mockMediaRepo := new(MockMediaRepository)
	ratingService := NewRatingService(mockRatingRepo, mockMediaRepo)

	existing := &models.Rating{ID: 7, MediaID: 3, Username: "alice", Stars: 5, Confirmed: true}
	mockRatingRepo.On("GetByID", mock.Anything, int64(7)).Return(existing, nil)
	mockRatingRepo.On("Delete", mock.Anything, int64(7)).Return(true, nil)
	mockRatingRepo.On("AverageConfirmed", mock.Anything, int64(3)).Return(3.0, nil)
	mockMediaRepo.On("UpdateAverageRating", mock.Anything, int64(3), 3.0).Return(nil)

	deleted, err := ratingService.Delete(context.Background(), 7, "alice")

	assert.NoError(t, err)
	assert.True(t, deleted)
	mockRatingRepo.AssertExpectations(t)
	mockMediaRepo.AssertExpectations(t)
}

func TestDelete_NotOwner(t *testing.T) {
	mockRatingRepo := new(MockRatingRepository)
	mockMediaRepo := new(MockMediaRepository)
	ratingService := NewRatingService(mockRatingRepo, mockMediaRepo)

	existing := &models.Rating{ID: 7, MediaID: 3, Username: "alice"}
	mockRatingRepo.On("GetByID", mock.Anything, int64(7)).Return(existing, nil)

	deleted, err := ratingService.Delete(context.Background(), 7, "mallory")

	assert.Equal(t, ErrNotRatingOwner, err)
	assert.False(t, deleted)
	mockRatingRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	mockMediaRepo.AssertNotCalled(t, "UpdateAverageRating", mock.Anything, mock.Anything, mock.Anything)
}

func TestDelete_NotFound(t *testing.T) {
	mockRatingRepo := new(MockRatingRepository)
	mockMediaRepo := new(MockMediaRepository)
	ratingService := NewRatingService(mockRatingRepo, mockMediaRepo)

	mockRatingRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	deleted, err := ratingService.Delete(context.Background(), 99, "alice")

	assert.Equal(t, ErrRatingNotFound, err)
	assert.False(t, deleted)
}

func TestUpdateComment_DoesNotRecomputeAverage(t *testing.T) {
	mockRatingRepo := new(MockRatingRepository)
	mockMediaRepo := new(MockMediaRepository)
	ratingService := NewRatingService(mockRatingRepo, mockMediaRepo)

	existing := &models.Rating{ID: 7, MediaID: 3, Username: "alice", Stars: 4, Confirmed: true}
	mockRatingRepo.On("GetByID", mock.Anything, int64(7)).Return(existing, nil)
	mockRatingRepo.On("UpdateComment", mock.Anything, int64(7), "edited").Return(true, nil)

	updated, err := ratingService.UpdateComment(context.Background(), 7, "alice", "edited")

	assert.NoError(t, err)
	assert.True(t, updated)
	// Stars did not change, so the media average must stay untouched even
	// though the rating dropped out of the confirmed set.
	mockMediaRepo.AssertNotCalled(t, "UpdateAverageRating", mock.Anything, mock.Anything, mock.Anything)
	mockRatingRepo.AssertExpectations(t)
}

func TestUpdateComment_NotOwner(t *testing.T) {
	mockRatingRepo := new(MockRatingRepository)
	mockMediaRepo := new(MockMediaRepository)
	ratingService := NewRatingService(mockRatingRepo, mockMediaRepo)

	existing := &models.Rating{ID: 7, MediaID: 3, Username: "alice"}
	mockRatingRepo.On("GetByID", mock.Anything, int64(7)).Return(existing, nil)

	updated, err := ratingService.UpdateComment(context.Background(), 7, "mallory", "spam")

	assert.Equal(t, ErrNotRatingOwner, err)
	assert.False(t, updated)
	mockRatingRepo.AssertNotCalled(t, "UpdateComment", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteComment_ClearsText(t *testing.T) {
	mockRatingRepo := new(MockRatingRepository)
	mockMediaRepo := new(MockMediaRepository)
	ratingService := NewRatingService(mockRatingRepo, mockMediaRepo)

	existing := &models.Rating{ID: 7, MediaID: 3, Username: "alice", Comment: "old"}
	mockRatingRepo.On("GetByID", mock.Anything, int64(7)).Return(existing, nil)
	mockRatingRepo.On("UpdateComment", mock.Anything, int64(7), "").Return(true, nil)

	cleared, err := ratingService.DeleteComment(context.Background(), 7, "alice")

	assert.NoError(t, err)
	assert.True(t, cleared)
	mockRatingRepo.AssertExpectations(t)
}

func TestLike_MissingRating(t *testing.T) {
	mockRatingRepo := new(MockRatingRepository)
	mockMediaRepo := new(MockMediaRepository)
	ratingService := NewRatingService(mockRatingRepo, mockMediaRepo)

	mockRatingRepo.On("IncrementLikes", mock.Anything, int64(99)).Return(false, nil)

	liked, err := ratingService.Like(context.Background(), 99)

	assert.NoError(t, err)
	assert.False(t, liked)
}

func TestConfirm_RecomputesAverage(t *testing.T) {
	mockRatingRepo := new(MockRatingRepository)
	mockMediaRepo := new(MockMediaRepository)
	ratingService := NewRatingService(mockRatingRepo, mockMediaRepo)

	confirmed := &models.Rating{ID: 7, MediaID: 3, Username: "alice", Stars: 5, Confirmed: true}
	mockRatingRepo.On("Confirm", mock.Anything, int64(7)).Return(true, nil)
	mockRatingRepo.On("GetByID", mock.Anything, int64(7)).Return(confirmed, nil)
	mockRatingRepo.On("AverageConfirmed", mock.Anything, int64(3)).Return(5.0, nil)
	mockMediaRepo.On("UpdateAverageRating", mock.Anything, int64(3), 5.0).Return(nil)

	ok, err := ratingService.Confirm(context.Background(), 7)

	assert.NoError(t, err)
	assert.True(t, ok)
	mockRatingRepo.AssertExpectations(t)
	mockMediaRepo.AssertExpectations(t)
}

func TestConfirm_MissingRating(t *testing.T) {
	mockRatingRepo := new(MockRatingRepository)
	mockMediaRepo := new(MockMediaRepository)
	ratingService := NewRatingService(mockRatingRepo, mockMediaRepo)

	mockRatingRepo.On("Confirm", mock.Anything, int64(99)).Return(false, nil)

	ok, err := ratingService.Confirm(context.Background(), 99)

	assert.NoError(t, err)
	assert.False(t, ok)
	mockMediaRepo.AssertNotCalled(t, "UpdateAverageRating", mock.Anything, mock.Anything, mock.Anything)
}
