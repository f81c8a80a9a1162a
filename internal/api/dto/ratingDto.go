package dto

import (
	"time"

	"mediahub/internal/api/models"
)

// SubmitRatingDTO for creating or replacing the caller's rating on a media
// entry. Stars is validated again in the service layer.
type SubmitRatingDTO struct {
	Stars   int    `json:"stars" binding:"required"`
	Comment string `json:"comment"`
}

// UpdateCommentDTO for editing only the comment of an existing rating
type UpdateCommentDTO struct {
	Comment string `json:"comment" binding:"required"`
}

// RatingResponse for returning rating information
type RatingResponse struct {
	ID        int64     `json:"id"`
	MediaID   int64     `json:"media_id"`
	Username  string    `json:"username"`
	Stars     int       `json:"stars"`
	Comment   string    `json:"comment,omitempty"`
	Confirmed bool      `json:"confirmed"`
	Likes     int       `json:"likes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FromModelToRatingResponse converts a Rating model to RatingResponse DTO
func FromModelToRatingResponse(rating *models.Rating) *RatingResponse {
	return &RatingResponse{
		ID:        rating.ID,
		MediaID:   rating.MediaID,
		Username:  rating.Username,
		Stars:     rating.Stars,
		Comment:   rating.Comment,
		Confirmed: rating.Confirmed,
		Likes:     rating.Likes,
		CreatedAt: rating.CreatedAt,
		UpdatedAt: rating.UpdatedAt,
	}
}

// FromModelToRatingResponses converts a slice of Rating models
func FromModelToRatingResponses(ratings []models.Rating) []RatingResponse {
	out := make([]RatingResponse, 0, len(ratings))
	for i := range ratings {
		out = append(out, *FromModelToRatingResponse(&ratings[i]))
	}
	return out
}
