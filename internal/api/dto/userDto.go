package dto

import "time"

// UserProfileResponse is a user's public profile with activity stats.
type UserProfileResponse struct {
	Username      string     `json:"username"`
	Email         string     `json:"email"`
	Role          string     `json:"role"`
	CreatedAt     time.Time  `json:"created_at"`
	LastLogin     *time.Time `json:"last_login,omitempty"`
	MediaCount    int64      `json:"media_count"`
	RatingCount   int64      `json:"rating_count"`
	FavoriteCount int64      `json:"favorite_count"`
	AverageStars  float64    `json:"average_stars"`
}
