package dto

import "mediahub/internal/api/models"

// CreateMediaDTO for creating or updating a media entry. The creator and the
// derived average rating are never part of the payload.
type CreateMediaDTO struct {
	Title          string `json:"title" binding:"required"`
	Description    string `json:"description"`
	MediaType      string `json:"media_type" binding:"required"`
	ReleaseYear    int    `json:"release_year"`
	Genres         string `json:"genres"` // comma-separated, e.g. "Action,Drama"
	AgeRestriction int    `json:"age_restriction"`
}

// ToModel converts the payload into a MediaEntry model
func (d *CreateMediaDTO) ToModel() *models.MediaEntry {
	return &models.MediaEntry{
		Title:          d.Title,
		Description:    d.Description,
		MediaType:      models.MediaType(d.MediaType),
		ReleaseYear:    d.ReleaseYear,
		Genres:         d.Genres,
		AgeRestriction: d.AgeRestriction,
	}
}

// MediaSummaryResponse is the compact media shape used by recommendation
// listings.
type MediaSummaryResponse struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	MediaType     string  `json:"media_type"`
	Genres        string  `json:"genres"`
	AverageRating float64 `json:"average_rating"`
}

// FromModelToMediaSummary converts a MediaEntry model to its summary DTO
func FromModelToMediaSummary(m *models.MediaEntry) MediaSummaryResponse {
	return MediaSummaryResponse{
		ID:            m.ID,
		Title:         m.Title,
		MediaType:     string(m.MediaType),
		Genres:        m.Genres,
		AverageRating: m.AverageRating,
	}
}

// PaginatedMediaResponse for returning paginated media listings
type PaginatedMediaResponse struct {
	Data       []models.MediaEntry `json:"data"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
	Total      int64               `json:"total"`
	TotalPages int                 `json:"total_pages"`
}

// NewPaginatedMediaResponse creates a paginated media response
func NewPaginatedMediaResponse(data []models.MediaEntry, total int64, page, pageSize int) *PaginatedMediaResponse {
	totalPages := int(total) / pageSize
	if int(total)%pageSize != 0 {
		totalPages++
	}

	return &PaginatedMediaResponse{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}
