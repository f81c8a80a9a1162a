package models

import "time"

// MediaType enumerates the supported kinds of media entries.
type MediaType string

const (
	MediaTypeMovie  MediaType = "movie"
	MediaTypeSeries MediaType = "series"
	MediaTypeGame   MediaType = "game"
)

// Valid reports whether t is one of the known media types.
func (t MediaType) Valid() bool {
	switch t {
	case MediaTypeMovie, MediaTypeSeries, MediaTypeGame:
		return true
	}
	return false
}

type MediaEntry struct {
	ID             int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title          string    `json:"title" gorm:"not null"`
	Description    string    `json:"description"`
	MediaType      MediaType `json:"media_type" gorm:"type:varchar(20);not null"`
	ReleaseYear    int       `json:"release_year"`
	Genres         string    `json:"genres"` // comma-separated free text, e.g. "Action,Drama"
	AgeRestriction int       `json:"age_restriction"`
	Creator        string    `json:"creator" gorm:"not null;index"`
	// AverageRating is derived from confirmed ratings and written only by the
	// rating service. Media update paths must never touch it.
	AverageRating float64   `json:"average_rating" gorm:"default:0"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	CreatorUser User `json:"-" gorm:"foreignKey:Creator;references:Username;constraint:OnDelete:CASCADE;"`
}

func (MediaEntry) TableName() string {
	return "media_entries"
}
