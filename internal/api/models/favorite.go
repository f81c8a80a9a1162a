package models

import "time"

type Favorite struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Username  string    `json:"username" gorm:"not null;uniqueIndex:idx_favorites_user_media"`
	MediaID   int64     `json:"media_id" gorm:"not null;uniqueIndex:idx_favorites_user_media"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Associations
	Media MediaEntry `json:"media,omitempty" gorm:"foreignKey:MediaID;constraint:OnDelete:CASCADE;"`
	User  User       `json:"-" gorm:"foreignKey:Username;references:Username;constraint:OnDelete:CASCADE;"`
}

func (Favorite) TableName() string {
	return "favorites"
}
