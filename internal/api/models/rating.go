package models

import "time"

type Rating struct {
	ID       int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	MediaID  int64  `json:"media_id" gorm:"not null;uniqueIndex:idx_ratings_media_user"`
	Username string `json:"username" gorm:"not null;uniqueIndex:idx_ratings_media_user"`
	Stars    int    `json:"stars" gorm:"not null;check:stars >= 1 AND stars <= 5"`
	Comment  string `json:"comment"`
	// Confirmed is the moderation flag. Only confirmed ratings count toward a
	// media entry's average; new and edited ratings always start unconfirmed.
	Confirmed bool      `json:"confirmed" gorm:"default:false;not null"`
	Likes     int       `json:"likes" gorm:"default:0;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	Media MediaEntry `json:"-" gorm:"foreignKey:MediaID;constraint:OnDelete:CASCADE;"`
	User  User       `json:"-" gorm:"foreignKey:Username;references:Username;constraint:OnDelete:CASCADE;"`
}

func (Rating) TableName() string {
	return "ratings"
}
