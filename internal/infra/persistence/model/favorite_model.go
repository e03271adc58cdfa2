package model

import "time"

// FavoriteCarModel mirrors the 'user_favorite_cars' join table. The composite
// unique index is what turns concurrent identical adds into a single row
// instead of silent duplicates.
type FavoriteCarModel struct {
	ID              int    `gorm:"primary_key;autoIncrement"`
	UserPhoneNumber string `gorm:"type:varchar(32);not null;uniqueIndex:idx_user_car"`
	CarID           int    `gorm:"not null;uniqueIndex:idx_user_car"`
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (FavoriteCarModel) TableName() string {
	return "user_favorite_cars"
}
