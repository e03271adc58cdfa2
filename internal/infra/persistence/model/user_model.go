package model

import "time"

// UserModel mirrors the 'users' table. The phone number is the natural
// primary key; the store-level constraint is the real enforcement point for
// registration uniqueness under concurrent inserts.
type UserModel struct {
	PhoneNumber  string `gorm:"type:varchar(32);primary_key"`
	FirstName    string `gorm:"type:varchar(100)"`
	LastName     string `gorm:"type:varchar(100)"`
	Email        string `gorm:"type:varchar(255)"`
	Role         string `gorm:"type:varchar(32);not null"`
	PasswordHash []byte `gorm:"type:bytea;not null"`
	PasswordSalt []byte `gorm:"type:bytea;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	FavoriteCars []FavoriteCarModel `gorm:"foreignKey:UserPhoneNumber"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
