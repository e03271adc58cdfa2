package model

import "time"

// CarModel mirrors the 'cars' table. Image columns hold URL strings into the
// upload area; the bytes themselves never pass through this table.
type CarModel struct {
	ID               int     `gorm:"primary_key;autoIncrement"`
	Brand            string  `gorm:"type:varchar(100);not null"`
	Model            string  `gorm:"type:varchar(100);not null"`
	Year             int     `gorm:"not null"`
	ImageURL1        string  `gorm:"type:varchar(512)"`
	ImageURL2        string  `gorm:"type:varchar(512)"`
	ImageURL3        string  `gorm:"type:varchar(512)"`
	Price            float64 `gorm:"type:decimal(10,2);not null"`
	Multiplier       int     `gorm:"not null;default:1"`
	Capacity         int
	Transmission     string `gorm:"type:varchar(32)"`
	FuelCapacity     int
	City             string `gorm:"type:varchar(100);index"`
	CreatedBy        string `gorm:"type:varchar(100)"`
	CreatedByEmail   string `gorm:"type:varchar(255)"`
	OwnerPhoneNumber string `gorm:"type:varchar(32);index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	FavoritedBy []FavoriteCarModel `gorm:"foreignKey:CarID"`
}

// TableName explicitly sets the table name for GORM.
func (CarModel) TableName() string {
	return "cars"
}
