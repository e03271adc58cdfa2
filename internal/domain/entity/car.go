// Package entity contains the core business objects of the project.
package entity

import "time"

// Car is a rental listing. The identity core consumes cars only through
// their integer key; the catalog fields are carried as data for listing
// endpoints and are never interpreted by the auth or favorites logic.
type Car struct {
	ID               int       `json:"id"`
	Brand            string    `json:"brand"`
	Model            string    `json:"model"`
	Year             int       `json:"year"`
	ImageURL1        string    `json:"imageUrl1"` // URL strings into the upload area; the core never opens them.
	ImageURL2        string    `json:"imageUrl2"`
	ImageURL3        string    `json:"imageUrl3"`
	Price            float64   `json:"price"`
	Multiplier       int       `json:"multiplier"` // Stored as data; pricing rules live outside this service.
	Capacity         int       `json:"capacity"`
	Transmission     string    `json:"transmission"`
	FuelCapacity     int       `json:"fuelCapacity"`
	City             string    `json:"city"`
	CreatedBy        string    `json:"createdBy"`
	CreatedByEmail   string    `json:"createdByEmail"`
	OwnerPhoneNumber string    `json:"ownerPhoneNumber"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
