// Package entity contains the core business objects of the project.
package entity

import "time"

// FavoriteCar is the join record expressing that a user has marked a car as
// favorite. It carries no meaning beyond the two foreign keys; the pair
// (UserPhoneNumber, CarID) is unique at the store level so that concurrent
// identical adds collapse into a single row.
type FavoriteCar struct {
	ID              int       `json:"id"`
	UserPhoneNumber string    `json:"userPhoneNumber"`
	CarID           int       `json:"carId"`
	CreatedAt       time.Time `json:"createdAt"`
}
