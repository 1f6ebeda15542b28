package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultCarRating is applied when an administrative insert omits the rating
const DefaultCarRating = 4.5

// Car holds the structure for the car collection in mongo
type Car struct {
	ID           primitive.ObjectID `json:"id" bson:"_id"`
	Title        string             `json:"title" bson:"title"`
	Brand        string             `json:"brand" bson:"brand"`
	Model        string             `json:"model" bson:"model"`
	Year         int                `json:"year" bson:"year"`
	Type         string             `json:"type" bson:"type"`
	Transmission string             `json:"transmission" bson:"transmission"`
	FuelType     string             `json:"fuel_type" bson:"fuel_type"`
	Seats        int                `json:"seats" bson:"seats"`
	Luggage      int                `json:"luggage" bson:"luggage"`
	PricePerDay  float64            `json:"price_per_day" bson:"price_per_day"`
	Images       []string           `json:"images" bson:"images"`
	Rating       float64            `json:"rating" bson:"rating"`
	Featured     bool               `json:"featured" bson:"featured"`
	CreatedAt    time.Time          `json:"created_at,omitempty" bson:"created_at,omitempty"`
}

// Validate checks the schema constraints before an administrative insert
func (c Car) Validate() error {
	if c.Title == "" || c.Brand == "" || c.Model == "" {
		return fmt.Errorf("title, brand and model are required")
	}
	if c.Year == 0 {
		return fmt.Errorf("year is required")
	}
	if c.Seats < 1 || c.Seats > 9 {
		return fmt.Errorf("seats must be between 1 and 9")
	}
	if c.Luggage < 0 {
		return fmt.Errorf("luggage must not be negative")
	}
	if c.PricePerDay < 0 {
		return fmt.Errorf("price_per_day must not be negative")
	}
	if c.Rating < 0 || c.Rating > 5 {
		return fmt.Errorf("rating must be between 0 and 5")
	}
	return nil
}
