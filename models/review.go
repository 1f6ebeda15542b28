package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review holds the structure for the review collection in mongo
type Review struct {
	ID        primitive.ObjectID `json:"id" bson:"_id"`
	CarID     string             `json:"car_id" bson:"car_id"`
	UserName  string             `json:"user_name" bson:"user_name"`
	Rating    int                `json:"rating" bson:"rating"`
	Comment   string             `json:"comment,omitempty" bson:"comment,omitempty"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}

// Validate checks the review fields before insert
func (r Review) Validate() error {
	if r.UserName == "" {
		return fmt.Errorf("user_name is required")
	}
	if r.Rating < 1 || r.Rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5")
	}
	return nil
}
