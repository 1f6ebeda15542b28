package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Favorite holds the structure for the favorite collection in mongo.
// No endpoint writes or reads it yet, the collection is reserved for the
// saved-cars feature on the frontend.
type Favorite struct {
	ID        primitive.ObjectID `json:"id" bson:"_id"`
	UserEmail string             `json:"user_email" bson:"user_email"`
	CarID     string             `json:"car_id" bson:"car_id"`
}
