package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User holds the structure for the user collection in mongo. Accounts are
// not exposed over the API, bookings carry the renter details inline.
type User struct {
	ID        primitive.ObjectID `json:"id" bson:"_id"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	Phone     string             `json:"phone,omitempty" bson:"phone,omitempty"`
	LicenseNo string             `json:"license_no,omitempty" bson:"license_no,omitempty"`
	IsActive  bool               `json:"is_active" bson:"is_active"`
}
