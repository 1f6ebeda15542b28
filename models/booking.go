package models

import (
	"fmt"
	"math"
	"net/mail"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DateLayout is the wire format for rental dates. The format orders fields
// most-significant first, so date strings compare correctly as strings in
// range filters.
const DateLayout = "2006-01-02"

// Booking statuses. New bookings are written as confirmed; active is the
// legacy default and still blocks conflicting bookings.
const (
	BookingStatusActive    = "active"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// Booking holds the structure for the booking collection in mongo
type Booking struct {
	ID              primitive.ObjectID `json:"id" bson:"_id"`
	CarID           string             `json:"car_id" bson:"car_id"`
	UserName        string             `json:"user_name" bson:"user_name"`
	Email           string             `json:"email" bson:"email"`
	Phone           string             `json:"phone,omitempty" bson:"phone,omitempty"`
	PickupDate      string             `json:"pickup_date" bson:"pickup_date"`
	DropoffDate     string             `json:"dropoff_date" bson:"dropoff_date"`
	PickupLocation  string             `json:"pickup_location,omitempty" bson:"pickup_location,omitempty"`
	DropoffLocation string             `json:"dropoff_location,omitempty" bson:"dropoff_location,omitempty"`
	TotalCost       float64            `json:"total_cost" bson:"total_cost"`
	Status          string             `json:"status" bson:"status"`
	Reference       string             `json:"reference,omitempty" bson:"reference,omitempty"`
	CreatedAt       time.Time          `json:"created_at" bson:"created_at"`
}

// BookingConfirmation is the response body for a created booking
type BookingConfirmation struct {
	ID        string  `json:"id"`
	TotalCost float64 `json:"total_cost"`
	Status    string  `json:"status"`
}

// Validate checks the request fields that do not require a store lookup
func (b Booking) Validate() error {
	if b.CarID == "" {
		return fmt.Errorf("car_id is required")
	}
	if b.UserName == "" {
		return fmt.Errorf("user_name is required")
	}
	if _, err := mail.ParseAddress(b.Email); err != nil {
		return fmt.Errorf("invalid email: %v", err)
	}
	return nil
}

// RentalDays returns the whole-day span between pickup and dropoff. The
// dropoff day is exclusive: pickup 2024-01-10 to dropoff 2024-01-15 is a
// five day rental.
func (b Booking) RentalDays() (int, error) {
	pickup, err := time.Parse(DateLayout, b.PickupDate)
	if err != nil {
		return 0, fmt.Errorf("invalid pickup_date: %v", err)
	}
	dropoff, err := time.Parse(DateLayout, b.DropoffDate)
	if err != nil {
		return 0, fmt.Errorf("invalid dropoff_date: %v", err)
	}
	return int(dropoff.Sub(pickup).Hours() / 24), nil
}

// TotalCost computes the rental cost for a day count at a daily rate,
// rounded to two decimal places.
func TotalCost(days int, pricePerDay float64) float64 {
	return math.Round(float64(days)*pricePerDay*100) / 100
}
