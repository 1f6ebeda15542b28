package models_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rentwheels/car-rental-api/models"
)

func TestCar_Validate(t *testing.T) {
	valid := models.Car{
		Title:       "Apex GT-R",
		Brand:       "Nissan",
		Model:       "GT-R",
		Year:        2023,
		Seats:       2,
		PricePerDay: 320,
		Rating:      4.5,
	}
	assert.NoError(t, valid.Validate())

	missingTitle := valid
	missingTitle.Title = ""
	assert.Error(t, missingTitle.Validate())

	tooManySeats := valid
	tooManySeats.Seats = 10
	assert.Error(t, tooManySeats.Validate())

	negativePrice := valid
	negativePrice.PricePerDay = -1
	assert.Error(t, negativePrice.Validate())

	ratingOutOfRange := valid
	ratingOutOfRange.Rating = 5.5
	assert.Error(t, ratingOutOfRange.Validate())
}

// Object ids marshal as 24-char hex under "id", timestamps as RFC3339.
func TestCar_JSONWireFormat(t *testing.T) {
	carID, _ := primitive.ObjectIDFromHex("5fc51f58c72ff10004dca382")
	car := models.Car{
		ID:        carID,
		Title:     "Apex GT-R",
		CreatedAt: time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC),
	}

	b, err := json.Marshal(car)
	assert.NoError(t, err)
	assert.Contains(t, string(b), `"id":"5fc51f58c72ff10004dca382"`)
	assert.Contains(t, string(b), `"created_at":"2025-06-01T10:30:00Z"`)

	var decoded models.Car
	assert.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, carID, decoded.ID)
	assert.Equal(t, car.CreatedAt, decoded.CreatedAt)
}
