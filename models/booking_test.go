package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rentwheels/car-rental-api/models"
)

func TestBooking_Validate(t *testing.T) {
	valid := models.Booking{CarID: "5fc51f58c72ff10004dca382", UserName: "Dana Miles", Email: "dana@example.com"}
	assert.NoError(t, valid.Validate())

	missingCar := valid
	missingCar.CarID = ""
	assert.Error(t, missingCar.Validate())

	missingName := valid
	missingName.UserName = ""
	assert.Error(t, missingName.Validate())

	badEmail := valid
	badEmail.Email = "not-an-email"
	assert.Error(t, badEmail.Validate())
}

func TestBooking_RentalDays(t *testing.T) {
	b := models.Booking{PickupDate: "2025-06-01", DropoffDate: "2025-06-06"}
	days, err := b.RentalDays()
	assert.NoError(t, err)
	assert.Equal(t, 5, days)

	sameDay := models.Booking{PickupDate: "2025-06-01", DropoffDate: "2025-06-01"}
	days, err = sameDay.RentalDays()
	assert.NoError(t, err)
	assert.Equal(t, 0, days)

	reversed := models.Booking{PickupDate: "2025-06-06", DropoffDate: "2025-06-01"}
	days, err = reversed.RentalDays()
	assert.NoError(t, err)
	assert.Equal(t, -5, days)
}

func TestBooking_RentalDaysInvalidDates(t *testing.T) {
	b := models.Booking{PickupDate: "June 1st", DropoffDate: "2025-06-06"}
	_, err := b.RentalDays()
	assert.Error(t, err)

	b = models.Booking{PickupDate: "2025-06-01", DropoffDate: "06/06/2025"}
	_, err = b.RentalDays()
	assert.Error(t, err)
}

func TestTotalCost(t *testing.T) {
	assert.Equal(t, 1600.0, models.TotalCost(5, 320))
	assert.Equal(t, 299.97, models.TotalCost(3, 99.99))
	assert.Equal(t, 0.0, models.TotalCost(0, 320))
}
