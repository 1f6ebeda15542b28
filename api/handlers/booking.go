package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/rentwheels/car-rental-api/api"
	"github.com/rentwheels/car-rental-api/config"
	"github.com/rentwheels/car-rental-api/databases"
	"github.com/rentwheels/car-rental-api/models"
)

var (
	errDropoffBeforePickup = errors.New("dropoff_date must be strictly after pickup_date")
	errDatesUnavailable    = errors.New("an active booking already covers the requested dates")
)

// Booking exported for testing purposes
type Booking struct {
	DB    databases.BookingDatabase
	CarDB databases.CarDatabase
}

// CreateBookingHandler validates a booking request, rejects it when the
// requested dates collide with an existing active or confirmed booking for
// the same car, computes the total cost and persists the booking.
//
// The overlap check and the insert are two separate store operations, two
// concurrent requests for the same car can both pass the check before
// either inserts.
func (b Booking) CreateBookingHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	var booking models.Booking
	if err := json.NewDecoder(r.Body).Decode(&booking); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if err := booking.Validate(); err != nil {
		config.ErrorStatus("invalid booking", http.StatusBadRequest, w, err)
		return
	}

	carID, err := primitive.ObjectIDFromHex(booking.CarID)
	if err != nil {
		config.ErrorStatus("invalid car id", http.StatusBadRequest, w, err)
		return
	}

	days, err := booking.RentalDays()
	if err != nil {
		config.ErrorStatus("invalid booking dates", http.StatusBadRequest, w, err)
		return
	}
	if days <= 0 {
		config.ErrorStatus("drop-off must be after pickup", http.StatusBadRequest, w, errDropoffBeforePickup)
		return
	}

	overlap, err := b.DB.CountDocuments(ctx, databases.ActiveBookingOverlapFilter(booking.CarID, booking.PickupDate, booking.DropoffDate))
	if err != nil {
		config.ErrorStatus("database unavailable", http.StatusInternalServerError, w, err)
		return
	}
	if overlap > 0 {
		config.ErrorStatus("selected dates are not available", http.StatusConflict, w, errDatesUnavailable)
		return
	}

	car, err := b.CarDB.FindOne(ctx, bson.M{"_id": carID})
	if err != nil {
		config.ErrorStatus("car not found", http.StatusNotFound, w, err)
		return
	}

	booking.ID = primitive.NewObjectID()
	booking.TotalCost = models.TotalCost(days, car.PricePerDay)
	booking.Status = models.BookingStatusConfirmed
	booking.Reference = uuid.New().String()
	booking.CreatedAt = time.Now()

	if err := b.DB.InsertOne(ctx, booking); err != nil {
		config.ErrorStatus("database unavailable", http.StatusInternalServerError, w, err)
		return
	}

	zap.S().Infow("booking created",
		"id", booking.ID.Hex(),
		"car_id", booking.CarID,
		"days", days,
		"total_cost", booking.TotalCost,
	)

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(models.BookingConfirmation{
		ID:        booking.ID.Hex(),
		TotalCost: booking.TotalCost,
		Status:    booking.Status,
	})
}

// BookingsHandler returns all bookings, optionally filtered by customer email
func (b Booking) BookingsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	filter := databases.NewQueryBuilder().
		Equals("email", r.URL.Query().Get("email")).
		Build()

	dbResp, err := b.DB.Find(ctx, filter, &options.FindOptions{
		Sort: bson.D{{Key: "created_at", Value: -1}},
	})
	if err != nil {
		// reads degrade to an empty result when the store is unavailable
		zap.S().Warnw("failed to query bookings, returning empty result", "error", err)
		dbResp = nil
	}
	if len(dbResp) == 0 {
		dbResp = []models.Booking{}
	}
	bts, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(bts)
}
