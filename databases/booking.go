package databases

// go generate: mockery --name BookingDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rentwheels/car-rental-api/models"
)

const bookingName = "booking"

// BookingDatabase contains the methods to use with the booking database
type BookingDatabase interface {
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Booking, error)
	InsertOne(ctx context.Context, booking models.Booking) error
	CountDocuments(ctx context.Context, filter interface{}) (int64, error)
}

type bookingDatabase struct {
	db DatabaseHelper
}

// NewBookingDatabase initializes a new instance of booking database with the provided db connection
func NewBookingDatabase(db DatabaseHelper) BookingDatabase {
	return &bookingDatabase{
		db: db,
	}
}

func (c *bookingDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Booking, error) {
	cursor, err := c.db.Collection(bookingName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	var bookings []models.Booking
	if err := cursor.Decode(&bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *bookingDatabase) InsertOne(ctx context.Context, booking models.Booking) error {
	return c.db.Collection(bookingName).InsertOne(ctx, booking)
}

func (c *bookingDatabase) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	return c.db.Collection(bookingName).CountDocuments(ctx, filter)
}
