package databases

// go generate: mockery --name ContactDatabase

import (
	"context"

	"github.com/rentwheels/car-rental-api/models"
)

const contactName = "contact"

// ContactDatabase contains the methods to use with the contact database
type ContactDatabase interface {
	InsertOne(ctx context.Context, message models.ContactMessage) error
}

type contactDatabase struct {
	db DatabaseHelper
}

// NewContactDatabase initializes a new instance of contact database with the provided db connection
func NewContactDatabase(db DatabaseHelper) ContactDatabase {
	return &contactDatabase{
		db: db,
	}
}

func (c *contactDatabase) InsertOne(ctx context.Context, message models.ContactMessage) error {
	return c.db.Collection(contactName).InsertOne(ctx, message)
}
