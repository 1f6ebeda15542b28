package databases

// go generate: mockery --name ReviewDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rentwheels/car-rental-api/models"
)

const reviewName = "review"

// ReviewDatabase contains the methods to use with the review database
type ReviewDatabase interface {
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Review, error)
	InsertOne(ctx context.Context, review models.Review) error
}

type reviewDatabase struct {
	db DatabaseHelper
}

// NewReviewDatabase initializes a new instance of review database with the provided db connection
func NewReviewDatabase(db DatabaseHelper) ReviewDatabase {
	return &reviewDatabase{
		db: db,
	}
}

func (c *reviewDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Review, error) {
	cursor, err := c.db.Collection(reviewName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	var reviews []models.Review
	if err := cursor.Decode(&reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (c *reviewDatabase) InsertOne(ctx context.Context, review models.Review) error {
	return c.db.Collection(reviewName).InsertOne(ctx, review)
}
