package databases

// go generate: mockery --name CarDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/rentwheels/car-rental-api/models"
)

const carName = "car"

// CarDatabase contains the methods to use with the car database
type CarDatabase interface {
	FindOne(ctx context.Context, filter interface{}) (*models.Car, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Car, error)
	InsertOne(ctx context.Context, car models.Car) error
	CountDocuments(ctx context.Context, filter interface{}) (int64, error)
	EnsureSeedData(ctx context.Context) error
}

type carDatabase struct {
	db DatabaseHelper
}

// NewCarDatabase initializes a new instance of car database with the provided db connection
func NewCarDatabase(db DatabaseHelper) CarDatabase {
	return &carDatabase{
		db: db,
	}
}

func (c *carDatabase) FindOne(ctx context.Context, filter interface{}) (*models.Car, error) {
	car := &models.Car{}
	err := c.db.Collection(carName).FindOne(ctx, filter).Decode(&car)
	if err != nil {
		return nil, err
	}
	return car, nil
}

func (c *carDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Car, error) {
	cursor, err := c.db.Collection(carName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	var cars []models.Car
	if err := cursor.Decode(&cars); err != nil {
		return nil, err
	}
	return cars, nil
}

func (c *carDatabase) InsertOne(ctx context.Context, car models.Car) error {
	return c.db.Collection(carName).InsertOne(ctx, car)
}

func (c *carDatabase) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	return c.db.Collection(carName).CountDocuments(ctx, filter)
}

// EnsureSeedData inserts the sample fleet when the collection is empty.
// The count-then-insert is not atomic: two racing first requests can both
// observe an empty collection and both insert the samples. Duplicate sample
// rows are cosmetically harmless, so no lock is taken.
func (c *carDatabase) EnsureSeedData(ctx context.Context) error {
	count, err := c.db.Collection(carName).CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	docs := make([]interface{}, len(sampleCars))
	for i, car := range sampleCars {
		car.ID = primitive.NewObjectID()
		docs[i] = car
	}
	if err := c.db.Collection(carName).InsertMany(ctx, docs); err != nil {
		return err
	}
	zap.S().Infow("seeded car collection", "count", len(docs))
	return nil
}
