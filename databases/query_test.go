package databases_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rentwheels/car-rental-api/databases"
	"github.com/rentwheels/car-rental-api/models"
)

func TestQueryBuilder_EmptyBuildsMatchAll(t *testing.T) {
	filter := databases.NewQueryBuilder().
		Equals("type", "").
		EqualsInt("seats", 0).
		Substring("", "title").
		Range("price_per_day", nil, nil).
		Build()

	assert.Equal(t, bson.M{}, filter)
}

func TestQueryBuilder_CombinesClausesWithAnd(t *testing.T) {
	min, max := 100.0, 400.0
	filter := databases.NewQueryBuilder().
		Equals("type", "suv").
		Equals("transmission", "automatic").
		EqualsInt("seats", 5).
		Range("price_per_day", &min, &max).
		Build()

	assert.Equal(t, bson.M{
		"type":          "suv",
		"transmission":  "automatic",
		"seats":         5,
		"price_per_day": bson.M{"$gte": 100.0, "$lte": 400.0},
	}, filter)
}

func TestQueryBuilder_SubstringMatchesAnyField(t *testing.T) {
	filter := databases.NewQueryBuilder().
		Substring("tesla", "title", "brand", "model").
		Build()

	or, ok := filter["$or"].([]bson.M)
	assert.True(t, ok)
	assert.Len(t, or, 3)
	assert.Equal(t, bson.M{"title": primitive.Regex{Pattern: "tesla", Options: "i"}}, or[0])
	assert.Equal(t, bson.M{"brand": primitive.Regex{Pattern: "tesla", Options: "i"}}, or[1])
	assert.Equal(t, bson.M{"model": primitive.Regex{Pattern: "tesla", Options: "i"}}, or[2])
}

func TestQueryBuilder_SubstringQuotesRegexMetacharacters(t *testing.T) {
	filter := databases.NewQueryBuilder().
		Substring("gt(r)", "title").
		Build()

	or := filter["$or"].([]bson.M)
	assert.Equal(t, `gt\(r\)`, or[0]["title"].(primitive.Regex).Pattern)
}

func TestQueryBuilder_RangeSingleBound(t *testing.T) {
	min := 200.0
	filter := databases.NewQueryBuilder().
		Range("price_per_day", &min, nil).
		Build()

	assert.Equal(t, bson.M{"price_per_day": bson.M{"$gte": 200.0}}, filter)
}

func TestCarSortSpec(t *testing.T) {
	assert.Equal(t, bson.D{{Key: "price_per_day", Value: 1}}, databases.CarSortSpec("price_asc"))
	assert.Equal(t, bson.D{{Key: "price_per_day", Value: -1}}, databases.CarSortSpec("price_desc"))
	assert.Equal(t, bson.D{{Key: "year", Value: -1}}, databases.CarSortSpec("newest"))
	assert.Equal(t, bson.D{{Key: "rating", Value: -1}}, databases.CarSortSpec(""))
	assert.Equal(t, bson.D{{Key: "rating", Value: -1}}, databases.CarSortSpec("bogus"))
}

func TestActiveBookingOverlapFilter(t *testing.T) {
	filter := databases.ActiveBookingOverlapFilter("5fc51f58c72ff10004dca382", "2025-06-01", "2025-06-06")

	assert.Equal(t, "5fc51f58c72ff10004dca382", filter["car_id"])
	assert.Equal(t, bson.M{"$in": []string{models.BookingStatusActive, models.BookingStatusConfirmed}}, filter["status"])
	assert.Equal(t, bson.M{"$lte": "2025-06-06"}, filter["pickup_date"])
	assert.Equal(t, bson.M{"$gte": "2025-06-01"}, filter["dropoff_date"])
}

// A booking ending on the requested pickup day shares one calendar day with
// the request, the bounds are inclusive so it must match.
func TestActiveBookingOverlapFilter_SharedBoundaryDayConflicts(t *testing.T) {
	existing := models.Booking{PickupDate: "2025-06-10", DropoffDate: "2025-06-15"}

	filter := databases.ActiveBookingOverlapFilter("5fc51f58c72ff10004dca382", "2025-06-15", "2025-06-20")

	pickupBound := filter["pickup_date"].(bson.M)["$lte"].(string)
	dropoffBound := filter["dropoff_date"].(bson.M)["$gte"].(string)

	// the date layout compares correctly as plain strings
	assert.True(t, existing.PickupDate <= pickupBound)
	assert.True(t, existing.DropoffDate >= dropoffBound)
}

func TestActiveBookingOverlapFilter_DisjointDatesDoNotMatch(t *testing.T) {
	existing := models.Booking{PickupDate: "2025-06-10", DropoffDate: "2025-06-15"}

	filter := databases.ActiveBookingOverlapFilter("5fc51f58c72ff10004dca382", "2025-06-16", "2025-06-20")

	dropoffBound := filter["dropoff_date"].(bson.M)["$gte"].(string)

	assert.False(t, existing.DropoffDate >= dropoffBound)
}
