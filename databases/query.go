package databases

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rentwheels/car-rental-api/models"
)

// QueryBuilder accumulates typed predicate clauses and compiles them into a
// single mongo filter document. All clauses combine with logical AND; the
// substring clause is itself an OR across its fields.
type QueryBuilder struct {
	clauses bson.M
}

// NewQueryBuilder returns an empty builder that compiles to a match-all filter
func NewQueryBuilder() *QueryBuilder {
	return &QueryBuilder{clauses: bson.M{}}
}

// Equals adds an exact-match clause. Empty values add nothing, so optional
// query params can be passed through directly.
func (qb *QueryBuilder) Equals(field, value string) *QueryBuilder {
	if value != "" {
		qb.clauses[field] = value
	}
	return qb
}

// EqualsInt adds an exact-match clause for a positive integer value
func (qb *QueryBuilder) EqualsInt(field string, value int) *QueryBuilder {
	if value > 0 {
		qb.clauses[field] = value
	}
	return qb
}

// Substring adds a case-insensitive substring clause matched against any of
// the given fields. The term is quoted, regex metacharacters in user input
// match literally.
func (qb *QueryBuilder) Substring(term string, fields ...string) *QueryBuilder {
	if term == "" || len(fields) == 0 {
		return qb
	}
	or := make([]bson.M, 0, len(fields))
	for _, field := range fields {
		or = append(or, bson.M{field: primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}})
	}
	qb.clauses["$or"] = or
	return qb
}

// Range adds inclusive numeric bounds on a field. Either bound may be nil.
func (qb *QueryBuilder) Range(field string, min, max *float64) *QueryBuilder {
	if min == nil && max == nil {
		return qb
	}
	cond := bson.M{}
	if min != nil {
		cond["$gte"] = *min
	}
	if max != nil {
		cond["$lte"] = *max
	}
	qb.clauses[field] = cond
	return qb
}

// Build returns the compiled filter document
func (qb *QueryBuilder) Build() bson.M {
	return qb.clauses
}

// CarSortSpec maps a public sort key to a mongo sort document. Unrecognized
// keys fall back to the popular ordering, rating descending.
func CarSortSpec(key string) bson.D {
	switch key {
	case "price_asc":
		return bson.D{{Key: "price_per_day", Value: 1}}
	case "price_desc":
		return bson.D{{Key: "price_per_day", Value: -1}}
	case "newest":
		return bson.D{{Key: "year", Value: -1}}
	default:
		return bson.D{{Key: "rating", Value: -1}}
	}
}

// ActiveBookingOverlapFilter matches active or confirmed bookings for the
// car whose date interval intersects [pickup, dropoff]. Both endpoints are
// inclusive: a booking ending on the requested pickup day, or starting on
// the requested dropoff day, counts as a conflict.
func ActiveBookingOverlapFilter(carID, pickup, dropoff string) bson.M {
	return bson.M{
		"car_id":       carID,
		"status":       bson.M{"$in": []string{models.BookingStatusActive, models.BookingStatusConfirmed}},
		"pickup_date":  bson.M{"$lte": dropoff},
		"dropoff_date": bson.M{"$gte": pickup},
	}
}
