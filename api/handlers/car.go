package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/rentwheels/car-rental-api/api"
	"github.com/rentwheels/car-rental-api/config"
	"github.com/rentwheels/car-rental-api/databases"
	"github.com/rentwheels/car-rental-api/models"
)

const defaultCarLimit = 50

// Car exported for testing purposes
type Car struct {
	DB databases.CarDatabase
}

// CarsHandler returns cars matching the supplied filters, sorted and capped.
// All filters are optional and combine with logical AND.
func (c Car) CarsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := c.DB.EnsureSeedData(ctx); err != nil {
		zap.S().Warnw("failed to seed car collection", "error", err)
	}

	q := r.URL.Query()
	limit, err := strconv.Atoi(q.Get("limit"))
	if err != nil || limit <= 0 {
		limit = defaultCarLimit
	}
	seats, _ := strconv.Atoi(q.Get("seats"))

	filter := databases.NewQueryBuilder().
		Substring(q.Get("q"), "title", "brand", "model").
		Equals("type", q.Get("type")).
		Equals("brand", q.Get("brand")).
		Equals("transmission", q.Get("transmission")).
		Equals("fuel_type", q.Get("fuel_type")).
		EqualsInt("seats", seats).
		Range("price_per_day", parseFloatParam(q.Get("min_price")), parseFloatParam(q.Get("max_price"))).
		Build()

	limit64 := int64(limit)
	dbResp, err := c.DB.Find(ctx, filter, &options.FindOptions{
		Limit: &limit64,
		Sort:  databases.CarSortSpec(q.Get("sort")),
	})
	if err != nil {
		// reads degrade to an empty result when the store is unavailable
		zap.S().Warnw("failed to query cars, returning empty result", "error", err)
		dbResp = nil
	}
	if len(dbResp) == 0 {
		dbResp = []models.Car{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CarByIDHandler returns a car by ID
func (c Car) CarByIDHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := c.DB.EnsureSeedData(ctx); err != nil {
		zap.S().Warnw("failed to seed car collection", "error", err)
	}

	carID := mux.Vars(r)["car_id"]
	cID, err := primitive.ObjectIDFromHex(carID)
	if err != nil {
		config.ErrorStatus("invalid car id", http.StatusBadRequest, w, err)
		return
	}

	dbResp, err := c.DB.FindOne(ctx, bson.M{"_id": cID})
	if err != nil {
		config.ErrorStatus("car not found", http.StatusNotFound, w, err)
		return
	}

	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CreateCarHandler inserts a car into the fleet. There is no update or
// delete counterpart, fleet changes beyond inserts happen out of band.
func (c Car) CreateCarHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	var car models.Car
	if err := json.NewDecoder(r.Body).Decode(&car); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if car.Rating == 0 {
		car.Rating = models.DefaultCarRating
	}
	if err := car.Validate(); err != nil {
		config.ErrorStatus("invalid car", http.StatusBadRequest, w, err)
		return
	}

	car.ID = primitive.NewObjectID()
	car.CreatedAt = time.Now()

	if err := c.DB.InsertOne(ctx, car); err != nil {
		config.ErrorStatus("database unavailable", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Car created successfully",
		"id":      car.ID.Hex(),
	})
}

func parseFloatParam(s string) *float64 {
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}
