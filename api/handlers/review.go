package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/rentwheels/car-rental-api/api"
	"github.com/rentwheels/car-rental-api/config"
	"github.com/rentwheels/car-rental-api/databases"
	"github.com/rentwheels/car-rental-api/models"
)

const defaultReviewLimit = 20

// Review exported for testing purposes
type Review struct {
	DB databases.ReviewDatabase
}

// CreateReviewHandler persists a review. The car id must be structurally
// valid but the car itself is not looked up.
func (re Review) CreateReviewHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	var review models.Review
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if _, err := primitive.ObjectIDFromHex(review.CarID); err != nil {
		config.ErrorStatus("invalid car id", http.StatusBadRequest, w, err)
		return
	}
	if err := review.Validate(); err != nil {
		config.ErrorStatus("invalid review", http.StatusBadRequest, w, err)
		return
	}

	review.ID = primitive.NewObjectID()
	review.CreatedAt = time.Now()

	if err := re.DB.InsertOne(ctx, review); err != nil {
		config.ErrorStatus("database unavailable", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"id": review.ID.Hex(),
	})
}

// ReviewsHandler returns reviews, newest first, optionally filtered by car id
func (re Review) ReviewsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	q := r.URL.Query()
	limit, err := strconv.Atoi(q.Get("limit"))
	if err != nil || limit <= 0 {
		limit = defaultReviewLimit
	}

	filter := databases.NewQueryBuilder().
		Equals("car_id", q.Get("car_id")).
		Build()

	limit64 := int64(limit)
	dbResp, err := re.DB.Find(ctx, filter, &options.FindOptions{
		Limit: &limit64,
		Sort:  bson.D{{Key: "created_at", Value: -1}},
	})
	if err != nil {
		// reads degrade to an empty result when the store is unavailable
		zap.S().Warnw("failed to query reviews, returning empty result", "error", err)
		dbResp = nil
	}
	if len(dbResp) == 0 {
		dbResp = []models.Review{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
