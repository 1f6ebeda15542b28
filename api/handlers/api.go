package handlers

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/rentwheels/car-rental-api/api"
	"github.com/rentwheels/car-rental-api/config"
	"github.com/rentwheels/car-rental-api/databases"
	"github.com/rentwheels/car-rental-api/models"
)

// App stores the router and db connection, so it can be reused
type App struct {
	Router *mux.Router
	DB     databases.DatabaseHelper
	Config config.Config
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	r := mux.NewRouter()

	car := Car{DB: databases.NewCarDatabase(a.DB)}
	booking := Booking{DB: databases.NewBookingDatabase(a.DB), CarDB: databases.NewCarDatabase(a.DB)}
	review := Review{DB: databases.NewReviewDatabase(a.DB)}
	contact := Contact{DB: databases.NewContactDatabase(a.DB)}
	upload := Upload{}

	// healthchex
	r.HandleFunc("/", rootHandler)
	r.HandleFunc("/health", healthCheckHandler)
	r.HandleFunc("/test", a.TestDatabaseHandler)

	apiCreate := r.PathPrefix("/api").Subrouter()

	apiCreate.Handle("/cars", api.Middleware(http.HandlerFunc(car.CarsHandler))).Methods("GET")
	apiCreate.Handle("/cars", api.Middleware(http.HandlerFunc(car.CreateCarHandler))).Methods("POST")
	apiCreate.Handle("/cars/{car_id}", api.Middleware(http.HandlerFunc(car.CarByIDHandler))).Methods("GET")

	apiCreate.Handle("/bookings", api.Middleware(http.HandlerFunc(booking.CreateBookingHandler))).Methods("POST")
	apiCreate.Handle("/bookings", api.Middleware(http.HandlerFunc(booking.BookingsHandler))).Methods("GET")

	apiCreate.Handle("/reviews", api.Middleware(http.HandlerFunc(review.CreateReviewHandler))).Methods("POST")
	apiCreate.Handle("/reviews", api.Middleware(http.HandlerFunc(review.ReviewsHandler))).Methods("GET")

	apiCreate.Handle("/faqs", api.Middleware(http.HandlerFunc(FAQsHandler))).Methods("GET")
	apiCreate.Handle("/contact", api.Middleware(http.HandlerFunc(contact.CreateContactMessageHandler))).Methods("POST")

	apiCreate.Handle("/uploads/signature", api.Middleware(http.HandlerFunc(upload.GenerateSignatureHandler))).Methods("POST")

	return r
}

// Initialize is invoked by main to connect with the database and create a router
func (a *App) Initialize() error {

	client, err := databases.NewClient(&a.Config)
	if err != nil {
		// if we fail to create a new database client, then kill the pod
		zap.S().With(err).Error("failed to create new client")
		return err
	}

	a.DB = databases.NewDatabase(&a.Config, client)
	err = client.Connect()
	if err != nil {
		// if we fail to connect to the database, then kill the pod
		zap.S().With(err).Error("failed to connect to database")
		return err
	}
	zap.S().Info("car-rental-api has connected to the database")

	// initialize api router
	a.initializeRoutes()
	return nil

}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.MessageResponse{Message: "Car Rental Backend Running"})
	w.Write(b)
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{Alive: true})
	w.Write(b)
}

// TestDatabaseHandler reports store connectivity details. Errors end up in
// the body, never as a failure status, so the route stays usable when the
// database is down.
func (a *App) TestDatabaseHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	resp := models.DiagnosticsResponse{
		Backend:      "running",
		Database:     "connected",
		DatabaseURL:  "not set",
		DatabaseName: a.Config.DatabaseName,
		Collections:  []string{},
	}
	if os.Getenv("DB_URI") != "" {
		resp.DatabaseURL = "set"
	}

	if a.DB == nil {
		resp.Database = "not available"
	} else if err := a.DB.Client().Ping(ctx); err != nil {
		resp.Database = "not available: " + err.Error()
	} else if names, err := a.DB.ListCollectionNames(ctx); err != nil {
		resp.Database = "connected but errored: " + err.Error()
	} else {
		resp.Collections = names
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(resp)
	w.Write(b)
}
