package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rentwheels/car-rental-api/models"
)

var faqs = []models.FAQ{
	{Question: "What documents do I need to rent a car?", Answer: "A valid driver license and a credit card."},
	{Question: "How is the rental price calculated?", Answer: "Per-day rate multiplied by number of rental days plus optional extras."},
	{Question: "What is the fuel policy?", Answer: "Full-to-full unless stated otherwise."},
	{Question: "Can I cancel my booking?", Answer: "Yes. Free cancellation up to 24 hours before pickup for most cars."},
}

// FAQsHandler returns the static frequently-asked-questions content
func FAQsHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(faqs)
}
