package databases

import "github.com/rentwheels/car-rental-api/models"

// sampleCars is the demo fleet inserted on first use of an empty car
// collection so a fresh deployment has something to browse.
var sampleCars = []models.Car{
	{
		Title:        "Apex GT-R",
		Brand:        "Nissan",
		Model:        "GT-R Nismo",
		Year:         2022,
		Type:         "coupe",
		Transmission: "automatic",
		FuelType:     "petrol",
		Seats:        4,
		Luggage:      2,
		PricePerDay:  320.0,
		Images: []string{
			"https://images.unsplash.com/photo-1619767886558-efdc259cde1b?q=80&w=1600&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1606664515524-ed2f786f83f2?q=80&w=1600&auto=format&fit=crop",
		},
		Rating:   4.8,
		Featured: true,
	},
	{
		Title:        "Volt S",
		Brand:        "Tesla",
		Model:        "Model S Plaid",
		Year:         2023,
		Type:         "sedan",
		Transmission: "automatic",
		FuelType:     "electric",
		Seats:        5,
		Luggage:      3,
		PricePerDay:  280.0,
		Images: []string{
			"https://images.unsplash.com/photo-1549923746-c502d488b3ea?q=80&w=1600&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1549923686-1ea9789c2f73?q=80&w=1600&auto=format&fit=crop",
		},
		Rating:   4.7,
		Featured: true,
	},
	{
		Title:        "Trailhawk X",
		Brand:        "Jeep",
		Model:        "Grand Cherokee",
		Year:         2021,
		Type:         "suv",
		Transmission: "automatic",
		FuelType:     "hybrid",
		Seats:        7,
		Luggage:      5,
		PricePerDay:  190.0,
		Images: []string{
			"https://images.unsplash.com/photo-1549921296-3cc26d0e3d36?q=80&w=1600&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1519648023493-d82b5f8d7fd2?q=80&w=1600&auto=format&fit=crop",
		},
		Rating:   4.4,
		Featured: false,
	},
}
