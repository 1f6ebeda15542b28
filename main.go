package main

import (
	"fmt"
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/rentwheels/car-rental-api/api"
	"github.com/rentwheels/car-rental-api/api/handlers"
	"github.com/rentwheels/car-rental-api/config"
)

func main() {
	a := handlers.App{}
	a.Config = *config.New()

	if err := a.Initialize(); err != nil {
		log.Fatal(err)
	}

	port := a.Config.Port
	if port == "" {
		port = "8000"
	}
	zap.S().Infow("car-rental-api is up and running",
		"port", port,
		"url", a.Config.BaseURL,
	)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%v", port), api.CORS(a.Router)))
}
