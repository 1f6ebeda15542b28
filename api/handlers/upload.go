package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/cloudinary/cloudinary-go/v2/api"

	"github.com/rentwheels/car-rental-api/config"
)

// Upload handles Cloudinary related requests
type Upload struct{}

// GenerateSignatureHandler signs the parameters for a direct-to-Cloudinary
// car image upload, so the frontend can upload without the api secret.
func (u Upload) GenerateSignatureHandler(w http.ResponseWriter, r *http.Request) {
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)

	params := url.Values{}
	params.Set("timestamp", timestamp)
	if preset := os.Getenv("CLOUDINARY_UPLOAD_PRESET"); preset != "" {
		params.Set("upload_preset", preset)
	}

	signature, err := api.SignParameters(params, os.Getenv("CLOUDINARY_API_SECRET"))
	if err != nil {
		config.ErrorStatus("failed to sign upload parameters", http.StatusInternalServerError, w, err)
		return
	}

	json.NewEncoder(w).Encode(map[string]string{
		"timestamp": timestamp,
		"signature": signature,
	})
}
