package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rentwheels/car-rental-api/api/handlers"
)

func TestUpload_GenerateSignatureHandler(t *testing.T) {
	t.Setenv("CLOUDINARY_API_SECRET", "test-secret")
	t.Setenv("CLOUDINARY_UPLOAD_PRESET", "car-images")

	req := httptest.NewRequest("POST", "/api/uploads/signature", nil)

	u := handlers.Upload{}

	rr := httptest.NewRecorder()
	http.HandlerFunc(u.GenerateSignatureHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Regexp(t, regexp.MustCompile(`^\d+$`), resp["timestamp"])
	assert.NotEmpty(t, resp["signature"])
}
