package config_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rentwheels/car-rental-api/config"
	"github.com/rentwheels/car-rental-api/models"
)

func TestNew(t *testing.T) {
	t.Setenv("DB_URI", "mongodb://localhost:27017")
	t.Setenv("DB_NAME", "car-rental")
	t.Setenv("BASE_URL", "http://localhost:8000")
	t.Setenv("PORT", "8000")

	conf := config.New()

	assert.Equal(t, "mongodb://localhost:27017", conf.URL)
	assert.Equal(t, "car-rental", conf.DatabaseName)
	assert.Equal(t, "http://localhost:8000", conf.BaseURL)
	assert.Equal(t, "8000", conf.Port)
}

func TestErrorStatus(t *testing.T) {
	rr := httptest.NewRecorder()

	config.ErrorStatus("failed to do the thing", http.StatusBadRequest, rr, errors.New("mocked-error"))

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var resp models.ErrorMessageResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "failed to do the thing", resp.Response.Message)
	assert.Equal(t, "mocked-error", resp.Response.Error)
}
