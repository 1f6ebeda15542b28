package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/rentwheels/car-rental-api/api"
	"github.com/rentwheels/car-rental-api/config"
	"github.com/rentwheels/car-rental-api/databases"
	"github.com/rentwheels/car-rental-api/models"
	templates "github.com/rentwheels/car-rental-api/templates/html"
)

// Contact exported for testing purposes
type Contact struct {
	DB databases.ContactDatabase
}

// CreateContactMessageHandler stores a contact message and, when a support
// inbox is configured, forwards it by email.
func (c Contact) CreateContactMessageHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	var msg models.ContactMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if err := msg.Validate(); err != nil {
		config.ErrorStatus("invalid contact message", http.StatusBadRequest, w, err)
		return
	}

	msg.ID = primitive.NewObjectID()
	msg.CreatedAt = time.Now()

	if err := c.DB.InsertOne(ctx, msg); err != nil {
		config.ErrorStatus("database unavailable", http.StatusInternalServerError, w, err)
		return
	}

	go notifyContactMessage(msg)

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"id": msg.ID.Hex(),
		"ok": true,
	})
}

// notifyContactMessage forwards a contact message to the configured support
// inbox using SendGrid. Delivery failures are logged, never surfaced to the
// caller.
func notifyContactMessage(msg models.ContactMessage) {
	toEmail := os.Getenv("CONTACT_INBOX_EMAIL")
	if os.Getenv("SENDGRID_API_KEY") == "" || toEmail == "" {
		return
	}

	from := mail.NewEmail("Car Rental Contact", "no-reply@rentwheels.app")
	to := mail.NewEmail("Support", toEmail)
	subject := fmt.Sprintf("New contact message from %s", msg.Name)
	plainText := fmt.Sprintf("From: %s <%s>\n\n%s", msg.Name, msg.Email, msg.Message)
	htmlContent := templates.RenderContactForwardEmail(msg.Name, msg.Email, msg.Message)
	message := mail.NewSingleEmail(from, subject, to, plainText, htmlContent)

	client := sendgrid.NewSendClient(os.Getenv("SENDGRID_API_KEY"))
	response, err := client.Send(message)
	if err != nil {
		zap.S().Errorw("failed to forward contact message", "error", err, "to", toEmail)
		return
	}
	if response.StatusCode >= 400 {
		zap.S().Errorw("sendgrid returned error status", "status", response.StatusCode, "body", response.Body, "to", toEmail)
		return
	}
	zap.S().Infow("contact message forwarded", "to", toEmail, "id", msg.ID.Hex())
}
