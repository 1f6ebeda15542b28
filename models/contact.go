package models

import (
	"fmt"
	"net/mail"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContactMessage holds the structure for the contact collection in mongo
type ContactMessage struct {
	ID        primitive.ObjectID `json:"id" bson:"_id"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	Message   string             `json:"message" bson:"message"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}

// Validate checks the message fields before insert
func (c ContactMessage) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("name is required")
	}
	if c.Message == "" {
		return fmt.Errorf("message is required")
	}
	if _, err := mail.ParseAddress(c.Email); err != nil {
		return fmt.Errorf("invalid email: %v", err)
	}
	return nil
}
