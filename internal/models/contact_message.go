package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContactMessage is an inbound contact-form submission. The body is immutable
// after creation; only the read flag is ever toggled.
type ContactMessage struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Email       string             `bson:"email" json:"email"`
	Subject     string             `bson:"subject,omitempty" json:"subject,omitempty"`
	Message     string             `bson:"message" json:"message"`
	SubmittedAt time.Time          `bson:"submittedAt" json:"submittedAt"`
	IsRead      bool               `bson:"isRead" json:"isRead"`
}
