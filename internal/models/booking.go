package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Booking struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Treatment     string             `bson:"treatment" json:"treatment" binding:"required"`
	AppointDate   string             `bson:"appointDate" json:"appointDate" binding:"required"`
	SelectedSlot  string             `bson:"selectedSlot" json:"selectedSlot" binding:"required"`
	Patient       string             `bson:"patient" json:"patient"`
	Email         string             `bson:"email" json:"email" binding:"required,email"`
	Phone         string             `bson:"phone" json:"phone"`
	Price         float64            `bson:"price" json:"price"`
	Paid          bool               `bson:"paid" json:"paid"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
}

// BookingResult is the soft outcome of a booking request. A rejected
// duplicate is acknowledged=false with a message, never an error.
type BookingResult struct {
	Acknowledged bool        `json:"acknowledged"`
	InsertedID   interface{} `json:"insertedId,omitempty"`
	Message      string      `json:"message,omitempty"`
}
