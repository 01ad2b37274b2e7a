package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Payment is the record kept after a successful charge. BookingID refers
// to the booking it settles.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	BookingID     string             `bson:"bookingId" json:"bookingId" binding:"required"`
	TransactionID string             `bson:"transactionId" json:"transactionId" binding:"required"`
	Price         float64            `bson:"price" json:"price"`
	Email         string             `bson:"email" json:"email"`
}
