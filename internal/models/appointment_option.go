package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// AppointmentOption is a bookable treatment with its daily slot template.
type AppointmentOption struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name  string             `bson:"name" json:"name"`
	Slots []string           `bson:"slots" json:"slots"`
	Price float64            `bson:"price" json:"price"`
}

// Specialty is the projection served by /appointspecialty.
type Specialty struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name string             `bson:"name" json:"name"`
}
