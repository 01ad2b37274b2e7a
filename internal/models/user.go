package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const RoleAdmin = "admin"

type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name  string             `bson:"name" json:"name"`
	Email string             `bson:"email" json:"email" binding:"required,email"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"` // "" or "admin"
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
