package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Register is an account able to log in. Password always holds a bcrypt hash.
type Register struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	Password  string             `json:"-" bson:"password"`
	Role      string             `json:"role" bson:"role"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}
