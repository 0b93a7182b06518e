package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Doctor struct {
	ID            primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	DoctorID      string             `json:"doctorId" bson:"doctorId"`
	DoctorName    string             `json:"doctorName" bson:"doctorName"`
	Email         string             `json:"email" bson:"email"`
	DoctorFrom    string             `json:"doctorFrom" bson:"doctorFrom"`
	Specialist    string             `json:"specialist" bson:"specialist"`
	Gender        string             `json:"gender" bson:"gender"`
	Language      string             `json:"language" bson:"language"`
	DateOfJoining *time.Time         `json:"dateOfJoining,omitempty" bson:"dateOfJoining,omitempty"`
	DateOfBirth   *time.Time         `json:"dateOfBirth,omitempty" bson:"dateOfBirth,omitempty"`
}
