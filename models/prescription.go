package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Prescription struct {
	ID           primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	DoctorID     string             `json:"doctorId" bson:"doctorId"`
	DoctorName   string             `json:"doctorName" bson:"doctorName"`
	DoctorEmail  string             `json:"doctorEmail" bson:"doctorEmail"`
	PatientName  string             `json:"patientName" bson:"patientName"`
	PatientEmail string             `json:"patientEmail" bson:"patientEmail"`
	PatientAge   int                `json:"patientAge" bson:"patientAge"`
	Diagnosis    string             `json:"diagnosis" bson:"diagnosis"`
	Medicines    string             `json:"medicines" bson:"medicines"`
	Notes        string             `json:"notes" bson:"notes"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}
