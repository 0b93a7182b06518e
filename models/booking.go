package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusPending     = "Pending"
	StatusApproved    = "Approved"
	StatusRejected    = "Rejected"
	StatusReviewed    = "Reviewed"
	StatusNotReviewed = "Not Reviewed"
)

// BookingStatuses are the accepted values of Booking.Status.
var BookingStatuses = []string{StatusPending, StatusApproved, StatusRejected, StatusReviewed, StatusNotReviewed}

// DoctorStatuses are the accepted values of Booking.DoctorStatus.
var DoctorStatuses = []string{StatusReviewed, StatusNotReviewed}

type Booking struct {
	ID             primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	PatientID      string             `json:"patientId" bson:"patientId"`
	PatientName    string             `json:"patientName" bson:"patientName"`
	PatientAge     string             `json:"patientAge" bson:"patientAge"`
	PatientAddress string             `json:"patientAddress" bson:"patientAddress"`
	PatientMobile  string             `json:"patientMobile" bson:"patientMobile"`
	PatientEmail   string             `json:"patientEmail" bson:"patientEmail"`
	Disease        string             `json:"disease,omitempty" bson:"disease,omitempty"`
	DoctorID       string             `json:"doctorId,omitempty" bson:"doctorId,omitempty"`
	DoctorEmail    string             `json:"doctorEmail" bson:"doctorEmail"`
	DoctorName     string             `json:"doctorName" bson:"doctorName"`
	Specialist     string             `json:"specialist" bson:"specialist"`
	Date           string             `json:"date" bson:"date"`
	Time           string             `json:"time" bson:"time"`
	Status         string             `json:"status" bson:"status"`
	DoctorStatus   string             `json:"doctorStatus" bson:"doctorStatus"`
	TokenNumber    int64              `json:"tokenNumber" bson:"tokenNumber"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
}

func ValidStatus(status string) bool {
	return contains(BookingStatuses, status)
}

func ValidDoctorStatus(status string) bool {
	return contains(DoctorStatuses, status)
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
