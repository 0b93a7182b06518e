package repository

import (
	"testing"

	"MediBook/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestDoctorFilter_BSONQuotesInput(t *testing.T) {
	f := DoctorFilter{Name: "a.b(", DoctorFrom: "Hyd"}
	got := f.BSON()

	assert.Equal(t, primitive.Regex{Pattern: `a\.b\(`, Options: "i"}, got["doctorName"])
	assert.Equal(t, primitive.Regex{Pattern: "Hyd", Options: "i"}, got["doctorFrom"])
	assert.NotContains(t, got, "specialist")
}

func TestDoctorFilter_Matches(t *testing.T) {
	d := &models.Doctor{DoctorName: "Anita Rao", Specialist: "Cardiology", Language: "Telugu", DoctorFrom: "Hyderabad"}

	assert.True(t, DoctorFilter{}.Matches(d))
	assert.True(t, DoctorFilter{Name: "RAO", Specialist: "cardio"}.Matches(d))
	assert.False(t, DoctorFilter{Language: "Tamil"}.Matches(d))
}

func TestBookingFilter(t *testing.T) {
	f := BookingFilter{DoctorID: "D1", DoctorName: "rao"}
	assert.Equal(t, bson.M{
		"doctorId":   "D1",
		"doctorName": primitive.Regex{Pattern: "rao", Options: "i"},
	}, f.BSON())

	assert.True(t, f.Matches(&models.Booking{DoctorID: "D1", DoctorName: "Anita Rao"}))
	assert.False(t, f.Matches(&models.Booking{DoctorID: "D10", DoctorName: "Anita Rao"}))
}

func TestPrescriptionFilter_EmptyMatchesAll(t *testing.T) {
	assert.Empty(t, PrescriptionFilter{}.BSON())
	assert.True(t, PrescriptionFilter{}.Matches(&models.Prescription{DoctorEmail: "d@x.com"}))
}
