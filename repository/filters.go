package repository

import (
	"regexp"
	"strings"

	"MediBook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DoctorFilter matches case-insensitive substrings. Empty fields match all.
type DoctorFilter struct {
	Name       string
	Specialist string
	Language   string
	DoctorFrom string
}

func (f DoctorFilter) BSON() bson.M {
	filter := bson.M{}
	addContains(filter, "doctorName", f.Name)
	addContains(filter, "specialist", f.Specialist)
	addContains(filter, "language", f.Language)
	addContains(filter, "doctorFrom", f.DoctorFrom)
	return filter
}

func (f DoctorFilter) Matches(d *models.Doctor) bool {
	return containsFold(d.DoctorName, f.Name) &&
		containsFold(d.Specialist, f.Specialist) &&
		containsFold(d.Language, f.Language) &&
		containsFold(d.DoctorFrom, f.DoctorFrom)
}

// BookingFilter matches emails and doctorId exactly and DoctorName as a
// case-insensitive substring.
type BookingFilter struct {
	PatientEmail string
	DoctorEmail  string
	DoctorID     string
	DoctorName   string
}

func (f BookingFilter) BSON() bson.M {
	filter := bson.M{}
	addEquals(filter, "patientEmail", f.PatientEmail)
	addEquals(filter, "doctorEmail", f.DoctorEmail)
	addEquals(filter, "doctorId", f.DoctorID)
	addContains(filter, "doctorName", f.DoctorName)
	return filter
}

func (f BookingFilter) Matches(b *models.Booking) bool {
	return equalsIfSet(b.PatientEmail, f.PatientEmail) &&
		equalsIfSet(b.DoctorEmail, f.DoctorEmail) &&
		equalsIfSet(b.DoctorID, f.DoctorID) &&
		containsFold(b.DoctorName, f.DoctorName)
}

type PrescriptionFilter struct {
	DoctorEmail  string
	PatientEmail string
	NewestFirst  bool
}

func (f PrescriptionFilter) BSON() bson.M {
	filter := bson.M{}
	addEquals(filter, "doctorEmail", f.DoctorEmail)
	addEquals(filter, "patientEmail", f.PatientEmail)
	return filter
}

func (f PrescriptionFilter) Matches(p *models.Prescription) bool {
	return equalsIfSet(p.DoctorEmail, f.DoctorEmail) && equalsIfSet(p.PatientEmail, f.PatientEmail)
}

func addEquals(filter bson.M, field, value string) {
	if value != "" {
		filter[field] = value
	}
}

// addContains quotes value so user input is never interpreted as a pattern.
func addContains(filter bson.M, field, value string) {
	if value != "" {
		filter[field] = primitive.Regex{Pattern: regexp.QuoteMeta(value), Options: "i"}
	}
}

func equalsIfSet(field, want string) bool {
	return want == "" || field == want
}

func containsFold(field, sub string) bool {
	return sub == "" || strings.Contains(strings.ToLower(field), strings.ToLower(sub))
}
