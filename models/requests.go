package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"MediBook/util"
)

var jsonNull = []byte("null")

// FlexString holds a JSON string or number as text. Clients send fields
// like patientAge either way.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("expected a string or number, got %s", b)
	}
	*f = FlexString(n.String())
	return nil
}

// FlexInt holds a JSON integer or a numeric string.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, jsonNull) {
		return nil
	}
	var raw interface{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return util.ValidationError(util.INVALID_NUMBER)
	}
	n, ok := util.IntValue(raw)
	if !ok {
		return util.ValidationError(util.INVALID_NUMBER)
	}
	*f = FlexInt(n)
	return nil
}

// FlexDate holds a YYYY-MM-DD date or an RFC3339 timestamp.
type FlexDate struct {
	time.Time
}

func (f *FlexDate) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return util.ValidationError(util.INVALID_DATE)
	}
	t, err := util.ParseDate(s)
	if err != nil {
		return util.ValidationError(util.INVALID_DATE)
	}
	f.Time = t
	return nil
}

// TimePtr returns nil for an absent date.
func (f *FlexDate) TimePtr() *time.Time {
	if f == nil {
		return nil
	}
	t := f.Time
	return &t
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

// Trimmed strips surrounding blanks from everything but the password.
func (r RegisterRequest) Trimmed() RegisterRequest {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Role = strings.TrimSpace(r.Role)
	return r
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r LoginRequest) Trimmed() LoginRequest {
	r.Email = strings.TrimSpace(r.Email)
	return r
}

// BookingRequest is the booking form. Status, doctorStatus and tokenNumber
// are not part of it; the server assigns them.
type BookingRequest struct {
	PatientID      string     `json:"patientId" binding:"required"`
	PatientName    string     `json:"patientName" binding:"required"`
	PatientAge     FlexString `json:"patientAge" binding:"required"`
	PatientAddress string     `json:"patientAddress" binding:"required"`
	PatientMobile  FlexString `json:"patientMobile" binding:"required"`
	PatientEmail   string     `json:"patientEmail" binding:"required"`
	Disease        string     `json:"disease"`
	DoctorID       string     `json:"doctorId"`
	DoctorEmail    string     `json:"doctorEmail" binding:"required"`
	DoctorName     string     `json:"doctorName" binding:"required"`
	Specialist     string     `json:"specialist" binding:"required"`
	Date           string     `json:"date" binding:"required"`
	Time           string     `json:"time" binding:"required"`
}

func (r BookingRequest) Trimmed() BookingRequest {
	r.PatientID = strings.TrimSpace(r.PatientID)
	r.PatientName = strings.TrimSpace(r.PatientName)
	r.PatientAge = FlexString(strings.TrimSpace(string(r.PatientAge)))
	r.PatientAddress = strings.TrimSpace(r.PatientAddress)
	r.PatientMobile = FlexString(strings.TrimSpace(string(r.PatientMobile)))
	r.PatientEmail = strings.TrimSpace(r.PatientEmail)
	r.Disease = strings.TrimSpace(r.Disease)
	r.DoctorID = strings.TrimSpace(r.DoctorID)
	r.DoctorEmail = strings.TrimSpace(r.DoctorEmail)
	r.DoctorName = strings.TrimSpace(r.DoctorName)
	r.Specialist = strings.TrimSpace(r.Specialist)
	r.Date = strings.TrimSpace(r.Date)
	r.Time = strings.TrimSpace(r.Time)
	return r
}

// DoctorRequest is the doctor form. doctorId is checked by the service so
// the client gets its dedicated message.
type DoctorRequest struct {
	DoctorID      string    `json:"doctorId"`
	DoctorName    string    `json:"doctorName"`
	Email         string    `json:"email"`
	DoctorFrom    string    `json:"doctorFrom"`
	Specialist    string    `json:"specialist"`
	Gender        string    `json:"gender"`
	Language      string    `json:"language"`
	DateOfJoining *FlexDate `json:"dateOfJoining"`
	DateOfBirth   *FlexDate `json:"dateOfBirth"`
}

func (r DoctorRequest) Trimmed() DoctorRequest {
	r.DoctorID = strings.TrimSpace(r.DoctorID)
	r.DoctorName = strings.TrimSpace(r.DoctorName)
	r.Email = strings.TrimSpace(r.Email)
	r.DoctorFrom = strings.TrimSpace(r.DoctorFrom)
	r.Specialist = strings.TrimSpace(r.Specialist)
	r.Gender = strings.TrimSpace(r.Gender)
	r.Language = strings.TrimSpace(r.Language)
	return r
}

type PrescriptionRequest struct {
	DoctorID     string  `json:"doctorId"`
	DoctorName   string  `json:"doctorName"`
	DoctorEmail  string  `json:"doctorEmail" binding:"required"`
	PatientName  string  `json:"patientName"`
	PatientEmail string  `json:"patientEmail" binding:"required"`
	PatientAge   FlexInt `json:"patientAge"`
	Diagnosis    string  `json:"diagnosis"`
	Medicines    string  `json:"medicines"`
	Notes        string  `json:"notes"`
}

func (r PrescriptionRequest) Trimmed() PrescriptionRequest {
	r.DoctorID = strings.TrimSpace(r.DoctorID)
	r.DoctorName = strings.TrimSpace(r.DoctorName)
	r.DoctorEmail = strings.TrimSpace(r.DoctorEmail)
	r.PatientName = strings.TrimSpace(r.PatientName)
	r.PatientEmail = strings.TrimSpace(r.PatientEmail)
	r.Diagnosis = strings.TrimSpace(r.Diagnosis)
	r.Medicines = strings.TrimSpace(r.Medicines)
	r.Notes = strings.TrimSpace(r.Notes)
	return r
}
