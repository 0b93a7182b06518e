package services

import (
	"context"
	"strings"

	"MediBook/models"
	"MediBook/repository"
	"MediBook/util"
)

// ListPatients is the patient-records view over bookings: doctorId matches
// exactly, doctorName as a case-insensitive substring.
func (s *BookingService) ListPatients(ctx context.Context, doctorID, doctorName string) ([]models.Booking, error) {
	filter := repository.BookingFilter{
		DoctorID:   strings.TrimSpace(doctorID),
		DoctorName: strings.TrimSpace(doctorName),
	}
	bookings, err := s.bookings.Find(ctx, filter)
	if err != nil {
		return nil, storeError(err, "list patients", util.RECORD_NOT_FOUND)
	}
	return bookings, nil
}

func (s *BookingService) DeletePatientRecord(ctx context.Context, rawID string) error {
	return s.DeleteBooking(ctx, rawID, util.RECORD_NOT_FOUND)
}
