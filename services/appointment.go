package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"MediBook/events"
	"MediBook/models"
	"MediBook/repository"
	"MediBook/util"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// tokenAttempts bounds how often Create draws a new token number after the
// tokenNumber unique index rejects an insert.
const tokenAttempts = 3

// publishTimeout bounds how long a request waits on the event broker.
const publishTimeout = 2 * time.Second

var bookingFields = map[string]fieldKind{
	"patientId":      stringField,
	"patientName":    stringField,
	"patientAge":     stringField,
	"patientAddress": stringField,
	"patientMobile":  stringField,
	"patientEmail":   stringField,
	"disease":        stringField,
	"doctorId":       stringField,
	"doctorEmail":    stringField,
	"doctorName":     stringField,
	"specialist":     stringField,
	"date":           stringField,
	"time":           stringField,
	"status":         stringField,
	"doctorStatus":   stringField,
}

// lockedBookingFields can never be written through an update.
var lockedBookingFields = []string{"_id", "tokenNumber", "createdAt"}

type BookingService struct {
	bookings  BookingStore
	seq       Sequencer
	publisher events.Publisher
	now       func() time.Time
}

func NewBookingService(bookings BookingStore, seq Sequencer, publisher events.Publisher) *BookingService {
	if publisher == nil {
		publisher = events.Nop{}
	}
	return &BookingService{bookings: bookings, seq: seq, publisher: publisher, now: time.Now}
}

/*
* Validate the required fields
* Force status Pending and doctorStatus Not Reviewed
* Draw a token number from the sequencer and insert
* If the insert hits the tokenNumber unique index, draw again
 */
func (s *BookingService) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	req = req.Trimmed()
	if err := util.ValidateStruct(req); err != nil {
		return nil, err
	}

	booking := &models.Booking{
		PatientID:      req.PatientID,
		PatientName:    req.PatientName,
		PatientAge:     string(req.PatientAge),
		PatientAddress: req.PatientAddress,
		PatientMobile:  string(req.PatientMobile),
		PatientEmail:   req.PatientEmail,
		Disease:        req.Disease,
		DoctorID:       req.DoctorID,
		DoctorEmail:    req.DoctorEmail,
		DoctorName:     req.DoctorName,
		Specialist:     req.Specialist,
		Date:           req.Date,
		Time:           req.Time,
		Status:         models.StatusPending,
		DoctorStatus:   models.StatusNotReviewed,
		CreatedAt:      s.now().UTC(),
	}

	for attempt := 1; attempt <= tokenAttempts; attempt++ {
		token, err := s.seq.Next(ctx, util.BookingTokenSequence)
		if err != nil {
			return nil, storeError(err, "next token number", util.SERVER_ERROR)
		}
		booking.TokenNumber = token

		err = s.bookings.Create(ctx, booking)
		if err == nil {
			log.Info().Int64("tokenNumber", token).Str("booking", booking.ID.Hex()).Msg("booking created")
			s.publish(ctx, events.BookingCreated, booking)
			return booking, nil
		}
		if !errors.Is(err, repository.ErrDuplicate) {
			return nil, storeError(err, "create booking", util.SERVER_ERROR)
		}
		log.Warn().Int64("tokenNumber", token).Int("attempt", attempt).Msg("token number already taken, drawing another")
	}
	err := fmt.Errorf("%s after %d attempts", util.TOKEN_NUMBER_NOT_ASSIGNABLE, tokenAttempts)
	log.Error().Err(err).Msg("booking not created")
	return nil, util.InternalError(err)
}

// ListBookings returns every booking, or only the patient's when
// patientEmail is given.
func (s *BookingService) ListBookings(ctx context.Context, patientEmail string) ([]models.Booking, error) {
	bookings, err := s.bookings.Find(ctx, repository.BookingFilter{PatientEmail: normalizeEmail(patientEmail)})
	if err != nil {
		return nil, storeError(err, "list bookings", util.BOOKING_NOT_FOUND)
	}
	return bookings, nil
}

func (s *BookingService) ListDoctorAppointments(ctx context.Context, doctorEmail string) ([]models.Booking, error) {
	email := normalizeEmail(doctorEmail)
	if email == "" {
		return nil, util.ValidationError(util.DOCTOR_EMAIL_REQUIRED)
	}
	bookings, err := s.bookings.Find(ctx, repository.BookingFilter{DoctorEmail: email})
	if err != nil {
		return nil, storeError(err, "list doctor appointments", util.APPOINTMENT_NOT_FOUND)
	}
	return bookings, nil
}

/*
* Reject writes to _id, tokenNumber and createdAt
* Validate status and doctorStatus against their enums
* Apply the rest and return the updated booking
 */
func (s *BookingService) UpdateBooking(ctx context.Context, rawID string, data map[string]interface{}) (*models.Booking, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	set, err := buildSet(data, bookingFields, lockedBookingFields...)
	if err != nil {
		return nil, err
	}
	if status, ok := set["status"].(string); ok && !models.ValidStatus(status) {
		return nil, util.ValidationError(util.INVALID_STATUS)
	}
	if status, ok := set["doctorStatus"].(string); ok && !models.ValidDoctorStatus(status) {
		return nil, util.ValidationError(util.INVALID_DOCTOR_STATUS)
	}
	return s.applyUpdate(ctx, id, set, util.BOOKING_NOT_FOUND)
}

// SetDoctorStatus changes only doctorStatus.
func (s *BookingService) SetDoctorStatus(ctx context.Context, rawID string, data map[string]interface{}) (*models.Booking, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	status := util.GetTrimmedString(data, "doctorStatus")
	if status == "" {
		return nil, util.ValidationError(util.DOCTOR_STATUS_REQUIRED)
	}
	if !models.ValidDoctorStatus(status) {
		return nil, util.ValidationError(util.INVALID_DOCTOR_STATUS)
	}
	return s.applyUpdate(ctx, id, bson.M{"doctorStatus": status}, util.APPOINTMENT_NOT_FOUND)
}

func (s *BookingService) applyUpdate(ctx context.Context, id primitive.ObjectID, set bson.M, notFound string) (*models.Booking, error) {
	if len(set) == 0 {
		booking, err := s.bookings.FindByID(ctx, id)
		if err != nil {
			return nil, storeError(err, "get booking", notFound)
		}
		return booking, nil
	}
	booking, err := s.bookings.Update(ctx, id, set)
	if err != nil {
		return nil, storeError(err, "update booking", notFound)
	}
	s.publish(ctx, events.BookingUpdated, booking)
	return booking, nil
}

// DeleteBooking removes a booking. notFound is the message reported when
// the id matches nothing, since each route words it differently.
func (s *BookingService) DeleteBooking(ctx context.Context, rawID string, notFound string) error {
	id, err := parseID(rawID)
	if err != nil {
		return err
	}
	booking, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		return storeError(err, "get booking", notFound)
	}
	if err := s.bookings.Delete(ctx, id); err != nil {
		return storeError(err, "delete booking", notFound)
	}
	s.publish(ctx, events.BookingDeleted, booking)
	return nil
}

/*
* Raise the token counter to the highest stored tokenNumber
* Covers bookings written before the counter existed
 */
func (s *BookingService) ReconcileTokenCounter(ctx context.Context) error {
	max, err := s.bookings.MaxTokenNumber(ctx)
	if err != nil {
		return fmt.Errorf("read max tokenNumber: %w", err)
	}
	if err := s.seq.SeedAtLeast(ctx, util.BookingTokenSequence, max); err != nil {
		return fmt.Errorf("seed %s counter: %w", util.BookingTokenSequence, err)
	}
	log.Info().Int64("maxTokenNumber", max).Msg("token counter reconciled")
	return nil
}

// publish runs detached from the request context and gives up after
// publishTimeout.
func (s *BookingService) publish(ctx context.Context, eventType string, booking *models.Booking) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := s.publisher.Publish(ctx, events.FromBooking(eventType, booking)); err != nil {
		log.Warn().Err(err).Str("event", eventType).Str("booking", booking.ID.Hex()).Msg("booking event not published")
	}
}
