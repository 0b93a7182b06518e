package services

import (
	"context"
	"time"

	"MediBook/models"
	"MediBook/repository"
	"MediBook/util"

	"github.com/rs/zerolog/log"
)

var prescriptionFields = map[string]fieldKind{
	"doctorId":     stringField,
	"doctorName":   stringField,
	"doctorEmail":  stringField,
	"patientName":  stringField,
	"patientEmail": stringField,
	"patientAge":   intField,
	"diagnosis":    stringField,
	"medicines":    stringField,
	"notes":        stringField,
}

type PrescriptionService struct {
	prescriptions PrescriptionStore
	now           func() time.Time
}

func NewPrescriptionService(prescriptions PrescriptionStore) *PrescriptionService {
	return &PrescriptionService{prescriptions: prescriptions, now: time.Now}
}

/*
* doctorEmail and patientEmail are needed to find the record again
* Stamp createdAt and updatedAt
 */
func (s *PrescriptionService) CreatePrescription(ctx context.Context, req models.PrescriptionRequest) (*models.Prescription, error) {
	req = req.Trimmed()
	if err := util.ValidateStruct(req); err != nil {
		return nil, err
	}
	now := s.now().UTC()
	p := &models.Prescription{
		DoctorID:     req.DoctorID,
		DoctorName:   req.DoctorName,
		DoctorEmail:  req.DoctorEmail,
		PatientName:  req.PatientName,
		PatientEmail: req.PatientEmail,
		PatientAge:   int(req.PatientAge),
		Diagnosis:    req.Diagnosis,
		Medicines:    req.Medicines,
		Notes:        req.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.prescriptions.Create(ctx, p); err != nil {
		return nil, storeError(err, "create prescription", util.PRESCRIPTION_NOT_FOUND)
	}
	log.Info().Str("prescription", p.ID.Hex()).Str("doctorEmail", p.DoctorEmail).Msg("prescription created")
	return p, nil
}

// ListByDoctor returns prescriptions newest first. An empty doctorEmail
// lists every prescription.
func (s *PrescriptionService) ListByDoctor(ctx context.Context, doctorEmail string) ([]models.Prescription, error) {
	filter := repository.PrescriptionFilter{DoctorEmail: normalizeEmail(doctorEmail), NewestFirst: true}
	prescriptions, err := s.prescriptions.Find(ctx, filter)
	if err != nil {
		return nil, storeError(err, "list doctor prescriptions", util.PRESCRIPTION_NOT_FOUND)
	}
	return prescriptions, nil
}

func (s *PrescriptionService) ListByPatient(ctx context.Context, patientEmail string) ([]models.Prescription, error) {
	email := normalizeEmail(patientEmail)
	if email == "" {
		return nil, util.ValidationError(util.PATIENT_EMAIL_REQUIRED)
	}
	prescriptions, err := s.prescriptions.Find(ctx, repository.PrescriptionFilter{PatientEmail: email})
	if err != nil {
		return nil, storeError(err, "list patient prescriptions", util.PRESCRIPTION_NOT_FOUND)
	}
	return prescriptions, nil
}

func (s *PrescriptionService) UpdatePrescription(ctx context.Context, rawID string, data map[string]interface{}) (*models.Prescription, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	set, err := buildSet(data, prescriptionFields, "_id", "createdAt")
	if err != nil {
		return nil, err
	}
	set["updatedAt"] = s.now().UTC()

	p, err := s.prescriptions.Update(ctx, id, set)
	if err != nil {
		return nil, storeError(err, "update prescription", util.PRESCRIPTION_NOT_FOUND)
	}
	return p, nil
}

func (s *PrescriptionService) DeletePrescription(ctx context.Context, rawID string) error {
	id, err := parseID(rawID)
	if err != nil {
		return err
	}
	if err := s.prescriptions.Delete(ctx, id); err != nil {
		return storeError(err, "delete prescription", util.PRESCRIPTION_NOT_FOUND)
	}
	return nil
}
