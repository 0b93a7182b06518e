package services

import (
	"context"
	"errors"

	"MediBook/config/redis"
	"MediBook/models"
	"MediBook/repository"
	"MediBook/util"

	"github.com/rs/zerolog/log"
)

var doctorFields = map[string]fieldKind{
	"doctorId":      stringField,
	"doctorName":    stringField,
	"email":         stringField,
	"doctorFrom":    stringField,
	"specialist":    stringField,
	"gender":        stringField,
	"language":      stringField,
	"dateOfJoining": dateField,
	"dateOfBirth":   dateField,
}

type DoctorService struct {
	doctors DoctorStore
	cache   *redis.Cache
}

func NewDoctorService(doctors DoctorStore, cache *redis.Cache) *DoctorService {
	return &DoctorService{doctors: doctors, cache: cache}
}

/*
* doctorId is the only required field
* A clash on the doctorId unique index is a conflict
 */
func (s *DoctorService) CreateDoctor(ctx context.Context, req models.DoctorRequest) (*models.Doctor, error) {
	req = req.Trimmed()
	if req.DoctorID == "" {
		return nil, util.ValidationError(util.DOCTOR_ID_REQUIRED)
	}

	doctor := &models.Doctor{
		DoctorID:      req.DoctorID,
		DoctorName:    req.DoctorName,
		Email:         req.Email,
		DoctorFrom:    req.DoctorFrom,
		Specialist:    req.Specialist,
		Gender:        req.Gender,
		Language:      req.Language,
		DateOfJoining: req.DateOfJoining.TimePtr(),
		DateOfBirth:   req.DateOfBirth.TimePtr(),
	}

	if err := s.doctors.Create(ctx, doctor); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, util.ConflictError(util.DOCTOR_ID_ALREADY_EXISTS)
		}
		return nil, storeError(err, "create doctor", util.DOCTOR_NOT_FOUND)
	}
	s.cacheDoctor(ctx, doctor)
	return doctor, nil
}

func (s *DoctorService) ListDoctors(ctx context.Context, filter repository.DoctorFilter) ([]models.Doctor, error) {
	doctors, err := s.doctors.Find(ctx, filter)
	if err != nil {
		return nil, storeError(err, "list doctors", util.DOCTOR_NOT_FOUND)
	}
	return doctors, nil
}

/*
* Read through the cache first
* On a miss load from the store and cache the result
 */
func (s *DoctorService) GetDoctor(ctx context.Context, rawID string) (*models.Doctor, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}

	var cached models.Doctor
	hit, err := s.cache.GetCache(ctx, util.DoctorKey+id.Hex(), &cached)
	if err != nil {
		log.Warn().Err(err).Str("doctor", id.Hex()).Msg("doctor cache read failed")
	}
	if hit {
		return &cached, nil
	}

	doctor, err := s.doctors.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "get doctor", util.DOCTOR_NOT_FOUND)
	}
	s.cacheDoctor(ctx, doctor)
	return doctor, nil
}

func (s *DoctorService) UpdateDoctor(ctx context.Context, rawID string, data map[string]interface{}) (*models.Doctor, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	set, err := buildSet(data, doctorFields, "_id")
	if err != nil {
		return nil, err
	}
	if v, ok := set["doctorId"]; ok && v == "" {
		return nil, util.ValidationError(util.DOCTOR_ID_REQUIRED)
	}
	if len(set) == 0 {
		return s.GetDoctor(ctx, rawID)
	}

	doctor, err := s.doctors.Update(ctx, id, set)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, util.ConflictError(util.DOCTOR_ID_ALREADY_EXISTS)
		}
		return nil, storeError(err, "update doctor", util.DOCTOR_NOT_FOUND)
	}
	s.cacheDoctor(ctx, doctor)
	return doctor, nil
}

func (s *DoctorService) DeleteDoctor(ctx context.Context, rawID string) error {
	id, err := parseID(rawID)
	if err != nil {
		return err
	}
	if err := s.doctors.Delete(ctx, id); err != nil {
		return storeError(err, "delete doctor", util.DOCTOR_NOT_FOUND)
	}
	if err := s.cache.DeleteCache(ctx, util.DoctorKey+id.Hex()); err != nil {
		log.Warn().Err(err).Str("doctor", id.Hex()).Msg("doctor cache delete failed")
	}
	return nil
}

func (s *DoctorService) cacheDoctor(ctx context.Context, doctor *models.Doctor) {
	if err := s.cache.SetCache(ctx, util.DoctorKey+doctor.ID.Hex(), doctor); err != nil {
		log.Warn().Err(err).Str("doctor", doctor.ID.Hex()).Msg("doctor cache write failed")
	}
}
