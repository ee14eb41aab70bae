package service

import (
	"context"
	"errors"
	"fmt"

	"go-doctor-directory/internal/domain/directory"
	"go-doctor-directory/internal/domain/entity"
	"go-doctor-directory/internal/domain/repository"
	"go-doctor-directory/pkg/validator"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// ErrDataLoadFailure is the only error the catalog reports. Network, decode
// and validation failures all collapse into it.
var ErrDataLoadFailure = errors.New("failed to load doctors data")

const catalogFlightKey = "catalog"

// CatalogCache keeps a loaded doctor list between requests
type CatalogCache interface {
	Get(ctx context.Context) ([]entity.Doctor, bool, error)
	Set(ctx context.Context, doctors []entity.Doctor) error
	Invalidate(ctx context.Context) error
}

type DoctorCatalogService interface {
	FetchDoctors(ctx context.Context) ([]entity.Doctor, error)
	GetAllSpecialties(doctors []entity.Doctor) []string
	Refresh(ctx context.Context) error
}

type doctorCatalogService struct {
	source    repository.DoctorSource
	cache     CatalogCache
	validator *validator.CustomValidator
	log       *logrus.Logger
	group     singleflight.Group
}

// NewDoctorCatalogService builds a read-through catalog. cache may be nil.
func NewDoctorCatalogService(
	source repository.DoctorSource,
	cache CatalogCache,
	validator *validator.CustomValidator,
	log *logrus.Logger,
) DoctorCatalogService {
	return &doctorCatalogService{
		source:    source,
		cache:     cache,
		validator: validator,
		log:       log,
	}
}

// FetchDoctors returns the full doctor list. Concurrent callers share a single
// load, which is not cancelled when the caller that started it goes away.
func (s *doctorCatalogService) FetchDoctors(ctx context.Context) ([]entity.Doctor, error) {
	loadCtx := context.WithoutCancel(ctx)
	v, err, shared := s.group.Do(catalogFlightKey, func() (interface{}, error) {
		return s.load(loadCtx)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		s.log.Debug("Doctor catalog load shared with concurrent request")
	}
	return v.([]entity.Doctor), nil
}

func (s *doctorCatalogService) GetAllSpecialties(doctors []entity.Doctor) []string {
	return directory.Specialties(doctors)
}

// Refresh drops the cached list so the next fetch reads the source
func (s *doctorCatalogService) Refresh(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warnf("Failed to invalidate doctor catalog cache: %+v", err)
		return err
	}
	return nil
}

func (s *doctorCatalogService) load(ctx context.Context) ([]entity.Doctor, error) {
	if s.cache != nil {
		doctors, ok, err := s.cache.Get(ctx)
		switch {
		case err != nil:
			s.log.Warnf("Failed to read doctor catalog cache: %+v", err)
		case ok:
			return doctors, nil
		}
	}

	doctors, err := s.source.FetchDoctors(ctx)
	if err != nil {
		s.log.Errorf("Failed to fetch doctors: %+v", err)
		return nil, fmt.Errorf("%w: %v", ErrDataLoadFailure, err)
	}

	if err := s.validate(doctors); err != nil {
		s.log.Errorf("Failed to validate doctors: %+v", err)
		return nil, fmt.Errorf("%w: %v", ErrDataLoadFailure, err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, doctors); err != nil {
			s.log.Warnf("Failed to write doctor catalog cache: %+v", err)
		}
	}

	s.log.WithField("count", len(doctors)).Info("Doctor catalog loaded")
	return doctors, nil
}

func (s *doctorCatalogService) validate(doctors []entity.Doctor) error {
	return ValidateDoctors(s.validator, doctors)
}

// ValidateDoctors checks every record and that ids are unique across the list
func ValidateDoctors(v *validator.CustomValidator, doctors []entity.Doctor) error {
	seen := make(map[entity.DoctorID]struct{}, len(doctors))
	for i := range doctors {
		doctor := &doctors[i]
		if err := v.Validate(doctor); err != nil {
			return fmt.Errorf("doctor %d (%q): %v", i, doctor.ID, v.FormatValidationErrors(err))
		}
		if _, ok := seen[doctor.ID]; ok {
			return fmt.Errorf("doctor %d: duplicate id %q", i, doctor.ID)
		}
		seen[doctor.ID] = struct{}{}
	}
	return nil
}
