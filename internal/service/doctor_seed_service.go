package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go-doctor-directory/internal/domain/entity"
	"go-doctor-directory/internal/domain/repository"
	"go-doctor-directory/pkg/validator"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// DoctorSeedService imports a doctor list into an empty doctors table
type DoctorSeedService struct {
	db        *gorm.DB
	repo      repository.DoctorRepository
	validator *validator.CustomValidator
	log       *logrus.Logger
}

func NewDoctorSeedService(db *gorm.DB, repo repository.DoctorRepository, validator *validator.CustomValidator, log *logrus.Logger) *DoctorSeedService {
	return &DoctorSeedService{
		db:        db,
		repo:      repo,
		validator: validator,
		log:       log,
	}
}

// SeedFromFile loads a JSON doctor list from path and seeds it
func (s *DoctorSeedService) SeedFromFile(ctx context.Context, path string) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read seed file: %w", err)
	}

	var doctors []entity.Doctor
	if err := json.Unmarshal(raw, &doctors); err != nil {
		return 0, fmt.Errorf("decode seed file: %w", err)
	}

	return s.Seed(ctx, doctors)
}

// Seed inserts doctors, keeping their list order, when the table is empty.
// It returns how many rows were written.
func (s *DoctorSeedService) Seed(ctx context.Context, doctors []entity.Doctor) (int, error) {
	if err := ValidateDoctors(s.validator, doctors); err != nil {
		return 0, fmt.Errorf("invalid seed data: %w", err)
	}

	tx := s.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	total, err := s.repo.Count(tx)
	if err != nil {
		s.log.Warnf("Failed to count doctors: %+v", err)
		return 0, err
	}
	if total > 0 {
		s.log.WithField("existing", total).Info("Doctors table already populated, skipping seed")
		return 0, nil
	}

	rows := make([]entity.Doctor, len(doctors))
	for i, doctor := range doctors {
		doctor.ListPosition = i
		doctor.Specialties = nil
		rows[i] = doctor
	}

	if err := s.repo.CreateBatch(tx, rows); err != nil {
		s.log.Warnf("Failed to seed doctors: %+v", err)
		return 0, err
	}

	if err := tx.Commit().Error; err != nil {
		s.log.Warnf("Failed commit transaction: %+v", err)
		return 0, err
	}

	s.log.WithField("count", len(rows)).Info("Doctors seeded")
	return len(rows), nil
}
