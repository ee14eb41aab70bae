package repository

import (
	"context"

	"go-doctor-directory/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorRepository interface {
	FindAll(db *gorm.DB) ([]entity.Doctor, error)
	Count(db *gorm.DB) (int64, error)
	CreateBatch(db *gorm.DB, doctors []entity.Doctor) error
}

// DoctorSource retrieves the full doctor list in its stored order
type DoctorSource interface {
	FetchDoctors(ctx context.Context) ([]entity.Doctor, error)
}
