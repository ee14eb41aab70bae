package repository

import (
	"context"

	"go-doctor-directory/internal/domain/entity"
	domainRepo "go-doctor-directory/internal/domain/repository"

	"gorm.io/gorm"
)

const createBatchSize = 500

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) FindAll(db *gorm.DB) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	err := db.Preload("Specialties").Order("list_position ASC, id ASC").Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) Count(db *gorm.DB) (int64, error) {
	var total int64
	if err := db.Model(&entity.Doctor{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *doctorRepository) CreateBatch(db *gorm.DB, doctors []entity.Doctor) error {
	if len(doctors) == 0 {
		return nil
	}
	return db.CreateInBatches(&doctors, createBatchSize).Error
}

// postgresDoctorSource adapts the repository to the DoctorSource contract
type postgresDoctorSource struct {
	db   *gorm.DB
	repo domainRepo.DoctorRepository
}

func NewPostgresDoctorSource(db *gorm.DB, repo domainRepo.DoctorRepository) domainRepo.DoctorSource {
	return &postgresDoctorSource{db: db, repo: repo}
}

func (s *postgresDoctorSource) FetchDoctors(ctx context.Context) ([]entity.Doctor, error) {
	return s.repo.FindAll(s.db.WithContext(ctx))
}
