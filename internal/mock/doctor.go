// Package mock provides function-field test doubles for the directory's
// collaborator interfaces.
package mock

import (
	"context"

	"go-doctor-directory/internal/domain/entity"
	"go-doctor-directory/internal/domain/repository"
	"go-doctor-directory/internal/service"
)

var _ repository.DoctorSource = (*DoctorSource)(nil)

type DoctorSource struct {
	FetchDoctorsFn func(ctx context.Context) ([]entity.Doctor, error)
}

func (s *DoctorSource) FetchDoctors(ctx context.Context) ([]entity.Doctor, error) {
	return s.FetchDoctorsFn(ctx)
}

var _ service.CatalogCache = (*CatalogCache)(nil)

type CatalogCache struct {
	GetFn        func(ctx context.Context) ([]entity.Doctor, bool, error)
	SetFn        func(ctx context.Context, doctors []entity.Doctor) error
	InvalidateFn func(ctx context.Context) error
}

func (c *CatalogCache) Get(ctx context.Context) ([]entity.Doctor, bool, error) {
	return c.GetFn(ctx)
}

func (c *CatalogCache) Set(ctx context.Context, doctors []entity.Doctor) error {
	return c.SetFn(ctx, doctors)
}

func (c *CatalogCache) Invalidate(ctx context.Context) error {
	return c.InvalidateFn(ctx)
}

var _ service.DoctorCatalogService = (*DoctorCatalogService)(nil)

type DoctorCatalogService struct {
	FetchDoctorsFn      func(ctx context.Context) ([]entity.Doctor, error)
	GetAllSpecialtiesFn func(doctors []entity.Doctor) []string
	RefreshFn           func(ctx context.Context) error
}

func (s *DoctorCatalogService) FetchDoctors(ctx context.Context) ([]entity.Doctor, error) {
	return s.FetchDoctorsFn(ctx)
}

func (s *DoctorCatalogService) GetAllSpecialties(doctors []entity.Doctor) []string {
	return s.GetAllSpecialtiesFn(doctors)
}

func (s *DoctorCatalogService) Refresh(ctx context.Context) error {
	return s.RefreshFn(ctx)
}
