package services

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/dralafandy/Cura-dental-app/internal/models"
	"github.com/dralafandy/Cura-dental-app/internal/repository"
)

type DoctorService struct {
	repo    repository.DoctorRepository
	audit   *AuditService
	timeout time.Duration
}

func NewDoctorService(repo repository.DoctorRepository, audit *AuditService, timeout time.Duration) *DoctorService {
	return &DoctorService{repo: repo, audit: audit, timeout: timeout}
}

func validateDoctor(d *models.Doctor) error {
	d.Name = strings.TrimSpace(d.Name)
	if d.Name == "" {
		return validationError("name is required")
	}
	d.Email = strings.TrimSpace(d.Email)
	if d.Email != "" {
		if _, err := mail.ParseAddress(d.Email); err != nil {
			return validationError("email %q is invalid", d.Email)
		}
	}
	return nil
}

func (s *DoctorService) FindByID(ctx context.Context, id uint) (*models.Doctor, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	doctor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("doctor %d", id))
	}
	return doctor, nil
}

func (s *DoctorService) List(ctx context.Context, query *repository.ListQuery) ([]models.Doctor, int64, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	doctors, total, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, 0, translateError(err, "doctors")
	}
	return doctors, total, nil
}

func (s *DoctorService) Create(ctx context.Context, doctor *models.Doctor) error {
	if err := validateDoctor(doctor); err != nil {
		return err
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.repo.Create(ctx, doctor); err != nil {
		return translateError(err, "doctor")
	}
	s.audit.Record(ctx, models.AuditActionCreate, "doctor", doctor.ID, map[string]any{"name": doctor.Name})
	return nil
}

func (s *DoctorService) Update(ctx context.Context, id uint, doctor *models.Doctor) (*models.Doctor, error) {
	if err := validateDoctor(doctor); err != nil {
		return nil, err
	}
	doctor.ID = id

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.repo.Update(ctx, doctor); err != nil {
		return nil, translateError(err, fmt.Sprintf("doctor %d", id))
	}
	s.audit.Record(ctx, models.AuditActionUpdate, "doctor", id, nil)
	return s.FindByID(ctx, id)
}

// Delete removes a doctor. Doctors referenced by appointments cannot be deleted.
func (s *DoctorService) Delete(ctx context.Context, id uint) error {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.repo.Delete(ctx, id); err != nil {
		return translateError(err, fmt.Sprintf("doctor %d", id))
	}
	s.audit.Record(ctx, models.AuditActionDelete, "doctor", id, nil)
	return nil
}
