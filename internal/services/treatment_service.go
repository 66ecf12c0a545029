package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dralafandy/Cura-dental-app/internal/models"
	"github.com/dralafandy/Cura-dental-app/internal/repository"
)

type TreatmentService struct {
	repo    repository.TreatmentRepository
	audit   *AuditService
	timeout time.Duration
}

func NewTreatmentService(repo repository.TreatmentRepository, audit *AuditService, timeout time.Duration) *TreatmentService {
	return &TreatmentService{repo: repo, audit: audit, timeout: timeout}
}

func validateTreatment(t *models.Treatment) error {
	t.Name = strings.TrimSpace(t.Name)
	if t.Name == "" {
		return validationError("name is required")
	}
	if t.BaseCost.IsNegative() {
		return validationError("base_cost must not be negative")
	}
	t.BaseCost = t.BaseCost.RoundBank(2)
	return nil
}

func (s *TreatmentService) FindByID(ctx context.Context, id uint) (*models.Treatment, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	treatment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("treatment %d", id))
	}
	return treatment, nil
}

func (s *TreatmentService) List(ctx context.Context, query *repository.ListQuery) ([]models.Treatment, int64, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	treatments, total, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, 0, translateError(err, "treatments")
	}
	return treatments, total, nil
}

func (s *TreatmentService) Create(ctx context.Context, treatment *models.Treatment) error {
	if err := validateTreatment(treatment); err != nil {
		return err
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.repo.Create(ctx, treatment); err != nil {
		return translateError(err, "treatment")
	}
	s.audit.Record(ctx, models.AuditActionCreate, "treatment", treatment.ID, map[string]any{
		"name":      treatment.Name,
		"base_cost": treatment.BaseCost,
	})
	return nil
}

// Update changes the name or base cost. Recorded payments keep the shares they were split with.
func (s *TreatmentService) Update(ctx context.Context, id uint, treatment *models.Treatment) (*models.Treatment, error) {
	if err := validateTreatment(treatment); err != nil {
		return nil, err
	}
	treatment.ID = id

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.repo.Update(ctx, treatment); err != nil {
		return nil, translateError(err, fmt.Sprintf("treatment %d", id))
	}
	s.audit.Record(ctx, models.AuditActionUpdate, "treatment", id, map[string]any{"base_cost": treatment.BaseCost})
	return s.FindByID(ctx, id)
}

// Delete removes a treatment and its split rules. Treatments used by appointments stay.
func (s *TreatmentService) Delete(ctx context.Context, id uint) error {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.repo.Delete(ctx, id); err != nil {
		return translateError(err, fmt.Sprintf("treatment %d", id))
	}
	s.audit.Record(ctx, models.AuditActionDelete, "treatment", id, nil)
	return nil
}
