package services

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dralafandy/Cura-dental-app/internal/models"
	"github.com/dralafandy/Cura-dental-app/internal/repository"
	"github.com/dralafandy/Cura-dental-app/pkg/logger"
)

type PatientService struct {
	repo            repository.PatientRepository
	appointmentRepo repository.AppointmentRepository
	images          *ImageService
	audit           *AuditService
	timeout         time.Duration
}

func NewPatientService(repo repository.PatientRepository, appointmentRepo repository.AppointmentRepository, images *ImageService, audit *AuditService, timeout time.Duration) *PatientService {
	return &PatientService{
		repo:            repo,
		appointmentRepo: appointmentRepo,
		images:          images,
		audit:           audit,
		timeout:         timeout,
	}
}

func validatePatient(p *models.Patient) error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return validationError("name is required")
	}
	if p.Age != nil && (*p.Age < 0 || *p.Age > 150) {
		return validationError("age %d is out of range", *p.Age)
	}
	return nil
}

// FindByID retrieves a patient by ID
func (s *PatientService) FindByID(ctx context.Context, id uint) (*models.Patient, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	patient, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("patient %d", id))
	}
	return patient, nil
}

// List retrieves patients with pagination and search
func (s *PatientService) List(ctx context.Context, query *repository.ListQuery) ([]models.Patient, int64, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	patients, total, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, 0, translateError(err, "patients")
	}
	return patients, total, nil
}

// Create registers a new patient
func (s *PatientService) Create(ctx context.Context, patient *models.Patient) error {
	if err := validatePatient(patient); err != nil {
		return err
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.repo.Create(ctx, patient); err != nil {
		return translateError(err, "patient")
	}
	s.audit.Record(ctx, models.AuditActionCreate, "patient", patient.ID, map[string]any{"name": patient.Name})
	return nil
}

// Update overwrites the patient's details. Image fields are managed by UploadImage only.
func (s *PatientService) Update(ctx context.Context, id uint, patient *models.Patient) (*models.Patient, error) {
	if err := validatePatient(patient); err != nil {
		return nil, err
	}
	patient.ID = id

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.repo.Update(ctx, patient); err != nil {
		return nil, translateError(err, fmt.Sprintf("patient %d", id))
	}
	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("patient %d", id))
	}
	s.audit.Record(ctx, models.AuditActionUpdate, "patient", id, nil)
	return updated, nil
}

// Delete removes a patient without appointments, then their radiograph blobs
func (s *PatientService) Delete(ctx context.Context, id uint) error {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	patient, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return translateError(err, fmt.Sprintf("patient %d", id))
	}

	appointments, err := s.appointmentRepo.FindByPatient(ctx, id)
	if err != nil {
		return translateError(err, "appointments")
	}
	if len(appointments) > 0 {
		return fmt.Errorf("%w: patient %d has %d appointment(s)", ErrConflict, id, len(appointments))
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return translateError(err, fmt.Sprintf("patient %d", id))
	}

	if patient.HasImage() {
		s.images.Remove(ctx, *patient.ImagePath, derefString(patient.ThumbnailPath))
	}
	s.audit.Record(ctx, models.AuditActionDelete, "patient", id, nil)
	return nil
}

// UploadImage stores a radiograph for the patient. Blobs are written first and the row
// updated after; if the row update fails the new blobs are removed again. Blobs of a
// replaced image are deleted once the row points at the new ones.
func (s *PatientService) UploadImage(ctx context.Context, id uint, filename string, data []byte) (*models.Patient, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	patient, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("patient %d", id))
	}

	stored, err := s.images.SaveRadiograph(ctx, id, filename, data)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateImage(ctx, id, &stored.Key, &stored.ThumbnailKey); err != nil {
		s.images.Remove(ctx, stored.Key, stored.ThumbnailKey)
		return nil, translateError(err, fmt.Sprintf("patient %d", id))
	}

	if patient.HasImage() {
		s.images.Remove(ctx, *patient.ImagePath, derefString(patient.ThumbnailPath))
	}

	patient.ImagePath = &stored.Key
	patient.ThumbnailPath = &stored.ThumbnailKey
	s.audit.Record(ctx, models.AuditActionUpdate, "patient", id, map[string]any{"image": stored.Key})
	logger.FromContext(ctx).Info("[Patient] Radiograph stored", "patient_id", id, "key", stored.Key)
	return patient, nil
}

// OpenImage streams the patient's radiograph or its thumbnail
func (s *PatientService) OpenImage(ctx context.Context, id uint, thumbnail bool) (io.ReadCloser, string, error) {
	patient, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if !patient.HasImage() {
		return nil, "", fmt.Errorf("%w: patient %d has no radiograph", ErrNotFound, id)
	}

	key := *patient.ImagePath
	if thumbnail && patient.ThumbnailPath != nil && *patient.ThumbnailPath != "" {
		key = *patient.ThumbnailPath
	}

	rc, err := s.images.Open(ctx, key)
	if err != nil {
		return nil, "", err
	}
	return rc, contentTypeForKey(key), nil
}

func contentTypeForKey(key string) string {
	if strings.HasSuffix(strings.ToLower(key), ".png") {
		return "image/png"
	}
	return "image/jpeg"
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
