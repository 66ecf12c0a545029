package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dralafandy/Cura-dental-app/internal/models"
	"github.com/dralafandy/Cura-dental-app/internal/repository"
	"github.com/dralafandy/Cura-dental-app/internal/statemachine"
)

type AppointmentService struct {
	repo          repository.AppointmentRepository
	patientRepo   repository.PatientRepository
	doctorRepo    repository.DoctorRepository
	treatmentRepo repository.TreatmentRepository
	paymentRepo   repository.PaymentRepository
	audit         *AuditService
	timeout       time.Duration
}

func NewAppointmentService(
	repo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	treatmentRepo repository.TreatmentRepository,
	paymentRepo repository.PaymentRepository,
	audit *AuditService,
	timeout time.Duration,
) *AppointmentService {
	return &AppointmentService{
		repo:          repo,
		patientRepo:   patientRepo,
		doctorRepo:    doctorRepo,
		treatmentRepo: treatmentRepo,
		paymentRepo:   paymentRepo,
		audit:         audit,
		timeout:       timeout,
	}
}

// checkReferences makes sure the patient, doctor and treatment exist
func (s *AppointmentService) checkReferences(ctx context.Context, a *models.Appointment) error {
	if a.PatientID == 0 || a.DoctorID == 0 || a.TreatmentID == 0 {
		return validationError("patient_id, doctor_id and treatment_id are required")
	}
	if a.Date.IsZero() {
		return validationError("date is required")
	}
	if _, err := s.patientRepo.FindByID(ctx, a.PatientID); err != nil {
		return translateError(err, fmt.Sprintf("patient %d", a.PatientID))
	}
	if _, err := s.doctorRepo.FindByID(ctx, a.DoctorID); err != nil {
		return translateError(err, fmt.Sprintf("doctor %d", a.DoctorID))
	}
	if _, err := s.treatmentRepo.FindByID(ctx, a.TreatmentID); err != nil {
		return translateError(err, fmt.Sprintf("treatment %d", a.TreatmentID))
	}
	return nil
}

// FindByID retrieves an appointment with patient, doctor and treatment loaded
func (s *AppointmentService) FindByID(ctx context.Context, id uint) (*models.Appointment, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	appointment, err := s.repo.FindByIDWithDetails(ctx, id)
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("appointment %d", id))
	}
	return appointment, nil
}

func (s *AppointmentService) List(ctx context.Context, query *repository.ListQuery) ([]models.Appointment, int64, error) {
	if status := query.Filters["status"]; status != "" && !models.IsValidAppointmentStatus(status) {
		return nil, 0, validationError("unknown status %q", status)
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	appointments, total, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, 0, translateError(err, "appointments")
	}
	return appointments, total, nil
}

// Create schedules an appointment. New appointments start pending unless a status is given.
func (s *AppointmentService) Create(ctx context.Context, appointment *models.Appointment) error {
	if appointment.Status == "" {
		appointment.Status = models.AppointmentStatusPending
	}
	if !models.IsValidAppointmentStatus(appointment.Status) {
		return validationError("unknown status %q", appointment.Status)
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.checkReferences(ctx, appointment); err != nil {
		return err
	}

	appointment.ID = 0
	appointment.Version = 1
	if err := s.repo.Create(ctx, appointment); err != nil {
		return translateError(err, "appointment")
	}
	s.audit.Record(ctx, models.AuditActionCreate, "appointment", appointment.ID, map[string]any{
		"patient_id":   appointment.PatientID,
		"doctor_id":    appointment.DoctorID,
		"treatment_id": appointment.TreatmentID,
		"status":       appointment.Status,
	})
	return nil
}

// Update rewrites an appointment. changes.Version must match the stored version; a status
// change must be a legal transition.
func (s *AppointmentService) Update(ctx context.Context, id uint, changes *models.Appointment) (*models.Appointment, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("appointment %d", id))
	}
	if changes.Version != 0 && changes.Version != current.Version {
		return nil, fmt.Errorf("%w: appointment %d is at version %d, not %d", ErrConflict, id, current.Version, changes.Version)
	}

	if err := s.checkReferences(ctx, changes); err != nil {
		return nil, err
	}

	updated := *current
	updated.PatientID = changes.PatientID
	updated.DoctorID = changes.DoctorID
	updated.TreatmentID = changes.TreatmentID
	updated.Date = changes.Date
	updated.Notes = changes.Notes
	if changes.Status != "" {
		if err := s.transition(ctx, &updated, changes.Status); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, &updated); err != nil {
		return nil, translateError(err, fmt.Sprintf("appointment %d", id))
	}
	s.audit.Record(ctx, models.AuditActionUpdate, "appointment", id, map[string]any{
		"status":  updated.Status,
		"version": updated.Version,
	})
	return &updated, nil
}

func (s *AppointmentService) transition(ctx context.Context, appointment *models.Appointment, target string) error {
	machine := statemachine.NewAppointmentFSM(appointment)
	if err := machine.TransitionTo(ctx, target); err != nil {
		return transitionError(err)
	}
	return nil
}

func transitionError(err error) error {
	if errors.Is(err, statemachine.ErrInvalidTransition) {
		return fmt.Errorf("%w: %w", ErrConflict, err)
	}
	return err
}

// fire loads the appointment, applies a status event and saves it under the optimistic lock
func (s *AppointmentService) fire(ctx context.Context, id uint, event string) (*models.Appointment, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	appointment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("appointment %d", id))
	}

	from := appointment.Status
	if err := statemachine.NewAppointmentFSM(appointment).Fire(ctx, event); err != nil {
		return nil, transitionError(err)
	}
	if err := s.repo.Update(ctx, appointment); err != nil {
		return nil, translateError(err, fmt.Sprintf("appointment %d", id))
	}

	s.audit.Record(ctx, models.AuditActionUpdate, "appointment", id, map[string]any{
		"event": event,
		"from":  from,
		"to":    appointment.Status,
	})
	return appointment, nil
}

// Confirm moves a pending appointment to confirmed
func (s *AppointmentService) Confirm(ctx context.Context, id uint) (*models.Appointment, error) {
	return s.fire(ctx, id, statemachine.EventConfirm)
}

// Cancel cancels a pending or confirmed appointment
func (s *AppointmentService) Cancel(ctx context.Context, id uint) (*models.Appointment, error) {
	return s.fire(ctx, id, statemachine.EventCancel)
}

// Reopen returns a confirmed or cancelled appointment to pending
func (s *AppointmentService) Reopen(ctx context.Context, id uint) (*models.Appointment, error) {
	return s.fire(ctx, id, statemachine.EventReopen)
}

// Delete removes an appointment. Appointments with recorded payments are part of the
// ledger and cannot be deleted.
func (s *AppointmentService) Delete(ctx context.Context, id uint) error {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return translateError(err, fmt.Sprintf("appointment %d", id))
	}

	count, err := s.paymentRepo.CountByAppointment(ctx, id)
	if err != nil {
		return translateError(err, "payments")
	}
	if count > 0 {
		return fmt.Errorf("%w: appointment %d has %d recorded payment(s)", ErrConflict, id, count)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return translateError(err, fmt.Sprintf("appointment %d", id))
	}
	s.audit.Record(ctx, models.AuditActionDelete, "appointment", id, nil)
	return nil
}
