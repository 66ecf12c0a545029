package services

import (
	"context"
	"testing"
	"time"

	"github.com/dralafandy/Cura-dental-app/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAppointmentService(f *fixture) *AppointmentService {
	repos := f.db.repos()
	return NewAppointmentService(repos.Appointment, repos.Patient, repos.Doctor, repos.Treatment, repos.Payment, f.audit, time.Second)
}

func TestAppointmentService_Create(t *testing.T) {
	f := newFixture(false)
	svc := newAppointmentService(f)
	ctx := context.Background()
	patient := f.db.addPatient("Rana")
	doctor := f.db.addDoctor("Dr. Adel")
	treatment := f.db.addTreatment("Cleaning", "60")

	appt := &models.Appointment{PatientID: patient.ID, DoctorID: doctor.ID, TreatmentID: treatment.ID, Date: time.Now()}
	require.NoError(t, svc.Create(ctx, appt))
	assert.NotZero(t, appt.ID)
	assert.Equal(t, models.AppointmentStatusPending, appt.Status)
	assert.Equal(t, uint(1), appt.Version)

	missing := &models.Appointment{PatientID: patient.ID, DoctorID: 999, TreatmentID: treatment.ID, Date: time.Now()}
	assert.ErrorIs(t, svc.Create(ctx, missing), ErrNotFound)

	badStatus := &models.Appointment{PatientID: patient.ID, DoctorID: doctor.ID, TreatmentID: treatment.ID, Date: time.Now(), Status: "done"}
	assert.ErrorIs(t, svc.Create(ctx, badStatus), ErrValidation)

	noDate := &models.Appointment{PatientID: patient.ID, DoctorID: doctor.ID, TreatmentID: treatment.ID}
	assert.ErrorIs(t, svc.Create(ctx, noDate), ErrValidation)
}

func TestAppointmentService_StatusEvents(t *testing.T) {
	f := newFixture(false)
	svc := newAppointmentService(f)
	ctx := context.Background()
	seed := seedLedger(f, "100")

	confirmed, err := svc.Confirm(ctx, seed.appointment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentStatusConfirmed, confirmed.Status)
	assert.Equal(t, uint(2), confirmed.Version)

	_, err = svc.Confirm(ctx, seed.appointment.ID)
	assert.ErrorIs(t, err, ErrConflict)

	cancelled, err := svc.Cancel(ctx, seed.appointment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentStatusCancelled, cancelled.Status)

	reopened, err := svc.Reopen(ctx, seed.appointment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentStatusPending, reopened.Status)
	assert.Equal(t, uint(4), reopened.Version)

	_, err = svc.Confirm(ctx, 12345)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAppointmentService_UpdateStaleVersion(t *testing.T) {
	f := newFixture(false)
	svc := newAppointmentService(f)
	ctx := context.Background()
	seed := seedLedger(f, "100")

	changes := *seed.appointment
	changes.Notes = "bring x-ray"
	updated, err := svc.Update(ctx, seed.appointment.ID, &changes)
	require.NoError(t, err)
	assert.Equal(t, "bring x-ray", updated.Notes)
	assert.Equal(t, uint(2), updated.Version)

	// A second writer still holding version 1 loses
	stale := *seed.appointment
	stale.Notes = "other edit"
	_, err = svc.Update(ctx, seed.appointment.ID, &stale)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestAppointmentService_UpdateRejectsIllegalStatusChange(t *testing.T) {
	f := newFixture(false)
	svc := newAppointmentService(f)
	ctx := context.Background()
	seed := seedLedger(f, "100")

	_, err := svc.Cancel(ctx, seed.appointment.ID)
	require.NoError(t, err)

	current, err := svc.FindByID(ctx, seed.appointment.ID)
	require.NoError(t, err)
	changes := *current
	changes.Status = models.AppointmentStatusConfirmed

	_, err = svc.Update(ctx, seed.appointment.ID, &changes)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestAppointmentService_DeleteWithPaymentsConflicts(t *testing.T) {
	f := newFixture(false)
	svc := newAppointmentService(f)
	ctx := context.Background()
	seed := seedLedger(f, "100")
	f.db.addPayment(seed.appointment.ID, "50", "50", time.Now())

	err := svc.Delete(ctx, seed.appointment.ID)
	assert.ErrorIs(t, err, ErrConflict)

	_, err = svc.FindByID(ctx, seed.appointment.ID)
	assert.NoError(t, err, "appointment is still there")

	unpaid := f.db.addAppointment(seed.patient.ID, seed.doctor.ID, seed.treatment.ID, time.Now())
	require.NoError(t, svc.Delete(ctx, unpaid.ID))
	assert.ErrorIs(t, svc.Delete(ctx, unpaid.ID), ErrNotFound)
}
