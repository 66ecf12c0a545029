package statemachine

import (
	"context"
	"errors"
	"fmt"

	"github.com/dralafandy/Cura-dental-app/internal/models"
	"github.com/looplab/fsm"
)

// ErrInvalidTransition is returned when the event is not allowed from the current status
var ErrInvalidTransition = errors.New("invalid appointment status transition")

// Appointment events
const (
	EventConfirm = "confirm"
	EventCancel  = "cancel"
	EventReopen  = "reopen"
)

// AppointmentFSM wraps an appointment with its status machine
type AppointmentFSM struct {
	appointment *models.Appointment
	fsm         *fsm.FSM
}

// NewAppointmentFSM creates a new appointment state machine
func NewAppointmentFSM(appointment *models.Appointment) *AppointmentFSM {
	a := &AppointmentFSM{
		appointment: appointment,
	}

	status := appointment.Status
	if status == "" {
		status = models.AppointmentStatusPending
	}

	a.fsm = fsm.NewFSM(
		status,
		fsm.Events{
			// pending → confirmed
			{Name: EventConfirm, Src: []string{models.AppointmentStatusPending}, Dst: models.AppointmentStatusConfirmed},

			// pending/confirmed → cancelled
			{Name: EventCancel, Src: []string{models.AppointmentStatusPending, models.AppointmentStatusConfirmed}, Dst: models.AppointmentStatusCancelled},

			// confirmed/cancelled → pending
			{Name: EventReopen, Src: []string{models.AppointmentStatusConfirmed, models.AppointmentStatusCancelled}, Dst: models.AppointmentStatusPending},
		},
		fsm.Callbacks{},
	)

	return a
}

// Current returns the current status
func (a *AppointmentFSM) Current() string {
	return a.fsm.Current()
}

// Can reports whether the event is allowed from the current status
func (a *AppointmentFSM) Can(event string) bool {
	return a.fsm.Can(event)
}

// Fire applies the event and writes the new status back to the appointment
func (a *AppointmentFSM) Fire(ctx context.Context, event string) error {
	if !a.fsm.Can(event) {
		return fmt.Errorf("%w: cannot %s an appointment that is %s", ErrInvalidTransition, event, a.fsm.Current())
	}
	if err := a.fsm.Event(ctx, event); err != nil {
		return fmt.Errorf("failed to %s appointment: %w", event, err)
	}
	a.appointment.Status = a.fsm.Current()
	return nil
}

// Confirm transitions the appointment to confirmed
func (a *AppointmentFSM) Confirm(ctx context.Context) error {
	return a.Fire(ctx, EventConfirm)
}

// Cancel transitions the appointment to cancelled
func (a *AppointmentFSM) Cancel(ctx context.Context) error {
	return a.Fire(ctx, EventCancel)
}

// Reopen puts a confirmed or cancelled appointment back to pending
func (a *AppointmentFSM) Reopen(ctx context.Context) error {
	return a.Fire(ctx, EventReopen)
}

// TransitionTo moves to target using whichever event leads there. Staying put is a no-op.
func (a *AppointmentFSM) TransitionTo(ctx context.Context, target string) error {
	if !models.IsValidAppointmentStatus(target) {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, target)
	}
	if target == a.fsm.Current() {
		return nil
	}

	var event string
	switch target {
	case models.AppointmentStatusConfirmed:
		event = EventConfirm
	case models.AppointmentStatusCancelled:
		event = EventCancel
	case models.AppointmentStatusPending:
		event = EventReopen
	}
	return a.Fire(ctx, event)
}
