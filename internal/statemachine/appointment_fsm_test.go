package statemachine

import (
	"context"
	"testing"

	"github.com/dralafandy/Cura-dental-app/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointmentFSM_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		event   string
		want    string
		wantErr bool
	}{
		{"confirm pending", models.AppointmentStatusPending, EventConfirm, models.AppointmentStatusConfirmed, false},
		{"cancel pending", models.AppointmentStatusPending, EventCancel, models.AppointmentStatusCancelled, false},
		{"cancel confirmed", models.AppointmentStatusConfirmed, EventCancel, models.AppointmentStatusCancelled, false},
		{"reopen cancelled", models.AppointmentStatusCancelled, EventReopen, models.AppointmentStatusPending, false},
		{"reopen confirmed", models.AppointmentStatusConfirmed, EventReopen, models.AppointmentStatusPending, false},
		{"confirm cancelled", models.AppointmentStatusCancelled, EventConfirm, models.AppointmentStatusCancelled, true},
		{"confirm confirmed", models.AppointmentStatusConfirmed, EventConfirm, models.AppointmentStatusConfirmed, true},
		{"reopen pending", models.AppointmentStatusPending, EventReopen, models.AppointmentStatusPending, true},
		{"cancel cancelled", models.AppointmentStatusCancelled, EventCancel, models.AppointmentStatusCancelled, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appt := &models.Appointment{Status: tt.from}
			err := NewAppointmentFSM(appt).Fire(context.Background(), tt.event)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTransition)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, appt.Status)
		})
	}
}

func TestAppointmentFSM_TransitionTo(t *testing.T) {
	ctx := context.Background()

	appt := &models.Appointment{Status: models.AppointmentStatusPending}
	machine := NewAppointmentFSM(appt)

	require.NoError(t, machine.TransitionTo(ctx, models.AppointmentStatusPending))
	assert.Equal(t, models.AppointmentStatusPending, appt.Status)

	require.NoError(t, machine.TransitionTo(ctx, models.AppointmentStatusConfirmed))
	assert.Equal(t, models.AppointmentStatusConfirmed, appt.Status)

	require.NoError(t, machine.TransitionTo(ctx, models.AppointmentStatusCancelled))
	assert.Equal(t, models.AppointmentStatusCancelled, appt.Status)

	err := machine.TransitionTo(ctx, models.AppointmentStatusConfirmed)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	err = machine.TransitionTo(ctx, "done")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestAppointmentFSM_EmptyStatusStartsPending(t *testing.T) {
	machine := NewAppointmentFSM(&models.Appointment{})
	assert.Equal(t, models.AppointmentStatusPending, machine.Current())
	assert.True(t, machine.Can(EventConfirm))
}
