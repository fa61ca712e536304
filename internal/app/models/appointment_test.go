package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidAppointmentTransition(t *testing.T) {
	t.Run("Pending Transitions", func(t *testing.T) {
		assert.True(t, IsValidAppointmentTransition(AppointmentPending, AppointmentConfirmed))
		assert.True(t, IsValidAppointmentTransition(AppointmentPending, AppointmentCancelled))
		assert.False(t, IsValidAppointmentTransition(AppointmentPending, AppointmentCompleted))
		assert.False(t, IsValidAppointmentTransition(AppointmentPending, AppointmentRescheduled))
	})

	t.Run("Confirmed Transitions", func(t *testing.T) {
		assert.True(t, IsValidAppointmentTransition(AppointmentConfirmed, AppointmentCompleted))
		assert.True(t, IsValidAppointmentTransition(AppointmentConfirmed, AppointmentCancelled))
		assert.True(t, IsValidAppointmentTransition(AppointmentConfirmed, AppointmentRescheduled))
		assert.False(t, IsValidAppointmentTransition(AppointmentConfirmed, AppointmentPending))
	})

	t.Run("Terminal States", func(t *testing.T) {
		for _, terminal := range []AppointmentStatus{AppointmentCompleted, AppointmentCancelled, AppointmentRescheduled} {
			for _, to := range []AppointmentStatus{AppointmentPending, AppointmentConfirmed, AppointmentCompleted, AppointmentCancelled, AppointmentRescheduled} {
				assert.False(t, IsValidAppointmentTransition(terminal, to),
					"%s -> %s should be rejected", terminal, to)
			}
		}
	})

	t.Run("Self Transitions", func(t *testing.T) {
		assert.False(t, IsValidAppointmentTransition(AppointmentPending, AppointmentPending))
		assert.False(t, IsValidAppointmentTransition(AppointmentConfirmed, AppointmentConfirmed))
	})
}

func TestIsAppointmentStatus(t *testing.T) {
	assert.True(t, IsAppointmentStatus("pending"))
	assert.True(t, IsAppointmentStatus("confirmed"))
	assert.True(t, IsAppointmentStatus("completed"))
	assert.True(t, IsAppointmentStatus("cancelled"))
	assert.True(t, IsAppointmentStatus("rescheduled"))
	assert.False(t, IsAppointmentStatus("paid"))
	assert.False(t, IsAppointmentStatus(""))
}
