package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendamed/agenda-api/internal/domain"
	"github.com/agendamed/agenda-api/internal/mocks"
	"github.com/agendamed/agenda-api/internal/service"
)

func newSchedulingFixture(t *testing.T) (*service.AppointmentService, *domain.Doctor, *domain.Patient, *mocks.MockAppointmentStore) {
	t.Helper()

	doctor, err := domain.NewDoctor("Dr. João Silva", "Cardiologia", uuid.New())
	require.NoError(t, err)
	patient, err := domain.NewPatient("Ana Lima", "12345678901", "11999990000")
	require.NoError(t, err)

	appointments := mocks.NewMockAppointmentStore()
	svc := service.NewAppointmentService(
		appointments,
		mocks.NewMockDoctorStore(doctor),
		mocks.NewMockPatientStore(patient),
	)
	return svc, doctor, patient, appointments
}

func TestAppointmentServiceSchedule(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	baseTime := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

	t.Run("books a free slot", func(t *testing.T) {
		t.Parallel()

		svc, doctor, patient, appointments := newSchedulingFixture(t)

		appointment, err := svc.Schedule(ctx, doctor.ID, patient.ID, baseTime)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusScheduled, appointment.Status)
		assert.Equal(t, baseTime, appointment.At)
		assert.Len(t, appointments.Appointments, 1)
	})

	t.Run("rejects unknown doctor", func(t *testing.T) {
		t.Parallel()

		svc, _, patient, _ := newSchedulingFixture(t)

		_, err := svc.Schedule(ctx, uuid.New(), patient.ID, baseTime)

		var validationErr *domain.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "medico_id", validationErr.Field)
		assert.Equal(t, service.MsgUnknownDoctor, validationErr.Message)
	})

	t.Run("rejects unknown patient", func(t *testing.T) {
		t.Parallel()

		svc, doctor, _, _ := newSchedulingFixture(t)

		_, err := svc.Schedule(ctx, doctor.ID, uuid.New(), baseTime)

		var validationErr *domain.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "paciente_id", validationErr.Field)
		assert.Equal(t, service.MsgUnknownPatient, validationErr.Message)
	})

	t.Run("window conflicts for the same doctor", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name     string
			offset   time.Duration
			conflict bool
		}{
			{name: "same time", offset: 0, conflict: true},
			{name: "ten minutes later", offset: 10 * time.Minute, conflict: true},
			{name: "ten minutes earlier", offset: -10 * time.Minute, conflict: true},
			{name: "exactly fourteen minutes later", offset: 14 * time.Minute, conflict: true},
			{name: "exactly fourteen minutes earlier", offset: -14 * time.Minute, conflict: true},
			{name: "fifteen minutes later", offset: 15 * time.Minute, conflict: false},
			{name: "fifteen minutes earlier", offset: -15 * time.Minute, conflict: false},
		}

		for _, tc := range tests {
			tc := tc
			t.Run(tc.name, func(t *testing.T) {
				t.Parallel()

				svc, doctor, patient, _ := newSchedulingFixture(t)
				_, err := svc.Schedule(ctx, doctor.ID, patient.ID, baseTime)
				require.NoError(t, err)

				_, err = svc.Schedule(ctx, doctor.ID, patient.ID, baseTime.Add(tc.offset))
				if !tc.conflict {
					assert.NoError(t, err)
					return
				}

				var validationErr *domain.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, "data", validationErr.Field)
				assert.Equal(t, service.MsgScheduleConflict, validationErr.Message)
			})
		}
	})

	t.Run("same slot with a different doctor is allowed", func(t *testing.T) {
		t.Parallel()

		svc, doctor, patient, appointments := newSchedulingFixture(t)
		_, err := svc.Schedule(ctx, doctor.ID, patient.ID, baseTime)
		require.NoError(t, err)

		other, err := domain.NewAppointment(uuid.New(), patient.ID, baseTime)
		require.NoError(t, err)
		appointments.Appointments = append(appointments.Appointments, other)

		conflict, err := appointments.ExistsInWindow(ctx, other.DoctorID, baseTime.Add(20*time.Minute))
		require.NoError(t, err)
		assert.False(t, conflict)
	})

	t.Run("store failure is wrapped", func(t *testing.T) {
		t.Parallel()

		svc, doctor, patient, appointments := newSchedulingFixture(t)
		storeErr := errors.New("connection reset")
		appointments.ExistsInWindowFn = func(ctx context.Context, doctorID uuid.UUID, at time.Time) (bool, error) {
			return false, storeErr
		}

		_, err := svc.Schedule(ctx, doctor.ID, patient.ID, baseTime)
		assert.ErrorIs(t, err, storeErr)
	})
}

func TestAppointmentServiceUpdate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	baseTime := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

	t.Run("updates time and status", func(t *testing.T) {
		t.Parallel()

		svc, doctor, patient, _ := newSchedulingFixture(t)
		appointment, err := svc.Schedule(ctx, doctor.ID, patient.ID, baseTime)
		require.NoError(t, err)

		newTime := baseTime.Add(2 * time.Hour)
		updated, err := svc.Update(ctx, appointment.ID, newTime, domain.StatusDone)
		require.NoError(t, err)
		assert.Equal(t, newTime, updated.At)
		assert.Equal(t, domain.StatusDone, updated.Status)
	})

	t.Run("keeps status when omitted", func(t *testing.T) {
		t.Parallel()

		svc, doctor, patient, _ := newSchedulingFixture(t)
		appointment, err := svc.Schedule(ctx, doctor.ID, patient.ID, baseTime)
		require.NoError(t, err)

		updated, err := svc.Update(ctx, appointment.ID, baseTime.Add(time.Hour), "")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusScheduled, updated.Status)
	})

	t.Run("unknown appointment", func(t *testing.T) {
		t.Parallel()

		svc, _, _, _ := newSchedulingFixture(t)

		_, err := svc.Update(ctx, uuid.New(), baseTime, domain.StatusCancelled)
		assert.Error(t, err)
	})
}
