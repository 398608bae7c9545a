// Package service implements the use cases for each entity, one service per
// entity delegating persistence to the store interfaces. Business rules live
// here; the only non-trivial one is the appointment conflict check.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/agendamed/agenda-api/internal/domain"
	"github.com/agendamed/agenda-api/internal/store"
)

// Field-scoped validation messages returned to API callers.
// MsgScheduleConflict intentionally says "15 minutos" while the computed
// window is ±14 minutes inclusive (see domain.ConflictWindow).
const (
	MsgScheduleConflict = "O médico já possui uma consulta marcada nesse horário. " +
		"Escolha um horário com pelo menos 15 minutos de diferença."
	MsgUnknownDoctor  = "O médico informado não existe."
	MsgUnknownPatient = "O paciente informado não existe."
)

// AppointmentService orchestrates appointment use cases.
type AppointmentService struct {
	appointments store.AppointmentStore
	doctors      store.DoctorStore
	patients     store.PatientStore
}

// NewAppointmentService creates a new AppointmentService with the given stores.
func NewAppointmentService(
	appointments store.AppointmentStore,
	doctors store.DoctorStore,
	patients store.PatientStore,
) *AppointmentService {
	return &AppointmentService{
		appointments: appointments,
		doctors:      doctors,
		patients:     patients,
	}
}

// ListAll returns all appointments with doctor and patient eager-loaded,
// ordered by time ascending.
func (s *AppointmentService) ListAll(ctx context.Context) ([]*domain.Appointment, error) {
	return s.appointments.List(ctx)
}

// Schedule books an appointment for the given doctor, patient and time.
//
// It refuses the booking with a field-scoped validation error when the
// doctor already has an appointment within the inclusive ±14-minute window
// around the requested time. The check reads current persisted state and the
// subsequent insert is not wrapped in a transaction, so two concurrent
// requests can both pass the check; see the design notes.
func (s *AppointmentService) Schedule(
	ctx context.Context,
	doctorID, patientID uuid.UUID,
	at time.Time,
) (*domain.Appointment, error) {
	doctorExists, err := s.doctors.Exists(ctx, doctorID)
	if err != nil {
		return nil, fmt.Errorf("failed to check doctor: %w", err)
	}
	if !doctorExists {
		return nil, domain.NewValidationError("medico_id", MsgUnknownDoctor, nil)
	}

	patientExists, err := s.patients.Exists(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to check patient: %w", err)
	}
	if !patientExists {
		return nil, domain.NewValidationError("paciente_id", MsgUnknownPatient, nil)
	}

	conflict, err := s.appointments.ExistsInWindow(ctx, doctorID, at)
	if err != nil {
		return nil, fmt.Errorf("failed to check appointment window: %w", err)
	}
	if conflict {
		return nil, domain.NewValidationError("data", MsgScheduleConflict, nil)
	}

	appointment, err := domain.NewAppointment(doctorID, patientID, at)
	if err != nil {
		return nil, err
	}

	if err := s.appointments.Create(ctx, appointment); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	return appointment, nil
}

// Update modifies an existing appointment's time and status.
// Returns store.ErrAppointmentNotFound if the appointment does not exist.
func (s *AppointmentService) Update(
	ctx context.Context,
	id uuid.UUID,
	at time.Time,
	status string,
) (*domain.Appointment, error) {
	appointment, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	appointment.At = at
	if status != "" {
		appointment.Status = status
	}
	appointment.UpdatedAt = time.Now().UTC()

	if err := s.appointments.Update(ctx, appointment); err != nil {
		return nil, err
	}

	return appointment, nil
}
