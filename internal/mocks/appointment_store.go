package mocks

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/agendamed/agenda-api/internal/domain"
	"github.com/agendamed/agenda-api/internal/store"
)

// MockAppointmentStore implements store.AppointmentStore for testing.
type MockAppointmentStore struct {
	// Function fields for customizable behavior
	ListFn           func(ctx context.Context) ([]*domain.Appointment, error)
	CreateFn         func(ctx context.Context, appointment *domain.Appointment) error
	UpdateFn         func(ctx context.Context, appointment *domain.Appointment) error
	GetByIDFn        func(ctx context.Context, id uuid.UUID) (*domain.Appointment, error)
	ExistsInWindowFn func(ctx context.Context, doctorID uuid.UUID, at time.Time) (bool, error)

	// Data for the default in-memory implementation.
	Appointments []*domain.Appointment
}

// NewMockAppointmentStore creates a new mock store with the given seed
// appointments.
func NewMockAppointmentStore(appointments ...*domain.Appointment) *MockAppointmentStore {
	return &MockAppointmentStore{Appointments: appointments}
}

// List implements the AppointmentStore interface.
func (m *MockAppointmentStore) List(ctx context.Context) ([]*domain.Appointment, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	result := make([]*domain.Appointment, len(m.Appointments))
	copy(result, m.Appointments)
	sort.Slice(result, func(i, j int) bool { return result[i].At.Before(result[j].At) })
	return result, nil
}

// Create implements the AppointmentStore interface.
func (m *MockAppointmentStore) Create(ctx context.Context, appointment *domain.Appointment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, appointment)
	}

	m.Appointments = append(m.Appointments, appointment)
	return nil
}

// Update implements the AppointmentStore interface.
func (m *MockAppointmentStore) Update(ctx context.Context, appointment *domain.Appointment) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, appointment)
	}

	for i, existing := range m.Appointments {
		if existing.ID == appointment.ID {
			m.Appointments[i] = appointment
			return nil
		}
	}
	return store.ErrAppointmentNotFound
}

// GetByID implements the AppointmentStore interface.
func (m *MockAppointmentStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	for _, appointment := range m.Appointments {
		if appointment.ID == id {
			return appointment, nil
		}
	}
	return nil, store.ErrAppointmentNotFound
}

// ExistsInWindow implements the AppointmentStore interface using
// domain.ConflictsWith over the in-memory appointments.
func (m *MockAppointmentStore) ExistsInWindow(
	ctx context.Context,
	doctorID uuid.UUID,
	at time.Time,
) (bool, error) {
	if m.ExistsInWindowFn != nil {
		return m.ExistsInWindowFn(ctx, doctorID, at)
	}

	for _, appointment := range m.Appointments {
		if appointment.DoctorID == doctorID && domain.ConflictsWith(at, appointment.At) {
			return true, nil
		}
	}
	return false, nil
}

// Ensure MockAppointmentStore implements the interface.
var _ store.AppointmentStore = (*MockAppointmentStore)(nil)
