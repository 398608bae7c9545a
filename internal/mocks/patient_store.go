package mocks

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/agendamed/agenda-api/internal/domain"
	"github.com/agendamed/agenda-api/internal/store"
)

// MockPatientStore implements store.PatientStore for testing.
type MockPatientStore struct {
	// Function fields for customizable behavior
	ListFn         func(ctx context.Context) ([]*domain.Patient, error)
	CreateFn       func(ctx context.Context, patient *domain.Patient) error
	UpdateFn       func(ctx context.Context, patient *domain.Patient) error
	GetByIDFn      func(ctx context.Context, id uuid.UUID) (*domain.Patient, error)
	ListByDoctorFn func(ctx context.Context, doctorID uuid.UUID, onlyUpcoming bool, name string) ([]*domain.Patient, error)
	ExistsFn       func(ctx context.Context, id uuid.UUID) (bool, error)

	// Data for the default in-memory implementation.
	Patients []*domain.Patient

	// Now is the clock used by the default ListByDoctor cutoff.
	// Zero means time.Now.
	Now time.Time
}

// NewMockPatientStore creates a new mock store with the given seed patients.
func NewMockPatientStore(patients ...*domain.Patient) *MockPatientStore {
	return &MockPatientStore{Patients: patients}
}

// List implements the PatientStore interface.
func (m *MockPatientStore) List(ctx context.Context) ([]*domain.Patient, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	result := make([]*domain.Patient, len(m.Patients))
	copy(result, m.Patients)
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// Create implements the PatientStore interface.
func (m *MockPatientStore) Create(ctx context.Context, patient *domain.Patient) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, patient)
	}

	for _, existing := range m.Patients {
		if existing.CPF == patient.CPF {
			return store.ErrCPFExists
		}
	}
	m.Patients = append(m.Patients, patient)
	return nil
}

// Update implements the PatientStore interface.
func (m *MockPatientStore) Update(ctx context.Context, patient *domain.Patient) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, patient)
	}

	for i, existing := range m.Patients {
		if existing.ID == patient.ID {
			m.Patients[i] = patient
			return nil
		}
	}
	return store.ErrPatientNotFound
}

// GetByID implements the PatientStore interface.
func (m *MockPatientStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Patient, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	for _, patient := range m.Patients {
		if patient.ID == id {
			return patient, nil
		}
	}
	return nil, store.ErrPatientNotFound
}

// ListByDoctor implements the PatientStore interface. The default
// implementation matches against the seed patients' eager-loaded
// Appointments slices.
func (m *MockPatientStore) ListByDoctor(
	ctx context.Context,
	doctorID uuid.UUID,
	onlyUpcoming bool,
	name string,
) ([]*domain.Patient, error) {
	if m.ListByDoctorFn != nil {
		return m.ListByDoctorFn(ctx, doctorID, onlyUpcoming, name)
	}

	now := m.Now
	if now.IsZero() {
		now = time.Now()
	}

	type entry struct {
		patient  *domain.Patient
		earliest time.Time
	}
	var entries []entry
	for _, patient := range m.Patients {
		if name != "" && !strings.Contains(strings.ToLower(patient.Name), strings.ToLower(name)) {
			continue
		}
		var qualifying []*domain.Appointment
		for _, appt := range patient.Appointments {
			if appt.DoctorID != doctorID {
				continue
			}
			if onlyUpcoming && appt.At.Before(now) {
				continue
			}
			qualifying = append(qualifying, appt)
		}
		if len(qualifying) == 0 {
			continue
		}
		sort.Slice(qualifying, func(i, j int) bool { return qualifying[i].At.Before(qualifying[j].At) })

		matched := *patient
		matched.Appointments = qualifying
		entries = append(entries, entry{patient: &matched, earliest: qualifying[0].At})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].earliest.Before(entries[j].earliest) })

	result := make([]*domain.Patient, len(entries))
	for i, e := range entries {
		result[i] = e.patient
	}
	return result, nil
}

// Exists implements the PatientStore interface.
func (m *MockPatientStore) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.ExistsFn != nil {
		return m.ExistsFn(ctx, id)
	}

	for _, patient := range m.Patients {
		if patient.ID == id {
			return true, nil
		}
	}
	return false, nil
}

// Ensure MockPatientStore implements the interface.
var _ store.PatientStore = (*MockPatientStore)(nil)
