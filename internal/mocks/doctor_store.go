package mocks

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/agendamed/agenda-api/internal/domain"
	"github.com/agendamed/agenda-api/internal/store"
)

// MockDoctorStore implements store.DoctorStore for testing.
type MockDoctorStore struct {
	// Function fields for customizable behavior
	ListFn       func(ctx context.Context, name string) ([]*domain.Doctor, error)
	ListByCityFn func(ctx context.Context, cityID uuid.UUID, name string) ([]*domain.Doctor, error)
	CreateFn     func(ctx context.Context, doctor *domain.Doctor) error
	ExistsFn     func(ctx context.Context, id uuid.UUID) (bool, error)

	// Data for the default in-memory implementation.
	Doctors []*domain.Doctor
}

// NewMockDoctorStore creates a new mock store with the given seed doctors.
func NewMockDoctorStore(doctors ...*domain.Doctor) *MockDoctorStore {
	return &MockDoctorStore{Doctors: doctors}
}

// List implements the DoctorStore interface.
func (m *MockDoctorStore) List(ctx context.Context, name string) ([]*domain.Doctor, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, name)
	}
	return m.filter(uuid.Nil, name), nil
}

// ListByCity implements the DoctorStore interface.
func (m *MockDoctorStore) ListByCity(
	ctx context.Context,
	cityID uuid.UUID,
	name string,
) ([]*domain.Doctor, error) {
	if m.ListByCityFn != nil {
		return m.ListByCityFn(ctx, cityID, name)
	}
	return m.filter(cityID, name), nil
}

// Create implements the DoctorStore interface.
func (m *MockDoctorStore) Create(ctx context.Context, doctor *domain.Doctor) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, doctor)
	}

	m.Doctors = append(m.Doctors, doctor)
	return nil
}

// Exists implements the DoctorStore interface.
func (m *MockDoctorStore) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.ExistsFn != nil {
		return m.ExistsFn(ctx, id)
	}

	for _, doctor := range m.Doctors {
		if doctor.ID == id {
			return true, nil
		}
	}
	return false, nil
}

// filter applies the same honorific-stripped, accent-folded,
// case-insensitive matching and ordering the real store uses.
func (m *MockDoctorStore) filter(cityID uuid.UUID, name string) []*domain.Doctor {
	term := normalizeDoctorName(name)

	var result []*domain.Doctor
	for _, doctor := range m.Doctors {
		if cityID != uuid.Nil && doctor.CityID != cityID {
			continue
		}
		if term != "" && !strings.Contains(normalizeDoctorName(doctor.Name), term) {
			continue
		}
		result = append(result, doctor)
	}
	sort.Slice(result, func(i, j int) bool {
		return normalizeDoctorName(result[i].Name) < normalizeDoctorName(result[j].Name)
	})
	return result
}

func normalizeDoctorName(name string) string {
	return strings.ToLower(domain.FoldAccents(domain.StripHonorific(name)))
}

// Ensure MockDoctorStore implements the interface.
var _ store.DoctorStore = (*MockDoctorStore)(nil)
