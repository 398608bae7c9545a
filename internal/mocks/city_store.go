package mocks

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/agendamed/agenda-api/internal/domain"
	"github.com/agendamed/agenda-api/internal/store"
)

// MockCityStore implements store.CityStore for testing.
type MockCityStore struct {
	// Function fields for customizable behavior
	ListFn   func(ctx context.Context, name string) ([]*domain.City, error)
	ExistsFn func(ctx context.Context, id uuid.UUID) (bool, error)

	// Data for the default in-memory implementation.
	Cities []*domain.City
}

// NewMockCityStore creates a new mock store with the given seed cities.
func NewMockCityStore(cities ...*domain.City) *MockCityStore {
	return &MockCityStore{Cities: cities}
}

// List implements the CityStore interface.
func (m *MockCityStore) List(ctx context.Context, name string) ([]*domain.City, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, name)
	}

	var result []*domain.City
	for _, city := range m.Cities {
		if name == "" || strings.Contains(city.Name, name) {
			result = append(result, city)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// Exists implements the CityStore interface.
func (m *MockCityStore) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.ExistsFn != nil {
		return m.ExistsFn(ctx, id)
	}

	for _, city := range m.Cities {
		if city.ID == id {
			return true, nil
		}
	}
	return false, nil
}

// Ensure MockCityStore implements the interface.
var _ store.CityStore = (*MockCityStore)(nil)
