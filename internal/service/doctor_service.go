package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/agendamed/agenda-api/internal/domain"
	"github.com/agendamed/agenda-api/internal/store"
)

// MsgUnknownCity is returned when a doctor references a non-existent city.
const MsgUnknownCity = "A cidade informada não existe."

// DoctorService orchestrates doctor use cases.
type DoctorService struct {
	doctors store.DoctorStore
	cities  store.CityStore
}

// NewDoctorService creates a new DoctorService with the given stores.
func NewDoctorService(doctors store.DoctorStore, cities store.CityStore) *DoctorService {
	return &DoctorService{doctors: doctors, cities: cities}
}

// ListAll returns doctors ordered by honorific-stripped name, optionally
// filtered by an honorific-insensitive name substring.
func (s *DoctorService) ListAll(ctx context.Context, name string) ([]*domain.Doctor, error) {
	return s.doctors.List(ctx, name)
}

// ListByCity behaves like ListAll restricted to the given city.
func (s *DoctorService) ListByCity(ctx context.Context, cityID uuid.UUID, name string) ([]*domain.Doctor, error) {
	return s.doctors.ListByCity(ctx, cityID, name)
}

// Create registers a new doctor. The referenced city must exist.
func (s *DoctorService) Create(
	ctx context.Context,
	name, specialty string,
	cityID uuid.UUID,
) (*domain.Doctor, error) {
	cityExists, err := s.cities.Exists(ctx, cityID)
	if err != nil {
		return nil, fmt.Errorf("failed to check city: %w", err)
	}
	if !cityExists {
		return nil, domain.NewValidationError("cidade_id", MsgUnknownCity, nil)
	}

	doctor, err := domain.NewDoctor(name, specialty, cityID)
	if err != nil {
		return nil, err
	}

	if err := s.doctors.Create(ctx, doctor); err != nil {
		return nil, fmt.Errorf("failed to create doctor: %w", err)
	}

	return doctor, nil
}
