package service

import (
	"context"

	"github.com/agendamed/agenda-api/internal/domain"
	"github.com/agendamed/agenda-api/internal/store"
)

// CityService orchestrates city use cases.
type CityService struct {
	cities store.CityStore
}

// NewCityService creates a new CityService with the given store.
func NewCityService(cities store.CityStore) *CityService {
	return &CityService{cities: cities}
}

// ListAll returns cities ordered by name, optionally filtered by a
// case-sensitive name substring.
func (s *CityService) ListAll(ctx context.Context, name string) ([]*domain.City, error) {
	return s.cities.List(ctx, name)
}
