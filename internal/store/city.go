package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/agendamed/agenda-api/internal/domain"
)

// CityStore defines the interface for city data persistence.
type CityStore interface {
	// List returns cities ordered by name ascending. A non-empty name
	// restricts the result to cities whose name contains it (case-sensitive
	// substring, as stored).
	List(ctx context.Context, name string) ([]*domain.City, error)

	// Exists reports whether a city with the given ID exists.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
