package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/agendamed/agenda-api/internal/domain"
)

// DoctorStore defines the interface for doctor data persistence.
type DoctorStore interface {
	// List returns doctors ordered by honorific-stripped name ascending.
	// A non-empty name restricts the result to doctors whose
	// honorific-stripped name contains the honorific-stripped term,
	// case-insensitive.
	List(ctx context.Context, name string) ([]*domain.Doctor, error)

	// ListByCity behaves like List but restricts doctors to the given city.
	ListByCity(ctx context.Context, cityID uuid.UUID, name string) ([]*domain.Doctor, error)

	// Create saves a new doctor to the store.
	// Returns ErrInvalidEntity if the referenced city does not exist.
	Create(ctx context.Context, doctor *domain.Doctor) error

	// Exists reports whether a doctor with the given ID exists.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
