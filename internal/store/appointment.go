package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/agendamed/agenda-api/internal/domain"
)

// AppointmentStore defines the interface for appointment data persistence.
type AppointmentStore interface {
	// List returns all appointments with doctor and patient eager-loaded,
	// ordered by time ascending.
	List(ctx context.Context) ([]*domain.Appointment, error)

	// Create saves a new appointment to the store. It performs no conflict
	// checking; that is the appointment service's responsibility.
	Create(ctx context.Context, appointment *domain.Appointment) error

	// Update modifies an existing appointment's time and status.
	// Returns ErrAppointmentNotFound if the appointment does not exist.
	Update(ctx context.Context, appointment *domain.Appointment) error

	// GetByID retrieves an appointment by its unique ID.
	// Returns ErrAppointmentNotFound if the appointment does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error)

	// ExistsInWindow reports whether the doctor already has an appointment
	// within the inclusive window [at-domain.ConflictWindow,
	// at+domain.ConflictWindow]. It reads current persisted state; the
	// check-then-insert sequence around it is not atomic.
	ExistsInWindow(ctx context.Context, doctorID uuid.UUID, at time.Time) (bool, error)
}
