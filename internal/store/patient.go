package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/agendamed/agenda-api/internal/domain"
)

// PatientStore defines the interface for patient data persistence.
type PatientStore interface {
	// List returns all patients ordered by name ascending.
	List(ctx context.Context) ([]*domain.Patient, error)

	// Create saves a new patient to the store.
	// Returns ErrCPFExists if the CPF is already taken.
	Create(ctx context.Context, patient *domain.Patient) error

	// Update modifies an existing patient's name and phone.
	// Returns ErrPatientNotFound if the patient does not exist.
	Update(ctx context.Context, patient *domain.Patient) error

	// GetByID retrieves a patient by their unique ID.
	// Returns ErrPatientNotFound if the patient does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Patient, error)

	// ListByDoctor returns patients having at least one appointment with the
	// given doctor, with those appointments eager-loaded and ordered by time
	// ascending. Patients are ordered by their earliest qualifying
	// appointment time ascending.
	//
	// When onlyUpcoming is true, only appointments at or after the current
	// time qualify, both for restricting patients and for the eager-loaded
	// appointments. A non-empty name further restricts patients to those
	// whose name contains it, case-insensitive.
	ListByDoctor(ctx context.Context, doctorID uuid.UUID, onlyUpcoming bool, name string) ([]*domain.Patient, error)

	// Exists reports whether a patient with the given ID exists.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
