package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/agendamed/agenda-api/internal/domain"
	"github.com/agendamed/agenda-api/internal/store"
)

// PatientService orchestrates patient use cases.
type PatientService struct {
	patients store.PatientStore
}

// NewPatientService creates a new PatientService with the given store.
func NewPatientService(patients store.PatientStore) *PatientService {
	return &PatientService{patients: patients}
}

// ListAll returns all patients ordered by name.
func (s *PatientService) ListAll(ctx context.Context) ([]*domain.Patient, error) {
	return s.patients.List(ctx)
}

// Create registers a new patient.
// Returns store.ErrCPFExists if the CPF is already taken.
func (s *PatientService) Create(ctx context.Context, name, cpf, phone string) (*domain.Patient, error) {
	patient, err := domain.NewPatient(name, cpf, phone)
	if err != nil {
		return nil, err
	}

	if err := s.patients.Create(ctx, patient); err != nil {
		return nil, err
	}

	return patient, nil
}

// Update modifies an existing patient's name and phone.
// Returns store.ErrPatientNotFound if the patient does not exist.
func (s *PatientService) Update(ctx context.Context, id uuid.UUID, name, phone string) (*domain.Patient, error) {
	patient, err := s.patients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patient.Name = name
	patient.Phone = phone
	patient.UpdatedAt = time.Now().UTC()

	if err := s.patients.Update(ctx, patient); err != nil {
		return nil, err
	}

	return patient, nil
}

// ListByDoctor returns patients having at least one appointment with the
// given doctor, with qualifying appointments eager-loaded, ordered by their
// earliest qualifying appointment. See store.PatientStore.ListByDoctor for
// filter semantics.
func (s *PatientService) ListByDoctor(
	ctx context.Context,
	doctorID uuid.UUID,
	onlyUpcoming bool,
	name string,
) ([]*domain.Patient, error) {
	return s.patients.ListByDoctor(ctx, doctorID, onlyUpcoming, name)
}
