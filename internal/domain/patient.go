package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for patients.
var (
	ErrEmptyPatientID   = errors.New("patient ID cannot be empty")
	ErrEmptyPatientName = errors.New("patient name cannot be empty")
	ErrEmptyPatientCPF  = errors.New("patient CPF cannot be empty")
)

// Patient represents a patient identified by a unique CPF.
type Patient struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"nome"`
	CPF       string    `json:"cpf"`
	Phone     string    `json:"celular"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Appointments is populated only by the patient-by-doctor listing,
	// filtered to the requested doctor and ordered by time ascending.
	Appointments []*Appointment `json:"consultas,omitempty"`
}

// NewPatient creates a new Patient with the given name, CPF and phone.
// Returns an error if validation fails.
func NewPatient(name, cpf, phone string) (*Patient, error) {
	now := time.Now().UTC()
	patient := &Patient{
		ID:        uuid.New(),
		Name:      name,
		CPF:       cpf,
		Phone:     phone,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := patient.Validate(); err != nil {
		return nil, err
	}

	return patient, nil
}

// Validate checks if the Patient has valid data.
func (p *Patient) Validate() error {
	if p.ID == uuid.Nil {
		return ErrEmptyPatientID
	}

	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyPatientName
	}

	if strings.TrimSpace(p.CPF) == "" {
		return ErrEmptyPatientCPF
	}

	return nil
}
