package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ConflictWindow is the radius of the symmetric window around a proposed
// appointment time within which no other appointment for the same doctor may
// exist. The window [t-14m, t+14m] is inclusive on both ends, so two
// appointments must be strictly more than 14 minutes apart. User-facing copy
// rounds this up to "15 minutes"; the computed window stays at 14.
const ConflictWindow = 14 * time.Minute

// Appointment status values.
const (
	StatusScheduled = "agendada"
	StatusDone      = "realizada"
	StatusCancelled = "cancelada"
)

// Common validation errors for appointments.
var (
	ErrEmptyAppointmentID  = errors.New("appointment ID cannot be empty")
	ErrEmptyDoctorRef      = errors.New("appointment doctor ID cannot be empty")
	ErrEmptyPatientRef     = errors.New("appointment patient ID cannot be empty")
	ErrZeroAppointmentTime = errors.New("appointment time cannot be zero")
)

// Appointment represents a consultation booked for a patient with a doctor.
type Appointment struct {
	ID        uuid.UUID `json:"id"`
	DoctorID  uuid.UUID `json:"medico_id"`
	PatientID uuid.UUID `json:"paciente_id"`
	At        time.Time `json:"data"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Doctor and Patient are populated only by listings that eager-load them.
	Doctor  *Doctor  `json:"medico,omitempty"`
	Patient *Patient `json:"paciente,omitempty"`
}

// NewAppointment creates a new Appointment for the given doctor, patient and
// time, with status "agendada". Returns an error if validation fails.
func NewAppointment(doctorID, patientID uuid.UUID, at time.Time) (*Appointment, error) {
	now := time.Now().UTC()
	appointment := &Appointment{
		ID:        uuid.New(),
		DoctorID:  doctorID,
		PatientID: patientID,
		At:        at,
		Status:    StatusScheduled,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := appointment.Validate(); err != nil {
		return nil, err
	}

	return appointment, nil
}

// Validate checks if the Appointment has valid data.
func (a *Appointment) Validate() error {
	if a.ID == uuid.Nil {
		return ErrEmptyAppointmentID
	}

	if a.DoctorID == uuid.Nil {
		return ErrEmptyDoctorRef
	}

	if a.PatientID == uuid.Nil {
		return ErrEmptyPatientRef
	}

	if a.At.IsZero() {
		return ErrZeroAppointmentTime
	}

	return nil
}

// ConflictsWith reports whether an appointment at existing would fall inside
// the conflict window around proposed. Both bounds are inclusive: times
// exactly 14 minutes apart still conflict.
func ConflictsWith(proposed, existing time.Time) bool {
	lower := proposed.Add(-ConflictWindow)
	upper := proposed.Add(ConflictWindow)
	return !existing.Before(lower) && !existing.After(upper)
}
