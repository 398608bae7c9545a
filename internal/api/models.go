package api

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/agendamed/agenda-api/internal/domain"
)

// newValidator creates the request validator, reporting fields by their JSON
// tag so validation messages match the wire names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Name                 string `json:"name"                  validate:"required"`
	Email                string `json:"email"                 validate:"required,email"`
	Password             string `json:"password"              validate:"required,min=8,max=72"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// Authorization is the token block returned by registration.
type Authorization struct {
	Token string `json:"token"`
	Type  string `json:"type"`
}

// RegisterResponse defines the successful payload for registration.
type RegisterResponse struct {
	User          *domain.User  `json:"user"`
	Authorization Authorization `json:"authorization"`
}

// CreateDoctorRequest defines the payload for registering a doctor.
type CreateDoctorRequest struct {
	Name      string `json:"nome"          validate:"required"`
	Specialty string `json:"especialidade" validate:"required"`
	CityID    string `json:"cidade_id"     validate:"required,uuid"`
}

// CreatePatientRequest defines the payload for registering a patient.
type CreatePatientRequest struct {
	Name  string `json:"nome"    validate:"required"`
	CPF   string `json:"cpf"     validate:"required"`
	Phone string `json:"celular" validate:"required"`
}

// UpdatePatientRequest defines the payload for updating a patient.
// The CPF is fixed at creation and cannot change.
type UpdatePatientRequest struct {
	Name  string `json:"nome"    validate:"required"`
	Phone string `json:"celular" validate:"required"`
}

// CreateAppointmentRequest defines the payload for booking an appointment.
// The data field accepts "2006-01-02 15:04:05" or RFC 3339.
type CreateAppointmentRequest struct {
	DoctorID  string `json:"medico_id"   validate:"required,uuid"`
	PatientID string `json:"paciente_id" validate:"required,uuid"`
	At        string `json:"data"        validate:"required"`
}

// UpdateAppointmentRequest defines the payload for updating an appointment.
type UpdateAppointmentRequest struct {
	At     string `json:"data"   validate:"required"`
	Status string `json:"status" validate:"omitempty,oneof=agendada realizada cancelada"`
}
