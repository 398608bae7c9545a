package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/agendamed/agenda-api/internal/api/shared"
	"github.com/agendamed/agenda-api/internal/service"
)

// AppointmentHandler handles appointment-related API requests.
type AppointmentHandler struct {
	appointmentService *service.AppointmentService
	validator          *validator.Validate
}

// NewAppointmentHandler creates a new AppointmentHandler with the given dependencies.
func NewAppointmentHandler(appointmentService *service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentService: appointmentService,
		validator:          newValidator(),
	}
}

// List handles GET /v1/consultas.
// Appointments carry their doctor and patient, ordered by time ascending.
func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentService.ListAll(r.Context())
	if err != nil {
		respondServiceError(w, r, err, "failed to list appointments",
			"Erro interno ao listar consultas", nil)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, "Lista de consultas recuperada com sucesso", appointments)
}

// Create handles POST /v1/medicos/consulta.
// Booking is refused with 422 when the doctor already has an appointment
// within the conflict window around the requested time.
func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, "Requisição inválida")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, validationMessage(err))
		return
	}

	// The uuid tag already validated both IDs.
	doctorID := uuid.MustParse(req.DoctorID)
	patientID := uuid.MustParse(req.PatientID)

	at, err := parseAppointmentTime(req.At)
	if err != nil {
		respondServiceError(w, r, err, "invalid appointment time", "Requisição inválida", req)
		return
	}

	appointment, err := h.appointmentService.Schedule(r.Context(), doctorID, patientID, at)
	if err != nil {
		respondServiceError(w, r, err, "failed to schedule appointment",
			"Erro interno ao agendar consulta", req)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusCreated, "Consulta agendada com sucesso", appointment)
}

// Update handles PUT /v1/consultas/{id}.
func (h *AppointmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		respondServiceError(w, r, err, "invalid appointment ID", "Requisição inválida", nil)
		return
	}

	var req UpdateAppointmentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, "Requisição inválida")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, validationMessage(err))
		return
	}

	at, err := parseAppointmentTime(req.At)
	if err != nil {
		respondServiceError(w, r, err, "invalid appointment time", "Requisição inválida", req)
		return
	}

	appointment, err := h.appointmentService.Update(r.Context(), id, at, req.Status)
	if err != nil {
		respondServiceError(w, r, err, "failed to update appointment",
			"Erro interno ao atualizar consulta", req)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, "Consulta atualizada com sucesso", appointment)
}
