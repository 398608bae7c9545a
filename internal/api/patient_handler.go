package api

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/agendamed/agenda-api/internal/api/shared"
	"github.com/agendamed/agenda-api/internal/service"
	"github.com/agendamed/agenda-api/internal/store"
)

// PatientHandler handles patient-related API requests.
type PatientHandler struct {
	patientService *service.PatientService
	validator      *validator.Validate
}

// NewPatientHandler creates a new PatientHandler with the given dependencies.
func NewPatientHandler(patientService *service.PatientService) *PatientHandler {
	return &PatientHandler{
		patientService: patientService,
		validator:      newValidator(),
	}
}

// List handles GET /v1/pacientes.
func (h *PatientHandler) List(w http.ResponseWriter, r *http.Request) {
	patients, err := h.patientService.ListAll(r.Context())
	if err != nil {
		respondServiceError(w, r, err, "failed to list patients",
			"Erro interno ao listar pacientes", nil)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, "Lista de pacientes recuperada com sucesso", patients)
}

// Create handles POST /v1/pacientes.
func (h *PatientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreatePatientRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, "Requisição inválida")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, validationMessage(err))
		return
	}

	patient, err := h.patientService.Create(r.Context(), req.Name, req.CPF, req.Phone)
	if err != nil {
		if errors.Is(err, store.ErrCPFExists) {
			shared.RespondWithError(w, r, http.StatusUnprocessableEntity, "O CPF informado já está em uso.")
			return
		}
		respondServiceError(w, r, err, "failed to create patient",
			"Erro interno ao cadastrar paciente", req)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusCreated, "Paciente cadastrado com sucesso", patient)
}

// Update handles PUT /v1/pacientes/{id}.
func (h *PatientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		respondServiceError(w, r, err, "invalid patient ID", "Requisição inválida", nil)
		return
	}

	var req UpdatePatientRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, "Requisição inválida")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, validationMessage(err))
		return
	}

	patient, err := h.patientService.Update(r.Context(), id, req.Name, req.Phone)
	if err != nil {
		respondServiceError(w, r, err, "failed to update patient",
			"Erro interno ao atualizar paciente", req)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, "Paciente atualizado com sucesso", patient)
}
