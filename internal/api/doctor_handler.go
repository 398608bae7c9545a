package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/agendamed/agenda-api/internal/api/shared"
	"github.com/agendamed/agenda-api/internal/service"
)

// DoctorHandler handles doctor-related API requests.
type DoctorHandler struct {
	doctorService  *service.DoctorService
	patientService *service.PatientService
	validator      *validator.Validate
}

// NewDoctorHandler creates a new DoctorHandler with the given dependencies.
func NewDoctorHandler(
	doctorService *service.DoctorService,
	patientService *service.PatientService,
) *DoctorHandler {
	return &DoctorHandler{
		doctorService:  doctorService,
		patientService: patientService,
		validator:      newValidator(),
	}
}

// List handles GET /v1/medicos.
// The optional nome query is matched against honorific-stripped names,
// case-insensitive.
func (h *DoctorHandler) List(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("nome")

	doctors, err := h.doctorService.ListAll(r.Context(), name)
	if err != nil {
		respondServiceError(w, r, err, "failed to list doctors",
			"Erro interno ao listar médicos", name)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, "Lista de médicos recuperada com sucesso", doctors)
}

// ListByCity handles GET /v1/cidades/{cidade_id}/medicos.
func (h *DoctorHandler) ListByCity(w http.ResponseWriter, r *http.Request) {
	cityID, err := getPathUUID(r, "cidade_id")
	if err != nil {
		respondServiceError(w, r, err, "invalid city ID", "Requisição inválida", nil)
		return
	}

	name := r.URL.Query().Get("nome")

	doctors, err := h.doctorService.ListByCity(r.Context(), cityID, name)
	if err != nil {
		respondServiceError(w, r, err, "failed to list doctors by city",
			"Erro interno ao listar médicos", cityID)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK,
		"Lista de médicos da cidade recuperada com sucesso", doctors)
}

// Create handles POST /v1/medicos.
func (h *DoctorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateDoctorRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, "Requisição inválida")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, validationMessage(err))
		return
	}

	cityID, err := uuid.Parse(req.CityID)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity,
			"O campo cidade_id deve ser um identificador válido.")
		return
	}

	doctor, err := h.doctorService.Create(r.Context(), req.Name, req.Specialty, cityID)
	if err != nil {
		respondServiceError(w, r, err, "failed to create doctor",
			"Erro interno ao cadastrar médico", req)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusCreated, "Médico cadastrado com sucesso", doctor)
}

// ListPatients handles GET /v1/medicos/{id_medico}/pacientes.
// Optional filters: nome (patient name substring) and apenas-agendadas
// (restrict to appointments at or after now).
func (h *DoctorHandler) ListPatients(w http.ResponseWriter, r *http.Request) {
	doctorID, err := getPathUUID(r, "id_medico")
	if err != nil {
		respondServiceError(w, r, err, "invalid doctor ID", "Requisição inválida", nil)
		return
	}

	name := r.URL.Query().Get("nome")
	onlyUpcoming := r.URL.Query().Get("apenas-agendadas") == "true"

	patients, err := h.patientService.ListByDoctor(r.Context(), doctorID, onlyUpcoming, name)
	if err != nil {
		respondServiceError(w, r, err, "failed to list patients by doctor",
			"Erro interno ao listar pacientes", doctorID)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK,
		"Lista de pacientes recuperada com sucesso", patients)
}
