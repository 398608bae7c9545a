package api

import (
	"net/http"

	"github.com/agendamed/agenda-api/internal/api/shared"
	"github.com/agendamed/agenda-api/internal/service"
)

// CityHandler handles city-related API requests.
type CityHandler struct {
	cityService *service.CityService
}

// NewCityHandler creates a new CityHandler with the given dependencies.
func NewCityHandler(cityService *service.CityService) *CityHandler {
	return &CityHandler{cityService: cityService}
}

// List handles GET /v1/cidades.
// The optional nome query restricts cities to a case-sensitive name substring.
func (h *CityHandler) List(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("nome")

	cities, err := h.cityService.ListAll(r.Context(), name)
	if err != nil {
		respondServiceError(w, r, err, "failed to list cities",
			"Erro interno ao listar cidades", name)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, "Lista de cidades recuperada com sucesso", cities)
}
