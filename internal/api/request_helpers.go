package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/agendamed/agenda-api/internal/api/shared"
	"github.com/agendamed/agenda-api/internal/domain"
)

// appointmentTimeLayouts are the accepted formats for the "data" field, in
// the order they are tried.
var appointmentTimeLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// getUserIDFromContext extracts the authenticated caller's UUID from the
// request context, placed there by the authentication middleware.
func getUserIDFromContext(r *http.Request) (uuid.UUID, bool) {
	userID, ok := r.Context().Value(shared.UserIDContextKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}

// getPathUUID extracts and parses a UUID path parameter.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, domain.NewValidationError(paramName, "é obrigatório", domain.ErrValidation)
	}

	id, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, domain.NewValidationError(paramName, "tem formato inválido", domain.ErrInvalidID)
	}

	return id, nil
}

// parseAppointmentTime parses the "data" field, accepting the original
// datetime format and RFC 3339.
func parseAppointmentTime(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range appointmentTimeLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, domain.NewValidationError("data", "deve ser uma data/hora válida", lastErr)
}
