// Package api implements the HTTP handlers: one handler per entity mapping
// validated input to exactly one service call and wrapping the result in the
// uniform response envelope.
package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/agendamed/agenda-api/internal/api/shared"
	"github.com/agendamed/agenda-api/internal/domain"
	"github.com/agendamed/agenda-api/internal/service/auth"
	"github.com/agendamed/agenda-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes based on
// the error type, so internal error types never leak to clients.
func MapErrorToStatusCode(err error) int {
	var validationErr *domain.ValidationError

	switch {
	// Authentication failures
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrWrongTokenType),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	// Domain-rule and field-scoped validation failures
	case errors.As(err, &validationErr),
		errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity

	// Uniqueness violations and dangling references
	case errors.Is(err, store.ErrDuplicate),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusUnprocessableEntity

	// Not found
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	default:
		return http.StatusInternalServerError
	}
}

// safeErrorMessage returns a user-facing message for a known error kind, or
// the given fallback for anything unexpected. Validation errors keep their
// original message; everything unanticipated collapses to the fallback so no
// internal detail reaches the caller.
func safeErrorMessage(err error, fallback string) string {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message
	}

	switch {
	case errors.Is(err, store.ErrEmailExists):
		return "O e-mail informado já está em uso."
	case errors.Is(err, store.ErrCPFExists):
		return "O CPF informado já está em uso."
	case errors.Is(err, store.ErrInvalidEntity):
		return "Referência a registro inexistente."
	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Não autorizado"
	case errors.Is(err, store.ErrNotFound):
		return "Registro não encontrado."
	default:
		return fallback
	}
}

// respondServiceError maps a service error to the envelope: known error
// kinds keep their status and message; anything else is logged with the
// operation name and request payload and surfaced as a generic 500.
func respondServiceError(
	w http.ResponseWriter,
	r *http.Request,
	err error,
	operation string,
	genericMessage string,
	payload any,
) {
	status := MapErrorToStatusCode(err)
	message := safeErrorMessage(err, genericMessage)
	if status == http.StatusInternalServerError {
		message = genericMessage
	}

	shared.RespondWithErrorAndLog(w, r, status, message, operation, err, payload)
}

// validationMessage builds a field-scoped Portuguese message from the first
// failed validator constraint.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Dados inválidos."
	}

	fe := verrs[0]
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("O campo %s é obrigatório.", field)
	case "email":
		return fmt.Sprintf("O campo %s deve ser um e-mail válido.", field)
	case "min":
		return fmt.Sprintf("O campo %s é muito curto.", field)
	case "max":
		return fmt.Sprintf("O campo %s é muito longo.", field)
	case "eqfield":
		return "A confirmação de senha não confere."
	case "uuid":
		return fmt.Sprintf("O campo %s deve ser um identificador válido.", field)
	case "oneof":
		return fmt.Sprintf("O campo %s tem um valor inválido.", field)
	default:
		return fmt.Sprintf("O campo %s é inválido.", field)
	}
}
