package api

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/agendamed/agenda-api/internal/api/shared"
	"github.com/agendamed/agenda-api/internal/service"
	"github.com/agendamed/agenda-api/internal/service/auth"
	"github.com/agendamed/agenda-api/internal/store"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	authService *service.AuthService
	validator   *validator.Validate
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validator:   newValidator(),
	}
}

// Register handles POST /v1/register.
// Registration auto-logs the new user in and returns a token.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, "Requisição inválida")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, validationMessage(err))
		return
	}

	user, token, err := h.authService.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			shared.RespondWithError(w, r, http.StatusUnprocessableEntity, "O e-mail informado já está em uso.")
			return
		}
		respondServiceError(w, r, err, "failed to register user",
			"Erro interno ao cadastrar usuário", req.Email)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusCreated, "Usuário cadastrado com sucesso", RegisterResponse{
		User: user,
		Authorization: Authorization{
			Token: token,
			Type:  "bearer",
		},
	})
}

// Login handles POST /v1/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, "Requisição inválida")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, validationMessage(err))
		return
	}

	bundle, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Não autorizado")
			return
		}
		respondServiceError(w, r, err, "failed to log user in",
			"Erro interno ao realizar login", req.Email)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, "Login realizado com sucesso", bundle)
}

// CurrentUser handles GET /v1/user.
func (h *AuthHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Não autorizado")
		return
	}

	user, err := h.authService.CurrentUser(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, err, "failed to load current user",
			"Erro interno ao recuperar usuário", userID)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, "Usuário autenticado", user)
}

// Logout handles POST /v1/logout.
// Tokens are stateless JWTs, so there is nothing to discard server-side;
// the client drops its copy.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if _, ok := getUserIDFromContext(r); !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Não autorizado")
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, "Logout realizado com sucesso", nil)
}

// Refresh handles POST /v1/refresh.
// The route authenticates with a refresh token and rotates both tokens.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Não autorizado")
		return
	}

	bundle, err := h.authService.Refresh(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, err, "failed to refresh token",
			"Erro interno ao atualizar token", userID)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, "Token atualizado", bundle)
}
