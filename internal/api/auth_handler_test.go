package api_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendamed/agenda-api/internal/api"
	"github.com/agendamed/agenda-api/internal/api/shared"
	"github.com/agendamed/agenda-api/internal/domain"
	"github.com/agendamed/agenda-api/internal/mocks"
	"github.com/agendamed/agenda-api/internal/service"
)

type authFixture struct {
	router chi.Router
	users  *mocks.MockUserStore
}

// withUserID injects the authenticated caller's ID the way the
// authentication middleware does.
func withUserID(userID uuid.UUID) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), shared.UserIDContextKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func newAuthHandlerFixture(t *testing.T, userID uuid.UUID) authFixture {
	t.Helper()

	users := mocks.NewMockUserStore()
	svc := service.NewAuthService(
		users,
		&mocks.MockJWTService{Token: "test-token"},
		&mocks.MockPasswordHasher{},
		&mocks.MockPasswordVerifier{},
	)
	handler := api.NewAuthHandler(svc)

	router := chi.NewRouter()
	router.Post("/v1/register", handler.Register)
	router.Post("/v1/login", handler.Login)
	router.Group(func(r chi.Router) {
		if userID != uuid.Nil {
			r.Use(withUserID(userID))
		}
		r.Get("/v1/user", handler.CurrentUser)
		r.Post("/v1/logout", handler.Logout)
		r.Post("/v1/refresh", handler.Refresh)
	})

	return authFixture{router: router, users: users}
}

func registerTestUser(t *testing.T, fx authFixture) *domain.User {
	t.Helper()

	user, err := domain.NewUser("Ana Lima", "ana@example.com", "password123")
	require.NoError(t, err)
	user.HashedPassword = "hashed:password123"
	user.Password = ""
	require.NoError(t, fx.users.Create(context.Background(), user))
	return user
}

func TestAuthHandlerRegister(t *testing.T) {
	t.Parallel()

	t.Run("registers and auto-logs-in", func(t *testing.T) {
		t.Parallel()

		fx := newAuthHandlerFixture(t, uuid.Nil)
		rec, env := doRequest(t, fx.router, http.MethodPost, "/v1/register", map[string]string{
			"name":                  "Ana Lima",
			"email":                 "ana@example.com",
			"password":              "password123",
			"password_confirmation": "password123",
		})

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.True(t, env.Success)

		var resp struct {
			User          *domain.User `json:"user"`
			Authorization struct {
				Token string `json:"token"`
				Type  string `json:"type"`
			} `json:"authorization"`
		}
		decodeItem(t, env, &resp)
		assert.Equal(t, "ana@example.com", resp.User.Email)
		assert.Equal(t, "test-token", resp.Authorization.Token)
		assert.Equal(t, "bearer", resp.Authorization.Type)
	})

	t.Run("duplicate email returns 422", func(t *testing.T) {
		t.Parallel()

		fx := newAuthHandlerFixture(t, uuid.Nil)
		registerTestUser(t, fx)

		rec, env := doRequest(t, fx.router, http.MethodPost, "/v1/register", map[string]string{
			"name":                  "Outra Ana",
			"email":                 "ana@example.com",
			"password":              "password123",
			"password_confirmation": "password123",
		})

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "O e-mail informado já está em uso.", env.Error)
	})

	t.Run("mismatched confirmation returns 422", func(t *testing.T) {
		t.Parallel()

		fx := newAuthHandlerFixture(t, uuid.Nil)
		rec, env := doRequest(t, fx.router, http.MethodPost, "/v1/register", map[string]string{
			"name":                  "Ana Lima",
			"email":                 "ana@example.com",
			"password":              "password123",
			"password_confirmation": "different",
		})

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "A confirmação de senha não confere.", env.Error)
	})

	t.Run("unknown fields are rejected", func(t *testing.T) {
		t.Parallel()

		fx := newAuthHandlerFixture(t, uuid.Nil)
		rec, _ := doRequest(t, fx.router, http.MethodPost, "/v1/register", map[string]string{
			"name":                  "Ana Lima",
			"email":                 "ana@example.com",
			"password":              "password123",
			"password_confirmation": "password123",
			"admin":                 "true",
		})

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestAuthHandlerLogin(t *testing.T) {
	t.Parallel()

	t.Run("valid credentials", func(t *testing.T) {
		t.Parallel()

		fx := newAuthHandlerFixture(t, uuid.Nil)
		registerTestUser(t, fx)

		rec, env := doRequest(t, fx.router, http.MethodPost, "/v1/login", map[string]string{
			"email":    "ana@example.com",
			"password": "password123",
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, env.Success)

		var bundle service.TokenBundle
		decodeItem(t, env, &bundle)
		assert.Equal(t, "test-token", bundle.AccessToken)
		assert.Equal(t, "bearer", bundle.TokenType)
		assert.Equal(t, 3600, bundle.ExpiresIn)
	})

	t.Run("wrong password returns 401", func(t *testing.T) {
		t.Parallel()

		fx := newAuthHandlerFixture(t, uuid.Nil)
		registerTestUser(t, fx)

		rec, env := doRequest(t, fx.router, http.MethodPost, "/v1/login", map[string]string{
			"email":    "ana@example.com",
			"password": "wrong-password",
		})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Não autorizado", env.Error)
	})

	t.Run("unknown email returns 401", func(t *testing.T) {
		t.Parallel()

		fx := newAuthHandlerFixture(t, uuid.Nil)
		rec, _ := doRequest(t, fx.router, http.MethodPost, "/v1/login", map[string]string{
			"email":    "nobody@example.com",
			"password": "password123",
		})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthHandlerCurrentUser(t *testing.T) {
	t.Parallel()

	t.Run("returns the authenticated user", func(t *testing.T) {
		t.Parallel()

		setup := newAuthHandlerFixture(t, uuid.Nil)
		user := registerTestUser(t, setup)

		fx := newAuthHandlerFixture(t, user.ID)
		fx.users.Users = setup.users.Users

		rec, env := doRequest(t, fx.router, http.MethodGet, "/v1/user", nil)

		assert.Equal(t, http.StatusOK, rec.Code)

		var got domain.User
		decodeItem(t, env, &got)
		assert.Equal(t, user.Email, got.Email)
	})

	t.Run("missing identity returns 401", func(t *testing.T) {
		t.Parallel()

		fx := newAuthHandlerFixture(t, uuid.Nil)
		rec, _ := doRequest(t, fx.router, http.MethodGet, "/v1/user", nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthHandlerLogout(t *testing.T) {
	t.Parallel()

	fx := newAuthHandlerFixture(t, uuid.New())
	rec, env := doRequest(t, fx.router, http.MethodPost, "/v1/logout", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "Logout realizado com sucesso", env.Message)
}

func TestAuthHandlerRefresh(t *testing.T) {
	t.Parallel()

	setup := newAuthHandlerFixture(t, uuid.Nil)
	user := registerTestUser(t, setup)

	fx := newAuthHandlerFixture(t, user.ID)
	fx.users.Users = setup.users.Users

	rec, env := doRequest(t, fx.router, http.MethodPost, "/v1/refresh", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var bundle service.TokenBundle
	decodeItem(t, env, &bundle)
	assert.Equal(t, "test-token", bundle.AccessToken)
	assert.Equal(t, user.ID, bundle.User.ID)
}
