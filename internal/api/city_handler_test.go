package api_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendamed/agenda-api/internal/api"
	"github.com/agendamed/agenda-api/internal/domain"
	"github.com/agendamed/agenda-api/internal/mocks"
	"github.com/agendamed/agenda-api/internal/service"
)

func newCityFixture(t *testing.T) chi.Router {
	t.Helper()

	saoPaulo, err := domain.NewCity("São Paulo", "SP")
	require.NoError(t, err)
	curitiba, err := domain.NewCity("Curitiba", "PR")
	require.NoError(t, err)

	handler := api.NewCityHandler(service.NewCityService(mocks.NewMockCityStore(saoPaulo, curitiba)))

	router := chi.NewRouter()
	router.Get("/v1/cidades", handler.List)
	return router
}

func TestCityHandlerList(t *testing.T) {
	t.Parallel()

	t.Run("lists all ordered by name", func(t *testing.T) {
		t.Parallel()

		router := newCityFixture(t)
		rec, env := doRequest(t, router, http.MethodGet, "/v1/cidades", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, env.Success)
		assert.Equal(t, "Lista de cidades recuperada com sucesso", env.Message)

		var cities []*domain.City
		decodeItem(t, env, &cities)
		require.Len(t, cities, 2)
		assert.Equal(t, "Curitiba", cities[0].Name)
		assert.Equal(t, "São Paulo", cities[1].Name)
	})

	t.Run("filters by name substring", func(t *testing.T) {
		t.Parallel()

		router := newCityFixture(t)
		rec, env := doRequest(t, router, http.MethodGet,
			"/v1/cidades?nome="+url.QueryEscape("Paulo"), nil)

		assert.Equal(t, http.StatusOK, rec.Code)

		var cities []*domain.City
		decodeItem(t, env, &cities)
		require.Len(t, cities, 1)
		assert.Equal(t, "São Paulo", cities[0].Name)
	})

	t.Run("no match returns empty item", func(t *testing.T) {
		t.Parallel()

		router := newCityFixture(t)
		rec, env := doRequest(t, router, http.MethodGet, "/v1/cidades?nome=Recife", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, env.Success)

		var cities []*domain.City
		decodeItem(t, env, &cities)
		assert.Empty(t, cities)
	})
}
