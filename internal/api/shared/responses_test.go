package shared_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendamed/agenda-api/internal/api/shared"
)

func TestRespondWithSuccess(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	shared.RespondWithSuccess(rec, req, http.StatusOK, "tudo certo", map[string]string{"chave": "valor"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "tudo certo", body["message"])
	assert.NotContains(t, body, "error", "error field must be omitted on success")
	assert.Equal(t, map[string]any{"chave": "valor"}, body["item"])
}

func TestRespondWithError(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	shared.RespondWithError(rec, req, http.StatusUnprocessableEntity, "dados inválidos")

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "dados inválidos", body["error"])
	assert.Equal(t, "dados inválidos", body["message"])
	assert.Nil(t, body["item"])
}
