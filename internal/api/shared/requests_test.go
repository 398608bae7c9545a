package shared_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendamed/agenda-api/internal/api/shared"
)

type samplePayload struct {
	Name string `json:"nome"`
}

func newJSONRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	t.Run("valid body", func(t *testing.T) {
		t.Parallel()

		var dst samplePayload
		err := shared.DecodeJSON(newJSONRequest(`{"nome":"Ana"}`), &dst)
		require.NoError(t, err)
		assert.Equal(t, "Ana", dst.Name)
	})

	t.Run("unknown field", func(t *testing.T) {
		t.Parallel()

		var dst samplePayload
		err := shared.DecodeJSON(newJSONRequest(`{"nome":"Ana","extra":1}`), &dst)
		assert.Error(t, err)
	})

	t.Run("trailing content", func(t *testing.T) {
		t.Parallel()

		var dst samplePayload
		err := shared.DecodeJSON(newJSONRequest(`{"nome":"Ana"}{"nome":"Bia"}`), &dst)
		assert.Error(t, err)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		t.Parallel()

		var dst samplePayload
		err := shared.DecodeJSON(newJSONRequest(`{"nome":`), &dst)
		assert.Error(t, err)
	})
}
