package httpserver_test

import (
	"encoding/json"
	"net/http/httptest"
	"phonebook/pkg/config"
	"testing"

	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{}
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), "response should be an error body: %s", rec.Body.String())
	return body.Error
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), "cannot decode %s", rec.Body.String())
}
