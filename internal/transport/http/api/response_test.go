package api

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccessMergesPayloadKeys(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, 201, "created", Payload{"employee": map[string]any{"id": "abc"}})

	assert.Equal(t, 201, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "created", body["message"])
	assert.Contains(t, body, "employee")
}

func TestSuccessOmitsEmptyMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, 200, "", Payload{"items": []string{}})

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotContains(t, body, "message")
	assert.Equal(t, true, body["success"])
}

func TestFail(t *testing.T) {
	rec := httptest.NewRecorder()
	Fail(rec, 404, "employee not found")

	assert.Equal(t, 404, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "employee not found", body["message"])
}
