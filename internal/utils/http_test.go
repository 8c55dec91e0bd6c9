package utils

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON_Success(t *testing.T) {
	rec := httptest.NewRecorder()

	n, err := WriteJSON(rec, map[string]string{"status": "ok"}, 201)
	require.NoError(t, err)
	assert.Positive(t, n)
	assert.Equal(t, 201, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestWriteJSON_MarshalFailure(t *testing.T) {
	rec := httptest.NewRecorder()

	// Channels cannot be marshaled to JSON.
	_, err := WriteJSON(rec, make(chan int), 200)
	require.Error(t, err)
	assert.Equal(t, 500, rec.Code)
}

func TestGetStaffFromContext(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	staff, ok := GetStaffFromContext(r.Context())
	assert.False(t, ok)
	assert.Empty(t, staff)
}
