package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/atahmasb/trivia-api/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexibleID(t *testing.T) {
	tests := []struct {
		in      string
		want    FlexibleID
		wantErr bool
	}{
		{in: `7`, want: 7},
		{in: `"7"`, want: 7},
		{in: `null`, want: 0},
		{in: `"seven"`, wantErr: true},
		{in: `-1`, wantErr: true},
		{in: `1.5`, wantErr: true},
	}
	for _, tt := range tests {
		var got FlexibleID
		err := json.Unmarshal([]byte(tt.in), &got)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, statusFor(services.KindNotFound))
	assert.Equal(t, http.StatusBadRequest, statusFor(services.KindBadRequest))
	assert.Equal(t, http.StatusUnprocessableEntity, statusFor(services.KindUnprocessable))
	assert.Equal(t, http.StatusInternalServerError, statusFor(services.KindInternal))
}

func TestUnknownRoute(t *testing.T) {
	api := setupAPI(t, nil)
	w := api.do(t, http.MethodGet, "/nope", nil)
	assertError(t, w, http.StatusNotFound, "resource not found")
}

func TestMethodNotAllowed(t *testing.T) {
	api := setupAPI(t, nil)
	w := api.do(t, http.MethodPut, "/categories", nil)
	assertError(t, w, http.StatusMethodNotAllowed, "method not allowed")
}

func TestHealth(t *testing.T) {
	api := setupAPI(t, nil)
	w := api.do(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestCORSHeadersOnAPI(t *testing.T) {
	api := setupAPI(t, nil)
	w := api.do(t, http.MethodGet, "/categories", nil, "Origin", "http://localhost:3000")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
