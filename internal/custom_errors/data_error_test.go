package custom_errors_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studentoffice-service/internal/custom_errors"
)

func TestDataError_Status(t *testing.T) {
	tests := []struct {
		name string
		err  *custom_errors.DataError
		want int
	}{
		{name: "not found", err: custom_errors.NewNotFoundDataError("user", "/studentOfficeId"), want: http.StatusUnprocessableEntity},
		{name: "already taken", err: custom_errors.NewAlreadyTakenDataError("user", "/login"), want: http.StatusConflict},
		{name: "mismatch", err: custom_errors.NewMismatchDataError("credentials", "/login", "/password"), want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Status())
		})
	}
}

func TestDataError_MarshalJSON(t *testing.T) {
	err := custom_errors.NewAlreadyTakenDataError("user", "/login", "/email")

	raw, marshalErr := json.Marshal(err)
	require.NoError(t, marshalErr)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "already_taken", body["type"])
	assert.Equal(t, "user", body["object"])
	assert.Equal(t, []any{"/login", "/email"}, body["properties"])
	assert.Contains(t, body["message"], "already taken")
}

func TestDataError_EmptyPropertiesSerializeAsArray(t *testing.T) {
	raw, err := json.Marshal(custom_errors.NewAlreadyTakenDataError("user"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"properties":[]`)
}

func TestAsDataError_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("register: %w", custom_errors.NewMismatchDataError("user", "/studentOfficeId", "/schoolEmail"))

	dataErr, ok := custom_errors.AsDataError(wrapped)
	require.True(t, ok)
	assert.Equal(t, custom_errors.KindMismatch, dataErr.Kind)
	assert.True(t, custom_errors.IsKind(wrapped, custom_errors.KindMismatch))
	assert.False(t, custom_errors.IsKind(custom_errors.ErrDatabaseQuery, custom_errors.KindMismatch))
}
