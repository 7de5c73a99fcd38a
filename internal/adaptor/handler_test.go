package adaptor

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHandleServiceError(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", fmt.Errorf("parcel ab12cd not found"), http.StatusNotFound},
		{"validation", fmt.Errorf("validation failed: sender is required"), http.StatusBadRequest},
		{"invalid input", fmt.Errorf("invalid parcel id"), http.StatusBadRequest},
		{"bad credentials", fmt.Errorf("email or password incorrect"), http.StatusUnauthorized},
		{"unapproved", fmt.Errorf("account not approved"), http.StatusForbidden},
		{"duplicate", fmt.Errorf("worker already exists"), http.StatusConflict},
		{"stale version", fmt.Errorf("version mismatch for parcel ab12cd"), http.StatusConflict},
		{"unknown", fmt.Errorf("connection reset"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			handleServiceError(rec, zap.NewNop(), tc.err, "test operation")

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, false, body["status"])
			assert.NotEmpty(t, body["message"])
		})
	}
}
