package health

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/paypal-express/internal/model"
)

type stubState model.ScriptLoadState

func (s stubState) State() model.ScriptLoadState { return model.ScriptLoadState(s) }

func TestHealthCheck(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	HealthCheck(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "SERVING", rec.Body.String())
}

func TestReadiness(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		state    model.ScriptLoadState
		wantCode int
		wantBody string
	}{
		{
			name:     "not loaded yet",
			state:    model.ScriptNotLoaded,
			wantCode: http.StatusOK,
			wantBody: `{"status":"SERVING","sdk":"NOT_LOADED"}`,
		},
		{
			name:     "loading",
			state:    model.ScriptLoading,
			wantCode: http.StatusOK,
			wantBody: `{"status":"SERVING","sdk":"LOADING"}`,
		},
		{
			name:     "loaded",
			state:    model.ScriptLoaded,
			wantCode: http.StatusOK,
			wantBody: `{"status":"SERVING","sdk":"LOADED"}`,
		},
		{
			name:     "failed fetch is not ready",
			state:    model.ScriptFailed,
			wantCode: http.StatusServiceUnavailable,
			wantBody: `{"status":"NOT_SERVING","sdk":"FAILED"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			Readiness(stubState(tt.state))(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

			require.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
