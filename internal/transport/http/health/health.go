package health

import (
	"encoding/json"
	"net/http"

	"github.com/you-humble/paypal-express/internal/model"
	"github.com/you-humble/paypal-express/platform/logger"
)

const (
	StatusServing    = "SERVING"
	StatusNotServing = "NOT_SERVING"
)

type SDKState interface {
	State() model.ScriptLoadState
}

func HealthCheck(w http.ResponseWriter, r *http.Request) {
	if _, err := w.Write([]byte(StatusServing)); err != nil {
		logger.Error(r.Context(), "health check", logger.ErrorF(err))
	}
}

// Readiness reports the process-wide SDK script state next to the serving
// status. A missing or loading script is ready: it is loaded on first use.
// A failed script is never refetched, so the process answers 503 until it
// is restarted.
func Readiness(sdk SDKState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := sdk.State()

		status, code := StatusServing, http.StatusOK
		if state == model.ScriptFailed {
			status, code = StatusNotServing, http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)

		err := json.NewEncoder(w).Encode(map[string]string{
			"status": status,
			"sdk":    string(state),
		})
		if err != nil {
			logger.Error(r.Context(), "readiness check", logger.ErrorF(err))
		}
	}
}
