package middleware

import (
	"encoding/json"
	"net/http"

	apperrors "github.com/lorrc/kpi-service/internal/core/errors"
)

// writeAppError renders an AppError in the same {"error","code"} shape the
// HTTP error handler uses. Middleware cannot reach that handler.
func writeAppError(w http.ResponseWriter, appErr *apperrors.AppError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.StatusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": appErr.Message,
		"code":  appErr.Code,
	})
}

func writeRateLimited(w http.ResponseWriter) {
	w.Header().Set("Retry-After", "1")
	writeAppError(w, apperrors.NewRateLimitError())
}
