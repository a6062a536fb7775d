package shared

import (
	"net/http"

	"workwise/internal/apperr"
	"workwise/internal/transport/http/api"
)

// FailValidation reports field issues as a 400 with details.fields.
func FailValidation(w http.ResponseWriter, requestID string, verr *apperr.ValidationError) {
	api.FailWithDetails(
		w,
		http.StatusBadRequest,
		"validation_error",
		"payload validation failed",
		map[string]any{"fields": verr.Sorted()},
		requestID,
	)
}
