package shared

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"workwise/internal/apperr"
	"workwise/internal/requestctx"
	"workwise/internal/transport/http/api"
)

type errorClass struct {
	target error
	status int
	code   string
}

var errorClasses = []errorClass{
	{apperr.ErrInvalidInput, http.StatusBadRequest, "invalid_payload"},
	{apperr.ErrMFARequired, http.StatusUnauthorized, "mfa_required"},
	{apperr.ErrInvalidCredentials, http.StatusUnauthorized, "invalid_credentials"},
	{apperr.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
	{apperr.ErrForbidden, http.StatusForbidden, "forbidden"},
	{apperr.ErrNotFound, http.StatusNotFound, "not_found"},
	{apperr.ErrConflict, http.StatusConflict, "conflict"},
	{apperr.ErrInvalidState, http.StatusConflict, "invalid_state"},
	{apperr.ErrServiceUnavailable, http.StatusServiceUnavailable, "service_unavailable"},
}

// StatusFor maps a domain error to its HTTP status and error code.
func StatusFor(err error) (int, string) {
	if apperr.IsValidation(err) {
		return http.StatusBadRequest, "validation_error"
	}
	for _, c := range errorClasses {
		if errors.Is(err, c.target) {
			return c.status, c.code
		}
	}
	return http.StatusInternalServerError, "internal_error"
}

// FailError writes err as an envelope. Unclassified errors are logged and
// reported without their text.
func FailError(w http.ResponseWriter, r *http.Request, err error) {
	requestID := requestctx.GetRequestID(r.Context())
	var verr *apperr.ValidationError
	if errors.As(err, &verr) {
		FailValidation(w, requestID, verr)
		return
	}
	status, code := StatusFor(err)
	if status == http.StatusInternalServerError {
		zerolog.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		api.Fail(w, status, code, "internal server error", requestID)
		return
	}
	api.Fail(w, status, code, err.Error(), requestID)
}

// DecodeJSON reads the request body into dst. It writes the 400 itself and
// reports false when the body is not valid JSON.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			api.Fail(w, http.StatusRequestEntityTooLarge, "payload_too_large", "request body too large", requestctx.GetRequestID(r.Context()))
			return false
		}
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestctx.GetRequestID(r.Context()))
		return false
	}
	return true
}

// ClientIP prefers the first X-Forwarded-For hop, then RemoteAddr.
func ClientIP(r *http.Request) string {
	if fwd := strings.TrimSpace(r.Header.Get("X-Forwarded-For")); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if value := strings.TrimSpace(first); value != "" {
			return value
		}
	}
	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err == nil && host != "" {
		return host
	}
	return strings.TrimSpace(r.RemoteAddr)
}
