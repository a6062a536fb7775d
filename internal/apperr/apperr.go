package apperr

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMFARequired        = errors.New("mfa code required")
	ErrServiceUnavailable = errors.New("service unavailable")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrInvalidState       = errors.New("invalid state")
)

type FieldIssue struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError carries per-field constraint violations. It is reported
// inline next to the offending form fields and never triggers global handling.
type ValidationError struct {
	Fields []FieldIssue
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" "+f.Reason)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add appends an issue, ignoring blank reasons.
func (e *ValidationError) Add(field, reason string) {
	field = strings.TrimSpace(field)
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return
	}
	e.Fields = append(e.Fields, FieldIssue{Field: field, Reason: reason})
}

func (e *ValidationError) HasIssues() bool {
	return e != nil && len(e.Fields) > 0
}

// Sorted returns a copy ordered by field then reason.
func (e *ValidationError) Sorted() []FieldIssue {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	out := make([]FieldIssue, len(e.Fields))
	copy(out, e.Fields)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Field == out[j].Field {
			return out[i].Reason < out[j].Reason
		}
		return out[i].Field < out[j].Field
	})
	return out
}

// OrNil returns e when it has issues, nil otherwise.
func (e *ValidationError) OrNil() error {
	if e.HasIssues() {
		return e
	}
	return nil
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
