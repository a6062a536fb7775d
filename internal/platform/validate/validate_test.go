package validate

import (
	"errors"
	"testing"

	"workwise/internal/apperr"
)

type sample struct {
	Name  string  `json:"name" validate:"required,min=2"`
	Email string  `json:"email" validate:"omitempty,email"`
	Start string  `json:"startTime" validate:"clock"`
	Date  string  `json:"date" validate:"omitempty,isodate"`
	Hours float64 `json:"totalHours" validate:"gt=0"`
	Kind  string  `json:"type" validate:"oneof=vacation permission leave"`
}

func TestStruct(t *testing.T) {
	ok := sample{Name: "Morning", Start: "08:00", Hours: 8, Kind: "leave", Date: "2025-05-15"}
	if err := Struct(ok); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := sample{Name: "M", Email: "nope", Start: "25:00", Date: "15/05/2025", Kind: "holiday"}
	err := Struct(bad)
	var verr *apperr.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	got := map[string]string{}
	for _, f := range verr.Fields {
		got[f.Field] = f.Reason
	}
	want := map[string]string{
		"name":       "must be at least 2 characters",
		"email":      "must be a valid email",
		"startTime":  "must be a time in HH:MM format",
		"date":       "must be a valid date in YYYY-MM-DD format",
		"totalHours": "must be greater than 0",
		"type":       "must be one of: vacation, permission, leave",
	}
	for field, reason := range want {
		if got[field] != reason {
			t.Fatalf("field %s: got %q, want %q", field, got[field], reason)
		}
	}
}
