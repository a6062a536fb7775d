// Package validate checks request payloads with validator/v10 struct tags
// and reports failures as apperr field issues keyed by JSON name.
package validate

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"workwise/internal/apperr"
)

var (
	once     sync.Once
	instance *validator.Validate
	clock    = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
	isoDate  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

func get() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})
		_ = v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
			return clock.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
			return isoDate.MatchString(fl.Field().String())
		})
		instance = v
	})
	return instance
}

// Struct validates s. Constraint failures come back as *apperr.ValidationError.
func Struct(s any) error {
	err := get().Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	verr := &apperr.ValidationError{}
	for _, fe := range fieldErrs {
		verr.Add(fe.Field(), reason(fe))
	}
	return verr.OrNil()
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "min":
		if fe.Kind() == reflect.String {
			return "must be at least " + fe.Param() + " characters"
		}
		return "must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return "must be at most " + fe.Param() + " characters"
		}
		return "must be at most " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	case "ne":
		return "must not be " + fe.Param()
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "clock":
		return "must be a time in HH:MM format"
	case "isodate":
		return "must be a valid date in YYYY-MM-DD format"
	}
	return "failed " + fe.Tag() + " constraint"
}
