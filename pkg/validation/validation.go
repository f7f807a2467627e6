package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// New builds a validator instance whose error paths use json wire names
// (e.g. "personal_info.full_name") instead of Go struct field names.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// Errors converts a validation failure into a field-path keyed report:
// {"personal_info.full_name": ["Must be at least 2 characters"]}.
func Errors(err error) map[string][]string {
	report := make(map[string][]string)

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		report["_"] = []string{err.Error()}
		return report
	}

	for _, e := range validationErrors {
		path := fieldPath(e.Namespace())
		report[path] = append(report[path], message(e))
	}
	return report
}

// fieldPath strips the root struct segment from a validator namespace:
// "ResumeSubmission.personal_info.full_name" -> "personal_info.full_name".
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func message(e validator.FieldError) string {
	param := e.Param()

	switch e.Tag() {
	case "required":
		return "Missing data for required field"

	case "min":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("Must be at least %s characters", param)
		}
		return fmt.Sprintf("Must be at least %s", param)

	case "max":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("Must be at most %s characters", param)
		}
		return fmt.Sprintf("Must be at most %s", param)

	case "email":
		return "Not a valid email address"

	case "url":
		return "Not a valid URL"

	case "oneof":
		return fmt.Sprintf("Must be one of: %s", strings.Join(strings.Split(param, " "), ", "))

	case "gte":
		return fmt.Sprintf("Must be greater than or equal to %s", param)

	case "lte":
		return fmt.Sprintf("Must be less than or equal to %s", param)

	default:
		return fmt.Sprintf("Failed validation (%s)", e.Tag())
	}
}
