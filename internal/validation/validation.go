// Package validation schema-checks form payloads before they reach the
// mutation layer. A payload either normalizes into typed fields or is
// rejected whole with a field-level error map; nothing partial ever goes
// through.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// New builds the validator used by the HTTP layer. Field names in error
// output follow the json tags, and the custom "money" rule accepts
// non-negative decimal strings.
func New() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("money", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		if err != nil {
			return false
		}
		return !d.IsNegative()
	})

	return v
}

// Fields converts a validator error into per-field messages. Unknown error
// shapes collapse to a single "payload" entry so the envelope always carries
// something actionable.
func Fields(err error) map[string]string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"payload": "invalid payload"}
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = message(fe)
	}
	return fields
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "url":
		return "must be a valid URL"
	case "uuid":
		return "must be a valid id"
	case "money":
		return "must be a non-negative decimal"
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	default:
		return "is invalid"
	}
}
