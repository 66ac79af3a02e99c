// Package validation holds the pure payload validators for the authoring
// workflow. Validators return field-level errors and never touch the
// persistence layer; a nil result means the payload may be persisted as-is.
package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/yourusername/classroom-api/internal/pkg/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report errors under JSON field names instead of Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// collectTagErrors runs struct-tag validation and folds the failures into errs.
func collectTagErrors(payload interface{}, errs *apperrors.ValidationErrors) {
	err := validate.Struct(payload)
	if err == nil {
		return
	}
	invalid, ok := err.(validator.ValidationErrors)
	if !ok {
		errs.Add("", err.Error())
		return
	}
	for _, fe := range invalid {
		errs.Add(fe.Field(), messageFor(fe))
	}
}

// messageFor renders a short message for a tag failure.
func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "gte", "min":
		return "Value must be at least " + fe.Param()
	case "lte", "max":
		return "Value must be at most " + fe.Param()
	case "oneof":
		return "Value must be one of: " + fe.Param()
	}
	return "Invalid value"
}
