package services

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// NonFieldErrors keys validation failures that are not attributable to a
// single field, such as composite uniqueness violations.
const NonFieldErrors = "non_field_errors"

// ValidationError reports validation failures as a mapping from JSON field
// name to one or more human-readable messages. Nothing is persisted when a
// ValidationError is returned.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return "validation failed: " + strings.Join(keys, ", ")
}

// newValidate builds a validator that reports fields by their json tag name.
func newValidate() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// checkStruct validates in and folds failures into a field→messages map.
// Returns an empty map when the input is valid.
func checkStruct(v *validator.Validate, in any) map[string][]string {
	fields := map[string][]string{}

	err := v.Struct(in)
	if err == nil {
		return fields
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fields[NonFieldErrors] = append(fields[NonFieldErrors], err.Error())
		return fields
	}

	for _, fe := range verrs {
		fields[fe.Field()] = append(fields[fe.Field()], fieldMessage(fe))
	}
	return fields
}

// fieldMessage renders a single constraint failure.
func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	case "email":
		return "Enter a valid email address."
	case "oneof":
		return fmt.Sprintf("%q is not a valid choice.", fe.Value())
	default:
		return fmt.Sprintf("Invalid value for %s.", fe.Field())
	}
}
