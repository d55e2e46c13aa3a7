// Package validation checks request preconditions before anything is sent.
// It wraps go-playground/validator with a notblank rule and converts field
// errors into the client's ValidationError.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/mailrify/mailrify-go/internal/apierrors"
)

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		// Report JSON field names so messages match the API's vocabulary.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})

		_ = v.RegisterValidation("notblank", notBlank)
		validate = v
	})
	return validate
}

// Struct validates s against its validate tags.
func Struct(s any) error {
	if err := instance().Struct(s); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			msgs := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				msgs = append(msgs, message(fe))
			}
			return &apierrors.ValidationError{Errors: msgs}
		}
		return &apierrors.ValidationError{Errors: []string{err.Error()}}
	}
	return nil
}

// ID checks that an identifier passed as a path segment is not blank.
func ID(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return apierrors.NewValidationError("%s must not be empty", name)
	}
	return nil
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("the %q field is required", field)
	case "min":
		if fe.Kind() == reflect.Slice || fe.Kind() == reflect.Map {
			return fmt.Sprintf("%q must contain at least %s item(s)", field, fe.Param())
		}
		return fmt.Sprintf("%q must be at least %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%q must be at least %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%q must be greater than %s", field, fe.Param())
	case "email":
		return fmt.Sprintf("%q must be a valid email address", field)
	default:
		return fmt.Sprintf("%q failed %s validation", field, fe.Tag())
	}
}

func notBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.String:
		return strings.TrimSpace(field.String()) != ""
	case reflect.Slice, reflect.Map, reflect.Array:
		return field.Len() > 0
	default:
		return !field.IsZero()
	}
}
