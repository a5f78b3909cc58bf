// Package validator wraps go-playground/validator with the custom rules of
// the movie domain and converts failures into apperror validation errors.
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"movies-api/internal/domain"
	"movies-api/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

// FieldError describes one rejected field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, key := range []string{"json", "query", "param"} {
			name := strings.SplitN(fld.Tag.Get(key), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	v.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
		return domain.IsValidID(fl.Field().String())
	})
	v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseReleased(fl.Field().String())
		return err == nil
	})
	v.RegisterValidation("notfutureyear", func(fl validator.FieldLevel) bool {
		return fl.Field().Int() <= int64(time.Now().Year())
	})

	return &Validator{v: v}
}

// Struct validates s and returns a Validation apperror listing every
// rejected field.
func (val *Validator) Struct(s interface{}) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperror.Internal("Internal server error", err)
	}

	details := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, FieldError{
			Field:   fieldPath(fe),
			Message: fieldMessage(fe),
		})
	}

	return apperror.Validation("Validation failed").WithDetails(details)
}

func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func fieldMessage(fe validator.FieldError) string {
	field := fieldPath(fe)

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "required_with":
		return fmt.Sprintf("%s is required when %s is present", field, strings.ToLower(fe.Param()))
	case "email":
		return fmt.Sprintf("%s must be a valid email", field)
	case "url":
		return fmt.Sprintf("%s must be a valid URI", field)
	case "objectid":
		return fmt.Sprintf("%s must be a 24 character hex string", field)
	case "isodate":
		return fmt.Sprintf("%s must be a valid ISO 8601 date", field)
	case "datetime":
		return fmt.Sprintf("%s must match the format %s", field, fe.Param())
	case "notfutureyear":
		return fmt.Sprintf("%s must not be in the future", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "min":
		if isCollection(fe.Kind()) {
			return fmt.Sprintf("%s must contain at least %s items", field, fe.Param())
		}
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
		}
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long", field, fe.Param())
		}
		return fmt.Sprintf("%s must be less than or equal to %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be a positive number", field)
	default:
		return fmt.Sprintf("%s failed the %s rule", field, fe.Tag())
	}
}

func isCollection(k reflect.Kind) bool {
	return k == reflect.Slice || k == reflect.Array || k == reflect.Map
}
