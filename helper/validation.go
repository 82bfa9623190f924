package helper

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Validator is shared by the request middlewares and the booking service.
var Validator = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, key := range []string{"json", "query"} {
			name := strings.SplitN(field.Tag.Get(key), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return field.Name
	})
	_ = v.RegisterValidation("bookingdate", func(fl validator.FieldLevel) bool {
		return IsValidDate(fl.Field().String())
	})
	_ = v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		return IsValidClock(fl.Field().String())
	})
	return v
}

// IsValidDate accepts "YYYY-MM-DD" strings naming a real calendar day.
func IsValidDate(value string) bool {
	if !datePattern.MatchString(value) {
		return false
	}
	_, err := ParseDate(value)
	return err == nil
}

func IsValidClock(value string) bool {
	return clockPattern.MatchString(value)
}

// ValidationMessage turns the first validator failure into a client-facing sentence.
func ValidationMessage(err error) string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return err.Error()
	}

	fe := errs[0]
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "bookingdate":
		return fmt.Sprintf("Invalid %s format. Use YYYY-MM-DD", field)
	case "clock":
		return fmt.Sprintf("Invalid %s format. Use HH:MM", field)
	case "gte", "lte":
		if field == "guests" {
			return "Guests must be between 1 and 20"
		}
	case "max":
		return fmt.Sprintf("%s cannot exceed %s characters", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	}
	return fmt.Sprintf("Invalid value for %s", field)
}
