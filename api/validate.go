package api

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	validate = newValidator()
	timeType = reflect.TypeOf(time.Time{})
)

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("param"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	// Dates are checked in their YYYY-MM-DD form with the "date" tag.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		return field.Interface().(Date).String()
	}, Date{})
	if err := v.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		d, err := ParseDate(fl.Field().String())
		return err == nil && d.Valid()
	}); err != nil {
		panic(err)
	}
	return v
}

// Validate checks the `validate` struct tags of an endpoint's options and
// translates the first failure into a MissingFieldError or ConstraintError.
// Field names come from the `param` tag.
func Validate(opts any) error {
	err := validate.Struct(opts)
	if err == nil {
		return nil
	}
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return err
	}
	return translate(fieldErrors[0])
}

func translate(fe validator.FieldError) error {
	if fe.Tag() == "required" {
		return &MissingFieldError{Field: fe.Field()}
	}
	limit, _ := strconv.Atoi(fe.Param())
	actual, counted := measure(fe.Value())
	ce := &ConstraintError{Field: fe.Field(), Limit: limit, Actual: actual}
	switch {
	case fe.Tag() == "max" && counted:
		ce.Description = fmt.Sprintf("endpoint only accepts up to %d %s (received %d)",
			limit, strings.ToLower(fe.StructField()), actual)
	case fe.Tag() == "max":
		ce.Description = fmt.Sprintf("endpoint only accepts `%s` of %d or less (received %d)",
			fe.Field(), limit, actual)
	case fe.Tag() == "date":
		ce.Limit, ce.Actual = 0, 0
		ce.Description = fmt.Sprintf("endpoint only accepts calendar dates for `%s` (received %v)",
			fe.Field(), fe.Value())
	case fe.Tag() == "min":
		ce.Description = fmt.Sprintf("endpoint only accepts `%s` of %d or more (received %d)",
			fe.Field(), limit, actual)
	default:
		ce.Description = fmt.Sprintf("endpoint rejects `%s`: failed %q constraint", fe.Field(), fe.Tag())
	}
	return ce
}

// measure returns the size of collections (counted=true) or the value of numbers.
func measure(value any) (n int, counted bool) {
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return 0, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int()), false
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int(rv.Uint()), false
	case reflect.String:
		return rv.Len(), false
	}
	return 0, false
}

// checkDecoded runs the `validate` tags of a decoded response, so that a
// body missing a required field is rejected like a type mismatch.
func checkDecoded(out any) error {
	rv := reflect.ValueOf(out)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Struct:
		if rv.Type().ConvertibleTo(timeType) {
			return nil
		}
		return validate.Struct(rv.Interface())
	case reflect.Slice, reflect.Array:
		switch rv.Type().Elem().Kind() {
		case reflect.Struct, reflect.Pointer, reflect.Slice, reflect.Interface:
		default:
			return nil
		}
		for i := 0; i < rv.Len(); i++ {
			if err := checkDecoded(rv.Index(i).Interface()); err != nil {
				return fmt.Errorf("element %d: %w", i, err)
			}
		}
	}
	return nil
}
