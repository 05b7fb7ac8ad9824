// Package validx wraps go-playground/validator with the custom tags and the
// field-level error shape used by the HTTP layer.
package validx

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/aussiebroadwan/taskapi/pkg/idx"
)

// FieldError describes one rejected field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is the set of field violations for a single value. It is returned
// as an error so callers can match it with errors.As.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Messager lets a type override the default message for a field/tag pair.
// Keys are "<json field>.<tag>", e.g. "title.max".
type Messager interface {
	ValidationMessages() map[string]string
}

// Validator is safe for concurrent use.
type Validator struct {
	validate *validator.Validate
	now      func() time.Time
}

// Option configures a Validator.
type Option func(*Validator)

// WithClock overrides the time source used by the "future" tag.
func WithClock(now func() time.Time) Option {
	return func(v *Validator) { v.now = now }
}

// New returns a Validator with the ulid, iso8601 and future tags registered.
func New(opts ...Option) *Validator {
	v := &Validator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(v)
	}

	v.validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})

	// Registration only fails on an empty tag or nil func.
	_ = v.validate.RegisterValidation("ulid", func(fl validator.FieldLevel) bool {
		return idx.Valid(fl.Field().String())
	})
	_ = v.validate.RegisterValidation("iso8601", func(fl validator.FieldLevel) bool {
		_, err := ParseDate(fl.Field().String())
		return err == nil
	})
	_ = v.validate.RegisterValidation("future", func(fl validator.FieldLevel) bool {
		switch f := fl.Field(); f.Kind() {
		case reflect.String:
			t, err := ParseDate(f.String())
			if err != nil {
				return true // reported by iso8601
			}
			return t.After(v.now())
		case reflect.Struct:
			t, ok := f.Interface().(time.Time)
			return ok && t.After(v.now())
		default:
			return false
		}
	})

	return v
}

// Struct validates s. It returns nil, an Errors value, or an unexpected
// error when s is not a struct.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return fmt.Errorf("validx: %w", err)
	}

	var overrides map[string]string
	if m, ok := s.(Messager); ok {
		overrides = m.ValidationMessages()
	}

	out := make(Errors, 0, len(ves))
	for _, fe := range ves {
		msg, ok := overrides[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg = defaultMessage(fe)
		}
		out = append(out, FieldError{Field: fe.Field(), Message: msg})
	}
	return out
}

func defaultMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s cannot exceed %s characters", field, fe.Param())
	case "email":
		return "Please enter a valid email"
	case "ulid":
		return "Please enter a valid ID"
	case "iso8601":
		return "Please enter a valid date"
	case "future":
		return field + " must be in the future"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return field + " is invalid"
	}
}
