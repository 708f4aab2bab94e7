// Package validation provides a small rule combinator for request validation.
//
// A Set is an ordered list of rules. Every rule runs, in order, and all field
// failures are collected into one entity.ValidationErrors so callers see every
// problem with a request at once. Rules may consult the store; an I/O error
// aborts validation and is returned unchanged.
package validation

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"sk-api/internal/domain/entity"
)

// Rule checks one aspect of v and reports the field failures it found.
type Rule[T any] func(ctx context.Context, v T) ([]entity.ValidationError, error)

// Set is an ordered rule list for one request type.
type Set[T any] []Rule[T]

// Validate runs every rule and returns entity.ValidationErrors when any failed.
func (s Set[T]) Validate(ctx context.Context, v T) error {
	var failures entity.ValidationErrors
	for _, rule := range s {
		found, err := rule(ctx, v)
		if err != nil {
			return err
		}
		failures = append(failures, found...)
	}
	if len(failures) > 0 {
		return failures
	}
	return nil
}

// Must fails field with message when pred returns false.
func Must[T any](field, message string, pred func(ctx context.Context, v T) (bool, error)) Rule[T] {
	return func(ctx context.Context, v T) ([]entity.ValidationError, error) {
		ok, err := pred(ctx, v)
		if err != nil {
			return nil, fmt.Errorf("validate %s: %w", field, err)
		}
		if ok {
			return nil, nil
		}
		return fail(field, message), nil
	}
}

// Required fails when the string is empty or whitespace only.
func Required[T any](field string, get func(T) string) Rule[T] {
	return Must(field, label(field)+" is required.", func(_ context.Context, v T) (bool, error) {
		return strings.TrimSpace(get(v)) != "", nil
	})
}

// MaxLength fails when the string is longer than n characters.
func MaxLength[T any](field string, n int, get func(T) string) Rule[T] {
	msg := fmt.Sprintf("%s must not exceed %d characters.", label(field), n)
	return Must(field, msg, func(_ context.Context, v T) (bool, error) {
		return utf8.RuneCountInString(get(v)) <= n, nil
	})
}

// RequiredUUID fails on the nil UUID.
func RequiredUUID[T any](field string, get func(T) uuid.UUID) Rule[T] {
	return Must(field, label(field)+" is required.", func(_ context.Context, v T) (bool, error) {
		return get(v) != uuid.Nil, nil
	})
}

// Email fails when a non-empty value is not a bare RFC 5322 address.
// Single-label domains such as user@localhost are accepted.
// Emptiness is left to Required.
func Email[T any](field string, get func(T) string) Rule[T] {
	msg := label(field) + " must be a valid email address."
	return Must(field, msg, func(_ context.Context, v T) (bool, error) {
		s := get(v)
		if s == "" {
			return true, nil
		}
		addr, err := mail.ParseAddress(s)
		return err == nil && addr.Address == s, nil
	})
}

// Optional applies check only when get returns a non-nil value.
// check reports failures as *entity.ValidationError.
func Optional[T any](get func(T) *string, check func(string) error) Rule[T] {
	return func(_ context.Context, v T) ([]entity.ValidationError, error) {
		p := get(v)
		if p == nil {
			return nil, nil
		}
		err := check(*p)
		if err == nil {
			return nil, nil
		}
		var ve *entity.ValidationError
		if errors.As(err, &ve) {
			return []entity.ValidationError{*ve}, nil
		}
		return nil, err
	}
}

// Struct runs the `validate` struct tags of v. Field names are taken from the
// json tags so failures line up with the request body.
func Struct[T any]() Rule[T] {
	return func(ctx context.Context, v T) ([]entity.ValidationError, error) {
		err := validate.StructCtx(ctx, v)
		if err == nil {
			return nil, nil
		}
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return nil, fmt.Errorf("validate struct: %w", err)
		}
		out := make([]entity.ValidationError, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			out = append(out, entity.ValidationError{Field: fe.Field(), Message: message(fe)})
		}
		return out, nil
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	return v
}

func message(fe validator.FieldError) string {
	l := label(fe.Field())
	switch fe.Tag() {
	case "required":
		return l + " is required."
	case "max":
		return fmt.Sprintf("%s must not exceed %s characters.", l, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters.", l, fe.Param())
	case "email":
		return l + " must be a valid email address."
	case "alphanum":
		return l + " must contain only letters and digits."
	case "containsany":
		return fmt.Sprintf("%s must contain at least one of %q.", l, fe.Param())
	default:
		return l + " is invalid."
	}
}

func label(field string) string {
	r, size := utf8.DecodeRuneInString(field)
	if r == utf8.RuneError {
		return field
	}
	return string(unicode.ToUpper(r)) + field[size:]
}

func fail(field, message string) []entity.ValidationError {
	return []entity.ValidationError{{Field: field, Message: message}}
}
