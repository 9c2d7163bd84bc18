// Package schema is the boundary between upstream JSON and the rest of the
// service: payloads are decoded into tagged shapes and checked against their
// declared rules before anything else sees them.
package schema

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

// ValidationError reports the first rule a payload broke.
type ValidationError struct {
	Shape string
	Path  string
	Rule  string
	Value any
	cause error
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "schema %s: %s", e.Shape, e.Path)
	if e.Rule != "" {
		fmt.Fprintf(&b, " failed %q", e.Rule)
	}
	if e.cause != nil {
		fmt.Fprintf(&b, ": %v", e.cause)
	} else if e.Value != nil {
		fmt.Fprintf(&b, " (got %v)", e.Value)
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error { return e.cause }

// IsValidationError reports whether err carries a ValidationError.
func IsValidationError(err error) bool {
	var target *ValidationError
	return crerr.As(err, &target)
}

var (
	engineOnce sync.Once
	engine     *validator.Validate
)

func validatorEngine() *validator.Validate {
	engineOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonFieldName)
		v.RegisterCustomTypeFunc(func(field reflect.Value) any {
			u, ok := field.Interface().(OptionalURL)
			if !ok || !u.set {
				return nil
			}
			return u.value
		}, OptionalURL{})
		v.RegisterCustomTypeFunc(func(field reflect.Value) any {
			n, ok := field.Interface().(OptionalNumber)
			if !ok || !n.set {
				return nil
			}
			return n.value
		}, OptionalNumber{})
		v.RegisterCustomTypeFunc(func(field reflect.Value) any {
			n, _ := field.Interface().(Number)
			return float64(n)
		}, Number(0))
		engine = v
	})
	return engine
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	default:
		return name
	}
}

// Decode unmarshals raw into target (a pointer to a tagged shape) and
// validates it. Every failure is a *ValidationError.
func Decode(raw []byte, target any) error {
	shape := shapeName(target)
	if err := sonic.Unmarshal(raw, target); err != nil {
		return &ValidationError{Shape: shape, Path: "$", Rule: "decode", cause: err}
	}
	return validateShape(shape, target)
}

// Validate checks an already-populated shape.
func Validate(target any) error {
	return validateShape(shapeName(target), target)
}

func validateShape(shape string, target any) error {
	err := validatorEngine().Struct(target)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if crerr.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		first := fieldErrs[0]
		return &ValidationError{
			Shape: shape,
			Path:  fieldPath(first.Namespace()),
			Rule:  ruleName(first),
			Value: first.Value(),
		}
	}
	return &ValidationError{Shape: shape, Path: "$", Rule: "validate", cause: err}
}

// fieldPath drops the root type name from a validator namespace.
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}

func ruleName(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}
	return fe.Tag() + "=" + fe.Param()
}

func shapeName(target any) string {
	t := reflect.TypeOf(target)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return "unknown"
	}
	return t.Name()
}
