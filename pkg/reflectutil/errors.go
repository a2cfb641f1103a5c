package reflectutil

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/moebuff/lang/pkg/logger"
)

var (
	// ErrNotFound is returned when a type has no field with the requested name.
	ErrNotFound = errors.New("field not found")

	// ErrNilType is returned when a lookup is given a nil reflect.Type.
	ErrNilType = errors.New("nil type")

	// ErrNotAccessible is returned when reading or writing an unexported field
	// through a descriptor that was not made accessible.
	ErrNotAccessible = errors.New("field is not accessible")

	// ErrFinalField is returned when writing a field tagged member:"final".
	ErrFinalField = errors.New("field is final")

	// ErrInvalidTarget is returned when the target value does not hold the
	// field's declaring type, or is not a pointer where one is required.
	ErrInvalidTarget = errors.New("invalid target")

	// ErrTypeMismatch is returned when a value cannot be assigned to a field.
	ErrTypeMismatch = errors.New("type mismatch")
)

// FieldError describes a failed lookup or access of a named field.
type FieldError struct {
	Type reflect.Type
	Name string
	Err  error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %q on %s", e.Err, e.Name, typeName(e.Type))
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func (e *FieldError) LogValue() slog.Value {
	return slog.GroupValue(
		logger.Component("reflectutil"),
		logger.Type(e.Type),
		logger.Field(e.Name),
		logger.Error(e.Err),
	)
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
