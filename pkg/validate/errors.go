package validate

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/moebuff/lang/pkg/logger"
)

// Error kinds. Every failure returned by this package wraps exactly one of them.
var (
	// ErrInvalidArgument is returned when a value violates a precondition.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNullArgument is returned when a required value is nil.
	ErrNullArgument = errors.New("null argument")

	// ErrIndexOutOfBounds is returned when an index is outside a collection.
	ErrIndexOutOfBounds = errors.New("index out of bounds")

	// ErrMessageFormat is returned when a caller-supplied message template is malformed.
	ErrMessageFormat = errors.New("malformed message template")
)

// ArgumentError is a failed check. Error returns the resolved message verbatim.
type ArgumentError struct {
	Kind    error
	Message string
}

func (e *ArgumentError) Error() string {
	return e.Message
}

func (e *ArgumentError) Unwrap() error {
	return e.Kind
}

func (e *ArgumentError) LogValue() slog.Value {
	return slog.GroupValue(
		logger.Component("validate"),
		logger.Kind(e.Kind),
		logger.Message(e.Message),
	)
}

// FormatError is returned instead of an ArgumentError when the message
// template of a failed check cannot be formatted with its arguments.
// Output holds what fmt produced, including its %! diagnostics.
type FormatError struct {
	Format string
	Output string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: %q renders as %q", ErrMessageFormat, e.Format, e.Output)
}

func (e *FormatError) Unwrap() error {
	return ErrMessageFormat
}

func (e *FormatError) LogValue() slog.Value {
	return slog.GroupValue(
		logger.Component("validate"),
		logger.Kind(ErrMessageFormat),
		logger.Group("template",
			slog.String("format", e.Format),
			slog.String("output", e.Output),
		),
	)
}
