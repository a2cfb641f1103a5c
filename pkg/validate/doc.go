// Package validate provides precondition checks for function arguments.
//
// Each check returns nil when the condition holds and an error otherwise.
// Failures are *ArgumentError values whose Error method returns the message
// verbatim and which unwrap to one of the error kinds:
//
//   - ErrInvalidArgument: a value violates a precondition (false expression,
//     empty collection, blank string).
//   - ErrNullArgument: a required value is nil.
//   - ErrIndexOutOfBounds: an index is outside a collection.
//
// A nil collection and an empty one are different failures, so callers can
// tell a missing argument from an empty one:
//
//	validate.NotEmpty([]string(nil)) // errors.Is(err, validate.ErrNullArgument)
//	validate.NotEmpty([]string{})    // errors.Is(err, validate.ErrInvalidArgument)
//
// # Messages
//
// Every check comes in two forms. The plain form (IsTrue, NotNull, ...) uses a
// default message. The f form (IsTruef, NotNullf, ...) takes a fmt template
// and arguments that are formatted only when the check fails:
//
//	if err := validate.IsTruef(n > 0, "n must be positive, got %d", n); err != nil {
//	    return err
//	}
//
// A template that fmt cannot apply (unknown verb, missing or extra arguments)
// produces a *FormatError wrapping ErrMessageFormat instead of the argument
// error, so a broken message is reported rather than hidden.
//
// Default messages come from embedded YAML catalogs (English and Chinese). A
// Validator built with New can use another catalog, custom Messages, or
// messages read from VALIDATE_* environment variables:
//
//	v := validate.New(validate.WithLanguage(language.Chinese))
//	err := v.NotNull(nil) // "验证的对象为空"
//
// Validator methods take their argument as any and inspect it with reflect;
// the package-level functions are generic and need no reflection for slices
// and maps.
//
// # Logging
//
// ArgumentError and FormatError implement slog.LogValuer and log as a group
// with kind and message attributes.
//
// All checks are pure and safe for concurrent use. Must turns a returned error
// into a panic for call sites that treat violations as programming errors.
package validate
