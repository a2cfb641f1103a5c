package validate

import (
	"fmt"
	"reflect"
	"strings"

	"golang.org/x/text/language"
)

// Validator runs checks with a fixed set of default messages.
// A Validator is immutable and safe for concurrent use.
type Validator struct {
	messages Messages
}

// Option configures a Validator.
type Option func(*Validator)

// WithMessages sets the default messages. Empty fields keep the English text.
// A ValidIndex message without an operand for the index is used verbatim.
func WithMessages(m Messages) Option {
	return func(v *Validator) {
		v.messages = m.withDefaults()
	}
}

// WithLanguage selects the built-in catalog closest to tag.
func WithLanguage(tag language.Tag) Option {
	return func(v *Validator) {
		v.messages = MessagesFor(tag)
	}
}

// New creates a Validator. Without options it uses DefaultMessages.
func New(opts ...Option) *Validator {
	v := &Validator{messages: DefaultMessages()}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Messages returns the default messages of v.
func (v *Validator) Messages() Messages {
	return v.messages
}

// IsTrue returns an ErrInvalidArgument error when expr is false.
func (v *Validator) IsTrue(expr bool) error {
	return v.isTrue(expr, defaultMessage(v.messages.IsTrue))
}

// IsTruef is IsTrue with a custom message formatted from format and args.
func (v *Validator) IsTruef(expr bool, format string, args ...any) error {
	return v.isTrue(expr, templateMessage{format: format, args: args})
}

// NotNull returns an ErrNullArgument error when obj is nil. Typed nil
// pointers, slices, maps, channels, funcs and interfaces count as nil.
func (v *Validator) NotNull(obj any) error {
	return v.notNull(isNil(obj), defaultMessage(v.messages.NotNull))
}

func (v *Validator) NotNullf(obj any, format string, args ...any) error {
	return v.notNull(isNil(obj), templateMessage{format: format, args: args})
}

// NotEmpty checks a slice, array, map, string or channel (or a pointer to
// one). A nil collection yields ErrNullArgument, an empty one ErrInvalidArgument.
func (v *Validator) NotEmpty(collection any) error {
	return v.notEmptyValue(collection, defaultMessage(v.messages.NotEmpty))
}

func (v *Validator) NotEmptyf(collection any, format string, args ...any) error {
	return v.notEmptyValue(collection, templateMessage{format: format, args: args})
}

// NotBlank returns an ErrInvalidArgument error when s is empty or whitespace only.
func (v *Validator) NotBlank(s string) error {
	return v.notBlank(s, defaultMessage(v.messages.NotBlank))
}

func (v *Validator) NotBlankf(s string, format string, args ...any) error {
	return v.notBlank(s, templateMessage{format: format, args: args})
}

// ValidIndex checks that index addresses an element of a slice, array or
// string. A nil slice yields ErrNullArgument, a bad index ErrIndexOutOfBounds.
func (v *Validator) ValidIndex(collection any, index int) error {
	return v.validIndexValue(collection, index, v.indexMessage(index))
}

func (v *Validator) ValidIndexf(collection any, index int, format string, args ...any) error {
	return v.validIndexValue(collection, index, templateMessage{format: format, args: args})
}

func (v *Validator) isTrue(expr bool, msg message) error {
	if expr {
		return nil
	}
	return fail(ErrInvalidArgument, msg)
}

func (v *Validator) notNull(null bool, msg message) error {
	if !null {
		return nil
	}
	return fail(ErrNullArgument, msg)
}

func (v *Validator) notEmpty(null bool, length int, msg message) error {
	if null {
		return fail(ErrNullArgument, msg)
	}
	if length == 0 {
		return fail(ErrInvalidArgument, msg)
	}
	return nil
}

func (v *Validator) notBlank(s string, msg message) error {
	if strings.TrimSpace(s) != "" {
		return nil
	}
	return fail(ErrInvalidArgument, msg)
}

func (v *Validator) validIndex(null bool, length, index int, msg message) error {
	if null {
		return fail(ErrNullArgument, msg)
	}
	if index < 0 || index >= length {
		return fail(ErrIndexOutOfBounds, msg)
	}
	return nil
}

// indexMessage formats the ValidIndex default with index. A message that
// cannot take it, as set through WithMessages, is used verbatim.
func (v *Validator) indexMessage(index int) message {
	if !takesIndex(v.messages.ValidIndex) {
		return defaultMessage(v.messages.ValidIndex)
	}
	return templateMessage{format: v.messages.ValidIndex, args: []any{index}}
}

func (v *Validator) notEmptyValue(collection any, msg message) error {
	rv, null := deref(collection)
	if null {
		return v.notEmpty(true, 0, msg)
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Chan:
		return v.notEmpty(rv.IsNil(), rv.Len(), msg)
	case reflect.Array, reflect.String:
		return v.notEmpty(false, rv.Len(), msg)
	default:
		return unsupported(collection)
	}
}

func (v *Validator) validIndexValue(collection any, index int, msg message) error {
	rv, null := deref(collection)
	if null {
		return v.validIndex(true, 0, index, msg)
	}
	switch rv.Kind() {
	case reflect.Slice:
		return v.validIndex(rv.IsNil(), rv.Len(), index, msg)
	case reflect.Array, reflect.String:
		return v.validIndex(false, rv.Len(), index, msg)
	default:
		return unsupported(collection)
	}
}

// deref unwraps one level of pointer and reports whether the value is nil.
func deref(obj any) (reflect.Value, bool) {
	if obj == nil {
		return reflect.Value{}, true
	}
	rv := reflect.ValueOf(obj)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return reflect.Value{}, true
		}
		rv = rv.Elem()
	}
	return rv, false
}

func isNil(obj any) bool {
	if obj == nil {
		return true
	}
	rv := reflect.ValueOf(obj)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

func unsupported(collection any) error {
	return &ArgumentError{
		Kind:    ErrInvalidArgument,
		Message: fmt.Sprintf("unsupported collection type %T", collection),
	}
}
